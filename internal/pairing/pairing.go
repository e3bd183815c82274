// Package pairing manages the desktop companion process that the mobile
// client pairs with: finding its binary, detecting a running instance, and
// launching it on demand.
package pairing

import (
	"errors"
	"os"
	"os/exec"
	"path/filepath"
	"strings"

	"github.com/shirou/gopsutil/v3/process"
)

// ErrNotInstalled is returned when the companion binary is missing from the
// service directory.
var ErrNotInstalled = errors.New("companion service binary not found")

type Manager struct {
	ServiceName string
	ServiceDir  string
}

func NewManager(serviceName, serviceDir string) *Manager {
	if serviceDir == "" {
		// Default to the directory the server binary runs from; the
		// installer drops both binaries side by side.
		if exe, err := os.Executable(); err == nil {
			serviceDir = filepath.Dir(exe)
		}
	}
	return &Manager{
		ServiceName: serviceName,
		ServiceDir:  serviceDir,
	}
}

// BinaryPath returns the companion binary's path, or ErrNotInstalled.
func (m *Manager) BinaryPath() (string, error) {
	path := filepath.Join(m.ServiceDir, m.ServiceName)
	if _, err := os.Stat(path); err != nil {
		return "", ErrNotInstalled
	}
	return path, nil
}

// Running reports whether a companion process is already alive, and its pid.
func (m *Manager) Running() (bool, int32, error) {
	procs, err := process.Processes()
	if err != nil {
		return false, 0, err
	}

	self := int32(os.Getpid())
	for _, p := range procs {
		if p.Pid == self {
			continue
		}
		name, err := p.Name()
		if err != nil {
			continue
		}
		if strings.Contains(name, m.ServiceName) {
			return true, p.Pid, nil
		}
	}
	return false, 0, nil
}

// Launch starts the companion binary detached from the current request.
func (m *Manager) Launch() error {
	path, err := m.BinaryPath()
	if err != nil {
		return err
	}

	cmd := exec.Command(path)
	cmd.Dir = m.ServiceDir
	return cmd.Start()
}
