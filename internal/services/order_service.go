package services

import (
	"context"
	"errors"
	"os"

	"github.com/rs/zerolog"

	"sync-backend/internal/models"
)

var orderLogger = zerolog.New(os.Stdout).With().Timestamp().Str("component", "orders").Logger()

// ErrNoOrders is returned for an empty batch, before any database work.
var ErrNoOrders = errors.New("no orders supplied")

// orderUploader is what the service needs from the order repository.
type orderUploader interface {
	UploadBatch(ctx context.Context, orders []models.OrderUpload, callerID string) (*models.UploadReport, error)
}

type OrderService struct {
	Repo orderUploader
}

func NewOrderService(repo orderUploader) *OrderService {
	return &OrderService{Repo: repo}
}

// Upload validates the batch and runs it through the transaction engine.
// Validation failures surface before a transaction is opened; everything
// after that is all-or-nothing inside the engine.
func (s *OrderService) Upload(ctx context.Context, req *models.UploadOrdersRequest, callerID string) (*models.UploadReport, error) {
	if len(req.Orders) == 0 {
		return nil, ErrNoOrders
	}

	orderLogger.Info().
		Int("orders", len(req.Orders)).
		Str("caller", callerID).
		Msg("uploading orders")

	return s.Repo.UploadBatch(ctx, req.Orders, callerID)
}
