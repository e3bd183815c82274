// Package timeutil pins the server's notion of "now" to Indian Standard
// Time, matching the desktop accounting package the database belongs to.
package timeutil

import (
	"time"
)

// IST is the Indian Standard Time location (UTC+5:30)
var IST *time.Location

func init() {
	var err error
	IST, err = time.LoadLocation("Asia/Kolkata")
	if err != nil {
		// Fallback when the zone database is missing
		IST = time.FixedZone("IST", 5*60*60+30*60)
	}
}

// Now returns the current time in IST.
func Now() time.Time {
	return time.Now().In(IST)
}

// Today returns the current IST date as YYYY-MM-DD, the format orderdate
// columns carry on the wire.
func Today() string {
	return Now().Format(DateLayout)
}

const DateLayout = "2006-01-02"
