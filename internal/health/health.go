// Package health reports whether the server can carry a sync session: the
// shared database must answer and the sync schema must be in place.
package health

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5"
)

// store is the slice of the connection pool the checker needs.
type store interface {
	Ping(ctx context.Context) error
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

type HealthChecker struct {
	db store
}

type HealthStatus struct {
	Status   string         `json:"status"`
	Database DatabaseHealth `json:"database"`
	Sync     SyncActivity   `json:"sync"`
}

type DatabaseHealth struct {
	Status       string `json:"status"`
	ResponseTime int64  `json:"response_time_ms"`
}

// SyncActivity tells a healthy-but-idle server apart from one whose schema
// was never migrated, using the same today-scoped counts the upload engine
// checks.
type SyncActivity struct {
	SchemaReady bool  `json:"schema_ready"`
	OrdersToday int64 `json:"orders_today"`
	ItemsToday  int64 `json:"items_today"`
}

func NewHealthChecker(db store) *HealthChecker {
	return &HealthChecker{db: db}
}

func (h *HealthChecker) CheckBasic() HealthStatus {
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	dbHealth := h.checkDatabase(ctx)
	status := HealthStatus{Status: "healthy", Database: dbHealth}
	if dbHealth.Status != "healthy" {
		status.Status = "unhealthy"
		return status
	}

	status.Sync = h.checkSync(ctx)
	if !status.Sync.SchemaReady {
		status.Status = "unhealthy"
	}
	return status
}

func (h *HealthChecker) checkDatabase(ctx context.Context) DatabaseHealth {
	start := time.Now()
	err := h.db.Ping(ctx)
	responseTime := time.Since(start).Milliseconds()

	if err != nil {
		return DatabaseHealth{
			Status:       "unhealthy",
			ResponseTime: responseTime,
		}
	}

	return DatabaseHealth{
		Status:       "healthy",
		ResponseTime: responseTime,
	}
}

func (h *HealthChecker) checkSync(ctx context.Context) SyncActivity {
	var applied int64
	if err := h.db.QueryRow(ctx, "SELECT COUNT(*) FROM schema_migrations").Scan(&applied); err != nil {
		return SyncActivity{}
	}

	activity := SyncActivity{SchemaReady: applied > 0}
	if !activity.SchemaReady {
		return activity
	}

	if err := h.db.QueryRow(ctx,
		"SELECT COUNT(*) FROM acc_purchaseordermaster WHERE orderdate = CURRENT_DATE",
	).Scan(&activity.OrdersToday); err != nil {
		return activity
	}
	if err := h.db.QueryRow(ctx, `
		SELECT COUNT(*)
		FROM acc_purchaseordermaster po
		JOIN acc_purchaseorderdetails pd ON pd.masterslno = po.slno
		WHERE po.orderdate = CURRENT_DATE`,
	).Scan(&activity.ItemsToday); err != nil {
		return activity
	}

	return activity
}
