package repositories

import (
	"context"
	"fmt"
	"os"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"

	"sync-backend/internal/metrics"
	"sync-backend/internal/models"
)

var logger = zerolog.New(os.Stdout).With().Timestamp().Str("component", "order_upload").Logger()

const (
	masterTable = "acc_purchaseordermaster"
	detailTable = "acc_purchaseorderdetails"

	countMastersTodaySQL = `SELECT COUNT(*) FROM acc_purchaseordermaster WHERE orderdate = CURRENT_DATE`
	countDetailsTodaySQL = `
		SELECT COUNT(*)
		FROM acc_purchaseordermaster po
		JOIN acc_purchaseorderdetails pd ON pd.masterslno = po.slno
		WHERE po.orderdate = CURRENT_DATE`

	insertMasterSQL = `
		INSERT INTO acc_purchaseordermaster (slno, orderno, supplier, otype, userid, orderdate)
		VALUES ($1, $2, $3, $4, $5, $6)`
	verifyMasterSQL = `SELECT COUNT(*) FROM acc_purchaseordermaster WHERE slno = $1`

	insertDetailSQL = `
		INSERT INTO acc_purchaseorderdetails (slno, masterslno, barcode, qty, rate, mrp)
		VALUES ($1, $2, $3, $4, $5, $6)`
	verifyDetailSQL = `SELECT COUNT(*) FROM acc_purchaseorderdetails WHERE slno = $1`
)

type OrderRepository struct {
	DB *pgxpool.Pool
}

func NewOrderRepository(db *pgxpool.Pool) *OrderRepository {
	return &OrderRepository{DB: db}
}

// UploadBatch persists a batch of orders inside one transaction. Either every
// master and detail row of the batch survives, or none do: any failure in the
// loop, the post-insert verifications, or the final count check rolls the
// whole transaction back.
func (r *OrderRepository) UploadBatch(ctx context.Context, orders []models.OrderUpload, callerID string) (*models.UploadReport, error) {
	tx, err := r.DB.Begin(ctx)
	if err != nil {
		return nil, fmt.Errorf("begin transaction: %w", err)
	}
	// No-op once Commit has succeeded.
	defer tx.Rollback(ctx)

	report, err := uploadInTx(ctx, tx, orders, callerID)
	if err != nil {
		metrics.OrderBatchesRolledBack.Inc()
		logger.Error().Err(err).Msg("ROLLBACK")
		return nil, err
	}

	if err := tx.Commit(ctx); err != nil {
		metrics.OrderBatchesRolledBack.Inc()
		logger.Error().Err(err).Msg("commit failed")
		return nil, fmt.Errorf("commit: %w", err)
	}

	metrics.OrdersUploaded.Add(float64(report.OrdersInserted))
	logger.Info().
		Int64("masters_today", report.MastersAfter).
		Int64("details_today", report.DetailsAfter).
		Msg("COMMITTED")
	return report, nil
}

// uploadInTx runs the upload protocol against an open transaction. It never
// commits or rolls back; the caller owns that decision.
func uploadInTx(ctx context.Context, tx querier, orders []models.OrderUpload, callerID string) (*models.UploadReport, error) {
	report := &models.UploadReport{}

	// Baseline snapshot: how many of today's rows exist before the batch.
	// Re-checked after the batch to catch inserts that silently went nowhere.
	if err := tx.QueryRow(ctx, countMastersTodaySQL).Scan(&report.MastersBefore); err != nil {
		return nil, fmt.Errorf("count masters before: %w", err)
	}
	if err := tx.QueryRow(ctx, countDetailsTodaySQL).Scan(&report.DetailsBefore); err != nil {
		return nil, fmt.Errorf("count details before: %w", err)
	}
	logger.Info().
		Int64("masters_today", report.MastersBefore).
		Int64("details_today", report.DetailsBefore).
		Msg("baseline counts")

	masterAlloc, err := NewSeededAllocator(ctx, tx, masterTable)
	if err != nil {
		return nil, fmt.Errorf("seed master allocator: %w", err)
	}
	detailAlloc := NewLiveAllocator(tx, detailTable)

	for idx, order := range orders {
		slno, err := masterAlloc.Next(ctx)
		if err != nil {
			return nil, fmt.Errorf("allocate master slno: %w", err)
		}

		userid := order.UserID
		if userid == "" {
			userid = callerID
		}
		otype := models.DefaultOrderType
		if order.OrderType != nil {
			otype = *order.OrderType
		}

		items, err := order.LineItems()
		if err != nil {
			return nil, fmt.Errorf("order #%d: %w", idx+1, err)
		}
		if len(order.Products) == 0 {
			logger.Info().Int("order", idx+1).Msg("wrapped flat product into array")
		}

		// orderno mirrors slno on purpose; the desktop package shows the
		// same number in both columns.
		if _, err := tx.Exec(ctx, insertMasterSQL, slno, slno, order.SupplierCode, otype, userid, order.OrderDate); err != nil {
			return nil, fmt.Errorf("insert master %d: %w", slno, err)
		}

		var n int64
		if err := tx.QueryRow(ctx, verifyMasterSQL, slno).Scan(&n); err != nil {
			return nil, fmt.Errorf("verify master %d: %w", slno, err)
		}
		if n == 0 {
			return nil, fmt.Errorf("master row %d vanished immediately after insert", slno)
		}
		report.OrdersInserted++

		for _, item := range items {
			detSlno, err := detailAlloc.Next(ctx)
			if err != nil {
				return nil, fmt.Errorf("allocate detail slno: %w", err)
			}

			logger.Info().
				Int64("slno", detSlno).
				Int64("masterslno", slno).
				Str("barcode", item.Barcode).
				Float64("qty", item.Quantity).
				Msg("inserting detail row")
			if _, err := tx.Exec(ctx, insertDetailSQL, detSlno, slno, item.Barcode, item.Quantity, item.Rate, item.MRP); err != nil {
				return nil, fmt.Errorf("insert detail %d: %w", detSlno, err)
			}

			if err := tx.QueryRow(ctx, verifyDetailSQL, detSlno).Scan(&n); err != nil {
				return nil, fmt.Errorf("verify detail %d: %w", detSlno, err)
			}
			if n == 0 {
				return nil, fmt.Errorf("detail slno %d vanished immediately after insert", detSlno)
			}
			report.ItemsInserted++
		}
	}

	// Final snapshot, same queries as the baseline.
	if err := tx.QueryRow(ctx, countMastersTodaySQL).Scan(&report.MastersAfter); err != nil {
		return nil, fmt.Errorf("count masters after: %w", err)
	}
	if err := tx.QueryRow(ctx, countDetailsTodaySQL).Scan(&report.DetailsAfter); err != nil {
		return nil, fmt.Errorf("count details after: %w", err)
	}
	logger.Info().
		Int64("masters_today", report.MastersAfter).
		Int64("details_today", report.DetailsAfter).
		Msg("final counts")

	// A stagnant aggregate despite the per-row verifications means the
	// inserts are not real. Only the detail counter is compared here.
	if report.DetailsAfter == report.DetailsBefore {
		return nil, fmt.Errorf("no net detail rows after upload (before=%d, after=%d) - nothing was really inserted", report.DetailsBefore, report.DetailsAfter)
	}

	return report, nil
}
