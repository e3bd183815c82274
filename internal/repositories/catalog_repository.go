package repositories

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"

	"sync-backend/internal/models"
)

type CatalogRepository struct {
	DB *pgxpool.Pool
}

func NewCatalogRepository(db *pgxpool.Pool) *CatalogRepository {
	return &CatalogRepository{DB: db}
}

// Suppliers returns the supplier accounts from the shared account master.
func (r *CatalogRepository) Suppliers(ctx context.Context) ([]models.Supplier, error) {
	rows, err := r.DB.Query(ctx,
		"SELECT code, name, place FROM acc_master WHERE super_code = 'SUNCR'",
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var suppliers []models.Supplier
	for rows.Next() {
		var s models.Supplier
		if err := rows.Scan(&s.Code, &s.Name, &s.Place); err != nil {
			return nil, err
		}
		suppliers = append(suppliers, s)
	}

	return suppliers, rows.Err()
}

// Products returns every product with its batch pricing. Products without a
// batch row still appear, with null batch columns.
func (r *CatalogRepository) Products(ctx context.Context) ([]models.Product, error) {
	rows, err := r.DB.Query(ctx, `
		SELECT p.code, p.name, pb.barcode, pb.quantity, pb.salesprice, pb.bmrp, pb.cost
		FROM acc_product p
		LEFT JOIN acc_productbatch pb ON p.code = pb.productcode`,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var products []models.Product
	for rows.Next() {
		var p models.Product
		if err := rows.Scan(&p.Code, &p.Name, &p.Barcode, &p.Quantity, &p.SalesPrice, &p.BMRP, &p.Cost); err != nil {
			return nil, err
		}
		products = append(products, p)
	}

	return products, rows.Err()
}
