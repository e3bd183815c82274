package repositories

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"

	"sync-backend/internal/models"
)

type UserRepository struct {
	DB *pgxpool.Pool
}

func NewUserRepository(db *pgxpool.Pool) *UserRepository {
	return &UserRepository{DB: db}
}

// Get retrieves a user and stored credential by id.
func (r *UserRepository) Get(ctx context.Context, id string) (*models.User, error) {
	var u models.User
	err := r.DB.QueryRow(ctx,
		"SELECT id, pass FROM acc_users WHERE id = $1", id,
	).Scan(&u.ID, &u.Pass)
	if err != nil {
		return nil, err
	}
	return &u, nil
}
