package main

import (
	"context"
	"fmt"
	"log"
	"os"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/joho/godotenv"
)

func main() {
	fmt.Println("========================================")
	fmt.Println("   Reset Sync Database for Testing")
	fmt.Println("========================================")
	fmt.Println()
	fmt.Println("⚠️  WARNING: This will DELETE ALL ORDER DATA!")
	fmt.Println()
	fmt.Println("This will:")
	fmt.Println("  - Delete all purchase order masters and details")
	fmt.Println("  - Delete all products and product batches")
	fmt.Println("  - Delete all supplier accounts")
	fmt.Println("  - Delete all users except the default")
	fmt.Println()
	fmt.Print("Type 'yes' to confirm: ")

	var confirm string
	fmt.Scanln(&confirm)

	if confirm != "yes" {
		fmt.Println("Reset cancelled.")
		return
	}

	// Load environment variables
	godotenv.Load()

	dbHost := getEnv("DB_HOST", "localhost")
	dbPort := getEnv("DB_PORT", "5432")
	dbUser := getEnv("DB_USER", "postgres")
	dbPassword := getEnv("DB_PASSWORD", "postgres")
	dbName := getEnv("DB_NAME", "sync_db")

	connStr := fmt.Sprintf("postgres://%s:%s@%s:%s/%s",
		dbUser, dbPassword, dbHost, dbPort, dbName)

	pool, err := pgxpool.New(context.Background(), connStr)
	if err != nil {
		log.Fatalf("Unable to connect to database: %v\n", err)
	}
	defer pool.Close()

	fmt.Println()
	fmt.Println("🔄 Resetting database...")

	ctx := context.Background()

	tx, err := pool.Begin(ctx)
	if err != nil {
		log.Fatalf("Failed to begin transaction: %v\n", err)
	}
	defer tx.Rollback(ctx)

	// Details before masters, batches before products (foreign keys)
	tables := []string{
		"acc_purchaseorderdetails",
		"acc_purchaseordermaster",
		"acc_productbatch",
		"acc_product",
		"acc_master",
		"acc_users",
	}

	for _, table := range tables {
		_, err = tx.Exec(ctx, fmt.Sprintf("TRUNCATE TABLE %s CASCADE", table))
		if err != nil {
			log.Fatalf("Failed to truncate %s: %v\n", table, err)
		}
		fmt.Printf("  ✓ Cleared %s\n", table)
	}

	// Create default user
	// Password: admin123 (bcrypt)
	_, err = tx.Exec(ctx,
		"INSERT INTO acc_users (id, pass) VALUES ($1, $2)",
		"ADMIN",
		"$2a$10$N9qo8uLOickgx2ZMRZoMye7U4hWJQbFlLwt7xW.hQOKvH8QhPVN8S",
	)
	if err != nil {
		log.Fatalf("Failed to create default user: %v\n", err)
	}
	fmt.Println("  ✓ Created default user")

	if err := tx.Commit(ctx); err != nil {
		log.Fatalf("Failed to commit transaction: %v\n", err)
	}

	fmt.Println()
	fmt.Println("✅ Database reset successful!")
	fmt.Println()
	fmt.Println("Default credentials:")
	fmt.Println("  UserID:   ADMIN")
	fmt.Println("  Password: admin123")
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}
