package repositories

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/google/uuid"
	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	tc "github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
)

// setupPostgresContainer starts a throwaway postgres with the full schema.
func setupPostgresContainer(t *testing.T) (*sqlx.DB, func()) {
	t.Helper()

	req := tc.ContainerRequest{
		Image:        "postgres:15-alpine",
		Env:          map[string]string{"POSTGRES_PASSWORD": "password", "POSTGRES_DB": "testdb", "POSTGRES_USER": "postgres"},
		ExposedPorts: []string{"5432/tcp"},
		WaitingFor:   wait.ForListeningPort("5432/tcp"),
	}

	container, err := tc.GenericContainer(context.Background(), tc.GenericContainerRequest{
		ContainerRequest: req,
		Started:          true,
	})
	assert.NoError(t, err)

	host, _ := container.Host(context.Background())
	port, _ := container.MappedPort(context.Background(), "5432")

	dsn := fmt.Sprintf("postgres://postgres:password@%s:%d/testdb?sslmode=disable", host, port.Int())

	var db *sqlx.DB
	for i := 0; i < 10; i++ {
		db, err = sqlx.Connect("pgx", dsn)
		if err == nil {
			break
		}
		time.Sleep(time.Second)
	}
	assert.NoError(t, err)

	schema := `
	CREATE EXTENSION IF NOT EXISTS "uuid-ossp";

	CREATE TABLE IF NOT EXISTS users (
		user_id UUID PRIMARY KEY DEFAULT uuid_generate_v4(),
		username VARCHAR(50) NOT NULL UNIQUE,
		email VARCHAR(100) NOT NULL UNIQUE,
		password_hash VARCHAR(255) NOT NULL,
		created_at TIMESTAMP NOT NULL DEFAULT NOW(),
		updated_at TIMESTAMP NOT NULL DEFAULT NOW()
	);

	CREATE TABLE IF NOT EXISTS houses (
		street_address VARCHAR(255) PRIMARY KEY,
		capacity INT NOT NULL CHECK (capacity BETWEEN 2 AND 6),
		bathrooms NUMERIC(2,1) NOT NULL,
		url TEXT,
		created_by VARCHAR(50) NOT NULL,
		created_at TIMESTAMP NOT NULL DEFAULT NOW()
	);

	CREATE TABLE IF NOT EXISTS house_reviews (
		review_id BIGSERIAL PRIMARY KEY,
		house_address VARCHAR(255) NOT NULL REFERENCES houses(street_address),
		rating NUMERIC(2,1) NOT NULL CHECK (rating BETWEEN 0 AND 5),
		review_text TEXT NOT NULL DEFAULT '',
		user_id UUID NOT NULL REFERENCES users(user_id),
		username VARCHAR(50) NOT NULL,
		is_resident BOOLEAN NOT NULL DEFAULT FALSE,
		created_at TIMESTAMP NOT NULL DEFAULT NOW()
	);

	CREATE TABLE IF NOT EXISTS saved_houses (
		user_id UUID NOT NULL REFERENCES users(user_id),
		house_address VARCHAR(255) NOT NULL REFERENCES houses(street_address),
		saved_at TIMESTAMP NOT NULL DEFAULT NOW(),
		PRIMARY KEY (user_id, house_address)
	);

	CREATE TABLE IF NOT EXISTS forum_posts (
		post_id BIGSERIAL PRIMARY KEY,
		title VARCHAR(255) NOT NULL,
		contact_info VARCHAR(255) NOT NULL DEFAULT '',
		content TEXT NOT NULL,
		username VARCHAR(50) NOT NULL,
		created_at TIMESTAMP NOT NULL DEFAULT NOW()
	);
	`
	_, err = db.Exec(schema)
	assert.NoError(t, err)

	teardown := func() {
		db.Close()
		container.Terminate(context.Background())
	}

	return db, teardown
}

// insertTestUser creates a user row and returns its id.
func insertTestUser(t *testing.T, db *sqlx.DB, username string) uuid.UUID {
	t.Helper()

	var userID uuid.UUID
	err := db.Get(&userID,
		"INSERT INTO users (username, email, password_hash) VALUES ($1, $2, 'hash') RETURNING user_id",
		username, username+"@example.com")
	assert.NoError(t, err)
	return userID
}

// insertTestHouse creates a house row.
func insertTestHouse(t *testing.T, db *sqlx.DB, address string, capacity int, bathrooms float64) {
	t.Helper()

	_, err := db.Exec(
		"INSERT INTO houses (street_address, capacity, bathrooms, created_by) VALUES ($1, $2, $3, 'seed')",
		address, capacity, bathrooms)
	assert.NoError(t, err)
}
