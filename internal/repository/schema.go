package repository

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
)

// Schema creates the reservation ledger tables.
const Schema = `
	CREATE TABLE IF NOT EXISTS reservations (
		id UUID PRIMARY KEY,
		kind VARCHAR(16) NOT NULL CHECK (kind IN ('table', 'room', 'contact')),
		guest_name VARCHAR(255) NOT NULL DEFAULT '',
		email VARCHAR(255) NOT NULL DEFAULT '',
		phone VARCHAR(64) NOT NULL DEFAULT '',
		total NUMERIC(12, 2) NOT NULL CHECK (total >= 0),
		message TEXT NOT NULL,
		redirect VARCHAR(255) NOT NULL DEFAULT '',
		details JSONB NOT NULL DEFAULT '{}'::jsonb,
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	);

	CREATE TABLE IF NOT EXISTS reservation_items (
		id UUID PRIMARY KEY,
		reservation_id UUID NOT NULL REFERENCES reservations(id) ON DELETE CASCADE,
		position INTEGER NOT NULL,
		item_id VARCHAR(100) NOT NULL,
		name VARCHAR(255) NOT NULL,
		price NUMERIC(12, 2) NOT NULL CHECK (price >= 0)
	);

	CREATE INDEX IF NOT EXISTS idx_reservation_items_reservation_id ON reservation_items(reservation_id);
	CREATE INDEX IF NOT EXISTS idx_reservations_created_at ON reservations(created_at);
`

// EnsureSchema creates the ledger tables when they do not exist.
func EnsureSchema(ctx context.Context, pool *pgxpool.Pool) error {
	if _, err := pool.Exec(ctx, Schema); err != nil {
		return fmt.Errorf("failed to create reservation schema: %w", err)
	}
	return nil
}
