package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"amritha-heritage/internal/model"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
)

// reservationRepository implements ReservationRepository using PostgreSQL.
type reservationRepository struct {
	pool   *pgxpool.Pool
	logger zerolog.Logger
}

// NewReservationRepository creates a new PostgreSQL-backed reservation repository.
func NewReservationRepository(pool *pgxpool.Pool, logger zerolog.Logger) ReservationRepository {
	return &reservationRepository{
		pool:   pool,
		logger: logger.With().Str("repository", "reservation").Logger(),
	}
}

// Save inserts the reservation and its items in one transaction.
func (r *reservationRepository) Save(ctx context.Context, res *model.Reservation) (err error) {
	details, err := json.Marshal(res.Details)
	if err != nil {
		return fmt.Errorf("failed to encode reservation details: %w", err)
	}

	tx, err := r.pool.Begin(ctx)
	if err != nil {
		r.logger.Error().Err(err).Msg("failed to begin transaction")
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() {
		if err != nil {
			if rbErr := tx.Rollback(ctx); rbErr != nil && !errors.Is(rbErr, pgx.ErrTxClosed) {
				r.logger.Error().Err(rbErr).Msg("failed to rollback transaction")
			}
		}
	}()

	query := `
		INSERT INTO reservations (id, kind, guest_name, email, phone, total, message, redirect, details, created_at)
		VALUES ($1, $2, $3, $4, $5, $6::numeric, $7, $8, $9::jsonb, $10)
	`

	_, err = tx.Exec(ctx, query,
		res.ID,
		string(res.Kind),
		res.GuestName,
		res.Email,
		res.Phone,
		res.Total.String(),
		res.Message,
		res.Redirect,
		string(details),
		res.CreatedAt,
	)
	if err != nil {
		r.logger.Error().
			Err(err).
			Str("reservation_id", res.ID.String()).
			Msg("failed to create reservation")
		return fmt.Errorf("failed to create reservation: %w", err)
	}

	if err = r.createItems(ctx, tx, res.Items); err != nil {
		return err
	}

	if err = tx.Commit(ctx); err != nil {
		r.logger.Error().Err(err).Str("reservation_id", res.ID.String()).Msg("failed to commit transaction")
		return fmt.Errorf("failed to commit reservation: %w", err)
	}

	r.logger.Debug().
		Str("reservation_id", res.ID.String()).
		Int("item_count", len(res.Items)).
		Msg("reservation saved successfully")

	return nil
}

func (r *reservationRepository) createItems(ctx context.Context, tx pgx.Tx, items []model.ReservationItem) error {
	if len(items) == 0 {
		return nil
	}

	query := `
		INSERT INTO reservation_items (id, reservation_id, position, item_id, name, price)
		VALUES ($1, $2, $3, $4, $5, $6::numeric)
	`

	batch := &pgx.Batch{}
	for i, item := range items {
		batch.Queue(query, item.ID, item.ReservationID, i, item.ItemID, item.Name, item.Price.String())
	}

	results := tx.SendBatch(ctx, batch)
	defer results.Close()

	for i := range items {
		if _, err := results.Exec(); err != nil {
			r.logger.Error().
				Err(err).
				Str("reservation_id", items[i].ReservationID.String()).
				Str("item_id", items[i].ItemID).
				Msg("failed to create reservation item")
			return fmt.Errorf("failed to create reservation item: %w", err)
		}
	}

	return nil
}

// GetByID retrieves a reservation by its ID along with its items.
func (r *reservationRepository) GetByID(ctx context.Context, id uuid.UUID) (*model.Reservation, error) {
	query := `
		SELECT id, kind, guest_name, email, phone, total::text, message, redirect, details::text, created_at
		FROM reservations
		WHERE id = $1
	`

	var (
		res     model.Reservation
		kind    string
		total   string
		details string
	)
	err := r.pool.QueryRow(ctx, query, id).Scan(
		&res.ID,
		&kind,
		&res.GuestName,
		&res.Email,
		&res.Phone,
		&total,
		&res.Message,
		&res.Redirect,
		&details,
		&res.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			r.logger.Debug().Str("reservation_id", id.String()).Msg("reservation not found")
			return nil, nil
		}
		r.logger.Error().Err(err).Str("reservation_id", id.String()).Msg("failed to query reservation")
		return nil, fmt.Errorf("failed to query reservation: %w", err)
	}

	res.Kind = model.ReservationKind(kind)
	if res.Total, err = decimal.NewFromString(total); err != nil {
		return nil, fmt.Errorf("failed to parse reservation total: %w", err)
	}
	if err := json.Unmarshal([]byte(details), &res.Details); err != nil {
		return nil, fmt.Errorf("failed to decode reservation details: %w", err)
	}

	if res.Items, err = r.getItems(ctx, id); err != nil {
		return nil, err
	}

	return &res, nil
}

func (r *reservationRepository) getItems(ctx context.Context, reservationID uuid.UUID) ([]model.ReservationItem, error) {
	query := `
		SELECT id, reservation_id, item_id, name, price::text
		FROM reservation_items
		WHERE reservation_id = $1
		ORDER BY position
	`

	rows, err := r.pool.Query(ctx, query, reservationID)
	if err != nil {
		r.logger.Error().
			Err(err).
			Str("reservation_id", reservationID.String()).
			Msg("failed to query reservation items")
		return nil, fmt.Errorf("failed to query reservation items: %w", err)
	}
	defer rows.Close()

	items := []model.ReservationItem{}
	for rows.Next() {
		var (
			item  model.ReservationItem
			price string
		)
		if err := rows.Scan(&item.ID, &item.ReservationID, &item.ItemID, &item.Name, &price); err != nil {
			r.logger.Error().Err(err).Msg("failed to scan reservation item row")
			return nil, fmt.Errorf("failed to scan reservation item: %w", err)
		}
		if item.Price, err = decimal.NewFromString(price); err != nil {
			return nil, fmt.Errorf("failed to parse reservation item price: %w", err)
		}
		items = append(items, item)
	}

	if err := rows.Err(); err != nil {
		r.logger.Error().Err(err).Msg("error iterating reservation item rows")
		return nil, fmt.Errorf("error iterating reservation items: %w", err)
	}

	return items, nil
}
