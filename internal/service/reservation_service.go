package service

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"slices"
	"time"

	"amritha-heritage/internal/booking"
	"amritha-heritage/internal/catalog"
	"amritha-heritage/internal/idempotency"
	"amritha-heritage/internal/model"
	"amritha-heritage/internal/repository"
	"amritha-heritage/internal/selection"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// Query keys of the booking page views.
const (
	QueryDish     = "dish"
	QuerySelected = "selected"
	QueryToggle   = "toggle"
	QueryCategory = "category"
	QueryRoom     = "room"
	QuerySelect   = "select"
)

// reservationService implements ReservationService.
type reservationService struct {
	content  *catalog.Content
	repo     repository.ReservationRepository
	idem     idempotency.Store
	notifier Notifier
	ttl      time.Duration
	now      func() time.Time
	logger   zerolog.Logger
}

// NewReservationService creates a new reservation service.
func NewReservationService(
	content *catalog.Content,
	repo repository.ReservationRepository,
	idem idempotency.Store,
	notifier Notifier,
	idempotencyTTL time.Duration,
	logger zerolog.Logger,
) ReservationService {
	return &reservationService{
		content:  content,
		repo:     repo,
		idem:     idem,
		notifier: notifier,
		ttl:      idempotencyTTL,
		now:      time.Now,
		logger:   logger.With().Str("service", "reservation").Logger(),
	}
}

// TableView rebuilds the table page of one request. Unknown dishes in the
// query are ignored.
func (s *reservationService) TableView(_ context.Context, query url.Values) booking.TableView {
	dishes := s.content.Dishes

	selected := selection.SeedFromQuery(query, QueryDish, dishes)
	for _, id := range query[QuerySelected] {
		if dishes.Has(id) && !selected.Contains(id) {
			selected = selected.Toggle(id)
		}
	}

	page := booking.NewTablePage(dishes, selected)
	for _, id := range query[QueryToggle] {
		if err := page.Toggle(id); err != nil {
			s.logger.Debug().Str("dish_id", id).Msg("ignoring toggle of unknown dish")
		}
	}
	page.SetCategory(query.Get(QueryCategory))

	return page.View()
}

// RoomView rebuilds the room page of one request. Unknown rooms are ignored.
func (s *reservationService) RoomView(_ context.Context, query url.Values) booking.RoomView {
	page := booking.NewRoomPage(s.content.Rooms, selection.SingleFromQuery(query, QueryRoom, s.content.Rooms))
	if id := query.Get(QuerySelect); id != "" {
		if err := page.Select(id); err != nil {
			s.logger.Debug().Str("room_id", id).Msg("ignoring selection of unknown room")
		}
	}
	return page.View()
}

func (s *reservationService) SubmitTable(ctx context.Context, key string, req booking.TableRequest) (*model.Reservation, error) {
	// The dish selection is a set; resubmitting it in another order is the
	// same submission.
	canonical := req
	canonical.Dishes = selection.NewSet(req.Dishes...).IDs()
	slices.Sort(canonical.Dishes)

	return s.submit(ctx, key, model.KindTable, canonical, func() (*booking.Submission, error) {
		page := booking.NewTablePage(s.content.Dishes, selection.NewSet(req.Dishes...))
		page.Form = req.TableForm
		return page.Submit()
	})
}

func (s *reservationService) SubmitRoom(ctx context.Context, key string, req booking.RoomRequest) (*model.Reservation, error) {
	return s.submit(ctx, key, model.KindRoom, req, func() (*booking.Submission, error) {
		page := booking.NewRoomPage(s.content.Rooms, selection.Single{}.Select(req.Room))
		page.Form = req.RoomForm
		return page.Submit()
	})
}

func (s *reservationService) SubmitContact(ctx context.Context, key string, form booking.ContactForm) (*model.Reservation, error) {
	return s.submit(ctx, key, model.KindContact, form, func() (*booking.Submission, error) {
		return booking.SubmitContact(form)
	})
}

// GetByID retrieves an acknowledged reservation.
func (s *reservationService) GetByID(ctx context.Context, id uuid.UUID) (*model.Reservation, error) {
	res, err := s.repo.GetByID(ctx, id)
	if err != nil {
		s.logger.Error().Err(err).Str("reservation_id", id.String()).Msg("failed to get reservation")
		return nil, fmt.Errorf("failed to get reservation: %w", err)
	}
	if res == nil {
		return nil, model.ErrReservationNotFound
	}
	return res, nil
}

// submit runs build under the idempotency key, when one is given, and
// records the resulting submission.
func (s *reservationService) submit(
	ctx context.Context,
	key string,
	kind model.ReservationKind,
	body any,
	build func() (*booking.Submission, error),
) (*model.Reservation, error) {
	if key == "" {
		return s.record(ctx, build)
	}

	fingerprint, err := idempotency.Fingerprint(struct {
		Kind model.ReservationKind `json:"kind"`
		Body any                   `json:"body"`
	}{kind, body})
	if err != nil {
		return nil, err
	}

	reservation, err := s.idem.Reserve(ctx, key, fingerprint, s.now(), s.ttl)
	if err != nil {
		if errors.Is(err, idempotency.ErrFingerprintMismatch) {
			s.logger.Warn().Str("kind", string(kind)).Msg("idempotency key reused for a different submission")
			return nil, model.ErrIdempotencyConflict
		}
		return nil, fmt.Errorf("failed to reserve idempotency key: %w", err)
	}

	switch reservation.State {
	case idempotency.ReservationStateCompleted:
		s.logger.Debug().
			Str("reservation_id", reservation.Record.ResultID.String()).
			Msg("replaying acknowledged submission")
		return s.GetByID(ctx, reservation.Record.ResultID)
	case idempotency.ReservationStatePending:
		return nil, fmt.Errorf("%w: submission still in progress", model.ErrIdempotencyConflict)
	}

	res, err := s.record(ctx, build)
	if err != nil {
		if relErr := s.idem.Release(ctx, key, fingerprint); relErr != nil {
			s.logger.Error().Err(relErr).Msg("failed to release idempotency key")
		}
		return nil, err
	}

	if err := s.idem.Complete(ctx, key, fingerprint, res.ID, s.now(), s.ttl); err != nil {
		s.logger.Error().Err(err).Str("reservation_id", res.ID.String()).Msg("failed to complete idempotency key")
		// A key stuck in pending would answer every retry with a conflict
		// until it expires.
		if relErr := s.idem.Release(ctx, key, fingerprint); relErr != nil {
			s.logger.Error().Err(relErr).Msg("failed to release idempotency key")
		}
	}
	return res, nil
}

// record builds the submission, stores it and notifies the front desk.
func (s *reservationService) record(ctx context.Context, build func() (*booking.Submission, error)) (*model.Reservation, error) {
	sub, err := build()
	if err != nil {
		s.logger.Debug().Err(err).Msg("submission rejected")
		return nil, err
	}

	res := newReservation(sub, s.now())
	if err := s.repo.Save(ctx, res); err != nil {
		s.logger.Error().Err(err).Str("reservation_id", res.ID.String()).Msg("failed to save reservation")
		return nil, fmt.Errorf("failed to save reservation: %w", err)
	}

	if err := s.notifier.Notify(ctx, res); err != nil {
		s.logger.Warn().Err(err).Str("reservation_id", res.ID.String()).Msg("failed to notify front desk")
	}

	s.logger.Info().
		Str("reservation_id", res.ID.String()).
		Str("kind", string(res.Kind)).
		Int("item_count", len(res.Items)).
		Msg("reservation acknowledged")

	return res, nil
}

func newReservation(sub *booking.Submission, now time.Time) *model.Reservation {
	res := &model.Reservation{
		ID:        uuid.New(),
		Kind:      sub.Kind,
		GuestName: sub.GuestName,
		Email:     sub.Email,
		Phone:     sub.Phone,
		Items:     make([]model.ReservationItem, 0, len(sub.Items)),
		Total:     sub.Total,
		Message:   sub.Message,
		Redirect:  sub.Redirect,
		Details:   sub.Details,
		CreatedAt: now.UTC(),
	}
	for _, item := range sub.Items {
		res.Items = append(res.Items, model.ReservationItem{
			ID:            uuid.New(),
			ReservationID: res.ID,
			ItemID:        item.ID,
			Name:          item.Name,
			Price:         item.Price,
		})
	}
	return res
}
