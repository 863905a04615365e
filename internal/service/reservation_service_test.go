package service

import (
	"context"
	"errors"
	"net/url"
	"testing"
	"time"

	"amritha-heritage/internal/booking"
	"amritha-heritage/internal/catalog"
	"amritha-heritage/internal/idempotency"
	"amritha-heritage/internal/model"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// MockReservationRepository is a mock implementation of ReservationRepository.
type MockReservationRepository struct {
	mock.Mock
}

func (m *MockReservationRepository) Save(ctx context.Context, res *model.Reservation) error {
	args := m.Called(ctx, res)
	return args.Error(0)
}

func (m *MockReservationRepository) GetByID(ctx context.Context, id uuid.UUID) (*model.Reservation, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Reservation), args.Error(1)
}

// MockNotifier is a mock implementation of Notifier.
type MockNotifier struct {
	mock.Mock
}

func (m *MockNotifier) Notify(ctx context.Context, res *model.Reservation) error {
	args := m.Called(ctx, res)
	return args.Error(0)
}

func validTableRequest(dishes ...string) booking.TableRequest {
	req := booking.NewTableRequest()
	req.Dishes = dishes
	req.Name = "Meera Nair"
	req.Email = "meera@example.com"
	req.Phone = "+91 98470 12345"
	req.Date = "2026-12-24"
	req.Time = "19:30"
	req.Guests = 4
	return req
}

func validRoomRequest(room string) booking.RoomRequest {
	req := booking.NewRoomRequest()
	req.Room = room
	req.CheckIn = "2026-12-20"
	req.CheckOut = "2026-12-23"
	req.Adults = 2
	req.Children = 1
	req.Gender = "female"
	return req
}

func newTestReservationService(repo *MockReservationRepository, notifier *MockNotifier) *reservationService {
	svc := NewReservationService(
		catalog.Default(),
		repo,
		idempotency.NewMemoryStore(),
		notifier,
		time.Hour,
		zerolog.Nop(),
	).(*reservationService)
	svc.now = func() time.Time { return time.Date(2026, 10, 17, 9, 0, 0, 0, time.UTC) }
	return svc
}

func TestReservationService_SubmitTable_Success(t *testing.T) {
	repo := new(MockReservationRepository)
	notifier := new(MockNotifier)
	svc := newTestReservationService(repo, notifier)
	ctx := context.Background()

	repo.On("Save", ctx, mock.AnythingOfType("*model.Reservation")).Return(nil)
	notifier.On("Notify", ctx, mock.AnythingOfType("*model.Reservation")).Return(nil)

	res, err := svc.SubmitTable(ctx, "", validTableRequest("beef-onion", "niagra-chicken"))
	require.NoError(t, err)

	assert.NotEqual(t, uuid.Nil, res.ID)
	assert.Equal(t, model.KindTable, res.Kind)
	assert.Equal(t, booking.TableMessage, res.Message)
	assert.Equal(t, "133", res.Total.String())
	require.Len(t, res.Items, 2)
	assert.Equal(t, "niagra-chicken", res.Items[0].ItemID, "items follow catalog order")
	assert.Equal(t, res.ID, res.Items[0].ReservationID)
	assert.Equal(t, "Meera Nair", res.GuestName)
	assert.Equal(t, time.Date(2026, 10, 17, 9, 0, 0, 0, time.UTC), res.CreatedAt)

	repo.AssertExpectations(t)
	notifier.AssertExpectations(t)
}

func TestReservationService_SubmitTable_Rejected(t *testing.T) {
	tests := []struct {
		name    string
		req     booking.TableRequest
		wantErr error
	}{
		{name: "no dishes", req: validTableRequest(), wantErr: model.ErrSelectionEmpty},
		{name: "unknown dish", req: validTableRequest("ghost"), wantErr: model.ErrItemNotFound},
		{name: "invalid form", req: booking.TableRequest{Dishes: []string{"beef-onion"}}, wantErr: model.ErrInvalidForm},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := new(MockReservationRepository)
			notifier := new(MockNotifier)
			svc := newTestReservationService(repo, notifier)

			res, err := svc.SubmitTable(context.Background(), "", tt.req)
			assert.Nil(t, res)
			assert.ErrorIs(t, err, tt.wantErr)

			repo.AssertNotCalled(t, "Save", mock.Anything, mock.Anything)
			notifier.AssertNotCalled(t, "Notify", mock.Anything, mock.Anything)
		})
	}
}

func TestReservationService_SubmitRoom(t *testing.T) {
	repo := new(MockReservationRepository)
	notifier := new(MockNotifier)
	svc := newTestReservationService(repo, notifier)
	ctx := context.Background()

	repo.On("Save", ctx, mock.AnythingOfType("*model.Reservation")).Return(nil)
	notifier.On("Notify", ctx, mock.Anything).Return(errors.New("mail relay down"))

	res, err := svc.SubmitRoom(ctx, "", validRoomRequest("deluxe"))
	require.NoError(t, err, "notification failures do not fail the submission")

	assert.Equal(t, model.KindRoom, res.Kind)
	assert.Equal(t, "/", res.Redirect)
	assert.Equal(t,
		"Thank you! Your booking for Deluxe Room from 2026-12-20 to 2026-12-23 for 2 adults and 1 children has been received.",
		res.Message)
	assert.Equal(t, "6000", res.Total.String())

	_, err = svc.SubmitRoom(ctx, "", validRoomRequest(""))
	assert.ErrorIs(t, err, model.ErrSelectionEmpty)
}

func TestReservationService_SubmitContact(t *testing.T) {
	repo := new(MockReservationRepository)
	notifier := new(MockNotifier)
	svc := newTestReservationService(repo, notifier)
	ctx := context.Background()

	repo.On("Save", ctx, mock.Anything).Return(nil)
	notifier.On("Notify", ctx, mock.Anything).Return(nil)

	res, err := svc.SubmitContact(ctx, "", booking.ContactForm{
		FirstName: "Ravi",
		Email:     "ravi@example.com",
		Message:   "Do you arrange backwater cruises?",
	})
	require.NoError(t, err)
	assert.Equal(t, model.KindContact, res.Kind)
	assert.Empty(t, res.Items)
}

func TestReservationService_SaveFailure(t *testing.T) {
	repo := new(MockReservationRepository)
	notifier := new(MockNotifier)
	svc := newTestReservationService(repo, notifier)
	ctx := context.Background()

	repo.On("Save", ctx, mock.Anything).Return(errors.New("connection refused"))

	_, err := svc.SubmitTable(ctx, "key-1", validTableRequest("beef-onion"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to save reservation")
	notifier.AssertNotCalled(t, "Notify", mock.Anything, mock.Anything)

	// The key was released, so a retry is processed again.
	repo.ExpectedCalls = nil
	repo.On("Save", ctx, mock.Anything).Return(nil)
	notifier.On("Notify", ctx, mock.Anything).Return(nil)

	res, err := svc.SubmitTable(ctx, "key-1", validTableRequest("beef-onion"))
	require.NoError(t, err)
	assert.NotNil(t, res)
}

func TestReservationService_IdempotentReplay(t *testing.T) {
	repo := new(MockReservationRepository)
	notifier := new(MockNotifier)
	svc := newTestReservationService(repo, notifier)
	ctx := context.Background()

	var saved *model.Reservation
	repo.On("Save", ctx, mock.Anything).Run(func(args mock.Arguments) {
		saved = args.Get(1).(*model.Reservation)
	}).Return(nil).Once()
	notifier.On("Notify", ctx, mock.Anything).Return(nil).Once()

	first, err := svc.SubmitTable(ctx, "key-1", validTableRequest("beef-onion"))
	require.NoError(t, err)

	repo.On("GetByID", ctx, first.ID).Return(saved, nil).Once()

	second, err := svc.SubmitTable(ctx, "key-1", validTableRequest("beef-onion"))
	require.NoError(t, err)
	assert.Equal(t, first.ID, second.ID, "replay returns the original acknowledgement")

	_, err = svc.SubmitTable(ctx, "key-1", validTableRequest("niagra-chicken"))
	assert.ErrorIs(t, err, model.ErrIdempotencyConflict)

	repo.AssertNumberOfCalls(t, "Save", 1)
	notifier.AssertNumberOfCalls(t, "Notify", 1)
}

func TestReservationService_IdempotentReplay_DishOrder(t *testing.T) {
	repo := new(MockReservationRepository)
	notifier := new(MockNotifier)
	svc := newTestReservationService(repo, notifier)
	ctx := context.Background()

	var saved *model.Reservation
	repo.On("Save", ctx, mock.Anything).Run(func(args mock.Arguments) {
		saved = args.Get(1).(*model.Reservation)
	}).Return(nil).Once()
	notifier.On("Notify", ctx, mock.Anything).Return(nil).Once()

	first, err := svc.SubmitTable(ctx, "key-1", validTableRequest("beef-onion", "niagra-chicken"))
	require.NoError(t, err)

	repo.On("GetByID", ctx, first.ID).Return(saved, nil).Once()

	second, err := svc.SubmitTable(ctx, "key-1", validTableRequest("niagra-chicken", "beef-onion", "beef-onion"))
	require.NoError(t, err)
	assert.Equal(t, first.ID, second.ID)

	repo.AssertNumberOfCalls(t, "Save", 1)
}

// completeFailingStore loses every completion.
type completeFailingStore struct {
	*idempotency.MemoryStore
}

func (completeFailingStore) Complete(context.Context, string, string, uuid.UUID, time.Time, time.Duration) error {
	return errors.New("store unavailable")
}

func TestReservationService_FailedCompleteReleasesKey(t *testing.T) {
	repo := new(MockReservationRepository)
	notifier := new(MockNotifier)
	store := completeFailingStore{MemoryStore: idempotency.NewMemoryStore()}
	svc := NewReservationService(catalog.Default(), repo, store, notifier, time.Hour, zerolog.Nop())
	ctx := context.Background()

	repo.On("Save", ctx, mock.Anything).Return(nil)
	notifier.On("Notify", ctx, mock.Anything).Return(nil)

	_, err := svc.SubmitTable(ctx, "key-1", validTableRequest("beef-onion"))
	require.NoError(t, err)

	_, err = svc.SubmitTable(ctx, "key-1", validTableRequest("beef-onion"))
	require.NoError(t, err, "retry is not answered with a pending conflict")
	assert.Equal(t, 0, store.Len())
}

func TestReservationService_IdempotencyKeyScopedByKind(t *testing.T) {
	repo := new(MockReservationRepository)
	notifier := new(MockNotifier)
	svc := newTestReservationService(repo, notifier)
	ctx := context.Background()

	repo.On("Save", ctx, mock.Anything).Return(nil)
	notifier.On("Notify", ctx, mock.Anything).Return(nil)

	_, err := svc.SubmitTable(ctx, "shared", validTableRequest("beef-onion"))
	require.NoError(t, err)

	_, err = svc.SubmitRoom(ctx, "shared", validRoomRequest("deluxe"))
	assert.ErrorIs(t, err, model.ErrIdempotencyConflict)
}

func TestReservationService_RejectedSubmissionReleasesKey(t *testing.T) {
	repo := new(MockReservationRepository)
	notifier := new(MockNotifier)
	svc := newTestReservationService(repo, notifier)
	ctx := context.Background()

	_, err := svc.SubmitTable(ctx, "key-1", validTableRequest())
	assert.ErrorIs(t, err, model.ErrSelectionEmpty)

	_, err = svc.SubmitTable(ctx, "key-1", validTableRequest())
	assert.ErrorIs(t, err, model.ErrSelectionEmpty, "retry is evaluated again, not reported as pending")
}

func TestReservationService_GetByID(t *testing.T) {
	repo := new(MockReservationRepository)
	svc := newTestReservationService(repo, new(MockNotifier))
	ctx := context.Background()

	known := &model.Reservation{ID: uuid.New(), Kind: model.KindTable}
	missing := uuid.New()
	broken := uuid.New()

	repo.On("GetByID", ctx, known.ID).Return(known, nil)
	repo.On("GetByID", ctx, missing).Return(nil, nil)
	repo.On("GetByID", ctx, broken).Return(nil, errors.New("timeout"))

	got, err := svc.GetByID(ctx, known.ID)
	require.NoError(t, err)
	assert.Same(t, known, got)

	_, err = svc.GetByID(ctx, missing)
	assert.ErrorIs(t, err, model.ErrReservationNotFound)

	_, err = svc.GetByID(ctx, broken)
	assert.Error(t, err)
	assert.NotErrorIs(t, err, model.ErrReservationNotFound)
}

func TestReservationService_TableView(t *testing.T) {
	svc := newTestReservationService(new(MockReservationRepository), new(MockNotifier))
	ctx := context.Background()

	tests := []struct {
		name         string
		query        string
		wantSelected []string
		wantTotal    string
		wantVisible  int
		canSubmit    bool
	}{
		{name: "empty page", query: "", wantSelected: []string{}, wantTotal: "0", wantVisible: 6},
		{name: "seeded dish", query: "dish=beef-onion", wantSelected: []string{"beef-onion"}, wantTotal: "85", wantVisible: 6, canSubmit: true},
		{name: "unknown seed ignored", query: "dish=ghost", wantSelected: []string{}, wantTotal: "0", wantVisible: 6},
		{
			name:         "toggles applied in order",
			query:        "dish=beef-onion&toggle=truffle-pasta&toggle=beef-onion",
			wantSelected: []string{"truffle-pasta"},
			wantTotal:    "45",
			wantVisible:  6,
			canSubmit:    true,
		},
		{
			name:         "restored selection with filter",
			query:        "selected=niagra-chicken&selected=chocolate-souffle&selected=ghost&category=Dessert",
			wantSelected: []string{"niagra-chicken", "chocolate-souffle"},
			wantTotal:    "66",
			wantVisible:  1,
			canSubmit:    true,
		},
		{name: "unknown category", query: "category=Brunch", wantSelected: []string{}, wantTotal: "0", wantVisible: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			values, err := url.ParseQuery(tt.query)
			require.NoError(t, err)

			view := svc.TableView(ctx, values)
			assert.Equal(t, tt.wantSelected, view.Selected)
			assert.Equal(t, tt.wantTotal, view.Total.String())
			assert.Len(t, view.Dishes, tt.wantVisible)
			assert.Equal(t, tt.canSubmit, view.CanSubmit)
			assert.Equal(t, booking.DefaultGuests, view.Form.Guests)
		})
	}
}

func TestReservationService_RoomView(t *testing.T) {
	svc := newTestReservationService(new(MockReservationRepository), new(MockNotifier))
	ctx := context.Background()

	view := svc.RoomView(ctx, url.Values{"room": {"executive"}})
	assert.Equal(t, "executive", view.Selected)
	assert.True(t, view.CanSubmit)

	view = svc.RoomView(ctx, url.Values{"room": {"executive"}, "select": {"accessible"}})
	assert.Equal(t, "accessible", view.Selected)
	assert.Equal(t, "5500", view.Total.String())

	view = svc.RoomView(ctx, url.Values{"room": {"penthouse"}})
	assert.Empty(t, view.Selected)
	assert.False(t, view.CanSubmit)
	assert.Len(t, view.Rooms, 3)
}
