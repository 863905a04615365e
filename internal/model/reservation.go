package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// ReservationKind identifies which form produced a reservation.
type ReservationKind string

const (
	KindTable   ReservationKind = "table"
	KindRoom    ReservationKind = "room"
	KindContact ReservationKind = "contact"
)

// Reservation is an acknowledged submission of one of the booking forms.
type Reservation struct {
	ID        uuid.UUID         `json:"id" db:"id"`
	Kind      ReservationKind   `json:"kind" db:"kind"`
	GuestName string            `json:"guestName,omitempty" db:"guest_name"`
	Email     string            `json:"email,omitempty" db:"email"`
	Phone     string            `json:"phone,omitempty" db:"phone"`
	Items     []ReservationItem `json:"items"`
	Total     decimal.Decimal   `json:"total" db:"total"`
	Message   string            `json:"message" db:"message"`
	Redirect  string            `json:"redirect,omitempty"`
	Details   map[string]string `json:"details,omitempty" db:"details"`
	CreatedAt time.Time         `json:"createdAt" db:"created_at"`
}

// ReservationItem is a catalog item captured at submission time.
type ReservationItem struct {
	ID            uuid.UUID       `json:"-" db:"id"`
	ReservationID uuid.UUID       `json:"-" db:"reservation_id"`
	ItemID        string          `json:"itemId" db:"item_id"`
	Name          string          `json:"name" db:"name"`
	Price         decimal.Decimal `json:"price" db:"price"`
}
