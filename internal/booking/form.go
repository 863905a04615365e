// Package booking holds the reservation form state of the table, room and
// contact pages and turns a selection plus a form into a submission.
package booking

import (
	"fmt"
	"strconv"
	"strings"

	"amritha-heritage/internal/model"
)

// Form field names, shared by SetField, JSON bodies and form-encoded posts.
const (
	FieldName            = "name"
	FieldEmail           = "email"
	FieldPhone           = "phone"
	FieldDate            = "date"
	FieldTime            = "time"
	FieldGuests          = "guests"
	FieldSpecialRequests = "specialRequests"

	FieldCheckIn  = "checkIn"
	FieldCheckOut = "checkOut"
	FieldAdults   = "adults"
	FieldChildren = "children"
	FieldGender   = "gender"

	FieldFirstName = "firstName"
	FieldLastName  = "lastName"
	FieldMessage   = "message"
)

// Layouts accepted for date and time fields.
const (
	DateLayout = "2006-01-02"
	TimeLayout = "15:04"
)

// Defaults of a freshly opened form.
const (
	DefaultGuests   = 2
	DefaultAdults   = 1
	DefaultChildren = 0
)

// TableForm is the table reservation form.
type TableForm struct {
	Name            string `json:"name" validate:"notblank,max=100"`
	Email           string `json:"email" validate:"required,email"`
	Phone           string `json:"phone" validate:"notblank,max=32"`
	Date            string `json:"date" validate:"required,datetime=2006-01-02"`
	Time            string `json:"time" validate:"required,datetime=15:04"`
	Guests          int    `json:"guests" validate:"min=1,max=8"`
	SpecialRequests string `json:"specialRequests" validate:"max=1000"`
}

// NewTableForm returns an empty table form with the default guest count.
func NewTableForm() TableForm {
	return TableForm{Guests: DefaultGuests}
}

// SetField replaces one field. Other fields keep their values.
func (f *TableForm) SetField(field, value string) error {
	switch field {
	case FieldName:
		f.Name = value
	case FieldEmail:
		f.Email = value
	case FieldPhone:
		f.Phone = value
	case FieldDate:
		f.Date = value
	case FieldTime:
		f.Time = value
	case FieldGuests:
		n, err := parseCount(field, value)
		if err != nil {
			return err
		}
		f.Guests = n
	case FieldSpecialRequests:
		f.SpecialRequests = value
	default:
		return unknownField(field)
	}
	return nil
}

// RoomForm is the room booking form.
type RoomForm struct {
	CheckIn  string `json:"checkIn" validate:"required,datetime=2006-01-02"`
	CheckOut string `json:"checkOut" validate:"required,datetime=2006-01-02"`
	Adults   int    `json:"adults" validate:"min=1,max=10"`
	Children int    `json:"children" validate:"min=0,max=10"`
	Gender   string `json:"gender" validate:"required,oneof=male female other"`
}

// NewRoomForm returns an empty room form with one adult and no children.
func NewRoomForm() RoomForm {
	return RoomForm{Adults: DefaultAdults, Children: DefaultChildren}
}

// SetField replaces one field. Other fields keep their values.
func (f *RoomForm) SetField(field, value string) error {
	switch field {
	case FieldCheckIn:
		f.CheckIn = value
	case FieldCheckOut:
		f.CheckOut = value
	case FieldAdults:
		n, err := parseCount(field, value)
		if err != nil {
			return err
		}
		f.Adults = n
	case FieldChildren:
		n, err := parseCount(field, value)
		if err != nil {
			return err
		}
		f.Children = n
	case FieldGender:
		f.Gender = value
	default:
		return unknownField(field)
	}
	return nil
}

// ContactForm is the "get in touch" form of the home page.
type ContactForm struct {
	FirstName string `json:"firstName" validate:"notblank,max=100"`
	LastName  string `json:"lastName" validate:"max=100"`
	Email     string `json:"email" validate:"required,email"`
	Phone     string `json:"phone" validate:"max=32"`
	Message   string `json:"message" validate:"notblank,max=2000"`
}

// SetField replaces one field. Other fields keep their values.
func (f *ContactForm) SetField(field, value string) error {
	switch field {
	case FieldFirstName:
		f.FirstName = value
	case FieldLastName:
		f.LastName = value
	case FieldEmail:
		f.Email = value
	case FieldPhone:
		f.Phone = value
	case FieldMessage:
		f.Message = value
	default:
		return unknownField(field)
	}
	return nil
}

func parseCount(field, value string) (int, error) {
	n, err := strconv.Atoi(strings.TrimSpace(value))
	if err != nil {
		return 0, fmt.Errorf("%w: %s: %q is not a number", model.ErrInvalidField, field, value)
	}
	return n, nil
}

func unknownField(field string) error {
	return fmt.Errorf("%w: %q", model.ErrUnknownField, field)
}
