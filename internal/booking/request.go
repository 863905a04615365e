package booking

import (
	"net/url"
	"slices"
	"sort"
)

// Selection keys of submitted bodies and page queries.
const (
	KeyDishes = "dishes"
	KeyDish   = "dish"
	KeyRoom   = "room"
)

// TableRequest is a submitted table reservation: the selected dishes plus the
// form fields, flattened.
type TableRequest struct {
	Dishes []string `json:"dishes"`
	TableForm
}

// NewTableRequest returns a request carrying the form defaults.
func NewTableRequest() TableRequest {
	return TableRequest{TableForm: NewTableForm()}
}

// TableRequestFromValues builds a request from a form-encoded body. Dishes
// are read from every "dishes" and "dish" value; every other key goes
// through SetField.
func TableRequestFromValues(values url.Values) (TableRequest, error) {
	req := NewTableRequest()
	req.Dishes = append(append(req.Dishes, values[KeyDishes]...), values[KeyDish]...)

	err := applyValues(values, req.TableForm.SetField, KeyDishes, KeyDish)
	return req, err
}

// RoomRequest is a submitted room booking.
type RoomRequest struct {
	Room string `json:"room"`
	RoomForm
}

// NewRoomRequest returns a request carrying the form defaults.
func NewRoomRequest() RoomRequest {
	return RoomRequest{RoomForm: NewRoomForm()}
}

// RoomRequestFromValues builds a request from a form-encoded body.
func RoomRequestFromValues(values url.Values) (RoomRequest, error) {
	req := NewRoomRequest()
	req.Room = values.Get(KeyRoom)

	err := applyValues(values, req.RoomForm.SetField, KeyRoom)
	return req, err
}

// ContactFormFromValues builds a contact form from a form-encoded body.
func ContactFormFromValues(values url.Values) (ContactForm, error) {
	var form ContactForm
	err := applyValues(values, form.SetField)
	return form, err
}

// applyValues feeds the last value of every key except skip into set, in
// key order so the first failure is deterministic.
func applyValues(values url.Values, set func(field, value string) error, skip ...string) error {
	keys := make([]string, 0, len(values))
	for key := range values {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	for _, key := range keys {
		vs := values[key]
		if len(vs) == 0 || slices.Contains(skip, key) {
			continue
		}
		if err := set(key, vs[len(vs)-1]); err != nil {
			return err
		}
	}
	return nil
}
