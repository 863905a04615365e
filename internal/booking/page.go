package booking

import (
	"fmt"
	"strconv"
	"strings"

	"amritha-heritage/internal/catalog"
	"amritha-heritage/internal/model"
	"amritha-heritage/internal/selection"

	"github.com/shopspring/decimal"
)

// Acknowledgement messages and redirect targets.
const (
	TableMessage   = "Booking submitted successfully! We'll confirm your reservation shortly."
	ContactMessage = "Thank you for reaching out! Our concierge will get back to you shortly."
	RoomRedirect   = "/"

	roomMessageFormat = "Thank you! Your booking for %s from %s to %s for %d adults and %d children has been received."
)

// Submission is the outcome of a successful submit: what was booked, the
// total at submission time and the acknowledgement to show.
type Submission struct {
	Kind      model.ReservationKind `json:"kind"`
	GuestName string                `json:"guestName,omitempty"`
	Email     string                `json:"email,omitempty"`
	Phone     string                `json:"phone,omitempty"`
	Items     []model.CatalogItem   `json:"items"`
	Total     decimal.Decimal       `json:"total"`
	Details   map[string]string     `json:"details,omitempty"`
	Message   string                `json:"message"`
	Redirect  string                `json:"redirect,omitempty"`
}

// TablePage is the state of one dish selection and table reservation page.
type TablePage struct {
	dishes   *catalog.Catalog
	selected selection.Set
	category string
	Form     TableForm
}

// NewTablePage opens a table page over dishes with an initial selection.
func NewTablePage(dishes *catalog.Catalog, seed selection.Set) *TablePage {
	return &TablePage{
		dishes:   dishes,
		selected: seed,
		category: catalog.AllCategories,
		Form:     NewTableForm(),
	}
}

// Toggle flips the selection of a dish. IDs not in the catalog are rejected.
func (p *TablePage) Toggle(id string) error {
	if !p.dishes.Has(id) {
		return fmt.Errorf("%w: %s", model.ErrItemNotFound, id)
	}
	p.selected = p.selected.Toggle(id)
	return nil
}

// Selection returns the current selection.
func (p *TablePage) Selection() selection.Set {
	return p.selected
}

// SetCategory changes the visible category. It never touches the selection.
func (p *TablePage) SetCategory(tag string) {
	tag = strings.TrimSpace(tag)
	if tag == "" {
		tag = catalog.AllCategories
	}
	p.category = tag
}

// Category returns the active category tag.
func (p *TablePage) Category() string {
	return p.category
}

// Visible returns the dishes of the active category.
func (p *TablePage) Visible() []model.CatalogItem {
	return p.dishes.Filter(p.category)
}

// SelectedItems returns the selected dishes in catalog order.
func (p *TablePage) SelectedItems() []model.CatalogItem {
	return p.dishes.Resolve(p.selected.IDs())
}

// Total is the sum of the selected dish prices, recomputed on every call.
func (p *TablePage) Total() decimal.Decimal {
	return p.dishes.Total(p.selected.IDs())
}

// CanSubmit reports whether at least one dish is selected.
func (p *TablePage) CanSubmit() bool {
	return !p.selected.IsEmpty()
}

// SetField replaces one reservation form field.
func (p *TablePage) SetField(field, value string) error {
	return p.Form.SetField(field, value)
}

// Submit validates the page and composes the acknowledgement.
func (p *TablePage) Submit() (*Submission, error) {
	if !p.CanSubmit() {
		return nil, model.ErrSelectionEmpty
	}
	if missing := p.dishes.Missing(p.selected.IDs()); len(missing) > 0 {
		return nil, fmt.Errorf("%w: %s", model.ErrItemNotFound, strings.Join(missing, ", "))
	}
	if err := p.Form.Validate(); err != nil {
		return nil, err
	}

	return &Submission{
		Kind:      model.KindTable,
		GuestName: strings.TrimSpace(p.Form.Name),
		Email:     strings.TrimSpace(p.Form.Email),
		Phone:     strings.TrimSpace(p.Form.Phone),
		Items:     p.SelectedItems(),
		Total:     p.Total(),
		Details: map[string]string{
			FieldDate:            p.Form.Date,
			FieldTime:            p.Form.Time,
			FieldGuests:          strconv.Itoa(p.Form.Guests),
			FieldSpecialRequests: strings.TrimSpace(p.Form.SpecialRequests),
		},
		Message: TableMessage,
	}, nil
}

// TableView is the rendered state of a table page.
type TableView struct {
	Category      string              `json:"category"`
	Categories    []string            `json:"categories"`
	Dishes        []model.CatalogItem `json:"dishes"`
	Selected      []string            `json:"selected"`
	SelectedItems []model.CatalogItem `json:"selectedItems"`
	Total         decimal.Decimal     `json:"total"`
	CanSubmit     bool                `json:"canSubmit"`
	Form          TableForm           `json:"form"`
}

// View renders the page.
func (p *TablePage) View() TableView {
	return TableView{
		Category:      p.category,
		Categories:    p.dishes.Categories(),
		Dishes:        p.Visible(),
		Selected:      p.selected.IDs(),
		SelectedItems: p.SelectedItems(),
		Total:         p.Total(),
		CanSubmit:     p.CanSubmit(),
		Form:          p.Form,
	}
}

// RoomPage is the state of one room booking page.
type RoomPage struct {
	rooms    *catalog.Catalog
	selected selection.Single
	Form     RoomForm
}

// NewRoomPage opens a room page over rooms with an initial choice.
func NewRoomPage(rooms *catalog.Catalog, seed selection.Single) *RoomPage {
	return &RoomPage{
		rooms:    rooms,
		selected: seed,
		Form:     NewRoomForm(),
	}
}

// Select replaces the chosen room. IDs not in the catalog are rejected.
func (p *RoomPage) Select(id string) error {
	if !p.rooms.Has(id) {
		return fmt.Errorf("%w: %s", model.ErrItemNotFound, id)
	}
	p.selected = p.selected.Select(id)
	return nil
}

// Selection returns the current choice.
func (p *RoomPage) Selection() selection.Single {
	return p.selected
}

// SelectedItem returns the chosen room.
func (p *RoomPage) SelectedItem() (model.CatalogItem, bool) {
	id, ok := p.selected.ID()
	if !ok {
		return model.CatalogItem{}, false
	}
	return p.rooms.Get(id)
}

// Total is the nightly price of the chosen room, or zero.
func (p *RoomPage) Total() decimal.Decimal {
	room, ok := p.SelectedItem()
	if !ok {
		return decimal.Zero
	}
	return room.Price
}

// CanSubmit reports whether a room is chosen.
func (p *RoomPage) CanSubmit() bool {
	return p.selected.IsSet()
}

// SetField replaces one booking form field.
func (p *RoomPage) SetField(field, value string) error {
	return p.Form.SetField(field, value)
}

// Submit validates the page and composes the acknowledgement.
func (p *RoomPage) Submit() (*Submission, error) {
	if !p.CanSubmit() {
		return nil, model.ErrSelectionEmpty
	}
	room, ok := p.SelectedItem()
	if !ok {
		id, _ := p.selected.ID()
		return nil, fmt.Errorf("%w: %s", model.ErrItemNotFound, id)
	}
	if err := p.Form.Validate(); err != nil {
		return nil, err
	}

	return &Submission{
		Kind:  model.KindRoom,
		Items: []model.CatalogItem{room},
		Total: room.Price,
		Details: map[string]string{
			"room":        room.ID,
			FieldCheckIn:  p.Form.CheckIn,
			FieldCheckOut: p.Form.CheckOut,
			FieldAdults:   strconv.Itoa(p.Form.Adults),
			FieldChildren: strconv.Itoa(p.Form.Children),
			FieldGender:   p.Form.Gender,
		},
		Message:  fmt.Sprintf(roomMessageFormat, room.Name, p.Form.CheckIn, p.Form.CheckOut, p.Form.Adults, p.Form.Children),
		Redirect: RoomRedirect,
	}, nil
}

// RoomView is the rendered state of a room page.
type RoomView struct {
	Rooms     []model.CatalogItem `json:"rooms"`
	Selected  string              `json:"selected,omitempty"`
	Room      *model.CatalogItem  `json:"room,omitempty"`
	Total     decimal.Decimal     `json:"total"`
	CanSubmit bool                `json:"canSubmit"`
	Form      RoomForm            `json:"form"`
}

// View renders the page.
func (p *RoomPage) View() RoomView {
	view := RoomView{
		Rooms:     p.rooms.Items(),
		Total:     p.Total(),
		CanSubmit: p.CanSubmit(),
		Form:      p.Form,
	}
	if room, ok := p.SelectedItem(); ok {
		view.Selected = room.ID
		view.Room = &room
	}
	return view
}

// SubmitContact validates a contact form and composes the acknowledgement.
func SubmitContact(form ContactForm) (*Submission, error) {
	if err := form.Validate(); err != nil {
		return nil, err
	}

	name := strings.TrimSpace(strings.TrimSpace(form.FirstName) + " " + strings.TrimSpace(form.LastName))
	return &Submission{
		Kind:      model.KindContact,
		GuestName: name,
		Email:     strings.TrimSpace(form.Email),
		Phone:     strings.TrimSpace(form.Phone),
		Items:     []model.CatalogItem{},
		Total:     decimal.Zero,
		Details: map[string]string{
			FieldMessage: strings.TrimSpace(form.Message),
		},
		Message: ContactMessage,
	}, nil
}
