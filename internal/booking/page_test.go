package booking

import (
	"errors"
	"net/url"
	"testing"

	"amritha-heritage/internal/catalog"
	"amritha-heritage/internal/model"
	"amritha-heritage/internal/selection"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testDishes() *catalog.Catalog {
	return catalog.MustNew([]model.CatalogItem{
		{ID: "a", Name: "Alpha", Price: decimal.NewFromInt(10), Category: "Main"},
		{ID: "b", Name: "Bravo", Price: decimal.NewFromInt(20), Category: "Dessert"},
	})
}

func testRooms() *catalog.Catalog {
	return catalog.MustNew([]model.CatalogItem{
		{ID: "deluxe", Name: "Deluxe Room", Price: decimal.NewFromInt(6000), Currency: "INR"},
		{ID: "executive", Name: "Executive Suite", Price: decimal.NewFromInt(9000), Currency: "INR"},
	})
}

func itemIDs(items []model.CatalogItem) []string {
	out := make([]string, len(items))
	for i, item := range items {
		out[i] = item.ID
	}
	return out
}

func TestTablePage_Scenario(t *testing.T) {
	page := NewTablePage(testDishes(), selection.NewSet())
	assert.False(t, page.CanSubmit())
	assert.True(t, page.Total().IsZero())

	require.NoError(t, page.Toggle("a"))
	assert.Equal(t, "10", page.Total().String())
	assert.True(t, page.CanSubmit())

	require.NoError(t, page.Toggle("b"))
	assert.Equal(t, "30", page.Total().String())

	page.SetCategory("Dessert")
	assert.Equal(t, []string{"b"}, itemIDs(page.Visible()))
	assert.Equal(t, []string{"a", "b"}, itemIDs(page.SelectedItems()), "filter leaves the selection alone")

	require.NoError(t, page.Toggle("a"))
	assert.Equal(t, "20", page.Total().String())

	page.Form = validTableForm()
	sub, err := page.Submit()
	require.NoError(t, err)
	assert.Equal(t, model.KindTable, sub.Kind)
	assert.Equal(t, TableMessage, sub.Message)
	assert.Equal(t, []string{"b"}, itemIDs(sub.Items))
	assert.Equal(t, "20", sub.Total.String())
	assert.Equal(t, "4", sub.Details[FieldGuests])
	assert.Empty(t, sub.Redirect)
}

func TestTablePage_CanSubmitTransitions(t *testing.T) {
	page := NewTablePage(testDishes(), selection.NewSet())

	require.NoError(t, page.Toggle("a"))
	assert.True(t, page.CanSubmit(), "0 -> 1 enables submit")

	require.NoError(t, page.Toggle("a"))
	assert.False(t, page.CanSubmit(), "1 -> 0 disables submit")
	assert.True(t, page.Total().IsZero())
}

func TestTablePage_SeededFromQuery(t *testing.T) {
	dishes := testDishes()
	page := NewTablePage(dishes, selection.SeedFromQuery(url.Values{"dish": {"b"}}, "dish", dishes))

	assert.Equal(t, []string{"b"}, page.Selection().IDs())
	assert.Equal(t, "20", page.Total().String())

	unknown := NewTablePage(dishes, selection.SeedFromQuery(url.Values{"dish": {"zzz"}}, "dish", dishes))
	assert.False(t, unknown.CanSubmit())
}

func TestTablePage_Toggle_UnknownDish(t *testing.T) {
	page := NewTablePage(testDishes(), selection.NewSet())
	assert.ErrorIs(t, page.Toggle("zzz"), model.ErrItemNotFound)
	assert.False(t, page.CanSubmit())
}

func TestTablePage_SetCategory(t *testing.T) {
	page := NewTablePage(testDishes(), selection.NewSet())
	assert.Equal(t, catalog.AllCategories, page.Category())
	assert.Len(t, page.Visible(), 2)

	page.SetCategory("Seafood")
	assert.Empty(t, page.Visible())

	page.SetCategory("")
	assert.Equal(t, catalog.AllCategories, page.Category())
}

func TestTablePage_Submit_Errors(t *testing.T) {
	tests := []struct {
		name    string
		seed    selection.Set
		form    TableForm
		wantErr error
	}{
		{name: "empty selection", seed: selection.NewSet(), form: validTableForm(), wantErr: model.ErrSelectionEmpty},
		{name: "unknown dish", seed: selection.NewSet("a", "ghost"), form: validTableForm(), wantErr: model.ErrItemNotFound},
		{name: "invalid form", seed: selection.NewSet("a"), form: NewTableForm(), wantErr: model.ErrInvalidForm},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			page := NewTablePage(testDishes(), tt.seed)
			page.Form = tt.form

			sub, err := page.Submit()
			assert.Nil(t, sub)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestTablePage_EmptySelectionCheckedBeforeForm(t *testing.T) {
	page := NewTablePage(testDishes(), selection.NewSet())
	_, err := page.Submit()

	var verr *ValidationError
	assert.False(t, errors.As(err, &verr))
	assert.ErrorIs(t, err, model.ErrSelectionEmpty)
}

func TestTablePage_View(t *testing.T) {
	page := NewTablePage(testDishes(), selection.NewSet("a"))
	page.SetCategory("Dessert")
	require.NoError(t, page.SetField(FieldName, "Lakshmi"))

	view := page.View()
	assert.Equal(t, "Dessert", view.Category)
	assert.Equal(t, []string{catalog.AllCategories, "Main", "Dessert"}, view.Categories)
	assert.Equal(t, []string{"b"}, itemIDs(view.Dishes))
	assert.Equal(t, []string{"a"}, view.Selected)
	assert.Equal(t, "10", view.Total.String())
	assert.True(t, view.CanSubmit)
	assert.Equal(t, "Lakshmi", view.Form.Name)
}

func TestRoomPage_Submit(t *testing.T) {
	page := NewRoomPage(testRooms(), selection.Single{})
	assert.False(t, page.CanSubmit())

	_, err := page.Submit()
	assert.ErrorIs(t, err, model.ErrSelectionEmpty)

	require.NoError(t, page.Select("deluxe"))
	require.NoError(t, page.Select("executive"))
	assert.Equal(t, "9000", page.Total().String(), "select replaces the previous room")

	page.Form = validRoomForm()
	sub, err := page.Submit()
	require.NoError(t, err)

	assert.Equal(t, model.KindRoom, sub.Kind)
	assert.Equal(t,
		"Thank you! Your booking for Executive Suite from 2026-12-20 to 2026-12-23 for 2 adults and 1 children has been received.",
		sub.Message)
	assert.Equal(t, RoomRedirect, sub.Redirect)
	assert.Equal(t, "executive", sub.Details["room"])
	assert.Equal(t, []string{"executive"}, itemIDs(sub.Items))
}

func TestRoomPage_Select_Unknown(t *testing.T) {
	page := NewRoomPage(testRooms(), selection.Single{})
	assert.ErrorIs(t, page.Select("penthouse"), model.ErrItemNotFound)
	assert.False(t, page.CanSubmit())
}

func TestRoomPage_SeededWithUnknownRoom(t *testing.T) {
	page := NewRoomPage(testRooms(), selection.Single{}.Select("penthouse"))
	page.Form = validRoomForm()

	_, err := page.Submit()
	assert.ErrorIs(t, err, model.ErrItemNotFound)
}

func TestRoomPage_View(t *testing.T) {
	page := NewRoomPage(testRooms(), selection.Single{})
	view := page.View()
	assert.Nil(t, view.Room)
	assert.False(t, view.CanSubmit)
	assert.Len(t, view.Rooms, 2)

	require.NoError(t, page.Select("deluxe"))
	view = page.View()
	require.NotNil(t, view.Room)
	assert.Equal(t, "deluxe", view.Selected)
	assert.Equal(t, "6000", view.Total.String())
}

func TestSubmitContact(t *testing.T) {
	sub, err := SubmitContact(ContactForm{
		FirstName: " Ravi ",
		LastName:  "Pillai",
		Email:     "ravi@example.com",
		Message:   "Is the spa open on Sundays?",
	})
	require.NoError(t, err)
	assert.Equal(t, model.KindContact, sub.Kind)
	assert.Equal(t, "Ravi Pillai", sub.GuestName)
	assert.Equal(t, ContactMessage, sub.Message)
	assert.True(t, sub.Total.IsZero())

	_, err = SubmitContact(ContactForm{})
	assert.ErrorIs(t, err, model.ErrInvalidForm)
}
