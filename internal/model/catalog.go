package model

import "github.com/shopspring/decimal"

// CatalogItem is an offerable entry of a catalog (a dish or a room).
type CatalogItem struct {
	ID              string           `json:"id"`
	Name            string           `json:"name"`
	Description     string           `json:"description"`
	DescriptionHTML string           `json:"descriptionHtml,omitempty"`
	Price           decimal.Decimal  `json:"price"`
	OriginalPrice   *decimal.Decimal `json:"originalPrice,omitempty"`
	Currency        string           `json:"currency"`
	Unit            string           `json:"unit,omitempty"`
	Category        string           `json:"category"`
	Image           string           `json:"image,omitempty"`

	// Dish details.
	Rating   int    `json:"rating,omitempty"`
	PrepTime string `json:"prepTime,omitempty"`
	Serves   string `json:"serves,omitempty"`

	// Room details.
	Images    []string `json:"images,omitempty"`
	Amenities []string `json:"amenities,omitempty"`
}

// MenuItem is a line of the printed dining menu.
type MenuItem struct {
	Name        string          `json:"name"`
	Description string          `json:"description"`
	Price       decimal.Decimal `json:"price"`
	Currency    string          `json:"currency"`
}

// MenuSection groups menu items under a heading such as "Appetizers".
type MenuSection struct {
	Name  string     `json:"name"`
	Items []MenuItem `json:"items"`
}

// MenuView is the dining menu with one section expanded.
type MenuView struct {
	Sections []string   `json:"sections"`
	Active   string     `json:"active"`
	Items    []MenuItem `json:"items"`
}

// Destination is a nearby attraction shown on the home page.
type Destination struct {
	Name        string   `json:"name"`
	Distance    string   `json:"distance"`
	Description string   `json:"description"`
	Image       string   `json:"image"`
	Activities  []string `json:"activities"`
}

// Feature is a highlight card of the resort.
type Feature struct {
	Title       string   `json:"title"`
	Subtitle    string   `json:"subtitle"`
	Description string   `json:"description"`
	Tagline     string   `json:"tagline"`
	Offerings   []string `json:"offerings"`
	Image       string   `json:"image"`
}

// HeroSlide is one image of a rotating hero carousel.
type HeroSlide struct {
	Image    string `json:"image"`
	Title    string `json:"title"`
	Subtitle string `json:"subtitle"`
}

// HeroView describes the slide currently displayed by a carousel.
type HeroView struct {
	Page       string    `json:"page"`
	Index      int       `json:"index"`
	Total      int       `json:"total"`
	IntervalMs int64     `json:"intervalMs"`
	Slide      HeroSlide `json:"slide"`
}
