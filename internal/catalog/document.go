package catalog

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"amritha-heritage/internal/model"

	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"
)

// contentDocument is the YAML layout of a catalog file. Every section is
// optional; sections left out keep the built-in content.
type contentDocument struct {
	Dishes       []itemDocument                 `yaml:"dishes,omitempty"`
	Rooms        []itemDocument                 `yaml:"rooms,omitempty"`
	Specials     []itemDocument                 `yaml:"specials,omitempty"`
	Highlights   []string                       `yaml:"highlights,omitempty"`
	Menu         []menuSectionDocument          `yaml:"menu,omitempty"`
	Destinations []destinationDocument          `yaml:"destinations,omitempty"`
	Features     []featureDocument              `yaml:"features,omitempty"`
	Hero         map[string][]heroSlideDocument `yaml:"hero,omitempty"`
}

type itemDocument struct {
	ID            string   `yaml:"id"`
	Name          string   `yaml:"name"`
	Description   string   `yaml:"description,omitempty"`
	Price         string   `yaml:"price"`
	OriginalPrice string   `yaml:"original_price,omitempty"`
	Currency      string   `yaml:"currency,omitempty"`
	Unit          string   `yaml:"unit,omitempty"`
	Category      string   `yaml:"category,omitempty"`
	Image         string   `yaml:"image,omitempty"`
	Rating        int      `yaml:"rating,omitempty"`
	PrepTime      string   `yaml:"prep_time,omitempty"`
	Serves        string   `yaml:"serves,omitempty"`
	Images        []string `yaml:"images,omitempty"`
	Amenities     []string `yaml:"amenities,omitempty"`
}

type menuSectionDocument struct {
	Name  string             `yaml:"name"`
	Items []menuItemDocument `yaml:"items"`
}

type menuItemDocument struct {
	Name        string `yaml:"name"`
	Description string `yaml:"description,omitempty"`
	Price       string `yaml:"price"`
	Currency    string `yaml:"currency,omitempty"`
}

type destinationDocument struct {
	Name        string   `yaml:"name"`
	Distance    string   `yaml:"distance,omitempty"`
	Description string   `yaml:"description,omitempty"`
	Image       string   `yaml:"image,omitempty"`
	Activities  []string `yaml:"activities,omitempty"`
}

type featureDocument struct {
	Title       string   `yaml:"title"`
	Subtitle    string   `yaml:"subtitle,omitempty"`
	Description string   `yaml:"description,omitempty"`
	Tagline     string   `yaml:"tagline,omitempty"`
	Offerings   []string `yaml:"offerings,omitempty"`
	Image       string   `yaml:"image,omitempty"`
}

type heroSlideDocument struct {
	Image    string `yaml:"image"`
	Title    string `yaml:"title,omitempty"`
	Subtitle string `yaml:"subtitle,omitempty"`
}

// Decode reads a YAML catalog document. Sections missing from the document
// are filled from Default.
func Decode(r io.Reader) (*Content, error) {
	var doc contentDocument
	if err := yaml.NewDecoder(r).Decode(&doc); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("failed to decode catalog document: %w", err)
	}
	return doc.content()
}

// Encode writes content as a YAML catalog document.
func Encode(w io.Writer, c *Content) error {
	doc := contentDocument{
		Dishes:   encodeItems(c.Dishes.Items()),
		Rooms:    encodeItems(c.Rooms.Items()),
		Specials: encodeItems(c.Specials),
		Hero:     make(map[string][]heroSlideDocument, len(c.Hero)),
	}
	for _, item := range c.Highlights {
		doc.Highlights = append(doc.Highlights, item.ID)
	}
	for _, section := range c.Menu {
		sd := menuSectionDocument{Name: section.Name}
		for _, item := range section.Items {
			sd.Items = append(sd.Items, menuItemDocument{
				Name:        item.Name,
				Description: item.Description,
				Price:       item.Price.String(),
				Currency:    item.Currency,
			})
		}
		doc.Menu = append(doc.Menu, sd)
	}
	for _, d := range c.Destinations {
		doc.Destinations = append(doc.Destinations, destinationDocument(d))
	}
	for _, f := range c.Features {
		doc.Features = append(doc.Features, featureDocument(f))
	}
	for page, slides := range c.Hero {
		for _, s := range slides {
			doc.Hero[page] = append(doc.Hero[page], heroSlideDocument(s))
		}
	}

	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(&doc); err != nil {
		return fmt.Errorf("failed to encode catalog document: %w", err)
	}
	return enc.Close()
}

func encodeItems(items []model.CatalogItem) []itemDocument {
	out := make([]itemDocument, 0, len(items))
	for _, item := range items {
		d := itemDocument{
			ID:          item.ID,
			Name:        item.Name,
			Description: item.Description,
			Price:       item.Price.String(),
			Currency:    item.Currency,
			Unit:        item.Unit,
			Category:    item.Category,
			Image:       item.Image,
			Rating:      item.Rating,
			PrepTime:    item.PrepTime,
			Serves:      item.Serves,
			Images:      item.Images,
			Amenities:   item.Amenities,
		}
		if item.OriginalPrice != nil {
			d.OriginalPrice = item.OriginalPrice.String()
		}
		out = append(out, d)
	}
	return out
}

func (doc *contentDocument) content() (*Content, error) {
	c := &Content{}

	if len(doc.Dishes) > 0 {
		items, err := decodeItems("dishes", doc.Dishes)
		if err != nil {
			return nil, err
		}
		if c.Dishes, err = New(items); err != nil {
			return nil, fmt.Errorf("dishes: %w", err)
		}
	}

	if len(doc.Rooms) > 0 {
		items, err := decodeItems("rooms", doc.Rooms)
		if err != nil {
			return nil, err
		}
		if c.Rooms, err = New(items); err != nil {
			return nil, fmt.Errorf("rooms: %w", err)
		}
	}

	if len(doc.Specials) > 0 {
		items, err := decodeItems("specials", doc.Specials)
		if err != nil {
			return nil, err
		}
		specials, err := New(items)
		if err != nil {
			return nil, fmt.Errorf("specials: %w", err)
		}
		c.Specials = specials.Items()
	}

	for i, section := range doc.Menu {
		ms := model.MenuSection{Name: strings.TrimSpace(section.Name)}
		if ms.Name == "" {
			return nil, fmt.Errorf("menu section %d: name is required", i)
		}
		for j, item := range section.Items {
			p, err := parsePrice(item.Price)
			if err != nil {
				return nil, fmt.Errorf("menu section %q item %d: %w", ms.Name, j, err)
			}
			ms.Items = append(ms.Items, model.MenuItem{
				Name:        item.Name,
				Description: item.Description,
				Price:       p,
				Currency:    defaultCurrency(item.Currency),
			})
		}
		c.Menu = append(c.Menu, ms)
	}

	for _, d := range doc.Destinations {
		c.Destinations = append(c.Destinations, model.Destination(d))
	}
	for _, f := range doc.Features {
		c.Features = append(c.Features, model.Feature(f))
	}
	if len(doc.Hero) > 0 {
		c.Hero = make(map[string][]model.HeroSlide, len(doc.Hero))
		for page, slides := range doc.Hero {
			for _, s := range slides {
				c.Hero[page] = append(c.Hero[page], model.HeroSlide(s))
			}
		}
	}

	base := Default()
	c.withDefaults(base)

	switch {
	case len(doc.Highlights) > 0:
		if missing := c.Dishes.Missing(doc.Highlights); len(missing) > 0 {
			return nil, fmt.Errorf("highlights reference unknown dishes: %s", strings.Join(missing, ", "))
		}
		c.Highlights = c.Dishes.Resolve(doc.Highlights)
	case len(doc.Dishes) > 0:
		c.Highlights = highlightsFor(c.Dishes, base.Highlights)
	}

	return c, nil
}

// highlightsFor keeps the base highlights still served by dishes. When none
// survive, the leading dishes take their place.
func highlightsFor(dishes *Catalog, base []model.CatalogItem) []model.CatalogItem {
	ids := make([]string, len(base))
	for i, item := range base {
		ids[i] = item.ID
	}
	if kept := dishes.Resolve(ids); len(kept) > 0 {
		return kept
	}

	items := dishes.Items()
	return items[:min(len(base), len(items))]
}

func decodeItems(section string, docs []itemDocument) ([]model.CatalogItem, error) {
	items := make([]model.CatalogItem, 0, len(docs))
	for i, d := range docs {
		p, err := parsePrice(d.Price)
		if err != nil {
			return nil, fmt.Errorf("%s item %d (%s): %w", section, i, d.ID, err)
		}

		item := model.CatalogItem{
			ID:          d.ID,
			Name:        d.Name,
			Description: d.Description,
			Price:       p,
			Currency:    defaultCurrency(d.Currency),
			Unit:        d.Unit,
			Category:    d.Category,
			Image:       d.Image,
			Rating:      d.Rating,
			PrepTime:    d.PrepTime,
			Serves:      d.Serves,
			Images:      d.Images,
			Amenities:   d.Amenities,
		}

		if d.OriginalPrice != "" {
			op, err := parsePrice(d.OriginalPrice)
			if err != nil {
				return nil, fmt.Errorf("%s item %d (%s) original price: %w", section, i, d.ID, err)
			}
			item.OriginalPrice = &op
		}

		items = append(items, item)
	}
	return items, nil
}

func parsePrice(s string) (decimal.Decimal, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return decimal.Zero, fmt.Errorf("price is required")
	}
	p, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero, fmt.Errorf("invalid price %q: %w", s, err)
	}
	if p.IsNegative() {
		return decimal.Zero, fmt.Errorf("price %q must not be negative", s)
	}
	// The ledger stores prices with two decimal places.
	if !p.Equal(p.Round(2)) {
		return decimal.Zero, fmt.Errorf("price %q has more than two decimal places", s)
	}
	return p, nil
}

func defaultCurrency(currency string) string {
	if currency == "" {
		return currencyUSD
	}
	return strings.ToUpper(currency)
}
