package catalog

import (
	"amritha-heritage/internal/model"
)

// Hero carousel pages.
const (
	PageHome          = "home"
	PageAccommodation = "accommodation"
)

// DefaultMenuSection is the dining menu section shown when none is requested.
const DefaultMenuSection = "Appetizers"

// Content bundles every catalog the site serves. It is built once at start-up
// and only read afterwards.
type Content struct {
	Dishes       *Catalog
	Rooms        *Catalog
	Specials     []model.CatalogItem
	Highlights   []model.CatalogItem
	Menu         []model.MenuSection
	Destinations []model.Destination
	Features     []model.Feature
	Hero         map[string][]model.HeroSlide
}

// MenuSections returns the section names in menu order.
func (c *Content) MenuSections() []string {
	names := make([]string, len(c.Menu))
	for i, section := range c.Menu {
		names[i] = section.Name
	}
	return names
}

// MenuView expands the named section. An empty or unknown name falls back to
// DefaultMenuSection, or to the first section when that does not exist either.
func (c *Content) MenuView(section string) model.MenuView {
	view := model.MenuView{
		Sections: c.MenuSections(),
		Items:    []model.MenuItem{},
	}
	if len(c.Menu) == 0 {
		return view
	}

	active := c.findSection(section)
	if active < 0 {
		active = c.findSection(DefaultMenuSection)
	}
	if active < 0 {
		active = 0
	}

	view.Active = c.Menu[active].Name
	view.Items = append(view.Items, c.Menu[active].Items...)
	return view
}

func (c *Content) findSection(name string) int {
	if name == "" {
		return -1
	}
	for i, section := range c.Menu {
		if section.Name == name {
			return i
		}
	}
	return -1
}

// HeroSlides returns the slides of a page carousel.
func (c *Content) HeroSlides(page string) ([]model.HeroSlide, bool) {
	slides, ok := c.Hero[page]
	if !ok || len(slides) == 0 {
		return nil, false
	}
	return slides, true
}

// withDefaults fills every section left empty from base.
func (c *Content) withDefaults(base *Content) *Content {
	if c.Dishes == nil || c.Dishes.Len() == 0 {
		c.Dishes = base.Dishes
	}
	if c.Rooms == nil || c.Rooms.Len() == 0 {
		c.Rooms = base.Rooms
	}
	if len(c.Specials) == 0 {
		c.Specials = base.Specials
	}
	if len(c.Highlights) == 0 {
		c.Highlights = base.Highlights
	}
	if len(c.Menu) == 0 {
		c.Menu = base.Menu
	}
	if len(c.Destinations) == 0 {
		c.Destinations = base.Destinations
	}
	if len(c.Features) == 0 {
		c.Features = base.Features
	}
	if c.Hero == nil {
		c.Hero = map[string][]model.HeroSlide{}
	}
	for page, slides := range base.Hero {
		if len(c.Hero[page]) == 0 {
			c.Hero[page] = slides
		}
	}
	return c
}
