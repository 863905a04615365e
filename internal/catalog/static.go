package catalog

import (
	"amritha-heritage/internal/model"

	"github.com/shopspring/decimal"
)

const (
	currencyUSD = "USD"
	currencyINR = "INR"
)

func price(v int64) decimal.Decimal {
	return decimal.NewFromInt(v)
}

func priceRef(v int64) *decimal.Decimal {
	d := decimal.NewFromInt(v)
	return &d
}

func menuItem(name, description string, usd int64) model.MenuItem {
	return model.MenuItem{Name: name, Description: description, Price: price(usd), Currency: currencyUSD}
}

// Default returns the built-in site content.
func Default() *Content {
	return &Content{
		Dishes:       MustNew(defaultDishes()),
		Rooms:        MustNew(defaultRooms()),
		Specials:     defaultSpecials(),
		Highlights:   defaultHighlights(),
		Menu:         defaultMenu(),
		Destinations: defaultDestinations(),
		Features:     defaultFeatures(),
		Hero: map[string][]model.HeroSlide{
			PageHome: {
				{Image: "/assets/images/hero/hero-1.jpg", Title: "Luxury Redefined", Subtitle: "Experience unparalleled elegance"},
				{Image: "/assets/images/hero/hero-2.jpg", Title: "Premium Suites", Subtitle: "Where comfort meets sophistication"},
				{Image: "/assets/images/hero/hero-3.jpg", Title: "Wellness Sanctuary", Subtitle: "Rejuvenate your mind and body"},
			},
			PageAccommodation: {
				{Image: "/assets/images/demo/hotel-room.jpg", Title: "Deluxe Room", Subtitle: "Vintage teak and heritage gardens"},
				{Image: "/assets/images/demo/suite1.jpg", Title: "Executive Suite", Subtitle: "Panoramic estate views"},
				{Image: "/assets/images/demo/accessible1.jpg", Title: "Accessible Room", Subtitle: "Effortless, barrier-free comfort"},
			},
		},
	}
}

func defaultDishes() []model.CatalogItem {
	return []model.CatalogItem{
		{
			ID:          "niagra-chicken",
			Name:        "Niagra Chicken",
			Description: "Fresh Atlantic sea bass with herb-crusted emerald sauce, seasonal vegetables",
			Price:       price(48),
			Currency:    currencyUSD,
			Category:    "Main Course",
			Image:       "/dining/niagrachicken.jpg",
			Rating:      5,
			PrepTime:    "25 min",
			Serves:      "2-3",
		},
		{
			ID:          "beef-onion",
			Name:        "Beef With Onion",
			Description: "Prime Japanese wagyu beef with truffle reduction and roasted root vegetables",
			Price:       price(85),
			Currency:    currencyUSD,
			Category:    "Main Course",
			Image:       "/dining/beefwithonion.jpg",
			Rating:      5,
			PrepTime:    "30 min",
			Serves:      "1-2",
		},
		{
			ID:          "chicken-mushroom",
			Name:        "Chicken Mushroom",
			Description: "Creamy arborio rice with wild mushrooms, parmesan, and fresh herbs",
			Price:       price(32),
			Currency:    currencyUSD,
			Category:    "Main Course",
			Image:       "/dining/chickenmushroom.jpg",
			Rating:      4,
			PrepTime:    "20 min",
			Serves:      "1-2",
		},
		{
			ID:          "lobster-thermidor",
			Name:        "Lobster Thermidor",
			Description: "Classic French lobster dish with cognac cream sauce and gruyere cheese",
			Price:       price(95),
			Currency:    currencyUSD,
			Category:    "Seafood",
			Image:       "/dining/diningSection1.jpg",
			Rating:      5,
			PrepTime:    "35 min",
			Serves:      "1-2",
		},
		{
			ID:          "truffle-pasta",
			Name:        "Truffle Pasta",
			Description: "Handmade tagliatelle with black truffle, parmesan, and butter sauce",
			Price:       price(45),
			Currency:    currencyUSD,
			Category:    "Pasta",
			Image:       "/dining/diningSection1.jpg",
			Rating:      4,
			PrepTime:    "20 min",
			Serves:      "1-2",
		},
		{
			ID:          "chocolate-souffle",
			Name:        "Chocolate Soufflé",
			Description: "Warm chocolate soufflé with vanilla bean ice cream",
			Price:       price(18),
			Currency:    currencyUSD,
			Category:    "Dessert",
			Image:       "/dining/diningSection1.jpg",
			Rating:      5,
			PrepTime:    "15 min",
			Serves:      "1",
		},
	}
}

func defaultRooms() []model.CatalogItem {
	return []model.CatalogItem{
		{
			ID:          "deluxe",
			Name:        "Deluxe Room",
			Description: "Spanning 32 m², the Deluxe Room blends vintage teak furnishing with a king-size bed and opens onto a private balcony overlooking the heritage gardens.",
			Price:       price(6000),
			Currency:    currencyINR,
			Unit:        "night",
			Category:    "Deluxe",
			Image:       "/assets/images/demo/hotel-room.jpg",
			Images: []string{
				"/assets/images/demo/hotel-room.jpg",
				"/assets/images/demo/bedroom.jpg",
				"/assets/images/demo/balcony.jpg",
			},
			Amenities: []string{"bed", "wifi", "view", "bath"},
		},
		{
			ID:          "executive",
			Name:        "Executive Suite",
			Description: "At 48 m² the Executive Suite offers a living salon, bespoke art pieces, and wrap-around windows framing panoramic estate views.",
			Price:       price(9000),
			Currency:    currencyINR,
			Unit:        "night",
			Category:    "Suite",
			Image:       "/assets/images/demo/suite1.jpg",
			Images: []string{
				"/assets/images/demo/suite1.jpg",
				"/assets/images/demo/living-room.jpg",
				"/assets/images/demo/panorama.jpg",
			},
			Amenities: []string{"bed", "wifi", "tv", "view", "bath"},
		},
		{
			ID:          "accessible",
			Name:        "Accessible Room",
			Description: "A barrier-free 30 m² retreat featuring wider doorways, roll-in shower, grab bars, and lowered amenities for effortless comfort.",
			Price:       price(5500),
			Currency:    currencyINR,
			Unit:        "night",
			Category:    "Accessible",
			Image:       "/assets/images/demo/accessible1.jpg",
			Images: []string{
				"/assets/images/demo/accessible1.jpg",
				"/assets/images/demo/bathroom.jpg",
				"/assets/images/demo/garden-view.jpg",
			},
			Amenities: []string{"bed", "wifi", "view", "bath"},
		},
	}
}

func defaultSpecials() []model.CatalogItem {
	items := []model.CatalogItem{
		{
			ID:            "seasonal-risotto",
			Name:          "Chef's Seasonal Risotto",
			Description:   "Creamy arborio rice with wild mushrooms, truffle oil, and aged parmesan",
			Price:         price(42),
			OriginalPrice: priceRef(58),
			Currency:      currencyUSD,
			Category:      "Main Course",
			Image:         "/dining/niagrachicken.jpg",
			Rating:        5,
			PrepTime:      "25 min",
			Serves:        "1-2",
		},
		{
			ID:            "special-lobster-thermidor",
			Name:          "Lobster Thermidor",
			Description:   "Fresh Maine lobster with cognac cream sauce and gruyère cheese",
			Price:         price(78),
			OriginalPrice: priceRef(95),
			Currency:      currencyUSD,
			Category:      "Seafood",
			Image:         "/dining/beefwithonion.jpg",
			Rating:        5,
			PrepTime:      "35 min",
			Serves:        "1",
		},
		{
			ID:            "wagyu-carpaccio",
			Name:          "Wagyu Beef Carpaccio",
			Description:   "Thinly sliced premium wagyu with truffle aioli and aged balsamic",
			Price:         price(38),
			OriginalPrice: priceRef(52),
			Currency:      currencyUSD,
			Category:      "Appetizer",
			Image:         "/dining/chickenmushroom.jpg",
			Rating:        5,
			PrepTime:      "15 min",
			Serves:        "1",
		},
	}
	return MustNew(items).Items()
}

// defaultHighlights are the home page dishes that deep-link into the table
// reservation with the dish preselected.
func defaultHighlights() []model.CatalogItem {
	dishes := MustNew(defaultDishes())
	return dishes.Resolve([]string{"niagra-chicken", "beef-onion", "chicken-mushroom"})
}

func defaultMenu() []model.MenuSection {
	return []model.MenuSection{
		{Name: "Appetizers", Items: []model.MenuItem{
			menuItem("Truffle Arancini", "Crispy risotto balls with mozzarella and truffle aioli", 18),
			menuItem("Burrata Caprese", "Fresh burrata with heirloom tomatoes and basil", 22),
			menuItem("Duck Confit Spring Rolls", "Crispy rolls with hoisin sauce and pickled vegetables", 24),
			menuItem("Seared Scallops", "With cauliflower purée and pancetta", 28),
		}},
		{Name: "Soups & Salads", Items: []model.MenuItem{
			menuItem("Lobster Bisque", "Creamy soup with cognac and crème fraîche", 26),
			menuItem("Caesar Salad", "Romaine, parmesan, croutons, anchovy dressing", 18),
			menuItem("Beetroot & Goat Cheese", "Roasted beets, goat cheese, walnuts, balsamic", 20),
			menuItem("French Onion Soup", "With gruyère cheese and croutons", 16),
		}},
		{Name: "Main Courses", Items: []model.MenuItem{
			menuItem("Filet Mignon", "8oz prime beef with red wine reduction and truffle mashed potatoes", 68),
			menuItem("Rack of Lamb", "Herb-crusted with mint jus and roasted vegetables", 72),
			menuItem("Duck Breast", "With cherry sauce and wild rice pilaf", 58),
			menuItem("Veal Milanese", "Breaded cutlet with arugula and parmesan", 54),
		}},
		{Name: "Seafood", Items: []model.MenuItem{
			menuItem("Atlantic Salmon", "With dill sauce and asparagus", 48),
			menuItem("Sea Bass", "With lemon butter and seasonal vegetables", 52),
			menuItem("Lobster Tail", "With drawn butter and rice pilaf", 85),
			menuItem("Scallops", "Seared with cauliflower purée and pancetta", 56),
		}},
		{Name: "Vegetarian", Items: []model.MenuItem{
			menuItem("Wild Mushroom Risotto", "Arborio rice with mixed mushrooms and parmesan", 32),
			menuItem("Eggplant Parmesan", "Breaded eggplant with marinara and mozzarella", 28),
			menuItem("Vegetable Wellington", "Puff pastry with roasted vegetables and herb sauce", 34),
			menuItem("Quinoa Bowl", "With roasted vegetables and tahini dressing", 26),
		}},
		{Name: "Desserts", Items: []model.MenuItem{
			menuItem("Crème Brûlée", "Classic vanilla custard with caramelized sugar", 14),
			menuItem("Chocolate Soufflé", "Warm chocolate soufflé with vanilla ice cream", 16),
			menuItem("Tiramisu", "Classic Italian dessert with coffee and mascarpone", 15),
			menuItem("Apple Tarte Tatin", "Caramelized apple tart with vanilla ice cream", 14),
		}},
		{Name: "Beverages", Items: []model.MenuItem{
			menuItem("House Red Wine", "Glass of selected red wine", 12),
			menuItem("House White Wine", "Glass of selected white wine", 12),
			menuItem("Craft Cocktails", "Signature cocktails made to order", 16),
			menuItem("Artisan Coffee", "Freshly brewed coffee or espresso", 6),
		}},
	}
}

func defaultDestinations() []model.Destination {
	return []model.Destination{
		{
			Name:        "Shanku Mukham Beach",
			Distance:    "5 min walk",
			Description: "A pristine valley with crystal-clear streams and lush greenery",
			Image:       "/assets/images/destinations/shankumukham.jpg",
			Activities:  []string{"Hiking", "Photography", "Meditation"},
		},
		{
			Name:        "Kovalam Beach",
			Distance:    "10 min drive",
			Description: "Perfect for kayaking and peaceful morning reflections",
			Image:       "/assets/images/destinations/kovalam.jpg",
			Activities:  []string{"Kayaking", "Swimming", "Fishing"},
		},
		{
			Name:        "Shri Padmanabhaswami Temple",
			Distance:    "20 min drive",
			Description: "Breathtaking mountain views and sunrise photography spots",
			Image:       "/assets/images/destinations/padmanabhaswamy.jpg",
			Activities:  []string{"Rock Climbing", "Sunrise Tours", "Scenic Drives"},
		},
		{
			Name:        "Ponmudi",
			Distance:    "15 min walk",
			Description: "Centuries-old trees and hidden waterfalls await discovery",
			Image:       "/assets/images/destinations/ponmudi.jpg",
			Activities:  []string{"Nature Walks", "Bird Watching", "Waterfall Tours"},
		},
	}
}

func defaultFeatures() []model.Feature {
	return []model.Feature{
		{
			Title:       "Our villas",
			Subtitle:    "Discover our villas",
			Description: "Enjoy the privacy and comfort of a villa with private pool and all the services of a hotel.",
			Tagline:     "The genuine authenticity of our island",
			Offerings:   []string{"ICONIC VILLA", "OCEAN VILLAS", "COLLECTION VILLAS", "SEA LOUNGE VILLAS", "DELUXE VILLAS", "RUSTIC VILLAS"},
			Image:       "/assets/images/hero/hero-1.jpg",
		},
		{
			Title:       "Private Pools",
			Subtitle:    "Exclusive relaxation",
			Description: "Each villa features its own private pool surrounded by gardens and stunning views.",
			Tagline:     "Your personal oasis awaits",
			Offerings:   []string{"INFINITY POOLS", "HEATED POOLS", "POOL BAR SERVICE", "UNDERWATER LIGHTING", "PRIVACY LANDSCAPING", "POOL MAINTENANCE"},
			Image:       "/assets/images/hero/hero-2.jpg",
		},
		{
			Title:       "Authentic Design",
			Subtitle:    "Island architecture",
			Description: "Traditional stone walls meet modern luxury in our carefully crafted interiors and exteriors.",
			Tagline:     "Where heritage meets luxury",
			Offerings:   []string{"STONE CONSTRUCTION", "HANDCRAFTED FURNISHING", "TRADITIONAL ARCHWAYS", "MODERN AMENITIES", "CULTURAL ART PIECES", "LOCAL MATERIALS"},
			Image:       "/assets/images/hero/hero-3.jpg",
		},
		{
			Title:       "Panoramic Views",
			Subtitle:    "Breathtaking vistas",
			Description: "Wake up to spectacular sunrise views from your private terrace.",
			Tagline:     "Nature's canvas before you",
			Offerings:   []string{"SEA VIEWS", "PRIVATE TERRACES", "FLOOR-TO-CEILING WINDOWS", "SUNSET VIEWING DECKS", "OUTDOOR DINING AREAS", "MOUNTAIN VIEWS"},
			Image:       "/assets/images/hero/hero-1.jpg",
		},
		{
			Title:       "Premium Services",
			Subtitle:    "Hotel luxury",
			Description: "Concierge services, daily housekeeping, and 24/7 support while maintaining your privacy.",
			Tagline:     "The best of both worlds",
			Offerings:   []string{"PERSONAL CONCIERGE", "DAILY HOUSEKEEPING", "24/7 GUEST SUPPORT", "PRIVATE TRANSFERS", "EXCLUSIVE EXPERIENCES", "BUTLER SERVICE"},
			Image:       "/assets/images/hero/hero-2.jpg",
		},
		{
			Title:       "Cultural Immersion",
			Subtitle:    "Local experiences",
			Description: "Connect with authentic local culture through curated experiences and partnerships.",
			Tagline:     "Live like a local",
			Offerings:   []string{"COOKING CLASSES", "CULTURAL TOURS", "ARTISAN WORKSHOPS", "HISTORICAL SITE VISITS", "AUTHENTIC DINING", "LOCAL FESTIVALS"},
			Image:       "/assets/images/hero/hero-3.jpg",
		},
	}
}
