package model

import "fmt"

// DietaryTag describes the dietary suitability of a menu item.
type DietaryTag string

const (
	DietaryVegan      DietaryTag = "Vegan"
	DietaryVegetarian DietaryTag = "Vegetarian"
	DietaryGlutenFree DietaryTag = "Gluten-Free"
	DietaryHalal      DietaryTag = "Halal"
)

// DietaryTags lists every known dietary tag in display order.
var DietaryTags = []DietaryTag{DietaryVegan, DietaryVegetarian, DietaryGlutenFree, DietaryHalal}

// Valid reports whether t is one of the known dietary tags.
func (t DietaryTag) Valid() bool {
	for _, known := range DietaryTags {
		if t == known {
			return true
		}
	}
	return false
}

// ParseDietaryTag converts a user supplied value into a DietaryTag.
// An empty value yields the empty tag, which means "no filter".
func ParseDietaryTag(value string) (DietaryTag, error) {
	if value == "" {
		return "", nil
	}
	tag := DietaryTag(value)
	if !tag.Valid() {
		return "", ErrInvalidDietaryTag
	}
	return tag, nil
}

// CrowdLevel is a coarse occupancy indicator for a dining location.
type CrowdLevel string

const (
	CrowdLow      CrowdLevel = "Low"
	CrowdModerate CrowdLevel = "Moderate"
	CrowdBusy     CrowdLevel = "Busy"
)

// Valid reports whether c is a known crowd level.
func (c CrowdLevel) Valid() bool {
	switch c {
	case CrowdLow, CrowdModerate, CrowdBusy:
		return true
	}
	return false
}

// Coordinates is a geographic position.
type Coordinates struct {
	Latitude  float64 `json:"latitude" yaml:"latitude"`
	Longitude float64 `json:"longitude" yaml:"longitude"`
}

// MenuItem represents a dish served at a dining location.
// IDs are unique across the whole catalogue.
type MenuItem struct {
	ID          string       `json:"id" yaml:"id" db:"id"`
	Name        string       `json:"name" yaml:"name" db:"name"`
	Description string       `json:"description" yaml:"description" db:"description"`
	Price       float64      `json:"price" yaml:"price" db:"price"`
	Calories    int          `json:"calories" yaml:"calories" db:"calories"`
	DietaryTags []DietaryTag `json:"dietaryTags" yaml:"dietaryTags" db:"dietary_tags"`
	Station     string       `json:"station" yaml:"station" db:"station"`
	IsPopular   bool         `json:"isPopular,omitempty" yaml:"isPopular,omitempty" db:"is_popular"`
}

// HasTag reports whether the item carries the given dietary tag.
func (m MenuItem) HasTag(tag DietaryTag) bool {
	for _, t := range m.DietaryTags {
		if t == tag {
			return true
		}
	}
	return false
}

// DiningLocation represents a dining hall and its menu.
type DiningLocation struct {
	ID          string      `json:"id" yaml:"id" db:"id"`
	Name        string      `json:"name" yaml:"name" db:"name"`
	Image       string      `json:"image" yaml:"image" db:"image"`
	IsOpen      bool        `json:"isOpen" yaml:"isOpen" db:"is_open"`
	ClosingTime string      `json:"closingTime" yaml:"closingTime" db:"closing_time"`
	CrowdLevel  CrowdLevel  `json:"crowdLevel" yaml:"crowdLevel" db:"crowd_level"`
	WaitTime    int         `json:"waitTime" yaml:"waitTime" db:"wait_time"`
	Menu        []MenuItem  `json:"menu" yaml:"menu"`
	Stations    []string    `json:"stations" yaml:"stations" db:"stations"`
	Coordinates Coordinates `json:"coordinates" yaml:"coordinates"`
}

// Status returns the open/closed badge text shown for the location.
func (l DiningLocation) Status() string {
	if l.IsOpen {
		return "Open"
	}
	return "Closed"
}

// CrowdSummary returns the crowd indicator text, e.g. "Busy (25m wait)".
func (l DiningLocation) CrowdSummary() string {
	return fmt.Sprintf("%s (%dm wait)", l.CrowdLevel, l.WaitTime)
}

// MenuSection groups the items served at one station.
type MenuSection struct {
	Title string     `json:"title"`
	Items []MenuItem `json:"data"`
}

// LocationMenu is a location's menu, optionally filtered by a dietary tag.
type LocationMenu struct {
	LocationID   string        `json:"locationId"`
	LocationName string        `json:"locationName"`
	IsOpen       bool          `json:"isOpen"`
	CrowdLevel   CrowdLevel    `json:"crowdLevel"`
	WaitTime     int           `json:"waitTime"`
	Filter       DietaryTag    `json:"filter,omitempty"`
	Sections     []MenuSection `json:"sections"`
}

// FavoritesResponse lists a user's favourite menu items.
type FavoritesResponse struct {
	UserID string     `json:"userId"`
	Items  []MenuItem `json:"items"`
	Count  int        `json:"count"`
}

// FavoriteStatus reports the favourite membership of a single item.
type FavoriteStatus struct {
	ItemID   string `json:"itemId"`
	Favorite bool   `json:"favorite"`
}
