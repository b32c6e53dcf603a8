package catalog

import (
	"strings"

	"dining-companion/internal/model"
)

// Find returns the location with the given ID.
func Find(locations []model.DiningLocation, id string) (*model.DiningLocation, bool) {
	for i := range locations {
		if locations[i].ID == id {
			return &locations[i], true
		}
	}
	return nil, false
}

// Search returns the locations whose name, or the name of any menu item,
// contains query (case-insensitive). An empty query matches everything.
func Search(locations []model.DiningLocation, query string) []model.DiningLocation {
	query = strings.ToLower(strings.TrimSpace(query))

	out := make([]model.DiningLocation, 0, len(locations))
	for _, loc := range locations {
		if query == "" || matches(loc, query) {
			out = append(out, loc)
		}
	}
	return out
}

func matches(loc model.DiningLocation, query string) bool {
	if strings.Contains(strings.ToLower(loc.Name), query) {
		return true
	}
	for _, item := range loc.Menu {
		if strings.Contains(strings.ToLower(item.Name), query) {
			return true
		}
	}
	return false
}

// FilterByDiet keeps the items carrying tag, preserving order.
// The empty tag keeps every item.
func FilterByDiet(items []model.MenuItem, tag model.DietaryTag) []model.MenuItem {
	out := make([]model.MenuItem, 0, len(items))
	for _, item := range items {
		if tag == "" || item.HasTag(tag) {
			out = append(out, item)
		}
	}
	return out
}

// GroupByStation groups items by station. Sections appear in the order their
// station is first seen and keep item order within a station.
func GroupByStation(items []model.MenuItem) []model.MenuSection {
	sections := []model.MenuSection{}
	index := make(map[string]int)

	for _, item := range items {
		i, ok := index[item.Station]
		if !ok {
			i = len(sections)
			index[item.Station] = i
			sections = append(sections, model.MenuSection{Title: item.Station})
		}
		sections[i].Items = append(sections[i].Items, item)
	}
	return sections
}

// BuildMenu returns the grouped, optionally filtered menu of a location.
func BuildMenu(loc model.DiningLocation, tag model.DietaryTag) model.LocationMenu {
	return model.LocationMenu{
		LocationID:   loc.ID,
		LocationName: loc.Name,
		IsOpen:       loc.IsOpen,
		CrowdLevel:   loc.CrowdLevel,
		WaitTime:     loc.WaitTime,
		Filter:       tag,
		Sections:     GroupByStation(FilterByDiet(loc.Menu, tag)),
	}
}

// AllItems flattens every menu in catalogue order.
func AllItems(locations []model.DiningLocation) []model.MenuItem {
	var out []model.MenuItem
	for _, loc := range locations {
		out = append(out, loc.Menu...)
	}
	return out
}

// ItemsByIDs returns the catalogue items whose IDs are in ids, in catalogue
// order. IDs that are not in the catalogue are ignored.
func ItemsByIDs(locations []model.DiningLocation, ids []string) []model.MenuItem {
	wanted := make(map[string]struct{}, len(ids))
	for _, id := range ids {
		wanted[id] = struct{}{}
	}

	out := []model.MenuItem{}
	for _, loc := range locations {
		for _, item := range loc.Menu {
			if _, ok := wanted[item.ID]; ok {
				out = append(out, item)
			}
		}
	}
	return out
}
