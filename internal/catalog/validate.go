package catalog

import (
	"errors"
	"fmt"

	"dining-companion/internal/model"
)

// Validate checks catalogue invariants: location and menu item IDs are
// present and unique (item IDs across the whole catalogue), numeric fields
// are non-negative and enumerations hold known values. All violations are
// reported together.
func Validate(locations []model.DiningLocation) error {
	var errs []error

	locationIDs := make(map[string]struct{}, len(locations))
	itemOwners := make(map[string]string)

	for i, loc := range locations {
		if loc.ID == "" {
			errs = append(errs, fmt.Errorf("location #%d has no id", i))
		} else if _, dup := locationIDs[loc.ID]; dup {
			errs = append(errs, fmt.Errorf("duplicate location id %q", loc.ID))
		}
		locationIDs[loc.ID] = struct{}{}

		if loc.Name == "" {
			errs = append(errs, fmt.Errorf("location %q has no name", loc.ID))
		}
		if !loc.CrowdLevel.Valid() {
			errs = append(errs, fmt.Errorf("location %q has unknown crowd level %q", loc.ID, loc.CrowdLevel))
		}
		if loc.WaitTime < 0 {
			errs = append(errs, fmt.Errorf("location %q has negative wait time %d", loc.ID, loc.WaitTime))
		}

		for _, item := range loc.Menu {
			if item.ID == "" {
				errs = append(errs, fmt.Errorf("location %q has a menu item without id", loc.ID))
				continue
			}
			if owner, dup := itemOwners[item.ID]; dup {
				errs = append(errs, fmt.Errorf("menu item id %q used by locations %q and %q", item.ID, owner, loc.ID))
			}
			itemOwners[item.ID] = loc.ID

			if item.Price < 0 {
				errs = append(errs, fmt.Errorf("menu item %q has negative price", item.ID))
			}
			if item.Calories < 0 {
				errs = append(errs, fmt.Errorf("menu item %q has negative calories", item.ID))
			}
			for _, tag := range item.DietaryTags {
				if !tag.Valid() {
					errs = append(errs, fmt.Errorf("menu item %q has unknown dietary tag %q", item.ID, tag))
				}
			}
		}
	}

	if len(errs) > 0 {
		return fmt.Errorf("%w: %w", model.ErrInvalidCatalog, errors.Join(errs...))
	}

	return nil
}
