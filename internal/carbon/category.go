package carbon

import (
	"fmt"
	"strings"
)

// Category is the user's profile category.
type Category string

const (
	// CategoryNone means no category has been selected yet.
	CategoryNone Category = ""

	// CategoryOrganization covers general organizations.
	CategoryOrganization Category = "Organization"

	// CategoryMining adds coal transport to the relevant activities.
	CategoryMining Category = "Mining"
)

// Categories lists the selectable categories in display order.
//
//nolint:gochecknoglobals // Read-only lookup table.
var Categories = []Category{CategoryOrganization, CategoryMining}

// ParseCategory matches s case-insensitively against the selectable categories.
func ParseCategory(s string) (Category, error) {
	for _, c := range Categories {
		if strings.EqualFold(strings.TrimSpace(s), string(c)) {
			return c, nil
		}
	}
	return CategoryNone, fmt.Errorf("%w: %q", ErrUnknownCategory, s)
}

// Valid reports whether c is a selectable category or unset.
func (c Category) Valid() bool {
	return c == CategoryNone || c == CategoryOrganization || c == CategoryMining
}

// IncludesMiningActivities reports whether Mining-only activities such as
// coal transport are surfaced and reported for c.
func (c Category) IncludesMiningActivities() bool {
	return c == CategoryMining
}

// Activities returns the factor table entries relevant to c.
func (c Category) Activities() []EmissionFactor {
	out := make([]EmissionFactor, 0, len(EmissionFactors))
	for _, f := range EmissionFactors {
		if f.MiningOnly && !c.IncludesMiningActivities() {
			continue
		}
		out = append(out, f)
	}
	return out
}

// DisplayName returns the category name, or "-" when unset.
func (c Category) DisplayName() string {
	if c == CategoryNone {
		return "-"
	}
	return string(c)
}
