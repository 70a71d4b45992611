package recipe

import (
	"strconv"
	"strings"
)

// Known category names, in navigation order. Recipes in other categories are
// kept and searchable but do not appear in category navigation.
var Categories = []string{"biryanis", "curries", "sweets", "snacks", "breakfast"}

// Recipe represents a single dish in the catalog. JSON tags mirror the
// on-disk recipe document; Category is derived from the document's object key
// and is never written back into the recipe objects themselves.
type Recipe struct {
	ID           string     `json:"id"`
	Name         string     `json:"name"` // Telugu script
	EnglishName  string     `json:"english_name"`
	Category     string     `json:"category,omitempty"`
	Ingredients  []string   `json:"ingredients"`
	CookingTime  string     `json:"cooking_time"`
	Difficulty   Difficulty `json:"difficulty"`
	Servings     string     `json:"servings"`
	Description  string     `json:"description"`
	Instructions []string   `json:"instructions"`
}

// SearchText returns the lowercased text the keyword search scans: name,
// english name, ingredients and description joined by single spaces. Fields
// are joined before matching, so a query may span a field boundary.
func (r Recipe) SearchText() string {
	parts := []string{
		r.Name,
		r.EnglishName,
		strings.Join(r.Ingredients, " "),
		r.Description,
	}
	return strings.ToLower(strings.Join(parts, " "))
}

// SearchFilter narrows a catalog search. An empty Query matches every recipe;
// an empty Difficulty disables the difficulty filter.
type SearchFilter struct {
	Query      string     `json:"query"`
	Difficulty Difficulty `json:"difficulty,omitempty"`
}

// NewID builds a recipe id from the Telugu name and the collection size at the
// time of the add, e.g. "పులిహోర_3". Callers must bump seq until the id is
// free; ids are unique within a collection.
func NewID(name string, seq int) string {
	slug := strings.ToLower(strings.ReplaceAll(strings.TrimSpace(name), " ", "_"))
	return slug + "_" + strconv.Itoa(seq)
}

// KnownCategory reports whether name is one of the navigable categories.
func KnownCategory(name string) bool {
	for _, c := range Categories {
		if c == name {
			return true
		}
	}
	return false
}

// CategoryTitle returns the display form of a category name, "biryanis"
// becoming "Biryanis". Names in non-Latin scripts come back unchanged.
func CategoryTitle(name string) string {
	r := []rune(name)
	if len(r) == 0 {
		return ""
	}
	return strings.ToUpper(string(r[0])) + string(r[1:])
}
