package store

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/sahasharan/telugu-culinary-app2/internal/recipe"
)

// Collection is the recipe catalog keyed by category. Category order follows
// the JSON object order of the backing document, so listings stay stable
// across load/save cycles. encoding/json maps do not keep key order, hence
// the custom codec.
type Collection struct {
	Categories []string
	Recipes    map[string][]recipe.Recipe
}

// NewCollection returns an empty collection ready for Append.
func NewCollection() Collection {
	return Collection{Recipes: make(map[string][]recipe.Recipe)}
}

// Append adds r to category, creating the category at the end of the order if
// it does not exist yet. The recipe's Category field is set to match.
func (c *Collection) Append(category string, r recipe.Recipe) {
	if c.Recipes == nil {
		c.Recipes = make(map[string][]recipe.Recipe)
	}
	if _, ok := c.Recipes[category]; !ok {
		c.Categories = append(c.Categories, category)
	}
	r.Category = category
	c.Recipes[category] = append(c.Recipes[category], r)
}

// All returns every recipe as a flat list, categories in collection order and
// recipes in insertion order within each category.
func (c Collection) All() []recipe.Recipe {
	out := make([]recipe.Recipe, 0, c.Total())
	for _, cat := range c.Categories {
		out = append(out, c.Recipes[cat]...)
	}
	return out
}

// Get returns the recipe with the given id.
func (c Collection) Get(id string) (recipe.Recipe, bool) {
	for _, cat := range c.Categories {
		for _, r := range c.Recipes[cat] {
			if r.ID == id {
				return r, true
			}
		}
	}
	return recipe.Recipe{}, false
}

// HasID reports whether any recipe in the collection carries id.
func (c Collection) HasID(id string) bool {
	_, ok := c.Get(id)
	return ok
}

// Total returns the number of recipes across all categories.
func (c Collection) Total() int {
	n := 0
	for _, recipes := range c.Recipes {
		n += len(recipes)
	}
	return n
}

// UnmarshalJSON decodes the category object through the token stream so the
// document's key order is preserved. Each recipe's Category field is filled
// from the key it was found under. A duplicate category key keeps its first
// position in the order and its recipes replace the earlier ones.
func (c *Collection) UnmarshalJSON(data []byte) error {
	dec := json.NewDecoder(bytes.NewReader(data))

	tok, err := dec.Token()
	if err != nil {
		return fmt.Errorf("reading collection: %w", err)
	}
	if delim, ok := tok.(json.Delim); !ok || delim != '{' {
		return fmt.Errorf("collection document must be a JSON object, got %v", tok)
	}

	out := NewCollection()
	for dec.More() {
		keyTok, err := dec.Token()
		if err != nil {
			return fmt.Errorf("reading category name: %w", err)
		}
		category := keyTok.(string)

		var recipes []recipe.Recipe
		if err := dec.Decode(&recipes); err != nil {
			return fmt.Errorf("decoding category %q: %w", category, err)
		}
		for i := range recipes {
			recipes[i].Category = category
		}

		if _, exists := out.Recipes[category]; !exists {
			out.Categories = append(out.Categories, category)
		}
		out.Recipes[category] = recipes
	}

	if _, err := dec.Token(); err != nil {
		return fmt.Errorf("reading collection end: %w", err)
	}

	*c = out
	return nil
}

// MarshalJSON encodes the collection with categories in collection order.
// The derived Category field is cleared before writing so recipe objects on
// disk stay in their document form.
func (c Collection) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, category := range c.Categories {
		if i > 0 {
			buf.WriteByte(',')
		}
		key, err := marshalNoEscape(category)
		if err != nil {
			return nil, fmt.Errorf("encoding category name %q: %w", category, err)
		}
		buf.Write(key)
		buf.WriteByte(':')

		recipes := c.Recipes[category]
		stored := make([]recipe.Recipe, len(recipes))
		for j, r := range recipes {
			r.Category = ""
			stored[j] = r
		}
		body, err := marshalNoEscape(stored)
		if err != nil {
			return nil, fmt.Errorf("encoding category %q: %w", category, err)
		}
		buf.Write(body)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// marshalNoEscape is json.Marshal without HTML escaping, keeping the data
// files byte-for-byte readable.
func marshalNoEscape(v any) ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(v); err != nil {
		return nil, err
	}
	return bytes.TrimRight(buf.Bytes(), "\n"), nil
}
