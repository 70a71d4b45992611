package store

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"go.uber.org/zap"

	"github.com/sahasharan/telugu-culinary-app2/internal/recipe"
)

// Data file names inside the store directory
const (
	RecipesFile   = "recipes.json"
	FavoritesFile = "favorites.json"
)

var (
	// ErrNotFound is returned when a recipe id does not exist.
	ErrNotFound = errors.New("recipe not found")
	// ErrInvalidRecipe is returned when a submitted recipe is missing
	// required fields.
	ErrInvalidRecipe = errors.New("invalid recipe")
)

// Stats summarizes the catalog for the home page and the status command.
type Stats struct {
	Recipes    int `json:"recipes"`
	Categories int `json:"categories"`
	Favorites  int `json:"favorites"`
}

// Store owns the in-memory recipe collection and favorites set and keeps
// both in sync with their JSON documents on disk. Every mutation rewrites
// the whole backing file; there is no write-ahead log and no atomic rename,
// concurrent processes race with last-writer-wins semantics.
type Store struct {
	mu        sync.RWMutex
	dir       string
	logger    *zap.Logger
	recipes   Collection
	favorites []string
}

// Open loads the store from dir, creating the directory if needed. A missing
// recipe document is seeded with the default collection and written out; a
// document that cannot be parsed falls back to the defaults in memory without
// touching the file. Favorites fall back to an empty set.
func Open(dir string, logger *zap.Logger) (*Store, error) {
	if logger == nil {
		logger = zap.NewNop()
	}
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("creating data dir: %w", err)
	}

	s := &Store{dir: dir, logger: logger}

	data, err := os.ReadFile(s.recipesPath())
	switch {
	case err == nil:
		var c Collection
		if uerr := json.Unmarshal(data, &c); uerr != nil {
			logger.Warn("recipe document unreadable, using defaults",
				zap.String("path", s.recipesPath()), zap.Error(uerr))
			s.recipes = DefaultCollection()
		} else {
			s.recipes = c
		}
	case os.IsNotExist(err):
		s.recipes = DefaultCollection()
		if werr := s.saveRecipesLocked(); werr != nil {
			logger.Warn("could not seed recipe document", zap.Error(werr))
		}
	default:
		return nil, fmt.Errorf("reading %s: %w", RecipesFile, err)
	}

	s.favorites = loadFavorites(s.favoritesPath(), logger)

	logger.Info("store opened",
		zap.String("dir", dir),
		zap.Int("recipes", s.recipes.Total()),
		zap.Int("favorites", len(s.favorites)))
	return s, nil
}

func loadFavorites(path string, logger *zap.Logger) []string {
	data, err := os.ReadFile(path)
	if err != nil {
		if !os.IsNotExist(err) {
			logger.Warn("favorites document unreadable, starting empty",
				zap.String("path", path), zap.Error(err))
		}
		return nil
	}
	var favorites []string
	if err := json.Unmarshal(data, &favorites); err != nil {
		logger.Warn("favorites document malformed, starting empty",
			zap.String("path", path), zap.Error(err))
		return nil
	}
	return favorites
}

// Reload re-reads both documents from disk, replacing the in-memory state.
// On a parse or read error the previous state is kept and the error is
// returned.
func (s *Store) Reload() error {
	data, err := os.ReadFile(s.recipesPath())
	if err != nil {
		return fmt.Errorf("reading %s: %w", RecipesFile, err)
	}
	var c Collection
	if err := json.Unmarshal(data, &c); err != nil {
		return fmt.Errorf("parsing %s: %w", RecipesFile, err)
	}
	favorites := loadFavorites(s.favoritesPath(), s.logger)

	s.mu.Lock()
	s.recipes = c
	s.favorites = favorites
	s.mu.Unlock()

	s.logger.Debug("store reloaded", zap.Int("recipes", c.Total()))
	return nil
}

// Dir returns the directory holding the JSON documents.
func (s *Store) Dir() string { return s.dir }

func (s *Store) recipesPath() string   { return filepath.Join(s.dir, RecipesFile) }
func (s *Store) favoritesPath() string { return filepath.Join(s.dir, FavoritesFile) }

// All returns every recipe, categories in collection order.
func (s *Store) All() []recipe.Recipe {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.recipes.All()
}

// Get returns the recipe with the given id or ErrNotFound.
func (s *Store) Get(id string) (recipe.Recipe, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	r, ok := s.recipes.Get(id)
	if !ok {
		return recipe.Recipe{}, fmt.Errorf("%w: %s", ErrNotFound, id)
	}
	return r, nil
}

// Categories returns the category order of the collection.
func (s *Store) Categories() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]string, len(s.recipes.Categories))
	copy(out, s.recipes.Categories)
	return out
}

// CategoryRecipes returns the recipes of one category in insertion order.
func (s *Store) CategoryRecipes(category string) []recipe.Recipe {
	s.mu.RLock()
	defer s.mu.RUnlock()
	recipes := s.recipes.Recipes[category]
	out := make([]recipe.Recipe, len(recipes))
	copy(out, recipes)
	return out
}

// Search returns the recipes matching the filter, in collection order. An
// empty query matches everything; the match is a case-insensitive substring
// test against name, english name, ingredients and description. There is no
// ranking.
func (s *Store) Search(f recipe.SearchFilter) []recipe.Recipe {
	s.mu.RLock()
	defer s.mu.RUnlock()

	query := strings.ToLower(strings.TrimSpace(f.Query))
	out := []recipe.Recipe{}
	for _, r := range s.recipes.All() {
		if query != "" && !strings.Contains(r.SearchText(), query) {
			continue
		}
		if f.Difficulty != "" && r.Difficulty != f.Difficulty {
			continue
		}
		out = append(out, r)
	}
	return out
}

// Add validates r, assigns it a fresh id and appends it to its category,
// then rewrites the recipe document. A caller-supplied id is ignored; the
// assigned id is the Telugu-name slug plus the collection size, bumped until
// unique, so a colliding submission deterministically receives a new id.
// When the write fails the recipe stays in the in-memory collection and the
// error reports the failed persist.
func (s *Store) Add(r recipe.Recipe) (recipe.Recipe, error) {
	r = normalize(r)
	if err := validate(r); err != nil {
		return recipe.Recipe{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	seq := s.recipes.Total()
	id := recipe.NewID(r.Name, seq)
	for s.recipes.HasID(id) {
		seq++
		id = recipe.NewID(r.Name, seq)
	}
	r.ID = id

	s.recipes.Append(r.Category, r)

	if err := s.saveRecipesLocked(); err != nil {
		return r, fmt.Errorf("persisting recipe %s: %w", r.ID, err)
	}
	s.logger.Info("recipe added", zap.String("id", r.ID), zap.String("category", r.Category))
	return r, nil
}

// ToggleFavorite adds id to the favorites set if absent and removes it if
// present, then rewrites the favorites document. It returns whether the id
// is a favorite afterwards. Toggling twice restores the original set. Ids
// that do not exist in the collection may still be toggled; they are skipped
// when favorites are listed.
func (s *Store) ToggleFavorite(id string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := true
	for i, fav := range s.favorites {
		if fav == id {
			s.favorites = append(s.favorites[:i], s.favorites[i+1:]...)
			now = false
			break
		}
	}
	if now {
		s.favorites = append(s.favorites, id)
	}

	if err := s.saveFavoritesLocked(); err != nil {
		return now, fmt.Errorf("persisting favorites: %w", err)
	}
	return now, nil
}

// IsFavorite reports whether id is in the favorites set.
func (s *Store) IsFavorite(id string) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, fav := range s.favorites {
		if fav == id {
			return true
		}
	}
	return false
}

// FavoriteIDs returns the favorites set in the order ids were added.
func (s *Store) FavoriteIDs() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]string, len(s.favorites))
	copy(out, s.favorites)
	return out
}

// Favorites returns the favorite recipes in collection order. Ids that no
// longer exist in the collection are ignored.
func (s *Store) Favorites() []recipe.Recipe {
	s.mu.RLock()
	defer s.mu.RUnlock()

	marked := make(map[string]bool, len(s.favorites))
	for _, id := range s.favorites {
		marked[id] = true
	}
	out := []recipe.Recipe{}
	for _, r := range s.recipes.All() {
		if marked[r.ID] {
			out = append(out, r)
		}
	}
	return out
}

// Stats returns catalog totals.
func (s *Store) Stats() Stats {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return Stats{
		Recipes:    s.recipes.Total(),
		Categories: len(s.recipes.Categories),
		Favorites:  len(s.favorites),
	}
}

func (s *Store) saveRecipesLocked() error {
	data, err := marshalDocument(s.recipes)
	if err != nil {
		return fmt.Errorf("encoding %s: %w", RecipesFile, err)
	}
	if err := os.WriteFile(s.recipesPath(), data, 0644); err != nil {
		return fmt.Errorf("writing %s: %w", RecipesFile, err)
	}
	return nil
}

func (s *Store) saveFavoritesLocked() error {
	favorites := s.favorites
	if favorites == nil {
		favorites = []string{}
	}
	data, err := marshalDocument(favorites)
	if err != nil {
		return fmt.Errorf("encoding %s: %w", FavoritesFile, err)
	}
	if err := os.WriteFile(s.favoritesPath(), data, 0644); err != nil {
		return fmt.Errorf("writing %s: %w", FavoritesFile, err)
	}
	return nil
}

// marshalDocument renders a data document the way the files have always been
// written: two-space indent, no HTML escaping.
func marshalDocument(v any) ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func normalize(r recipe.Recipe) recipe.Recipe {
	r.Name = strings.TrimSpace(r.Name)
	r.EnglishName = strings.TrimSpace(r.EnglishName)
	r.Category = strings.TrimSpace(r.Category)
	r.CookingTime = strings.TrimSpace(r.CookingTime)
	r.Servings = strings.TrimSpace(r.Servings)
	r.Description = strings.TrimSpace(r.Description)
	r.Ingredients = cleanList(r.Ingredients)
	r.Instructions = cleanList(r.Instructions)
	if d, ok := recipe.ParseDifficulty(string(r.Difficulty)); ok {
		r.Difficulty = d
	}
	return r
}

// cleanList trims entries and drops blank ones.
func cleanList(in []string) []string {
	out := make([]string, 0, len(in))
	for _, v := range in {
		if v = strings.TrimSpace(v); v != "" {
			out = append(out, v)
		}
	}
	return out
}

func validate(r recipe.Recipe) error {
	var missing []string
	if r.Name == "" {
		missing = append(missing, "name")
	}
	if r.EnglishName == "" {
		missing = append(missing, "english_name")
	}
	if r.Category == "" {
		missing = append(missing, "category")
	}
	if r.CookingTime == "" {
		missing = append(missing, "cooking_time")
	}
	if string(r.Difficulty) == "" {
		missing = append(missing, "difficulty")
	}
	if r.Servings == "" {
		missing = append(missing, "servings")
	}
	if len(r.Ingredients) == 0 {
		missing = append(missing, "ingredients")
	}
	if len(r.Instructions) == 0 {
		missing = append(missing, "instructions")
	}
	if len(missing) > 0 {
		return fmt.Errorf("%w: missing required fields: %s", ErrInvalidRecipe, strings.Join(missing, ", "))
	}
	return nil
}
