package web

import (
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strings"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/sahasharan/telugu-culinary-app2/internal/assistant"
	"github.com/sahasharan/telugu-culinary-app2/internal/recipe"
	"github.com/sahasharan/telugu-culinary-app2/internal/store"
)

const siteTitle = "తెలుగు వంటకాలు - Telugu Culinary"

// recipeCard pairs a recipe with its favorite state for rendering. Back is
// the page the favorite toggle returns to.
type recipeCard struct {
	recipe.Recipe
	Favorite bool
	Back     string
}

// categoryView is one home-page category section.
type categoryView struct {
	Name      string
	Title     string
	Recipes   []recipeCard
	Total     int
	Remaining int
}

// difficultyOption feeds the search and add form selects.
type difficultyOption struct {
	Value string
	Label string
}

func difficultyOptions() []difficultyOption {
	opts := make([]difficultyOption, 0, len(recipe.Difficulties))
	for _, d := range recipe.Difficulties {
		opts = append(opts, difficultyOption{
			Value: d.English(),
			Label: fmt.Sprintf("%s (%s)", d, d.English()),
		})
	}
	return opts
}

func (s *Server) cards(recipes []recipe.Recipe, back string) []recipeCard {
	out := make([]recipeCard, 0, len(recipes))
	for _, r := range recipes {
		out = append(out, recipeCard{Recipe: r, Favorite: s.store.IsFavorite(r.ID), Back: back})
	}
	return out
}

// splitLines turns a one-entry-per-line textarea into a clean list.
func splitLines(s string) []string {
	var out []string
	for _, line := range strings.Split(s, "\n") {
		if line = strings.TrimSpace(line); line != "" {
			out = append(out, line)
		}
	}
	return out
}

// Web handlers

func (s *Server) handleHome(c *gin.Context) {
	var sections []categoryView
	for _, name := range s.store.Categories() {
		if !recipe.KnownCategory(name) {
			continue
		}
		recipes := s.store.CategoryRecipes(name)
		preview := recipes
		if len(preview) > 3 {
			preview = preview[:3]
		}
		sections = append(sections, categoryView{
			Name:      name,
			Title:     recipe.CategoryTitle(name),
			Recipes:   s.cards(preview, "/"),
			Total:     len(recipes),
			Remaining: len(recipes) - len(preview),
		})
	}

	c.HTML(http.StatusOK, "home.html", gin.H{
		"title":    siteTitle,
		"stats":    s.store.Stats(),
		"sections": sections,
	})
}

func (s *Server) handleSearchPage(c *gin.Context) {
	query := c.Query("q")
	difficultyParam := c.Query("difficulty")

	filter := recipe.SearchFilter{Query: query}
	if difficultyParam != "" {
		if d, ok := recipe.ParseDifficulty(difficultyParam); ok {
			filter.Difficulty = d
		}
	}
	results := s.store.Search(filter)

	c.HTML(http.StatusOK, "search.html", gin.H{
		"title":        siteTitle,
		"query":        query,
		"difficulty":   difficultyParam,
		"difficulties": difficultyOptions(),
		"results":      s.cards(results, c.Request.URL.RequestURI()),
		"count":        len(results),
	})
}

func (s *Server) handleFavoritesPage(c *gin.Context) {
	favorites := s.store.Favorites()
	c.HTML(http.StatusOK, "favorites.html", gin.H{
		"title":   siteTitle,
		"results": s.cards(favorites, "/favorites"),
		"count":   len(favorites),
	})
}

func emptyForm() gin.H {
	return gin.H{
		"name": "", "english_name": "", "category": "", "cooking_time": "",
		"difficulty": "", "servings": "", "description": "", "ingredients": "",
		"instructions": "",
	}
}

func (s *Server) handleAddPage(c *gin.Context) {
	c.HTML(http.StatusOK, "add.html", gin.H{
		"title":        siteTitle,
		"categories":   recipe.Categories,
		"difficulties": difficultyOptions(),
		"form":         emptyForm(),
	})
}

func (s *Server) handleAddSubmit(c *gin.Context) {
	r := recipe.Recipe{
		Name:         c.PostForm("name"),
		EnglishName:  c.PostForm("english_name"),
		Category:     c.PostForm("category"),
		CookingTime:  c.PostForm("cooking_time"),
		Difficulty:   recipe.Difficulty(c.PostForm("difficulty")),
		Servings:     c.PostForm("servings"),
		Description:  c.PostForm("description"),
		Ingredients:  splitLines(c.PostForm("ingredients")),
		Instructions: splitLines(c.PostForm("instructions")),
	}

	added, err := s.store.Add(r)
	if err != nil {
		if errors.Is(err, store.ErrInvalidRecipe) {
			c.HTML(http.StatusBadRequest, "add.html", gin.H{
				"title":        siteTitle,
				"categories":   recipe.Categories,
				"difficulties": difficultyOptions(),
				"error":        "Please fill all required fields marked with *",
				"form": gin.H{
					"name":         c.PostForm("name"),
					"english_name": c.PostForm("english_name"),
					"category":     c.PostForm("category"),
					"cooking_time": c.PostForm("cooking_time"),
					"difficulty":   c.PostForm("difficulty"),
					"servings":     c.PostForm("servings"),
					"description":  c.PostForm("description"),
					"ingredients":  c.PostForm("ingredients"),
					"instructions": c.PostForm("instructions"),
				},
			})
			return
		}
		s.logger.Error("adding recipe", zap.Error(err))
		c.HTML(http.StatusInternalServerError, "error.html", gin.H{
			"title": siteTitle,
			"error": "Could not save the recipe. Please try again.",
		})
		return
	}

	c.Redirect(http.StatusSeeOther, "/recipes/"+url.PathEscape(added.ID))
}

func (s *Server) handleRecipePage(c *gin.Context) {
	id := c.Param("id")

	r, err := s.store.Get(id)
	if err != nil {
		c.HTML(http.StatusNotFound, "error.html", gin.H{
			"title": siteTitle,
			"error": "Recipe not found",
		})
		return
	}

	c.HTML(http.StatusOK, "recipe.html", gin.H{
		"title":    siteTitle,
		"recipe":   r,
		"favorite": s.store.IsFavorite(id),
		"back":     "/recipes/" + url.PathEscape(id),
	})
}

func (s *Server) handleToggleFavorite(c *gin.Context) {
	id := c.Param("id")
	back := c.PostForm("back")
	if !strings.HasPrefix(back, "/") || strings.HasPrefix(back, "//") {
		back = "/"
	}

	if _, err := s.store.ToggleFavorite(id); err != nil {
		s.logger.Error("toggling favorite", zap.String("id", id), zap.Error(err))
		c.HTML(http.StatusInternalServerError, "error.html", gin.H{
			"title": siteTitle,
			"error": "Could not update favorites. Please try again.",
		})
		return
	}

	c.Redirect(http.StatusSeeOther, back)
}

func (s *Server) handleChatPage(c *gin.Context) {
	enabled := s.assistant != nil && s.assistant.Enabled()
	c.HTML(http.StatusOK, "chat.html", gin.H{
		"title":    siteTitle,
		"enabled":  enabled,
		"greeting": assistant.Greeting,
	})
}
