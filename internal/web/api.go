package web

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/sahasharan/telugu-culinary-app2/internal/recipe"
	"github.com/sahasharan/telugu-culinary-app2/internal/store"
)

const (
	maxQuerySize = 1 << 10 // 1KB
	chatTimeout  = 30 * time.Second
)

// createRecipeRequest is the POST /api/recipes body.
type createRecipeRequest struct {
	Name         string   `json:"name" validate:"required,max=200"`
	EnglishName  string   `json:"english_name" validate:"required,max=200"`
	Category     string   `json:"category" validate:"required,max=100"`
	Ingredients  []string `json:"ingredients" validate:"required,min=1,max=100,dive,required,max=500"`
	CookingTime  string   `json:"cooking_time" validate:"required,max=100"`
	Difficulty   string   `json:"difficulty" validate:"required,max=50"`
	Servings     string   `json:"servings" validate:"required,max=100"`
	Description  string   `json:"description" validate:"max=2000"`
	Instructions []string `json:"instructions" validate:"required,min=1,max=100,dive,required,max=2000"`
}

// chatRequest is the POST /api/chat body. A blank session id starts a new
// conversation; the response carries the id to send with the next message.
type chatRequest struct {
	Message   string `json:"message" validate:"required,max=2000"`
	SessionID string `json:"session_id" validate:"omitempty,max=100"`
}

// API handlers

func (s *Server) handleAPIRecipes(c *gin.Context) {
	category := c.Query("category")

	var recipes []recipe.Recipe
	if category != "" {
		recipes = s.store.CategoryRecipes(category)
	} else {
		recipes = s.store.All()
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"recipes": recipes,
		"count":   len(recipes),
	})
}

func (s *Server) handleAPIRecipe(c *gin.Context) {
	id := c.Param("id")

	r, err := s.store.Get(id)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{
			"success": false,
			"error":   "recipe not found",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":  true,
		"data":     r,
		"favorite": s.store.IsFavorite(id),
	})
}

func (s *Server) handleAPICreate(c *gin.Context) {
	var req createRecipeRequest
	if err := c.BindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"error":   err.Error(),
		})
		return
	}

	if err := s.validate.Struct(req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"error":   translateErrors(s.trans, err),
		})
		return
	}

	added, err := s.store.Add(recipe.Recipe{
		Name:         req.Name,
		EnglishName:  req.EnglishName,
		Category:     req.Category,
		Ingredients:  req.Ingredients,
		CookingTime:  req.CookingTime,
		Difficulty:   recipe.Difficulty(req.Difficulty),
		Servings:     req.Servings,
		Description:  req.Description,
		Instructions: req.Instructions,
	})
	if err != nil {
		if errors.Is(err, store.ErrInvalidRecipe) {
			c.JSON(http.StatusBadRequest, gin.H{
				"success": false,
				"error":   err.Error(),
			})
			return
		}
		s.logger.Error("adding recipe", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"error":   "could not save recipe",
		})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"success": true,
		"id":      added.ID,
		"message": "Recipe added",
	})
}

func (s *Server) handleAPISearch(c *gin.Context) {
	query := c.Query("q")
	if len(query) > maxQuerySize {
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"error":   "query exceeds maximum size of 1KB",
		})
		return
	}

	filter := recipe.SearchFilter{Query: query}
	if param := c.Query("difficulty"); param != "" {
		d, ok := recipe.ParseDifficulty(param)
		if !ok {
			c.JSON(http.StatusBadRequest, gin.H{
				"success": false,
				"error":   "unknown difficulty, use easy, medium or hard",
			})
			return
		}
		filter.Difficulty = d
	}

	results := s.store.Search(filter)

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"query":   query,
		"results": results,
		"count":   len(results),
	})
}

func (s *Server) handleAPIFavorites(c *gin.Context) {
	favorites := s.store.Favorites()
	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"recipes": favorites,
		"count":   len(favorites),
	})
}

func (s *Server) handleAPIToggleFavorite(c *gin.Context) {
	id := c.Param("id")

	now, err := s.store.ToggleFavorite(id)
	if err != nil {
		s.logger.Error("toggling favorite", zap.String("id", id), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"error":   "could not update favorites",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":  true,
		"id":       id,
		"favorite": now,
	})
}

func (s *Server) handleAPIStats(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    s.store.Stats(),
	})
}

func (s *Server) handleAPIChat(c *gin.Context) {
	var req chatRequest
	if err := c.BindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"error":   err.Error(),
		})
		return
	}
	if err := s.validate.Struct(req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"error":   translateErrors(s.trans, err),
		})
		return
	}
	if strings.TrimSpace(req.Message) == "" {
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"error":   "message is required",
		})
		return
	}
	if s.assistant == nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{
			"success": false,
			"error":   "assistant is not available",
		})
		return
	}

	if req.SessionID == "" {
		req.SessionID = uuid.NewString()
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), chatTimeout)
	defer cancel()

	reply, err := s.assistant.Ask(ctx, req.SessionID, req.Message)
	if err != nil {
		s.logger.Error("assistant call failed", zap.Error(err))
		c.JSON(http.StatusBadGateway, gin.H{
			"success": false,
			"error":   "Annapurna is unavailable right now",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":    true,
		"reply":      reply,
		"session_id": req.SessionID,
	})
}
