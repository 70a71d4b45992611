package web

import (
	"context"
	"errors"
	"fmt"
	"html/template"
	"io/fs"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	"github.com/rs/cors"
	"go.uber.org/zap"

	"github.com/sahasharan/telugu-culinary-app2/internal/recipe"
	"github.com/sahasharan/telugu-culinary-app2/internal/store"
)

// Store is the recipe store surface the handlers use.
type Store interface {
	All() []recipe.Recipe
	Get(id string) (recipe.Recipe, error)
	Categories() []string
	CategoryRecipes(category string) []recipe.Recipe
	Search(f recipe.SearchFilter) []recipe.Recipe
	Add(r recipe.Recipe) (recipe.Recipe, error)
	ToggleFavorite(id string) (bool, error)
	IsFavorite(id string) bool
	Favorites() []recipe.Recipe
	Stats() store.Stats
}

// Assistant is the chat surface of the Annapurna assistant.
type Assistant interface {
	Enabled() bool
	Ask(ctx context.Context, sessionID, question string) (string, error)
}

// Server is the Telugu Culinary web server
type Server struct {
	store     Store
	assistant Assistant
	logger    *zap.Logger
	router    *gin.Engine
	validate  *validator.Validate
	trans     ut.Translator
}

// NewServer creates a new web server
func NewServer(st Store, asst Assistant, logger *zap.Logger) *Server {
	if logger == nil {
		logger = zap.NewNop()
	}

	router := gin.New()
	router.Use(gin.Recovery(), requestLogger(logger))

	validate, trans := newValidator()

	s := &Server{
		store:     st,
		assistant: asst,
		logger:    logger,
		router:    router,
		validate:  validate,
		trans:     trans,
	}

	// Templates and static assets ship inside the binary.
	tmpl := template.Must(template.ParseFS(templateFS, "templates/*.html"))
	router.SetHTMLTemplate(tmpl)
	staticDir, err := fs.Sub(staticFS, "static")
	if err != nil {
		panic(fmt.Sprintf("static assets missing: %v", err))
	}
	router.StaticFS("/static", http.FS(staticDir))

	// Web routes
	router.GET("/", s.handleHome)
	router.GET("/search", s.handleSearchPage)
	router.GET("/favorites", s.handleFavoritesPage)
	router.GET("/add", s.handleAddPage)
	router.POST("/add", s.handleAddSubmit)
	router.GET("/recipes/:id", s.handleRecipePage)
	router.POST("/favorites/:id", s.handleToggleFavorite)
	router.GET("/chat", s.handleChatPage)

	// API routes
	api := router.Group("/api")
	{
		api.GET("/recipes", s.handleAPIRecipes)
		api.GET("/recipes/:id", s.handleAPIRecipe)
		api.POST("/recipes", s.handleAPICreate)
		api.GET("/search", s.handleAPISearch)
		api.GET("/favorites", s.handleAPIFavorites)
		api.POST("/favorites/:id", s.handleAPIToggleFavorite)
		api.GET("/stats", s.handleAPIStats)
		api.POST("/chat", s.handleAPIChat)
	}

	return s
}

// Run serves until ctx is canceled, then drains connections and returns.
func (s *Server) Run(ctx context.Context, addr string, corsOrigins []string) error {
	if len(corsOrigins) == 0 {
		corsOrigins = []string{"*"}
	}
	handler := cors.New(cors.Options{
		AllowedOrigins: corsOrigins,
		AllowedMethods: []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders: []string{"Content-Type", "Authorization"},
	}).Handler(s.router)

	srv := &http.Server{
		Addr:              addr,
		Handler:           handler,
		ReadHeaderTimeout: 5 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.ListenAndServe()
	}()
	s.logger.Info("server listening", zap.String("addr", addr))

	select {
	case err := <-errCh:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("serving: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	s.logger.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutting down: %w", err)
	}
	return nil
}
