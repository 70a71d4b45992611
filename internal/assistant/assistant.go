package assistant

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/tmc/langchaingo/chains"
	"github.com/tmc/langchaingo/llms"
	"github.com/tmc/langchaingo/llms/openai"
	"github.com/tmc/langchaingo/memory"
	"github.com/tmc/langchaingo/prompts"
	"go.uber.org/zap"

	"github.com/sahasharan/telugu-culinary-app2/internal/config"
	"github.com/sahasharan/telugu-culinary-app2/internal/recipe"
)

// Greeting opens every chat session.
const Greeting = "నమస్కారం! I'm Annapurna, your Telugu cooking assistant. Ask me anything about recipes 🍲"

const (
	// Recipes beyond this count are summarized as a remainder line to keep
	// the prompt bounded.
	maxCatalogLines = 40

	// Exchanges kept per conversation.
	conversationWindow = 10

	// Concurrent conversations kept in memory. The least recently used
	// session is dropped when the limit is reached.
	maxSessions = 64
)

const promptTemplate = `You are Annapurna, a warm and knowledgeable Telugu cooking assistant.
You help with traditional Andhra and Telangana dishes: ingredients, techniques,
substitutions and serving traditions. Answer in the language the question was
asked in, keeping Telugu dish names in Telugu script.

The catalog currently holds these recipes:
{{.catalog}}

Conversation so far:
{{.history}}

Question: {{.question}}

Answer helpfully and concretely. When a question matches a catalog recipe,
ground the answer in that recipe.`

// Catalog provides the recipes injected into the prompt as context.
type Catalog interface {
	All() []recipe.Recipe
}

// session is one conversation with its sliding history window. Calls within
// a session are serialized; different sessions run concurrently.
type session struct {
	mu       sync.Mutex
	history  *memory.ConversationWindowBuffer
	lastUsed time.Time
}

// Annapurna is the cooking assistant. Conversations are keyed by an opaque
// session id chosen by the caller, each with its own history window.
type Annapurna struct {
	mu       sync.Mutex
	chain    *chains.LLMChain
	sessions map[string]*session
	catalog  Catalog
	logger   *zap.Logger
	hint     string
}

// New builds the assistant from configuration. A missing API key does not
// fail construction: the assistant comes up disabled and Ask returns a
// configuration hint instead of calling a model.
func New(cfg config.AssistantConfig, catalog Catalog, logger *zap.Logger) (*Annapurna, error) {
	if logger == nil {
		logger = zap.NewNop()
	}

	key := cfg.APIKey()
	if key == "" {
		env := cfg.APIKeyEnv
		if env == "" {
			env = config.DefaultAPIKeyEnv
		}
		logger.Warn("assistant disabled, no API key", zap.String("env", env))
		return &Annapurna{
			catalog: catalog,
			logger:  logger,
			hint:    fmt.Sprintf("⚠️ Annapurna is not configured. Set the %s environment variable to enable chat.", env),
		}, nil
	}

	opts := []openai.Option{openai.WithToken(key)}
	if cfg.BaseURL != "" {
		opts = append(opts, openai.WithBaseURL(cfg.BaseURL))
	}
	if cfg.Model != "" {
		opts = append(opts, openai.WithModel(cfg.Model))
	}
	llm, err := openai.New(opts...)
	if err != nil {
		return nil, fmt.Errorf("creating assistant model: %w", err)
	}
	return NewWithModel(llm, catalog, logger), nil
}

// NewWithModel builds the assistant around an existing model. Tests inject a
// fake model here.
func NewWithModel(llm llms.Model, catalog Catalog, logger *zap.Logger) *Annapurna {
	if logger == nil {
		logger = zap.NewNop()
	}
	chain := chains.NewLLMChain(
		llm,
		prompts.NewPromptTemplate(promptTemplate, []string{"catalog", "history", "question"}),
	)
	return &Annapurna{
		chain:    chain,
		sessions: make(map[string]*session),
		catalog:  catalog,
		logger:   logger,
	}
}

// Enabled reports whether the assistant has a model to talk to.
func (a *Annapurna) Enabled() bool {
	return a != nil && a.chain != nil
}

// Ask sends a question through the chain and returns the answer. The session
// id selects which conversation history frames the question; an unknown id
// starts a fresh conversation. When the assistant is disabled the
// configuration hint is returned instead.
func (a *Annapurna) Ask(ctx context.Context, sessionID, question string) (string, error) {
	question = strings.TrimSpace(question)
	if question == "" {
		return "", fmt.Errorf("empty question")
	}
	if !a.Enabled() {
		return a.hint, nil
	}

	sess := a.session(sessionID)
	sess.mu.Lock()
	defer sess.mu.Unlock()

	vars, err := sess.history.LoadMemoryVariables(ctx, map[string]any{})
	if err != nil {
		return "", fmt.Errorf("loading conversation history: %w", err)
	}

	input := map[string]any{
		"catalog":  catalogSummary(a.catalog.All()),
		"history":  vars["history"],
		"question": question,
	}
	result, err := chains.Call(ctx, a.chain, input)
	if err != nil {
		return "", fmt.Errorf("calling assistant: %w", err)
	}
	answer, ok := result["text"].(string)
	if !ok {
		return "", fmt.Errorf("assistant returned no text")
	}

	if err := sess.history.SaveContext(ctx,
		map[string]any{"question": question},
		map[string]any{"text": answer},
	); err != nil {
		a.logger.Warn("could not save conversation turn", zap.Error(err))
	}

	return strings.TrimSpace(answer), nil
}

// session returns the conversation for id, creating it if needed and
// evicting the least recently used one past the session limit.
func (a *Annapurna) session(id string) *session {
	a.mu.Lock()
	defer a.mu.Unlock()

	if sess, ok := a.sessions[id]; ok {
		sess.lastUsed = time.Now()
		return sess
	}

	if len(a.sessions) >= maxSessions {
		oldestID := ""
		var oldest time.Time
		for sid, sess := range a.sessions {
			if oldestID == "" || sess.lastUsed.Before(oldest) {
				oldestID = sid
				oldest = sess.lastUsed
			}
		}
		delete(a.sessions, oldestID)
		a.logger.Debug("evicted idle chat session", zap.String("session", oldestID))
	}

	sess := &session{
		history:  memory.NewConversationWindowBuffer(conversationWindow),
		lastUsed: time.Now(),
	}
	a.sessions[id] = sess
	return sess
}

// catalogSummary renders one line per recipe for the prompt.
func catalogSummary(recipes []recipe.Recipe) string {
	if len(recipes) == 0 {
		return "(the catalog is empty)"
	}
	var b strings.Builder
	for i, r := range recipes {
		if i == maxCatalogLines {
			fmt.Fprintf(&b, "... and %d more recipes\n", len(recipes)-i)
			break
		}
		fmt.Fprintf(&b, "- %s (%s), %s, %s, %s\n",
			r.Name, r.EnglishName, recipe.CategoryTitle(r.Category), r.Difficulty.English(), r.CookingTime)
	}
	return b.String()
}
