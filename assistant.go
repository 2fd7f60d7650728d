package winnerbike

import (
	"context"
	"log"
	"os"

	"github.com/Gun249/Winner-Bike/models"
	"github.com/Gun249/Winner-Bike/models/gemini"
	"github.com/Gun249/Winner-Bike/models/typhoon"
	"github.com/Gun249/Winner-Bike/sessions"
	"github.com/Gun249/Winner-Bike/tools"
)

// Assistant bundles the model backends, tool registry, and knowledge
// base into a factory for chat sessions.
type Assistant struct {
	Config    *Config
	Model     sessions.Model
	Finalizer *sessions.Finalizer
	Knowledge models.KnowledgeQuerier
	Registry  *tools.Registry
	Logger    *log.Logger
}

// NewAssistant assembles an assistant from configuration. The knowledge
// base is attached separately with WithKnowledge once it is built.
func NewAssistant(cfg *Config) *Assistant {
	logger := log.New(os.Stdout, "[winner-bike] ", log.LstdFlags)

	temperature := cfg.Temperature
	chatModel := &gemini.Gemini_Model{
		Model:       cfg.ChatModelName,
		Temperature: &temperature,
		HTTPTimeout: cfg.RequestTimeout,
	}

	var finalizer *sessions.Finalizer
	if cfg.EnableFinalizer {
		finalizer = &sessions.Finalizer{
			Model:  &typhoon.Typhoon_Model{Model: cfg.FinalizerModelName},
			Logger: logger,
		}
	}

	return &Assistant{
		Config:    cfg,
		Model:     chatModel,
		Finalizer: finalizer,
		Registry:  tools.DefaultRegistry(),
		Logger:    logger,
	}
}

// WithKnowledge attaches the knowledge base used by knowledge_search.
func (a *Assistant) WithKnowledge(kb models.KnowledgeQuerier) *Assistant {
	a.Knowledge = kb
	return a
}

// NewSession creates a session for one conversation. Sessions are cheap;
// make one per request.
func (a *Assistant) NewSession(conversationID string) *sessions.ChatSession {
	return &sessions.ChatSession{
		Model:           a.Model,
		Registry:        a.Registry,
		Knowledge:       a.Knowledge,
		Finalizer:       a.Finalizer,
		Store:           a.Config.Store,
		Logger:          a.Logger,
		ConversationID:  conversationID,
		SystemPrompt:    sessions.DefaultSystemPrompt,
		MaxIterations:   a.Config.MaxIterations,
		ExactStockMatch: a.Config.ExactStockMatch,
	}
}

// RunChat runs one interaction under the configured request timeout.
func (a *Assistant) RunChat(ctx context.Context, conversationID string, req models.Chat_Request) sessions.RunResult {
	if a.Config.RequestTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, a.Config.RequestTimeout)
		defer cancel()
	}
	return a.NewSession(conversationID).RunChatInteraction(ctx, req)
}
