package winnerbike

import (
	"os"
	"strconv"
	"time"

	"github.com/Gun249/Winner-Bike/sessions"
	"github.com/Gun249/Winner-Bike/stores"
)

// Config holds everything needed to assemble the assistant.
type Config struct {
	ChatModelName      string
	FinalizerModelName string
	Temperature        float64
	MaxIterations      int
	ExactStockMatch    bool
	EnableFinalizer    bool
	RequestTimeout     time.Duration

	KnowledgeDir     string
	KnowledgePersist string
	ReingestSpec     string

	Store      stores.RunStore
	ListenAddr string
}

// NewConfig creates a configuration with default values
func NewConfig() *Config {
	return &Config{
		ChatModelName:      "gemini-2.5-flash",
		FinalizerModelName: "typhoon-v2.5-30b-a3b-instruct",
		Temperature:        0.2,
		MaxIterations:      sessions.DefaultMaxIterations,
		RequestTimeout:     120 * time.Second,
		KnowledgeDir:       "knowledge",
		ListenAddr:         ":8000",
	}
}

// LoadFromEnv overrides defaults from environment variables
func (c *Config) LoadFromEnv() *Config {
	if v := os.Getenv("CHAT_MODEL"); v != "" {
		c.ChatModelName = v
	}
	if v := os.Getenv("FINALIZER_MODEL"); v != "" {
		c.FinalizerModelName = v
	}
	if v := os.Getenv("MAX_ITERATIONS"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			c.MaxIterations = n
		}
	}
	if v := os.Getenv("EXACT_STOCK_MATCH"); v != "" {
		c.ExactStockMatch = v == "true" || v == "1"
	}
	if v := os.Getenv("ENABLE_FINALIZER"); v != "" {
		c.EnableFinalizer = v == "true" || v == "1"
	}
	if v := os.Getenv("REQUEST_TIMEOUT_SECONDS"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			c.RequestTimeout = time.Duration(n) * time.Second
		}
	}
	if v := os.Getenv("KNOWLEDGE_DIR"); v != "" {
		c.KnowledgeDir = v
	}
	if v := os.Getenv("KNOWLEDGE_PERSIST_PATH"); v != "" {
		c.KnowledgePersist = v
	}
	if v := os.Getenv("REINGEST_SCHEDULE"); v != "" {
		c.ReingestSpec = v
	}
	if v := os.Getenv("LISTEN_ADDR"); v != "" {
		c.ListenAddr = v
	}
	return c
}

// WithChatModel sets the chat completion model name
func (c *Config) WithChatModel(name string) *Config {
	c.ChatModelName = name
	return c
}

// WithMaxIterations sets the tool-calling loop bound
func (c *Config) WithMaxIterations(n int) *Config {
	c.MaxIterations = n
	return c
}

// WithExactStockMatch switches stock lookups to exact name equality
func (c *Config) WithExactStockMatch(exact bool) *Config {
	c.ExactStockMatch = exact
	return c
}

// WithFinalizer enables the draft refinement pass
func (c *Config) WithFinalizer(enabled bool) *Config {
	c.EnableFinalizer = enabled
	return c
}

// WithKnowledgeDir sets the PDF directory for ingestion
func (c *Config) WithKnowledgeDir(dir string) *Config {
	c.KnowledgeDir = dir
	return c
}

// WithStore sets the run store
func (c *Config) WithStore(store stores.RunStore) *Config {
	c.Store = store
	return c
}

// WithSQLiteStore sets a SQLite run store at the given path
func (c *Config) WithSQLiteStore(dbPath string) *Config {
	store, err := stores.NewSQLiteStoreSimple(dbPath)
	if err != nil {
		panic("Failed to create SQLite store: " + err.Error())
	}
	c.Store = store
	return c
}

// WithPostgresStore sets a PostgreSQL run store
func (c *Config) WithPostgresStore(host, user, password, dbname string, port int) *Config {
	store, err := stores.NewPostgresStoreDefault(host, user, password, dbname, port)
	if err != nil {
		panic("Failed to create PostgreSQL store: " + err.Error())
	}
	c.Store = store
	return c
}
