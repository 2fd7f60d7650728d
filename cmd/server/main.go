package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/gorilla/websocket"
	"github.com/joho/godotenv"

	winnerbike "github.com/Gun249/Winner-Bike"
	"github.com/Gun249/Winner-Bike/models"
	"github.com/Gun249/Winner-Bike/models/typhoon"
	"github.com/Gun249/Winner-Bike/rag"
	"github.com/Gun249/Winner-Bike/sessions"
	"github.com/Gun249/Winner-Bike/stores"
)

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool { return true },
}

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("Note: .env file not found, using environment variables")
	}

	cfg := winnerbike.NewConfig().LoadFromEnv()

	if storeType := os.Getenv("STORE_TYPE"); storeType != "" {
		store, err := stores.NewStore(stores.NewStoreConfig(storeType, os.Getenv("STORE_DSN")))
		if err != nil {
			log.Fatalf("Failed to create %s store: %v", storeType, err)
		}
		cfg.Store = store
		defer store.Close()
	}

	assistant := winnerbike.NewAssistant(cfg)

	ctx := context.Background()
	kb, scheduler := setupKnowledge(ctx, cfg, assistant.Logger)
	if kb != nil {
		assistant.WithKnowledge(kb)
	}
	if scheduler != nil {
		defer scheduler.Stop()
	}

	router := gin.Default()

	router.GET("/healthz", func(c *gin.Context) {
		status := gin.H{"status": "ok"}
		if cfg.Store != nil {
			if err := cfg.Store.Ping(); err != nil {
				c.JSON(http.StatusServiceUnavailable, gin.H{"status": "degraded", "store": err.Error()})
				return
			}
		}
		c.JSON(http.StatusOK, status)
	})

	router.POST("/run_chat", func(c *gin.Context) {
		var req models.Chat_Request
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		if req.Message == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "message is required"})
			return
		}

		result := assistant.RunChat(c.Request.Context(), uuid.NewString(), req)
		c.JSON(http.StatusOK, models.Chat_Response{Response: result.Answer})
	})

	router.GET("/runs", func(c *gin.Context) {
		if cfg.Store == nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "run store not configured"})
			return
		}
		runs, err := cfg.Store.ListRuns(c.Query("conversation_id"), 50)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, gin.H{"runs": runs})
	})

	router.GET("/ws/chat", func(c *gin.Context) {
		conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
		if err != nil {
			log.Printf("WebSocket upgrade failed: %v", err)
			return
		}
		defer conn.Close()

		ws := &sessions.WebSocketSession{
			Session: assistant.NewSession(uuid.NewString()),
			Writer: &sessions.WebSocketWriter{
				Conn:   conn,
				Logger: assistant.Logger,
			},
			Logger: assistant.Logger,
		}
		ws.HandleConnection(c.Request.Context())
	})

	srv := &http.Server{
		Addr:    cfg.ListenAddr,
		Handler: router,
	}

	go func() {
		log.Printf("Server starting on %s", cfg.ListenAddr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Server error: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("Shutting down...")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Printf("Shutdown error: %v", err)
	}
	log.Println("Shutdown complete.")
}

// setupKnowledge builds the knowledge base, runs the startup ingest,
// and starts the re-ingest scheduler when one is configured. A missing
// knowledge directory is not fatal; knowledge_search degrades to its
// not-found answer.
func setupKnowledge(ctx context.Context, cfg *winnerbike.Config, logger *log.Logger) (*rag.KnowledgeBase, *rag.ReingestScheduler) {
	embedder, err := rag.NewGeminiEmbedder(ctx)
	if err != nil {
		logger.Printf("Knowledge base disabled, embedder unavailable: %v", err)
		return nil, nil
	}

	synthesizer := &typhoon.Typhoon_Model{Model: cfg.FinalizerModelName}
	kb, err := rag.NewKnowledgeBase(embedder, synthesizer, cfg.KnowledgePersist)
	if err != nil {
		logger.Printf("Knowledge base disabled: %v", err)
		return nil, nil
	}

	if _, err := os.Stat(cfg.KnowledgeDir); err != nil {
		logger.Printf("Knowledge directory %s not found, starting without documents", cfg.KnowledgeDir)
		return kb, nil
	}

	if kb.Count() == 0 {
		logger.Printf("Loading PDFs from %s", cfg.KnowledgeDir)
		if err := kb.IngestDirectory(ctx, cfg.KnowledgeDir); err != nil {
			logger.Printf("Startup ingest failed: %v", err)
		}
	} else {
		logger.Printf("Knowledge base loaded with %d chunks", kb.Count())
	}

	var scheduler *rag.ReingestScheduler
	if cfg.ReingestSpec != "" {
		scheduler = rag.NewReingestScheduler(kb, cfg.KnowledgeDir, logger)
		if err := scheduler.Start(cfg.ReingestSpec); err != nil {
			logger.Printf("Re-ingest scheduler disabled: %v", err)
			scheduler = nil
		}
	}

	return kb, scheduler
}
