package rag

import (
	"context"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"runtime"
	"strings"

	"github.com/google/uuid"
	chromem "github.com/philippgille/chromem-go"
)

const (
	collectionName = "winner-bike-knowledge"

	localTopK  = 4
	globalTopK = 10
)

// Embedder turns text into a vector.
type Embedder interface {
	Embed(ctx context.Context, text string) ([]float32, error)
}

// Completer synthesizes an answer over retrieved context in global
// query mode.
type Completer interface {
	Complete(ctx context.Context, systemPrompt string, prompt string) (string, error)
}

// KnowledgeBase is the product knowledge store: cleaned document chunks
// in an embedded vector database, queried by semantic similarity.
type KnowledgeBase struct {
	db         *chromem.DB
	collection *chromem.Collection
	embedder   Embedder
	completer  Completer
	Logger     *log.Logger

	ChunkSize    int
	ChunkOverlap int
}

// NewKnowledgeBase opens (or creates) the knowledge base. An empty
// persistPath keeps everything in memory; otherwise chunks survive
// restarts at persistPath.
func NewKnowledgeBase(embedder Embedder, completer Completer, persistPath string) (*KnowledgeBase, error) {
	if embedder == nil {
		return nil, fmt.Errorf("embedder is required")
	}

	var db *chromem.DB
	var err error
	if persistPath != "" {
		if err := os.MkdirAll(filepath.Dir(persistPath), 0755); err != nil {
			return nil, fmt.Errorf("failed to create persist directory: %w", err)
		}
		db, err = chromem.NewPersistentDB(persistPath, true)
		if err != nil {
			return nil, fmt.Errorf("failed to open persistent vector store: %w", err)
		}
	} else {
		db = chromem.NewDB()
	}

	embeddingFunc := func(ctx context.Context, text string) ([]float32, error) {
		return embedder.Embed(ctx, text)
	}
	collection, err := db.GetOrCreateCollection(collectionName, nil, embeddingFunc)
	if err != nil {
		return nil, fmt.Errorf("failed to open collection: %w", err)
	}

	return &KnowledgeBase{
		db:           db,
		collection:   collection,
		embedder:     embedder,
		completer:    completer,
		Logger:       log.New(os.Stdout, "[rag] ", log.LstdFlags),
		ChunkSize:    DefaultChunkSize,
		ChunkOverlap: DefaultChunkOverlap,
	}, nil
}

// Count returns how many chunks the knowledge base holds.
func (kb *KnowledgeBase) Count() int {
	return kb.collection.Count()
}

// Ingest chunks a document and stores the chunks with their source name.
func (kb *KnowledgeBase) Ingest(ctx context.Context, text string, source string) error {
	chunks := ChunkText(text, kb.ChunkSize, kb.ChunkOverlap)
	if len(chunks) == 0 {
		kb.Logger.Printf("Skipping empty document: %s", source)
		return nil
	}

	docs := make([]chromem.Document, 0, len(chunks))
	for _, chunk := range chunks {
		docs = append(docs, chromem.Document{
			ID:       uuid.NewString(),
			Content:  chunk,
			Metadata: map[string]string{"source": source},
		})
	}

	if err := kb.collection.AddDocuments(ctx, docs, runtime.NumCPU()); err != nil {
		return fmt.Errorf("failed to add documents from %s: %w", source, err)
	}

	kb.Logger.Printf("Ingested %d chunks from %s", len(docs), source)
	return nil
}

// IngestDirectory loads every PDF in a directory into the knowledge
// base. A file that fails is logged and skipped so one bad document
// cannot block startup.
func (kb *KnowledgeBase) IngestDirectory(ctx context.Context, dir string) error {
	paths, err := ListPDFs(dir)
	if err != nil {
		return err
	}
	if len(paths) == 0 {
		kb.Logger.Printf("No PDF files found in %s", dir)
		return nil
	}

	for _, path := range paths {
		text, err := ReadPDF(ctx, path)
		if err != nil {
			kb.Logger.Printf("Error reading %s: %v", path, err)
			continue
		}
		if err := kb.Ingest(ctx, text, filepath.Base(path)); err != nil {
			kb.Logger.Printf("Error ingesting %s: %v", path, err)
		}
	}
	return nil
}

// Query answers a question from the knowledge base. Mode "local"
// returns the most similar chunks verbatim; mode "global" retrieves a
// wider set and synthesizes a single answer over it. An empty store
// returns an empty string, not an error.
func (kb *KnowledgeBase) Query(ctx context.Context, query string, mode string) (string, error) {
	topK := globalTopK
	if mode == "local" {
		topK = localTopK
	}
	if count := kb.collection.Count(); count < topK {
		if count == 0 {
			return "", nil
		}
		topK = count
	}

	results, err := kb.collection.Query(ctx, query, topK, nil, nil)
	if err != nil {
		return "", fmt.Errorf("vector query failed: %w", err)
	}
	if len(results) == 0 {
		return "", nil
	}

	contents := make([]string, 0, len(results))
	for _, r := range results {
		contents = append(contents, r.Content)
	}
	retrieved := strings.Join(contents, "\n\n---\n\n")

	if mode == "local" || kb.completer == nil {
		return StripReferences(retrieved), nil
	}

	answer, err := kb.synthesize(ctx, query, retrieved)
	if err != nil {
		kb.Logger.Printf("Synthesis failed, returning raw chunks: %v", err)
		return StripReferences(retrieved), nil
	}
	return StripReferences(answer), nil
}

func (kb *KnowledgeBase) synthesize(ctx context.Context, query string, retrieved string) (string, error) {
	systemPrompt := "Please read the following extensive context carefully and provide a concise and accurate draft response to the user's question based on that context.\n\nContext:\n" + retrieved
	answer, err := kb.completer.Complete(ctx, systemPrompt, query)
	if err != nil {
		return "", err
	}
	if strings.TrimSpace(answer) == "" {
		return "", fmt.Errorf("empty synthesis result")
	}
	return answer, nil
}
