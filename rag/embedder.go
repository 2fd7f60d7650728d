package rag

import (
	"context"
	"fmt"

	"google.golang.org/genai"
)

// DefaultEmbeddingModel is used when no model is configured.
const DefaultEmbeddingModel = "gemini-embedding-001"

// GeminiEmbedder produces embeddings through the Gemini API. The client
// reads GOOGLE_API_KEY from the environment.
type GeminiEmbedder struct {
	client *genai.Client
	Model  string
}

// NewGeminiEmbedder creates an embedder with the default model.
func NewGeminiEmbedder(ctx context.Context) (*GeminiEmbedder, error) {
	client, err := genai.NewClient(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create Gemini client: %w", err)
	}
	return &GeminiEmbedder{client: client, Model: DefaultEmbeddingModel}, nil
}

// Embed returns the embedding vector for one text.
func (e *GeminiEmbedder) Embed(ctx context.Context, text string) ([]float32, error) {
	model := e.Model
	if model == "" {
		model = DefaultEmbeddingModel
	}

	result, err := e.client.Models.EmbedContent(ctx, model, genai.Text(text), nil)
	if err != nil {
		return nil, fmt.Errorf("failed to embed content: %w", err)
	}
	if len(result.Embeddings) == 0 || len(result.Embeddings[0].Values) == 0 {
		return nil, fmt.Errorf("empty embedding in response")
	}
	return result.Embeddings[0].Values, nil
}
