package rag

import (
	"strings"
	"testing"
)

func TestChunkText_ShortTextSingleChunk(t *testing.T) {
	chunks := ChunkText("short document", 100, 20)
	if len(chunks) != 1 {
		t.Fatalf("Expected 1 chunk, got %d", len(chunks))
	}
	if chunks[0] != "short document" {
		t.Errorf("Expected text unchanged, got %q", chunks[0])
	}
}

func TestChunkText_Empty(t *testing.T) {
	if chunks := ChunkText("", 100, 20); chunks != nil {
		t.Errorf("Expected no chunks for empty input, got %d", len(chunks))
	}
}

func TestChunkText_OverlapAndCoverage(t *testing.T) {
	text := strings.Repeat("กขคง", 100) // 400 runes
	chunks := ChunkText(text, 150, 50)

	if len(chunks) != 4 {
		t.Fatalf("Expected 4 chunks for 400 runes at step 100, got %d", len(chunks))
	}
	for i, chunk := range chunks[:len(chunks)-1] {
		if got := len([]rune(chunk)); got != 150 {
			t.Errorf("Chunk %d: expected 150 runes, got %d", i, got)
		}
	}

	// Consecutive chunks share the overlap region.
	first := []rune(chunks[0])
	second := []rune(chunks[1])
	if string(first[100:]) != string(second[:50]) {
		t.Errorf("Expected 50-rune overlap between chunks")
	}

	// The final chunk ends where the text ends.
	last := []rune(chunks[len(chunks)-1])
	textRunes := []rune(text)
	if string(last[len(last)-10:]) != string(textRunes[len(textRunes)-10:]) {
		t.Errorf("Expected final chunk to reach the end of the text")
	}
}

func TestChunkText_ThaiRunesNotSplitMidCharacter(t *testing.T) {
	text := strings.Repeat("มอเตอร์ไซค์", 500)
	chunks := ChunkText(text, DefaultChunkSize, DefaultChunkOverlap)

	if len(chunks) < 2 {
		t.Fatalf("Expected multiple chunks, got %d", len(chunks))
	}
	for i, chunk := range chunks {
		if !strings.ContainsRune(chunk, 'ม') {
			t.Errorf("Chunk %d looks corrupted: %q", i, chunk[:20])
		}
		if len([]rune(chunk)) > DefaultChunkSize {
			t.Errorf("Chunk %d exceeds size bound: %d runes", i, len([]rune(chunk)))
		}
	}
}

func TestChunkText_InvalidSizesFallBackToDefaults(t *testing.T) {
	text := strings.Repeat("a", DefaultChunkSize*2)
	chunks := ChunkText(text, 0, -1)

	if len(chunks) < 2 {
		t.Errorf("Expected default chunking to split long text, got %d chunks", len(chunks))
	}
	if got := len([]rune(chunks[0])); got != DefaultChunkSize {
		t.Errorf("Expected first chunk at default size %d, got %d", DefaultChunkSize, got)
	}
}
