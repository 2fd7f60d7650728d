package rag

const (
	// Chunk sizes are in runes; roughly 3 runes per token for Thai
	// text, sized to match a 600-token chunk with 100-token overlap.
	DefaultChunkSize    = 1800
	DefaultChunkOverlap = 300
)

// ChunkText splits text into overlapping rune windows. The final chunk
// may be shorter; empty input yields no chunks.
func ChunkText(text string, size, overlap int) []string {
	if size <= 0 {
		size = DefaultChunkSize
	}
	if overlap < 0 || overlap >= size {
		overlap = DefaultChunkOverlap
		if overlap >= size {
			overlap = size / 6
		}
	}

	runes := []rune(text)
	if len(runes) == 0 {
		return nil
	}
	if len(runes) <= size {
		return []string{text}
	}

	step := size - overlap
	chunks := make([]string, 0, (len(runes)/step)+1)
	for start := 0; start < len(runes); start += step {
		end := start + size
		if end > len(runes) {
			end = len(runes)
		}
		chunks = append(chunks, string(runes[start:end]))
		if end == len(runes) {
			break
		}
	}
	return chunks
}
