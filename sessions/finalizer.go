package sessions

import (
	"context"
	"fmt"
	"log"
	"strings"
)

// Finalizer rewrites a draft answer into a polished customer chat
// response using a plain completion backend.
type Finalizer struct {
	Model  Completer
	Logger *log.Logger
}

// Refine runs the rewrite pass. Any failure falls back to the draft:
// the finalizer polishes answers, it never loses them.
func (f *Finalizer) Refine(ctx context.Context, question string, draft string) string {
	if f == nil || f.Model == nil || strings.TrimSpace(draft) == "" {
		return draft
	}

	instruction := fmt.Sprintf(`Below is accurate raw information (Draft):
"%s"

The customer's question was: "%s"

Task:
Rewrite the draft into a Thai customer chat response.

Rules:
- Answer only what the customer asked.
- Keep the response short and direct.
- Do not add explanations unless required to answer the question.
- Do not sound like an advertisement.
- Do not introduce new topics on your own.
- Provide deeper technical details only if the customer asks a follow-up question.`, draft, question)

	refined, err := f.Model.Complete(ctx, refineSystemPrompt, instruction)
	if err != nil {
		if f.Logger != nil {
			f.Logger.Printf("Refine error, keeping draft: %v", err)
		}
		return draft
	}
	if strings.TrimSpace(refined) == "" {
		return draft
	}
	return refined
}
