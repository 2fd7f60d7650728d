package sessions

import (
	"context"
	"fmt"
	"log"
	"os"

	"github.com/google/uuid"

	"github.com/Gun249/Winner-Bike/models"
	"github.com/Gun249/Winner-Bike/stores"
	"github.com/Gun249/Winner-Bike/tools"
)

// DefaultMaxIterations bounds how many completions one interaction may
// request before the loop gives up.
const DefaultMaxIterations = 15

// ChatSession drives one chat interaction: it feeds the transcript to
// the model, executes any tool calls it asks for, and repeats until the
// model answers in plain text or the iteration bound is hit.
type ChatSession struct {
	Model           Model
	Registry        *tools.Registry
	Knowledge       models.KnowledgeQuerier
	Finalizer       *Finalizer
	Store           stores.RunStore
	Logger          *log.Logger
	// OnToolResult, when set, observes each executed tool call mid-turn.
	OnToolResult    func(ToolOutcome)
	ConversationID  string
	SystemPrompt    string
	MaxIterations   int
	ExactStockMatch bool
}

// NewChatSession wires a session with defaults: the standard tool
// registry, the default persona, and the standard iteration bound.
func NewChatSession(model Model) *ChatSession {
	return &ChatSession{
		Model:         model,
		Registry:      tools.DefaultRegistry(),
		Logger:        log.New(os.Stdout, "[chat] ", log.LstdFlags),
		SystemPrompt:  DefaultSystemPrompt,
		MaxIterations: DefaultMaxIterations,
	}
}

// RunChatInteraction runs the full loop for one user message. It never
// returns an error: completion failures and exhausted loops degrade to
// an apology answer so the caller always has something to show.
func (s *ChatSession) RunChatInteraction(ctx context.Context, req models.Chat_Request) RunResult {
	maxIterations := s.MaxIterations
	if maxIterations <= 0 {
		maxIterations = DefaultMaxIterations
	}
	systemPrompt := s.SystemPrompt
	if systemPrompt == "" {
		systemPrompt = DefaultSystemPrompt
	}

	transcript := []models.Chat_Message{models.SystemMessage(systemPrompt)}
	if historyBlock := createChatHistory(req.Chat_History); historyBlock != "" {
		transcript = append(transcript, models.UserMessage("Chat History:\n"+historyBlock))
	}
	transcript = append(transcript, models.UserMessage(req.Message))

	result := RunResult{State: State_Awaiting_Completion}
	lastAssistantText := ""

	for result.Iterations < maxIterations {
		if err := ctx.Err(); err != nil {
			s.Logger.Printf("Context done after %d iterations: %v", result.Iterations, err)
			result.Warnings = append(result.Warnings, fmt.Sprintf("context: %v", err))
			return s.finish(result, transcript, exhaustedAnswer(lastAssistantText), State_Loop_Exhausted, req.Message)
		}

		result.Iterations++
		s.Logger.Printf("Loop %d/%d", result.Iterations, maxIterations)

		resp, err := s.Model.Model_Request(ctx, transcript, s.Registry.Declarations())
		if err != nil {
			s.Logger.Printf("Completion error: %v", err)
			result.Warnings = append(result.Warnings, fmt.Sprintf("completion: %v", err))
			return s.finish(result, transcript, fallbackApology, State_Done, req.Message)
		}

		calls, warn := Extract_Tool_Calls(resp)
		if warn != nil {
			s.Logger.Printf("%s", warn)
			result.Warnings = append(result.Warnings, warn.String())
		}

		if resp.Text != "" {
			lastAssistantText = resp.Text
		}
		transcript = append(transcript, resp.AssistantMessage())

		if len(calls) == 0 {
			s.Logger.Printf("Final response ready")
			answer := resp.Text
			if answer == "" {
				answer = fallbackApology
			} else if s.Finalizer != nil {
				answer = s.Finalizer.Refine(ctx, req.Message, answer)
			}
			return s.finish(result, transcript, answer, State_Done, req.Message)
		}

		result.State = State_Executing_Tools
		outcomes := s.executeToolCalls(ctx, calls, req.Inventory)
		for _, outcome := range outcomes {
			if outcome.Skipped {
				continue
			}
			transcript = append(transcript, models.ToolMessage(outcome.Call.ID, outcome.Call.Name, outcome.Output))
		}
		result.State = State_Awaiting_Completion
	}

	s.Logger.Printf("Max loop (%d) reached", maxIterations)
	return s.finish(result, transcript, exhaustedAnswer(lastAssistantText), State_Loop_Exhausted, req.Message)
}

func (s *ChatSession) finish(result RunResult, transcript []models.Chat_Message, answer string, state LoopState, question string) RunResult {
	result.Answer = answer
	result.State = state
	result.Transcript = transcript
	s.recordRun(question, result)
	return result
}

// recordRun persists the interaction trace. Best effort: a store
// failure is logged and the answer is still returned.
func (s *ChatSession) recordRun(question string, result RunResult) {
	if s.Store == nil {
		return
	}

	run := stores.Run{
		RunID:          uuid.NewString(),
		ConversationID: s.ConversationID,
		Question:       question,
		Answer:         result.Answer,
		State:          string(result.State),
		Iterations:     result.Iterations,
	}

	messages := make([]stores.RunMessage, 0, len(result.Transcript))
	for i, msg := range result.Transcript {
		messages = append(messages, stores.NewRunMessage(run.RunID, i, msg))
	}

	if err := s.Store.RecordRun(run, messages); err != nil {
		s.Logger.Printf("Error recording run %s: %v", run.RunID, err)
	}
}

func exhaustedAnswer(lastAssistantText string) string {
	if lastAssistantText != "" {
		return lastAssistantText
	}
	return fallbackApology
}
