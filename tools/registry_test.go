package tools

import (
	"context"
	"strings"
	"testing"

	"github.com/Gun249/Winner-Bike/models"
)

func TestDefaultRegistry_HasAllTools(t *testing.T) {
	registry := DefaultRegistry()

	for _, name := range []string{"check_stock", "knowledge_search", "web_search"} {
		if _, ok := registry.Lookup(name); !ok {
			t.Errorf("Expected tool %s in default registry", name)
		}
	}

	decls := registry.Declarations()
	if len(decls) != 3 {
		t.Errorf("Expected 3 declarations, got %d", len(decls))
	}
}

func TestRegistry_LookupUnknown(t *testing.T) {
	registry := DefaultRegistry()
	if _, ok := registry.Lookup("launch_rocket"); ok {
		t.Errorf("Expected unknown tool lookup to fail")
	}
}

func TestRegistry_DuplicateNameReplacesHandler(t *testing.T) {
	first := models.FunctionDeclaration{
		Name: "greet",
		Handler: func(ctx context.Context, tc models.Tool_Context, args map[string]interface{}) (string, error) {
			return "first", nil
		},
	}
	second := models.FunctionDeclaration{
		Name: "greet",
		Handler: func(ctx context.Context, tc models.Tool_Context, args map[string]interface{}) (string, error) {
			return "second", nil
		},
	}

	registry := NewRegistry(first, second)
	if len(registry.Declarations()) != 1 {
		t.Fatalf("Expected 1 declaration after duplicate registration, got %d", len(registry.Declarations()))
	}

	decl, ok := registry.Lookup("greet")
	if !ok {
		t.Fatal("Expected greet to be registered")
	}
	result, err := decl.Handler(context.Background(), models.Tool_Context{}, nil)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if result != "second" {
		t.Errorf("Expected later registration to win, got %s", result)
	}
}

func TestDeclarations_HaveParameterSchemas(t *testing.T) {
	for _, decl := range DefaultRegistry().Declarations() {
		if decl.Description == "" {
			t.Errorf("Tool %s has no description", decl.Name)
		}
		if decl.Parameters.Type != "object" {
			t.Errorf("Tool %s parameters type = %q, want object", decl.Name, decl.Parameters.Type)
		}
		if len(decl.Parameters.Properties) == 0 {
			t.Errorf("Tool %s has no parameter properties", decl.Name)
		}
	}
}

func TestKnowledgeSearch_NilKnowledgeBase(t *testing.T) {
	tc := models.Tool_Context{}
	_, err := Knowledge_Search(context.Background(), tc, map[string]interface{}{"query": "PCX specs"})
	if err == nil {
		t.Errorf("Expected error when knowledge base is not configured")
	}
}

type fakeKnowledge struct {
	result   string
	err      error
	lastMode string
}

func (f *fakeKnowledge) Query(ctx context.Context, query string, mode string) (string, error) {
	f.lastMode = mode
	return f.result, f.err
}

func TestKnowledgeSearch_DefaultsToGlobalMode(t *testing.T) {
	kb := &fakeKnowledge{result: "PCX 160 has a 157cc engine"}
	tc := models.Tool_Context{Knowledge: kb}

	result, err := Knowledge_Search(context.Background(), tc, map[string]interface{}{"query": "PCX specs"})
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if kb.lastMode != "global" {
		t.Errorf("Expected default mode global, got %s", kb.lastMode)
	}
	if result != "PCX 160 has a 157cc engine" {
		t.Errorf("Unexpected result: %s", result)
	}
}

func TestKnowledgeSearch_LocalMode(t *testing.T) {
	kb := &fakeKnowledge{result: "chunk one\n\nchunk two"}
	tc := models.Tool_Context{Knowledge: kb}

	_, err := Knowledge_Search(context.Background(), tc, map[string]interface{}{"query": "PCX specs", "mode": "local"})
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if kb.lastMode != "local" {
		t.Errorf("Expected mode local, got %s", kb.lastMode)
	}
}

func TestKnowledgeSearch_EmptyResultSentinel(t *testing.T) {
	kb := &fakeKnowledge{result: "   "}
	tc := models.Tool_Context{Knowledge: kb}

	result, err := Knowledge_Search(context.Background(), tc, map[string]interface{}{"query": "unknown part"})
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if !strings.Contains(result, "ไม่พบข้อมูล") {
		t.Errorf("Expected not-found sentinel, got %s", result)
	}
}
