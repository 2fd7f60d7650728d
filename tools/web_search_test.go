package tools

import (
	"context"
	"strings"
	"testing"

	"github.com/Gun249/Winner-Bike/models"
)

func TestWebSearch_EmptyQueryNeverErrors(t *testing.T) {
	result, err := Web_Search(context.Background(), models.Tool_Context{}, map[string]interface{}{})
	if err != nil {
		t.Fatalf("Web_Search must not return an error, got %v", err)
	}
	if !strings.Contains(result, "No results found") {
		t.Errorf("Expected no-results text for empty query, got %s", result)
	}
}

func TestWebSearch_MissingAPIKeyNeverErrors(t *testing.T) {
	t.Setenv("BRAVE_API_KEY", "")

	result, err := Web_Search(context.Background(), models.Tool_Context{}, map[string]interface{}{"query": "Honda PCX 160 review"})
	if err != nil {
		t.Fatalf("Web_Search must not return an error, got %v", err)
	}
	if !strings.Contains(result, "BRAVE_API_KEY") {
		t.Errorf("Expected explanation about missing API key, got %s", result)
	}
}

func TestStripStrongTags(t *testing.T) {
	got := stripStrongTags("<strong>Honda</strong> PCX <strong>160</strong>")
	if got != "Honda PCX 160" {
		t.Errorf("Expected tags stripped, got %s", got)
	}
}
