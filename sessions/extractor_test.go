package sessions

import (
	"testing"

	"github.com/Gun249/Winner-Bike/models"
)

func TestExtractToolCalls_NativeCallsPassThrough(t *testing.T) {
	resp := models.Model_Response{
		Text: "<tool_call>{\"name\":\"web_search\",\"arguments\":{}}</tool_call>",
		Tool_Calls: []models.Tool_Call{
			{ID: "call_abc", Name: "check_stock", Args: map[string]interface{}{"model_name": "PCX"}, Source: models.Tool_Call_Native},
		},
	}

	calls, warn := Extract_Tool_Calls(resp)
	if warn != nil {
		t.Fatalf("Unexpected warning: %v", warn)
	}
	if len(calls) != 1 {
		t.Fatalf("Expected 1 call, got %d", len(calls))
	}
	if calls[0].ID != "call_abc" || calls[0].Name != "check_stock" {
		t.Errorf("Expected native call returned verbatim, got %+v", calls[0])
	}
	if calls[0].Source != models.Tool_Call_Native {
		t.Errorf("Expected native source, got %s", calls[0].Source)
	}
}

func TestExtractToolCalls_TextFallback(t *testing.T) {
	resp := models.Model_Response{
		Text: "Let me check.\n<tool_call>{\"name\": \"check_stock\", \"arguments\": {\"model_name\": \"Wave 110i\"}}</tool_call>",
	}

	calls, warn := Extract_Tool_Calls(resp)
	if warn != nil {
		t.Fatalf("Unexpected warning: %v", warn)
	}
	if len(calls) != 1 {
		t.Fatalf("Expected 1 call, got %d", len(calls))
	}
	if calls[0].ID != models.Fallback_Call_ID {
		t.Errorf("Expected fallback call id %s, got %s", models.Fallback_Call_ID, calls[0].ID)
	}
	if calls[0].Name != "check_stock" {
		t.Errorf("Expected check_stock, got %s", calls[0].Name)
	}
	if calls[0].Args["model_name"] != "Wave 110i" {
		t.Errorf("Expected parsed arguments, got %v", calls[0].Args)
	}
	if calls[0].Source != models.Tool_Call_Text_Fallback {
		t.Errorf("Expected text_fallback source, got %s", calls[0].Source)
	}
}

func TestExtractToolCalls_FallbackWithoutArguments(t *testing.T) {
	resp := models.Model_Response{
		Text: "<tool_call>{\"name\": \"web_search\"}</tool_call>",
	}

	calls, warn := Extract_Tool_Calls(resp)
	if warn != nil {
		t.Fatalf("Unexpected warning: %v", warn)
	}
	if len(calls) != 1 {
		t.Fatalf("Expected 1 call, got %d", len(calls))
	}
	if calls[0].Args == nil {
		t.Errorf("Expected non-nil args map for missing arguments")
	}
}

func TestExtractToolCalls_MalformedJSONDegradesToWarning(t *testing.T) {
	resp := models.Model_Response{
		Text: "<tool_call>{name: check_stock</tool_call>",
	}

	calls, warn := Extract_Tool_Calls(resp)
	if len(calls) != 0 {
		t.Errorf("Expected no calls for malformed payload, got %d", len(calls))
	}
	if warn == nil {
		t.Fatal("Expected a warning for malformed payload")
	}
}

func TestExtractToolCalls_MissingNameDegradesToWarning(t *testing.T) {
	resp := models.Model_Response{
		Text: "<tool_call>{\"arguments\": {\"query\": \"specs\"}}</tool_call>",
	}

	calls, warn := Extract_Tool_Calls(resp)
	if len(calls) != 0 {
		t.Errorf("Expected no calls for nameless payload, got %d", len(calls))
	}
	if warn == nil {
		t.Fatal("Expected a warning for nameless payload")
	}
}

func TestExtractToolCalls_PlainTextIsNotACall(t *testing.T) {
	resp := models.Model_Response{Text: "รุ่น PCX 160 ราคา 98000 บาทครับ"}

	calls, warn := Extract_Tool_Calls(resp)
	if len(calls) != 0 {
		t.Errorf("Expected no calls for plain text, got %d", len(calls))
	}
	if warn != nil {
		t.Errorf("Unexpected warning for plain text: %v", warn)
	}
}

func TestExtractToolCalls_UnclosedTagWarns(t *testing.T) {
	resp := models.Model_Response{Text: "<tool_call>{\"name\": \"web_search\""}

	calls, warn := Extract_Tool_Calls(resp)
	if len(calls) != 0 {
		t.Errorf("Expected no calls for unclosed tag, got %d", len(calls))
	}
	if warn == nil {
		t.Fatal("Expected a warning for unclosed tag")
	}
}
