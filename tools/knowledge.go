package tools

import (
	"context"
	"fmt"
	"strings"

	"github.com/Gun249/Winner-Bike/models"
)

// Knowledge_Search queries the knowledge base bound to the tool context.
// mode is "global" (synthesized answer over the top hits) or "local"
// (verbatim chunks); missing or unknown modes fall back to "global".
func Knowledge_Search(ctx context.Context, tc models.Tool_Context, args map[string]interface{}) (string, error) {
	query := strings.TrimSpace(models.StringArg(args, "query"))
	if query == "" {
		return "ไม่พบคำค้นหาครับ ลองพิมพ์คำถามอีกครั้งได้เลยครับ", nil
	}

	mode := strings.ToLower(strings.TrimSpace(models.StringArg(args, "mode")))
	if mode != "local" {
		mode = "global"
	}

	if tc.Knowledge == nil {
		return "", fmt.Errorf("knowledge base not configured")
	}

	result, err := tc.Knowledge.Query(ctx, query, mode)
	if err != nil {
		return "", fmt.Errorf("knowledge query failed: %w", err)
	}
	if strings.TrimSpace(result) == "" {
		return "ไม่พบข้อมูลในคลังความรู้ครับ", nil
	}
	return result, nil
}
