package tools

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/Gun249/Winner-Bike/models"
)

// Check_Stock looks up a model in the request-scoped inventory snapshot
// and returns a formatted availability string. The special input "ALL"
// returns the full listing. Matching is case-insensitive substring by
// default; Tool_Context.ExactStockMatch switches to exact equality for
// deployments that want the stricter policy.
func Check_Stock(ctx context.Context, tc models.Tool_Context, args map[string]interface{}) (string, error) {
	modelName := strings.TrimSpace(models.StringArg(args, "model_name"))
	if modelName == "" {
		return "❓ Not Found | No model name given.", nil
	}

	if strings.EqualFold(modelName, "ALL") {
		return formatInventoryListing(tc.Inventory), nil
	}

	for _, item := range tc.Inventory {
		if !matchesModel(item.Product_Name, modelName, tc.ExactStockMatch) {
			continue
		}
		if item.Stock_Quantity > 0 {
			return fmt.Sprintf("✅ Available | Model: %s | Price: %s บาท | Stock: %d units",
				item.Product_Name, formatPrice(item.Price), item.Stock_Quantity), nil
		}
		return fmt.Sprintf("❌ Out of Stock | Model: %s | INSTRUCTION: Call knowledge_search(query='%s alternatives') immediately.",
			item.Product_Name, item.Product_Name), nil
	}

	return fmt.Sprintf("❓ Not Found | Model: %s not in inventory.", modelName), nil
}

func matchesModel(productName, query string, exact bool) bool {
	if exact {
		return strings.EqualFold(productName, query)
	}
	return strings.Contains(strings.ToLower(productName), strings.ToLower(query))
}

func formatInventoryListing(inventory []models.Inventory_Item) string {
	if len(inventory) == 0 {
		return "ตอนนี้หน้าร้านยังไม่มีข้อมูลสต็อกครับ"
	}

	lines := make([]string, 0, len(inventory))
	for _, item := range inventory {
		status := "มีของ"
		if item.Stock_Quantity <= 0 {
			status = "หมด"
		}
		lines = append(lines, fmt.Sprintf("- %s: %s บาท (%s)", item.Product_Name, formatPrice(item.Price), status))
	}
	return "ตอนนี้หน้าร้านมีตามนี้ครับ:\n" + strings.Join(lines, "\n")
}

// formatPrice renders whole-baht prices without a decimal tail.
func formatPrice(price float64) string {
	return strconv.FormatFloat(price, 'f', -1, 64)
}
