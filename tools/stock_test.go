package tools

import (
	"context"
	"strings"
	"testing"

	"github.com/Gun249/Winner-Bike/models"
)

func testInventory() []models.Inventory_Item {
	return []models.Inventory_Item{
		{Product_Name: "Honda Wave 110i", Price: 45000, Stock_Quantity: 3},
		{Product_Name: "Honda PCX 160", Price: 98000, Stock_Quantity: 5},
		{Product_Name: "Yamaha Grand Filano", Price: 57500.50, Stock_Quantity: 0},
	}
}

func TestCheckStock_Available(t *testing.T) {
	tc := models.Tool_Context{Inventory: testInventory()}
	result, err := Check_Stock(context.Background(), tc, map[string]interface{}{"model_name": "PCX 160"})
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if !strings.HasPrefix(result, "✅ Available") {
		t.Errorf("Expected available result, got %s", result)
	}
	if !strings.Contains(result, "Honda PCX 160") {
		t.Errorf("Expected full product name in result, got %s", result)
	}
	if !strings.Contains(result, "98000 บาท") {
		t.Errorf("Expected whole-baht price without decimals, got %s", result)
	}
	if !strings.Contains(result, "Stock: 5 units") {
		t.Errorf("Expected stock count in result, got %s", result)
	}
}

func TestCheckStock_OutOfStock(t *testing.T) {
	tc := models.Tool_Context{Inventory: testInventory()}
	result, err := Check_Stock(context.Background(), tc, map[string]interface{}{"model_name": "Grand Filano"})
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if !strings.HasPrefix(result, "❌ Out of Stock") {
		t.Errorf("Expected out-of-stock result, got %s", result)
	}
	if !strings.Contains(result, "knowledge_search(query='Yamaha Grand Filano alternatives')") {
		t.Errorf("Expected alternatives instruction, got %s", result)
	}
}

func TestCheckStock_NotFound(t *testing.T) {
	tc := models.Tool_Context{Inventory: testInventory()}
	result, err := Check_Stock(context.Background(), tc, map[string]interface{}{"model_name": "Ducati Panigale"})
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if !strings.HasPrefix(result, "❓ Not Found") {
		t.Errorf("Expected not-found result, got %s", result)
	}
}

func TestCheckStock_AllListing(t *testing.T) {
	tc := models.Tool_Context{Inventory: testInventory()}
	result, err := Check_Stock(context.Background(), tc, map[string]interface{}{"model_name": "ALL"})
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if !strings.Contains(result, "ตอนนี้หน้าร้านมีตามนี้ครับ") {
		t.Errorf("Expected listing header, got %s", result)
	}
	if !strings.Contains(result, "- Honda Wave 110i: 45000 บาท (มีของ)") {
		t.Errorf("Expected in-stock line, got %s", result)
	}
	if !strings.Contains(result, "- Yamaha Grand Filano: 57500.5 บาท (หมด)") {
		t.Errorf("Expected sold-out line, got %s", result)
	}
}

func TestCheckStock_SubstringMatchIsCaseInsensitive(t *testing.T) {
	tc := models.Tool_Context{Inventory: testInventory()}
	result, err := Check_Stock(context.Background(), tc, map[string]interface{}{"model_name": "wave"})
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if !strings.Contains(result, "Honda Wave 110i") {
		t.Errorf("Expected substring match to find Honda Wave 110i, got %s", result)
	}
}

func TestCheckStock_ExactMatchRejectsPartialName(t *testing.T) {
	tc := models.Tool_Context{Inventory: testInventory(), ExactStockMatch: true}
	result, err := Check_Stock(context.Background(), tc, map[string]interface{}{"model_name": "wave"})
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if !strings.HasPrefix(result, "❓ Not Found") {
		t.Errorf("Expected not-found under exact matching, got %s", result)
	}

	result, err = Check_Stock(context.Background(), tc, map[string]interface{}{"model_name": "honda wave 110i"})
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if !strings.HasPrefix(result, "✅ Available") {
		t.Errorf("Expected exact match to be case-insensitive, got %s", result)
	}
}

func TestCheckStock_EmptyInventoryListing(t *testing.T) {
	tc := models.Tool_Context{}
	result, err := Check_Stock(context.Background(), tc, map[string]interface{}{"model_name": "ALL"})
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if !strings.Contains(result, "ยังไม่มีข้อมูลสต็อก") {
		t.Errorf("Expected empty-inventory message, got %s", result)
	}
}

func TestCheckStock_MissingModelName(t *testing.T) {
	tc := models.Tool_Context{Inventory: testInventory()}
	result, err := Check_Stock(context.Background(), tc, map[string]interface{}{})
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if !strings.HasPrefix(result, "❓ Not Found") {
		t.Errorf("Expected not-found for missing argument, got %s", result)
	}
}
