package rag

import (
	"strings"
	"testing"
)

func TestStripReferences(t *testing.T) {
	input := "PCX 160 ใช้เครื่องยนต์ 157cc [1] สมรรถนะดี (2)\n### References\n[1] brochure.pdf"
	got := StripReferences(input)

	if strings.Contains(got, "[1]") || strings.Contains(got, "(2)") {
		t.Errorf("Expected citation markers removed, got %s", got)
	}
	if strings.Contains(got, "References") {
		t.Errorf("Expected reference section removed, got %s", got)
	}
	if !strings.Contains(got, "PCX 160") {
		t.Errorf("Expected answer text preserved, got %s", got)
	}
}

func TestStripReferences_ThaiSourceLines(t *testing.T) {
	input := "ราคา 98000 บาท\nอ้างอิง: คู่มือผู้ขาย\nแหล่งที่มา: โบรชัวร์"
	got := StripReferences(input)

	if strings.Contains(got, "อ้างอิง") || strings.Contains(got, "แหล่งที่มา") {
		t.Errorf("Expected Thai source lines removed, got %s", got)
	}
}

func TestCleanDocumentText_ThaiDigitsAndWhitespace(t *testing.T) {
	input := "ราคา  ๙๘,๐๐๐​ บาท"
	got := CleanDocumentText(input)

	if got != "ราคา 98,000บาท" {
		t.Errorf("Unexpected cleaned text: %q", got)
	}
}

func TestCleanDocumentText_PageHeaders(t *testing.T) {
	input := "หน้า ๑\nเนื้อหาจริง\nหน้า 2\nเนื้อหาเพิ่ม"
	got := CleanDocumentText(input)

	if strings.Contains(got, "หน้า") {
		t.Errorf("Expected page headers removed, got %q", got)
	}
	if !strings.Contains(got, "เนื้อหาจริง") || !strings.Contains(got, "เนื้อหาเพิ่ม") {
		t.Errorf("Expected body text preserved, got %q", got)
	}
}

func TestCleanDocumentText_Empty(t *testing.T) {
	if got := CleanDocumentText(""); got != "" {
		t.Errorf("Expected empty output for empty input, got %q", got)
	}
}
