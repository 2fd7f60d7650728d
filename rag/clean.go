package rag

import (
	"regexp"
	"strings"
)

var (
	citationPatterns = []*regexp.Regexp{
		regexp.MustCompile(`\[\d+\]`),
		regexp.MustCompile(`(?s)### References.*`),
		regexp.MustCompile(`(?s)อ้างอิง:.*`),
		regexp.MustCompile(`(?s)แหล่งที่มา:.*`),
		regexp.MustCompile(`URL:.*`),
		regexp.MustCompile(`\(\d+\)`),
	}

	pageHeaderPattern  = regexp.MustCompile(`(?m)^หน้า\s+[\d๑-๙]+\s*$`)
	gazetteLinePattern = regexp.MustCompile(`เล่ม.+ตอนที่.+`)
	sectionPattern     = regexp.MustCompile(`มา\s?ตรา\s?`)
	whitespacePattern  = regexp.MustCompile(`\s+`)
)

var thaiDigits = strings.NewReplacer(
	"๐", "0", "๑", "1", "๒", "2", "๓", "3", "๔", "4",
	"๕", "5", "๖", "6", "๗", "7", "๘", "8", "๙", "9",
)

// StripReferences removes citations and reference sections from answer
// text so the customer never sees source markup.
func StripReferences(text string) string {
	for _, pattern := range citationPatterns {
		text = pattern.ReplaceAllString(text, "")
	}
	return strings.TrimSpace(text)
}

// CleanDocumentText normalizes extracted Thai document text: page
// headers and gazette lines are dropped, Thai digits become Arabic,
// zero-width and non-breaking spaces are removed, and runs of
// whitespace collapse to one space.
func CleanDocumentText(text string) string {
	if text == "" {
		return ""
	}

	text = pageHeaderPattern.ReplaceAllString(text, "")
	text = gazetteLinePattern.ReplaceAllString(text, "")
	text = sectionPattern.ReplaceAllString(text, "มาตรา ")
	text = thaiDigits.Replace(text)
	text = strings.ReplaceAll(text, "​", "")
	text = strings.ReplaceAll(text, " ", "")
	text = whitespacePattern.ReplaceAllString(text, " ")
	return strings.TrimSpace(text)
}
