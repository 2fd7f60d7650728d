package tools

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/Gun249/Winner-Bike/models"
)

const (
	braveSearchURL       = "https://api.search.brave.com/res/v1/web/search"
	defaultSearchResults = 5
	maxSearchResults     = 10
)

type braveWebResult struct {
	Title       string `json:"title"`
	URL         string `json:"url"`
	Description string `json:"description"`
}

type braveSearchResponse struct {
	Web struct {
		Results []braveWebResult `json:"results"`
	} `json:"web"`
}

// Web_Search searches the web through the Brave Search API. It never
// returns an error: failures come back as explanatory text so the
// conversation keeps flowing and the model can answer from what it has.
func Web_Search(ctx context.Context, tc models.Tool_Context, args map[string]interface{}) (string, error) {
	query := strings.TrimSpace(models.StringArg(args, "query"))
	if query == "" {
		return "No results found: empty search query.", nil
	}

	maxResults := models.IntArg(args, "max_results", defaultSearchResults)
	if maxResults < 1 {
		maxResults = defaultSearchResults
	}
	if maxResults > maxSearchResults {
		maxResults = maxSearchResults
	}

	apiKey := strings.TrimSpace(os.Getenv("BRAVE_API_KEY"))
	if apiKey == "" {
		return "Web search is not available: BRAVE_API_KEY is not set.", nil
	}

	req, err := http.NewRequestWithContext(ctx, "GET", braveSearchURL, nil)
	if err != nil {
		return fmt.Sprintf("Web search failed: %v", err), nil
	}
	q := req.URL.Query()
	q.Add("q", query)
	q.Add("count", strconv.Itoa(maxResults))
	req.URL.RawQuery = q.Encode()
	req.Header.Set("Accept", "application/json")
	req.Header.Set("X-Subscription-Token", apiKey)

	client := &http.Client{Timeout: 15 * time.Second}
	resp, err := client.Do(req)
	if err != nil {
		return fmt.Sprintf("Web search failed: %v", err), nil
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Sprintf("Web search failed reading response: %v", err), nil
	}
	if resp.StatusCode != http.StatusOK {
		return fmt.Sprintf("Web search failed with status %d.", resp.StatusCode), nil
	}

	var result braveSearchResponse
	if err := json.Unmarshal(body, &result); err != nil {
		return fmt.Sprintf("Web search returned an unreadable response: %v", err), nil
	}
	if len(result.Web.Results) == 0 {
		return "No results found.", nil
	}

	var builder strings.Builder
	builder.WriteString(fmt.Sprintf("Search Query: %s\n\n", query))
	for i, webResult := range result.Web.Results {
		if i >= maxResults {
			break
		}
		builder.WriteString(fmt.Sprintf("%d. Title: %s\n", i+1, stripStrongTags(webResult.Title)))
		builder.WriteString(fmt.Sprintf("   URL: %s\n", webResult.URL))
		builder.WriteString(fmt.Sprintf("   Description: %s\n\n", stripStrongTags(webResult.Description)))
	}
	return builder.String(), nil
}

// stripStrongTags removes the highlight markup Brave embeds in titles
// and descriptions.
func stripStrongTags(s string) string {
	s = strings.ReplaceAll(s, "<strong>", "")
	s = strings.ReplaceAll(s, "</strong>", "")
	return s
}
