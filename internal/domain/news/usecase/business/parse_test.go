package business

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Jimmyu2foru18/NC-Practice-Website/internal/domain/news/entities"
)

var fixedNow = time.Date(2025, time.November, 3, 14, 5, 9, 0, time.UTC)

func TestExtractArray(t *testing.T) {
	tests := []struct {
		name string
		text string
		want string
	}{
		{name: "empty text", text: "", want: "[]"},
		{name: "bare array", text: `[{"title":"X"}]`, want: `[{"title":"X"}]`},
		{name: "code fence", text: "Here you go:\n```json\n[{\"title\":\"X\"}]\n```", want: `[{"title":"X"}]`},
		{name: "multiline array", text: "[\n  {\"title\": \"A\"},\n  {\"title\": \"B\"}\n]\nDone.", want: "[\n  {\"title\": \"A\"},\n  {\"title\": \"B\"}\n]"},
		{name: "greedy across arrays", text: "[1] and [2]", want: "[1] and [2]"},
		{name: "no brackets", text: "Sorry, no news today.", want: "Sorry, no news today."},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, extractArray(tt.text))
		})
	}
}

func TestParseItems_Errors(t *testing.T) {
	for _, text := range []string{
		"Sorry, no news today.",
		"[1] and [2]",
		`{"title":"not an array"}`,
		`[{"title":"truncated"`,
	} {
		_, err := parseItems(text)
		assert.Error(t, err, text)
	}
}

func TestParseItems_EmptyArray(t *testing.T) {
	items, err := parseItems("[]")
	require.NoError(t, err)
	assert.Empty(t, items)
}

func TestNormalize_FillsMissingFields(t *testing.T) {
	raw, err := parseItems(`[{"title":"X"}]`)
	require.NoError(t, err)

	items := normalize(raw, fixedNow)
	require.Len(t, items, 1)

	assert.Equal(t, entities.NewsItem{
		ID:       "gen-0-1762178709000",
		Title:    "X",
		Date:     "Nov 3",
		Category: "General",
		Summary:  "Click to read full article.",
		Source:   "Nassau News",
		URL:      "#",
	}, items[0])
}

func TestNormalize_KeepsPresentFields(t *testing.T) {
	raw, err := parseItems(`[{
		"id": "nd-77",
		"title": "Ferry Service Expands",
		"source": "Newsday",
		"date": "Nov 02",
		"category": "Community",
		"summary": "Glen Cove adds weekend sailings.",
		"url": "https://www.newsday.com/long-island/ferry",
		"image": "https://cdn.example.com/ferry.jpg"
	}]`)
	require.NoError(t, err)

	items := normalize(raw, fixedNow)
	require.Len(t, items, 1)

	assert.Equal(t, entities.NewsItem{
		ID:       "nd-77",
		Title:    "Ferry Service Expands",
		Date:     "Nov 02",
		Category: "Community",
		Summary:  "Glen Cove adds weekend sailings.",
		Source:   "Newsday",
		URL:      "https://www.newsday.com/long-island/ferry",
		Image:    "https://cdn.example.com/ferry.jpg",
	}, items[0])
}

func TestNormalize_FalsyAndScalarValues(t *testing.T) {
	raw, err := parseItems(`[{"id": 0, "title": "", "source": null, "category": false, "summary": 42, "url": true, "date": 1.5}]`)
	require.NoError(t, err)

	items := normalize(raw, fixedNow)
	require.Len(t, items, 1)

	item := items[0]
	assert.Equal(t, "gen-0-1762178709000", item.ID)
	assert.Equal(t, "Untitled News", item.Title)
	assert.Equal(t, "Nassau News", item.Source)
	assert.Equal(t, "General", item.Category)
	assert.Equal(t, "42", item.Summary)
	assert.Equal(t, "true", item.URL)
	assert.Equal(t, "1.5", item.Date)
}

func TestNormalize_NonObjectElements(t *testing.T) {
	raw, err := parseItems(`["headline only", 7, [], {"title":"Real"}]`)
	require.NoError(t, err)

	items := normalize(raw, fixedNow)
	require.Len(t, items, 4)

	for i, item := range items[:3] {
		assert.Equal(t, "Untitled News", item.Title, "element %d", i)
		assert.Equal(t, "Nassau News", item.Source, "element %d", i)
		assert.Equal(t, "#", item.URL, "element %d", i)
	}
	assert.Equal(t, "gen-2-1762178709000", items[2].ID)
	assert.Equal(t, "Real", items[3].Title)
}

func TestParseItems_NullElementRejectsBatch(t *testing.T) {
	_, err := parseItems(`[null, {"title":"A"}]`)
	assert.ErrorIs(t, err, errNullItem)
}

func TestNormalize_KeysAreCaseSensitive(t *testing.T) {
	raw, err := parseItems(`[{"TITLE":"Upper","Url":"http://x","source":"Patch"}]`)
	require.NoError(t, err)

	items := normalize(raw, fixedNow)
	require.Len(t, items, 1)

	assert.Equal(t, "Untitled News", items[0].Title)
	assert.Equal(t, "#", items[0].URL)
	assert.Equal(t, "Patch", items[0].Source)
}

func TestNormalize_EveryRequiredFieldNonEmpty(t *testing.T) {
	raw, err := parseItems(`[{}, {"title":"A"}, {"url":""}, []]`)
	require.NoError(t, err)

	for _, item := range normalize(raw, fixedNow) {
		assert.NotEmpty(t, item.ID)
		assert.NotEmpty(t, item.Title)
		assert.NotEmpty(t, item.Date)
		assert.NotEmpty(t, item.Category)
		assert.NotEmpty(t, item.Summary)
		assert.NotEmpty(t, item.Source)
		assert.NotEmpty(t, item.URL)
	}
}

func TestFallbackNews(t *testing.T) {
	items := FallbackNews(fixedNow)

	ids := make([]string, 0, len(items))
	for _, item := range items {
		ids = append(ids, item.ID)
		assert.Equal(t, "#", item.URL)
	}
	assert.Equal(t, []string{"1", "2", "3", "4", "5", "7", "9", "11"}, ids)

	assert.Equal(t, "Nov 3", items[0].Date)
	assert.Equal(t, "Nov 2", items[1].Date)
	assert.Equal(t, "Nov 1", items[2].Date)
	assert.Equal(t, "Massapequa takes home the state trophy.", items[4].Summary)
}

func TestFallbackNews_ReturnsFreshCopy(t *testing.T) {
	first := FallbackNews(fixedNow)
	first[0].Title = "mutated"

	second := FallbackNews(fixedNow)
	assert.Equal(t, "Nassau Budget Talks Continue", second[0].Title)
}

func TestBuildPrompt(t *testing.T) {
	prompt := buildPrompt(fixedNow)

	assert.Contains(t, prompt, "Current Date: November 3, 2025. Current Time: 2:05:09 PM.")
	assert.Contains(t, prompt, "Prioritize news from TODAY (November 3, 2025) and YESTERDAY.")
	assert.Contains(t, prompt, "Perform a Google Search")
	assert.Contains(t, prompt, "Attempt to find up to 8 distinct articles for EACH source.")
	assert.Contains(t, prompt, "no Markdown, no code blocks")
	for _, source := range []string{"News 12 Long Island", "Newsday", "New York Times", "LI Herald", "Patch", "CBS New York / NBC New York"} {
		assert.Contains(t, prompt, source)
	}
}
