package business

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"time"

	"github.com/Jimmyu2foru18/NC-Practice-Website/internal/domain/news/entities"
	"github.com/Jimmyu2foru18/NC-Practice-Website/pkg/mapfn"
)

// arrayPattern spans from the first '[' to the last ']'
var arrayPattern = regexp.MustCompile(`(?s)\[.*\]`)

// optionalString holds a backend field that may be absent or falsy.
// null, "", 0 and false count as absent; other non-string values keep
// their JSON text.
type optionalString struct {
	value string
	set   bool
}

func (o *optionalString) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	*o = optionalString{}

	switch {
	case len(data) == 0, bytes.Equal(data, []byte("null")), bytes.Equal(data, []byte("false")):
		return nil
	case data[0] == '"':
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*o = optionalString{value: s, set: s != ""}
	case data[0] == '{', data[0] == '[', bytes.Equal(data, []byte("true")):
		*o = optionalString{value: string(data), set: true}
	default:
		if f, err := strconv.ParseFloat(string(data), 64); err == nil && f == 0 {
			return nil
		}
		*o = optionalString{value: string(data), set: true}
	}
	return nil
}

func (o optionalString) or(fallback string) string {
	if o.set {
		return o.value
	}
	return fallback
}

// rawNewsItem is the partial shape the backend may return
type rawNewsItem struct {
	ID       optionalString
	Title    optionalString
	Date     optionalString
	Category optionalString
	Summary  optionalString
	Source   optionalString
	URL      optionalString
	Image    optionalString
}

// errNullItem rejects the whole batch
var errNullItem = errors.New("news array contains a null element")

// decodeItem reads the exact lowercase keys of one array element.
// Elements that are not objects decode as empty items.
func decodeItem(elem json.RawMessage) (rawNewsItem, error) {
	if bytes.Equal(bytes.TrimSpace(elem), []byte("null")) {
		return rawNewsItem{}, errNullItem
	}

	var fields map[string]json.RawMessage
	if err := json.Unmarshal(elem, &fields); err != nil {
		return rawNewsItem{}, nil
	}

	field := func(key string) optionalString {
		var o optionalString
		if data, ok := fields[key]; ok {
			_ = o.UnmarshalJSON(data)
		}
		return o
	}

	return rawNewsItem{
		ID:       field("id"),
		Title:    field("title"),
		Date:     field("date"),
		Category: field("category"),
		Summary:  field("summary"),
		Source:   field("source"),
		URL:      field("url"),
		Image:    field("image"),
	}, nil
}

// extractArray returns the bracketed span of text, or text itself when none exists.
// Empty text reads as an empty array.
func extractArray(text string) string {
	if text == "" {
		text = "[]"
	}
	if match := arrayPattern.FindString(text); match != "" {
		return match
	}
	return text
}

// parseItems decodes the extracted span as a JSON array of raw items
func parseItems(text string) ([]rawNewsItem, error) {
	var elems []json.RawMessage
	if err := json.Unmarshal([]byte(text), &elems); err != nil {
		return nil, fmt.Errorf("decode news array: %w", err)
	}

	items := make([]rawNewsItem, 0, len(elems))
	for i, elem := range elems {
		item, err := decodeItem(elem)
		if err != nil {
			return nil, fmt.Errorf("decode news item %d: %w", i, err)
		}
		items = append(items, item)
	}
	return items, nil
}

// normalize fills every missing field with its placeholder
func normalize(items []rawNewsItem, now time.Time) []entities.NewsItem {
	millis := now.UnixMilli()
	today := now.Format(shortDateLayout)

	return mapfn.ConvertSlice(items, func(i int, raw rawNewsItem) entities.NewsItem {
		return entities.NewsItem{
			ID:       raw.ID.or(fmt.Sprintf("gen-%d-%d", i, millis)),
			Title:    raw.Title.or("Untitled News"),
			Date:     raw.Date.or(today),
			Category: raw.Category.or("General"),
			Summary:  raw.Summary.or("Click to read full article."),
			Source:   raw.Source.or("Nassau News"),
			URL:      raw.URL.or("#"),
			Image:    raw.Image.value,
		}
	})
}
