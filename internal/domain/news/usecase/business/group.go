package business

import (
	"strings"

	"github.com/Jimmyu2foru18/NC-Practice-Website/internal/domain/news/entities"
	"github.com/Jimmyu2foru18/NC-Practice-Website/pkg/mapfn"
)

// GroupBySource assigns items to publications by matching the first word of
// the publication name against the item source, case-insensitively.
// Publications without items are omitted.
func GroupBySource(items []entities.NewsItem, publications []string) []entities.SourceGroup {
	groups := make([]entities.SourceGroup, 0, len(publications))

	for _, pub := range publications {
		words := strings.Fields(pub)
		if len(words) == 0 {
			continue
		}
		key := strings.ToLower(words[0])

		matched := mapfn.FilterSlice(items, func(item entities.NewsItem) bool {
			return strings.Contains(strings.ToLower(item.Source), key)
		})
		if len(matched) == 0 {
			continue
		}

		groups = append(groups, entities.SourceGroup{Source: pub, Items: matched})
	}

	return groups
}
