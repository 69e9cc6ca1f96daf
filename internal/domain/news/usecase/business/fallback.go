package business

import (
	"time"

	"github.com/Jimmyu2foru18/NC-Practice-Website/internal/domain/news/entities"
	"github.com/Jimmyu2foru18/NC-Practice-Website/pkg/mapfn"
)

const shortDateLayout = "Jan 2"

type fallbackEntry struct {
	id       string
	title    string
	source   string
	daysAgo  int
	category string
	summary  string
}

// fallbackNews is served whenever live news cannot be produced
var fallbackNews = [...]fallbackEntry{
	{"1", "Nassau Budget Talks Continue", "News 12 Long Island", 0, "Government", "Legislators debate new fiscal proposals for the upcoming year."},
	{"2", "Eisenhower Park Renovations Complete", "News 12 Long Island", 1, "Community", "New fields open to the public this weekend."},
	{"3", "Fire in Hempstead Controlled", "News 12 Long Island", 2, "Safety", "Firefighters quickly extinguished a blaze on Main St."},
	{"4", "Housing Market Trends in Nassau", "Newsday", 0, "Business", "Real estate prices see a slight stabilization in Q3."},
	{"5", "Local High School Wins Championship", "Newsday", 1, "Sports", "Massapequa takes home the state trophy."},
	{"7", "Nassau Politics in Spotlight", "New York Times", 1, "Politics", "How local elections could shift the balance of power."},
	{"9", "Community Fundraiser Success", "LI Herald", 2, "Community", "Locals raise $50k for library repairs."},
	{"11", "Police Blotter: Weekly Recap", "Patch", 1, "Safety", "Summary of incidents in the 3rd Precinct."},
}

// FallbackNews returns a fresh copy of the static list with dates relative to now
func FallbackNews(now time.Time) []entities.NewsItem {
	return mapfn.ConvertSlice(fallbackNews[:], func(_ int, e fallbackEntry) entities.NewsItem {
		return entities.NewsItem{
			ID:       e.id,
			Title:    e.title,
			Date:     now.AddDate(0, 0, -e.daysAgo).Format(shortDateLayout),
			Category: e.category,
			Summary:  e.summary,
			Source:   e.source,
			URL:      "#",
		}
	})
}
