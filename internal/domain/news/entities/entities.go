package entities

// NewsItem is a fully populated article shown on the portal.
// Every field except Image is non-empty.
type NewsItem struct {
	ID       string `json:"id"`
	Title    string `json:"title"`
	Date     string `json:"date"`
	Category string `json:"category"`
	Summary  string `json:"summary"`
	Source   string `json:"source"`
	URL      string `json:"url"`
	Image    string `json:"image,omitempty"`
}

// SourceGroup collects the items attributed to one partner publication
type SourceGroup struct {
	Source string     `json:"source"`
	Items  []NewsItem `json:"items"`
}

// Publications lists the partner outlets in display order
var Publications = []string{
	"News 12 Long Island",
	"Newsday",
	"New York Times",
	"LI Herald",
	"Patch",
}
