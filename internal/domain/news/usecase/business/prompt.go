package business

import (
	"fmt"
	"time"
)

const (
	longDateLayout = "January 2, 2006"
	clockLayout    = "3:04:05 PM"
)

const promptTemplate = `You are a news aggregator API. Current Date: %[1]s. Current Time: %[2]s.

Perform a Google Search to find REAL, RECENT news articles related to Nassau County, NY.

CRITICAL:
- Prioritize news from TODAY (%[1]s) and YESTERDAY. The user wants the absolute latest updates.
- If there is breaking news happening right now, prioritize it.

Sources to check:
1. News 12 Long Island
2. Newsday
3. New York Times
4. LI Herald
5. Patch
6. CBS New York / NBC New York

Attempt to find up to 8 distinct articles for EACH source.

Return a raw JSON array (no Markdown, no code blocks).

JSON Schema per item:
{
  "id": "unique-id",
  "title": "Article Headline",
  "source": "Exact Source Name",
  "date": "Date string (e.g. Nov 02). MUST be the real publication date.",
  "category": "Category (Government, Community, Safety, Business, Sports, Lifestyle, Weather)",
  "summary": "Brief summary (1-2 sentences)",
  "url": "Article URL"
}`

// buildPrompt renders the recency-biased aggregation prompt for now
func buildPrompt(now time.Time) string {
	return fmt.Sprintf(promptTemplate, now.Format(longDateLayout), now.Format(clockLayout))
}
