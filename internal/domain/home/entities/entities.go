package entities

import newsentities "github.com/Jimmyu2foru18/NC-Practice-Website/internal/domain/news/entities"

// Digest is the content shown on the portal home page
type Digest struct {
	Alert string
	News  []newsentities.NewsItem
}
