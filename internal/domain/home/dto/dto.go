package dto

import newsentities "github.com/Jimmyu2foru18/NC-Practice-Website/internal/domain/news/entities"

// HomeResponse is returned by GET /api/v1/home
type HomeResponse struct {
	Alert string                  `json:"alert"`
	News  []newsentities.NewsItem `json:"news"`
}
