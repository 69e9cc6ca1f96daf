package dto

import "github.com/Jimmyu2foru18/NC-Practice-Website/internal/domain/news/entities"

// NewsListResponse is returned by GET /api/v1/news
type NewsListResponse struct {
	Items []entities.NewsItem `json:"items"`
	Count int                 `json:"count"`
}

// SourceGroupsResponse is returned by GET /api/v1/news/sources
type SourceGroupsResponse struct {
	Groups []entities.SourceGroup `json:"groups"`
}
