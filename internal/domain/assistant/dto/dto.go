package dto

// SearchRequest is the body of POST /api/v1/search
type SearchRequest struct {
	Query string `json:"query"`
}

// SearchResponse carries the assistant answer
type SearchResponse struct {
	Query  string `json:"query"`
	Answer string `json:"answer"`
}
