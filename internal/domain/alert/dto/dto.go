package dto

// AlertResponse carries the current safety alert
type AlertResponse struct {
	Alert string `json:"alert"`
}
