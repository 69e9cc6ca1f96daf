package dto

import "time"

// Departments a message can be routed to, in form order
var Departments = []string{
	"General Inquiry",
	"Public Works / Roads",
	"Parks",
	"Health",
	"Taxes",
}

// DefaultDepartment is used when the form leaves the department empty
const DefaultDepartment = "General Inquiry"

// SubmitFeedbackRequest is the body of POST /api/v1/feedback
type SubmitFeedbackRequest struct {
	FirstName  string `json:"first_name" validate:"required,max=100"`
	LastName   string `json:"last_name" validate:"required,max=100"`
	Email      string `json:"email" validate:"required,email,max=254"`
	Department string `json:"department" validate:"required,oneof='General Inquiry' 'Public Works / Roads' Parks Health Taxes"`
	Message    string `json:"message" validate:"required,max=5000"`
}

// SubmitFeedbackResponse acknowledges a stored submission
type SubmitFeedbackResponse struct {
	ID        uint      `json:"id"`
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"created_at"`
}
