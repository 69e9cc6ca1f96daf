package domain

// GenerateRequest describes a single generation call
type GenerateRequest struct {
	Contents          string
	SystemInstruction string

	// Temperature is left to the backend default when nil
	Temperature     *float32
	MaxOutputTokens int32

	// WebSearch enables the backend's search grounding tool
	WebSearch bool
}
