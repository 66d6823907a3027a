package config

// Application constants
const (
	AppName   = "Supply Chain Pulse"
	ServiceID = "scpulse"

	// Default worksheet read when none is configured
	DefaultWorksheet = "Sheet1"

	// Maximum accepted length of a copilot question
	MaxQuestionLength = 500

	// Body limit for JSON requests
	MaxRequestBodyBytes = 64 << 10
)
