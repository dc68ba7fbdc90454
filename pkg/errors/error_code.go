package errors

// ErrorCode represents a unique error code for identifying different error types.
type ErrorCode int

const (
	// General errors (1-99)
	ErrCodeUnknown ErrorCode = 1

	// Validation errors (100-199)
	ErrCodeInvalidParameter      ErrorCode = 100
	ErrCodeInvalidPeriod         ErrorCode = 101
	ErrCodeInvalidMultiplier     ErrorCode = 102
	ErrCodeInvalidType           ErrorCode = 103
	ErrCodeMissingParameter      ErrorCode = 104
	ErrCodeInvalidRiskParameters ErrorCode = 105

	// Series errors (200-299)
	ErrCodeInvalidSeries    ErrorCode = 200
	ErrCodeInsufficientData ErrorCode = 201

	// Computation errors (300-399)
	ErrCodeComputationError     ErrorCode = 300
	ErrCodeIndicatorCalculation ErrorCode = 301
	ErrCodeIndicatorNotFound    ErrorCode = 302

	// Sizing errors (400-499)
	ErrCodeSizingFailure ErrorCode = 400

	// Provider errors (500-599)
	ErrCodeSeriesFetchFailed ErrorCode = 500
)
