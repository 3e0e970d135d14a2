package handlers

// ErrorResponse is the generic error envelope
type ErrorResponse struct {
	Error string `json:"error"`
}

// ValidationErrorResponse carries the accumulated field validation messages
type ValidationErrorResponse struct {
	Error   string   `json:"error"`
	Details []string `json:"details"`
}

// ConflictResponse is returned for duplicate email submissions
type ConflictResponse struct {
	Error   string `json:"error"`
	Message string `json:"message"`
}

// RateLimitResponse is returned when a client submits again too soon
type RateLimitResponse struct {
	Error      string `json:"error"`
	RetryAfter int    `json:"retryAfter"`
}

// InternalErrorResponse hides the underlying failure behind a generic message
// and a timestamp for correlation with the server logs
type InternalErrorResponse struct {
	Error     string `json:"error"`
	Timestamp string `json:"timestamp"`
}

// CreateCadastroResponse confirms a successful submission
type CreateCadastroResponse struct {
	Success    bool   `json:"success"`
	Message    string `json:"message"`
	CadastroID int64  `json:"cadastroId"`
}

// UpdateCadastroResponse confirms a successful moderation update
type UpdateCadastroResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}
