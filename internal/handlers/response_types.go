package handlers

// ErrorResponse is the uniform error envelope for every endpoint.
type ErrorResponse struct {
	Error string `json:"error"`
}

// RouteRequest is the POST body for manually routing an already
// transcribed text.
type RouteRequest struct {
	Text string `json:"text" binding:"required"`
	Tag  string `json:"tag"`
}
