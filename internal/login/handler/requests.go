package handler

// RequestLinkRequest is the HTTP request body for POST /auth/email.
type RequestLinkRequest struct {
	Email string `json:"email"`
}
