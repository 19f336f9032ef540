package handler

import "votercheck/internal/domain"

// RequestLinkResponse is the HTTP response for POST /auth/email.
type RequestLinkResponse struct {
	Message string `json:"message"`
}

// LoginResponse is the HTTP response for GET /auth/login.
type LoginResponse struct {
	Token string     `json:"token"`
	Voter LoginVoter `json:"voter"`
}

// LoginVoter is the voter summary embedded in a login response.
type LoginVoter struct {
	ID        string `json:"id"`
	Email     string `json:"email"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
}

// FromLogin builds the login response from a session token and its voter.
func FromLogin(session string, v domain.Voter) LoginResponse {
	return LoginResponse{
		Token: session,
		Voter: LoginVoter{
			ID:        v.ID,
			Email:     v.Email,
			FirstName: v.FirstName,
			LastName:  v.LastName,
		},
	}
}
