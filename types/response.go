package types

// ErrorResponse is the uniform JSON error envelope returned by the API.
type ErrorResponse struct {
	Type    string            `json:"type"`
	Message string            `json:"message"`
	Details string            `json:"details,omitempty"`
	Fields  map[string]string `json:"fields,omitempty"`
	Code    string            `json:"code,omitempty"`
}

// StatusResponse is a minimal success acknowledgement.
type StatusResponse struct {
	Status string `json:"status"`
}

// AuthResponse is returned by the login endpoint.
type AuthResponse struct {
	Token string `json:"token"`
	User  *User  `json:"user"`
}
