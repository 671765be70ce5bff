package authsdk

// RegisterRequest is the body of POST /auth/register.
type RegisterRequest struct {
	Name     string `json:"name"     validate:"required"`
	Email    string `json:"email"    validate:"required,email"`
	Password string `json:"password" validate:"required,min=8"`
}

// LoginRequest is the body of POST /auth/login.
type LoginRequest struct {
	Email    string `json:"email"    validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// UserResponse is a registered user without credential material. Returned by
// register and profile.
type UserResponse struct {
	ID    int64  `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

// LoginResponse carries the bearer token for subsequent requests.
type LoginResponse struct {
	Token string `json:"token"`
}

// HealthResponse is returned by GET /health.
type HealthResponse struct {
	// Status is "ok" or "error"
	Status string `json:"status"`

	Message string `json:"message"`

	// Details holds the database error when Status is "error"
	Details string `json:"details,omitempty"`
}

// LivezResponse is returned by GET /livez.
type LivezResponse struct {
	Status  string `json:"status"`
	Uptime  string `json:"uptime"`
	Version string `json:"version"`
}
