package models

// SignupRequest is the payload of POST /api/auth/signup.
type SignupRequest struct {
	// Email is the contact identifier of the new account.
	// It is lower-cased server-side before uniqueness is checked.
	Email string `json:"email"`

	// Password is the plaintext secret. Hashed before storage, never persisted.
	Password string `json:"password"`

	// Name is the optional display name.
	Name string `json:"name,omitempty"`
}

// LoginRequest is the payload of POST /api/auth/login.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// LoginResponse is returned on a successful login.
type LoginResponse struct {
	// AccessToken is the compact signed bearer token.
	AccessToken string `json:"access_token"`

	// TokenType is always "bearer".
	TokenType string `json:"token_type"`

	// ExpiresIn is the token lifetime in seconds, for response metadata only;
	// the authoritative expiry is the token's own "exp" claim.
	ExpiresIn int64 `json:"expires_in"`

	// User is the authenticated account, without credential data.
	User User `json:"user"`
}

// CreateTaskRequest is the payload of POST /api/tasks.
// The owner is never taken from the request body; it is stamped from the
// authenticated identity.
type CreateTaskRequest struct {
	Title       string `json:"title"`
	Description string `json:"description,omitempty"`
}

// UpdateTaskRequest is the payload of PUT /api/tasks/{id}.
// Nil fields are left untouched.
type UpdateTaskRequest struct {
	Title       *string `json:"title,omitempty"`
	Description *string `json:"description,omitempty"`
}

// TaskListResponse wraps the task collection returned by GET /api/tasks.
type TaskListResponse struct {
	Tasks []Task `json:"tasks"`

	// Length is the number of entries in Tasks, provided for convenience.
	Length int `json:"length"`
}

// HealthResponse is returned by GET /health.
type HealthResponse struct {
	Status   string `json:"status"`
	Database string `json:"database"`
}
