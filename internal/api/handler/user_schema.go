package handler

import "time"

// errorResponse is the standard error envelope returned on all 4xx/5xx responses.
type errorResponse struct {
	Error string `json:"error"`
}

// --- Request types ---

type userConfigPayload struct {
	Theme         string `json:"theme"`
	Language      string `json:"language"`
	Notifications bool   `json:"notifications"`
}

type createUserRequest struct {
	Name     string             `json:"name"      validate:"required,min=2"`
	Email    string             `json:"email"     validate:"required,contains=@"`
	Role     string             `json:"role"      validate:"omitempty,oneof=admin user guest"`
	AdminKey string             `json:"admin_key"`
	Config   *userConfigPayload `json:"config"`
}

type issueTokenRequest struct {
	UserID string `json:"user_id" validate:"required"`
}

// --- Response types ---
// Owned by the transport layer so the JSON contract is not coupled to
// internal domain changes.

type userResponse struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Email       string `json:"email"`
	Role        string `json:"role"`
	DisplayName string `json:"display_name"`
	Admin       bool   `json:"admin"`
}

type listUsersResponse struct {
	Users []userResponse `json:"users"`
	Total int64          `json:"total"`
	Page  int            `json:"page"`
	Limit int            `json:"limit"`
}

type validateResponse struct {
	Valid bool `json:"valid"`
}

type profileResponse struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

type issueTokenResponse struct {
	Token string       `json:"token"`
	User  userResponse `json:"user"`
}

type auditEventResponse struct {
	Action    string    `json:"action"`
	Actor     string    `json:"actor,omitempty"`
	Timestamp time.Time `json:"timestamp"`
}

type auditHistoryResponse struct {
	UserID string               `json:"user_id"`
	Events []auditEventResponse `json:"events"`
}
