package handler

// --- Request types ---

// registerRequest deliberately has no role field: accounts always start as
// plain users and cannot self-escalate at signup.
type registerRequest struct {
	Name     string `json:"name"     validate:"required"`
	Email    string `json:"email"    validate:"required"`
	Password string `json:"password" validate:"required,min=6"`
}

type loginRequest struct {
	Email    string `json:"email"    validate:"required"`
	Password string `json:"password" validate:"required"`
}

// --- Response types ---

type registerResponse struct {
	Message string `json:"message"`
	User    string `json:"user"`
	Name    string `json:"name"`
	Role    string `json:"role"`
}

type userSummary struct {
	ID    string `json:"id"`
	Email string `json:"email"`
	Name  string `json:"name"`
	Role  string `json:"role"`
}

type loginResponse struct {
	Status string      `json:"status"`
	Token  string      `json:"token"`
	User   userSummary `json:"user"`
}
