package transport

// CredentialsRequest is the shared payload of /api/auth/login and /api/auth/register.
type CredentialsRequest struct {
	PhoneNumber string `json:"phone_number" validate:"required,min=8,max=20"`
	Password    string `json:"password" validate:"required,min=6"`
}

// UserPayload is the user object embedded in auth responses.
type UserPayload struct {
	ID          string `json:"id"`
	PhoneNumber string `json:"phone_number"`
}

// AuthResponse matches the mobile client's expected shape: a flat envelope
// with status, token and an optional user.
type AuthResponse struct {
	Status string       `json:"status"`
	Token  string       `json:"token"`
	User   *UserPayload `json:"user,omitempty"`
}
