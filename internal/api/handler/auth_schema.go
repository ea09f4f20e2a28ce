package handler

// errorResponse is the standard error envelope returned on 4xx/5xx responses
// that are not field-validation failures.
type errorResponse struct {
	Error string `json:"error"`
}

const invalidCredentialsMessage = "Invalid email & password combination."

type registerRequest struct {
	FirstName      string `json:"firstName" validate:"required"`
	LastName       string `json:"lastName"  validate:"required"`
	Email          string `json:"email"     validate:"required,email"`
	Password       string `json:"password"  validate:"required"`
	ProfilePicture string `json:"profilePicture" validate:"omitempty"`
}

type loginRequest struct {
	Email    string `json:"email"    validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type verifyResponse struct {
	Token string `json:"token"`
}
