package models

// SignupRequest is the body of POST /users/signup.
type SignupRequest struct {
	Email           string `json:"email"`
	Password        string `json:"password"`
	ConfirmPassword string `json:"confirmPassword"`
}

// ActivateRequest is the body of PATCH /users/activate.
type ActivateRequest struct {
	Email string `json:"email"`
	Code  string `json:"code"`
}

// LoginRequest is the body of POST /users/login.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// ForgotPasswordRequest is the body of PATCH /users/forgot.
type ForgotPasswordRequest struct {
	Email string `json:"email"`
}

// ResetPasswordRequest is the body of PATCH /users/reset.
type ResetPasswordRequest struct {
	Token           string `json:"token"`
	NewPassword     string `json:"newPassword"`
	ConfirmPassword string `json:"confirmPassword"`
}

// TransferRequest is the body of POST /users/transfer.
type TransferRequest struct {
	ImageURL string `json:"urlImagen"`
}

// SearchRequest is the body of POST /users/search.
type SearchRequest struct {
	Query string `json:"q"`
}

// UpdateProfileRequest is the body of POST /users/update. All profile fields
// must be present; pointers distinguish an absent field from an empty one.
type UpdateProfileRequest struct {
	UserID  string  `json:"userId"`
	Name    *string `json:"name"`
	Birth   *string `json:"birth"`
	Country *string `json:"country"`
	Lang    *string `json:"lang"`
	Pic     *string `json:"pic"`
}

// SaveBoatRequest is the body of POST /users/boat.
type SaveBoatRequest struct {
	UserID       *string `json:"userId"`
	Pic          string  `json:"pic"`
	Make         string  `json:"make"`
	Model        string  `json:"model"`
	Length       string  `json:"length"`
	UnitLength   string  `json:"unit_lenght"`
	Year         string  `json:"year"`
	BoatType     string  `json:"boat_type"`
	BoatMaterial string  `json:"boat_material"`
	Price        string  `json:"price"`
	UnitPrice    string  `json:"unit_price"`
	VesselName   string  `json:"vessel_name"`
	HomePort     string  `json:"home_port"`
	Location     string  `json:"location"`
	Published    string  `json:"published"`
}
