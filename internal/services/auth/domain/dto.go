package domain

// SignupInput registers a new account
type SignupInput struct {
	Email       string `json:"email" validate:"required,email" example:"ada@example.com"`
	Password    string `json:"password" validate:"required,min=8,max=128" example:"correct-horse"`
	DisplayName string `json:"display_name" validate:"required,min=2,max=80" example:"Ada"`
}

// LoginInput exchanges credentials for a token
type LoginInput struct {
	Email    string `json:"email" validate:"required,email" example:"ada@example.com"`
	Password string `json:"password" validate:"required" example:"correct-horse"`
}

// Session is the login and signup response
type Session struct {
	Token string `json:"token"`
	User  User   `json:"user"`
}
