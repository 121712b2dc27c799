package domain

import "context"

// ServicePort is consumed by handlers and other modules
type ServicePort interface {
	Signup(ctx context.Context, in SignupInput) (Session, error)
	Login(ctx context.Context, in LoginInput) (Session, error)
	Me(ctx context.Context, userID string) (User, error)

	// VerifyToken parses a bearer token and returns the user id
	VerifyToken(token string) (string, error)
}
