package domain

import "context"

// ServicePort is consumed by handlers and other modules
type ServicePort interface {
	Me(ctx context.Context, userID string) (UserStats, error)
}
