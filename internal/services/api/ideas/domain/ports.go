package domain

import "context"

// ServicePort is consumed by handlers and other modules.
// Every operation is scoped to the owning user id
type ServicePort interface {
	Create(ctx context.Context, userID string, in CreateInput) (Idea, error)
	Get(ctx context.Context, userID, id string) (Idea, error)
	List(ctx context.Context, userID string) ([]Idea, error)
	Update(ctx context.Context, userID, id string, in UpdateInput) (Idea, error)
	Delete(ctx context.Context, userID, id string) error
}
