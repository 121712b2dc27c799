package module

import (
	"context"

	ideasdom "greenpath/internal/services/api/ideas/domain"
	ideassvc "greenpath/internal/services/api/ideas/service"
)

// Ports returns the module ports
func (m *Module) Ports() any { return m.ports }

// adaptIdeasPort adapts the ideas service to the domain port interface
type adaptIdeasPort struct{ svc ideassvc.Service }

// Create persists a new idea for the given owner
func (a adaptIdeasPort) Create(ctx context.Context, userID string, in ideasdom.CreateInput) (ideasdom.Idea, error) {
	return a.svc.Create(ctx, userID, in)
}

// Get returns one idea owned by userID
func (a adaptIdeasPort) Get(ctx context.Context, userID, id string) (ideasdom.Idea, error) {
	return a.svc.Get(ctx, userID, id)
}

// List returns the user's ideas newest first
func (a adaptIdeasPort) List(ctx context.Context, userID string) ([]ideasdom.Idea, error) {
	return a.svc.List(ctx, userID)
}

// Update applies a patch and bumps updated_at
func (a adaptIdeasPort) Update(
	ctx context.Context, userID, id string, in ideasdom.UpdateInput,
) (ideasdom.Idea, error) {
	return a.svc.Update(ctx, userID, id, in)
}

// Delete removes an idea permanently
func (a adaptIdeasPort) Delete(ctx context.Context, userID, id string) error {
	return a.svc.Delete(ctx, userID, id)
}
