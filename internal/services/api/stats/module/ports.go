package module

import (
	"context"

	statsdom "greenpath/internal/services/api/stats/domain"
	statssvc "greenpath/internal/services/api/stats/service"
)

// Ports returns the module ports
func (m *Module) Ports() any { return m.ports }

// adaptStatsPort adapts the stats service to the domain port interface
type adaptStatsPort struct{ svc statssvc.Service }

// Me aggregates the caller's ideas into dashboard stats
func (a adaptStatsPort) Me(ctx context.Context, userID string) (statsdom.UserStats, error) {
	return a.svc.Me(ctx, userID)
}
