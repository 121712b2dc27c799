package module

import (
	"greenpath/internal/core/scoring"
	"greenpath/internal/services/api/validation/domain"
)

// Ports exposes what other modules may borrow from validation
type Ports struct {
	// Service is the orchestrator contract
	Service domain.ServicePort

	// Scorer is the active local scorer, used by meta for introspection
	Scorer *scoring.Scorer
}

// Ports returns the module ports
func (m *Module) Ports() any { return m.ports }
