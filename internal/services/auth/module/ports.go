package module

import (
	"greenpath/internal/platform/net/middleware"
	"greenpath/internal/services/auth/domain"
)

// Ports exposes what other modules may borrow from auth
type Ports struct {
	// Service is the full auth contract
	Service domain.ServicePort

	// Token guards routes in other modules via httpkit.Protected
	Token middleware.AuthPort
}

// Ports returns the module ports
func (m *Module) Ports() any { return m.ports }
