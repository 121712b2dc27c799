// Package http provides http transport for stats
package http

import (
	stdhttp "net/http"

	"greenpath/internal/modkit/httpkit"
	svc "greenpath/internal/services/api/stats/service"
)

// Register mounts the stats endpoints on the given router
func Register(r httpkit.Router, s svc.Service) {
	h := &handlers{svc: s}

	httpkit.Get(r, "/me", h.me)
}

type handlers struct{ svc svc.Service }

// @Summary My idea stats
// @Tags Stats
// @Produce json
// @Success 200 {object} domain.UserStats "ok"
// @Router /stats/me [get]
func (h *handlers) me(r *stdhttp.Request) (any, error) {
	return h.svc.Me(r.Context(), httpkit.MustUser(r))
}
