// Package http provides http transport for the sdg catalog
package http

import (
	stdhttp "net/http"

	"greenpath/internal/core/sdg"
	"greenpath/internal/modkit/httpkit"
)

// Register mounts the sdg endpoints on the given router
func Register(r httpkit.Router) {
	h := &handlers{}

	httpkit.Get(r, "/", h.list)
}

type handlers struct{}

// @Summary List the UN sustainable development goals
// @Tags SDG
// @Produce json
// @Success 200 {array} sdg.Goal "ok"
// @Router /sdgs [get]
func (h *handlers) list(_ *stdhttp.Request) (any, error) {
	return sdg.All(), nil
}
