// Package module wires validation into the API using modkit
package module

import (
	"net/http"

	"greenpath/internal/adapters/scoringapi"
	"greenpath/internal/core/scoring"
	modkit "greenpath/internal/modkit"
	"greenpath/internal/modkit/httpkit"
	"greenpath/internal/platform/config"
	"greenpath/internal/platform/logger"
	str "greenpath/internal/platform/strings"
	validationdom "greenpath/internal/services/api/validation/domain"
	validationhttp "greenpath/internal/services/api/validation/http"
	validationrepo "greenpath/internal/services/api/validation/repo"
	validationsvc "greenpath/internal/services/api/validation/service"
)

// Module implements the validation module
type Module struct {
	deps   modkit.Deps
	name   string
	prefix string

	mws       []func(http.Handler) http.Handler
	ports     any
	swaggerOn bool

	subrouter func(httpkit.Router) httpkit.Router
	register  func(httpkit.Router)

	svc    validationsvc.Service
	scorer *scoring.Scorer
}

// ScorerFromConfig builds the local scorer from the environment.
// Unknown preset names fall back to the standard preset with a warning
func ScorerFromConfig(cfg config.Conf) *scoring.Scorer {
	name := cfg.MayString("SCORING_PRESET", "standard")
	preset, ok := scoring.PresetByName(name)
	if !ok {
		logger.Named("validation").Warn().Str("preset", name).Msg("unknown scoring preset, using standard")
		preset = scoring.PresetStandard()
	}
	return scoring.New(preset, scoring.MustLoad(), nil)
}

// RemoteFromConfig builds the remote scoring client, nil when unconfigured
func RemoteFromConfig(cfg config.Conf) validationdom.RemoteScorer {
	base := cfg.MayString("SCORING_REMOTE_URL", "")
	if base == "" {
		return nil
	}
	return scoringapi.NewClient(scoringapi.Options{
		BaseURL: base,
		APIKey:  cfg.MayString("SCORING_REMOTE_API_KEY", ""),
		Timeout: cfg.MayDuration("SCORING_REMOTE_TIMEOUT", 0),
	})
}

// New constructs the validation module
func New(deps modkit.Deps, opts ...modkit.Option) modkit.Module {
	b := modkit.Build(append(
		[]modkit.Option{modkit.WithName("validation"), modkit.WithPrefix("/validation")}, opts...)...)

	scorer := ScorerFromConfig(deps.Cfg)
	var audit validationdom.AuditSink
	if deps.CH != nil {
		audit = validationrepo.NewCH(deps.CH)
	}
	svc := validationsvc.New(scorer, RemoteFromConfig(deps.Cfg), audit)

	m := &Module{
		deps:      deps,
		name:      b.Name,
		prefix:    b.Prefix,
		mws:       b.Mw,
		swaggerOn: b.SwaggerOn,
		subrouter: b.Subrouter,
		svc:       svc,
		scorer:    scorer,
	}
	m.ports = Ports{Service: svc, Scorer: scorer}

	external := b.Register
	m.register = func(r httpkit.Router) {
		validationhttp.Register(r, m.svc)
		if external != nil {
			external(r)
		}
	}
	return m
}

// MountRoutes mounts the module routes on the given router
func (m *Module) MountRoutes(r httpkit.Router) {
	r.Route(m.prefix, func(rr httpkit.Router) {
		for _, mw := range m.mws {
			rr.Use(mw)
		}
		if m.subrouter != nil {
			rr = m.subrouter(rr)
		}
		if m.register != nil {
			m.register(rr)
		}
	})
}

// Name returns the module name
func (m *Module) Name() string { return str.MustString(m.name, "module name") }

// Prefix returns the module route prefix
func (m *Module) Prefix() string { return str.MustPrefix(m.prefix) }

// Middlewares returns the module middlewares
func (m *Module) Middlewares() []func(http.Handler) http.Handler { return m.mws }
