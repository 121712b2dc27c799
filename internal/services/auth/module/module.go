// Package module wires auth into the API using modkit
package module

import (
	"net/http"

	modkit "greenpath/internal/modkit"
	"greenpath/internal/modkit/httpkit"
	"greenpath/internal/platform/config"
	str "greenpath/internal/platform/strings"
	authhttp "greenpath/internal/services/auth/http"
	authrepo "greenpath/internal/services/auth/repo"
	authsvc "greenpath/internal/services/auth/service"
)

// Module implements the auth module
type Module struct {
	deps   modkit.Deps
	name   string
	prefix string

	mws       []func(http.Handler) http.Handler
	ports     any
	swaggerOn bool

	subrouter func(httpkit.Router) httpkit.Router
	register  func(httpkit.Router)

	svc authsvc.Service
}

// FromConfig reads the auth service config from the environment
func FromConfig(cfg config.Conf) authsvc.Config {
	return authsvc.Config{
		Secret:     cfg.MustString("AUTH_JWT_SECRET"),
		TTL:        cfg.MayDuration("AUTH_TOKEN_TTL", 0),
		BcryptCost: cfg.MayInt("AUTH_BCRYPT_COST", 0),
	}
}

// New constructs the auth module
func New(deps modkit.Deps, svcCfg authsvc.Config, opts ...modkit.Option) modkit.Module {
	b := modkit.Build(append([]modkit.Option{modkit.WithName("auth"), modkit.WithPrefix("/auth")}, opts...)...)

	repo := authrepo.NewPG()
	svc := authsvc.New(deps.PG, repo, svcCfg)
	port := httpkit.NewPortFunc(svc.VerifyToken)

	m := &Module{
		deps:      deps,
		name:      b.Name,
		prefix:    b.Prefix,
		mws:       b.Mw,
		swaggerOn: b.SwaggerOn,
		subrouter: b.Subrouter,
		svc:       svc,
	}
	m.ports = Ports{Service: svc, Token: port}

	external := b.Register
	m.register = func(r httpkit.Router) {
		authhttp.Register(r, m.svc)
		httpkit.Protected(r, port, func(pr httpkit.Router) {
			authhttp.RegisterProtected(pr, m.svc)
		})
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
