// Package module wires contracts into the API using modkit
package module

import (
	"net/http"

	modkit "rentals/internal/modkit"
	"rentals/internal/modkit/httpkit"
	str "rentals/internal/platform/strings"
	"rentals/internal/services/contracts/domain"
	contractshttp "rentals/internal/services/contracts/http"
	"rentals/internal/services/contracts/repo"
	contractssvc "rentals/internal/services/contracts/service"
)

// Ports exposed by the contracts module
type Ports struct {
	Service domain.ServicePort
	Seeder  domain.SeederPort
}

// Module implements the modkit.Module interface
type Module struct {
	deps   modkit.Deps
	name   string
	prefix string

	mws   []func(http.Handler) http.Handler
	ports Ports

	subrouter func(httpkit.Router) httpkit.Router
	register  func(httpkit.Router)

	svc *contractssvc.Svc
}

// New constructs a contracts module with the provided dependencies and options
func New(deps modkit.Deps, opts ...modkit.Option) *Module {
	b := modkit.Build(append(
		[]modkit.Option{modkit.WithName("contracts"), modkit.WithPrefix("/contracts")},
		opts...,
	)...)

	svc := contractssvc.New(deps.DB, repo.NewContractsMongo(), repo.NewPaymentsMongo())

	m := &Module{
		deps:      deps,
		name:      b.Name,
		prefix:    b.Prefix,
		mws:       b.Mw,
		subrouter: b.Subrouter,
		svc:       svc,
	}
	m.ports = Ports{Service: svc, Seeder: svc}

	external := b.Register
	m.register = func(r httpkit.Router) {
		contractshttp.Register(r, m.svc)
		if external != nil {
			external(r)
		}
	}
	return m
}

// MountRoutes implements the modkit.Module interface
func (m *Module) MountRoutes(r httpkit.Router) {
	httpkit.MountUnder(r, m.prefix, m.mws, func(rr httpkit.Router) {
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

// Ports returns the module port bundle
func (m *Module) Ports() any { return m.ports }

// Middlewares returns the module middlewares
func (m *Module) Middlewares() []func(http.Handler) http.Handler { return m.mws }
