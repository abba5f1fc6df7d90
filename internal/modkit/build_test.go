package modkit

import (
	"net/http"
	"testing"

	"rentals/internal/modkit/httpkit"
)

func TestBuildDefaults(t *testing.T) {
	b := Build(WithName("contracts"), WithPrefix("/contracts"))
	if b.Name != "contracts" || b.Prefix != "/contracts" {
		t.Fatalf("Build basics wrong: %+v", b)
	}
	if b.Subrouter == nil || b.Register == nil {
		t.Fatalf("Build must default router hooks")
	}
	// default hooks are safe no-ops
	if got := b.Subrouter(nil); got != nil {
		t.Fatalf("default Subrouter should pass through")
	}
	b.Register(nil)
}

func TestBuildCollectsMiddlewareAndPorts(t *testing.T) {
	mw := func(next http.Handler) http.Handler { return next }
	type ports struct{ X int }

	b := Build(
		WithName("contracts"),
		WithMiddlewares(mw, mw),
		WithPorts(ports{X: 7}),
		WithRegister(func(httpkit.Router) {}),
	)
	if len(b.Mw) != 2 {
		t.Fatalf("middlewares not collected: %d", len(b.Mw))
	}
	if p, ok := b.Ports.(ports); !ok || p.X != 7 {
		t.Fatalf("ports not carried: %+v", b.Ports)
	}
}
