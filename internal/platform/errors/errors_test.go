package errors

import (
	stderrs "errors"
	"net/http"
	"testing"
)

func TestHTTPStatusCodeMapping(t *testing.T) {
	cases := []struct {
		code ErrorCode
		want int
	}{
		{ErrorCodeNotFound, http.StatusNotFound},
		{ErrorCodeDuplicateKey, http.StatusConflict},
		{ErrorCodeConflict, http.StatusConflict},
		{ErrorCodeValidation, http.StatusBadRequest},
		{ErrorCodeJSON, http.StatusBadRequest},
		{ErrorCodeUnavailable, http.StatusServiceUnavailable},
		{ErrorCodeDB, http.StatusInternalServerError},
		{ErrorCodePanic, http.StatusInternalServerError},
		{ErrorCodeUnknown, http.StatusInternalServerError},
		{9999, http.StatusInternalServerError}, // default branch
	}
	for _, c := range cases {
		if got := HTTPStatusCode(c.code); got != c.want {
			t.Fatalf("HTTPStatusCode(%v) = %d, want %d", c.code, got, c.want)
		}
	}
}

func TestErrorTypeAndMethods(t *testing.T) {
	// nil *Error should render "<nil>"
	var e *Error
	if e.Error() != "<nil>" {
		t.Fatalf("nil *Error render = %q, want <nil>", e.Error())
	}

	e1 := New(ErrorCodeValidation, "bad stuff")
	if CodeOf(e1) != ErrorCodeValidation {
		t.Fatalf("CodeOf(New) = %v", CodeOf(e1))
	}
	e2 := Newf(ErrorCodeJSON, "bad json %d", 12)
	if got := e2.Error(); got != "bad json 12" {
		t.Fatalf("Newf().Error = %q", got)
	}

	src := stderrs.New("root")
	e3 := Wrap(src, ErrorCodeDB, "db failed")
	if u := stderrs.Unwrap(e3); u == nil || u.Error() != "root" {
		t.Fatalf("Wrap did not keep orig")
	}
	if want := "db failed: root"; e3.Error() != want {
		t.Fatalf("Wrap().Error = %q, want %q", e3.Error(), want)
	}
	if Root(e3).Error() != "root" {
		t.Fatalf("Root() did not find deepest cause")
	}

	if got, ok := As(e3); !ok || got.Code() != ErrorCodeDB {
		t.Fatalf("As() failed for our error")
	}
	if _, ok := As(src); ok {
		t.Fatalf("As() true for foreign error")
	}

	// WithField is copy-on-write
	e4 := WithField(e1, "time")
	if f, _ := As(e4); f.Field() != "time" {
		t.Fatalf("WithField did not set field")
	}
	if f, _ := As(e1); f.Field() != "" {
		t.Fatalf("WithField mutated original")
	}
}

func TestWireFrom(t *testing.T) {
	if w := WireFrom(nil); w.Code != ErrorCodeUnknown || w.Message != "" {
		t.Fatalf("WireFrom(nil) = %+v, want zero", w)
	}
	w := WireFrom(NotFoundf("contractId = '%s' not found in database", "abc"))
	if w.Code != ErrorCodeNotFound || w.Message == "" {
		t.Fatalf("WireFrom mapping wrong: %+v", w)
	}
	foreign := stderrs.New("boom")
	if w := WireFrom(foreign); w.Code != ErrorCodeUnknown || w.Message != "boom" {
		t.Fatalf("WireFrom(foreign) = %+v", w)
	}
}

func TestHTTPBundle(t *testing.T) {
	status, wire := HTTP(Validationf("'time' inside payment body is not valid"))
	if status != http.StatusBadRequest || wire.Code != ErrorCodeValidation {
		t.Fatalf("HTTP() = %d %+v", status, wire)
	}
	status, wire = HTTP(nil)
	if status != http.StatusOK || wire.Message != "" {
		t.Fatalf("HTTP(nil) = %d %+v", status, wire)
	}
}
