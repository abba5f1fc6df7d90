package http

import (
	"context"
	"encoding/json"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"

	perr "rentals/internal/platform/errors"
	phttp "rentals/internal/platform/net/http"
	"rentals/internal/services/contracts/domain"
)

// fakeSvc is a scriptable domain.ServicePort
type fakeSvc struct {
	contracts []domain.Contract
	payment   domain.Payment
	agg       domain.PaymentAggregate
	err       error

	gotContractID string
	gotPaymentID  string
	gotNew        domain.NewPaymentInput
	gotPatch      domain.PaymentPatchInput
	gotWindow     domain.Window
}

func (f *fakeSvc) ListContracts(context.Context) ([]domain.Contract, error) {
	return f.contracts, f.err
}

func (f *fakeSvc) AddPayment(_ context.Context, cid string, in domain.NewPaymentInput) (domain.Payment, error) {
	f.gotContractID, f.gotNew = cid, in
	return f.payment, f.err
}

func (f *fakeSvc) DeletePayment(_ context.Context, cid, pid string) (domain.Confirmation, error) {
	f.gotContractID, f.gotPaymentID = cid, pid
	return domain.Confirmation{Message: "Deleted paymentId = '" + pid + "'"}, f.err
}

func (f *fakeSvc) ModifyPayment(
	_ context.Context,
	cid, pid string,
	in domain.PaymentPatchInput,
) (domain.Confirmation, error) {
	f.gotContractID, f.gotPaymentID, f.gotPatch = cid, pid, in
	return domain.Confirmation{Message: "Updated payment information for '" + pid + "'"}, f.err
}

func (f *fakeSvc) PaymentList(_ context.Context, cid string, w domain.Window) (domain.PaymentAggregate, error) {
	f.gotContractID, f.gotWindow = cid, w
	return f.agg, f.err
}

func newRouter(s domain.ServicePort) *chi.Mux {
	mux := chi.NewRouter()
	r := phttp.AdaptChi(mux)
	r.Route("/contracts", func(rr phttp.Router) { Register(rr, s) })
	return mux
}

func doJSON(t *testing.T, mux *chi.Mux, method, path, body string) (*httptest.ResponseRecorder, phttp.Envelope) {
	t.Helper()
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, req)

	var env phttp.Envelope
	if err := json.Unmarshal(rec.Body.Bytes(), &env); err != nil {
		t.Fatalf("bad envelope %q: %v", rec.Body.String(), err)
	}
	return rec, env
}

func TestListContracts(t *testing.T) {
	svc := &fakeSvc{contracts: []domain.Contract{{ID: "c1", Details: "apartment", Address: "1 Main St"}}}
	rec, env := doJSON(t, newRouter(svc), "GET", "/contracts", "")

	if rec.Code != 200 || env.StatusCode != 200 {
		t.Fatalf("status = %d env=%+v", rec.Code, env)
	}
	items, ok := env.Data.([]any)
	if !ok || len(items) != 1 {
		t.Fatalf("bad data %#v", env.Data)
	}
	first := items[0].(map[string]any)
	if first["id"] != "c1" || first["address"] != "1 Main St" {
		t.Fatalf("bad contract payload %#v", first)
	}
}

func TestAddPaymentCreated(t *testing.T) {
	svc := &fakeSvc{payment: domain.Payment{ID: "p1", ContractID: "c1", Description: "rent", Value: 750}}
	rec, env := doJSON(t, newRouter(svc), "POST", "/contracts/c1",
		`{"description":"rent","value":750,"time":"2024-06-01T00:00:00Z"}`)

	if rec.Code != 201 || env.StatusCode != 201 {
		t.Fatalf("want 201, got %d env=%+v", rec.Code, env)
	}
	if svc.gotContractID != "c1" || svc.gotNew.Description != "rent" || *svc.gotNew.Value != 750 {
		t.Fatalf("input not forwarded: %+v", svc.gotNew)
	}
	data := env.Data.(map[string]any)
	if data["id"] != "p1" || data["contractId"] != "c1" {
		t.Fatalf("bad payment payload %#v", data)
	}
}

func TestAddPaymentMissingFieldsIs400(t *testing.T) {
	svc := &fakeSvc{}
	rec, env := doJSON(t, newRouter(svc), "POST", "/contracts/c1", `{"description":"rent"}`)

	if rec.Code != 400 {
		t.Fatalf("want 400, got %d env=%+v", rec.Code, env)
	}
	if env.Error == "" {
		t.Fatalf("validation failures must explain themselves")
	}
	if svc.gotContractID != "" {
		t.Fatalf("invalid body must not reach the service")
	}
}

func TestAddPaymentNonNumericValueIs400(t *testing.T) {
	svc := &fakeSvc{}
	rec, env := doJSON(t, newRouter(svc), "POST", "/contracts/c1",
		`{"description":"rent","value":"abc","time":"2024-06-01T00:00:00Z"}`)

	if rec.Code != 400 {
		t.Fatalf("want 400, got %d env=%+v", rec.Code, env)
	}
	if env.Error == "" {
		t.Fatalf("decode failures must explain themselves")
	}
	if svc.gotContractID != "" {
		t.Fatalf("a non-numeric value must never reach the service")
	}
}

func TestAddPaymentUnknownContractIs404(t *testing.T) {
	svc := &fakeSvc{err: perr.NotFoundf("contractId = 'ghost' not found in database")}
	rec, env := doJSON(t, newRouter(svc), "POST", "/contracts/ghost",
		`{"description":"rent","value":10,"time":"2024-06-01"}`)

	if rec.Code != 404 {
		t.Fatalf("want 404, got %d", rec.Code)
	}
	if env.Error != "contractId = 'ghost' not found in database" {
		t.Fatalf("unexpected error %q", env.Error)
	}
}

func TestDeletePayment(t *testing.T) {
	svc := &fakeSvc{}
	rec, env := doJSON(t, newRouter(svc), "DELETE", "/contracts/c1/payments/p7", "")

	if rec.Code != 200 {
		t.Fatalf("want 200, got %d", rec.Code)
	}
	if svc.gotContractID != "c1" || svc.gotPaymentID != "p7" {
		t.Fatalf("params not forwarded: %q %q", svc.gotContractID, svc.gotPaymentID)
	}
	data := env.Data.(map[string]any)
	if data["message"] != "Deleted paymentId = 'p7'" {
		t.Fatalf("bad confirmation %#v", data)
	}
}

func TestModifyPaymentForwardsPartialBody(t *testing.T) {
	svc := &fakeSvc{}
	rec, _ := doJSON(t, newRouter(svc), "PUT", "/contracts/c1/payments/p7", `{"value":120.5}`)

	if rec.Code != 200 {
		t.Fatalf("want 200, got %d", rec.Code)
	}
	if svc.gotPatch.Value == nil || *svc.gotPatch.Value != 120.5 {
		t.Fatalf("patch value missing: %+v", svc.gotPatch)
	}
	if svc.gotPatch.Description != nil || svc.gotPatch.Time != nil {
		t.Fatalf("absent fields must stay nil: %+v", svc.gotPatch)
	}
}

func TestPaymentListParsesWindow(t *testing.T) {
	svc := &fakeSvc{agg: domain.PaymentAggregate{Sum: 0, Items: []domain.Payment{}}}
	rec, env := doJSON(t, newRouter(svc), "GET",
		"/contracts/c1/paymentList?startDate=2024-01-01&endDate=2024-12-31", "")

	if rec.Code != 200 {
		t.Fatalf("want 200, got %d", rec.Code)
	}
	if svc.gotWindow.Start == nil || svc.gotWindow.End == nil {
		t.Fatalf("window not parsed: %+v", svc.gotWindow)
	}

	// empty aggregation still serializes items as []
	data := env.Data.(map[string]any)
	if data["sum"] != float64(0) {
		t.Fatalf("bad sum %#v", data["sum"])
	}
	if items, ok := data["items"].([]any); !ok || len(items) != 0 {
		t.Fatalf("items must be an empty array: %#v", data["items"])
	}
}

func TestPaymentListBadDatesAre400(t *testing.T) {
	svc := &fakeSvc{}
	rec, env := doJSON(t, newRouter(svc), "GET", "/contracts/c1/paymentList?startDate=banana", "")

	if rec.Code != 400 {
		t.Fatalf("want 400, got %d env=%+v", rec.Code, env)
	}
	if svc.gotContractID != "" {
		t.Fatalf("bad dates must not reach the service")
	}
}
