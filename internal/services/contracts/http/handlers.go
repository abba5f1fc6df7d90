// Package http provides http transport for contracts and their payments
package http

import (
	stdhttp "net/http"

	"rentals/internal/modkit/httpkit"
	perr "rentals/internal/platform/errors"
	"rentals/internal/services/contracts/domain"
)

// Register mounts contract endpoints on the given router
func Register(r httpkit.Router, s domain.ServicePort) {
	h := &handlers{svc: s}
	httpkit.Get(r, "/", h.list)
	httpkit.PostJSON[domain.NewPaymentInput](r, "/{contractId}", h.addPayment)
	httpkit.Get(r, "/{contractId}/paymentList", h.paymentList)
	httpkit.Delete(r, "/{contractId}/payments/{paymentId}", h.deletePayment)
	httpkit.PutJSON[domain.PaymentPatchInput](r, "/{contractId}/payments/{paymentId}", h.modifyPayment)
}

type handlers struct{ svc domain.ServicePort }

func (h *handlers) list(r *stdhttp.Request) (any, error) {
	return h.svc.ListContracts(r.Context())
}

func (h *handlers) addPayment(r *stdhttp.Request, in domain.NewPaymentInput) (any, error) {
	p, err := h.svc.AddPayment(r.Context(), httpkit.Param(r, "contractId"), in)
	if err != nil {
		return nil, err
	}
	return httpkit.Created(p), nil
}

func (h *handlers) deletePayment(r *stdhttp.Request) (any, error) {
	return h.svc.DeletePayment(r.Context(), httpkit.Param(r, "contractId"), httpkit.Param(r, "paymentId"))
}

func (h *handlers) modifyPayment(r *stdhttp.Request, in domain.PaymentPatchInput) (any, error) {
	return h.svc.ModifyPayment(r.Context(), httpkit.Param(r, "contractId"), httpkit.Param(r, "paymentId"), in)
}

func (h *handlers) paymentList(r *stdhttp.Request) (any, error) {
	w, err := parseWindow(r)
	if err != nil {
		return nil, err
	}
	return h.svc.PaymentList(r.Context(), httpkit.Param(r, "contractId"), w)
}

// parseWindow reads the optional startDate and endDate query params
func parseWindow(r *stdhttp.Request) (domain.Window, error) {
	var w domain.Window
	q := r.URL.Query()
	if s := q.Get("startDate"); s != "" {
		t, err := domain.ParseISOTime(s)
		if err != nil {
			return w, perr.Validationf("'startDate' must be a valid ISO 8601 date string")
		}
		w.Start = &t
	}
	if s := q.Get("endDate"); s != "" {
		t, err := domain.ParseISOTime(s)
		if err != nil {
			return w, perr.Validationf("'endDate' must be a valid ISO 8601 date string")
		}
		w.End = &t
	}
	return w, nil
}
