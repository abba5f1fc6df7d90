// Package httpkit provides handler and routing helpers that alias the platform http package
// use these from modules so they do not import internal/platform/net/http directly
package httpkit

import (
	"net/http"

	phttp "rentals/internal/platform/net/http"
)

type (
	// Response is the HTTP response type
	Response = phttp.Response

	// Router is a re-export of the platform router seam
	Router = phttp.Router
)

// Created returns a 201 response
func Created(data any) Response { return phttp.Created(data) }

// Param returns the named URL parameter for the current route
func Param(r *http.Request, key string) string { return phttp.Param(r, key) }
