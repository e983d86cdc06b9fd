// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"
	"slices"
	"strings"

	"github.com/MKhiriev/go-upnode/internal/utils"
	"github.com/go-chi/chi/v5"
)

// CheckHTTPMethod returns an [http.HandlerFunc] that is intended to be
// registered as the router's MethodNotAllowed handler via
// [chi.Mux.MethodNotAllowed].
//
// It responds with HTTP 405 and a plain-text explanation. The Allow header
// lists the methods registered for the catch-all file route, plus HEAD
// whenever GET is registered since HEAD is served by the GET handler.
//
// The method set is collected once, so the handler must be created after
// every route has been registered:
//
//	router := chi.NewRouter()
//	// ... register routes ...
//	router.MethodNotAllowed(CheckHTTPMethod(router))
func CheckHTTPMethod(router chi.Routes) func(w http.ResponseWriter, r *http.Request) {
	allow := allowedMethods(router, fileRoutePattern)

	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Allow", allow)
		_, _ = utils.WriteText(w, methodNotAllowedMessage(r.Method), http.StatusMethodNotAllowed)
	}
}

func allowedMethods(router chi.Routes, pattern string) string {
	var methods []string
	for _, route := range router.Routes() {
		if route.Pattern != pattern {
			continue
		}
		for method := range route.Handlers {
			methods = append(methods, method)
			if method == http.MethodGet {
				methods = append(methods, http.MethodHead)
			}
		}
	}

	slices.Sort(methods)
	return strings.Join(slices.Compact(methods), ", ")
}
