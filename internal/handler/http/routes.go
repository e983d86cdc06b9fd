package http

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

const (
	fileRoutePattern = "/*"
	faviconPath      = "/favicon.ico"

	compressionLevel = 5
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(h.withTraceID)
	router.Use(h.withLogging)
	router.Use(middleware.Compress(compressionLevel, "text/plain", "application/json"))
	router.Use(middleware.GetHead)

	router.HandleFunc(faviconPath, h.favicon)

	router.Get(fileRoutePattern, h.serveFile)
	router.Post(fileRoutePattern, h.upload)

	router.MethodNotAllowed(CheckHTTPMethod(router))

	return router
}
