package router

import (
	"io/fs"
	"net/http"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"

	"github.com/GregMSThompson/ifsc-finder/internal/handlers"
	"github.com/GregMSThompson/ifsc-finder/internal/middleware"
)

// NewRouter wires the API under /api and serves assets, when given, from /.
func NewRouter(deps *handlers.Deps, assets fs.FS) chi.Router {
	r := chi.NewRouter()

	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(middleware.NewLoggerMiddleware(deps.Log).LoggerMiddleware)
	r.Use(middleware.NewRecoverMiddleware(deps.ResponseHandler).Recover)

	lh := handlers.NewLookupHandlers(deps)
	dh := handlers.NewDirectoryHandlers(deps)
	hh := handlers.NewHealthHandlers(deps)

	api := lh.LookupRoutes()
	api.Mount("/directory", dh.DirectoryRoutes())

	r.Get("/healthz", hh.Health)
	r.Mount("/api", api)
	if assets != nil {
		r.Handle("/*", http.FileServerFS(assets))
	}
	return r
}
