package api

import (
	"net/http"

	"waste-collection-service/internal/api/handlers"
	"waste-collection-service/internal/ports"
	"waste-collection-service/internal/routing"
)

// RouterDeps carries everything the HTTP surface needs. Store, Cache, and
// Notifier may be nil; the handlers degrade to compute-only behavior.
type RouterDeps struct {
	Bins      ports.BinRepository
	Requests  ports.RequestRepository
	Store     ports.RouteStore
	Cache     ports.RouteCache
	Notifier  ports.CrewNotifier
	Threshold int
	Estimator routing.EstimatorConfig
}

// NewRouter wires HTTP handlers with their dependencies and returns an http.Handler.
// This is the API composition root (handlers stay unaware of concrete adapters).
func NewRouter(deps RouterDeps) http.Handler {
	mux := http.NewServeMux()

	binHandler := &handlers.BinHandler{Repo: deps.Bins, Threshold: deps.Threshold}
	reqHandler := &handlers.RequestHandler{Repo: deps.Requests}
	routeHandler := &handlers.RouteHandler{
		Bins:      deps.Bins,
		Requests:  deps.Requests,
		Store:     deps.Store,
		Cache:     deps.Cache,
		Notifier:  deps.Notifier,
		Estimator: deps.Estimator,
	}

	mux.HandleFunc("/health", handlers.Health)
	mux.HandleFunc("/bins", binHandler.ListEligible)
	mux.HandleFunc("/requests", reqHandler.ListApproved)
	mux.HandleFunc("/routes/optimize", routeHandler.Optimize)
	mux.HandleFunc("/routes/latest", routeHandler.Latest)

	return loggingMiddleware(mux)
}
