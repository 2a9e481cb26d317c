package api

import (
	"net/http"

	"github.com/rs/cors"

	"github.com/pricesense/backend/app/alerts"
	"github.com/pricesense/backend/app/health"
	"github.com/pricesense/backend/app/jobs"
	"github.com/pricesense/backend/app/openapi"
	"github.com/pricesense/backend/app/products"
)

// Handlers carries everything the router mounts.
type Handlers struct {
	Products *products.ProductsHandler
	Alerts   *alerts.AlertsHandler
	Jobs     *jobs.JobsHandler
}

// NewRouter wires the route table and wraps it with CORS and request
// logging. allowOrigins comes from ALLOW_ORIGINS.
func NewRouter(h Handlers, allowOrigins []string) http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("GET /{$}", health.Handle)
	mux.HandleFunc("GET /openapi.json", openapi.Handle)

	mux.HandleFunc("GET /products", h.Products.HandleList)
	mux.HandleFunc("POST /products", h.Products.HandleCreate)
	mux.HandleFunc("GET /products/{id}", h.Products.HandleGet)
	mux.HandleFunc("PUT /products/{id}", h.Products.HandleUpdate)
	mux.HandleFunc("PATCH /products/{id}", h.Products.HandleUpdate)
	mux.HandleFunc("DELETE /products/{id}", h.Products.HandleDelete)
	mux.HandleFunc("GET /products/{id}/history", h.Products.HandleGetHistory)

	mux.HandleFunc("GET /alerts", h.Alerts.HandleGetAll)

	mux.HandleFunc("POST /jobs/fetch-latest", h.Jobs.HandleFetchLatest)

	c := cors.New(cors.Options{
		AllowedOrigins:   allowOrigins,
		AllowedMethods:   []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Origin", "Content-Type", "Accept", "Authorization"},
		AllowCredentials: true,
	})

	return c.Handler(logRequests(mux))
}
