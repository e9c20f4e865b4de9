package relay

import (
	"net/http"

	"github.com/danielgtaylor/huma/v2"
	"github.com/danielgtaylor/huma/v2/adapters/humachi"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
	"go.uber.org/zap"
)

// Any origin may follow relay links, matching the backend's own CORS policy.
var corsOptions = cors.Options{
	AllowedOrigins:       []string{"*"},
	AllowedMethods:       []string{http.MethodGet},
	AllowedHeaders:       []string{"Content-Type"},
	MaxAge:               3600,
	OptionsSuccessStatus: http.StatusNoContent,
}

// NewRouter builds the chi router with middleware and all relay routes.
func NewRouter(h *Handler, logger *zap.Logger) *chi.Mux {
	router := chi.NewMux()
	router.Use(RequestLogger(logger))
	router.Use(cors.Handler(corsOptions))

	cfg := huma.DefaultConfig("snip relay", "1.0.0")
	// Static doc routes would shadow tokens of the same name.
	cfg.DocsPath = ""
	cfg.OpenAPIPath = ""
	cfg.SchemasPath = ""
	api := humachi.New(router, cfg)

	RegisterRoutes(api, h)
	return router
}

// RegisterRoutes registers the relay operations.
func RegisterRoutes(api huma.API, h *Handler) {
	huma.Register(api, huma.Operation{
		OperationID: "health",
		Method:      http.MethodGet,
		Path:        "/health",
		Summary:     "Health check",
		Tags:        []string{"Health"},
	}, h.Health)

	// GET /{token} - hand the client off to the backend
	huma.Register(api, huma.Operation{
		OperationID: "resolve-token",
		Method:      http.MethodGet,
		Path:        "/{token}",
		Summary:     "Redirect to the backend resolution address",
		Description: "Redirects to <resolve base>/<token> without looking the token up.",
		Tags:        []string{"Redirect"},
	}, h.Redirect)
}
