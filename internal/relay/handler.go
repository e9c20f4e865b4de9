package relay

import (
	"context"
	"net/http"

	"go.uber.org/zap"

	"github.com/five82/snip/internal/redirect"
)

// Handler exposes the redirector over HTTP.
type Handler struct {
	redirector *redirect.Redirector
	logger     *zap.Logger
}

// NewHandler creates a relay handler.
func NewHandler(redirector *redirect.Redirector, logger *zap.Logger) *Handler {
	return &Handler{redirector: redirector, logger: logger}
}

// RedirectRequest is the request for resolving a short token.
type RedirectRequest struct {
	Token string `doc:"The short token" example:"abc123" path:"token"`
}

// RedirectResponse sends the client on to the backend.
type RedirectResponse struct {
	Status   int
	Location string `header:"Location"`
}

// HealthResponse is the response for the health endpoint.
type HealthResponse struct {
	Body struct {
		Status string `json:"status" example:"ok"`
	}
}

// Redirect answers with a 302 to the backend resolution address for the
// token. Unknown tokens are the backend's concern.
func (h *Handler) Redirect(ctx context.Context, req *RedirectRequest) (*RedirectResponse, error) {
	resp := &RedirectResponse{Status: http.StatusFound}
	h.redirector.Resolve(req.Token, redirect.NavigatorFunc(func(target string) {
		resp.Location = target
	}))

	LoggerFromContext(ctx, h.logger).Debug("relayed token",
		zap.String("token", req.Token),
		zap.String("target", resp.Location),
	)
	return resp, nil
}

// Health reports liveness.
func (h *Handler) Health(_ context.Context, _ *struct{}) (*HealthResponse, error) {
	resp := &HealthResponse{}
	resp.Body.Status = "ok"
	return resp, nil
}
