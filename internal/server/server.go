// Package server exposes webhook verification over HTTP. Each inbound
// request is verified against the provider named in the path (or detected
// from its signature headers) and answered with 204 or 401 and nothing
// else, so callers cannot probe why a signature was rejected.
package server

import (
	"encoding/json"
	"net/http"

	"github.com/gorilla/mux"

	"webhook-verifier/internal/common/logging"
	"webhook-verifier/internal/config"
	"webhook-verifier/internal/engine"
	"webhook-verifier/internal/headers"
	"webhook-verifier/internal/middleware"
	"webhook-verifier/internal/providers"
)

// Server wires configuration, logging, and routing
type Server struct {
	cfg    *config.Config
	logger logging.Logger
	router *mux.Router
}

// New builds a server with its routes registered
func New(cfg *config.Config, logger logging.Logger) *Server {
	if logger == nil {
		logger = logging.NewDefaultLogger()
	}

	s := &Server{
		cfg:    cfg,
		logger: logger,
		router: mux.NewRouter(),
	}

	s.router.Use(middleware.Logging)
	s.router.HandleFunc("/webhooks/{provider}", s.handleWebhook).Methods("POST")
	s.router.HandleFunc("/webhooks", s.handleDetectedWebhook).Methods("POST")
	s.router.HandleFunc("/providers", s.handleProviders).Methods("GET")
	s.router.HandleFunc("/health", s.handleHealth).Methods("GET")

	return s
}

// Router returns the HTTP handler
func (s *Server) Router() http.Handler {
	return s.router
}

func (s *Server) handleWebhook(w http.ResponseWriter, r *http.Request) {
	provider := providers.Provider(mux.Vars(r)["provider"])
	if !providers.DefaultRegistry.IsRegistered(provider) {
		http.Error(w, "Unknown provider", http.StatusNotFound)
		return
	}
	s.verifyAndRespond(w, r, provider)
}

// handleDetectedWebhook serves providers that cannot put their name in
// the callback URL; the provider is inferred from the signature headers
func (s *Server) handleDetectedWebhook(w http.ResponseWriter, r *http.Request) {
	provider, found := headers.Detect(headers.FromHTTP(r.Header))
	if !found {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}
	s.verifyAndRespond(w, r, provider)
}

func (s *Server) verifyAndRespond(w http.ResponseWriter, r *http.Request, provider providers.Provider) {
	secret, ok := s.cfg.Secret(provider)
	if !ok {
		s.logger.Warn("No secret configured for provider",
			logging.Field{Key: "provider", Value: string(provider)},
		)
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	body, err := middleware.PreserveRequestBody(r)
	if err != nil {
		http.Error(w, "Bad Request", http.StatusBadRequest)
		return
	}

	opts := &providers.Options{
		Tolerance:         s.cfg.Tolerance,
		URL:               middleware.RequestURL(r),
		Method:            r.Method,
		AdditionalSecrets: s.cfg.AdditionalSecrets(provider),
	}

	valid, err := engine.VerifyRequest(provider, body, headers.FromHTTP(r.Header), secret, opts)
	if err != nil {
		s.logger.Warn("Signature verification error",
			logging.Field{Key: "provider", Value: string(provider)},
			logging.Field{Key: "error", Value: err.Error()},
		)
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}
	if !valid {
		s.logger.Warn("Signature verification failed",
			logging.Field{Key: "provider", Value: string(provider)},
		)
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// handleProviders lists each provider and the headers its scheme reads
func (s *Server) handleProviders(w http.ResponseWriter, _ *http.Request) {
	type entry struct {
		Provider string            `json:"provider"`
		Headers  map[string]string `json:"headers"`
		Enabled  bool              `json:"enabled"`
	}

	directory := engine.Directory()
	entries := make([]entry, 0, len(directory))
	for _, provider := range providers.All() {
		_, configured := s.cfg.Secret(provider)
		entries = append(entries, entry{
			Provider: string(provider),
			Headers:  directory[provider],
			Enabled:  configured,
		})
	}

	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(entries)
}

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(map[string]string{"status": "ok"})
}
