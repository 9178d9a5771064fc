// Package http exposes expression evaluation over a small JSON API. Each
// request evaluates against a fresh session, which is also what makes the
// handler safe for concurrent use: sessions are single-threaded by contract,
// so none is ever shared between requests.
package http

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/aretw0/tally/internal/compiler"
	"github.com/aretw0/tally/internal/observability"
	"github.com/aretw0/tally/pkg/dump"
	"github.com/aretw0/tally/pkg/graph"
	"github.com/aretw0/tally/pkg/trace"
	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// EvalRequest is the body of POST /eval.
type EvalRequest struct {
	// Expr is the infix expression to trace, e.g. `1 + 2@"offset" * 3`.
	Expr string `json:"expr"`
	// Format selects the response rendering: value (default), dot, mermaid,
	// url, json, or yaml.
	Format string `json:"format,omitempty"`
}

// EvalResponse is returned for the value format.
type EvalResponse struct {
	Value float64 `json:"value"`
	Nodes int     `json:"nodes"`
}

// Server evaluates expressions and renders their derivation graphs.
type Server struct {
	logger  *slog.Logger
	metrics *observability.Metrics
}

// NewHandler builds the HTTP handler. The Prometheus registry also backs the
// /metrics endpoint, so merge-case and node-kind counters accumulate across
// requests.
func NewHandler(logger *slog.Logger, reg *prometheus.Registry) http.Handler {
	server := &Server{
		logger:  logger,
		metrics: observability.New(reg),
	}

	r := chi.NewRouter()
	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("ok"))
	})
	r.Handle("/metrics", promhttp.HandlerFor(reg, promhttp.HandlerOpts{}))
	r.Post("/eval", server.handleEval)

	return enableCORS(r)
}

func (s *Server) handleEval(w http.ResponseWriter, r *http.Request) {
	var req EvalRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, fmt.Sprintf("invalid request body: %v", err), http.StatusBadRequest)
		return
	}
	if req.Expr == "" {
		http.Error(w, "expr is required", http.StatusBadRequest)
		return
	}

	expr, err := compiler.Parse(req.Expr)
	if err != nil {
		http.Error(w, fmt.Sprintf("invalid expression: %v", err), http.StatusBadRequest)
		return
	}

	session := trace.NewSession(trace.WithHooks(s.metrics.Hooks()))
	root := expr.Build(session)
	s.logger.Debug("evaluated expression", "expr", req.Expr, "value", root.Value(), "nodes", session.Len())

	switch req.Format {
	case "", "value":
		writeJSON(w, EvalResponse{Value: root.Value(), Nodes: session.Len()})

	case "dot", "mermaid", "url":
		g, err := graph.Extract(root)
		if err != nil {
			http.Error(w, err.Error(), http.StatusInternalServerError)
			return
		}
		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		switch req.Format {
		case "dot":
			fmt.Fprint(w, graph.DOT(g))
		case "mermaid":
			fmt.Fprint(w, graph.Mermaid(g))
		case "url":
			fmt.Fprintln(w, graph.ViewerURL(graph.DOT(g)))
		}

	case "json":
		raw, err := dump.JSON(root)
		if err != nil {
			http.Error(w, err.Error(), http.StatusInternalServerError)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		w.Write(raw)

	case "yaml":
		raw, err := dump.YAML(root)
		if err != nil {
			http.Error(w, err.Error(), http.StatusInternalServerError)
			return
		}
		w.Header().Set("Content-Type", "text/yaml")
		w.Write(raw)

	default:
		http.Error(w, fmt.Sprintf("unknown format %q", req.Format), http.StatusBadRequest)
	}
}

func writeJSON(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(v); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}

func enableCORS(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type")
		if r.Method == "OPTIONS" {
			w.WriteHeader(http.StatusOK)
			return
		}
		next.ServeHTTP(w, r)
	})
}
