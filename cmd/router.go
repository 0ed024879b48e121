package main

import (
	"encoding/json"
	"io"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"go.uber.org/zap"

	"github.com/finboard/finboard-cli/internal/dataset"
	"github.com/finboard/finboard-cli/internal/metrics"
	"github.com/finboard/finboard-cli/internal/model"
	"github.com/finboard/finboard-cli/internal/render"
	"github.com/finboard/finboard-cli/internal/scenario"
)

// buildRouter wires the dashboard API around a single shared session. The
// frontend polls the GET endpoints after every import, so each handler reads
// a fresh snapshot of the dataset.
func buildRouter(session *dataset.Session) http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.Recoverer)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Content-Type"},
	}))

	r.Get("/health", func(w http.ResponseWriter, _ *http.Request) {
		writeJSON(w, http.StatusOK, map[string]any{
			"status":     "ok",
			"dataset_id": session.ID(),
			"periods":    session.Len(),
		})
	})

	r.Route("/api", func(r chi.Router) {
		r.Post("/import", handleImport(session))
		r.Get("/periods", handlePeriods(session))
		r.Get("/kpis", handleKPIs(session))
		r.Get("/series/{field}", handleSeries(session))
		r.Get("/cashflow", handleCashFlow(session))
		r.Get("/capital-structure", handleCapitalStructure(session))
		r.Post("/scenario", handleScenario(session))
		r.Get("/export", handleExport(session))
	})

	return r
}

// handleImport replaces the whole dataset from the request body. CSV and
// JSON payloads are distinguished by the format query param, falling back
// to the Content-Type header. A failed import leaves the session untouched.
func handleImport(session *dataset.Session) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		body, err := io.ReadAll(r.Body)
		if err != nil {
			writeError(w, http.StatusBadRequest, "read request body", err)
			return
		}

		format := r.URL.Query().Get("format")
		if format == "" && strings.Contains(r.Header.Get("Content-Type"), "json") {
			format = "json"
		}

		switch format {
		case "json":
			err = session.ImportJSON(body)
		default:
			err = session.ImportCSV(string(body))
		}
		if err != nil {
			writeError(w, http.StatusBadRequest, "import dataset", err)
			return
		}

		zap.L().Info("dataset imported",
			zap.String("dataset_id", session.ID()),
			zap.Int("periods", session.Len()),
		)
		writeJSON(w, http.StatusOK, map[string]any{
			"dataset_id": session.ID(),
			"periods":    session.Len(),
		})
	}
}

func handlePeriods(session *dataset.Session) http.HandlerFunc {
	return func(w http.ResponseWriter, _ *http.Request) {
		periods := session.Periods()
		if periods == nil {
			periods = []model.Period{}
		}
		writeJSON(w, http.StatusOK, periods)
	}
}

func handleKPIs(session *dataset.Session) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()
		periods := metrics.FilterRange(session.Periods(), q.Get("from"), q.Get("to"))
		if len(periods) == 0 {
			writeError(w, http.StatusUnprocessableEntity, "dataset is empty", nil)
			return
		}
		writeJSON(w, http.StatusOK, metrics.ComputeKPIs(periods))
	}
}

func handleSeries(session *dataset.Session) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		name := chi.URLParam(r, "field")
		if !model.ValidField(name) {
			writeError(w, http.StatusNotFound, "unknown field", name)
			return
		}
		writeJSON(w, http.StatusOK, render.SeriesChart(session.Periods(), model.Field(name)))
	}
}

func handleCashFlow(session *dataset.Session) http.HandlerFunc {
	return func(w http.ResponseWriter, _ *http.Request) {
		writeJSON(w, http.StatusOK, render.CashFlowChart(session.Periods()))
	}
}

func handleCapitalStructure(session *dataset.Session) http.HandlerFunc {
	return func(w http.ResponseWriter, _ *http.Request) {
		cs := metrics.LatestCapitalStructure(session.Periods())
		writeJSON(w, http.StatusOK, render.CapitalStructureChart(cs))
	}
}

// handleScenario projects one period forward under the assumptions in the
// request body. Missing dials default to neutral; out-of-range dials are
// clamped rather than rejected.
func handleScenario(session *dataset.Session) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		a := scenario.Neutral()
		if err := json.NewDecoder(r.Body).Decode(&a); err != nil && err != io.EOF {
			writeError(w, http.StatusBadRequest, "decode assumptions", err)
			return
		}

		result, err := scenario.Simulate(session.Periods(), a.Clamp())
		if err != nil {
			writeError(w, http.StatusUnprocessableEntity, "run scenario", err)
			return
		}
		writeJSON(w, http.StatusOK, result)
	}
}

func handleExport(session *dataset.Session) http.HandlerFunc {
	return func(w http.ResponseWriter, _ *http.Request) {
		data, err := session.ExportJSON()
		if err != nil {
			writeError(w, http.StatusInternalServerError, "export dataset", err)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		w.Header().Set("Content-Disposition", `attachment; filename="`+dataset.DefaultExportName+`"`)
		w.WriteHeader(http.StatusOK)
		w.Write(data)
	}
}

func writeJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		zap.L().Error("encode response", zap.Error(err))
	}
}

func writeError(w http.ResponseWriter, status int, msg string, details any) {
	if err, ok := details.(error); ok {
		details = err.Error()
	}
	writeJSON(w, status, map[string]any{"error": msg, "details": details})
}
