package api

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"golang.org/x/time/rate"

	"github.com/alexiusacademia/gohouse/internal/building"
	"github.com/alexiusacademia/gohouse/internal/config"
	"github.com/alexiusacademia/gohouse/internal/logger"
	"github.com/alexiusacademia/gohouse/internal/presets"
	"github.com/alexiusacademia/gohouse/internal/report"
	"github.com/alexiusacademia/gohouse/internal/roof"
	"github.com/alexiusacademia/gohouse/internal/version"
)

// maximum accepted request body
const maxBodyBytes = 1 << 20

type Server struct {
	cfg    config.Config
	router *chi.Mux
}

// NewServer builds the HTTP API around the roof calculator
func NewServer(cfg config.Config) *Server {
	s := &Server{cfg: cfg}
	s.setupRoutes()
	return s
}

func (s *Server) setupRoutes() {
	r := chi.NewRouter()

	limiter := NewIPRateLimiter(rate.Limit(s.cfg.RateLimit), s.cfg.RateBurst)

	// Middleware
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(requestLogger)
	r.Use(middleware.Recoverer)
	r.Use(middleware.Timeout(30 * time.Second))

	r.Get("/api/v1/health", s.handleHealth)
	r.Get("/api/v1/sizes", s.handleSizes)

	r.Group(func(r chi.Router) {
		r.Use(limiter.LimitMiddleware)
		r.Post("/api/v1/calculate", s.handleCalculate)
		r.Post("/api/v1/report.pdf", s.handleReportPDF)
		r.Post("/api/v1/report.xlsx", s.handleReportXLSX)
	})

	s.router = r
}

func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{
		"status":  "ok",
		"version": version.Version,
	})
}

func (s *Server) handleSizes(w http.ResponseWriter, r *http.Request) {
	if tag := r.URL.Query().Get("roof_type"); tag != "" {
		rt, err := roof.ParseRoofType(tag)
		if err != nil {
			writeError(w, http.StatusBadRequest, err.Error())
			return
		}
		opts, _ := presets.For(rt)
		writeJSON(w, http.StatusOK, opts)
		return
	}
	writeJSON(w, http.StatusOK, presets.Sizes)
}

// CalculateResponse wraps a result with warnings about the input
type CalculateResponse struct {
	Input    roof.BuildingInput `json:"input"`
	Result   roof.Result        `json:"result"`
	Standard bool               `json:"standard_size"`
}

func (s *Server) handleCalculate(w http.ResponseWriter, r *http.Request) {
	var in roof.BuildingInput
	if err := decodeJSON(w, r, &in); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	res, err := roof.Compute(in)
	if err != nil {
		logger.Debug("rejected calculation", "error", err, "request_id", middleware.GetReqID(r.Context()))
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	logMinHeight(in, res)

	writeJSON(w, http.StatusOK, CalculateResponse{
		Input:    in,
		Result:   res,
		Standard: presets.IsStandard(in),
	})
}

func (s *Server) handleReportPDF(w http.ResponseWriter, r *http.Request) {
	s.handleReport(w, r, "application/pdf", "report.pdf", (*report.Report).WritePDF)
}

func (s *Server) handleReportXLSX(w http.ResponseWriter, r *http.Request) {
	s.handleReport(w, r, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet", "report.xlsx", (*report.Report).WriteXLSX)
}

func (s *Server) handleReport(w http.ResponseWriter, r *http.Request, contentType, filename string, write func(*report.Report, io.Writer) error) {
	var project building.Project
	if err := decodeJSON(w, r, &project); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	if err := project.Validate(); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	author := project.Author
	if author == "" {
		author = s.cfg.ReportAuthor
	}
	rep := report.New("", project.Name, author)
	for _, b := range project.Buildings {
		if err := rep.AddBuilding(b); err != nil {
			writeError(w, http.StatusBadRequest, err.Error())
			return
		}
	}

	// Render fully before writing headers so failures still get a JSON error
	var buf bytes.Buffer
	if err := write(rep, &buf); err != nil {
		logger.Error("report generation failed", "error", err, "report_id", rep.ID)
		writeError(w, http.StatusInternalServerError, "report generation error")
		return
	}

	w.Header().Set("Content-Type", contentType)
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	w.Header().Set("X-Report-ID", rep.ID)
	w.WriteHeader(http.StatusOK)
	_, _ = buf.WriteTo(w)
}

func decodeJSON(w http.ResponseWriter, r *http.Request, v any) error {
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	dec.DisallowUnknownFields()
	if err := dec.Decode(v); err != nil {
		return fmt.Errorf("invalid request payload: %w", err)
	}
	return nil
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		logger.Warn("failed to encode response", "error", err)
	}
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"error": msg})
}

// logMinHeight flags eave heights the calculator accepts without clamping
func logMinHeight(in roof.BuildingInput, res roof.Result) {
	for i, s := range res.Slopes {
		if s.MinHeight <= 0 {
			logger.Warn("non-positive eave height", "slope", i+1, "min_height", s.MinHeight,
				"width", in.Width, "roof_type", in.RoofType)
		}
	}
}

func requestLogger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		start := time.Now()
		next.ServeHTTP(ww, r)
		logger.Info("request",
			"method", r.Method,
			"path", r.URL.Path,
			"status", ww.Status(),
			"bytes", ww.BytesWritten(),
			"duration", time.Since(start),
			"request_id", middleware.GetReqID(r.Context()),
		)
	})
}
