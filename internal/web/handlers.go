package web

import (
	"context"
	"encoding/json"
	stderrors "errors"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/kapu/namevibes-bot/internal/domain"
	"github.com/kapu/namevibes-bot/internal/element"
	"github.com/kapu/namevibes-bot/internal/numerology"
	"github.com/kapu/namevibes-bot/internal/service/reading"
	"github.com/kapu/namevibes-bot/internal/zodiac"
	apperrors "github.com/kapu/namevibes-bot/pkg/errors"
	"go.uber.org/zap"
)

const (
	birthDateLayout = "2006-01-02"
	maxBodyBytes    = 64 << 10
)

type numerologyResponse struct {
	numerology.Profile
	LifePath *numerology.Result `json:"life_path,omitempty"`
}

type zodiacResponse struct {
	Name      string        `json:"name"`
	Nakshatra *zodiac.Match `json:"nakshatra"`
	SunSign   *zodiac.Sign  `json:"sun_sign,omitempty"`
}

type readingRequest struct {
	Name string `json:"name"`
}

type batchRequest struct {
	Names []string `json:"names"`
}

type batchResponse struct {
	Readings []*domain.Reading `json:"readings"`
}

type rankingResponse struct {
	Entries []domain.RankEntry `json:"entries"`
}

type recentResponse struct {
	Readings []domain.ReadingSummary `json:"readings"`
}

type healthResponse struct {
	Status string            `json:"status"`
	Checks map[string]string `json:"checks,omitempty"`
}

const healthCheckTimeout = 2 * time.Second

// handleHealth runs every registered check; one failure marks the service degraded.
func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	resp := healthResponse{Status: "ok"}
	status := http.StatusOK

	if len(s.checks) > 0 {
		resp.Checks = make(map[string]string, len(s.checks))
	}
	for name, check := range s.checks {
		ctx, cancel := context.WithTimeout(r.Context(), healthCheckTimeout)
		err := check(ctx)
		cancel()

		if err != nil {
			s.logger.Warn("Health check failed", zap.String("check", name), zap.Error(err))
			resp.Checks[name] = "error"
			resp.Status = "degraded"
			status = http.StatusServiceUnavailable
			continue
		}
		resp.Checks[name] = "ok"
	}

	s.writeJSON(w, status, resp)
}

func (s *Server) handleElements(w http.ResponseWriter, _ *http.Request) {
	s.writeJSON(w, http.StatusOK, element.All())
}

// handleElement accepts a symbol in any case or an atomic number.
func (s *Server) handleElement(w http.ResponseWriter, r *http.Request) {
	key := chi.URLParam(r, "symbol")

	var (
		rec   element.Record
		found bool
	)
	if n, err := strconv.Atoi(key); err == nil {
		rec, found = element.ByNumber(n)
	} else {
		rec, found = element.Lookup(element.CanonicalSymbol(key))
	}
	if !found {
		s.writeError(w, r, apperrors.NewNotFoundError("element", key))
		return
	}
	s.writeJSON(w, http.StatusOK, rec)
}

func (s *Server) handleParse(w http.ResponseWriter, r *http.Request) {
	name, err := reading.ValidateName(r.URL.Query().Get("name"))
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	s.writeJSON(w, http.StatusOK, element.Analyze(name))
}

func (s *Server) handleNumerology(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	system, err := numerology.ParseSystem(query.Get("system"))
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	name, err := reading.ValidateName(query.Get("name"))
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	birth, err := parseBirth(query.Get("birth"))
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	resp := numerologyResponse{Profile: numerology.CalculateProfile(name, system)}
	if birth != nil {
		lp := numerology.LifePath(*birth)
		resp.LifePath = &lp
	}
	s.writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleZodiac(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	name, err := reading.ValidateName(query.Get("name"))
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	birth, err := parseBirth(query.Get("birth"))
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	resp := zodiacResponse{Name: name}
	if m, ok := zodiac.NakshatraForName(name); ok {
		resp.Nakshatra = &m
	}
	if birth != nil {
		sign, err := zodiac.SunSign(birth.Month(), birth.Day())
		if err != nil {
			s.writeError(w, r, err)
			return
		}
		resp.SunSign = &sign
	}
	s.writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleCreateReading(w http.ResponseWriter, r *http.Request) {
	var req readingRequest
	if err := decodeBody(w, r, &req); err != nil {
		s.writeError(w, r, err)
		return
	}

	rd, err := s.readings.Record(r.Context(), req.Name, "web")
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	s.writeJSON(w, http.StatusCreated, rd)
}

func (s *Server) handleBatchReadings(w http.ResponseWriter, r *http.Request) {
	var req batchRequest
	if err := decodeBody(w, r, &req); err != nil {
		s.writeError(w, r, err)
		return
	}
	if len(req.Names) == 0 {
		s.writeError(w, r, apperrors.NewValidationError("names must not be empty", "names", 0))
		return
	}

	readings, err := s.readings.GetMany(r.Context(), req.Names)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	s.writeJSON(w, http.StatusOK, batchResponse{Readings: readings})
}

func (s *Server) handleTopReadings(w http.ResponseWriter, r *http.Request) {
	limit, err := parseLimit(r)
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	entries, err := s.readings.Top(r.Context(), limit)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	if entries == nil {
		entries = []domain.RankEntry{}
	}
	s.writeJSON(w, http.StatusOK, rankingResponse{Entries: entries})
}

func (s *Server) handleRecentReadings(w http.ResponseWriter, r *http.Request) {
	limit, err := parseLimit(r)
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	summaries, err := s.readings.Recent(r.Context(), limit)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	if summaries == nil {
		summaries = []domain.ReadingSummary{}
	}
	s.writeJSON(w, http.StatusOK, recentResponse{Readings: summaries})
}

func (s *Server) writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		s.logger.Warn("Failed to encode response", zap.Error(err))
	}
}

// writeError answers with {"error","code"}. Messages of 5xx errors stay in
// the log.
func (s *Server) writeError(w http.ResponseWriter, r *http.Request, err error) {
	status, code := apperrors.StatusOf(err)
	message := http.StatusText(status)

	if status >= http.StatusInternalServerError {
		s.logger.Error("Request failed",
			zap.String("method", r.Method),
			zap.String("path", r.URL.Path),
			zap.Error(err),
		)
	} else {
		message = messageOf(err)
	}

	s.writeJSON(w, status, map[string]string{"error": message, "code": code})
}

func messageOf(err error) string {
	var typed interface{ Base() *apperrors.BotError }
	if stderrors.As(err, &typed) && typed.Base() != nil {
		return typed.Base().Message
	}
	return err.Error()
}

func decodeBody(w http.ResponseWriter, r *http.Request, dest any) error {
	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	if err := dec.Decode(dest); err != nil {
		return apperrors.NewValidationError("invalid JSON body", "body", err.Error())
	}
	return nil
}

// parseLimit reads ?limit=; zero lets the service pick its default.
func parseLimit(r *http.Request) (int, error) {
	raw := r.URL.Query().Get("limit")
	if raw == "" {
		return 0, nil
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		return 0, apperrors.NewValidationError("limit must be a number", "limit", raw)
	}
	return n, nil
}

func parseBirth(raw string) (*time.Time, error) {
	if raw == "" {
		return nil, nil
	}
	birth, err := time.Parse(birthDateLayout, raw)
	if err != nil {
		return nil, apperrors.NewValidationError("birth must be YYYY-MM-DD", "birth", raw)
	}
	return &birth, nil
}
