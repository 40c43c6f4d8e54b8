// internal/httpserver/server.go
//
// HTTP wiring for the Wordle helper backend.
// Responsibilities:
//   - Router + middleware (JSON, CORS, timeouts, panic recovery, request IDs).
//   - Public endpoints: "/", "/health", "/debug/words".
//   - Stateless filter endpoint: POST /filter.
//   - Session endpoints (optional auth): /session/new, /session/guess,
//     /session/undo, /session/{id}/candidates.
//   - Auth endpoints live in auth.go.
//
// Notes:
//   - CORS is origin-aware and credentials-enabled (so cookies work).
//   - Optional auth decorates requests with user context when a valid token
//     is present; every endpoint here still works for guests.
//   - All validation of guess payloads happens in solver.ParseGuess; handlers
//     translate its typed errors into stable JSON error codes.

package httpserver

import (
	"database/sql"
	"encoding/json"
	"errors"
	"net/http"
	"os"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/rs/zerolog/log"

	"github.com/lettergrid/wordle-helper/internal/solver"
	"github.com/lettergrid/wordle-helper/internal/store"
	"github.com/lettergrid/wordle-helper/internal/words"
)

// Server bundles router, session store, and DB handle.
type Server struct {
	r     *chi.Mux
	store store.Store
	db    *sql.DB
}

// New constructs a Server, installs middleware, and registers routes.
func New(st store.Store, db *sql.DB) *Server {
	s := &Server{r: chi.NewRouter(), store: st, db: db}

	// --- middleware ---
	s.r.Use(chimw.RequestID)                 // add X-Request-ID
	s.r.Use(chimw.RealIP)                    // set RemoteAddr from X-Forwarded-For etc.
	s.r.Use(chimw.Recoverer)                 // recover from panics
	s.r.Use(chimw.Timeout(10 * time.Second)) // bound handler time
	s.r.Use(jsonContentType)                 // default JSON responses
	s.r.Use(corsFromEnv)                     // credentials-friendly CORS

	// --- diagnostics ---
	s.r.Get("/", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(`{"service":"wordle-helper","endpoints":["/health","POST /filter","POST /session/new","POST /session/guess","POST /session/undo","/auth/*"]}`))
	})
	s.r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(`{"ok":true}`))
	})
	s.r.Get("/debug/words", func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewEncoder(w).Encode(map[string]int{"words": words.Count()})
	})

	// Stateless filter — callers supply the full guess history per call.
	s.r.Post("/filter", s.handleFilter)

	// Session endpoints — OPTIONAL AUTH (guests get an anon cookie)
	s.r.Group(func(r chi.Router) {
		r.Use(s.withOptionalAuth())
		r.Post("/session/new", s.handleNewSession)
		r.Post("/session/guess", s.handleSessionGuess)
		r.Post("/session/undo", s.handleSessionUndo)
		r.Get("/session/{id}/candidates", s.handleCandidates)
	})

	// Auth + profile (require auth where noted)
	s.mountAuthRoutes()

	// JSON 404 for easier debugging
	s.r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"error":"not_found","path":"`+r.URL.Path+`"}`, http.StatusNotFound)
	})

	return s
}

// Start begins serving HTTP on addr.
func (s *Server) Start(addr string) error { return http.ListenAndServe(addr, s.r) }

// Router exposes the internal router (useful for tests).
func (s *Server) Router() chi.Router { return s.r }

// ----------------------------- middleware ----------------------------------

// jsonContentType sets a default JSON Content-Type header on all responses.
func jsonContentType(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json; charset=utf-8")
		next.ServeHTTP(w, r)
	})
}

// corsFromEnv enables credentialed CORS for a single origin.
// Uses CLIENT_ORIGIN env var; defaults to http://localhost:5173.
func corsFromEnv(next http.Handler) http.Handler {
	origin := os.Getenv("CLIENT_ORIGIN")
	if origin == "" {
		origin = "http://localhost:5173"
	}
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Vary", "Origin")
		w.Header().Set("Access-Control-Allow-Origin", origin)
		w.Header().Set("Access-Control-Allow-Credentials", "true")
		w.Header().Set("Access-Control-Allow-Methods", "GET,POST,OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization")
		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusNoContent)
			return
		}
		next.ServeHTTP(w, r)
	})
}

// ------------------------------ FILTER -------------------------------------

// guessPayload is one guess in boundary encoding, matching the UI's shape.
type guessPayload struct {
	Letters []solver.LetterInput `json:"letters"`
}

// filterReq/Res payloads for POST /filter.
type filterReq struct {
	Guesses []guessPayload `json:"guesses"`
}
type filterRes struct {
	Words []string `json:"words"`
	Count int      `json:"count"`
}

// handleFilter validates the submitted history and returns the dictionary
// words consistent with every guess.
func (s *Server) handleFilter(w http.ResponseWriter, r *http.Request) {
	var req filterReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, `{"error":"bad_json"}`, http.StatusBadRequest)
		return
	}
	history, err := parseHistory(req.Guesses)
	if err != nil {
		writeValidationError(w, err)
		return
	}
	writeCandidates(w, solver.Filter(words.All(), history))
}

// parseHistory converts wire guesses through the validating boundary.
func parseHistory(payloads []guessPayload) ([]solver.Guess, error) {
	raw := make([][]solver.LetterInput, 0, len(payloads))
	for _, p := range payloads {
		raw = append(raw, p.Letters)
	}
	return solver.ParseHistory(raw)
}

// writeValidationError maps boundary errors onto stable JSON error codes.
func writeValidationError(w http.ResponseWriter, err error) {
	code := "bad_request"
	switch {
	case errors.Is(err, solver.ErrInvalidState):
		code = "invalid_state"
	case errors.Is(err, solver.ErrInvalidLetter):
		code = "invalid_letter"
	case errors.Is(err, solver.ErrInvalidWord):
		code = "invalid_word"
	}
	body, _ := json.Marshal(map[string]string{"error": code, "detail": err.Error()})
	http.Error(w, string(body), http.StatusBadRequest)
}

// writeCandidates encodes the surviving word list.
func writeCandidates(w http.ResponseWriter, cands []solver.Word) {
	out := make([]string, 0, len(cands))
	for _, c := range cands {
		out = append(out, c.String())
	}
	_ = json.NewEncoder(w).Encode(filterRes{Words: out, Count: len(out)})
}

// ------------------------------ SESSION ------------------------------------

// newSessionRes payload for POST /session/new.
type newSessionRes struct {
	SessionID string `json:"sessionId"`
}

// handleNewSession creates an empty in-memory session owned by the current
// user, or by the anonymous cookie for guests.
func (s *Server) handleNewSession(w http.ResponseWriter, r *http.Request) {
	owner := s.ensureAnonID(w, r)
	if me, _ := r.Context().Value(ctxUserKey{}).(*authUser); me != nil {
		owner = me.ID
	}

	sess := store.NewSession(owner)
	if err := s.store.Save(r.Context(), sess); err != nil {
		log.Error().Err(err).Msg("save session")
		http.Error(w, `{"error":"save_failed"}`, http.StatusInternalServerError)
		return
	}
	_ = json.NewEncoder(w).Encode(newSessionRes{SessionID: sess.ID})
}

// sessionGuessReq payload for POST /session/guess.
type sessionGuessReq struct {
	SessionID string               `json:"sessionId"`
	Letters   []solver.LetterInput `json:"letters"`
}

// handleSessionGuess appends a finalized guess to a session and returns the
// candidates surviving the whole history.
func (s *Server) handleSessionGuess(w http.ResponseWriter, r *http.Request) {
	var req sessionGuessReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, `{"error":"bad_json"}`, http.StatusBadRequest)
		return
	}
	sess, err := s.store.Get(r.Context(), req.SessionID)
	if err != nil {
		http.Error(w, `{"error":"not_found"}`, http.StatusNotFound)
		return
	}
	g, err := solver.ParseGuess(req.Letters)
	if err != nil {
		writeValidationError(w, err)
		return
	}
	sess.Add(g)
	if err := s.store.Save(r.Context(), sess); err != nil {
		http.Error(w, `{"error":"save_failed"}`, http.StatusInternalServerError)
		return
	}
	writeCandidates(w, solver.Filter(words.All(), sess.History()))
}

// sessionUndoReq payload for POST /session/undo.
type sessionUndoReq struct {
	SessionID string `json:"sessionId"`
}

// handleSessionUndo removes the most recent guess and returns the candidates
// for the shortened history. With no guesses left that is the full dictionary.
func (s *Server) handleSessionUndo(w http.ResponseWriter, r *http.Request) {
	var req sessionUndoReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, `{"error":"bad_json"}`, http.StatusBadRequest)
		return
	}
	sess, err := s.store.Get(r.Context(), req.SessionID)
	if err != nil {
		http.Error(w, `{"error":"not_found"}`, http.StatusNotFound)
		return
	}
	if !sess.RemoveLast() {
		http.Error(w, `{"error":"empty_history"}`, http.StatusConflict)
		return
	}
	if err := s.store.Save(r.Context(), sess); err != nil {
		http.Error(w, `{"error":"save_failed"}`, http.StatusInternalServerError)
		return
	}
	writeCandidates(w, solver.Filter(words.All(), sess.History()))
}

// handleCandidates returns the current surviving candidates for a session.
func (s *Server) handleCandidates(w http.ResponseWriter, r *http.Request) {
	sess, err := s.store.Get(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		http.Error(w, `{"error":"not_found"}`, http.StatusNotFound)
		return
	}
	writeCandidates(w, solver.Filter(words.All(), sess.History()))
}

// ------------------------------- small util --------------------------------

// getEnv returns the value of k or def if unset/empty.
func getEnv(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}
