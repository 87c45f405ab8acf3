// Package api serves the REST side of the tactics server: formation data
// for pickers and the saved tactic library.
package api

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/gorilla/mux"
	"github.com/rs/cors"
	"github.com/rs/zerolog"

	"github.com/vladimirvolkov/tactics/internal/annotation"
	"github.com/vladimirvolkov/tactics/internal/board"
	"github.com/vladimirvolkov/tactics/internal/formation"
	"github.com/vladimirvolkov/tactics/internal/store"
)

// maxBody caps uploaded tactics.
const maxBody = 1 << 20

// Tactics is the saved tactic library.
type Tactics interface {
	Save(ctx context.Context, author string, t board.Tactic) (board.Tactic, error)
	List(ctx context.Context) ([]store.Summary, error)
	Get(ctx context.Context, id string) (board.Tactic, error)
	Delete(ctx context.Context, id string) error
}

type Server struct {
	tactics Tactics
	log     zerolog.Logger
	stats   func() any
}

// New builds the API. stats, if not nil, is reported by the health
// endpoint.
func New(tactics Tactics, log zerolog.Logger, stats func() any) *Server {
	return &Server{tactics: tactics, log: log, stats: stats}
}

// Routes mounts every endpoint under /api on router.
func (s *Server) Routes(router *mux.Router) {
	api := router.PathPrefix("/api").Subrouter()
	api.HandleFunc("/health", s.handleHealth).Methods(http.MethodGet)
	api.HandleFunc("/formations", s.handleFormations).Methods(http.MethodGet)
	api.HandleFunc("/formations/{name}", s.handleFormation).Methods(http.MethodGet)
	api.HandleFunc("/clubs", s.handleClubs).Methods(http.MethodGet)
	api.HandleFunc("/tactics", s.handleListTactics).Methods(http.MethodGet)
	api.HandleFunc("/tactics", s.handleSaveTactic).Methods(http.MethodPost)
	api.HandleFunc("/tactics/{id}", s.handleGetTactic).Methods(http.MethodGet)
	api.HandleFunc("/tactics/{id}", s.handleDeleteTactic).Methods(http.MethodDelete)
}

// Handler returns the API on its own router, behind CORS.
func (s *Server) Handler(origins []string) http.Handler {
	router := mux.NewRouter()
	s.Routes(router)
	return CORS(origins).Handler(router)
}

// CORS allows browsers on origins to call the API. No origins means any.
func CORS(origins []string) *cors.Cors {
	if len(origins) == 0 {
		origins = []string{"*"}
	}
	return cors.New(cors.Options{
		AllowedOrigins: origins,
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodDelete, http.MethodOptions},
		AllowedHeaders: []string{"Content-Type"},
	})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, err error) {
	writeJSON(w, status, map[string]string{"error": err.Error()})
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	body := map[string]any{
		"status": "ok",
		"time":   time.Now().Unix(),
	}
	if s.stats != nil {
		body["stats"] = s.stats()
	}
	writeJSON(w, http.StatusOK, body)
}

func (s *Server) handleFormations(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{
		"formations": formation.Names(),
		"categories": formation.Categories,
	})
}

type formationResponse struct {
	Name    formation.Name    `json:"name"`
	Team    formation.Team    `json:"team"`
	Slots   []formation.Slot  `json:"slots"`
	Counter formation.Name    `json:"counter,omitempty"`
	Insight formation.Insight `json:"insight"`
}

func (s *Server) handleFormation(w http.ResponseWriter, r *http.Request) {
	name := formation.Name(mux.Vars(r)["name"])
	team := formation.Home
	if q := r.URL.Query().Get("team"); q != "" {
		team = formation.Team(q)
	}
	if !team.Valid() {
		writeError(w, http.StatusBadRequest, board.ErrUnknownTeam)
		return
	}
	slots, err := formation.Slots(name, team)
	if err != nil {
		writeError(w, http.StatusNotFound, err)
		return
	}
	counter, _ := formation.Counter(name)
	writeJSON(w, http.StatusOK, formationResponse{
		Name:    name,
		Team:    team,
		Slots:   slots,
		Counter: counter,
		Insight: formation.InsightFor(name),
	})
}

func (s *Server) handleClubs(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{"leagues": formation.Leagues})
}

func (s *Server) handleListTactics(w http.ResponseWriter, r *http.Request) {
	list, err := s.tactics.List(r.Context())
	if err != nil {
		s.log.Error().Err(err).Msg("list tactics")
		writeError(w, http.StatusInternalServerError, err)
		return
	}
	if list == nil {
		list = []store.Summary{}
	}
	writeJSON(w, http.StatusOK, map[string]any{"tactics": list})
}

func (s *Server) handleSaveTactic(w http.ResponseWriter, r *http.Request) {
	var t board.Tactic
	if err := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBody)).Decode(&t); err != nil {
		status := http.StatusBadRequest
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			status = http.StatusRequestEntityTooLarge
		}
		writeError(w, status, err)
		return
	}
	author := strings.TrimSpace(r.URL.Query().Get("author"))
	saved, err := s.tactics.Save(r.Context(), author, t)
	switch {
	case errors.Is(err, store.ErrNoName):
		writeError(w, http.StatusBadRequest, err)
		return
	case err != nil:
		s.log.Error().Err(err).Str("tactic", t.Name).Msg("save tactic")
		writeError(w, http.StatusInternalServerError, err)
		return
	}
	s.log.Info().Str("id", saved.ID).Str("name", saved.Name).Str("author", author).Msg("tactic saved")
	writeJSON(w, http.StatusCreated, saved)
}

func (s *Server) handleGetTactic(w http.ResponseWriter, r *http.Request) {
	t, err := s.tactics.Get(r.Context(), mux.Vars(r)["id"])
	if err != nil {
		s.writeStoreError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, t)
}

func (s *Server) handleDeleteTactic(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]
	if err := s.tactics.Delete(r.Context(), id); err != nil {
		s.writeStoreError(w, err)
		return
	}
	s.log.Info().Str("id", id).Msg("tactic deleted")
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) writeStoreError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, store.ErrNotFound):
		writeError(w, http.StatusNotFound, err)
	case errors.Is(err, annotation.ErrUnknownKind):
		writeError(w, http.StatusUnprocessableEntity, err)
	default:
		s.log.Error().Err(err).Msg("tactic store")
		writeError(w, http.StatusInternalServerError, err)
	}
}
