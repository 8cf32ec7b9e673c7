package api

import (
	"encoding/json"
	"net/http"
	"sync"
	"time"

	"github.com/go-chi/chi/v5"
	log "github.com/sirupsen/logrus"
)

// Move timeouts arrive per game; when absent we assume the standard 500ms.
// A slice of the budget is reserved for response encoding and the network.
const (
	defaultTimeout  = 500 * time.Millisecond
	responseReserve = 100 * time.Millisecond
	minimumBudget   = 50 * time.Millisecond
)

// Info describes a snake to the arena.
type Info struct {
	Author  string
	Color   string
	Head    string
	Tail    string
	Version string
}

// Router serves one strategy under the standard Battlesnake endpoints,
// creating a fresh Snek per game.
func Router(info Info, newSnek func() Snek) http.Handler {
	r := chi.NewRouter()
	h := &handler{info: info, newSnek: newSnek, gameSneks: map[string]Snek{}}
	r.Get("/", h.Info)
	r.Post("/start", h.Start)
	r.Post("/move", h.Move)
	r.Post("/end", h.End)
	return r
}

type handler struct {
	info    Info
	newSnek func() Snek

	mu        sync.RWMutex
	gameSneks map[string]Snek
}

func (h *handler) Info(w http.ResponseWriter, r *http.Request) {
	err := json.NewEncoder(w).Encode(&InfoResponse{
		APIVersion: "1",
		Author:     h.info.Author,
		Color:      h.info.Color,
		Head:       h.info.Head,
		Tail:       h.info.Tail,
		Version:    h.info.Version,
	})
	if err != nil {
		log.Errorf("failed to write info response: %v", err)
	}
}

func (h *handler) Start(w http.ResponseWriter, r *http.Request) {
	st, ok := decodeState(w, r)
	if !ok {
		return
	}

	gameSnek := h.newSnek()
	h.mu.Lock()
	h.gameSneks[st.Game.ID+st.Me.ID] = gameSnek
	h.mu.Unlock()

	if err := gameSnek.Start(st); err != nil {
		log.WithField("game", st.Game.ID).Errorf("snek cannot start game: %v", err)
		http.Error(w, "snek cannot start game", http.StatusBadRequest)
		return
	}

	log.WithField("game", st.Game.ID).Info("game started")
	w.WriteHeader(http.StatusOK)
}

func (h *handler) Move(w http.ResponseWriter, r *http.Request) {
	st, ok := decodeState(w, r)
	if !ok {
		return
	}

	h.mu.RLock()
	gameSnek, ok := h.gameSneks[st.Game.ID+st.Me.ID]
	h.mu.RUnlock()
	if !ok {
		http.Error(w, "game not started", http.StatusBadRequest)
		return
	}

	move, shout, err := gameSnek.Move(st)
	if err != nil {
		log.WithField("game", st.Game.ID).Errorf("snek cannot move: %v", err)
		http.Error(w, "snek cannot move", http.StatusBadRequest)
		return
	}

	log.WithFields(log.Fields{
		"game": st.Game.ID,
		"turn": st.Turn,
		"move": move,
	}).Debug("move chosen")

	err = json.NewEncoder(w).Encode(&MoveResponse{
		Move:  move,
		Shout: shout,
	})
	if err != nil {
		log.Errorf("failed to encode move response: %v", err)
	}
}

func (h *handler) End(w http.ResponseWriter, r *http.Request) {
	st, ok := decodeState(w, r)
	if !ok {
		return
	}

	h.mu.Lock()
	gameSnek, ok := h.gameSneks[st.Game.ID+st.Me.ID]
	delete(h.gameSneks, st.Game.ID+st.Me.ID)
	h.mu.Unlock()
	if !ok {
		http.Error(w, "game not started", http.StatusBadRequest)
		return
	}

	if err := gameSnek.End(st); err != nil {
		log.WithField("game", st.Game.ID).Errorf("snek cannot end game: %v", err)
		http.Error(w, "snek cannot end game", http.StatusBadRequest)
		return
	}

	log.WithField("game", st.Game.ID).Info("game ended")
	w.WriteHeader(http.StatusOK)
}

// decodeState reads a game request off the wire and stamps it with the
// move deadline. The clock starts as soon as the request is decoded.
func decodeState(w http.ResponseWriter, r *http.Request) (*State, bool) {
	var req GameRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Errorf("failed to decode request: %v", err)
		http.Error(w, "bad request", http.StatusBadRequest)
		return nil, false
	}

	budget := defaultTimeout
	if req.Game.Timeout > 0 {
		budget = time.Duration(req.Game.Timeout) * time.Millisecond
	}
	budget -= responseReserve
	if budget < minimumBudget {
		budget = minimumBudget
	}

	return &State{
		Game:     req.Game,
		Turn:     req.Turn,
		Board:    req.Board,
		Me:       req.You,
		Deadline: time.Now().Add(budget),
	}, true
}
