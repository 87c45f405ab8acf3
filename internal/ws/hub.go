package ws

import (
	"context"
	"fmt"
	"net/http"
	"sync/atomic"
	"unicode/utf8"

	"github.com/coder/websocket"
	"github.com/rs/zerolog"

	"github.com/vladimirvolkov/tactics/internal/middleware"
)

// readLimit bounds incoming messages. Pointer events are tiny; a saved
// tactic never comes in over the socket.
const readLimit = 4096

const (
	minCoachLen  = 2
	maxCoachLen  = 24
	defaultCoach = "Coach"
)

// sanitizeCoach validates and cleans a coach name.
// Strips invalid chars, enforces length in runes, ensures valid UTF-8.
func sanitizeCoach(raw string) string {
	if !utf8.ValidString(raw) {
		return defaultCoach
	}
	// Strip characters not matching the allowed set
	cleaned := []rune{}
	for _, r := range raw {
		if (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z') ||
			(r >= '0' && r <= '9') || r == '_' || r == '-' || r == ' ' || r == '.' ||
			(r >= 0x00C0 && r <= 0x024F) || (r >= 0x0400 && r <= 0x04FF) {
			cleaned = append(cleaned, r)
		}
	}
	if len(cleaned) < minCoachLen {
		return defaultCoach
	}
	if len(cleaned) > maxCoachLen {
		cleaned = cleaned[:maxCoachLen]
	}
	return string(cleaned)
}

// RoomCreator starts a room for a freshly accepted connection. The room
// owns the connection from then on and must call Hub.RoomEnded when it
// stops.
type RoomCreator interface {
	CreateRoom(c *Conn) error
}

// HubStats holds live server metrics.
type HubStats struct {
	ActiveRooms      int64  `json:"activeRooms"`
	TotalConnections uint64 `json:"totalConnections"`
	OpenConnections  int64  `json:"openConnections"`
}

type Options struct {
	Limiter        *middleware.IPRateLimiter
	OriginPatterns []string
	MaxRooms       int
	Log            zerolog.Logger
}

type Hub struct {
	creator RoomCreator
	nextID  atomic.Uint64

	activeRooms      atomic.Int64
	totalConnections atomic.Uint64
	openConnections  atomic.Int64

	limiter        *middleware.IPRateLimiter
	originPatterns []string
	maxRooms       int
	log            zerolog.Logger
}

func NewHub(creator RoomCreator, opts Options) *Hub {
	return &Hub{
		creator:        creator,
		limiter:        opts.Limiter,
		originPatterns: opts.OriginPatterns,
		maxRooms:       opts.MaxRooms,
		log:            opts.Log,
	}
}

// Stats returns a snapshot of current server metrics.
func (h *Hub) Stats() HubStats {
	return HubStats{
		ActiveRooms:      h.activeRooms.Load(),
		TotalConnections: h.totalConnections.Load(),
		OpenConnections:  h.openConnections.Load(),
	}
}

// RoomEnded decrements the active room counter. Call when a room goroutine exits.
func (h *Hub) RoomEnded() {
	h.activeRooms.Add(-1)
}

func (h *Hub) HandleWS(w http.ResponseWriter, r *http.Request) {
	// Rate limit: check per-IP connection limit
	ip := middleware.RealIP(r)
	if h.limiter != nil && !h.limiter.ConnectAllowed(ip) {
		http.Error(w, "too many connections", http.StatusTooManyRequests)
		return
	}

	acceptOpts := &websocket.AcceptOptions{}
	if len(h.originPatterns) > 0 {
		acceptOpts.OriginPatterns = h.originPatterns
	}

	ws, err := websocket.Accept(w, r, acceptOpts)
	if err != nil {
		if h.limiter != nil {
			h.limiter.Disconnect(ip)
		}
		h.log.Warn().Err(err).Str("ip", ip).Msg("ws accept error")
		return
	}
	ws.SetReadLimit(readLimit)

	h.totalConnections.Add(1)
	h.openConnections.Add(1)
	id := fmt.Sprintf("coach-%d", h.nextID.Add(1))
	conn := NewConn(ws, id, ip, h.limiter, h.log)
	conn.Coach = sanitizeCoach(r.URL.Query().Get("name"))
	h.log.Info().Str("conn", id).Str("coach", conn.Coach).Str("ip", ip).
		Uint64("total", h.totalConnections.Load()).Msg("new connection")

	// Use background context so connection lives beyond HTTP handler
	go conn.WriteLoop(context.Background())

	// Decrement rate limiter on disconnect
	go func() {
		<-conn.Done()
		h.openConnections.Add(-1)
		if h.limiter != nil {
			h.limiter.Disconnect(ip)
		}
	}()

	h.open(conn)

	// Block until the connection is closed, which keeps the HTTP handler
	// and the underlying TCP connection alive.
	<-conn.Done()
	h.log.Info().Str("conn", id).Msg("connection closed")
}

// open gives conn its own room, unless the server is full.
func (h *Hub) open(conn *Conn) {
	if h.maxRooms > 0 && h.activeRooms.Load() >= int64(h.maxRooms) {
		h.log.Warn().Str("conn", conn.ID).Int("maxRooms", h.maxRooms).Msg("max rooms reached, rejecting")
		go conn.closeWith(websocket.StatusTryAgainLater, "server full")
		return
	}

	h.activeRooms.Add(1)
	if err := h.creator.CreateRoom(conn); err != nil {
		h.activeRooms.Add(-1)
		h.log.Error().Err(err).Str("conn", conn.ID).Msg("create room")
		go conn.closeWith(websocket.StatusInternalError, "room unavailable")
		return
	}
	h.log.Debug().Str("conn", conn.ID).Int64("rooms", h.activeRooms.Load()).Msg("room opened")
}
