package main

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gorilla/mux"
	"github.com/rs/zerolog"

	"github.com/vladimirvolkov/tactics/internal/api"
	"github.com/vladimirvolkov/tactics/internal/config"
	"github.com/vladimirvolkov/tactics/internal/logging"
	"github.com/vladimirvolkov/tactics/internal/middleware"
	"github.com/vladimirvolkov/tactics/internal/room"
	"github.com/vladimirvolkov/tactics/internal/store"
	"github.com/vladimirvolkov/tactics/internal/ws"
)

// securityHeaders wraps a handler with common security response headers.
func securityHeaders(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("X-Content-Type-Options", "nosniff")
		w.Header().Set("X-Frame-Options", "DENY")
		w.Header().Set("Referrer-Policy", "no-referrer")
		w.Header().Set("Content-Security-Policy",
			"default-src 'self'; script-src 'self'; style-src 'self' 'unsafe-inline'; connect-src 'self' ws: wss:; img-src 'self' data:")
		next.ServeHTTP(w, r)
	})
}

// noCache stops browsers holding on to stale client bundles.
func noCache(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Cache-Control", "no-cache, no-store, must-revalidate")
		w.Header().Set("Pragma", "no-cache")
		w.Header().Set("Expires", "0")
		next.ServeHTTP(w, r)
	})
}

// RoomManager starts a room for every coach the hub accepts.
type RoomManager struct {
	hub       *ws.Hub
	ctx       context.Context
	frameRate int
	tactics   room.Tactics
	log       zerolog.Logger
}

func (m *RoomManager) CreateRoom(c *ws.Conn) error {
	r, err := room.New(c, room.Options{
		ID:        c.ID,
		Coach:     c.Coach,
		FrameRate: m.frameRate,
		Tactics:   m.tactics,
		Log:       m.log,
	})
	if err != nil {
		return err
	}
	r.Start(m.ctx)
	go func() {
		<-r.Done()
		m.hub.RoomEnded()
	}()
	return nil
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	dir := os.Getenv("TACTICS_CONFIG_DIR")
	if dir == "" {
		dir = "."
	}
	err := run(ctx, dir)
	stop()
	if err != nil {
		boot := logging.New("info", os.Stdout)
		boot.Fatal().Err(err).Msg("server failed")
	}
}

// run serves until ctx is cancelled. Every resource it opens is closed
// before it returns.
func run(ctx context.Context, dir string) error {
	cfg, err := config.Load(dir)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	// Write logs to stdout so hosting platforms don't mark them as errors
	var extra []io.Writer
	if cfg.LogFile != "" {
		f, err := os.OpenFile(cfg.LogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return fmt.Errorf("open log file: %w", err)
		}
		defer f.Close()
		extra = append(extra, f)
	}
	log := logging.New(cfg.LogLevel, os.Stdout, extra...)

	tactics, err := store.Open(cfg.DB.Path, log.With().Str("component", "store").Logger())
	if err != nil {
		return fmt.Errorf("open tactic store: %w", err)
	}
	defer tactics.Close()

	limiter := middleware.NewIPRateLimiter(cfg.Limits.ConnsPerIP, cfg.Limits.MsgsPerSecond)
	defer limiter.Close()

	manager := &RoomManager{
		ctx:       ctx,
		frameRate: cfg.FrameRate,
		tactics:   tactics,
		log:       log.With().Str("component", "room").Logger(),
	}
	hub := ws.NewHub(manager, ws.Options{
		Limiter:        limiter,
		OriginPatterns: cfg.AllowedOrigins,
		MaxRooms:       cfg.Limits.MaxRooms,
		Log:            log.With().Str("component", "ws").Logger(),
	})
	manager.hub = hub

	router := mux.NewRouter()
	api.New(tactics, log.With().Str("component", "api").Logger(), func() any { return hub.Stats() }).Routes(router)
	router.HandleFunc("/ws", hub.HandleWS)
	router.PathPrefix("/").Handler(noCache(http.FileServer(http.Dir(cfg.StaticDir))))

	server := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           api.CORS(cfg.AllowedOrigins).Handler(securityHeaders(router)),
		ReadHeaderTimeout: 5 * time.Second,
		IdleTimeout:       120 * time.Second,
		MaxHeaderBytes:    1 << 16, // 64KB
	}

	log.Info().Str("port", cfg.Port).Str("static", cfg.StaticDir).Str("db", cfg.DB.Path).Msg("tactics server starting")
	serveErr := make(chan error, 1)
	go func() { serveErr <- server.ListenAndServe() }()

	select {
	case err := <-serveErr:
		return fmt.Errorf("server error: %w", err)
	case <-ctx.Done():
	}

	// Graceful shutdown
	log.Info().Msg("shutting down...")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	// Hijacked websocket connections are not tracked by Shutdown; the
	// rooms stop on ctx and close them.
	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Warn().Err(err).Msg("shutdown")
		server.Close()
	}
	log.Info().Msg("server stopped")
	return nil
}
