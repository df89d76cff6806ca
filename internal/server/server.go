// Package server binds one UI client per websocket to its own SpeedGame.
package server

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/coder/websocket"
	"github.com/coder/websocket/wsjson"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/google/uuid"
	"github.com/jason-s-yu/speed/engine"
	"github.com/jason-s-yu/speed/internal/game"
	"github.com/sirupsen/logrus"
)

// eventBuffer is how many events may queue for a slow client before new
// ones are dropped.
const eventBuffer = 256

// Server serves the health check and the game websocket.
type Server struct {
	Settings game.Settings
	router   chi.Router
}

// New builds the router. Every websocket session starts from settings,
// optionally overridden by the ?difficulty= query parameter.
func New(settings game.Settings) *Server {
	s := &Server{Settings: settings}
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(requestLogger)
	r.Use(middleware.Recoverer)

	r.Get("/healthz", s.handleHealth)
	r.Get("/ws", s.handleWS)
	s.router = r
	return s
}

// ServeHTTP implements http.Handler.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{"ok": true})
}

func (s *Server) handleWS(w http.ResponseWriter, r *http.Request) {
	settings := s.Settings
	if v := r.URL.Query().Get("difficulty"); v != "" {
		d, err := engine.ParseDifficulty(v)
		if err != nil {
			writeJSON(w, http.StatusBadRequest, map[string]any{"error": err.Error()})
			return
		}
		settings.Difficulty = d
	}

	c, err := websocket.Accept(w, r, &websocket.AcceptOptions{InsecureSkipVerify: true})
	if err != nil {
		logrus.WithError(err).Warn("websocket accept failed")
		return
	}
	defer c.CloseNow()

	ctx, cancel := context.WithCancel(r.Context())
	defer cancel()

	g := game.NewSpeedGame(settings)
	log := logrus.WithFields(logrus.Fields{
		"game_id":    g.ID,
		"request_id": middleware.GetReqID(r.Context()),
	})

	out := make(chan game.GameEvent, eventBuffer)
	g.BroadcastFn = func(ev game.GameEvent) {
		select {
		case out <- ev:
		default:
			log.WithField("type", ev.Type).Warn("client too slow, event dropped")
		}
	}
	g.OnGameEnd = func(_ uuid.UUID, outcome engine.Outcome) {
		log.WithField("outcome", outcome.String()).Info("session finished")
	}

	go writeEvents(ctx, c, out, log)

	g.Start()
	go func() {
		if err := g.Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
			log.WithError(err).Warn("game loop stopped")
		}
	}()

	log.Info("client connected")
	for {
		var in game.Intent
		if err := wsjson.Read(ctx, c, &in); err != nil {
			if websocket.CloseStatus(err) == websocket.StatusNormalClosure || websocket.CloseStatus(err) == websocket.StatusGoingAway {
				log.Info("client disconnected")
			} else {
				log.WithError(err).Debug("read failed")
			}
			return
		}
		if err := g.HandleIntent(in); err != nil {
			log.WithError(err).WithField("intent", in.Type).Debug("intent refused")
		}
	}
}

// writeEvents forwards queued game events to the client until ctx ends.
func writeEvents(ctx context.Context, c *websocket.Conn, out <-chan game.GameEvent, log *logrus.Entry) {
	ping := time.NewTicker(15 * time.Second)
	defer ping.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case ev := <-out:
			wctx, cancel := context.WithTimeout(ctx, 5*time.Second)
			err := wsjson.Write(wctx, c, ev)
			cancel()
			if err != nil {
				log.WithError(err).Debug("write failed")
				return
			}
		case <-ping.C:
			_ = c.Ping(ctx)
		}
	}
}

// requestLogger logs each request through logrus.
func requestLogger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		next.ServeHTTP(ww, r)
		logrus.WithFields(logrus.Fields{
			"method":     r.Method,
			"path":       r.URL.Path,
			"status":     ww.Status(),
			"duration":   time.Since(start),
			"request_id": middleware.GetReqID(r.Context()),
		}).Debug("request")
	})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
