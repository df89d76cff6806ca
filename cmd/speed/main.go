// Command speed runs the Speed game service or headless simulations.
//
//	speed serve            HTTP + websocket on SPEED_ADDR
//	speed simulate [n]     play n games with a scripted player (default 100)
package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"github.com/jason-s-yu/speed/internal/config"
	"github.com/jason-s-yu/speed/internal/server"
	"github.com/sirupsen/logrus"
)

func main() {
	cfg := config.Load()
	logrus.SetLevel(cfg.LogLevel)
	logrus.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})

	mode := "serve"
	if len(os.Args) > 1 {
		mode = os.Args[1]
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	switch mode {
	case "serve":
		if err := serve(ctx, cfg); err != nil {
			logrus.WithError(err).Fatal("server stopped")
		}
	case "simulate":
		games := 100
		if len(os.Args) > 2 {
			n, err := strconv.Atoi(os.Args[2])
			if err != nil || n <= 0 {
				logrus.Fatalf("simulate: bad game count %q", os.Args[2])
			}
			games = n
		}
		res := simulate(ctx, cfg.Game, games)
		res.log()
	default:
		logrus.Fatalf("unknown mode %q (want serve or simulate)", mode)
	}
}

func serve(ctx context.Context, cfg config.Config) error {
	srv := &http.Server{
		Addr:              cfg.Addr,
		Handler:           server.New(cfg.Game),
		ReadHeaderTimeout: 15 * time.Second,
	}
	go func() {
		<-ctx.Done()
		shutdown, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = srv.Shutdown(shutdown)
	}()

	logrus.WithFields(logrus.Fields{
		"addr":       cfg.Addr,
		"difficulty": cfg.Game.Difficulty.String(),
	}).Info("listening")
	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}
