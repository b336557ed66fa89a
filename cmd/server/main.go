package main

import (
	"context"
	"log"
	"math/rand"
	"net/http"
	"time"

	"go.uber.org/zap"

	"github.com/MoayadAlismail/batata-hara/internal/config"
	"github.com/MoayadAlismail/batata-hara/internal/httpapi"
	"github.com/MoayadAlismail/batata-hara/internal/observability"
	"github.com/MoayadAlismail/batata-hara/internal/registry"
	"github.com/MoayadAlismail/batata-hara/internal/room"
	"github.com/MoayadAlismail/batata-hara/internal/words"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("loading config: %v", err)
	}

	logger, err := observability.NewLogger(cfg.Logging)
	if err != nil {
		log.Fatalf("building logger: %v", err)
	}
	defer logger.Sync()

	lexicon := words.NewArabicLexicon()
	logger.Info("lexicon loaded", zap.Int("words", lexicon.Len()))

	reg := registry.New(context.Background(), registry.Options{
		Settings: room.Settings{
			MaxPlayers:          cfg.Game.MaxPlayers,
			InitialLives:        cfg.Game.InitialLives,
			InitialTimerSeconds: cfg.Game.InitialTimerSeconds,
			TickInterval:        cfg.Game.TickInterval,
		},
		Generator: words.NewGenerator(rand.New(rand.NewSource(time.Now().UnixNano()))),
		Lexicon:   lexicon,
		Rules:     words.Rules{MinWordLength: cfg.Game.MinWordLength},
		Logger:    logger,
	})
	defer reg.Shutdown()

	handler := httpapi.SetupRoutes(reg, logger)

	logger.Info("listening", zap.String("addr", cfg.Server.Addr))
	if err := http.ListenAndServe(cfg.Server.Addr, handler); err != nil {
		logger.Fatal("server stopped", zap.Error(err))
	}
}
