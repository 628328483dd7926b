package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/magefree/mage-layers-go/internal/config"
	"github.com/magefree/mage-layers-go/internal/game"
	"github.com/magefree/mage-layers-go/internal/game/continuous"
	"github.com/magefree/mage-layers-go/internal/repository"
	"github.com/magefree/mage-layers-go/internal/server"
)

var (
	configPath = flag.String("config", "config/config.yaml", "path to configuration file")
	version    = "dev" // set via ldflags during build
)

func main() {
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load configuration: %v\n", err)
		os.Exit(1)
	}

	logger, err := initLogger(cfg.Logging)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	logger.Info("starting layers inspector",
		zap.String("version", version),
		zap.String("config", *configPath),
	)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)

	var cardRepo *repository.CardRepository
	if cfg.Database.URL != "" {
		db, err := repository.NewDB(ctx, cfg.Database, logger)
		if err != nil {
			logger.Fatal("failed to connect to database", zap.Error(err))
		}
		defer db.Close()
		cardRepo = repository.NewCardRepository(db)
		logger.Info("card repository initialized")
	} else {
		logger.Info("no database configured, using built-in demo cards")
	}

	state, manager := buildDemoGame(ctx, cardRepo, logger)
	pipeline := continuous.NewPipeline(logger)

	hub := server.NewHub(state, manager, pipeline, logger)
	go hub.Run()

	go func() {
		if wsErr := server.Start(cfg.Server.Address, hub, logger); wsErr != nil {
			logger.Error("websocket server error", zap.Error(wsErr))
		}
	}()

	logger.Info("layers inspector initialized",
		zap.String("version", version),
		zap.String("address", cfg.Server.Address),
	)

	sig := <-sigChan
	logger.Info("received shutdown signal", zap.String("signal", sig.String()))
	cancel()
	logger.Info("layers inspector stopped")
}

// buildDemoGame assembles a small battlefield that exercises every layer:
// an anthem, an ability stripper, a +1/+1 counter, and a land animation.
func buildDemoGame(
	ctx context.Context,
	cardRepo *repository.CardRepository,
	logger *zap.Logger,
) (*game.State, *continuous.Manager) {
	state := game.NewState()
	manager := continuous.NewManager(logger)

	bear := demoObject(ctx, cardRepo, "Grizzly Bears", "alice", func() *game.Object {
		return game.NewObject("Grizzly Bears", "alice", game.ZoneBattlefield).
			WithCardTypes(game.CardTypeCreature).
			WithSubtypes(game.SubtypeBear).
			WithPT(2, 2).
			WithColors(game.NewColorSet(game.ColorGreen)).
			WithManaCost("{1}{G}")
	})
	bear.Counters.Add("+1/+1", 1)
	state.AddObject(bear)
	manager.RecordBattlefieldEntry(bear.ID)

	angel := demoObject(ctx, cardRepo, "Serra Angel", "alice", func() *game.Object {
		return game.NewObject("Serra Angel", "alice", game.ZoneBattlefield).
			WithCardTypes(game.CardTypeCreature).
			WithPT(4, 4).
			WithColors(game.NewColorSet(game.ColorWhite)).
			WithAbilities(
				game.NewStaticAbility(game.Flying()),
				game.NewStaticAbility(game.StaticAbility{ID: game.StaticVigilance}),
			).
			WithManaCost("{3}{W}{W}")
	})
	state.AddObject(angel)
	manager.RecordBattlefieldEntry(angel.ID)

	forest := game.NewObject("Forest", "bob", game.ZoneBattlefield).
		WithCardTypes(game.CardTypeLand).
		WithSubtypes(game.SubtypeForest).
		WithSupertypes(game.SupertypeBasic).
		WithAbilities(game.NewManaAbility("{T}", "Add {G}."))
	state.AddObject(forest)
	manager.RecordBattlefieldEntry(forest.ID)

	anthem := game.NewObject("Glorious Anthem", "alice", game.ZoneBattlefield).
		WithCardTypes(game.CardTypeEnchantment).
		WithColors(game.NewColorSet(game.ColorWhite)).
		WithManaCost("{1}{W}{W}")
	state.AddObject(anthem)
	manager.RecordBattlefieldEntry(anthem.ID)
	manager.SetStaticAbilityEffects(anthem.ID, []*continuous.ContinuousEffect{
		continuous.NewAnthem(anthem.ID, "alice",
			continuous.CreatureFilter().ControlledBy(), 1, 1),
	})

	// A resolved "animate land" targeting Bob's forest, good until end of turn.
	animate := continuous.NewResolutionEffect("animate-spell", "bob",
		[]game.ObjectID{forest.ID},
		continuous.AddCardTypes{Types: []game.CardType{game.CardTypeCreature}},
		continuous.DurationEndOfTurn)
	manager.AddEffect(animate)
	animatePT := continuous.NewResolutionEffect("animate-spell", "bob",
		[]game.ObjectID{forest.ID},
		continuous.SetPowerToughness{
			Power:     continuous.Fixed{N: 3},
			Toughness: continuous.Fixed{N: 3},
			Sublayer:  continuous.SublayerSetting,
		},
		continuous.DurationEndOfTurn)
	manager.AddEffect(animatePT)

	return state, manager
}

// demoObject prefers the card database when available and falls back to the
// built-in definition.
func demoObject(
	ctx context.Context,
	cardRepo *repository.CardRepository,
	name string,
	controller game.PlayerID,
	fallback func() *game.Object,
) *game.Object {
	if cardRepo != nil {
		if def, err := cardRepo.GetByName(ctx, name); err == nil {
			return def.ToObject(controller, game.ZoneBattlefield)
		}
	}
	return fallback()
}

func initLogger(cfg config.LoggingConfig) (*zap.Logger, error) {
	var level zapcore.Level
	switch cfg.Level {
	case "debug":
		level = zapcore.DebugLevel
	case "info":
		level = zapcore.InfoLevel
	case "warn":
		level = zapcore.WarnLevel
	case "error":
		level = zapcore.ErrorLevel
	default:
		level = zapcore.InfoLevel
	}

	var zapCfg zap.Config
	if cfg.Format == "json" {
		zapCfg = zap.NewProductionConfig()
	} else {
		zapCfg = zap.NewDevelopmentConfig()
		zapCfg.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
	}

	zapCfg.Level = zap.NewAtomicLevelAt(level)

	return zapCfg.Build()
}
