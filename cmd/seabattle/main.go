package main

import (
	"context"
	"flag"
	"math/rand"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/google/uuid"
	"github.com/kiryu-dev/sea-battle/internal/adapters/journal"
	"github.com/kiryu-dev/sea-battle/internal/config"
	"github.com/kiryu-dev/sea-battle/internal/domain"
	"github.com/kiryu-dev/sea-battle/internal/transport/console"
	"github.com/kiryu-dev/sea-battle/internal/usecase/agent"
	"github.com/kiryu-dev/sea-battle/internal/usecase/match"
	"github.com/kiryu-dev/sea-battle/internal/usecase/placement"
	"github.com/pkg/errors"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

func main() {
	cfgPath := flag.String("config", "", "path to config")
	replayPath := flag.String("replay", "", "print a recorded match journal and exit")
	flag.Parse()
	cfg, err := config.New(*cfgPath)
	if err != nil {
		panic(err)
	}
	logger, err := newLogger(cfg.Log)
	if err != nil {
		panic(err)
	}
	defer func() {
		_ = logger.Sync()
	}()
	tty := console.New(os.Stdin, os.Stdout)
	if *replayPath != "" {
		if err := replay(*replayPath, tty); err != nil {
			logger.Error("failed to replay journal", zap.Error(err))
		}
		return
	}
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	sigChan := make(chan os.Signal, 2)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	errGroup := new(errgroup.Group)
	errGroup.Go(func() error {
		select {
		case s := <-sigChan:
			cancel()
			return errors.Errorf("captured signal: %v", s)
		case <-ctx.Done():
			return nil
		}
	})
	seed := cfg.Game.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	rnd := rand.New(rand.NewSource(seed))
	matchID := uuid.NewString()
	boards := placement.New(cfg.Board.Size, cfg.Board.Fleet, cfg.Placement.MaxAttempts, cfg.Placement.MaxBoards,
		rnd, logger)
	humanBoard, err := boards.RandomBoard(ctx, false)
	if err != nil {
		logger.Error("failed to generate human board", zap.Error(err))
		return
	}
	computerBoard, err := boards.RandomBoard(ctx, cfg.HideComputerBoard())
	if err != nil {
		logger.Error("failed to generate computer board", zap.Error(err))
		return
	}
	shots, closeJournal, err := openJournal(cfg.Journal.Path)
	if err != nil {
		logger.Error("failed to open journal", zap.Error(err))
		return
	}
	defer closeJournal()
	var (
		human    = domain.NewPlayer(agent.NewHuman(tty), humanBoard, computerBoard, tty)
		computer = domain.NewPlayer(agent.NewAutomated(humanBoard, rnd, tty), computerBoard, humanBoard, tty)
		game     = match.New(matchID, human, computer, tty, shots, logger)
	)
	logger.Info("match started", zap.String("match_id", matchID), zap.Int64("seed", seed))
	go func() {
		defer cancel()
		result, err := game.Play(ctx)
		if err != nil {
			logger.Warn("match aborted", zap.Error(err))
			return
		}
		logger.Info("match result", zap.Stringer("winner", result.Winner), zap.Int64("turns", result.Turns))
	}()
	if err := errGroup.Wait(); err != nil {
		logger.Info("interrupting the match: "+err.Error(), zap.Int64("turn", game.Turn()))
	}
}

func newLogger(cfg config.LogConfig) (*zap.Logger, error) {
	level, err := zap.ParseAtomicLevel(cfg.Level)
	if err != nil {
		return nil, errors.WithMessage(err, "parse log level")
	}
	zapCfg := zap.NewProductionConfig()
	zapCfg.Level = level
	zapCfg.OutputPaths = []string{cfg.Output}
	zapCfg.ErrorOutputPaths = []string{cfg.Output}
	return zapCfg.Build()
}

func openJournal(path string) (domain.Journal, func(), error) {
	if path == "" {
		return journal.Nop(), func() {}, nil
	}
	file, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		return nil, nil, errors.WithMessagef(err, "open journal '%s'", path)
	}
	return journal.New(file), func() {
		_ = file.Close()
	}, nil
}

type replayer interface {
	ShowJournal(events []domain.ShotEvent)
}

func replay(path string, out replayer) error {
	file, err := os.Open(path)
	if err != nil {
		return errors.WithMessagef(err, "open journal '%s'", path)
	}
	defer func() {
		_ = file.Close()
	}()
	events, err := journal.ReadAll(file)
	if err != nil {
		return errors.WithMessage(err, "read journal")
	}
	out.ShowJournal(events)
	return nil
}
