package main

import (
	"context"
	"errors"
	"flag"
	"os"
	"os/signal"
	"syscall"

	"github.com/sirupsen/logrus"
	"github.com/snowzach/rotatefilehook"
	"golang.org/x/sync/errgroup"

	"github.com/vancomm/mines-lite/internal/config"
	"github.com/vancomm/mines-lite/internal/mines"
)

var (
	log = logrus.New()

	configPath string
	storeURL   string
	seed       uint64
	cfg        *config.Config
)

func init() {
	const (
		usage     = "config file path"
		storeHelp = "high score store url (memory:, sqlite://..., postgres://...)"
	)
	flag.StringVar(&configPath, "config", "", usage)
	flag.StringVar(&configPath, "c", "", usage+" (shorthand)")
	flag.StringVar(&storeURL, "store", "", storeHelp)
	flag.Uint64Var(&seed, "seed", 0, "bomb placement seed (0 picks a random one)")
}

func setupLogging() {
	log.SetLevel(cfg.LogLevel())
	log.SetFormatter(&logrus.TextFormatter{ForceColors: cfg.Development()})
	mines.Log = log

	if cfg.Log.File == "" {
		return
	}
	hook, err := rotatefilehook.NewRotateFileHook(rotatefilehook.RotateFileConfig{
		Filename:   cfg.Log.File,
		MaxSize:    cfg.Log.MaxSizeMB,
		MaxBackups: cfg.Log.MaxBackups,
		MaxAge:     cfg.Log.MaxAgeDays,
		Level:      cfg.LogLevel(),
		Formatter:  &logrus.JSONFormatter{},
	})
	if err != nil {
		log.Fatal("unable to set up log file: ", err)
	}
	log.AddHook(hook)
}

func newRand() mines.Rand {
	if seed != 0 {
		return mines.NewSeededRand(seed)
	}
	if cfg.Seed != nil {
		return mines.NewSeededRand(*cfg.Seed)
	}
	return mines.NewRand()
}

func main() {
	mainCtx, stop := signal.NotifyContext(
		context.Background(),
		os.Interrupt, syscall.SIGTERM,
	)
	defer stop()

	flag.Parse()

	var err error
	if cfg, err = config.Read(configPath); err != nil {
		log.Fatal(err)
	}
	if storeURL != "" {
		cfg.Store = storeURL
	}

	setupLogging()

	log.Info("starting up, mode = ", cfg.Mode)
	log.WithFields(cfg.Fields()).Debug("config")

	rules, err := cfg.GameRules()
	if err != nil {
		log.Fatal("invalid rules: ", err)
	}

	scores, closeScores, err := openHighScores(mainCtx, cfg.Store)
	if err != nil {
		log.Fatal("unable to open high score store: ", err)
	}
	defer closeScores()

	session, err := mines.NewSession(mainCtx, scores, newRand(), *rules)
	if err != nil {
		log.Fatal("unable to start session: ", err)
	}

	g, gCtx := errgroup.WithContext(mainCtx)
	g.Go(func() error {
		return play(gCtx, session, os.Stdin, os.Stdout)
	})
	g.Go(func() error {
		<-gCtx.Done()
		log.Debug("shutting down")
		return nil
	})

	if err := g.Wait(); err != nil && !errors.Is(err, errQuit) {
		log.Printf("exit reason: %s\n", err)
	}
}
