package main

import (
	"context"
	"flag"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/notjagan/pogodex/pkg/chooser"
	"github.com/notjagan/pogodex/pkg/config"
	"gopkg.in/natefinch/lumberjack.v2"
)

func main() {
	configPath := flag.String("config", config.DefaultPath, "path to the TOML config file")
	id := flag.Int("id", 0, "show this dex number instead of a random pick")
	flag.Parse()

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	cfg, err := config.Read(*configPath)
	if err != nil {
		log.Fatal(err)
	}

	if cfg.Log.Path != "" {
		logger := &lumberjack.Logger{
			Filename:   cfg.Log.Path,
			MaxSize:    cfg.Log.MaxSizeMB,
			MaxBackups: cfg.Log.MaxBackups,
		}
		defer logger.Close()
		log.SetOutput(logger)
	}

	c, err := chooser.New(ctx, *cfg)
	if err != nil {
		log.Fatal(err)
	}
	defer c.Close()

	if *id == 0 {
		err = c.Run(ctx, os.Stdout)
	} else {
		err = c.RunID(ctx, os.Stdout, *id)
	}
	if err != nil {
		log.Fatal(err)
	}
}
