package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"go.uber.org/zap"

	"Folio3D/internal/config"
	"Folio3D/internal/contact"
	"Folio3D/internal/content"
	"Folio3D/internal/engine"
	"Folio3D/internal/logger"
)

func main() {
	if len(os.Args) > 1 && os.Args[1] == "contact" {
		os.Exit(runContact(os.Args[2:]))
	}
	os.Exit(run(os.Args[1:]))
}

func run(args []string) int {
	fs := flag.NewFlagSet("folio", flag.ContinueOnError)
	configPath := fs.String("config", "", "path to a TOML config file")
	logLevel := fs.String("log-level", "", "debug, info, warn or error (overrides [log] level)")
	contentPath := fs.String("content", "", "path to a TOML content file (overrides [content] path)")
	quality := fs.String("quality", "", "render quality preset (overrides [scene] quality)")
	watch := fs.Bool("watch", false, "reload the content file when it changes")
	if err := fs.Parse(args); err != nil {
		return 2
	}

	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 1
	}
	fs.Visit(func(fl *flag.Flag) {
		switch fl.Name {
		case "log-level":
			cfg.Log.Level = *logLevel
		case "content":
			cfg.Content.Path = *contentPath
		case "quality":
			cfg.Scene.Quality = *quality
		case "watch":
			cfg.Content.Watch = *watch
		}
	})
	if err := cfg.Validate(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 1
	}

	if err := logger.InitLevel(cfg.Log.Level); err != nil {
		fmt.Fprintln(os.Stderr, err)
	}
	defer logger.Sync()

	site, err := content.Load(cfg.Content.Path)
	if err != nil {
		logger.Log.Error("Could not load content", zap.String("path", cfg.Content.Path), zap.Error(err))
		return 1
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	folio := engine.NewFolio(cfg, site)
	if err := folio.Run(ctx); err != nil {
		logger.Log.Error("Folio3D stopped", zap.Error(err))
		return 1
	}
	logger.Log.Info("Folio3D closed")
	return 0
}

// runContact validates a contact form from flags and prints the local
// acknowledgement. Nothing is sent.
func runContact(args []string) int {
	fs := flag.NewFlagSet("folio contact", flag.ContinueOnError)
	var form contact.Form
	fs.StringVar(&form.Name, "name", "", "your name")
	fs.StringVar(&form.Email, "email", "", "your email address")
	fs.StringVar(&form.Subject, "subject", "", "subject")
	fs.StringVar(&form.Message, "message", "", "message")
	if err := fs.Parse(args); err != nil {
		return 2
	}

	logger.Init()
	defer logger.Sync()

	var submitter contact.Submitter = contact.LocalSubmitter{}
	ack, err := submitter.Submit(context.Background(), form)
	if errors.Is(err, contact.ErrInvalidField) {
		fmt.Fprintln(os.Stderr, err)
		return 2
	}
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 1
	}
	fmt.Println(ack.Message)
	return 0
}
