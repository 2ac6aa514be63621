package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/kolliparasurya/Interactive-Bezier-Curve/internal/config"
	"github.com/kolliparasurya/Interactive-Bezier-Curve/internal/server"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/afero"
)

func main() {
	cfg, err := config.Default()
	if err != nil {
		log.Errorf("Failed to configure server: %v", err)
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	root := afero.NewBasePathFs(afero.NewOsFs(), cfg.Root)
	srv := server.New(cfg, root)

	fmt.Printf("Serving on %s (With Secure Headers)\n", cfg.URL())
	if err := srv.ListenAndServe(ctx); err != nil {
		log.Errorf("Server failed: %v", err)
		os.Exit(1)
	}
}
