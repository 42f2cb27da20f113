// Command boxpackerd serves the packing engine over HTTP, wiring
// internal/config's environment-driven settings into internal/httpapi's
// echo-based routes.
package main

import (
	"fmt"
	"net/http"

	"github.com/sirupsen/logrus"

	"github.com/91xusir/boxpacker3d/internal/config"
	"github.com/91xusir/boxpacker3d/internal/httpapi"
)

func main() {
	log := logrus.New()
	log.SetFormatter(&logrus.JSONFormatter{})

	cfg := config.FromEnv(log)

	server := httpapi.NewServer(cfg.Optimizer, log)

	addr := fmt.Sprintf("%s:%d", cfg.API.Host, cfg.API.Port)
	log.WithField("addr", addr).Info("boxpackerd listening")

	if err := server.Echo.Start(addr); err != nil && err != http.ErrServerClosed {
		log.WithError(err).Fatal("boxpackerd exited")
	}
}
