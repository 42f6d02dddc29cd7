package main

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"watchdog_gateway/config"
	"watchdog_gateway/handlers"
	"watchdog_gateway/logging"
	"watchdog_gateway/metrics"
	"watchdog_gateway/services"

	"github.com/gin-gonic/gin"
)

func main() {
	cfg, err := config.Load(os.Args[1:])
	if err != nil {
		if config.IsHelp(err) {
			fmt.Println(err)
			return
		}
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	log := logging.New(cfg.Logging.LoggerConfig())
	defer log.AtExit()
	if cfg.Logging.Environment != "dev" {
		gin.SetMode(gin.ReleaseMode)
	}

	gw, err := services.DialGateway(cfg.Gateway)
	if err != nil {
		log.Fatal("Failed to connect to the gateway", logging.Error(err))
	}
	defer gw.Close()

	router := handlers.NewRouter(log.Named("http"), gw, metrics.NewCollector("http"))
	srv := &http.Server{
		Addr:              net.JoinHostPort(cfg.HTTP.IP, strconv.Itoa(cfg.HTTP.Port)),
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			log.Warn("Could not shut down cleanly", logging.Error(err))
		}
	}()

	log.Info("Starting HTTP server", logging.String("address", srv.Addr), logging.String("gateway", cfg.Gateway.Address))
	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		log.Fatal("HTTP server stopped", logging.Error(err))
	}
}
