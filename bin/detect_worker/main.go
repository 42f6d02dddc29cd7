package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"watchdog_gateway/config"
	"watchdog_gateway/logging"
	"watchdog_gateway/services"

	"github.com/nats-io/nats.go"
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

	nc, err := services.ConnectToNATS(cfg.NATS.URL,
		nats.Name("watchdog-detect-worker"),
		nats.DisconnectErrHandler(func(_ *nats.Conn, err error) {
			log.Warn("Disconnected from NATS", logging.Error(err))
		}),
		nats.ReconnectHandler(func(nc *nats.Conn) {
			log.Info("Reconnected to NATS", logging.String("url", nc.ConnectedUrl()))
		}),
	)
	if err != nil {
		log.Fatal("Failed to connect to NATS", logging.Error(err))
	}
	defer nc.Close()

	gw, err := services.DialGateway(cfg.Gateway)
	if err != nil {
		log.Fatal("Failed to connect to the gateway", logging.Error(err))
	}
	defer gw.Close()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := services.NewDetectWorker(log, nc, gw, cfg.NATS).Run(ctx); err != nil {
		log.Fatal("Detect worker stopped", logging.Error(err))
	}
	log.Info("Shut down")
}
