package main

import (
	"context"
	"fmt"
	"net"
	"os"
	"os/signal"
	"strconv"
	"syscall"

	"watchdog_gateway/config"
	"watchdog_gateway/logging"
	"watchdog_gateway/metrics"
	"watchdog_gateway/services"

	"golang.org/x/sync/errgroup"

	// exchange time zones on hosts without zoneinfo
	_ "time/tzdata"
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

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	collector := metrics.NewCollector("grpc")
	server := services.NewGRPCServer(
		log,
		cfg.GRPC,
		services.NewSentimentService(log, services.NewVaderScorer()),
		services.NewQuoteService(log, services.NewYahooMarketData(log), cfg.GRPC.ProviderTimeout.Get()),
		collector,
	)

	eg, ctx := errgroup.WithContext(ctx)
	if cfg.Metrics.Port > 0 {
		addr := net.JoinHostPort(cfg.Metrics.IP, strconv.Itoa(cfg.Metrics.Port))
		eg.Go(func() error { return metrics.Serve(ctx, addr, collector, log) })
	}
	eg.Go(func() error { return server.Start(ctx, nil) })

	if err := eg.Wait(); err != nil {
		log.Fatal("gRPC server stopped", logging.Error(err))
	}
	log.Info("Shut down")
}
