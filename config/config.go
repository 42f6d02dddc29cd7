package config

import (
	"errors"
	"fmt"
	"io/fs"
	"runtime"
	"time"

	"watchdog_gateway/logging"

	"github.com/BurntSushi/toml"
	"github.com/jessevdk/go-flags"
	"github.com/joho/godotenv"
)

// Config is the configuration shared by the gateway binaries. Each binary
// only reads the sections it needs.
type Config struct {
	ConfigFile string `long:"config" env:"WATCHDOG_CONFIG" description:"Path to a TOML configuration file" toml:"-"`

	Logging Logging `group:"Logging" namespace:"log" env-namespace:"LOG" toml:"logging"`
	GRPC    GRPC    `group:"gRPC server" namespace:"grpc" env-namespace:"GRPC" toml:"grpc"`
	Gateway Gateway `group:"Gateway client" namespace:"gateway" env-namespace:"GATEWAY" toml:"gateway"`
	HTTP    HTTP    `group:"HTTP" namespace:"http" env-namespace:"HTTP" toml:"http"`
	NATS    NATS    `group:"NATS" namespace:"nats" env-namespace:"NATS" toml:"nats"`
	Metrics Metrics `group:"Metrics" namespace:"metrics" env-namespace:"METRICS" toml:"metrics"`
}

type Logging struct {
	Environment string   `long:"env" env:"ENV" choice:"dev" choice:"prod" description:"Log encoding preset" toml:"environment"`
	Level       LogLevel `long:"level" env:"LEVEL" description:"Minimum log level" toml:"level"`
	File        string   `long:"file" env:"FILE" description:"Also write logs to this file, rotated by size" toml:"file"`
	MaxSizeMB   int      `long:"max-size-mb" env:"MAX_SIZE_MB" description:"Rotate the log file after this many megabytes" toml:"max_size_mb"`
	MaxBackups  int      `long:"max-backups" env:"MAX_BACKUPS" description:"Number of rotated log files to keep" toml:"max_backups"`
}

// GRPC configures the gateway server.
type GRPC struct {
	IP         string `long:"ip" env:"IP" description:"Bind to address <ip>" toml:"ip"`
	Port       int    `long:"port" env:"PORT" description:"Listen for connection on port <port>" toml:"port"`
	MaxWorkers int    `long:"max-workers" env:"MAX_WORKERS" description:"Maximum number of requests served concurrently (0 = min(32, cpus+4))" toml:"max_workers"`
	Reflection bool   `long:"reflection" env:"REFLECTION" description:"Register the gRPC reflection service" toml:"reflection"`

	ProviderTimeout Duration `long:"provider-timeout" env:"PROVIDER_TIMEOUT" description:"Upper bound on a market data lookup (0 = none)" toml:"provider_timeout"`

	TLS TLS `group:"TLS" namespace:"tls" env-namespace:"TLS" toml:"tls"`
}

type TLS struct {
	Enabled  bool   `long:"enabled" env:"ENABLED" description:"Serve over TLS" toml:"enabled"`
	CertFile string `long:"cert-file" env:"CERT_FILE" description:"PEM certificate" toml:"cert_file"`
	KeyFile  string `long:"key-file" env:"KEY_FILE" description:"PEM private key" toml:"key_file"`
}

// Gateway configures clients dialing the gRPC gateway.
type Gateway struct {
	Address string   `long:"address" env:"ADDRESS" description:"host:port of the gRPC gateway" toml:"address"`
	CAFile  string   `long:"ca-file" env:"CA_FILE" description:"Dial over TLS trusting this CA (empty = insecure)" toml:"ca_file"`
	Timeout Duration `long:"timeout" env:"TIMEOUT" description:"Per call timeout" toml:"timeout"`
}

type HTTP struct {
	IP   string `long:"ip" env:"IP" description:"Bind to address <ip>" toml:"ip"`
	Port int    `long:"port" env:"PORT" description:"Listen for connection on port <port>" toml:"port"`
}

type NATS struct {
	URL              string `long:"url" env:"URL" description:"NATS server URL" toml:"url"`
	SentimentSubject string `long:"sentiment-subject" env:"SENTIMENT_SUBJECT" toml:"sentiment_subject"`
	QuoteSubject     string `long:"quote-subject" env:"QUOTE_SUBJECT" toml:"quote_subject"`
	QueueGroup       string `long:"queue-group" env:"QUEUE_GROUP" toml:"queue_group"`
}

type Metrics struct {
	IP   string `long:"ip" env:"IP" description:"Bind the prometheus endpoint to address <ip>" toml:"ip"`
	Port int    `long:"port" env:"PORT" description:"Prometheus endpoint port (0 = disabled)" toml:"port"`
}

// NewDefaultConfig returns the configuration used when nothing is overridden.
func NewDefaultConfig() Config {
	return Config{
		Logging: Logging{
			Environment: "prod",
			Level:       LogLevel{Level: logging.InfoLevel},
			MaxSizeMB:   100,
			MaxBackups:  3,
		},
		GRPC: GRPC{
			IP:   "0.0.0.0",
			Port: 9999,
		},
		Gateway: Gateway{
			Address: "localhost:9999",
			Timeout: Duration{Duration: 30 * time.Second},
		},
		HTTP: HTTP{
			IP:   "0.0.0.0",
			Port: 8080,
		},
		NATS: NATS{
			URL:              "nats://127.0.0.1:4222",
			SentimentSubject: "watchdog.sentiment.detect",
			QuoteSubject:     "watchdog.quotes.detect",
			QueueGroup:       "watchdog",
		},
		Metrics: Metrics{
			IP:   "0.0.0.0",
			Port: 2112,
		},
	}
}

// Load builds the configuration from, in increasing order of precedence:
// defaults, the TOML file named by --config or WATCHDOG_CONFIG, the
// environment (including a .env file in the working directory) and args.
func Load(args []string) (Config, error) {
	cfg := NewDefaultConfig()

	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return cfg, fmt.Errorf("could not load .env file: %w", err)
	}

	path, err := configFilePath(args)
	if err != nil {
		return cfg, err
	}
	if path != "" {
		if _, err := toml.DecodeFile(path, &cfg); err != nil {
			return cfg, fmt.Errorf("could not read config file %s: %w", path, err)
		}
	}

	parser := flags.NewParser(&cfg, flags.HelpFlag|flags.PassDoubleDash)
	if _, err := parser.ParseArgs(args); err != nil {
		return cfg, err
	}
	cfg.ConfigFile = path

	return cfg, cfg.Validate()
}

// IsHelp reports whether err is the result of --help.
func IsHelp(err error) bool {
	var ferr *flags.Error
	return errors.As(err, &ferr) && ferr.Type == flags.ErrHelp
}

func configFilePath(args []string) (string, error) {
	var pre struct {
		ConfigFile string `long:"config" env:"WATCHDOG_CONFIG"`
	}
	parser := flags.NewParser(&pre, flags.IgnoreUnknown)
	if _, err := parser.ParseArgs(args); err != nil {
		return "", err
	}
	return pre.ConfigFile, nil
}

// Validate checks the values which cannot be caught by the flag parser.
func (c Config) Validate() error {
	if c.GRPC.Port < 0 || c.GRPC.Port > 65535 {
		return fmt.Errorf("invalid grpc port %d", c.GRPC.Port)
	}
	if c.HTTP.Port < 0 || c.HTTP.Port > 65535 {
		return fmt.Errorf("invalid http port %d", c.HTTP.Port)
	}
	if c.GRPC.MaxWorkers < 0 {
		return fmt.Errorf("max workers cannot be negative, got %d", c.GRPC.MaxWorkers)
	}
	if c.GRPC.TLS.Enabled && (c.GRPC.TLS.CertFile == "" || c.GRPC.TLS.KeyFile == "") {
		return errors.New("tls is enabled but the certificate or key file is missing")
	}
	return nil
}

// Workers returns the size of the request worker pool.
func (g GRPC) Workers() int {
	if g.MaxWorkers > 0 {
		return g.MaxWorkers
	}
	n := runtime.NumCPU() + 4
	if n > 32 {
		n = 32
	}
	return n
}

// LoggerConfig maps the logging section onto the logging package.
func (l Logging) LoggerConfig() logging.Config {
	return logging.Config{
		Environment: l.Environment,
		Level:       l.Level.Get(),
		File:        l.File,
		MaxSizeMB:   l.MaxSizeMB,
		MaxBackups:  l.MaxBackups,
	}
}
