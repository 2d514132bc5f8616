// keccaksum prints Keccak digests of files, strings or hex-encoded bytes.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/urfave/cli/v2"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

const (
	flagSize       = "size"
	flagString     = "string"
	flagHex        = "hex"
	flagEncoding   = "encoding"
	flagPrefix     = "prefix"
	flagJobs       = "jobs"
	flagReadBuffer = "read-buffer"
	flagConfig     = "config"
	flagVerbosity  = "verbosity"
	flagLogJSON    = "log.json"
)

func newApp() *cli.App {
	def := DefaultConfig()
	return &cli.App{
		Name:      "keccaksum",
		Usage:     "print Keccak digests (original Keccak padding, as used by Ethereum)",
		ArgsUsage: "[FILE|STRING|HEX ...]",
		Flags: []cli.Flag{
			&cli.IntFlag{Name: flagSize, Aliases: []string{"s"}, Value: def.Size, Usage: "digest size in bytes (28-99 or 200)"},
			&cli.BoolFlag{Name: flagString, Usage: "hash arguments as text"},
			&cli.BoolFlag{Name: flagHex, Usage: "hash arguments as hex-encoded bytes"},
			&cli.StringFlag{Name: flagEncoding, Value: def.Encoding, Usage: "text encoding used with --string"},
			&cli.BoolFlag{Name: flagPrefix, Usage: "print digests with a 0x prefix"},
			&cli.IntFlag{Name: flagJobs, Aliases: []string{"j"}, Value: def.Jobs, Usage: "number of inputs hashed concurrently"},
			&cli.StringFlag{Name: flagReadBuffer, Value: def.ReadBuffer.String(), Usage: "read buffer size for files, e.g. 64KB or 1MB"},
			&cli.StringFlag{Name: flagConfig, Usage: "TOML config file"},
			&cli.StringFlag{Name: flagVerbosity, Value: "info", Usage: "log level: debug, info, warn, error"},
			&cli.BoolFlag{Name: flagLogJSON, Usage: "log in JSON"},
		},
		Action: run,
	}
}

func configFromContext(c *cli.Context) (Config, error) {
	cfg := DefaultConfig()
	if path := c.String(flagConfig); path != "" {
		if err := LoadConfig(path, &cfg); err != nil {
			return cfg, err
		}
	}
	if c.IsSet(flagSize) {
		cfg.Size = c.Int(flagSize)
	}
	if c.IsSet(flagEncoding) {
		cfg.Encoding = c.String(flagEncoding)
	}
	if c.IsSet(flagPrefix) {
		cfg.Prefix = c.Bool(flagPrefix)
	}
	if c.IsSet(flagJobs) {
		cfg.Jobs = c.Int(flagJobs)
	}
	if c.IsSet(flagReadBuffer) {
		if err := cfg.ReadBuffer.UnmarshalText([]byte(c.String(flagReadBuffer))); err != nil {
			return cfg, fmt.Errorf("--%s: %w", flagReadBuffer, err)
		}
	}
	cfg.Text = c.Bool(flagString)
	cfg.Hex = c.Bool(flagHex)
	return cfg, cfg.Validate()
}

func newLogger(c *cli.Context) (*zap.Logger, error) {
	lvl, err := zapcore.ParseLevel(c.String(flagVerbosity))
	if err != nil {
		return nil, err
	}
	var enc zapcore.Encoder
	if c.Bool(flagLogJSON) {
		enc = zapcore.NewJSONEncoder(zap.NewProductionEncoderConfig())
	} else {
		enc = zapcore.NewConsoleEncoder(zap.NewDevelopmentEncoderConfig())
	}
	return zap.New(zapcore.NewCore(enc, zapcore.AddSync(c.App.ErrWriter), lvl)), nil
}

func run(c *cli.Context) error {
	logger, err := newLogger(c)
	if err != nil {
		return err
	}
	defer logger.Sync()

	cfg, err := configFromContext(c)
	if err != nil {
		logger.Error("invalid configuration", zap.Error(err))
		return err
	}

	args := c.Args().Slice()
	if len(args) == 0 && !cfg.Text && !cfg.Hex {
		args = []string{stdinName}
	}
	logger.Debug("hashing", zap.Int("inputs", len(args)), zap.Int("size", cfg.Size), zap.Int("jobs", cfg.Jobs))

	results, err := hashAll(c.Context, logger, cfg, args, c.App.Reader)
	if err != nil {
		logger.Error("hashing failed", zap.Error(err))
		return err
	}
	for _, r := range results {
		if _, err := fmt.Fprintln(c.App.Writer, r.format(cfg.Prefix)); err != nil {
			return err
		}
	}
	return nil
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := newApp().RunContext(ctx, os.Args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
