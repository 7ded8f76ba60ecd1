package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"

	"go.uber.org/zap"

	"github.com/katalvlaran/socialnet/cli"
	"github.com/katalvlaran/socialnet/config"
	"github.com/katalvlaran/socialnet/metrics"
	"github.com/katalvlaran/socialnet/network"
	"github.com/katalvlaran/socialnet/news"
)

const metricsNamespace = "socialnet"

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := run(ctx, os.Stdin, os.Stdout, os.Args[1:]); err != nil {
		var exitErr *cli.ExitError
		if errors.As(err, &exitErr) {
			fmt.Fprintln(os.Stderr, exitErr.Message)
			stop()
			os.Exit(exitErr.Code)
		}
		fmt.Fprintln(os.Stderr, err)
		stop()
		os.Exit(1)
	}
}

// run wires configuration, logging, metrics, the engine and the news
// ingester into a shell reading commands from in.
func run(ctx context.Context, in io.Reader, outW io.Writer, args []string) error {
	flags, shouldExit, err := cli.Parse(args, outW)
	if err != nil {
		return err
	}
	if shouldExit {
		return nil
	}

	path := flags.ConfigPath
	if path == "" {
		path = config.Path()
	}
	cfg, err := config.Load(path)
	if err != nil {
		return &cli.ExitError{Code: 1, Message: err.Error()}
	}
	if flags.LogLevel != "" {
		cfg.LogLevel = flags.LogLevel
	}

	log, err := cfg.NewLogger()
	if err != nil {
		return &cli.ExitError{Code: 1, Message: err.Error()}
	}
	defer func() { _ = log.Sync() }()
	log.Debug("config loaded", zap.String("path", path), zap.String("news_base_url", cfg.News.BaseURL))

	m := metrics.NewCollector(metricsNamespace)
	net := network.New(
		network.WithLogger(log.Named("network")),
		network.WithMetrics(m),
	)

	nc := cfg.News
	client := news.NewClient(
		news.WithBaseURL(nc.BaseURL),
		news.WithAPIKey(nc.APIKey),
		news.WithLanguage(nc.Language),
		news.WithNumber(nc.Number),
		news.WithTimeout(nc.Timeout),
		news.WithBreaker(news.BreakerSettings{
			MaxRequests:      nc.Breaker.MaxRequests,
			Interval:         nc.Breaker.Interval,
			Timeout:          nc.Breaker.Timeout,
			FailureThreshold: nc.Breaker.FailureThreshold,
			MinRequests:      nc.Breaker.MinRequests,
		}),
		news.WithLogger(log.Named("news")),
	)

	shell := cli.NewShell(net, outW,
		cli.WithNews(news.NewIngester(client, net, m, log.Named("news"))),
		cli.WithMetrics(m),
		cli.WithLogger(log.Named("cli")),
		cli.WithLimits(cfg.ActivityLimit, cfg.FeedLimit),
		cli.WithQuiet(flags.Quiet),
	)

	return shell.Run(ctx, in)
}
