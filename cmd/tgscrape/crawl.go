package main

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/nao1215/tgscrape/internal/config"
	"github.com/nao1215/tgscrape/internal/crawler"
	tglog "github.com/nao1215/tgscrape/internal/log"
	"github.com/nao1215/tgscrape/internal/model"
	"github.com/nao1215/tgscrape/internal/report"
	"github.com/spf13/cobra"
)

// runCrawlCmd executes a crawl.
func runCrawlCmd(cmd *cobra.Command, _ []string) error {
	cfg, err := buildConfig(cmd)
	if err != nil {
		return err
	}

	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("configuration error: %w", err)
	}

	logger := tglog.NewLogger(cmd.ErrOrStderr(), cfg.Verbose)

	return runCrawl(context.Background(), cmd, cfg, logger)
}

// getVerboseFlag retrieves the verbose flag from the command or its parent.
func getVerboseFlag(cmd *cobra.Command) bool {
	verbose, err := cmd.Flags().GetBool("verbose")
	if err != nil {
		verbose, err = cmd.Root().PersistentFlags().GetBool("verbose")
		if err != nil {
			return false
		}
	}
	return verbose
}

// buildConfig creates a Config from defaults, the configuration file and
// cobra command flags, in that order of precedence.
func buildConfig(cmd *cobra.Command) (*config.Config, error) {
	cfg := config.NewConfig()

	var err error
	cfg.ConfigFilePath, err = cmd.Flags().GetString("config")
	if err != nil {
		return nil, err
	}

	// If the user explicitly specified a config file path, error if not found.
	// If no path was specified, silently keep the defaults.
	configPath := config.FindConfigFile(cfg.ConfigFilePath)
	if configPath != "" {
		file, err := config.LoadConfigFile(configPath)
		if err != nil {
			return nil, fmt.Errorf("failed to load config file %s: %w", configPath, err)
		}
		file.ApplyTo(cfg)
	} else if cfg.ConfigFilePath != "" {
		return nil, fmt.Errorf("%w: %s", config.ErrConfigNotFound, cfg.ConfigFilePath)
	}

	flags := cmd.Flags()
	if flags.Changed("channel") {
		if cfg.Channel, err = flags.GetString("channel"); err != nil {
			return nil, err
		}
	}
	if flags.Changed("output") {
		if cfg.OutputPath, err = flags.GetString("output"); err != nil {
			return nil, err
		}
	}
	if flags.Changed("max-pages") {
		if cfg.MaxPages, err = flags.GetInt("max-pages"); err != nil {
			return nil, err
		}
	}
	if flags.Changed("delay") {
		if cfg.Delay, err = flags.GetDuration("delay"); err != nil {
			return nil, err
		}
	}
	if flags.Changed("timeout") {
		if cfg.Timeout, err = flags.GetDuration("timeout"); err != nil {
			return nil, err
		}
	}

	if cfg.MarkdownSummary, err = flags.GetBool("markdown"); err != nil {
		return nil, err
	}
	cfg.Verbose = getVerboseFlag(cmd)

	return cfg, nil
}

// runCrawl crawls the configured channel, saves the snapshot and prints the
// summary. A fetch error ends the crawl early but is not a command failure;
// only a failed snapshot write is.
func runCrawl(ctx context.Context, cmd *cobra.Command, cfg *config.Config, logger *slog.Logger) error {
	out := cmd.OutOrStdout()

	logger.Debug("starting crawl",
		"channel", cfg.Channel,
		"url", cfg.ChannelURL(),
		"maxPages", cfg.MaxPages,
		"delay", cfg.Delay,
	)

	fetcher := crawler.NewHTTPFetcher(cfg.ChannelURL(),
		crawler.WithTimeout(cfg.Timeout),
		crawler.WithHeaders(cfg.UserAgent, cfg.Accept, cfg.AcceptLanguage),
		crawler.WithMaxBodySize(cfg.MaxBodySize),
	)
	c := crawler.New(fetcher,
		crawler.WithChannel(cfg.Channel),
		crawler.WithMaxPages(cfg.MaxPages),
		crawler.WithDelay(cfg.Delay),
		crawler.WithProgress(out),
		crawler.WithLogger(logger),
	)

	startTime := time.Now()
	res := c.Crawl(ctx)
	elapsed := time.Since(startTime)

	if err := report.WriteSnapshot(cfg.OutputPath, res.Posts); err != nil {
		return fmt.Errorf("failed to save %s: %w", cfg.OutputPath, err)
	}

	summary := model.NewCrawlSummary(cfg.Channel, res.Posts)
	summary.OutputPath = cfg.OutputPath
	summary.Pages = res.Pages
	summary.StopReason = res.Reason.String()
	summary.StartedAt = startTime
	summary.Duration = elapsed
	if res.Err != nil {
		summary.Error = res.Err.Error()
	}

	logger.Debug("crawl finished",
		"posts", summary.Posts,
		"pages", summary.Pages,
		"reason", summary.StopReason,
		"elapsed", elapsed,
	)

	return outputSummary(cmd, cfg, summary)
}

// outputSummary prints the run summary in the requested format.
func outputSummary(cmd *cobra.Command, cfg *config.Config, summary *model.CrawlSummary) error {
	var w report.SummaryWriter
	if cfg.MarkdownSummary {
		w = report.NewMarkdownWriter(cmd.OutOrStdout())
	} else {
		w = report.NewSimpleWriter(cmd.OutOrStdout())
	}

	if _, err := w.WriteSummary(summary); err != nil {
		return fmt.Errorf("failed to write summary: %w", err)
	}
	return nil
}
