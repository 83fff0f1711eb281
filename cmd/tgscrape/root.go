package main

import (
	"fmt"
	"os"

	"github.com/nao1215/tgscrape/internal/config"
	"github.com/spf13/cobra"
)

// NewRootCmd creates the root command for tgscrape.
// Running it without a subcommand performs a crawl.
func NewRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "tgscrape",
		Short: "Collect the public history of a Telegram channel",
		Long: `tgscrape walks the public web preview of a Telegram channel
(https://t.me/s/<channel>) from the newest post back to the first one and
saves every post to a JSON file.

Pages are fetched one at a time with a short pause in between. The crawl
stops at the first post of the channel, when a page brings nothing new,
on the first fetch error, or after --max-pages pages. Whatever was
collected is always saved.

Examples:
  # Crawl the default channel into posts.json
  tgscrape

  # Crawl another channel into a custom file
  tgscrape --channel durov --output durov.json

  # Print a Markdown summary at the end
  tgscrape --markdown

Configuration file (.tgscrape) example:
  channel: durov
  output: data/durov.json
  maxPages: 100
  delay: 1s`,
		Version:       getVersion(),
		Args:          cobra.NoArgs,
		RunE:          runCrawlCmd,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	// Global flags that apply to all commands
	cmd.PersistentFlags().BoolP("verbose", "v", false, "Enable verbose logging")

	cmd.Flags().StringP("config", "c", "",
		"Configuration file path (default: .tgscrape in current directory, XDG config dir or home directory)")
	cmd.Flags().StringP("channel", "C", config.DefaultChannel,
		"Public channel username to crawl")
	cmd.Flags().StringP("output", "o", config.DefaultOutputPath,
		"Snapshot file path (creates directories if needed)")
	cmd.Flags().IntP("max-pages", "p", config.DefaultMaxPages,
		"Maximum number of pages to fetch")
	cmd.Flags().DurationP("delay", "d", config.DefaultDelay,
		"Pause between two page fetches")
	cmd.Flags().DurationP("timeout", "t", config.DefaultTimeout,
		"Timeout for each request")
	cmd.Flags().BoolP("markdown", "m", false,
		"Print the final summary as Markdown")

	cmd.AddCommand(NewInitCmd())
	cmd.AddCommand(NewVersionCmd())

	return cmd
}

// Execute runs the root command.
func Execute() {
	if err := NewRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
