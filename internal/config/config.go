package config

import (
	"net/url"
	"path/filepath"
	"regexp"
	"time"

	"github.com/adrg/xdg"
	"golang.org/x/text/language"
)

// Default configuration values.
// The request profile and pagination limits match what the public web
// preview tolerates for a single sequential reader.
const (
	// DefaultChannel is the channel crawled when nothing else is configured.
	DefaultChannel = "adv_vfedorov"

	// DefaultBaseURL is the web preview host. Pages live under /s/<channel>.
	DefaultBaseURL = "https://t.me"

	// DefaultOutputPath is the snapshot file written at the end of a run.
	DefaultOutputPath = "posts.json"

	// DefaultTimeout bounds a single HTTP request. It does not bound the crawl.
	DefaultTimeout = 30 * time.Second

	// DefaultMaxPages is the hard iteration cap of the crawl loop.
	// The loop terminates after this many fetches even if the source keeps
	// returning new content.
	DefaultMaxPages = 500

	// DefaultDelay is the politeness pause between two page fetches.
	DefaultDelay = 500 * time.Millisecond

	// DefaultUserAgent mimics a common desktop browser. The web preview serves
	// a reduced page to unknown clients.
	DefaultUserAgent = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) " +
		"AppleWebKit/537.36 (KHTML, like Gecko) " +
		"Chrome/125.0.0.0 Safari/537.36"

	// DefaultAccept is the Accept header sent with every page request.
	DefaultAccept = "text/html,application/xhtml+xml"

	// DefaultAcceptLanguage is the Accept-Language header sent with every page request.
	DefaultAcceptLanguage = "ru-RU,ru;q=0.9,en;q=0.8"

	// DefaultMaxBodySize limits how much of a response body is read.
	// A history page is a few hundred kilobytes; 5MB leaves ample headroom.
	DefaultMaxBodySize = 5 * 1024 * 1024 // 5MB

	// AppName is the application name used for XDG directory paths.
	AppName = "tgscrape"
)

// channelPattern matches public channel usernames.
var channelPattern = regexp.MustCompile(`^[A-Za-z0-9_]+$`)

// Config holds all configuration options for one crawl run.
// It is built once by the CLI and handed to the components that need it.
// Nothing reads configuration from package state.
//
// Design decision: We keep a single flat struct, as the number of options is
// small and every option is consumed in exactly one place.
type Config struct {
	// Channel is the public channel username, without the leading "@".
	Channel string

	// BaseURL is the scheme and host of the web preview, e.g. "https://t.me".
	BaseURL string

	// OutputPath is the snapshot destination. The file is overwritten on
	// every run.
	OutputPath string

	// Timeout bounds each individual HTTP request.
	Timeout time.Duration

	// MaxPages is the iteration cap of the crawl loop.
	MaxPages int

	// Delay is the pause between consecutive page fetches.
	Delay time.Duration

	// UserAgent, Accept and AcceptLanguage make up the fixed request header set.
	UserAgent      string
	Accept         string
	AcceptLanguage string

	// MaxBodySize is the maximum response body size in bytes to read.
	// Zero means DefaultMaxBodySize.
	MaxBodySize int64

	// ConfigFilePath is the path to the configuration file, if any.
	ConfigFilePath string

	// MarkdownSummary prints the final run summary as Markdown.
	MarkdownSummary bool

	// Verbose enables debug logging on stderr.
	Verbose bool
}

// NewConfig creates a new Config with default values.
//
// Design decision: We use a constructor function instead of relying on
// zero values because almost every default is non-zero.
func NewConfig() *Config {
	return &Config{
		Channel:        DefaultChannel,
		BaseURL:        DefaultBaseURL,
		OutputPath:     DefaultOutputPath,
		Timeout:        DefaultTimeout,
		MaxPages:       DefaultMaxPages,
		Delay:          DefaultDelay,
		UserAgent:      DefaultUserAgent,
		Accept:         DefaultAccept,
		AcceptLanguage: DefaultAcceptLanguage,
		MaxBodySize:    DefaultMaxBodySize,
	}
}

// ChannelURL returns the URL of the newest history page of the channel.
func (c *Config) ChannelURL() string {
	return c.BaseURL + "/s/" + c.Channel
}

// XDGConfigDir returns the XDG config directory for tgscrape.
// On Linux: ~/.config/tgscrape
// On macOS: ~/Library/Application Support/tgscrape
// On Windows: %APPDATA%\tgscrape
func XDGConfigDir() string {
	return filepath.Join(xdg.ConfigHome, AppName)
}

// Validate checks if the configuration is valid.
// It returns the first problem found as one of the sentinel errors in
// errors.go, so callers can use errors.Is.
func (c *Config) Validate() error {
	if c.Channel == "" {
		return ErrNoChannel
	}
	if !channelPattern.MatchString(c.Channel) {
		return ErrInvalidChannel
	}

	u, err := url.Parse(c.BaseURL)
	if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return ErrInvalidBaseURL
	}

	if c.OutputPath == "" {
		return ErrNoOutput
	}

	// A zero timeout would disable the per-request bound entirely
	if c.Timeout <= 0 {
		return ErrInvalidTimeout
	}

	if c.MaxPages <= 0 {
		return ErrInvalidMaxPages
	}

	if c.Delay < 0 {
		return ErrInvalidDelay
	}

	if c.MaxBodySize < 0 {
		return ErrInvalidMaxBodySize
	}

	if c.AcceptLanguage != "" {
		if _, _, err := language.ParseAcceptLanguage(c.AcceptLanguage); err != nil {
			return ErrInvalidAcceptLanguage
		}
	}

	return nil
}
