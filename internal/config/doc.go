// Package config provides the crawl configuration for tgscrape.
// It defines the channel to crawl, the HTTP request profile, the pagination
// limits and the snapshot destination, together with an optional YAML file
// that can override the compiled-in defaults.
package config
