// Package main provides the entry point for the tgscrape CLI.
//
// tgscrape collects the public history of a Telegram channel from its web
// preview (t.me/s/<channel>) and saves every post to a JSON file.
//
// Usage:
//
//	tgscrape
//	tgscrape --channel durov --output durov.json
//
// See --help for all available options.
package main

// main is the entry point for tgscrape.
func main() {
	Execute()
}
