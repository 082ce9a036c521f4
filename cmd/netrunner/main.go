// Package main provides the entry point for the NetRunner CLI.
//
// NetRunner analyzes browser fingerprints and scores how uniquely
// identifiable they are, using an entropy model over real-world signal
// distributions.
//
// Usage:
//
//	netrunner analyze fingerprint.json
//	netrunner compare browsers.json
//
// See --help for all available options.
package main

// main is the entry point for NetRunner.
func main() {
	Execute()
}
