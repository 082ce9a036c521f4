// Package config provides configuration structures and utilities for
// NetRunner. It defines the options for fingerprint analysis, distribution
// table overrides, report generation, and history storage.
package config
