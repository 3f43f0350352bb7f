// Package config provides configuration loading, merging, and validation
// facilities for the console.
//
// Configuration is assembled from multiple sources in the following priority
// order (later sources override earlier non-zero fields):
//  1. Built-in defaults
//  2. JSON config file
//  3. .env file and environment variables
//  4. Command-line flags
//
// The main entry points are [GetStructuredConfig] for the raw merged
// configuration and [GetConsoleConfig] for the view consumed by the console
// runtime.
package config
