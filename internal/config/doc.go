// Package config provides configuration loading, merging, and validation
// facilities for the SDK and its command-line tool.
//
// Configuration is assembled from multiple sources in the following priority
// order (later sources override earlier non-zero fields):
//  1. Built-in defaults
//  2. .env file
//  3. Environment variables (SIMPLIFY_ prefix)
//  4. Command-line flags
//  5. JSON config file
//
// The main entry points are [GetStructuredConfig] for the SDK and
// [GetClientConfig] for the command-line tool.
package config
