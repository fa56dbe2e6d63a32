// Package config loads the service configuration from environment
// variables, command-line flags, and an optional JSON file, merging the
// sources in that order with mergo. The merged result is validated once at
// startup; components receive their sub-configuration by value and never
// read ambient global state.
package config
