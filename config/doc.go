// Package config loads typed configuration structs from environment
// variables, with optional .env file support for local development.
//
// Parsing is backed by caarlos0/env struct tags and cached per type, so
// configuration read on hot paths (request binding limits, for example)
// costs a single map lookup after the first call.
//
// Usage:
//
//	type ServerConfig struct {
//		Addr string `env:"SERVER_ADDR" envDefault:":8080"`
//	}
//
//	var cfg ServerConfig
//	config.MustLoad(&cfg)
package config
