// Package config loads engine configuration from environment variables,
// with an optional .env file picked up once on first use.
//
// Any struct carrying `env` tags can be loaded; the package ships the
// Engine struct covering the form engine's own knobs (success notice,
// history capacity).
//
// # Usage
//
//	var cfg config.Engine
//	if err := config.Load(&cfg); err != nil {
//	    // handle error
//	}
//
// MustLoad panics on failure and suits configuration the process cannot
// start without:
//
//	var redisCfg storage.Config
//	config.MustLoad(&redisCfg)
package config
