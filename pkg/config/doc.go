// Package config loads typed configuration structs from environment
// variables using github.com/caarlos0/env, with optional .env files read by
// github.com/joho/godotenv.
//
// Every struct type is parsed once and cached, so packages can call Load
// wherever they need their settings:
//
//	var s validation.Settings
//	if err := config.Load(&s); err != nil {
//		return err
//	}
//
// WithPrefix namespaces the variables, WithoutCache forces a fresh parse and
// LoadEnv reads additional env files.
package config
