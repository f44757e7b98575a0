// Package config loads typed configuration from environment variables.
//
// Every package that needs settings exposes a Config struct with
// caarlos0/env tags. The binary calls LoadEnv once to pull in a .env file
// via godotenv, then Load for each struct it needs.
package config
