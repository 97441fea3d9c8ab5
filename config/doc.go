// Package config loads calculator settings.
//
// It uses Viper to read an optional YAML config file, godotenv to load
// optional .env files, and environment variables prefixed with CALC_ to
// override either. Nested keys are addressed with underscores:
//
//	CALC_HIST_BINS=20          -> hist.bins
//	CALC_HIST_MAX_WIDTH=120    -> hist.max_width
//	CALC_LOGGING_LEVEL=debug   -> logging.level
//	CALC_STATS_BACKENDS=none   -> stats.backends
//
// # Usage
//
//	cfg := config.Default()
//	err := config.LoadConfig("calc", cfg, config.WithConfigFile(path))
package config
