package config

import "errors"

var (
	ErrConfigFileNotFound = errors.New("config file not found")
	ErrConfigFileRead     = errors.New("failed to read config file")
	ErrConfigInvalid      = errors.New("invalid config")
	ErrChunkSizeInvalid   = errors.New("chunk_size must be positive")
)
