package config

import "errors"

var (
	ErrInvalidCatalogConfigs = errors.New("catalog fallback must be \"none\" or \"sample\"")
	ErrInvalidAuthConfigs    = errors.New("session ttl must not be negative")
	ErrInvalidMailConfigs    = errors.New("mail provider requires a sender address")
)
