package config

import (
	"errors"
)

var (
	// ErrNilConfig is returned when a nil *Config is passed.
	ErrNilConfig = errors.New("config is nil")

	// ErrEmptyURL error if config webserver.URL is empty.
	ErrEmptyURL = errors.New("toml config webserver.url can not be empty")

	// ErrWebServerPortCanNotBeZero error if config webserver listening port is 0.
	ErrWebServerPortCanNotBeZero = errors.New("toml config webserver.port listening port can not be 0")

	// ErrEmptyStoreURL error if neither store.url nor VINOTEKA_STORE_URL is set.
	ErrEmptyStoreURL = errors.New("store url can not be empty (store.url or " + EnvPrefix + "_STORE_URL)")

	// ErrEmptyStoreKey error if neither store.key nor VINOTEKA_STORE_KEY is set.
	ErrEmptyStoreKey = errors.New("store access key can not be empty (store.key or " + EnvPrefix + "_STORE_KEY)")
)
