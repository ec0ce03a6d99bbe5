package config

import (
	"errors"
)

var (
	// ErrEmptyURL error if config webserver.URL is empty.
	ErrEmptyURL = errors.New("toml config webserver.url can not be empty")

	// ErrWebServerPortCanNotBeZero error if config webserver listening port is 0.
	ErrWebServerPortCanNotBeZero = errors.New("toml config webserver.port listening port can not be 0")

	// ErrUnknownDBDriver error if config db.driver is not one of the supported drivers.
	ErrUnknownDBDriver = errors.New("toml config db.driver must be one of memory, sqlite, mysql, postgres")
)
