package config

import (
	"fmt"
	"os"
)

// Config carries the listener settings and the directory being served.
type Config struct {
	Host string
	Port int
	Root string
}

// Default returns the fixed serving configuration, rooted at the
// process working directory.
func Default() (Config, error) {
	wd, err := os.Getwd()
	if err != nil {
		return Config{}, fmt.Errorf("resolving working directory: %w", err)
	}
	return Config{Host: Host, Port: Port, Root: wd}, nil
}

// Addr returns the host:port the listener binds.
func (c Config) Addr() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}

// URL returns the browsable address printed at startup.
func (c Config) URL() string {
	return fmt.Sprintf("http://localhost:%d", c.Port)
}
