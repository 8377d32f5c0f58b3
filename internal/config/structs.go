package config

import (
	"github.com/vinoteka/vinoteka/internal/logger"
)

const redactedValue = "********"

// Config overall data structure.
type Config struct {
	DevMode   bool       `mapstructure:"devmode"   toml:"devmode"   json:"DevMode"` // enable dev mode for development
	Title     string     `mapstructure:"title"     toml:"title"     json:"Title"`
	Store     Store      `mapstructure:"store"     toml:"store"     json:"Store"`
	Log       logger.Log `mapstructure:"log"       toml:"log"       json:"Log"`
	Webserver Webserver  `mapstructure:"webserver" toml:"webserver" json:"Webserver"`
}

// Webserver implement webserver settings.
type Webserver struct {
	BrowseStatic   bool   `mapstructure:"browsestatic"   toml:"browsestatic"   json:"BrowseStatic"`   // enable static file browsing (for development purposes only)
	DisableRecover bool   `mapstructure:"disablerecover" toml:"disablerecover" json:"DisableRecover"` // disable recover middleware
	FastShutDown   bool   `mapstructure:"fastshutdown"   toml:"fastshutdown"   json:"FastShutDown"`   // skip the load balancer grace period
	Port           int    `mapstructure:"port"           toml:"port"           json:"Port"`           // listening port for the webserver
	ShutDownTime   int    `mapstructure:"shutdowntime"   toml:"shutdowntime"   json:"ShutDownTime"`   // wait time for shutdown in seconds
	URL            string `mapstructure:"url"            toml:"url"            json:"URL"`            // base url for the webserver
	CheckAliveURI  string `mapstructure:"checkaliveuri"  toml:"checkaliveuri"  json:"CheckAliveURI"`
}

// redacted returns a copy safe to print.
func (c *Config) redacted() Config {
	out := *c
	if out.Store.Key != "" {
		out.Store.Key = redactedValue
	}

	return out
}
