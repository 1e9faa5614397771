package config

// Config is the immutable runtime configuration snapshot built once
// from environment variables at startup.
type Config struct {
	Host             string
	Port             int
	LogLevel         string
	AutoReload       bool
	MaxContentLength int64
	Environment      string
}
