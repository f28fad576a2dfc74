package engine

import (
	"net/http"
)

// Config holds all engine configuration, injected from main.
type Config struct {
	HTTPClient *http.Client
	Backend    CaptionBackend
}

var cfg Config

// Cfg exposes the engine configuration for sub-packages (captions).
// Always points to the current cfg value.
var Cfg = &cfg

// Init initializes the engine with the given configuration.
func Init(c Config) {
	cfg = c
	Cfg = &cfg
}
