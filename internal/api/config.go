package api

// Config holds server configuration.
type Config struct {
	Port              int
	RateLimitRequests int        // Requests per minute per client (0 = disabled)
	RateLimitBurst    int        // Burst size
	AllowedOrigins    []string   // CORS and WebSocket allowed origins (empty = allow all)
	Auth              AuthConfig // Authentication configuration
	TLS               TLSConfig  // TLS configuration
	WebSocket         WebSocketSecurityConfig
}

// TLSConfig holds TLS/HTTPS configuration.
type TLSConfig struct {
	CertFile string // Path to TLS certificate file
	KeyFile  string // Path to TLS private key file
}

// Enabled reports whether both a certificate and a key are configured.
func (c TLSConfig) Enabled() bool {
	return c.CertFile != "" && c.KeyFile != ""
}

// DefaultConfig returns the configuration used when none is given.
func DefaultConfig() Config {
	return Config{
		Port:              8080,
		RateLimitRequests: 120,
		RateLimitBurst:    20,
		WebSocket:         DefaultWebSocketSecurityConfig(),
	}
}
