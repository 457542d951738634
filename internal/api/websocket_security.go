package api

import (
	"net/http"
	"strings"

	"github.com/gorilla/websocket"
	"golang.org/x/time/rate"

	"github.com/FocuswithJustin/DailyBread/internal/logging"
)

// WebSocketSecurityConfig holds WebSocket-specific security configuration.
type WebSocketSecurityConfig struct {
	// AllowedOrigins lists allowed origins. Empty or "*" allows any origin;
	// "*.example.com" allows subdomains of example.com.
	AllowedOrigins []string

	// MaxMessageRate is the maximum number of messages per second per client.
	MaxMessageRate int

	// MaxMessageSize is the maximum message size in bytes.
	MaxMessageSize int64
}

// DefaultWebSocketSecurityConfig returns the default limits.
func DefaultWebSocketSecurityConfig() WebSocketSecurityConfig {
	return WebSocketSecurityConfig{
		MaxMessageRate: 10,
		MaxMessageSize: 4096,
	}
}

// newMessageLimiter allows bursts of twice the per-second rate.
func newMessageLimiter(messagesPerSecond int) *rate.Limiter {
	if messagesPerSecond <= 0 {
		return rate.NewLimiter(rate.Inf, 0)
	}
	return rate.NewLimiter(rate.Limit(messagesPerSecond), 2*messagesPerSecond)
}

func isOriginAllowed(origin string, allowedOrigins []string) bool {
	if len(allowedOrigins) == 0 {
		return true
	}
	if origin == "" {
		return false
	}

	for _, allowed := range allowedOrigins {
		switch {
		case allowed == "*", allowed == origin:
			return true
		case strings.HasPrefix(allowed, "*."):
			// Match "https://a.example.com" against "*.example.com".
			if strings.HasSuffix(origin, allowed[1:]) {
				return true
			}
		}
	}
	return false
}

// CheckOriginWithConfig returns an upgrader CheckOrigin function for config.
func CheckOriginWithConfig(config WebSocketSecurityConfig) func(r *http.Request) bool {
	return func(r *http.Request) bool {
		origin := r.Header.Get("Origin")
		if !isOriginAllowed(origin, config.AllowedOrigins) {
			logging.SecurityEvent("websocket_origin_rejected", "api",
				"origin", origin,
				"ip", getClientIP(r))
			return false
		}
		return true
	}
}

func newUpgrader(config WebSocketSecurityConfig) *websocket.Upgrader {
	return &websocket.Upgrader{
		ReadBufferSize:  1024,
		WriteBufferSize: 1024,
		CheckOrigin:     CheckOriginWithConfig(config),
	}
}
