package logger

import "go.uber.org/zap"

// New builds the process logger: JSON in prod-like environments, console
// output elsewhere.
func New(env string) (*zap.Logger, error) {
	switch env {
	case "prod", "production", "release":
		return zap.NewProduction()
	default:
		return zap.NewDevelopment()
	}
}
