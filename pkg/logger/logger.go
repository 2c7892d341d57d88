package logger

import "go.uber.org/zap"

// New builds the application logger. Production gets JSON output with
// sampling; anything else gets the human-readable development config.
func New(env string) (*zap.Logger, error) {
	if env == "production" {
		return zap.NewProduction()
	}
	return zap.NewDevelopment()
}
