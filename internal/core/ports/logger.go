// Package ports defines the core interfaces for the application.
package ports

// Logger defines the interface for logging.
//
//go:generate go run go.uber.org/mock/mockgen -source=logger.go -destination=mocks/mock_logger.go -package=mocks
type Logger interface {
	Debug(msg string)
	Info(msg string)
	Warn(msg string)
	Error(err error)
}

// LogControl is implemented by loggers whose verbosity and format can be changed at runtime.
type LogControl interface {
	SetVerbose(verbose bool)
	SetJSON(enable bool)
}
