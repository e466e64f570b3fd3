// Package logger is the structured logging facade used across the module.
package logger

// Logger is the logging surface the session and hosts depend on.
type Logger interface {
	Debugf(format string, args ...any)
	Debugw(msg string, fields map[string]any)
	Infof(format string, args ...any)
	Warnf(format string, args ...any)
	Errorf(format string, args ...any)
}

// NopLogger implements Logger with no-op methods.
type NopLogger struct{}

func (NopLogger) Debugf(string, ...any)         {}
func (NopLogger) Debugw(string, map[string]any) {}
func (NopLogger) Infof(string, ...any)          {}
func (NopLogger) Warnf(string, ...any)          {}
func (NopLogger) Errorf(string, ...any)         {}

// Options selects the output format and threshold.
type Options struct {
	// Level is a zerolog level name ("debug", "info", "warn", ...). Empty
	// means info.
	Level string `json:"level" yaml:"level"`
	// Dev switches to human-readable console output.
	Dev bool `json:"dev" yaml:"dev"`
}

// Validate reports an unknown level name.
func (o Options) Validate() error {
	_, err := parseLevel(o.Level)
	return err
}

// New returns a Logger for the given component.
func New(component string, opts Options) (Logger, error) {
	l, err := NewZerologLogger(component, opts)
	if err != nil {
		return nil, err
	}
	return l, nil
}
