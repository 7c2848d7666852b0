package logger

import "fmt"

// RestyLogger adapts *Logger to the resty.Logger interface so the HTTP
// client's own diagnostics land in the same structured stream.
type RestyLogger struct {
	l *Logger
}

// NewRestyLogger wraps l. A nil l yields a discarding logger.
func NewRestyLogger(l *Logger) *RestyLogger {
	if l == nil {
		l = Nop()
	}
	return &RestyLogger{l: l}
}

func (r *RestyLogger) Errorf(format string, v ...any) {
	r.l.Error().Str("component", "resty").Msg(fmt.Sprintf(format, v...))
}

func (r *RestyLogger) Warnf(format string, v ...any) {
	r.l.Warn().Str("component", "resty").Msg(fmt.Sprintf(format, v...))
}

func (r *RestyLogger) Debugf(format string, v ...any) {
	r.l.Debug().Str("component", "resty").Msg(fmt.Sprintf(format, v...))
}
