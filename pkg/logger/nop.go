package logger

import "go.uber.org/zap"

// NewNop returns a Logger that discards all output. Useful in tests where
// log assertions are not the point.
func NewNop() Logger {
	return &Adapter{zapLogger: &ZapLogger{logger: zap.NewNop()}}
}
