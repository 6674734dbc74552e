package logger

// MultiLogger forwards every message to each of its loggers.
type MultiLogger struct {
	loggers []Logger
}

// NewMultiLogger combines loggers; nil entries are skipped.
func NewMultiLogger(loggers ...Logger) *MultiLogger {
	ml := &MultiLogger{}
	for _, l := range loggers {
		if l != nil {
			ml.loggers = append(ml.loggers, l)
		}
	}
	return ml
}

// LogTrace forwards to all loggers
func (ml *MultiLogger) LogTrace(message string) {
	for _, l := range ml.loggers {
		l.LogTrace(message)
	}
}

// LogDebug forwards to all loggers
func (ml *MultiLogger) LogDebug(message string) {
	for _, l := range ml.loggers {
		l.LogDebug(message)
	}
}

// LogInfo forwards to all loggers
func (ml *MultiLogger) LogInfo(message string) {
	for _, l := range ml.loggers {
		l.LogInfo(message)
	}
}

// LogWarn forwards to all loggers
func (ml *MultiLogger) LogWarn(message string) {
	for _, l := range ml.loggers {
		l.LogWarn(message)
	}
}

// LogError forwards to all loggers
func (ml *MultiLogger) LogError(message string) {
	for _, l := range ml.loggers {
		l.LogError(message)
	}
}
