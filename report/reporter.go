package report

import "sync"

// Enumeration of the possible log levels, from least to most verbose.
const (
	LogLevelSilent = iota
	LogLevelError
	LogLevelWarn
	LogLevelVerbose
)

// reporter is the process-wide diagnostic sink.  Its methods are safe to
// call from multiple goroutines (the CLI may run several lowering
// invocations' output through it within one process lifetime).
type reporter struct {
	m        sync.Mutex
	logLevel int
	isErr    bool
}

var rep *reporter

// InitReporter initializes the global reporter at the given log level.  If
// it has already been initialized, this call is a no-op.
func InitReporter(logLevel int) {
	if rep == nil {
		rep = &reporter{logLevel: logLevel}
	}
}

// AnyErrors reports whether any error has been reported since the reporter
// was initialized.
func AnyErrors() bool {
	if rep == nil {
		return false
	}

	rep.m.Lock()
	defer rep.m.Unlock()
	return rep.isErr
}
