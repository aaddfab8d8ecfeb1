package report

import "sync"

// The reporter is responsible for reporting errors, warnings, and other kinds
// of messages to the user during a driver run.  The reporter respects the set
// log level and is synchronized: its methods can be safely called from
// multiple goroutines (eg. parallel link jobs).
type reporter struct {
	// The mutex used to synchronize the different report calls.
	m *sync.Mutex

	// The selected log level of the reporter.  This must be one of the
	// enumerated log levels below.
	logLevel int

	// Indicates whether or not a non-fatal error has been detected.
	isErr bool
}

// Enumeration of the different possible log levels.
const (
	LogLevelSilent  = iota // Displays no output.
	LogLevelError          // Displays only errors to the user.
	LogLevelWarn           // Displays only warnings and errors to the user.
	LogLevelVerbose        // Displays all driver messages to the user (default).
)

// rep is the global reporter instance.
var rep = reporter{
	m:        &sync.Mutex{},
	logLevel: LogLevelVerbose,
}

// InitReporter sets the log level of the global reporter.
func InitReporter(logLevel int) {
	rep.logLevel = logLevel
}
