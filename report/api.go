package report

import (
	"fmt"
	"os"
)

// ReportFatal reports a fatal error.  These are errors that should cause the
// driver to stop immediately.  However, they are expected errors that
// generally result from invalid configuration of some form: missing sysroot,
// can't find requisite tools (eg. `ld.lld`), etc.
func ReportFatal(message string, args ...interface{}) {
	if rep.logLevel > LogLevelSilent {
		rep.m.Lock()
		defer rep.m.Unlock()

		displayFatal(fmt.Sprintf(message, args...))
	}

	os.Exit(1)
}

// ReportInternal reports an internal driver error.  These are errors that
// specifically result from a bug or unexpected condition occurring within the
// driver: they are not intended to ever happen.  These errors are always
// displayed regardless of log level.
func ReportInternal(message string, args ...interface{}) {
	rep.m.Lock()
	defer rep.m.Unlock()

	displayInternal(fmt.Sprintf(message, args...))

	os.Exit(-1)
}

// ReportError reports a non-fatal driver error: the driver keeps running so
// it can surface any further diagnostics, but the run is marked failed.
func ReportError(message string, args ...interface{}) {
	if rep.logLevel > LogLevelSilent {
		rep.m.Lock()
		defer rep.m.Unlock()

		rep.isErr = true

		displayError(fmt.Sprintf(message, args...))
	}
}

// ReportWarning reports a driver warning.
func ReportWarning(message string, args ...interface{}) {
	if rep.logLevel > LogLevelError {
		rep.m.Lock()
		defer rep.m.Unlock()

		displayWarning(fmt.Sprintf(message, args...))
	}
}

// ShouldProceed indicates whether or not there have been any non-fatal errors
// that should cause the driver to stop at the current phase.
func ShouldProceed() bool {
	return !rep.isErr
}

// CatchErrors converts panics escaping a driver phase into internal error
// reports.  Contract violations inside command synthesis panic rather than
// produce a malformed command; this handler is where those panics stop
// bubbling.
// NB: This function must ALWAYS be deferred.
func CatchErrors() {
	if x := recover(); x != nil {
		if err, ok := x.(error); ok {
			ReportInternal("%s", err.Error())
		} else {
			ReportInternal("%v", x)
		}
	}
}
