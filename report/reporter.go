package report

import (
	"fmt"
	"os"
	"sync"
)

// Reporter is responsible for reporting errors, warnings, and other kinds of
// messages to the user during compile-time evaluation.  The reporter respects
// the set log level and is synchronized: its methods can be safely called from
// multiple goroutines (eg. when independent constant expressions are evaluated
// concurrently).
type Reporter struct {
	// The mutex used to synchronize different report method calls.
	m *sync.Mutex

	// The selected log level of the reporter.  This must be one of the
	// enumerated log levels below.
	logLevel int
}

// Enumeration of the different possible log levels.
const (
	LogLevelSilent  = iota // Displays no output.
	LogLevelError          // Displays only errors to the user.
	LogLevelWarn           // Displays only warnings and errors to the user.
	LogLevelVerbose        // Displays all messages including traces (default).
)

// rep is the global reporter instance.
var rep *Reporter

// InitReporter initializes the global reporter to the given log level.  If the
// reporter has already been initialized, this function does nothing.
func InitReporter(logLevel int) {
	if rep == nil {
		rep = &Reporter{
			m:        &sync.Mutex{},
			logLevel: logLevel,
		}
	}
}

// -----------------------------------------------------------------------------

// ReportICE reports an internal compiler error.  These are errors that
// specifically result from a bug or unexpected condition occurring within the
// compiler itself: they are not intended to ever happen, and no recovery is
// possible.  These errors are always displayed regardless of log level.
func ReportICE(message string, args ...interface{}) {
	if rep != nil {
		rep.m.Lock()
		defer rep.m.Unlock()
	}

	displayICE(fmt.Sprintf(message, args...))

	os.Exit(-1)
}

// ReportFatal reports a fatal error.  These are expected errors that should
// cause evaluation to stop immediately: invalid configuration, a missing
// target file, etc.
func ReportFatal(message string, args ...interface{}) {
	if rep == nil || rep.logLevel > LogLevelSilent {
		if rep != nil {
			rep.m.Lock()
			defer rep.m.Unlock()
		}

		displayFatal(fmt.Sprintf(message, args...))
	}

	os.Exit(1)
}

// ReportError reports a recoverable error to the user.
func ReportError(err error) {
	if rep != nil && rep.logLevel >= LogLevelError {
		rep.m.Lock()
		defer rep.m.Unlock()

		displayError(err)
	}
}

// ReportWarning reports a warning message to the user.
func ReportWarning(message string, args ...interface{}) {
	if rep != nil && rep.logLevel >= LogLevelWarn {
		rep.m.Lock()
		defer rep.m.Unlock()

		displayWarning(fmt.Sprintf(message, args...))
	}
}

// DisplayInfoMessage displays a tagged informational message to the user.
func DisplayInfoMessage(tag, message string) {
	if rep != nil && rep.logLevel == LogLevelVerbose {
		rep.m.Lock()
		defer rep.m.Unlock()

		displayInfo(tag, message)
	}
}

// Tracef logs a trace message.  Trace messages are only displayed at the
// verbose log level and are primarily useful for debugging the evaluator.
func Tracef(message string, args ...interface{}) {
	if rep != nil && rep.logLevel == LogLevelVerbose {
		rep.m.Lock()
		defer rep.m.Unlock()

		displayTrace(fmt.Sprintf(message, args...))
	}
}
