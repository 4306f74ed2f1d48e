package report

import (
	"fmt"

	"github.com/pterm/pterm"
)

var (
	successColorFG = pterm.FgLightGreen
	infoStyleBG    = pterm.NewStyle(pterm.BgLightGreen, pterm.FgBlack)
	warnColorFG    = pterm.FgYellow
	warnStyleBG    = pterm.NewStyle(pterm.BgYellow, pterm.FgBlack)
	errorColorFG   = pterm.FgRed
	errorStyleBG   = pterm.NewStyle(pterm.BgRed, pterm.FgWhite)
	traceColorFG   = pterm.FgGray
)

// displayICE displays an internal compiler error message.
func displayICE(message string) {
	errorStyleBG.Print("Internal Error")
	errorColorFG.Println(" " + message)
	fmt.Print("This error was not supposed to happen: please open an issue on the Crux issue tracker\n\n")
}

// displayFatal displays a fatal error message.
func displayFatal(message string) {
	errorStyleBG.Print("Fatal Error")
	errorColorFG.Println(" " + message)
}

// displayError displays a recoverable evaluation error.
func displayError(err error) {
	errorStyleBG.Print("Eval Error")
	errorColorFG.Println(" " + err.Error())
}

// displayWarning displays a warning message.
func displayWarning(message string) {
	warnStyleBG.Print("Warning")
	warnColorFG.Println(" " + message)
}

// displayInfo displays a tagged informational message.
func displayInfo(tag, message string) {
	infoStyleBG.Print(tag)
	successColorFG.Println(" " + message)
}

// displayTrace displays a trace message.
func displayTrace(message string) {
	traceColorFG.Println("trace: " + message)
}
