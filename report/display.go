package report

import (
	"fmt"

	"github.com/pterm/pterm"
)

var (
	WarnColorFG  = pterm.FgYellow
	WarnStyleBG  = pterm.NewStyle(pterm.BgYellow, pterm.FgBlack)
	ErrorColorFG = pterm.FgRed
	ErrorStyleBG = pterm.NewStyle(pterm.BgRed, pterm.FgWhite)
)

// displayFatal displays a fatal error message.
func displayFatal(message string) {
	ErrorStyleBG.Print("Fatal Error")
	ErrorColorFG.Println(" " + message)
}

// displayInternal displays an internal driver error message.
func displayInternal(message string) {
	ErrorStyleBG.Print("Internal Error")
	ErrorColorFG.Println(" " + message)
	fmt.Print("This error was not supposed to happen: please open an issue on GitHub\n\n")
}

// displayError displays a non-fatal error message.
func displayError(message string) {
	ErrorStyleBG.Print("Error")
	ErrorColorFG.Println(" " + message)
}

// displayWarning displays a warning message.
func displayWarning(message string) {
	WarnStyleBG.Print("Warning")
	WarnColorFG.Println(" " + message)
}
