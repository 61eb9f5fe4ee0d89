// Package format renders armkit CLI output: colors, tables and decode
// diagnostics.
package format

import (
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/pterm/pterm"
	"golang.org/x/term"
)

var (
	successColor = color.New(color.FgGreen)
	warningColor = color.New(color.FgYellow)
	errorColor   = color.New(color.FgRed)
	infoColor    = color.New(color.FgCyan)
	headerColor  = color.New(color.FgCyan, color.Bold)
	dimColor     = color.New(color.FgHiBlack)
)

// ShouldColor decides whether output to f is colored. NO_COLOR always wins,
// ARMKIT_FORCE_COLOR colors non-terminals.
func ShouldColor(enabled bool, f *os.File) bool {
	if !enabled {
		return false
	}
	if _, ok := os.LookupEnv("NO_COLOR"); ok {
		return false
	}
	if _, ok := os.LookupEnv("ARMKIT_FORCE_COLOR"); ok {
		return true
	}
	return f != nil && term.IsTerminal(int(f.Fd()))
}

// EnableColor switches colored output on or off for both fatih/color and
// pterm.
func EnableColor(enable bool) {
	color.NoColor = !enable
	if enable {
		pterm.EnableStyling()
	} else {
		pterm.DisableStyling()
	}
}

// IsColorEnabled reports whether colored output is on.
func IsColorEnabled() bool {
	return !color.NoColor
}

func Success(format string, a ...interface{}) string { return successColor.Sprintf(format, a...) }
func Warning(format string, a ...interface{}) string { return warningColor.Sprintf(format, a...) }
func Error(format string, a ...interface{}) string   { return errorColor.Sprintf(format, a...) }
func Info(format string, a ...interface{}) string    { return infoColor.Sprintf(format, a...) }
func Header(format string, a ...interface{}) string  { return headerColor.Sprintf(format, a...) }
func Dim(format string, a ...interface{}) string     { return dimColor.Sprintf(format, a...) }

// StatusSymbol returns a check mark or a cross.
func StatusSymbol(ok bool) string {
	if ok {
		return Success("✓")
	}
	return Error("✗")
}

// Label formats "key: value" with a highlighted key.
func Label(key, value string) string {
	return fmt.Sprintf("%s %s", Header("%s:", key), value)
}

// Table renders rows under headers with pterm. An empty row set renders
// empty.
func Table(headers []string, rows [][]string) (string, error) {
	if len(rows) == 0 {
		return "", nil
	}
	data := make([][]string, 0, len(rows)+1)
	data = append(data, headers)
	data = append(data, rows...)
	return pterm.DefaultTable.
		WithHasHeader(true).
		WithHeaderStyle(pterm.NewStyle(pterm.FgCyan, pterm.Bold)).
		WithData(data).
		Srender()
}
