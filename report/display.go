package report

import (
	"bufio"
	"fmt"
	"math"
	"os"
	"strconv"
	"strings"

	"github.com/pterm/pterm"
)

// Color styles for the different message kinds, matched to the palette the
// teacher's older display code used.
var (
	errorBanner = pterm.NewStyle(pterm.BgRed, pterm.FgWhite)
	errorText   = pterm.NewStyle(pterm.FgRed)
	warnBanner  = pterm.NewStyle(pterm.BgYellow, pterm.FgBlack)
	warnText    = pterm.NewStyle(pterm.FgYellow)
	iceBanner   = pterm.NewStyle(pterm.BgMagenta, pterm.FgWhite)
)

// ReportICE reports an internal compiler error: a bug in flowpathc itself,
// never an expected condition.  Always displayed regardless of log level.
func ReportICE(format string, args ...interface{}) {
	if rep != nil {
		rep.m.Lock()
		defer rep.m.Unlock()
	}

	iceBanner.Println(" internal compiler error ")
	fmt.Println(fmt.Sprintf(format, args...))
}

// ReportFatal reports a fatal, non-compilation error (bad configuration,
// missing tool, etc.) and exits the process.
func ReportFatal(format string, args ...interface{}) {
	if rep == nil || rep.logLevel > LogLevelSilent {
		errorBanner.Println(" fatal error ")
		errorText.Println(fmt.Sprintf(format, args...))
	}

	os.Exit(1)
}

// ReportCompileError reports a lowering error against a source file.  span
// may be nil, in which case no source excerpt is printed.
func ReportCompileError(absPath, reprPath string, span *TextSpan, message string) {
	if rep != nil {
		rep.m.Lock()
		defer rep.m.Unlock()
		rep.isErr = true
	}

	if rep != nil && rep.logLevel <= LogLevelSilent {
		return
	}

	errorBanner.Print(" error ")
	fmt.Printf(" %s: %s\n", reprPath, message)

	if span != nil {
		displaySourceText(absPath, span, errorText)
	}
}

// ReportCompileWarning reports a lowering warning.  Warnings never abort
// the pass; the lowering core does not currently emit any, but the reporter
// carries the path for symmetry with ReportCompileError.
func ReportCompileWarning(absPath, reprPath string, span *TextSpan, message string) {
	if rep != nil && rep.logLevel < LogLevelWarn {
		return
	}

	warnBanner.Print(" warning ")
	fmt.Printf(" %s: %s\n", reprPath, message)

	if span != nil {
		displaySourceText(absPath, span, warnText)
	}
}

// ReportStdError reports a plain Go error encountered while driving
// compilation (I/O failures, malformed config, etc.).
func ReportStdError(reprPath string, err error) {
	if rep != nil {
		rep.m.Lock()
		defer rep.m.Unlock()
		rep.isErr = true
	}

	errorBanner.Print(" error ")
	fmt.Printf(" %s: %s\n", reprPath, err)
}

// -----------------------------------------------------------------------------

// displaySourceText prints the source lines covered by span with carets
// underlining the erroneous range.
func displaySourceText(absPath string, span *TextSpan, style *pterm.Style) {
	file, err := os.Open(absPath)
	if err != nil {
		// no source available (e.g. a synthesized module with no backing
		// file) -- nothing more we can show.
		return
	}
	defer file.Close()

	var lines []string
	sc := bufio.NewScanner(file)
	for ln := 0; sc.Scan(); ln++ {
		if span.StartLine <= ln && ln <= span.EndLine {
			lines = append(lines, strings.ReplaceAll(sc.Text(), "\t", "    "))
		}
	}

	if len(lines) == 0 {
		return
	}

	minIndent := math.MaxInt32
	for _, line := range lines {
		indent := 0
		for _, c := range line {
			if c != ' ' {
				break
			}
			indent++
		}
		if indent < minIndent {
			minIndent = indent
		}
	}

	maxLineNumLen := len(strconv.Itoa(span.EndLine + 1))
	lineNumFmt := "%-" + strconv.Itoa(maxLineNumLen) + "v | "

	for i, line := range lines {
		fmt.Printf(lineNumFmt, i+span.StartLine+1)
		if minIndent < len(line) {
			fmt.Println(line[minIndent:])
		} else {
			fmt.Println(line)
		}

		fmt.Print(strings.Repeat(" ", maxLineNumLen), " | ")

		var prefix int
		if i == 0 {
			prefix = span.StartCol - minIndent
		}

		var suffix int
		if i == len(lines)-1 {
			suffix = len(line) - span.EndCol
		}

		carets := len(line) - suffix - prefix - minIndent
		if carets < 1 {
			carets = 1
		}

		fmt.Print(strings.Repeat(" ", max(prefix, 0)))
		style.Println(strings.Repeat("^", carets))
	}

	fmt.Println()
}

func max(a, b int) int {
	if a > b {
		return a
	}
	return b
}
