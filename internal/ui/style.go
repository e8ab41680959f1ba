package ui

import (
	"fmt"
	"os"

	"github.com/fatih/color"
)

// Sprint color functions for building styled strings.
var (
	Bold        = color.New(color.Bold).SprintFunc()
	Dim         = color.New(color.Faint).SprintFunc()
	Cyan        = color.New(color.FgCyan).SprintFunc()
	Green       = color.New(color.FgGreen).SprintFunc()
	Red         = color.New(color.FgRed).SprintFunc()
	Yellow      = color.New(color.FgYellow).SprintFunc()
	Magenta     = color.New(color.FgMagenta).SprintFunc()
	BoldCyan    = color.New(color.Bold, color.FgCyan).SprintFunc()
	BoldGreen   = color.New(color.Bold, color.FgGreen).SprintFunc()
	BoldRed     = color.New(color.Bold, color.FgRed).SprintFunc()
	BoldYellow  = color.New(color.Bold, color.FgYellow).SprintFunc()
	BoldMagenta = color.New(color.Bold, color.FgMagenta).SprintFunc()
	BoldWhite   = color.New(color.Bold, color.FgWhite).SprintFunc()
)

// Disable turns off all color output.
func Disable() {
	color.NoColor = true
}

// PrintLogo renders the colored prosched banner to stderr.
func PrintLogo() {
	w := os.Stderr
	frame := color.New(color.FgCyan)
	brand := color.New(color.Bold, color.FgMagenta)
	tag := color.New(color.Faint)

	fmt.Fprintln(w)
	frame.Fprintln(w, "   +============================+")
	brand.Fprintln(w, "   |  P R O - S C H E D U L E R |")
	frame.Fprintln(w, "   +============================+")
	tag.Fprintln(w, "   Critical path scheduling")
	fmt.Fprintln(w)
}

// HealthIcon returns a colored icon for a task health status string.
func HealthIcon(health string) string {
	switch health {
	case "healthy":
		return Green("✓")
	case "forced":
		return Magenta("◆")
	case "at-risk":
		return Yellow("⚠")
	case "critical-failure":
		return Red("✗")
	case "blocked":
		return BoldRed("⊘")
	default:
		return Dim("◌")
	}
}

// CriticalMark returns the marker shown next to critical-path tasks.
func CriticalMark(critical bool) string {
	if critical {
		return BoldYellow("⚡")
	}
	return " "
}
