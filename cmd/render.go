package cmd

import (
	"fmt"
	"strings"

	"github.com/fatih/color"
)

// printBoxedHeader prints the title in a Unicode box with a fixed width.
func printBoxedHeader(title string) {
	width := 40
	cyanBold := color.New(color.FgCyan, color.Bold).SprintFunc()
	border := strings.Repeat("═", width)
	fmt.Println(cyanBold("╔" + border + "╗"))
	fmt.Println(cyanBold("║" + centerPad(title, width) + "║"))
	fmt.Println(cyanBold("╚" + border + "╝"))
}

// centerPad centers the string and pads it to exactly the given width.
func centerPad(s string, width int) string {
	if len(s) >= width {
		return s
	}
	padding := (width - len(s)) / 2
	return strings.Repeat(" ", padding) + s + strings.Repeat(" ", width-len(s)-padding)
}

// printMetric prints a label and value using bold yellow for the label.
func printMetric(label string, value interface{}) {
	yellowBold := color.New(color.FgYellow, color.Bold).SprintFunc()
	fmt.Printf("  %s: %v\n", yellowBold(label), value)
}

var colorAttributes = map[string]color.Attribute{
	"white":      color.FgWhite,
	"red":        color.FgRed,
	"green":      color.FgGreen,
	"yellow":     color.FgYellow,
	"blue":       color.FgBlue,
	"magenta":    color.FgMagenta,
	"cyan":       color.FgCyan,
	"hi-red":     color.FgHiRed,
	"hi-green":   color.FgHiGreen,
	"hi-blue":    color.FgHiBlue,
	"hi-yellow":  color.FgHiYellow,
	"hi-magenta": color.FgHiMagenta,
	"hi-cyan":    color.FgHiCyan,
}

// sprintColored returns a SprintFunc for the named color, white when unknown.
func sprintColored(name string) func(a ...interface{}) string {
	attr, ok := colorAttributes[name]
	if !ok {
		attr = color.FgWhite
	}
	return color.New(attr).SprintFunc()
}
