package cmd

import (
	"fmt"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/dmarinho0/androsim/internal/storage"
)

var calendarRegimen string

// calendarCmd prints a month grid. Days with administrations are colored per
// compound/blend, with a legend below the grid.
var calendarCmd = &cobra.Command{
	Use:   "calendar [month] [year]",
	Short: "Display a calendar of administration days with a color legend",
	Args:  cobra.RangeArgs(0, 2),
	RunE: func(cmd *cobra.Command, args []string) error {
		// Determine month and year (default to current month/year).
		now := time.Now()
		month := now.Month()
		year := now.Year()
		if len(args) >= 1 {
			m, err := strconv.Atoi(args[0])
			if err != nil || m < 1 || m > 12 {
				return fmt.Errorf("invalid month: %s", args[0])
			}
			month = time.Month(m)
		}
		if len(args) == 2 {
			y, err := strconv.Atoi(args[1])
			if err != nil || y < 1 {
				return fmt.Errorf("invalid year: %s", args[1])
			}
			year = y
		}

		firstOfMonth := time.Date(year, month, 1, 0, 0, 0, 0, time.UTC)
		lastOfMonth := firstOfMonth.AddDate(0, 1, -1)

		st, err := storage.NewStorage()
		if err != nil {
			return err
		}
		reg, err := st.GetRegimenByName(calendarRegimen)
		if err != nil {
			return err
		}

		admins, _ := regimenAdministrations(st, reg, firstOfMonth, lastOfMonth.AddDate(0, 0, 1))

		// Group administrations by day and collect the distinct labels.
		adminsByDay := make(map[int][]administration)
		labelSet := make(map[string]bool)
		for _, a := range admins {
			day := a.at.Day()
			adminsByDay[day] = append(adminsByDay[day], a)
			labelSet[a.label] = true
		}

		// Define a fixed palette of colors.
		colorPalette := []color.Attribute{
			color.FgRed, color.FgGreen, color.FgYellow,
			color.FgBlue, color.FgMagenta, color.FgCyan,
		}
		labels := make([]string, 0, len(labelSet))
		for label := range labelSet {
			labels = append(labels, label)
		}
		sort.Strings(labels)
		labelColors := make(map[string]func(a ...interface{}) string)
		for i, label := range labels {
			labelColors[label] = color.New(colorPalette[i%len(colorPalette)]).SprintFunc()
		}

		// Print the calendar header.
		header := fmt.Sprintf("%s %d", month.String(), year)
		fmt.Println(centerText(header, 20))
		fmt.Println("Su Mo Tu We Th Fr Sa")

		weekday := int(firstOfMonth.Weekday())
		for i := 0; i < weekday; i++ {
			fmt.Print("   ")
		}

		for day := 1; day <= lastOfMonth.Day(); day++ {
			dayStr := fmt.Sprintf("%2d", day)
			if dayAdmins, has := adminsByDay[day]; has {
				if colFunc, ok := labelColors[dayAdmins[0].label]; ok {
					dayStr = colFunc(dayStr + "*")
				}
			}
			fmt.Printf("%s ", dayStr)
			weekday++
			if weekday%7 == 0 {
				fmt.Println()
			}
		}
		fmt.Print("\n\n")

		fmt.Println("Legend:")
		for _, label := range labels {
			fmt.Printf("  %s: %s\n", labelColors[label]("██"), label)
		}

		return nil
	},
}

// centerText centers the given string in a field of the specified width.
func centerText(s string, width int) string {
	if len(s) >= width {
		return s
	}
	padding := (width - len(s)) / 2
	return strings.Repeat(" ", padding) + s
}

func init() {
	rootCmd.AddCommand(calendarCmd)
	calendarCmd.Flags().StringVarP(&calendarRegimen, "regimen", "r", "", "Regimen name (required)")
	calendarCmd.MarkFlagRequired("regimen")
}
