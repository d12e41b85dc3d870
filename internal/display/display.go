// Package display renders calculation results for the terminal:
// currency, percentage, and duration formatting plus bordered tables.
package display

import (
	"fmt"
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
)

// Currency formats an amount as dollars with thousands separators,
// e.g. 1234.5 becomes "$1,234.50".
func Currency(amount float64) string {
	// A non-finite amount has no decimal part to group.
	if math.IsNaN(amount) || math.IsInf(amount, 0) {
		return fmt.Sprintf("$%.2f", amount)
	}

	negative := amount < 0
	s := fmt.Sprintf("%.2f", amount)
	s = strings.TrimPrefix(s, "-")

	parts := strings.SplitN(s, ".", 2)
	grouped := groupThousands(parts[0])

	out := "$" + grouped + "." + parts[1]
	if negative {
		out = "-" + out
	}
	return out
}

// Percent formats a fractional rate as a percentage, e.g. 0.0525
// becomes "5.25%".
func Percent(rate float64) string {
	return fmt.Sprintf("%.2f%%", rate*100)
}

// Years formats a fractional year count, e.g. 2.75 becomes
// "2.75 years".
func Years(years float64) string {
	return fmt.Sprintf("%.2f years", years)
}

// KeyValue renders a single "label: value" result line.
func KeyValue(label, value string) string {
	return LabelStyle.Render(label+": ") + ValueStyle.Render(value)
}

// Table renders headers and rows as a rounded bordered table.
func Table(headers []string, rows [][]string) string {
	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(colorMuted)).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return headerStyle
			}
			return cellStyle
		}).
		Headers(headers...).
		Rows(rows...)
	return t.Render()
}

func groupThousands(digits string) string {
	n := len(digits)
	if n <= 3 {
		return digits
	}
	var b strings.Builder
	rem := n % 3
	if rem > 0 {
		b.WriteString(digits[:rem])
	}
	for i := rem; i < n; i += 3 {
		if b.Len() > 0 {
			b.WriteByte(',')
		}
		b.WriteString(digits[i : i+3])
	}
	return b.String()
}
