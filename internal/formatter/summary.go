// Package formatter renders console reports for a generated collection.
package formatter

import (
	"strconv"
	"strings"

	"github.com/mattn/go-runewidth"

	"steamcollection/internal/catalog"
	"steamcollection/internal/postman"
)

// FormatSummary renders a Markdown table listing each folder with its style
// and request count, followed by a totals row.
func FormatSummary(c *postman.Collection) string {
	table := [][]string{{"Interface", "Style", "Methods"}}

	for _, folder := range c.Item {
		table = append(table, []string{
			folder.Name,
			catalog.StyleOf(folder.Name).String(),
			strconv.Itoa(len(folder.Item)),
		})
	}

	table = append(table, []string{
		"Total (" + strconv.Itoa(len(c.Item)) + ")",
		"",
		strconv.Itoa(c.CountItems()),
	})

	return strings.Join(FormatTable(table), "\n")
}

// FormatTable pads rows into an aligned Markdown table. The first row is the
// header; a separator row is inserted after it. Widths use display width so
// CJK text lines up.
func FormatTable(table [][]string) []string {
	if len(table) == 0 {
		return nil
	}

	colCount := 0
	for _, row := range table {
		if len(row) > colCount {
			colCount = len(row)
		}
	}

	colWidths := make([]int, colCount)

	for _, row := range table {
		for i, cell := range row {
			if width := runewidth.StringWidth(cell); width > colWidths[i] {
				colWidths[i] = width
			}
		}
	}

	// Separator needs at least "---".
	for i := range colWidths {
		if colWidths[i] < 3 {
			colWidths[i] = 3
		}
	}

	result := make([]string, 0, len(table)+1)
	result = append(result, renderRow(table[0], colWidths))
	result = append(result, renderSeparator(colWidths))

	for _, row := range table[1:] {
		result = append(result, renderRow(row, colWidths))
	}

	return result
}

func renderRow(row []string, colWidths []int) string {
	var sb strings.Builder

	sb.WriteString("|")

	for j, width := range colWidths {
		content := ""
		if j < len(row) {
			content = row[j]
		}

		sb.WriteString(" ")
		sb.WriteString(runewidth.FillRight(content, width))
		sb.WriteString(" |")
	}

	return sb.String()
}

func renderSeparator(colWidths []int) string {
	var sb strings.Builder

	sb.WriteString("|")

	for _, width := range colWidths {
		sb.WriteString(" ")
		sb.WriteString(strings.Repeat("-", width))
		sb.WriteString(" |")
	}

	return sb.String()
}
