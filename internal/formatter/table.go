package formatter

import (
	"strings"

	"github.com/mattn/go-runewidth"

	"apiextract/pkg/utils"
)

// minColumnWidth keeps the separator row at least "---".
const minColumnWidth = 3

// Table renders a markdown table whose columns are padded to the widest cell.
// Widths are display widths, so CJK and accented text line up in a terminal.
// Whitespace runs inside cells collapse to one space so a cell never breaks its row.
// Pipes inside cells are escaped and rows shorter than the header are padded.
func Table(header []string, rows [][]string) []string {
	colCount := len(header)
	for _, row := range rows {
		if len(row) > colCount {
			colCount = len(row)
		}
	}

	if colCount == 0 {
		return nil
	}

	table := make([][]string, 0, len(rows)+1)
	table = append(table, escapeCells(header))

	for _, row := range rows {
		table = append(table, escapeCells(row))
	}

	colWidths := make([]int, colCount)

	for _, row := range table {
		for i, cell := range row {
			if width := runewidth.StringWidth(cell); width > colWidths[i] {
				colWidths[i] = width
			}
		}
	}

	for i := range colWidths {
		if colWidths[i] < minColumnWidth {
			colWidths[i] = minColumnWidth
		}
	}

	result := make([]string, 0, len(table)+1)
	result = append(result, renderRow(table[0], colWidths))

	separator := make([]string, colCount)
	for i, w := range colWidths {
		separator[i] = strings.Repeat("-", w)
	}

	result = append(result, renderRow(separator, colWidths))

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

func escapeCells(row []string) []string {
	helper := utils.NewStringHelper()

	cells := make([]string, len(row))
	for i, cell := range row {
		cells[i] = strings.ReplaceAll(helper.NormalizeWhitespace(cell), "|", `\|`)
	}

	return cells
}
