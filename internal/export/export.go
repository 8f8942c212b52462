// Package export renders filtered order sets into downloadable report
// formats. Every function is a pure transform of its input.
package export

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"strconv"
	"strings"

	"github.com/mhdasif123/SipandSnack/internal/domain"
)

const dateLayout = "2006-01-02 15:04:05"

// Header is the column order shared by both export formats.
var Header = []string{"Employee", "Tea", "Snack", "Amount", "Date"}

// CSV renders orders as comma-separated text with a header row. Amounts are
// formatted to two decimals and dates as absolute timestamps, so a re-parse
// recovers the same values.
func CSV(orders []domain.Order) (string, error) {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)
	if err := w.Write(Header); err != nil {
		return "", fmt.Errorf("write header: %w", err)
	}
	for _, o := range orders {
		if err := w.Write(row(o)); err != nil {
			return "", fmt.Errorf("write row: %w", err)
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return "", fmt.Errorf("flush csv: %w", err)
	}
	return buf.String(), nil
}

// PrintableReport renders a monospace table with a title line naming the
// date range, suitable for printing.
func PrintableReport(orders []domain.Order, from, to string) string {
	rows := make([][]string, 0, len(orders))
	for _, o := range orders {
		rows = append(rows, row(o))
	}

	widths := make([]int, len(Header))
	for i, h := range Header {
		widths[i] = len(h)
	}
	for _, r := range rows {
		for i, cell := range r {
			if len(cell) > widths[i] {
				widths[i] = len(cell)
			}
		}
	}

	var b strings.Builder
	fmt.Fprintf(&b, "Sip & Snack Order Report (%s to %s)\n\n", from, to)
	writeLine(&b, Header, widths)
	for i, w := range widths {
		if i > 0 {
			b.WriteString("  ")
		}
		b.WriteString(strings.Repeat("-", w))
	}
	b.WriteString("\n")
	for _, r := range rows {
		writeLine(&b, r, widths)
	}
	return b.String()
}

// Filename builds the download name the report screen offers.
func Filename(from, to, ext string) string {
	return fmt.Sprintf("sip-and-snack-orders-%s_to_%s.%s", from, to, ext)
}

func row(o domain.Order) []string {
	return []string{
		o.EmployeeName,
		o.Tea,
		o.Snack,
		strconv.FormatFloat(o.Amount, 'f', 2, 64),
		o.OrderDate.Format(dateLayout),
	}
}

func writeLine(b *strings.Builder, cells []string, widths []int) {
	for i, cell := range cells {
		if i > 0 {
			b.WriteString("  ")
		}
		if i == len(cells)-1 {
			// The last column carries no trailing padding.
			b.WriteString(cell)
			continue
		}
		fmt.Fprintf(b, "%-*s", widths[i], cell)
	}
	b.WriteString("\n")
}
