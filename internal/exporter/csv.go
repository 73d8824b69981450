package exporter

import (
	"strings"

	"tenderpulse/pkg/contracts/domain"
)

// ToDelimitedText renders the export as comma-separated text: an unquoted
// header line, then one line per record with every field wrapped in double
// quotes. Quoting is wrapping only, no embedded-quote escaping; the format
// guarantees one quoted field per column for round-trip consumers.
func ToDelimitedText(rows []domain.ExportRow) string {
	var b strings.Builder
	b.WriteString(strings.Join(Headers, ","))
	for _, row := range rows {
		b.WriteByte('\n')
		for i, value := range Values(row) {
			if i > 0 {
				b.WriteByte(',')
			}
			b.WriteByte('"')
			b.WriteString(value)
			b.WriteByte('"')
		}
	}
	return b.String()
}
