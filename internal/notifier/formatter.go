package notifier

import (
	"fmt"
	"strings"

	"btis/internal/composite"
	"btis/internal/model"
)

// FormatReport formats a computed composite index into a Telegram message.
func FormatReport(idx *model.CompositeIndex) string {
	var b strings.Builder

	b.WriteString(fmt.Sprintf("🌡 <b>BTIS</b> | %s\n\n", idx.GeneratedAt))

	if idx.BTIS != nil {
		b.WriteString(fmt.Sprintf("Score: <b>%.1f</b> / 100 (%s)\n\n", *idx.BTIS, composite.Band(idx.BTIS)))
	} else {
		b.WriteString("Score: n/a — no indicator produced a value\n\n")
	}

	b.WriteString("📈 <b>Components:</b>\n")
	for _, c := range idx.Components {
		if c.Normalized != nil {
			b.WriteString(fmt.Sprintf("  %s: %.1f (%s)\n", c.Name, *c.Normalized, c.Detail))
		} else {
			b.WriteString(fmt.Sprintf("  %s: unavailable (%s)\n", c.Name, c.Detail))
		}
	}

	return b.String()
}
