package tui

import (
	"strings"
	"time"
	"unicode/utf8"
)

const uiDivider = "──────────────────────────────────────────────────────"

// renderPage frames data under a title. An empty body is shown as a dash.
func renderPage(title, data, footer string) string {
	var b strings.Builder

	b.WriteString(titleStyle.Render(title))
	b.WriteString("\n")
	b.WriteString(uiDivider)
	b.WriteString("\n")

	if strings.TrimSpace(data) != "" {
		for _, line := range strings.Split(strings.TrimRight(data, "\n"), "\n") {
			b.WriteString("  ")
			b.WriteString(line)
			b.WriteString("\n")
		}
	} else {
		b.WriteString("  -\n")
	}

	if strings.TrimSpace(footer) != "" {
		b.WriteString(uiDivider)
		b.WriteString("\n")
		b.WriteString(helpStyle.Render(footer))
		b.WriteString("\n")
	}

	return b.String()
}

func field(label, value string) string {
	return labelStyle.Render(label) + value + "\n"
}

func valueOrDash(v string) string {
	if strings.TrimSpace(v) == "" {
		return "-"
	}
	return v
}

func valueOrNA(v string) string {
	v = strings.TrimSpace(v)
	if v == "" {
		return "N/A"
	}
	return v
}

func formatTime(t *time.Time) string {
	if t == nil || t.IsZero() {
		return "never"
	}
	return t.Local().Format(time.DateTime)
}

// fitText cuts v to at most max runes.
func fitText(v string, max int) string {
	if max <= 0 || utf8.RuneCountInString(v) <= max {
		return v
	}
	runes := []rune(v)
	if max <= 3 {
		return string(runes[:max])
	}
	return string(runes[:max-3]) + "..."
}
