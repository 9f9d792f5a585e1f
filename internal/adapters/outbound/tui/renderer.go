package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/integradaneuropsicologia/ETDAH-II/internal/domain"
)

// ── Warm palette ──
var (
	accent  = lipgloss.Color("#D97706") // amber
	fg      = lipgloss.Color("#E8E6E3") // warm light gray
	dim     = lipgloss.Color("#6B7280") // muted gray
	faint   = lipgloss.Color("#3F3F46") // very dim
	success = lipgloss.Color("#22C55E") // green
	danger  = lipgloss.Color("#EF4444") // red
	warning = lipgloss.Color("#F59E0B") // amber-yellow
	info    = lipgloss.Color("#8B949E") // soft blue-gray
)

var (
	headerStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(accent).
			Align(lipgloss.Center)

	boxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(accent).
			Padding(1, 4).
			Align(lipgloss.Center).
			Width(68)

	// Higher scores mean more reported difficulty.
	classColors = map[domain.Classification]lipgloss.Color{
		domain.ClassInferior:      success,
		domain.ClassMediaInferior: lipgloss.Color("#A3E635"), // lime
		domain.ClassMedia:         info,
		domain.ClassMediaSuperior: warning,
		domain.ClassSuperior:      danger,
	}

	dimStyle      = lipgloss.NewStyle().Foreground(dim)
	faintStyle    = lipgloss.NewStyle().Foreground(faint)
	passStyle     = lipgloss.NewStyle().Foreground(success)
	failStyle     = lipgloss.NewStyle().Foreground(danger)
	warnStyle     = lipgloss.NewStyle().Foreground(warning)
	titleStyle    = lipgloss.NewStyle().Bold(true).Foreground(fg)
	areaNameStyle = lipgloss.NewStyle().Bold(true).Foreground(fg)
	separatorLine = faintStyle.Render(strings.Repeat("─", 64))
)

// RenderResult renders a scoring result: one line per area with its score,
// range bar and classification, followed by the total and any unanswered
// items.
func RenderResult(res *domain.ScoringResult) string {
	var b strings.Builder

	// ── Header ──
	title := headerStyle.Render("ETDAH-II")
	subtitle := dimStyle.Render("Escala de Transtorno do Déficit de Atenção e Hiperatividade")
	total := lipgloss.NewStyle().Bold(true).Foreground(accent).
		Render(fmt.Sprintf("Total geral: %d", res.Total))

	b.WriteString(boxStyle.Render(title + "\n" + subtitle + "\n\n" + total))
	b.WriteString("\n\n")

	// ── Areas ──
	for _, a := range res.Areas {
		renderArea(&b, a)
	}

	b.WriteString("\n")
	b.WriteString("  " + separatorLine)
	b.WriteString("\n\n")

	// ── Unanswered ──
	if missing := res.Unanswered(); len(missing) > 0 {
		ids := make([]string, len(missing))
		for i, id := range missing {
			ids[i] = fmt.Sprint(id)
		}
		b.WriteString("  " + warnStyle.Render(fmt.Sprintf("%d itens sem resposta", len(missing))))
		b.WriteString("  " + dimStyle.Render(strings.Join(ids, ", ")) + "\n")
	} else {
		b.WriteString("  " + passStyle.Render("Todos os itens respondidos.") + "\n")
	}

	b.WriteString("\n")
	return b.String()
}

func renderArea(b *strings.Builder, r domain.AreaResult) {
	area, _ := domain.AreaByID(r.Area)
	color := classColor(r.Classification)

	name := areaNameStyle.Render(padRight(area.Title, 34))
	score := lipgloss.NewStyle().Bold(true).Foreground(color).Render(fmt.Sprintf("%3d", r.Score))
	bar := coloredBar(r.Score-area.MinScore(), area.MaxScore()-area.MinScore(), 20, color)
	class := lipgloss.NewStyle().Foreground(color).Render(string(r.Classification))

	fmt.Fprintf(b, "  %s %s  %s  %s\n", name, bar, score, class)
	fmt.Fprintf(b, "    %s\n", faintStyle.Render(r.Description))
}

// coloredBar fills width cells proportionally to value/span.
func coloredBar(value, span, width int, color lipgloss.Color) string {
	filled := 0
	if span > 0 {
		filled = max(0, min(value*width/span, width))
	}
	empty := width - filled

	filledStr := lipgloss.NewStyle().Foreground(color).Render(strings.Repeat("█", filled))
	emptyStr := lipgloss.NewStyle().Foreground(faint).Render(strings.Repeat("░", empty))
	return filledStr + emptyStr
}

func classColor(c domain.Classification) lipgloss.Color {
	if col, ok := classColors[c]; ok {
		return col
	}
	return fg
}

func padRight(s string, width int) string {
	w := lipgloss.Width(s)
	if w >= width {
		return s
	}
	return s + strings.Repeat(" ", width-w)
}

// RenderHistory formats the local submission log for terminal output.
func RenderHistory(entries []domain.SubmissionEntry) string {
	if len(entries) == 0 {
		return "  " + dimStyle.Render("Nenhuma submissão registrada.") + "\n"
	}

	var b strings.Builder
	b.WriteString("\n")
	b.WriteString("  " + titleStyle.Render("Submissões") + "\n")
	b.WriteString("  " + faintStyle.Render(strings.Repeat("─", 50)) + "\n\n")

	for i, e := range entries {
		day := e.SubmittedAt
		if len(day) > 10 {
			day = day[:10]
		}

		line := fmt.Sprintf("  %s  %s  %s",
			dimStyle.Render(padRight(day, 10)),
			faintStyle.Render(padRight(e.CPF, 11)),
			titleStyle.Render(fmt.Sprintf("total %d", e.Total)),
		)

		for _, a := range domain.Areas() {
			if c, ok := e.Classes[a.ID]; ok {
				line += "  " + lipgloss.NewStyle().Foreground(classColor(c)).Render(string(c))
			}
		}

		if i > 0 {
			diff := e.Total - entries[i-1].Total
			if diff > 0 {
				line += "  " + failStyle.Render(fmt.Sprintf("↑%d", diff))
			} else if diff < 0 {
				line += "  " + passStyle.Render(fmt.Sprintf("↓%d", -diff))
			}
		}

		b.WriteString(line)
		b.WriteString("\n")
	}

	return b.String()
}
