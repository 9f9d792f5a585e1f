package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/integradaneuropsicologia/ETDAH-II/internal/domain"
)

var (
	sectionHeaderStyle = lipgloss.NewStyle().Bold(true).Foreground(accent)
	invertedTagStyle   = lipgloss.NewStyle().Foreground(warning)
	hintStyle          = lipgloss.NewStyle().Foreground(dim).Italic(true)
)

// RenderItems lists the 46 items grouped by area, marking reversed ones.
func RenderItems() string {
	var b strings.Builder

	for _, a := range domain.Areas() {
		b.WriteString("\n  " + sectionHeaderStyle.Render(a.Title) + "  ")
		b.WriteString(dimStyle.Render(fmt.Sprintf("itens %d-%d", a.First, a.Last)) + "\n")
		for id := a.First; id <= a.Last; id++ {
			it, _ := domain.ItemByID(id)
			tag := "   "
			if it.Inverted() {
				tag = invertedTagStyle.Render("(R)")
			}
			fmt.Fprintf(&b, "    %s %s %s\n", dimStyle.Render(fmt.Sprintf("%2d.", it.ID)), tag, it.Text)
		}
	}

	b.WriteString("\n  " + hintStyle.Render("(R) pontuação invertida: 7 - valor da resposta") + "\n\n")
	return b.String()
}

// RenderCutpoints shows the classification bands of every area.
func RenderCutpoints() string {
	var b strings.Builder

	b.WriteString("\n")
	for _, a := range domain.Areas() {
		b.WriteString("  " + sectionHeaderStyle.Render(a.Title) + "  ")
		b.WriteString(dimStyle.Render(fmt.Sprintf("%d-%d pontos", a.MinScore(), a.MaxScore())) + "\n")

		lower := a.MinScore()
		for i, c := range domain.Classifications() {
			upper := a.MaxScore()
			if i < len(a.Cutpoints) {
				upper = a.Cutpoints[i]
			}
			band := fmt.Sprintf("%d-%d", lower, upper)
			if i == len(a.Cutpoints) {
				band = fmt.Sprintf("≥ %d", lower)
			}
			style := lipgloss.NewStyle().Foreground(classColor(c))
			fmt.Fprintf(&b, "    %s %s\n", dimStyle.Render(padRight(band, 8)), style.Render(string(c)))
			lower = upper + 1
		}
		b.WriteString("\n")
	}
	return b.String()
}

// RenderReceipt summarises a persisted submission.
func RenderReceipt(r *domain.SubmissionReceipt) string {
	var b strings.Builder

	b.WriteString(RenderResult(&r.Result))
	b.WriteString("  " + passStyle.Render("Respostas enviadas.") + "\n")
	fmt.Fprintf(&b, "    %s %s\n", dimStyle.Render("result_id"), r.ResultID)
	fmt.Fprintf(&b, "    %s %ds\n", dimStyle.Render("duração  "), r.DurationSec)
	if r.PortalURL != "" {
		fmt.Fprintf(&b, "    %s %s\n", dimStyle.Render("portal   "), r.PortalURL)
	}
	b.WriteString("\n")
	return b.String()
}
