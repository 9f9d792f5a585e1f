package tui_test

import (
	"strings"
	"testing"
	"time"

	"github.com/integradaneuropsicologia/ETDAH-II/internal/adapters/outbound/tui"
	"github.com/integradaneuropsicologia/ETDAH-II/internal/domain"
	"github.com/stretchr/testify/assert"
)

func TestRenderItems_ListsEveryItem(t *testing.T) {
	output := tui.RenderItems()
	for _, it := range domain.Items() {
		assert.Contains(t, output, it.Text)
	}
	assert.Equal(t, len(domain.InvertedItemIDs()), strings.Count(output, "(R)")-1, "one tag per reversed item plus the legend")
}

func TestRenderCutpoints(t *testing.T) {
	output := tui.RenderCutpoints()
	assert.Contains(t, output, "15-24")
	assert.Contains(t, output, "≥ 59")
	assert.Contains(t, output, "12-12")
	assert.Contains(t, output, "≥ 17")
}

func TestRenderReceipt(t *testing.T) {
	r := &domain.SubmissionReceipt{
		ResultID:    "12345678901_ETDAH_II_1",
		SubmittedAt: time.Now(),
		DurationSec: 312,
		Result:      *sampleResult(),
		PortalURL:   "https://example.org/?token=abc",
	}
	output := tui.RenderReceipt(r)
	assert.Contains(t, output, "Respostas enviadas.")
	assert.Contains(t, output, "12345678901_ETDAH_II_1")
	assert.Contains(t, output, "312s")
	assert.Contains(t, output, "token=abc")
}
