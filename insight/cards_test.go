package insight

import (
	"strings"
	"testing"

	"pnl/types"

	"github.com/charmbracelet/lipgloss"
	xansi "github.com/charmbracelet/x/ansi"
)

func TestSummaryCardsSampleProducts(t *testing.T) {
	cards := SummaryCards(types.Summarize(types.SampleProducts()))
	if len(cards) != 4 {
		t.Fatalf("expected 4 cards, got %d", len(cards))
	}

	if cards[0].Value != "3" {
		t.Fatalf("expected product count 3, got %q", cards[0].Value)
	}
	if cards[1].Sub != "low" {
		t.Fatalf("expected low average margin health, got %q", cards[1].Sub)
	}
	if cards[2].Value != "Aluminum Suncatcher " {
		t.Fatalf("expected best product name cut to 20 runes, got %q", cards[2].Value)
	}
	if !strings.HasSuffix(cards[2].Sub, "% margin") {
		t.Fatalf("expected best product margin subtitle, got %q", cards[2].Sub)
	}
	if cards[3].Value != "1" || cards[3].Sub != "/ 3 products" {
		t.Fatalf("unexpected losing card: %+v", cards[3])
	}
}

func TestSummaryCardsEmpty(t *testing.T) {
	cards := SummaryCards(types.Summarize(nil))
	if cards[1].Value != "0.00%" {
		t.Fatalf("expected 0.00%% average margin, got %q", cards[1].Value)
	}
	if cards[2].Value != "N/A" || cards[2].Sub != "" {
		t.Fatalf("expected N/A best product, got %+v", cards[2])
	}
}

func TestSummaryCardsUnnamedBest(t *testing.T) {
	cards := SummaryCards(types.Summarize([]types.Product{{SellingPrice: 10, BaseCost: 1}}))
	if cards[2].Value != "Untitled" {
		t.Fatalf("expected placeholder for unnamed best product, got %q", cards[2].Value)
	}
}

func TestRenderSummaryCardsFitsWidth(t *testing.T) {
	s := types.Summarize(types.SampleProducts())
	for _, width := range []int{64, 80, 120} {
		out := RenderSummaryCards(s, width)
		for i, line := range strings.Split(out, "\n") {
			if got := lipgloss.Width(line); got > width {
				t.Fatalf("w%d line %d exceeds width (%d): %q", width, i+1, got, line)
			}
		}
		plain := xansi.Strip(out)
		if !strings.Contains(plain, "AVG MARGIN") || !strings.Contains(plain, "LOSING") {
			t.Fatalf("w%d expected card labels, got:\n%s", width, plain)
		}
	}
}
