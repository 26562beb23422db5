package log

import (
	"strings"
	"testing"

	"github.com/charmbracelet/bubbles/viewport"
)

func TestRenderBeforeLoggerReady(t *testing.T) {
	vp := viewport.New(80, 10)
	out := Render(80, 40, false, "|", vp)

	if !strings.Contains(out, "Session Log") {
		t.Error("missing panel title")
	}
	if !strings.Contains(out, "starting logger") {
		t.Error("missing startup notice")
	}
}

func TestRenderShowsLogContent(t *testing.T) {
	vp := viewport.New(80, 10)
	vp.SetContent("wallet connected")

	out := Render(80, 40, true, "", vp)
	if !strings.Contains(out, "wallet connected") {
		t.Error("log content not rendered")
	}
	if strings.Contains(out, "starting logger") {
		t.Error("startup notice shown after ready")
	}
}

func TestPanelHeightBounds(t *testing.T) {
	tests := []struct {
		screen int
		want   int
	}{
		{10, 3},  // tiny terminal: a third of the screen wins
		{40, 13}, // a third of the screen, under the cap
		{200, 15}, // cap
	}
	for _, tt := range tests {
		if got := panelHeight(tt.screen); got != tt.want {
			t.Errorf("panelHeight(%d) = %d, want %d", tt.screen, got, tt.want)
		}
	}
}
