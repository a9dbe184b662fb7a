package tui

import (
	"image"
	"image/color"
	"io"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/charmbracelet/log"
	"github.com/disintegration/imaging"

	"github.com/vovakirdan/tui-kiosk/internal/core"
)

func solidImage(w, h int, c color.Color) image.Image {
	img := image.NewNRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.Set(x, y, c)
		}
	}
	return img
}

func saveImage(t *testing.T, img image.Image) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "icon.png")
	if err := imaging.Save(img, path); err != nil {
		t.Fatalf("save image: %v", err)
	}
	return path
}

func newTestRenderer() *Renderer {
	return &Renderer{Theme: DefaultTheme(), Assets: NewAssets(log.New(io.Discard))}
}

func newRenderController(t *testing.T, entries []core.AppEntry) *core.Controller {
	t.Helper()
	ctrl, err := core.NewController(entries, 2, 3, &recordingLauncher{})
	if err != nil {
		t.Fatalf("NewController: %v", err)
	}
	return ctrl
}

// On a 60x20 screen a 2x3 grid has 15x7 tiles; the first is at (3, 2) and
// its padded icon area is 13x5 at (4, 3).

func TestComposeTileFills(t *testing.T) {
	r := newTestRenderer()
	ctrl := newRenderController(t, kioskEntries)
	s := core.NewScreen(60, 20)

	r.Compose(s, ctrl, epoch)

	if got := s.GetCell(4, 3).BG; got != r.Theme.SelectionFill {
		t.Errorf("selected tile BG = %+v, expected %+v", got, r.Theme.SelectionFill)
	}
	if got := s.GetCell(4+19, 3).BG; got != r.Theme.FaintFill {
		t.Errorf("second tile BG = %+v, expected %+v", got, r.Theme.FaintFill)
	}

	// Tiles beyond the entry count stay empty: the 5th and 6th slots.
	tinted := r.Theme.Backdrop.Blend(core.Black, TintAlpha/255.0)
	if got := s.GetCell(4+19, 3+8).BG; got != tinted {
		t.Errorf("unoccupied slot BG = %+v, expected tinted backdrop %+v", got, tinted)
	}
}

func TestComposeLabelFallback(t *testing.T) {
	r := newTestRenderer()
	entries := []core.AppEntry{{ID: "A very long application name", Command: "x", Icon: "/missing/icon.png"}}
	ctrl := newRenderController(t, entries)
	s := core.NewScreen(60, 20)

	r.Compose(s, ctrl, epoch)

	row := s.Row(2 + 7/2)
	if !strings.Contains(row, "A very long") || !strings.Contains(row, "…") || strings.Contains(row, "application") {
		t.Errorf("label row = %q, expected a truncated name", row)
	}
	if !r.Assets.failed["/missing/icon.png"] {
		t.Error("missing icon should be remembered as failed")
	}
}

func TestComposeIcon(t *testing.T) {
	r := newTestRenderer()
	red := core.RGB{R: 255}
	icon := saveImage(t, solidImage(10, 10, color.NRGBA{R: 255, A: 255}))
	ctrl := newRenderController(t, []core.AppEntry{{ID: "Red", Command: "x", Icon: icon}})
	s := core.NewScreen(60, 20)

	r.Compose(s, ctrl, epoch)

	// 10x10 px fits unscaled: 10 columns by 5 rows, centred at x=5.
	c := s.GetCell(9, 5)
	if c.Rune != '▀' || c.FG != red || c.BG != red {
		t.Errorf("icon cell = %+v, expected red half block", c)
	}
	if s.GetCell(4, 5).FG == red {
		t.Error("icon should be centred within the padded area")
	}
	if strings.Contains(s.String(), "Red") {
		t.Error("label should not be drawn when the icon loads")
	}
}

func TestComposeFlash(t *testing.T) {
	r := newTestRenderer()
	ctrl := newRenderController(t, kioskEntries)
	if err := ctrl.Tick(core.KeySnapshot{Buttons: core.Buttons{Activate: true}}, core.Buttons{}, true, epoch); err != nil {
		t.Fatalf("Tick: %v", err)
	}
	s := core.NewScreen(60, 20)

	r.Compose(s, ctrl, epoch)
	full := r.Theme.SelectionFill.Blend(core.White, FlashAlpha/255.0)
	if got := s.GetCell(4, 3).BG; got != full {
		t.Errorf("flash at start = %+v, expected %+v", got, full)
	}

	r.Compose(s, ctrl, epoch.Add(125*time.Millisecond))
	half := r.Theme.SelectionFill.Blend(core.White, FlashAlpha*0.5/255)
	if got := s.GetCell(4, 3).BG; got != half {
		t.Errorf("flash halfway = %+v, expected %+v", got, half)
	}

	r.Compose(s, ctrl, epoch.Add(300*time.Millisecond))
	if got := s.GetCell(4, 3).BG; got != r.Theme.SelectionFill {
		t.Errorf("flash after expiry = %+v, expected plain selection fill", got)
	}
}

func TestComposeBackground(t *testing.T) {
	r := newTestRenderer()
	r.Background = saveImage(t, solidImage(64, 32, color.NRGBA{G: 200, A: 255}))
	ctrl := newRenderController(t, kioskEntries)
	s := core.NewScreen(60, 20)

	r.Compose(s, ctrl, epoch)

	want := core.RGB{G: 200}.Blend(core.Black, TintAlpha/255.0)
	if got := s.GetCell(0, 19).BG; got != want {
		t.Errorf("background cell = %+v, expected tinted green %+v", got, want)
	}
}

func TestComposeClock(t *testing.T) {
	r := newTestRenderer()
	r.ClockFormat = "03:04 PM"
	ctrl := newRenderController(t, kioskEntries)
	s := core.NewScreen(60, 20)

	r.Compose(s, ctrl, epoch)

	if row := s.Row(1); !strings.HasSuffix(row, "09:30 PM  ") {
		t.Errorf("clock row = %q, expected right-aligned 09:30 PM", row)
	}
}

func TestRenderScreenKeepsText(t *testing.T) {
	s := core.NewScreen(12, 2)
	s.DrawText(1, 0, "Hello", core.White)
	s.DrawText(0, 1, "World", core.RGB{R: 255})

	out := RenderScreen(s)
	if !strings.Contains(out, "Hello") || !strings.Contains(out, "World") {
		t.Errorf("RenderScreen lost text: %q", out)
	}
	if strings.Count(out, "\n") != 1 {
		t.Errorf("RenderScreen should join rows with one newline, got %q", out)
	}
}

func TestOverBlendsAlpha(t *testing.T) {
	base := core.RGB{R: 0, G: 0, B: 200}

	if got := over(color.NRGBA{R: 255, A: 255}, base); got != (core.RGB{R: 255}) {
		t.Errorf("opaque = %+v", got)
	}
	if got := over(color.NRGBA{A: 0}, base); got != base {
		t.Errorf("transparent = %+v, expected base", got)
	}
}
