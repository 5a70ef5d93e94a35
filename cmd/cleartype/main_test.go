package main

import (
	"image"
	"image/color"
	"path/filepath"
	"testing"

	"github.com/gogpu/cleartype"
	"github.com/gogpu/cleartype/coverage"
	"github.com/gogpu/cleartype/gamma"
	"github.com/gogpu/cleartype/shape"
)

func testOptions() renderOptions {
	return renderOptions{
		text:    "Hxg",
		size:    20,
		profile: "cleartype",
		config:  cleartype.DefaultConfig(),
		scale:   1,
		zoom:    1,
	}
}

func TestRenderImage(t *testing.T) {
	for _, profile := range []string{"cleartype", "gdi", "grayscale"} {
		t.Run(profile, func(t *testing.T) {
			o := testOptions()
			o.profile = profile
			img, err := renderImage(o)
			if err != nil {
				t.Fatalf("renderImage() error = %v", err)
			}
			white := color.RGBA{R: 0xFF, G: 0xFF, B: 0xFF, A: 0xFF}
			if got := img.RGBAAt(0, 0); got != white {
				t.Errorf("margin pixel = %v, want white", got)
			}
			dark := 0
			b := img.Bounds()
			for y := b.Min.Y; y < b.Max.Y; y++ {
				for x := b.Min.X; x < b.Max.X; x++ {
					if img.RGBAAt(x, y).G < 0x40 {
						dark++
					}
				}
			}
			if dark == 0 {
				t.Error("no dark pixels in rendered text")
			}
		})
	}
}

func TestRenderImageZoom(t *testing.T) {
	o := testOptions()
	small, err := renderImage(o)
	if err != nil {
		t.Fatal(err)
	}
	o.zoom = 3
	big, err := renderImage(o)
	if err != nil {
		t.Fatal(err)
	}
	if big.Bounds().Dx() != 3*small.Bounds().Dx() || big.Bounds().Dy() != 3*small.Bounds().Dy() {
		t.Errorf("zoomed %v, base %v", big.Bounds(), small.Bounds())
	}
	if big.RGBAAt(5, 7) != small.RGBAAt(1, 2) {
		t.Error("zoom is not nearest-neighbor")
	}
}

// countingSampler counts rasterizations of the wrapped sampler.
type countingSampler struct {
	coverage.Sampler
	coverageCalls int
}

func (s *countingSampler) Coverage(r *coverage.GlyphRun, b coverage.Bounds, rm coverage.RenderMode, mm coverage.MeasureMode) (*coverage.Buffer, error) {
	s.coverageCalls++
	return s.Sampler.Coverage(r, b, rm, mm)
}

func TestComposeRendersOnce(t *testing.T) {
	f, err := loadFont("")
	if err != nil {
		t.Fatal(err)
	}
	run, err := shape.New().Shape(f, "Hxg", 20, coverage.Point{})
	if err != nil {
		t.Fatal(err)
	}
	s := &countingSampler{Sampler: coverage.NewOutlineSampler()}
	img, err := compose(cleartype.NewRenderer(s), run)
	if err != nil {
		t.Fatalf("compose() error = %v", err)
	}
	if s.coverageCalls != 1 {
		t.Errorf("Coverage called %d times, want 1", s.coverageCalls)
	}

	res, err := cleartype.NewRenderer(coverage.NewOutlineSampler()).Render(run)
	if err != nil {
		t.Fatal(err)
	}
	defer res.Release()
	want := image.Pt(res.Bounds.Width()+2*margin, res.Bounds.Height()+2*margin)
	if got := img.Bounds().Size(); got != want {
		t.Errorf("image size = %v, want %v", got, want)
	}
	if got := img.RGBAAt(margin+1, margin+1); got != res.Bitmap.RGBAAt(1, 1) {
		t.Errorf("pixel at margin offset = %v, want %v", got, res.Bitmap.RGBAAt(1, 1))
	}
}

func TestRenderImageErrors(t *testing.T) {
	o := testOptions()
	o.profile = "sepia"
	if _, err := renderImage(o); err == nil {
		t.Error("unknown profile accepted")
	}

	o = testOptions()
	o.fontPath = filepath.Join(t.TempDir(), "missing.ttf")
	if _, err := renderImage(o); err == nil {
		t.Error("missing font accepted")
	}

	o = testOptions()
	o.text = "   "
	if _, err := renderImage(o); err == nil {
		t.Error("blank text rendered")
	}
}

func TestLUTRows(t *testing.T) {
	tbl := gamma.Standard()
	rows := lutRows(&tbl, 16)
	// Header, 0..240 by 16, then 255.
	if len(rows) != 1+16+1 {
		t.Fatalf("len(rows) = %d, want 18", len(rows))
	}
	if rows[0][0] != "coverage" {
		t.Errorf("header = %v", rows[0])
	}
	last := rows[len(rows)-1]
	if last[0] != "255" || last[2] != "255" || last[4] != "7" {
		t.Errorf("last row = %v, want coverage 255, G 255, ink 7", last)
	}
	if first := rows[1]; first[1] != "0" || first[4] != "255" {
		t.Errorf("first row = %v", first)
	}

	if got := len(lutRows(&tbl, 0)); got != 257 {
		t.Errorf("step 0 rows = %d, want 257", got)
	}
	if got := len(lutRows(&tbl, 85)); got != 1+4 {
		t.Errorf("step 85 rows = %d, want 5", got)
	}
}

func TestProfileByName(t *testing.T) {
	cfg := cleartype.DefaultConfig()
	for name, want := range map[string]cleartype.RenderProfile{
		"":          cleartype.ProfileClearType,
		"cleartype": cleartype.ProfileClearType,
		"gdi":       cleartype.ProfileGDIClassic,
		"gray":      cleartype.ProfileGrayscale,
	} {
		p, err := profileByName(name, cfg)
		if err != nil || p.Kind != want {
			t.Errorf("profileByName(%q) = %v, %v; want %v", name, p.Kind, err, want)
		}
	}
}
