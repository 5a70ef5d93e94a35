// Package termview previews rendered text in a terminal. Every cell shows
// two vertically stacked pixels with an upper half block: the foreground
// is the top pixel and the background the bottom one.
package termview

import (
	"fmt"
	"image"
	"image/color"

	"github.com/gdamore/tcell/v2"
)

// halfBlock is U+2580 UPPER HALF BLOCK.
const halfBlock = '▀'

// MaxScale bounds the magnification the viewer offers.
const MaxScale = 8

// RenderFunc produces the image to show at the given magnification.
type RenderFunc func(scale int) (image.Image, error)

// Paint draws img onto s with its top-left pixel in cell (cx, cy). Pixels
// outside the screen are skipped.
func Paint(s tcell.Screen, img image.Image, cx, cy int) {
	sw, sh := s.Size()
	b := img.Bounds()
	for py := b.Min.Y; py < b.Max.Y; py += 2 {
		y := cy + (py-b.Min.Y)/2
		if y < 0 || y >= sh {
			continue
		}
		for px := b.Min.X; px < b.Max.X; px++ {
			x := cx + px - b.Min.X
			if x < 0 || x >= sw {
				continue
			}
			top := toColor(img.At(px, py))
			bottom := tcell.ColorReset
			if py+1 < b.Max.Y {
				bottom = toColor(img.At(px, py+1))
			}
			style := tcell.StyleDefault.Foreground(top).Background(bottom)
			s.SetContent(x, y, halfBlock, nil, style)
		}
	}
}

func toColor(c color.Color) tcell.Color {
	r, g, b, _ := c.RGBA()
	return tcell.NewRGBColor(int32(r>>8), int32(g>>8), int32(b>>8))
}

// Viewer runs an interactive preview: '+' and '-' change magnification,
// 'q', Escape or Ctrl-C quit.
type Viewer struct {
	screen tcell.Screen
	render RenderFunc
	scale  int
	status string
}

// New creates a viewer on an initialized screen.
func New(s tcell.Screen, render RenderFunc) *Viewer {
	return &Viewer{screen: s, render: render, scale: 1}
}

// Scale returns the current magnification.
func (v *Viewer) Scale() int { return v.scale }

// Run draws and handles events until the user quits or rendering fails.
// The caller owns the screen and calls Fini.
func (v *Viewer) Run() error {
	if err := v.draw(); err != nil {
		return err
	}
	for {
		switch ev := v.screen.PollEvent().(type) {
		case nil:
			return nil
		case *tcell.EventResize:
			v.screen.Sync()
		case *tcell.EventKey:
			if quit(ev) {
				return nil
			}
			if !v.zoom(ev) {
				continue
			}
		default:
			continue
		}
		if err := v.draw(); err != nil {
			return err
		}
	}
}

func quit(ev *tcell.EventKey) bool {
	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return true
	case tcell.KeyRune:
		return ev.Rune() == 'q'
	}
	return false
}

// zoom applies a magnification key and reports whether the scale changed.
func (v *Viewer) zoom(ev *tcell.EventKey) bool {
	if ev.Key() != tcell.KeyRune {
		return false
	}
	switch ev.Rune() {
	case '+', '=':
		if v.scale < MaxScale {
			v.scale++
			return true
		}
	case '-':
		if v.scale > 1 {
			v.scale--
			return true
		}
	}
	return false
}

func (v *Viewer) draw() error {
	img, err := v.render(v.scale)
	if err != nil {
		return err
	}
	v.screen.Clear()
	Paint(v.screen, img, 0, 1)
	v.status = statusLine(v.scale, img.Bounds())
	for i, r := range []rune(v.status) {
		v.screen.SetContent(i, 0, r, nil, tcell.StyleDefault)
	}
	v.screen.Show()
	return nil
}

func statusLine(scale int, b image.Rectangle) string {
	return fmt.Sprintf("x%d  %dx%d  +/- zoom, q quit", scale, b.Dx(), b.Dy())
}
