package main

import (
	"flag"
	"fmt"
	"image"
	"image/color"
	"image/png"
	"log"
	"os"

	"golang.org/x/image/draw"
	"golang.org/x/image/font/gofont/goregular"

	"github.com/gogpu/cleartype"
	"github.com/gogpu/cleartype/compositor"
	"github.com/gogpu/cleartype/coverage"
	"github.com/gogpu/cleartype/shape"
)

// margin is the paper border around rendered text, in pixels.
const margin = 4

type renderOptions struct {
	text     string
	fontPath string
	size     float32
	profile  string
	config   cleartype.Config
	scale    int
	zoom     int
}

func profileByName(name string, cfg cleartype.Config) (cleartype.Profile, error) {
	switch name {
	case "cleartype", "":
		return cleartype.ClearType(), nil
	case "gdi", "gdiclassic":
		return cleartype.GDIClassic(cfg), nil
	case "grayscale", "gray":
		return cleartype.Grayscale(), nil
	default:
		return cleartype.Profile{}, fmt.Errorf("unknown profile %q", name)
	}
}

func loadFont(path string) (*coverage.Font, error) {
	if path == "" {
		return coverage.ParseFont(goregular.TTF)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return coverage.ParseFont(data)
}

// compose renders run once and places the bitmap on white paper with a
// margin on every side.
func compose(r *cleartype.Renderer, run *coverage.GlyphRun) (*image.RGBA, error) {
	res, err := r.Render(run)
	if err != nil {
		return nil, err
	}
	defer res.Release()

	b := res.Bounds
	dst := image.NewRGBA(image.Rect(0, 0, b.Width()+2*margin, b.Height()+2*margin))
	draw.Draw(dst, dst.Bounds(), image.NewUniform(color.White), image.Point{}, draw.Src)
	c, err := compositor.NewImage(dst)
	if err != nil {
		return nil, err
	}
	if err := c.Composite(res.Bitmap, margin, margin, 1); err != nil {
		return nil, err
	}
	return dst, nil
}

// renderImage draws the text in black on white paper and magnifies the
// result by o.zoom with nearest-neighbor sampling, so individual subpixel
// colors stay visible.
func renderImage(o renderOptions) (*image.RGBA, error) {
	f, err := loadFont(o.fontPath)
	if err != nil {
		return nil, err
	}
	run, err := shape.New().Shape(f, o.text, o.size, coverage.Point{})
	if err != nil {
		return nil, err
	}
	p, err := profileByName(o.profile, o.config)
	if err != nil {
		return nil, err
	}
	r := cleartype.NewRenderer(coverage.NewOutlineSampler(),
		cleartype.WithProfile(p),
		cleartype.WithScale(float32(max(o.scale, 1))))

	dst, err := compose(r, run)
	if err != nil {
		return nil, err
	}

	if o.zoom <= 1 {
		return dst, nil
	}
	big := image.NewRGBA(image.Rect(0, 0, dst.Bounds().Dx()*o.zoom, dst.Bounds().Dy()*o.zoom))
	draw.NearestNeighbor.Scale(big, big.Bounds(), dst, dst.Bounds(), draw.Src, nil)
	return big, nil
}

func runRender(args []string) error {
	fs := flag.NewFlagSet("render", flag.ExitOnError)
	var common commonFlags
	common.register(fs)
	output := fs.String("output", "cleartype.png", "output file")
	zoom := fs.Int("zoom", 1, "pixel magnification of the saved image")
	_ = fs.Parse(args)
	common.setupLogging()

	o := common.renderOptions()
	o.zoom = *zoom
	img, err := renderImage(o)
	if err != nil {
		return err
	}

	out, err := os.Create(*output)
	if err != nil {
		return err
	}
	if err := png.Encode(out, img); err != nil {
		_ = out.Close()
		return fmt.Errorf("failed to encode %s: %w", *output, err)
	}
	if err := out.Close(); err != nil {
		return err
	}

	log.Printf("Rendered %q with %s profile to %s (%dx%d)", o.text, o.profile, *output, img.Bounds().Dx(), img.Bounds().Dy())
	return nil
}
