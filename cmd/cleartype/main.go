// Command cleartype renders text through the subpixel pipeline.
//
// Usage:
//
//	cleartype render -text "Hello" -output hello.png
//	cleartype lut -profile gdi
//	cleartype view -text "Hello"
package main

import (
	"flag"
	"fmt"
	"log"
	"log/slog"
	"os"

	"github.com/gogpu/cleartype"
)

func usage() {
	fmt.Fprintln(os.Stderr, `usage: cleartype <command> [flags]

commands:
  render   render text to a PNG file
  lut      print a gamma correction table
  view     preview rendered text in the terminal

Run "cleartype <command> -h" for command flags.`)
}

func main() {
	log.SetFlags(0)
	if len(os.Args) < 2 {
		usage()
		os.Exit(2)
	}

	var err error
	switch cmd, args := os.Args[1], os.Args[2:]; cmd {
	case "render":
		err = runRender(args)
	case "lut":
		err = runLUT(args)
	case "view":
		err = runView(args)
	case "-h", "-help", "--help", "help":
		usage()
		return
	default:
		usage()
		os.Exit(2)
	}
	if err != nil {
		log.Fatalf("cleartype %s: %v", os.Args[1], err)
	}
}

// commonFlags are shared by every command that renders text.
type commonFlags struct {
	text     string
	fontPath string
	size     float64
	profile  string
	scale    int
	derive   bool
	verbose  bool
}

func (c *commonFlags) register(fs *flag.FlagSet) {
	fs.StringVar(&c.text, "text", "The quick brown fox", "text to render")
	fs.StringVar(&c.fontPath, "font", "", "TrueType/OpenType font file (default Go Regular)")
	fs.Float64Var(&c.size, "size", 16, "font size in pixels per em")
	fs.StringVar(&c.profile, "profile", "cleartype", "render profile: cleartype, gdi or grayscale")
	fs.IntVar(&c.scale, "scale", 1, "glyph magnification")
	fs.BoolVar(&c.derive, "derive-gamma", false, "derive the GDI gamma from the contrast preference")
	fs.BoolVar(&c.verbose, "v", false, "debug logging to stderr")
}

func (c *commonFlags) setupLogging() {
	if c.verbose {
		cleartype.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: slog.LevelDebug,
		})))
	}
}

func (c *commonFlags) renderOptions() renderOptions {
	cfg := cleartype.LoadConfig()
	cfg.DeriveGDIGamma = c.derive
	return renderOptions{
		text:     c.text,
		fontPath: c.fontPath,
		size:     float32(c.size),
		profile:  c.profile,
		config:   cfg,
		scale:    c.scale,
		zoom:     1,
	}
}
