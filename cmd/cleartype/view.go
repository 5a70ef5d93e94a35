package main

import (
	"flag"
	"image"

	"github.com/gdamore/tcell/v2"

	"github.com/gogpu/cleartype/internal/termview"
)

func runView(args []string) error {
	fs := flag.NewFlagSet("view", flag.ExitOnError)
	var common commonFlags
	common.register(fs)
	_ = fs.Parse(args)
	common.setupLogging()

	o := common.renderOptions()
	render := func(zoom int) (image.Image, error) {
		o.zoom = zoom
		return renderImage(o)
	}
	// Fail before taking over the terminal.
	if _, err := render(1); err != nil {
		return err
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		return err
	}
	if err := screen.Init(); err != nil {
		return err
	}
	defer screen.Fini()

	return termview.New(screen, render).Run()
}
