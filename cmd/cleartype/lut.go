package main

import (
	"flag"
	"strconv"

	"github.com/pterm/pterm"

	"github.com/gogpu/cleartype"
	"github.com/gogpu/cleartype/gamma"
	"github.com/gogpu/cleartype/mask"
)

// lutRows tabulates t every step coverage levels, always ending at 255.
// The ink column is the final paper value of the green stripe after
// quantization.
func lutRows(t *gamma.Table, step int) pterm.TableData {
	if step < 1 {
		step = 1
	}
	data := pterm.TableData{{"coverage", "R", "G", "B", "ink"}}
	add := func(v int) {
		c := uint8(v)
		data = append(data, []string{
			strconv.Itoa(v),
			strconv.Itoa(int(t.R[c])),
			strconv.Itoa(int(t.G[c])),
			strconv.Itoa(int(t.B[c])),
			strconv.Itoa(int(mask.BlendInk(mask.Quantize(t.G[c])))),
		})
	}
	for v := 0; v < 256; v += step {
		add(v)
	}
	if 255%step != 0 {
		add(255)
	}
	return data
}

func runLUT(args []string) error {
	fs := flag.NewFlagSet("lut", flag.ExitOnError)
	profile := fs.String("profile", "cleartype", "render profile: cleartype, gdi or grayscale")
	step := fs.Int("step", 16, "coverage step between rows")
	derive := fs.Bool("derive-gamma", false, "derive the GDI gamma from the contrast preference")
	_ = fs.Parse(args)

	cfg := cleartype.LoadConfig()
	cfg.DeriveGDIGamma = *derive
	p, err := profileByName(*profile, cfg)
	if err != nil {
		return err
	}

	pterm.Info.Printfln("%s, contrast preference %d, monotonic %t", p, cfg.ContrastLevel, p.Table.IsMonotonic())
	if err := pterm.DefaultTable.WithHasHeader().WithData(lutRows(p.Table, *step)).Render(); err != nil {
		return err
	}
	n, hits, misses := gamma.CacheStats()
	pterm.Info.Printfln("table cache: %d tables, %d hits, %d misses", n, hits, misses)
	return nil
}
