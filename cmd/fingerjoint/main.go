// Command fingerjoint emits a laser-cutter-ready drawing of a single
// finger-jointed panel.
//
// Usage:
//
//	fingerjoint --width=300 --height=150 --finger_width=20 \
//	    --suppressed_fingers=3,0,3,0 --kerf=1 --finger_width_safety_margin=5
//
// SVG markup goes to standard output unless -o is given. The -format flag
// selects svg, html, dxf or png output; dxf and png require -o.
package main

import (
	"bytes"
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/soypat/fingerjoint"
	"github.com/soypat/fingerjoint/render"
	"gonum.org/v1/gonum/spatial/r2"
)

type config struct {
	params fingerjoint.PanelParams
	output string
	format string
}

func main() {
	log.SetFlags(0)
	log.SetPrefix("fingerjoint: ")
	cfg, err := parseArgs(os.Args[1:])
	if err != nil {
		log.Fatal(err)
	}
	if err := run(cfg, os.Stdout); err != nil {
		log.Fatal(err)
	}
}

func parseArgs(args []string) (config, error) {
	fs := flag.NewFlagSet("fingerjoint", flag.ContinueOnError)
	width := fs.Float64("width", 0, "interior panel width in mm (required)")
	height := fs.Float64("height", 0, "interior panel height in mm (required)")
	fingerWidth := fs.Float64("finger_width", 0, "finger width in mm, commonly the material thickness (required)")
	suppressed := fs.String("suppressed_fingers", "0,0,0,0", "fingers dropped per edge: top,right,bottom,left")
	kerf := fs.Float64("kerf", 0, "material width lost to the cutting beam in mm")
	safety := fs.Float64("finger_width_safety_margin", 0, "extra finger depth in mm for material thickness variance")
	output := fs.String("o", "", "output file (default standard output)")
	format := fs.String("format", "svg", "output format: svg, html, dxf or png")
	if err := fs.Parse(args); err != nil {
		return config{}, err
	}
	if *width == 0 || *height == 0 || *fingerWidth == 0 {
		return config{}, errors.New("width, height and finger_width are required")
	}
	sup, err := parseSuppressed(*suppressed)
	if err != nil {
		return config{}, err
	}
	return config{
		params: fingerjoint.PanelParams{
			Size:         r2.Vec{X: *width, Y: *height},
			FingerWidth:  *fingerWidth,
			Suppressed:   sup,
			Kerf:         *kerf,
			SafetyMargin: *safety,
		},
		output: *output,
		format: *format,
	}, nil
}

// parseSuppressed parses a comma separated list of exactly four integers in
// CSS edge order.
func parseSuppressed(s string) ([4]int, error) {
	var out [4]int
	elems := strings.Split(s, ",")
	if len(elems) != len(out) {
		return out, fmt.Errorf("suppressed_fingers: want 4 comma-separated integers, got %q", s)
	}
	for i, e := range elems {
		n, err := strconv.Atoi(strings.TrimSpace(e))
		if err != nil {
			return out, fmt.Errorf("suppressed_fingers: %w", err)
		}
		out[i] = n
	}
	return out, nil
}

func run(cfg config, stdout io.Writer) error {
	panel, err := fingerjoint.NewPanel(cfg.params)
	if err != nil {
		return err
	}
	panel.Make()
	d := panel.Drawing()
	switch cfg.format {
	case "svg":
		if cfg.output == "" {
			return render.WriteSVG(stdout, d)
		}
		return render.CreateSVG(cfg.output, d)
	case "html":
		var buf bytes.Buffer
		if err := render.WriteSVG(&buf, d); err != nil {
			return err
		}
		if cfg.output == "" {
			return render.WriteHTML(stdout, buf.String())
		}
		return render.CreateHTML(cfg.output, buf.String())
	case "dxf":
		if cfg.output == "" {
			return errors.New("dxf output requires -o")
		}
		return render.CreateDXF(cfg.output, d)
	case "png":
		if cfg.output == "" {
			return errors.New("png output requires -o")
		}
		return render.CreatePNG(cfg.output, d)
	}
	return fmt.Errorf("unknown format %q", cfg.format)
}
