package cli

import (
	"fmt"
	"image/png"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/qeda/svgprim/svgdraw"
	"github.com/qeda/svgprim/svgelem"
	"github.com/qeda/svgprim/svgpdf"
	"github.com/qeda/svgprim/svgraster"
)

const (
	formatPNG = ".png"
	formatPDF = ".pdf"
)

// renderOpts holds the command-line flags for the render command.
type renderOpts struct {
	output        string  // output file, whose extension selects the format
	scale         float64 // PNG pixels per millimeter
	margin        float64 // in millimeters
	flipY         bool    // upward Y axis
	fillByDefault bool    // shapes without fill attribute are filled
}

// renderCommand creates the render command, previewing the primitives
// as a PNG image or a PDF page.
func (c *CLI) renderCommand() *cobra.Command {
	var opts renderOpts

	cmd := &cobra.Command{
		Use:   "render [file.svg]",
		Short: "Preview the primitives of an SVG file as PNG or PDF",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			c.applyRenderConfig(cmd, &opts)
			if opts.output == "" {
				opts.output = strings.TrimSuffix(args[0], filepath.Ext(args[0])) + formatPNG
			}
			if opts.scale <= 0 {
				return fmt.Errorf("invalid scale %g: must be positive", opts.scale)
			}

			es, err := c.importFile(args[0], opts.fillByDefault)
			if err != nil {
				return err
			}
			if err := cmd.Context().Err(); err != nil {
				return err
			}

			target := svgdraw.Target{Scale: opts.scale, Margin: opts.margin, FlipY: opts.flipY}
			if err := renderFile(es, target, opts.output); err != nil {
				return err
			}
			printSuccess(cmd.OutOrStdout(), "Rendered %s", opts.output)
			return nil
		},
	}

	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "output file, .png or .pdf (default: input with .png extension)")
	cmd.Flags().Float64Var(&opts.scale, "scale", defaultPixelsPerMM, "PNG resolution, in pixels per millimeter")
	cmd.Flags().Float64Var(&opts.margin, "margin", defaultMarginMM, "margin around the elements, in millimeters")
	cmd.Flags().BoolVar(&opts.flipY, "flip-y", false, "draw with an upward Y axis")
	cmd.Flags().BoolVar(&opts.fillByDefault, "fill", false, "treat shapes without fill attribute as filled")

	return cmd
}

// applyRenderConfig uses the configuration values for the flags
// not given on the command line.
func (c *CLI) applyRenderConfig(cmd *cobra.Command, opts *renderOpts) {
	flags := cmd.Flags()
	if !flags.Changed("scale") {
		opts.scale = c.Config.Render.PixelsPerMM
	}
	if !flags.Changed("margin") {
		opts.margin = c.Config.Render.MarginMM
	}
	if !flags.Changed("flip-y") {
		opts.flipY = c.Config.Render.FlipY
	}
	if !flags.Changed("fill") {
		opts.fillByDefault = c.Config.Import.FillByDefault
	}
}

// renderFile writes the preview of es to path, in the format
// given by its extension.
func renderFile(es svgelem.Elements, target svgdraw.Target, path string) (err error) {
	ext := strings.ToLower(filepath.Ext(path))
	if ext != formatPNG && ext != formatPDF {
		return fmt.Errorf("unsupported output format %q (expected %s or %s)", ext, formatPNG, formatPDF)
	}

	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := f.Close(); err == nil {
			err = cerr
		}
	}()

	switch ext {
	case formatPNG:
		err = png.Encode(f, svgraster.RasterElements(es, target))
	case formatPDF:
		err = svgpdf.RenderElementsToPDF(es, target, f)
	}
	if err != nil {
		return fmt.Errorf("rendering %s: %w", path, err)
	}
	return nil
}
