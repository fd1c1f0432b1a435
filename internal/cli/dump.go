package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"

	"github.com/qeda/svgprim/svgelem"
)

// dumpOpts holds the command-line flags for the dump command.
type dumpOpts struct {
	json          bool // output the elements as a JSON array
	fillByDefault bool // shapes without fill attribute are filled
}

// dumpCommand creates the dump command, listing the imported primitives.
func (c *CLI) dumpCommand() *cobra.Command {
	var opts dumpOpts

	cmd := &cobra.Command{
		Use:   "dump [file.svg]",
		Short: "List the primitives found in an SVG file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if !cmd.Flags().Changed("fill") {
				opts.fillByDefault = c.Config.Import.FillByDefault
			}
			es, err := c.importFile(args[0], opts.fillByDefault)
			if err != nil {
				return err
			}
			if opts.json {
				return writeJSON(cmd.OutOrStdout(), es)
			}
			fmt.Fprintln(cmd.OutOrStdout(), formatTable(es))
			return nil
		},
	}

	cmd.Flags().BoolVar(&opts.json, "json", false, "output JSON instead of a table")
	cmd.Flags().BoolVar(&opts.fillByDefault, "fill", false, "treat shapes without fill attribute as filled")

	return cmd
}

// importFile reads the primitives of the SVG file at path.
func (c *CLI) importFile(path string, fillByDefault bool) (svgelem.Elements, error) {
	es, err := svgelem.ReadElements(path, &svgelem.Options{Logger: c.Logger, FillByDefault: fillByDefault})
	if err != nil {
		return es, fmt.Errorf("importing %s: %w", path, err)
	}
	c.Logger.Info("Imported elements", "file", path, "count", es.Len())
	return es, nil
}

func writeJSON(w io.Writer, es svgelem.Elements) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(es)
}

func num(f float64) string { return strconv.FormatFloat(f, 'g', -1, 64) }

// describe returns the geometry, line width and fill columns of el.
func describe(el svgelem.Element) (geometry, width, filled string) {
	switch el := el.(type) {
	case *svgelem.HLine:
		return fmt.Sprintf("x0=%s x1=%s y=%s", num(el.X0), num(el.X1), num(el.Y)), num(el.Width), ""
	case *svgelem.VLine:
		return fmt.Sprintf("x=%s y0=%s y1=%s", num(el.X), num(el.Y0), num(el.Y1)), num(el.Width), ""
	case *svgelem.Line:
		return fmt.Sprintf("%s %s", el.P[0].Point, el.P[1].Point), num(el.Width), ""
	case *svgelem.Polygon:
		return fmt.Sprintf("%d points", len(el.Points)), num(el.LineWidth), strconv.FormatBool(el.Filled)
	case *svgelem.Rect:
		return fmt.Sprintf("x=%s y=%s w=%s h=%s", num(el.X), num(el.Y), num(el.Width), num(el.Height)),
			num(el.LineWidth), strconv.FormatBool(el.Filled)
	case *svgelem.Ellipse:
		return fmt.Sprintf("cx=%s cy=%s rx=%s ry=%s", num(el.Cx), num(el.Cy), num(el.Rx), num(el.Ry)),
			num(el.LineWidth), strconv.FormatBool(el.Filled)
	case *svgelem.Text:
		return fmt.Sprintf("%q at (%s, %s) size=%s %s/%s", el.Text, num(el.X), num(el.Y), num(el.Height), el.HAlign, el.VAlign), "", ""
	}
	return "", "", ""
}

// formatTable renders the elements as a table, in import order.
func formatTable(es svgelem.Elements) string {
	t := table.New().
		Border(lipgloss.NormalBorder()).
		BorderStyle(StyleDim).
		Headers("ID", "KIND", "GEOMETRY", "WIDTH", "FILLED").
		StyleFunc(func(row, col int) lipgloss.Style {
			switch {
			case row == table.HeaderRow:
				return StyleTitle.Padding(0, 1)
			case col == 1:
				return styleKind.Padding(0, 1)
			case col == 3:
				return StyleNumber.Padding(0, 1)
			}
			return lipgloss.NewStyle().Padding(0, 1)
		})
	for id, el := range es.All() {
		geometry, width, filled := describe(el)
		t.Row(strconv.Quote(id), el.Kind(), geometry, width, filled)
	}
	return t.Render()
}
