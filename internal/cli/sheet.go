package cli

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/poqudrof/arucogen/pkg/aruco"
)

// sheetOpts holds the command-line flags for the sheet command.
type sheetOpts struct {
	outputDir string // directory the sheet file is written into
	output    string // sheet file name (default <dictionary>_sheet.png)
	border    int    // marker border width in modules
	start     int    // first marker id on the sheet
	count     int    // number of markers
	columns   int    // markers per row
	margin    int    // pixels around and between markers
}

// sheetCommand creates the sheet command for printable marker pages.
func (c *CLI) sheetCommand() *cobra.Command {
	opts := sheetOpts{
		outputDir: aruco.DefaultOutputDir,
		border:    aruco.DefaultBorderBits,
		count:     8,
		columns:   4,
		margin:    20,
	}

	cmd := &cobra.Command{
		Use:   "sheet [dictionary] [size]",
		Short: "Compose a printable sheet of markers",
		Long: `Compose a printable sheet of markers.

Renders a run of consecutive marker ids from one dictionary and lays them
out on a single white page, left to right, top to bottom. Useful for
printing calibration targets in one go.

Example:
  arucogen sheet DICT_4X4_50 150 --start 0 --count 12 --columns 4`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			size, err := strconv.Atoi(args[1])
			if err != nil {
				return fmt.Errorf("marker size must be an integer, got %q", args[1])
			}
			if opts.count < 1 {
				return fmt.Errorf("count must be at least 1, got %d", opts.count)
			}
			c.applyConfigDefaults(cmd, &opts.outputDir, &opts.border)
			return c.runSheet(args[0], size, opts)
		},
	}

	cmd.Flags().StringVarP(&opts.outputDir, "output-dir", "o", opts.outputDir, "directory to write the sheet into")
	cmd.Flags().StringVar(&opts.output, "output", "", "sheet file name (default <dictionary>_sheet.png)")
	cmd.Flags().IntVar(&opts.border, "border", opts.border, "marker border width in modules")
	cmd.Flags().IntVar(&opts.start, "start", opts.start, "first marker id")
	cmd.Flags().IntVar(&opts.count, "count", opts.count, "number of markers")
	cmd.Flags().IntVar(&opts.columns, "columns", opts.columns, "markers per row")
	cmd.Flags().IntVar(&opts.margin, "margin", opts.margin, "pixels around and between markers")

	return cmd
}

// runSheet renders the marker run and writes the composed page.
func (c *CLI) runSheet(dictionary string, size int, opts sheetOpts) error {
	gen, err := aruco.NewGenerator(aruco.NewOpenCVRenderer(), opts.outputDir)
	if err != nil {
		return err
	}

	ids := make([]int, opts.count)
	for i := range ids {
		ids[i] = opts.start + i
	}

	c.Logger.Infof("Generating %s sheet: ids %d..%d at %dpx", dictionary, opts.start, opts.start+opts.count-1, size)

	p := newProgress(c.Logger)
	path, err := gen.GenerateSheet(dictionary, ids, size, opts.border,
		aruco.SheetOptions{Columns: opts.columns, Margin: opts.margin}, opts.output)
	if err != nil {
		return err
	}
	p.done(fmt.Sprintf("Rendered %d markers", len(ids)))

	printSuccess("Sheet generated")
	printFile(path)
	printDetail("%d markers · %d per row", len(ids), opts.columns)

	return nil
}
