package cli

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/poqudrof/arucogen/pkg/aruco"
)

// generateOpts holds the command-line flags for the generate command.
type generateOpts struct {
	outputDir string // directory the marker file is written into
	border    int    // marker border width in modules
}

// generateCommand creates the generate command, the main operation of the
// tool: render one marker and write it as a PNG.
func (c *CLI) generateCommand() *cobra.Command {
	opts := generateOpts{
		outputDir: aruco.DefaultOutputDir,
		border:    aruco.DefaultBorderBits,
	}

	cmd := &cobra.Command{
		Use:   "generate [dictionary] [id] [size]",
		Short: "Generate a single ArUco marker image",
		Long: `Generate a single ArUco marker image.

The marker is rendered from one of OpenCV's predefined dictionaries and
written as <output-dir>/<dictionary>_id<id>.png. Size is the image side
length in pixels.

Example:
  arucogen generate DICT_6X6_100 5 200`,
		Args: cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, size, err := parseIDAndSize(args[1], args[2])
			if err != nil {
				return err
			}
			c.applyConfigDefaults(cmd, &opts.outputDir, &opts.border)
			return c.runGenerate(args[0], id, size, opts)
		},
	}

	cmd.Flags().StringVarP(&opts.outputDir, "output-dir", "o", opts.outputDir, "directory to write the marker into")
	cmd.Flags().IntVar(&opts.border, "border", opts.border, "marker border width in modules")

	return cmd
}

// runGenerate renders the requested marker and writes it to disk.
func (c *CLI) runGenerate(dictionary string, id, size int, opts generateOpts) error {
	gen, err := aruco.NewGenerator(aruco.NewOpenCVRenderer(), opts.outputDir)
	if err != nil {
		return err
	}

	req := aruco.Request{
		Dictionary: dictionary,
		ID:         id,
		SidePixels: size,
		BorderBits: opts.border,
	}

	c.Logger.Infof("Generating %s marker with id %d at %dpx", dictionary, id, size)

	p := newProgress(c.Logger)
	path, err := gen.Generate(req)
	if err != nil {
		return err
	}
	p.done(fmt.Sprintf("Rendered %s id %d", dictionary, id))

	printSuccess("Marker generated")
	printFile(path)
	printNewline()
	printNextStep("Verify", fmt.Sprintf("%s detect %s --dictionary %s", appName, path, dictionary))

	return nil
}

// parseIDAndSize converts the positional id and size arguments.
func parseIDAndSize(idArg, sizeArg string) (int, int, error) {
	id, err := strconv.Atoi(idArg)
	if err != nil {
		return 0, 0, fmt.Errorf("marker id must be an integer, got %q", idArg)
	}
	size, err := strconv.Atoi(sizeArg)
	if err != nil {
		return 0, 0, fmt.Errorf("marker size must be an integer, got %q", sizeArg)
	}
	return id, size, nil
}
