package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/poqudrof/arucogen/pkg/aruco"
)

// detectCommand creates the detect command for round-tripping generated
// markers through OpenCV's detector.
func (c *CLI) detectCommand() *cobra.Command {
	var dictionary string

	cmd := &cobra.Command{
		Use:   "detect [image]",
		Short: "Detect ArUco markers in an image",
		Long: `Detect ArUco markers in an image.

Scans the image for markers of the given dictionary and lists the ids and
corner coordinates of every accepted candidate. Handy as a sanity check on
generated or printed markers.

Example:
  arucogen detect images/DICT_6X6_100_id5.png --dictionary DICT_6X6_100`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			d, err := aruco.LookupDictionary(dictionary)
			if err != nil {
				return err
			}
			return c.runDetect(args[0], d, aruco.NewOpenCVDetector(d))
		},
	}

	cmd.Flags().StringVarP(&dictionary, "dictionary", "d", "", "dictionary to detect (required)")
	_ = cmd.MarkFlagRequired("dictionary")

	return cmd
}

// runDetect scans the image and prints one line per detected marker.
func (c *CLI) runDetect(path string, d aruco.Dictionary, detector aruco.Detector) error {
	c.Logger.Infof("Scanning %s for %s markers", path, d.Name)

	detections, err := detector.Detect(path)
	if err != nil {
		return err
	}

	if len(detections) == 0 {
		printWarning("No %s markers found in %s", d.Name, path)
		return nil
	}

	printSuccess("Found %d marker(s)", len(detections))
	for _, det := range detections {
		printKeyValue(fmt.Sprintf("id %d", det.ID), formatCorners(det.Corners))
	}

	return nil
}

// formatCorners renders the four corners as "(x,y)" pairs.
func formatCorners(corners [4]aruco.Corner) string {
	s := ""
	for i, p := range corners {
		if i > 0 {
			s += " "
		}
		s += fmt.Sprintf("(%.0f,%.0f)", p.X, p.Y)
	}
	return s
}
