package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/poqudrof/arucogen/pkg/aruco"
)

// dictsCommand creates the dicts command listing the supported dictionaries.
func (c *CLI) dictsCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "dicts",
		Short: "List the supported ArUco dictionaries",
		RunE: func(cmd *cobra.Command, args []string) error {
			dicts := aruco.Dictionaries()
			printInfo("%d predefined dictionaries", len(dicts))
			for _, d := range dicts {
				printKeyValue(d.Name, fmt.Sprintf("%dx%d grid · %d markers", d.GridBits, d.GridBits, d.Capacity))
			}
			printNewline()
			printNextStep("Generate", appName+" generate DICT_6X6_100 5 200")
			return nil
		},
	}
}
