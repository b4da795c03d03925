package cmd

import (
	"github.com/spf13/cobra"

	"github.com/spacemeshos/colorbits/color"
	"github.com/spacemeshos/colorbits/internal/render"
)

func newBitsCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "bits <color>...",
		Short: "Print the bit sequence of one or more colors",
		Long: `Prints the bit sequence of each color, given as RRGGBB or RGB hex with an optional '#'.
The channels are produced in the configured order, each one MSB first.`,
		Example: `  colorbits bits '#ffaae1'
  colorbits bits --order rgb --format table f80 00ff00`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			order, err := a.cfg.ComponentOrder()
			if err != nil {
				return err
			}

			for _, arg := range args {
				c, err := color.ParseHex(arg)
				if err != nil {
					return err
				}

				err = render.Render(cmd.OutOrStdout(), c, order,
					render.WithLogger(a.logger),
					render.WithFormat(a.cfg.Format),
				)
				if err != nil {
					return err
				}
			}

			return nil
		},
	}
}
