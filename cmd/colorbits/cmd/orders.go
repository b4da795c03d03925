package cmd

import (
	"strings"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"

	"github.com/spacemeshos/colorbits/color"
)

func newOrdersCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "orders",
		Short: "Print the list of available component orders",
		Long: `Prints the list of available component orders.
Use the name of the order your LED strip expects with the --order flag.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			table := tablewriter.NewWriter(cmd.OutOrStdout())
			table.SetHeader([]string{"Name", "Channels"})
			table.SetBorder(true)

			for _, name := range color.OrderNames() {
				o, err := color.OrderByName(name)
				if err != nil {
					return err
				}

				var channels []string
				for _, c := range color.Walk(o) {
					channels = append(channels, c.String())
				}
				table.Append([]string{name, strings.Join(channels, ", ")})
			}
			table.Render()

			return nil
		},
	}
}
