package fan

import (
	"fmt"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
)

var maxCmd = &cobra.Command{
	Use:   "max",
	Short: "Print the maximum speed level supported by the fan device",
	Long:  ``,
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		pterm.DisableOutput()

		fan, err := getFan()
		if err != nil {
			return err
		}

		maxState, err := fan.GetMaxState()
		if err != nil {
			return err
		}
		fmt.Printf("%d", maxState)
		return nil
	},
}

func init() {
	Command.AddCommand(maxCmd)
}
