package fan

import (
	"strconv"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
)

var setSpeedCmd = &cobra.Command{
	Use:   "setSpeed",
	Short: "Set the speed level of the fan to the given value ([0..5])",
	Long:  ``,
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		pterm.DisableOutput()

		level, err := strconv.Atoi(args[0])
		if err != nil {
			return err
		}

		fan, err := getFan()
		if err != nil {
			return err
		}

		return fan.SetState(level)
	},
}

func init() {
	Command.AddCommand(setSpeedCmd)
}
