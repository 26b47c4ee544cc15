package sensor

import (
	"fmt"

	"github.com/pterm/pterm"
	"github.com/pwmfand/pwmfand/internal"
	"github.com/pwmfand/pwmfand/internal/configuration"
	"github.com/spf13/cobra"
)

var Command = &cobra.Command{
	Use:              "sensor",
	Short:            "Print the current CPU temperature",
	Long:             ``,
	TraverseChildren: true,
	Args:             cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		pterm.DisableOutput()

		configuration.DetectConfigFile()
		configuration.LoadConfig()

		sensor, err := internal.InitializeSensor()
		if err != nil {
			return err
		}

		value, err := sensor.GetValue()
		if err != nil {
			return err
		}
		fmt.Printf("%.1f", value)
		return nil
	},
}
