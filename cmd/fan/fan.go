package fan

import (
	"github.com/pwmfand/pwmfand/internal"
	"github.com/pwmfand/pwmfand/internal/configuration"
	"github.com/pwmfand/pwmfand/internal/fans"
	"github.com/pwmfand/pwmfand/internal/ui"
	"github.com/spf13/cobra"
)

var Command = &cobra.Command{
	Use:              "fan",
	Short:            "Fan related commands",
	Long:             ``,
	TraverseChildren: true,
}

func getFan() (fans.Fan, error) {
	configPath := configuration.DetectConfigFile()
	if configPath != "" {
		ui.Info("Using configuration file at: %s", configPath)
	}
	configuration.LoadConfig()
	err := configuration.Validate(&configuration.CurrentConfig)
	if err != nil {
		ui.FatalWithoutStacktrace("%v", err)
	}

	return internal.InitializeFan()
}
