package cmd

import (
	"fmt"
	"os"

	"github.com/pterm/pterm"
	"github.com/pwmfand/pwmfand/cmd/config"
	"github.com/pwmfand/pwmfand/cmd/curve"
	"github.com/pwmfand/pwmfand/cmd/fan"
	"github.com/pwmfand/pwmfand/cmd/global"
	"github.com/pwmfand/pwmfand/cmd/sensor"
	"github.com/pwmfand/pwmfand/internal"
	"github.com/pwmfand/pwmfand/internal/configuration"
	"github.com/pwmfand/pwmfand/internal/ui"
	"github.com/spf13/cobra"
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "pwmfand",
	Short: "A daemon to control the PWM fan of a NAS board.",
	Long: `pwmfand is a simple daemon that controls the 5V PWM fan
on your NAS board based on the CPU temperature.`,
	// this is the default command to run when no subcommand is specified
	Run: func(cmd *cobra.Command, args []string) {
		setupUi()
		printHeader()

		configPath := configuration.DetectConfigFile()
		if configPath != "" {
			ui.Info("Using configuration file at: %s", configPath)
		} else {
			ui.Info("No configuration file found, using environment and defaults")
		}
		configuration.LoadConfig()
		applyLogLevel()

		err := configuration.Validate(&configuration.CurrentConfig)
		if err != nil {
			ui.FatalWithoutStacktrace("Config Validation Error: %v", err)
		}

		internal.RunDaemon()
	},
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&global.CfgFile, "config", "c", "", "config file (default is pwmfand.yaml in ., $HOME, /etc/pwmfand/)")
	rootCmd.PersistentFlags().BoolVarP(&global.NoColor, "no-color", "", false, "Disable all terminal output coloration")
	rootCmd.PersistentFlags().BoolVarP(&global.NoStyle, "no-style", "", false, "Disable all terminal output styling")
	rootCmd.PersistentFlags().BoolVarP(&global.Verbose, "verbose", "v", false, "More verbose output")

	rootCmd.AddCommand(config.Command)

	rootCmd.AddCommand(fan.Command)
	rootCmd.AddCommand(curve.Command)
	rootCmd.AddCommand(sensor.Command)
}

func setupUi() {
	ui.SetDebugEnabled(global.Verbose)

	if global.NoColor {
		pterm.DisableColor()
	}
	if global.NoStyle {
		pterm.DisableStyling()
	}
}

// applyLogLevel enables debug output when the configured log level asks
// for it, in addition to the --verbose flag.
func applyLogLevel() {
	switch configuration.CurrentConfig.LogLevel {
	case "trace", "debug":
		ui.SetDebugEnabled(true)
	}
}

// Print a large text with the LetterStyle from the standard theme.
func printHeader() {
	err := pterm.DefaultBigText.WithLetters(
		pterm.NewLettersFromStringWithStyle("pwm", pterm.NewStyle(pterm.FgLightBlue)),
		pterm.NewLettersFromStringWithStyle("fand", pterm.NewStyle(pterm.FgWhite)),
	).Render()
	if err != nil {
		fmt.Println("pwmfand")
	}
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	cobra.OnInitialize(func() {
		configuration.InitConfig(global.CfgFile)
	})

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
