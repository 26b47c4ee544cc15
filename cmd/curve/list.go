package curve

import (
	"bytes"
	"fmt"

	"github.com/guptarohit/asciigraph"
	"github.com/mgutz/ansi"
	"github.com/pwmfand/pwmfand/cmd/global"
	"github.com/pwmfand/pwmfand/internal/configuration"
	"github.com/pwmfand/pwmfand/internal/curve"
	"github.com/pwmfand/pwmfand/internal/ui"
	"github.com/qdm12/reprint"
	"github.com/spf13/cobra"
	"github.com/tomlazar/table"
	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"
)

var (
	previewMinState     int
	previewMaxState     int
	previewMinThreshold float64
	previewMaxThreshold float64
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "Print the level table of the fan curve to console",
	RunE: func(cmd *cobra.Command, args []string) (err error) {
		configPath := configuration.DetectConfigFile()
		if configPath != "" {
			ui.Info("Using configuration file at: %s", configPath)
		}
		configuration.LoadConfig()

		// preview overrides act on a copy, the loaded config stays untouched
		config := reprint.This(configuration.CurrentConfig).(configuration.Configuration)
		if cmd.Flags().Changed("min-state") {
			config.MinState = previewMinState
		}
		if cmd.Flags().Changed("max-state") {
			config.MaxState = previewMaxState
		}
		if cmd.Flags().Changed("min-threshold") {
			config.MinThreshold = previewMinThreshold
		}
		if cmd.Flags().Changed("max-threshold") {
			config.MaxThreshold = previewMaxThreshold
		}
		if !config.IsMaxStateSet() {
			config.MaxState = configuration.MaxFanState
		}

		if err = configuration.Validate(&config); err != nil {
			ui.FatalWithoutStacktrace("%v", err)
		}

		levelCurve := curve.NewLevelCurve(config)

		// print table
		var rows [][]string
		for _, slot := range levelCurve.Slots() {
			rows = append(rows, []string{
				fmt.Sprintf("%d", slot.Level),
				fmt.Sprintf("%.1f°C", slot.Temperature),
			})
		}
		tab := table.Table{
			Headers: []string{"Level", "From"},
			Rows:    rows,
		}
		var buf bytes.Buffer
		tableErr := tab.WriteTable(&buf, &table.Config{
			ShowIndex:       false,
			Color:           !global.NoColor,
			AlternateColors: true,
			TitleColorCode:  ansi.ColorCode("white+buf"),
			AltColorCodes: []string{
				ansi.ColorCode("white"),
				ansi.ColorCode("white:236"),
			},
		})
		if tableErr != nil {
			panic(tableErr)
		}
		tableString := buf.String()
		ui.Printfln(tableString)

		// sample the mapping a few degrees past both thresholds
		graphValues := map[int]float64{}
		start := int(config.MinThreshold) - 5
		stop := int(config.MaxThreshold) + 5
		for t := start; t <= stop; t++ {
			graphValues[t] = float64(levelCurve.LevelForTemperature(float64(t)))
		}

		keys := maps.Keys(graphValues)
		slices.Sort(keys)

		values := make([]float64, 0, len(keys))
		for _, k := range keys {
			values = append(values, graphValues[k])
		}

		caption := fmt.Sprintf("Level / Temperature (%d°C to %d°C)", start, stop)
		graph := asciigraph.Plot(values, asciigraph.Height(15), asciigraph.Width(100), asciigraph.Caption(caption))
		ui.Printfln(graph)

		return nil
	},
}

func init() {
	listCmd.Flags().IntVar(&previewMinState, "min-state", 0, "Preview the curve with this min state")
	listCmd.Flags().IntVar(&previewMaxState, "max-state", configuration.MaxFanState, "Preview the curve with this max state")
	listCmd.Flags().Float64Var(&previewMinThreshold, "min-threshold", 0, "Preview the curve with this min threshold")
	listCmd.Flags().Float64Var(&previewMaxThreshold, "max-threshold", 0, "Preview the curve with this max threshold")

	Command.AddCommand(listCmd)
}
