package cmd

import (
	"bytes"
	"fmt"
	"strconv"

	"github.com/mgutz/ansi"
	"github.com/pwmfand/pwmfand/cmd/global"
	"github.com/pwmfand/pwmfand/internal/thermal"
	"github.com/pwmfand/pwmfand/internal/ui"
	"github.com/spf13/cobra"
	"github.com/tomlazar/table"
)

var detectCmd = &cobra.Command{
	Use:   "detect",
	Short: "Detect devices",
	Long:  `Detects all cooling devices and thermal zones and prints them as a list`,
	Run: func(cmd *cobra.Command, args []string) {
		tableConfig := &table.Config{
			ShowIndex:       false,
			Color:           !global.NoColor,
			AlternateColors: true,
			TitleColorCode:  ansi.ColorCode("white+buf"),
			AltColorCodes: []string{
				ansi.ColorCode("white"),
				ansi.ColorCode("white:236"),
			},
		}

		// === Print detected devices ===
		coolingDevices := thermal.FindCoolingDevices(thermal.SysfsPath)

		var fanRows [][]string
		for _, device := range coolingDevices {
			marker := ""
			if device.Type == thermal.PwmFanType {
				marker = "*"
			}
			fanRows = append(fanRows, []string{
				marker, device.Name, device.Type, strconv.Itoa(device.CurState), strconv.Itoa(device.MaxState),
			})
		}
		fanTable := table.Table{
			Headers: []string{"Fans   ", "Name", "Type", "State", "Max"},
			Rows:    fanRows,
		}

		thermalZones := thermal.FindThermalZones(thermal.SysfsPath)

		var sensorRows [][]string
		for _, zone := range thermalZones {
			sensorRows = append(sensorRows, []string{
				"", zone.Name, zone.Type, fmt.Sprintf("%.1f°C", zone.Temperature),
			})
		}
		sensorTable := table.Table{
			Headers: []string{"Sensors", "Name", "Type", "Value"},
			Rows:    sensorRows,
		}

		tables := []table.Table{fanTable, sensorTable}

		for idx, tab := range tables {
			if tab.Rows == nil {
				continue
			}
			var buf bytes.Buffer
			tableErr := tab.WriteTable(&buf, tableConfig)
			if tableErr != nil {
				ui.Fatal("Error printing table: %v", tableErr)
			}
			tableString := buf.String()
			if idx < (len(tables) - 1) {
				ui.Printf(tableString)
			} else {
				ui.Printfln(tableString)
			}
		}
	},
}

func init() {
	rootCmd.AddCommand(detectCmd)
}
