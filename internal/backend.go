package internal

import (
	"context"
	"fmt"
	"os"
	"os/exec"
	"os/signal"
	"path/filepath"
	"strconv"
	"strings"
	"syscall"

	"github.com/oklog/run"
	"github.com/pwmfand/pwmfand/internal/configuration"
	"github.com/pwmfand/pwmfand/internal/controller"
	"github.com/pwmfand/pwmfand/internal/curve"
	"github.com/pwmfand/pwmfand/internal/fans"
	"github.com/pwmfand/pwmfand/internal/persistence"
	"github.com/pwmfand/pwmfand/internal/sensors"
	"github.com/pwmfand/pwmfand/internal/thermal"
	"github.com/pwmfand/pwmfand/internal/ui"
)

func RunDaemon() {
	if getProcessOwner() != "root" {
		ui.Fatal("Fan control requires root permissions to be able to modify fan speeds, please run pwmfand as root")
	}

	fan, err := InitializeFan()
	if err != nil {
		ui.FatalWithoutStacktrace("Unable to find a pwm-fan cooling device: %v", err)
	}

	sensor, err := InitializeSensor()
	if err != nil {
		ui.FatalWithoutStacktrace("Unable to find a thermal zone temperature input: %v", err)
	}

	config := &configuration.CurrentConfig

	deviceMaxState, err := fan.GetMaxState()
	if err != nil {
		ui.FatalWithoutStacktrace("Unable to read the max state of %s: %v", fan.GetId(), err)
	}
	if !config.IsMaxStateSet() {
		config.MaxState = deviceMaxState
		ui.Debug("MAX_STATE not configured, using device max state %d", deviceMaxState)
	}

	if err = configuration.ValidateAgainstDevice(config, deviceMaxState); err != nil {
		ui.FatalWithoutStacktrace("Invalid configuration: %v", err)
	}

	pers := persistence.NewPersistence(config.DbPath)
	if err = pers.Init(); err != nil {
		ui.FatalWithoutStacktrace("Unable to open database %s: %v", config.DbPath, err)
	}

	levelCurve := curve.NewLevelCurve(*config)

	ctx, cancel := context.WithCancel(context.Background())

	var g run.Group
	{
		// === fan controller
		fanController := controller.NewFanController(pers, fan, sensor, levelCurve, config.SleepTime)

		g.Add(func() error {
			err := fanController.Run(ctx)
			ui.Info("Fan controller for fan %s stopped.", fan.GetId())
			return err
		}, func(err error) {
			if err != nil {
				ui.Warning("Something went wrong: %v", err)
			}
		})
	}
	{
		sig := make(chan os.Signal, 1)
		signal.Notify(sig, os.Interrupt, syscall.SIGTERM)

		g.Add(func() error {
			<-sig
			ui.Info("Received SIGTERM signal, exiting...")
			return nil
		}, func(err error) {
			defer close(sig)
			cancel()
		})
	}

	if err := g.Run(); err != nil {
		_, _ = fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	} else {
		ui.Info("Done.")
		os.Exit(0)
	}
}

// InitializeFan resolves the fan actuator, either from the FAN_DEVICE
// override or by scanning /sys/class/thermal, and registers it in FanMap.
func InitializeFan() (fans.Fan, error) {
	config := configuration.CurrentConfig

	path := config.FanDevice
	if path == "" {
		found, err := thermal.FindPwmFanDevice(thermal.SysfsPath)
		if err != nil {
			return nil, err
		}
		path = found
	}

	info, err := os.Stat(path)
	if err != nil {
		return nil, err
	}

	var fan fans.Fan
	if info.IsDir() {
		fan = fans.NewThermalFan(fanId(path), path)
	} else {
		fan = fans.NewFileFan(fanId(path), path)
	}

	fans.FanMap.Set(fan.GetId(), fan)
	ui.Info("Using fan device: %s", path)
	return fan, nil
}

// InitializeSensor resolves the temperature source, either from the
// SENSOR_PATH override or by scanning /sys/class/thermal, and registers it
// in SensorMap.
func InitializeSensor() (sensors.Sensor, error) {
	config := configuration.CurrentConfig

	path := config.SensorPath
	if path == "" {
		found, err := thermal.FindTempInput(thermal.SysfsPath)
		if err != nil {
			return nil, err
		}
		path = found
	}

	info, err := os.Stat(path)
	if err != nil {
		return nil, err
	}
	if info.IsDir() {
		path = filepath.Join(path, "temp")
	}

	sensor := sensors.NewThermalZoneSensor(sensorId(path), path)
	sensors.SensorMap.Set(sensor.GetId(), sensor)
	ui.Info("Using temperature input: %s", path)
	return sensor, nil
}

func fanId(path string) string {
	return filepath.Base(path)
}

func sensorId(path string) string {
	base := filepath.Base(path)
	if base == "temp" {
		return filepath.Base(filepath.Dir(path))
	}
	return base
}

func getProcessOwner() string {
	stdout, err := exec.Command("ps", "-o", "user=", "-p", strconv.Itoa(os.Getpid())).Output()
	if err != nil {
		ui.Fatal("Error checking process owner: %v", err)
		os.Exit(1)
	}
	return strings.TrimSpace(string(stdout))
}
