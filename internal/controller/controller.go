package controller

import (
	"context"
	"time"

	"github.com/pwmfand/pwmfand/internal/curve"
	"github.com/pwmfand/pwmfand/internal/fans"
	"github.com/pwmfand/pwmfand/internal/persistence"
	"github.com/pwmfand/pwmfand/internal/sensors"
	"github.com/pwmfand/pwmfand/internal/ui"
)

type FanController interface {
	// Run drives the control loop until the context is cancelled
	Run(ctx context.Context) error
	// UpdateFanSpeed runs a single read → map → apply cycle
	UpdateFanSpeed() error
}

type fanController struct {
	persistence persistence.Persistence
	fan         fans.Fan
	sensor      sensors.Sensor
	curve       *curve.LevelCurve
	tickRate    time.Duration

	// level applied by the most recent successful device write.
	// nil until the first write, which is never skipped so that a fresh
	// daemon asserts a known hardware state.
	lastSetLevel *int
}

func NewFanController(
	persistence persistence.Persistence,
	fan fans.Fan,
	sensor sensors.Sensor,
	levelCurve *curve.LevelCurve,
	tickRate time.Duration,
) FanController {
	return &fanController{
		persistence: persistence,
		fan:         fan,
		sensor:      sensor,
		curve:       levelCurve,
		tickRate:    tickRate,
	}
}

func (f *fanController) Run(ctx context.Context) error {
	if level, err := f.persistence.LoadFanState(f.fan.GetId()); err == nil {
		ui.Debug("Last applied level of %s was %d", f.fan.GetId(), level)
	}

	ui.Info("Starting controller loop for fan '%s'", f.fan.GetId())

	tick := time.Tick(f.tickRate)
	for {
		select {
		case <-ctx.Done():
			ui.Info("Stopping controller loop for fan '%s'", f.fan.GetId())
			return nil
		case <-tick:
			// read/compute/apply failures are recoverable, the next tick
			// is the retry
			_ = f.UpdateFanSpeed()
		}
	}
}

func (f *fanController) UpdateFanSpeed() error {
	temperature, err := f.sensor.GetValue()
	if err != nil {
		ui.Warning("Unable to read sensor %s, skipping this cycle: %v", f.sensor.GetId(), err)
		return nil
	}

	target := f.curve.LevelForTemperature(temperature)
	ui.Debug("Temp: %.2f°C (avg %.2f°C), target level: %d", temperature, f.sensor.GetMovingAvg(), target)

	return f.setLevel(target, temperature)
}

func (f *fanController) setLevel(target int, temperature float64) error {
	if f.lastSetLevel != nil && *f.lastSetLevel == target {
		ui.Debug("Level of %s unchanged, skipping write", f.fan.GetId())
		return nil
	}

	if err := f.fan.SetState(target); err != nil {
		// hardware keeps its previous level, the next tick retries
		ui.Error("Unable to set level %d on %s: %v", target, f.fan.GetId(), err)
		return nil
	}

	ui.Info("Adjusting fan speed to %d (Temp: %.2f°C)", target, temperature)
	f.lastSetLevel = &target

	if err := f.persistence.SaveFanState(f.fan.GetId(), target); err != nil {
		ui.Warning("Unable to save fan state of %s: %v", f.fan.GetId(), err)
	}

	return nil
}
