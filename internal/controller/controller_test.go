package controller

import (
	"context"
	"errors"
	"path/filepath"
	"testing"
	"time"

	"github.com/pwmfand/pwmfand/internal/configuration"
	"github.com/pwmfand/pwmfand/internal/curve"
	"github.com/pwmfand/pwmfand/internal/persistence"
	"github.com/stretchr/testify/assert"
)

type MockSensor struct {
	ID          string
	Temperature float64
	Failing     bool
	ReadCount   int
}

func (sensor *MockSensor) GetId() string {
	return sensor.ID
}

func (sensor *MockSensor) GetValue() (float64, error) {
	sensor.ReadCount++
	if sensor.Failing {
		return 0, errors.New("sensor read failed")
	}
	return sensor.Temperature, nil
}

func (sensor *MockSensor) GetMovingAvg() float64 {
	return sensor.Temperature
}

type MockFan struct {
	ID         string
	State      int
	Failing    bool
	WriteCount int
}

func (fan *MockFan) GetId() string {
	return fan.ID
}

func (fan *MockFan) GetMaxState() (int, error) {
	return configuration.MaxFanState, nil
}

func (fan *MockFan) GetState() (int, error) {
	return fan.State, nil
}

func (fan *MockFan) SetState(level int) error {
	if fan.Failing {
		return errors.New("actuator write failed")
	}
	fan.State = level
	fan.WriteCount++
	return nil
}

func defaultCurve() *curve.LevelCurve {
	return curve.NewLevelCurve(configuration.Configuration{
		MinState:     0,
		MaxState:     5,
		MinThreshold: 45,
		MaxThreshold: 65,
	})
}

func createController(t *testing.T, sensor *MockSensor, fan *MockFan, tickRate time.Duration) FanController {
	p := persistence.NewPersistence(filepath.Join(t.TempDir(), "test.db"))
	assert.NoError(t, p.Init())
	return NewFanController(p, fan, sensor, defaultCurve(), tickRate)
}

func TestUpdateFanSpeedAppliesMappedLevel(t *testing.T) {
	// GIVEN
	sensor := &MockSensor{ID: "cpu", Temperature: 55}
	fan := &MockFan{ID: "fan"}
	controller := createController(t, sensor, fan, time.Second)

	// WHEN
	err := controller.UpdateFanSpeed()

	// THEN
	assert.NoError(t, err)
	assert.Equal(t, 3, fan.State)
	assert.Equal(t, 1, fan.WriteCount)
}

func TestUpdateFanSpeedMemoizesWrites(t *testing.T) {
	// GIVEN
	sensor := &MockSensor{ID: "cpu", Temperature: 55}
	fan := &MockFan{ID: "fan"}
	controller := createController(t, sensor, fan, time.Second)

	// WHEN
	assert.NoError(t, controller.UpdateFanSpeed())
	assert.NoError(t, controller.UpdateFanSpeed())
	assert.NoError(t, controller.UpdateFanSpeed())

	// THEN
	assert.Equal(t, 1, fan.WriteCount)
}

func TestUpdateFanSpeedFollowsTemperatureChanges(t *testing.T) {
	// GIVEN
	sensor := &MockSensor{ID: "cpu", Temperature: 44}
	fan := &MockFan{ID: "fan"}
	controller := createController(t, sensor, fan, time.Second)

	// WHEN / THEN
	assert.NoError(t, controller.UpdateFanSpeed())
	assert.Equal(t, 0, fan.State)

	sensor.Temperature = 65
	assert.NoError(t, controller.UpdateFanSpeed())
	assert.Equal(t, 5, fan.State)

	sensor.Temperature = 50
	assert.NoError(t, controller.UpdateFanSpeed())
	assert.Equal(t, 2, fan.State)
}

func TestSensorFailureSkipsCycle(t *testing.T) {
	// GIVEN
	sensor := &MockSensor{ID: "cpu", Temperature: 55, Failing: true}
	fan := &MockFan{ID: "fan"}
	controller := createController(t, sensor, fan, time.Second)

	// WHEN
	err := controller.UpdateFanSpeed()

	// THEN
	assert.NoError(t, err)
	assert.Equal(t, 0, fan.WriteCount)

	// WHEN the sensor recovers
	sensor.Failing = false
	err = controller.UpdateFanSpeed()

	// THEN the next cycle applies a level again
	assert.NoError(t, err)
	assert.Equal(t, 3, fan.State)
	assert.Equal(t, 1, fan.WriteCount)
}

func TestActuatorFailureKeepsPreviousLevel(t *testing.T) {
	// GIVEN
	sensor := &MockSensor{ID: "cpu", Temperature: 55}
	fan := &MockFan{ID: "fan", Failing: true}
	controller := createController(t, sensor, fan, time.Second)

	// WHEN
	err := controller.UpdateFanSpeed()

	// THEN
	assert.NoError(t, err)
	assert.Equal(t, 0, fan.WriteCount)

	// WHEN the actuator recovers
	fan.Failing = false
	err = controller.UpdateFanSpeed()

	// THEN the write is retried on the next cycle
	assert.NoError(t, err)
	assert.Equal(t, 3, fan.State)
	assert.Equal(t, 1, fan.WriteCount)
}

func TestRunAppliesLevelsOnTicks(t *testing.T) {
	// GIVEN
	sensor := &MockSensor{ID: "cpu", Temperature: 70}
	fan := &MockFan{ID: "fan"}
	controller := createController(t, sensor, fan, 10*time.Millisecond)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error)

	// WHEN
	go func() {
		done <- controller.Run(ctx)
	}()

	assert.Eventually(t, func() bool {
		state, _ := fan.GetState()
		return state == 5
	}, time.Second, 5*time.Millisecond)

	// THEN
	cancel()
	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(time.Second):
		assert.Fail(t, "controller did not stop after cancellation")
	}
}

func TestRunStopsWithinOneTick(t *testing.T) {
	// GIVEN
	tickRate := 50 * time.Millisecond
	sensor := &MockSensor{ID: "cpu", Temperature: 50}
	fan := &MockFan{ID: "fan"}
	controller := createController(t, sensor, fan, tickRate)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error)

	go func() {
		done <- controller.Run(ctx)
	}()

	// WHEN
	cancel()

	// THEN
	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(tickRate):
		assert.Fail(t, "controller did not stop within one tick")
	}
}
