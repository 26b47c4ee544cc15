package configuration

import (
	"testing"
	"time"

	"github.com/mitchellh/mapstructure"
	"github.com/stretchr/testify/assert"
)

type sleepConfig struct {
	SleepTime time.Duration `mapstructure:"sleeptime"`
}

func decodeSleepTime(t *testing.T, input interface{}) time.Duration {
	var cfg sleepConfig

	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		DecodeHook: mapstructure.ComposeDecodeHookFunc(
			SecondsToDurationHookFunc(),
			mapstructure.StringToTimeDurationHookFunc(),
		),
		Result: &cfg,
	})
	assert.NoError(t, err)

	err = decoder.Decode(map[string]interface{}{"sleeptime": input})
	assert.NoError(t, err)

	return cfg.SleepTime
}

func TestSecondsToDurationHookBareInt(t *testing.T) {
	assert.Equal(t, 5*time.Second, decodeSleepTime(t, 5))
}

func TestSecondsToDurationHookBareString(t *testing.T) {
	assert.Equal(t, 10*time.Second, decodeSleepTime(t, "10"))
}

func TestSecondsToDurationHookDurationString(t *testing.T) {
	assert.Equal(t, time.Minute, decodeSleepTime(t, "1m"))
}
