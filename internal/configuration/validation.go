package configuration

import (
	"fmt"

	"golang.org/x/exp/slices"
)

// LogLevels lists the accepted values for LOG_LEVEL.
var LogLevels = []string{"trace", "debug", "info", "warn", "error"}

// FieldError is a validation failure tied to a single configuration field.
type FieldError struct {
	Field   string
	Message string
}

func (e *FieldError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

func fieldErrorf(field string, format string, a ...interface{}) *FieldError {
	return &FieldError{
		Field:   field,
		Message: fmt.Sprintf(format, a...),
	}
}

// Validate checks all configuration rules that can be verified without
// access to the fan device.
func Validate(config *Configuration) error {
	if !slices.Contains(LogLevels, config.LogLevel) {
		return fieldErrorf("LOG_LEVEL", "unknown log level '%s', use one of: trace | debug | info | warn | error", config.LogLevel)
	}

	if config.SleepTime <= 0 {
		return fieldErrorf("SLEEP_TIME", "must be a positive number of seconds, got %v", config.SleepTime)
	}

	if config.MinState < MinFanState || config.MinState > MaxFanState {
		return fieldErrorf("MIN_STATE", "must be in [%d..%d], got %d", MinFanState, MaxFanState, config.MinState)
	}

	if config.IsMaxStateSet() {
		if config.MaxState < MinFanState || config.MaxState > MaxFanState {
			return fieldErrorf("MAX_STATE", "must be in [%d..%d], got %d", MinFanState, MaxFanState, config.MaxState)
		}
		if config.MinState > config.MaxState {
			return fieldErrorf("MIN_STATE", "must not exceed MAX_STATE (%d > %d)", config.MinState, config.MaxState)
		}
	}

	if config.MinThreshold <= 0 {
		return fieldErrorf("MIN_THRESHOLD", "must be a positive temperature, got %v", config.MinThreshold)
	}
	if config.MaxThreshold <= 0 {
		return fieldErrorf("MAX_THRESHOLD", "must be a positive temperature, got %v", config.MaxThreshold)
	}
	if config.MinThreshold >= config.MaxThreshold {
		return fieldErrorf("MIN_THRESHOLD", "must be below MAX_THRESHOLD (%v >= %v)", config.MinThreshold, config.MaxThreshold)
	}

	return nil
}

// ValidateAgainstDevice additionally checks the configured states against
// the maximum state reported by the fan device.
func ValidateAgainstDevice(config *Configuration, deviceMaxState int) error {
	if err := Validate(config); err != nil {
		return err
	}

	if config.IsMaxStateSet() && config.MaxState > deviceMaxState {
		return fieldErrorf("MAX_STATE", "configured max state %d exceeds device max state %d", config.MaxState, deviceMaxState)
	}

	return nil
}
