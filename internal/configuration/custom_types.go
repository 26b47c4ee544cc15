package configuration

import (
	"reflect"
	"strconv"
	"time"

	"github.com/mitchellh/mapstructure"
)

// SecondsToDurationHookFunc returns a mapstructure decode hook that
// interprets bare numbers as a count of seconds when decoding into a
// time.Duration. SLEEP_TIME=5 has always meant five seconds; values with
// an explicit unit ("5s", "1m") are left for the duration string hook.
func SecondsToDurationHookFunc() mapstructure.DecodeHookFuncType {
	durationType := reflect.TypeOf(time.Duration(0))

	return func(
		f reflect.Type,
		t reflect.Type,
		data interface{},
	) (interface{}, error) {
		if t != durationType {
			return data, nil
		}

		switch value := data.(type) {
		case int:
			return time.Duration(value) * time.Second, nil
		case int64:
			return time.Duration(value) * time.Second, nil
		case float64:
			return time.Duration(value * float64(time.Second)), nil
		case string:
			seconds, err := strconv.Atoi(value)
			if err != nil {
				// not a bare number, let the next hook try
				return data, nil
			}
			return time.Duration(seconds) * time.Second, nil
		}

		return data, nil
	}
}
