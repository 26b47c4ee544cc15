package configuration

import (
	"os"
	"time"

	"github.com/mitchellh/go-homedir"
	"github.com/mitchellh/mapstructure"
	"github.com/pwmfand/pwmfand/internal/ui"
	"github.com/spf13/viper"
)

// Configuration holds the tunables of the control loop. It is populated
// once at startup and never mutated afterwards, except for MaxState,
// which may be resolved from the fan device before the loop starts.
type Configuration struct {
	LogLevel string `json:"logLevel"`

	// SleepTime is the pause between two control loop ticks.
	SleepTime time.Duration `json:"sleepTime"`

	// MinState and MaxState bound the fan levels the controller may apply.
	// MaxState < 0 means "not configured", in which case the daemon asks
	// the fan device for its maximum supported state.
	MinState int `json:"minState"`
	MaxState int `json:"maxState"`

	// MinThreshold and MaxThreshold are the temperatures (°C) at which the
	// fan engages its first nonzero level and its maximum level.
	MinThreshold float64 `json:"minThreshold"`
	MaxThreshold float64 `json:"maxThreshold"`

	DbPath string `json:"dbPath"`

	// FanDevice and SensorPath override sysfs auto-discovery.
	FanDevice  string `json:"fanDevice"`
	SensorPath string `json:"sensorPath"`
}

// IsMaxStateSet indicates whether MAX_STATE was configured explicitly.
func (c Configuration) IsMaxStateSet() bool {
	return c.MaxState >= 0
}

var CurrentConfig Configuration

// InitConfig sets up the config file search paths and environment bindings.
func InitConfig(cfgFile string) {
	viper.SetConfigName("pwmfand")

	if cfgFile != "" {
		// Use config file from the flag.
		viper.SetConfigFile(cfgFile)
	} else {
		// Find home directory.
		home, err := homedir.Dir()
		if err != nil {
			ui.Error("Couldn't detect home directory: %v", err)
			os.Exit(1)
		}

		viper.AddConfigPath(".")
		viper.AddConfigPath(home)
		viper.AddConfigPath("/etc/pwmfand/")
	}

	// the service has historically been configured through its environment
	_ = viper.BindEnv("loglevel", "LOG_LEVEL")
	_ = viper.BindEnv("sleeptime", "SLEEP_TIME")
	_ = viper.BindEnv("minstate", "MIN_STATE")
	_ = viper.BindEnv("maxstate", "MAX_STATE")
	_ = viper.BindEnv("minthreshold", "MIN_THRESHOLD")
	_ = viper.BindEnv("maxthreshold", "MAX_THRESHOLD")
	_ = viper.BindEnv("dbpath", "DB_PATH")
	_ = viper.BindEnv("fandevice", "FAN_DEVICE")
	_ = viper.BindEnv("sensorpath", "SENSOR_PATH")
	viper.AutomaticEnv()

	setDefaultValues()
}

func setDefaultValues() {
	viper.SetDefault("loglevel", "info")
	viper.SetDefault("sleeptime", 5)
	viper.SetDefault("minstate", 0)
	// resolved from the fan device when left unset
	viper.SetDefault("maxstate", -1)
	viper.SetDefault("minthreshold", 45.0)
	viper.SetDefault("maxthreshold", 65.0)
	viper.SetDefault("dbpath", "/etc/pwmfand/pwmfand.db")
	viper.SetDefault("fandevice", "")
	viper.SetDefault("sensorpath", "")
}

// DetectConfigFile returns the path of the config file in use, if any.
func DetectConfigFile() string {
	// a config file is optional, the environment alone is enough
	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			ui.Fatal("Error reading config file: %s", err)
		}
	}
	return viper.ConfigFileUsed()
}

// LoadConfig decodes the current viper state into CurrentConfig.
func LoadConfig() {
	err := viper.Unmarshal(
		&CurrentConfig,
		viper.DecodeHook(mapstructure.ComposeDecodeHookFunc(
			SecondsToDurationHookFunc(),
			mapstructure.StringToTimeDurationHookFunc(),
		)),
	)
	if err != nil {
		ui.Fatal("unable to decode into struct, %v", err)
	}
}
