package fans

import (
	"path/filepath"

	"github.com/pwmfand/pwmfand/internal/util"
)

const (
	FileNameCurState = "cur_state"
	FileNameMaxState = "max_state"
)

// ThermalFan drives a /sys/class/thermal cooling device of type pwm-fan
// through its cur_state/max_state attributes.
type ThermalFan struct {
	ID   string
	Path string
}

func NewThermalFan(id string, path string) *ThermalFan {
	return &ThermalFan{
		ID:   id,
		Path: path,
	}
}

func (fan *ThermalFan) GetId() string {
	return fan.ID
}

func (fan *ThermalFan) GetMaxState() (int, error) {
	return util.ReadIntFromFile(filepath.Join(fan.Path, FileNameMaxState))
}

func (fan *ThermalFan) GetState() (int, error) {
	return util.ReadIntFromFile(filepath.Join(fan.Path, FileNameCurState))
}

func (fan *ThermalFan) SetState(level int) error {
	if err := checkLevel(level); err != nil {
		return err
	}
	// sysfs does not support rename, write in place
	return util.WriteIntToFile(level, filepath.Join(fan.Path, FileNameCurState))
}
