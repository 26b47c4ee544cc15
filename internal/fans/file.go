package fans

import (
	"os"
	"os/user"
	"path/filepath"
	"strings"

	"github.com/pwmfand/pwmfand/internal/configuration"
	"github.com/pwmfand/pwmfand/internal/util"
)

// FileFan writes the requested level to a plain file. Useful for testing
// the daemon without hardware and for custom actuator scripts that watch
// a file.
type FileFan struct {
	ID   string
	Path string
}

func NewFileFan(id string, path string) *FileFan {
	return &FileFan{
		ID:   id,
		Path: path,
	}
}

func (fan *FileFan) GetId() string {
	return fan.ID
}

func (fan *FileFan) GetMaxState() (int, error) {
	return configuration.MaxFanState, nil
}

func (fan *FileFan) GetState() (int, error) {
	filePath, err := fan.resolvePath()
	if err != nil {
		return 0, err
	}

	value, err := util.ReadIntFromFile(filePath)
	if os.IsNotExist(err) {
		// nothing written yet
		return 0, nil
	}
	return value, err
}

func (fan *FileFan) SetState(level int) error {
	if err := checkLevel(level); err != nil {
		return err
	}

	filePath, err := fan.resolvePath()
	if err != nil {
		return err
	}
	return util.WriteIntToFileAtomic(level, filePath)
}

func (fan *FileFan) resolvePath() (string, error) {
	filePath := fan.Path
	// resolve home dir path
	if strings.HasPrefix(filePath, "~") {
		currentUser, err := user.Current()
		if err != nil {
			return "", err
		}

		filePath = filepath.Join(currentUser.HomeDir, filePath[1:])
	}
	return filePath, nil
}
