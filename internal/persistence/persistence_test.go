package persistence

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
)

func createPersistence(t *testing.T) Persistence {
	p := NewPersistence(filepath.Join(t.TempDir(), "pwmfand.db"))
	assert.NoError(t, p.Init())
	return p
}

func TestPersistence_SaveLoadFanState(t *testing.T) {
	// GIVEN
	p := createPersistence(t)

	// WHEN
	err := p.SaveFanState("fan", 3)
	assert.NoError(t, err)

	// THEN
	level, err := p.LoadFanState("fan")
	assert.NoError(t, err)
	assert.Equal(t, 3, level)
}

func TestPersistence_OverwriteFanState(t *testing.T) {
	// GIVEN
	p := createPersistence(t)
	assert.NoError(t, p.SaveFanState("fan", 2))

	// WHEN
	assert.NoError(t, p.SaveFanState("fan", 5))

	// THEN
	level, err := p.LoadFanState("fan")
	assert.NoError(t, err)
	assert.Equal(t, 5, level)
}

func TestPersistence_LoadUnknownFan(t *testing.T) {
	// GIVEN
	p := createPersistence(t)
	assert.NoError(t, p.SaveFanState("fan", 1))

	// WHEN
	_, err := p.LoadFanState("other")

	// THEN
	assert.Error(t, err)
}

func TestPersistence_DeleteFanState(t *testing.T) {
	// GIVEN
	p := createPersistence(t)
	assert.NoError(t, p.SaveFanState("fan", 4))

	// WHEN
	err := p.DeleteFanState("fan")
	assert.NoError(t, err)

	// THEN
	_, err = p.LoadFanState("fan")
	assert.Error(t, err)
}
