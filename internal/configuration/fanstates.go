package configuration

// Fan levels are discrete: 0 turns the fan off, MaxFanState is full speed.
const (
	MinFanState = 0
	MaxFanState = 5
)
