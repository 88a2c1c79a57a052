package config

import "sort"

var Presets = map[string]*Config{
	"default": DefaultConfig(),
	"empty": {
		Width: DefaultWidth, Height: DefaultHeight, TargetTickMs: DefaultTargetTickMs,
		InitialBodies: 0, SpawnIntervalMs: DefaultSpawnIntervalMs, Theme: DefaultTheme,
	},
	"crowd": {
		Width: DefaultWidth, Height: DefaultHeight, TargetTickMs: DefaultTargetTickMs,
		InitialBodies: 80, SpawnIntervalMs: 50, Theme: "ember",
	},
	"sparse": {
		Width: DefaultWidth, Height: DefaultHeight, TargetTickMs: 33,
		InitialBodies: 5, SpawnIntervalMs: DefaultSpawnIntervalMs, Theme: "mono",
	},
}

// GetPreset returns a copy of the named preset, or nil.
func GetPreset(name string) *Config {
	cfg, ok := Presets[name]
	if !ok {
		return nil
	}
	c := *cfg
	return &c
}

func ListPresets() []string {
	names := make([]string, 0, len(Presets))
	for name := range Presets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
