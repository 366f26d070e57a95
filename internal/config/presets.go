package config

import "sort"

// Presets are ready-made plans for the run command and the interactive
// front-end.
var Presets = map[string]*Config{
	"starter": {
		Principal: 500, Rate: 5.0, Interval: "monthly", Deposit: 50, Years: 10,
	},
	"retirement": {
		Principal: 10000, Rate: 7.0, Interval: "monthly", Deposit: 500, Years: 30,
	},
	"aggressive": {
		Principal: 1000, Rate: 12.0, Interval: "weekly", Deposit: 100, Years: 15,
	},
	"rainy-day": {
		Principal: 0, Rate: 3.0, Interval: "monthly", Deposit: 200, Years: 5,
	},
	"lump-sum": {
		Principal: 50000, Rate: 6.0, Interval: "yearly", Deposit: 0, Years: 20,
	},
}

func GetPreset(name string) *Config {
	cfg, ok := Presets[name]
	if !ok {
		return nil
	}
	clone := *cfg
	return &clone
}

func ListPresets() []string {
	names := make([]string, 0, len(Presets))
	for name := range Presets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
