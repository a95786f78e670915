package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/hbstools/hbstools/search"
)

// File is the on-disk YAML shape of an hbstools run configuration. Its
// field names mirror spec §4.9's recognized keys.
type File struct {
	Binning    float64 `yaml:"binning"`
	Skip       int     `yaml:"skip"`
	EnergyLims [2]float64 `yaml:"energy_lims"`

	AlgorithmParams struct {
		ThresholdStd float64  `yaml:"threshold_std"`
		MuMin        float64  `yaml:"mu_min"`
		Alpha        float64  `yaml:"alpha"`
		Beta         *float64 `yaml:"beta,omitempty"`
		M            int      `yaml:"m"`
		Sleep        int      `yaml:"sleep"`
		TMax         *int     `yaml:"t_max,omitempty"`
		Majority     *int     `yaml:"majority,omitempty"`
	} `yaml:"algorithm_params"`

	AbsTol float64 `yaml:"abs_tol,omitempty"`
}

// Load reads and unmarshals a YAML configuration file and converts it
// to a search.Config, applying the caller-side checks spec §6 assigns
// to the adapter rather than the core.
func Load(path string) (search.Config, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return search.Config{}, fmt.Errorf("config: read %s: %w", path, err)
	}

	var f File
	if err := yaml.Unmarshal(raw, &f); err != nil {
		return search.Config{}, fmt.Errorf("config: parse %s: %w", path, err)
	}

	if err := f.callerValidate(); err != nil {
		return search.Config{}, fmt.Errorf("config: %s: %w", path, err)
	}

	return f.toSearchConfig(), nil
}

// callerValidate enforces combinations the core does not itself check,
// per spec §6: a majority key only makes sense alongside a properly
// configured alpha.
func (f File) callerValidate() error {
	if f.AlgorithmParams.Majority != nil && f.AlgorithmParams.Alpha <= 0 {
		return fmt.Errorf("majority requires a positive alpha")
	}
	return nil
}

func (f File) toSearchConfig() search.Config {
	return search.Config{
		Binning:    f.Binning,
		Skip:       f.Skip,
		EnergyLow:  f.EnergyLims[0],
		EnergyHigh: f.EnergyLims[1],
		AbsTol:     f.AbsTol,
		AlgorithmParams: search.AlgorithmParams{
			ThresholdStd: f.AlgorithmParams.ThresholdStd,
			MuMin:        f.AlgorithmParams.MuMin,
			Alpha:        f.AlgorithmParams.Alpha,
			Beta:         f.AlgorithmParams.Beta,
			M:            f.AlgorithmParams.M,
			Sleep:        f.AlgorithmParams.Sleep,
			TMax:         f.AlgorithmParams.TMax,
			Majority:     f.AlgorithmParams.Majority,
		},
	}
}
