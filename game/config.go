package game

import (
	"fmt"

	"github.com/memmaker/unitcommand/engine/util"
	"github.com/pkg/errors"
	"github.com/spf13/viper"
)

// Config holds the tunables shared by the selection and movement systems.
// ArrivalThresholdSq is the single arrival constant used by both the
// override arbiter and the unit mover.
type Config struct {
	RingSpacing                    float32 `mapstructure:"ringSpacing" yaml:"ringSpacing"`
	MultipleSelectionSizeThreshold float32 `mapstructure:"multipleSelectionSizeThreshold" yaml:"multipleSelectionSizeThreshold"`
	ArrivalThresholdSq             float32 `mapstructure:"arrivalThresholdSq" yaml:"arrivalThresholdSq"`
	DefaultMoveSpeed               float32 `mapstructure:"defaultMoveSpeed" yaml:"defaultMoveSpeed"`
	DefaultRotationSpeed           float32 `mapstructure:"defaultRotationSpeed" yaml:"defaultRotationSpeed"`
	RayCastDistance                float32 `mapstructure:"rayCastDistance" yaml:"rayCastDistance"`
	UnitsLayer                     uint    `mapstructure:"unitsLayer" yaml:"unitsLayer"`
	SelectedShowScale              float32 `mapstructure:"selectedShowScale" yaml:"selectedShowScale"`
	MoverBatchSize                 int     `mapstructure:"moverBatchSize" yaml:"moverBatchSize"`
	MoverWorkers                   int     `mapstructure:"moverWorkers" yaml:"moverWorkers"`
	LogLevel                       string  `mapstructure:"logLevel" yaml:"logLevel"`
}

var configDefaults = map[string]any{
	"ringSpacing":                    2.2,
	"multipleSelectionSizeThreshold": 40.0,
	"arrivalThresholdSq":             2.0,
	"defaultMoveSpeed":               5.0,
	"defaultRotationSpeed":           10.0,
	"rayCastDistance":                9999.0,
	"unitsLayer":                     6,
	"selectedShowScale":              2.0,
	"moverBatchSize":                 64,
	"moverWorkers":                   0,
	"logLevel":                       "info",
}

func DefaultConfig() Config {
	return Config{
		RingSpacing:                    2.2,
		MultipleSelectionSizeThreshold: 40,
		ArrivalThresholdSq:             2,
		DefaultMoveSpeed:               5,
		DefaultRotationSpeed:           10,
		RayCastDistance:                9999,
		UnitsLayer:                     6,
		SelectedShowScale:              2,
		MoverBatchSize:                 64,
		MoverWorkers:                   0,
		LogLevel:                       "info",
	}
}

// LoadConfig reads a YAML or JSON config file on top of the defaults.
// An empty path returns the defaults.
func LoadConfig(path string) (Config, error) {
	v := viper.New()
	for key, value := range configDefaults {
		v.SetDefault(key, value)
	}
	v.SetEnvPrefix("UNITSIM")
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return Config{}, errors.Wrapf(err, "error reading config file %s", path)
		}
		util.LogConfigInfo(fmt.Sprintf("[Config] Loaded %s", path))
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, errors.Wrap(err, "error decoding config")
	}
	if err := cfg.Validate(); err != nil {
		util.LogConfigError(fmt.Sprintf("[Config] Rejected %q: %v", path, err))
		return Config{}, err
	}
	return cfg, nil
}

func (c Config) Validate() error {
	if c.RingSpacing <= 0 {
		return errors.Errorf("ringSpacing must be positive, got %v", c.RingSpacing)
	}
	if c.MultipleSelectionSizeThreshold < 0 {
		return errors.Errorf("multipleSelectionSizeThreshold must not be negative, got %v", c.MultipleSelectionSizeThreshold)
	}
	if c.ArrivalThresholdSq <= 0 {
		return errors.Errorf("arrivalThresholdSq must be positive, got %v", c.ArrivalThresholdSq)
	}
	if c.DefaultMoveSpeed <= 0 {
		return errors.Errorf("defaultMoveSpeed must be positive, got %v", c.DefaultMoveSpeed)
	}
	if c.DefaultRotationSpeed <= 0 {
		return errors.Errorf("defaultRotationSpeed must be positive, got %v", c.DefaultRotationSpeed)
	}
	if c.RayCastDistance <= 0 {
		return errors.Errorf("rayCastDistance must be positive, got %v", c.RayCastDistance)
	}
	if c.UnitsLayer > 31 {
		return errors.Errorf("unitsLayer must be in 0..31, got %d", c.UnitsLayer)
	}
	if c.MoverBatchSize <= 0 {
		return errors.Errorf("moverBatchSize must be positive, got %d", c.MoverBatchSize)
	}
	if c.MoverWorkers < 0 {
		return errors.Errorf("moverWorkers must not be negative, got %d", c.MoverWorkers)
	}
	if _, err := util.ParseLogLevel(c.LogLevel); err != nil {
		return errors.Wrap(err, "logLevel")
	}
	return nil
}

func (c Config) UnitsFilter() util.CollisionFilter {
	return util.LayerFilter(c.UnitsLayer)
}
