package demo

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"
)

// ErrInvalidConfig is returned for a config that decodes but fails validation.
var ErrInvalidConfig = errors.New("invalid config")

// Config is the demo configuration file.
//
//	window: { width: 1024, height: 768, title: "Table" }
//	rows: 50
//	columns: { index: 60, category: 100, enabled: 155, notes: 400, delete: 100 }
//	resize_columns: true
//	footer: true
//	min_width: true
//	dark_theme: false
//	variant: ""
//	theme_file: theme.yaml
type Config struct {
	Window        WindowConfig `yaml:"window"`
	Rows          int          `yaml:"rows" validate:"gte=0,lte=100000"`
	Columns       ColumnWidths `yaml:"columns"`
	ResizeColumns bool         `yaml:"resize_columns"`
	Footer        bool         `yaml:"footer"`
	MinWidth      bool         `yaml:"min_width"`
	DarkTheme     bool         `yaml:"dark_theme"`
	Variant       string       `yaml:"variant" validate:"max=64"`
	ThemeFile     string       `yaml:"theme_file"`
}

// WindowConfig sizes the demo window.
type WindowConfig struct {
	Width  int    `yaml:"width" validate:"gte=320,lte=16384"`
	Height int    `yaml:"height" validate:"gte=240,lte=16384"`
	Title  string `yaml:"title" validate:"required"`
}

// ColumnWidths are the initial column widths.
type ColumnWidths struct {
	Index    float32 `yaml:"index" validate:"gt=0"`
	Category float32 `yaml:"category" validate:"gt=0"`
	Enabled  float32 `yaml:"enabled" validate:"gt=0"`
	Notes    float32 `yaml:"notes" validate:"gt=0"`
	Delete   float32 `yaml:"delete" validate:"gt=0"`
}

func (w ColumnWidths) widths() map[ColumnKind]float32 {
	return map[ColumnKind]float32{
		ColumnIndex:    w.Index,
		ColumnCategory: w.Category,
		ColumnEnabled:  w.Enabled,
		ColumnNotes:    w.Notes,
		ColumnDelete:   w.Delete,
	}
}

// DefaultConfig returns the settings the demo starts with.
func DefaultConfig() Config {
	return Config{
		Window: WindowConfig{Width: 1024, Height: 768, Title: "Table"},
		Rows:   50,
		Columns: ColumnWidths{
			Index:    ColumnIndex.DefaultWidth(),
			Category: ColumnCategory.DefaultWidth(),
			Enabled:  ColumnEnabled.DefaultWidth(),
			Notes:    ColumnNotes.DefaultWidth(),
			Delete:   ColumnDelete.DefaultWidth(),
		},
		ResizeColumns: true,
		Footer:        true,
		MinWidth:      true,
	}
}

var configValidator = validator.New(validator.WithRequiredStructEnabled())

// Validate checks cfg against its field constraints.
func (c Config) Validate() error {
	if err := configValidator.Struct(c); err != nil {
		var ves validator.ValidationErrors
		if errors.As(err, &ves) {
			fields := make([]string, len(ves))
			for i, fe := range ves {
				fields[i] = fmt.Sprintf("%s (%s)", strings.ToLower(fe.Namespace()), fe.Tag())
			}
			return fmt.Errorf("%w: %s", ErrInvalidConfig, strings.Join(fields, ", "))
		}
		return fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}
	return nil
}

// LoadConfig decodes YAML over the defaults and validates the result.
// Keys missing from the file keep their default values.
func LoadConfig(r io.Reader) (Config, error) {
	cfg := DefaultConfig()
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return Config{}, fmt.Errorf("decode config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// LoadConfigFile is LoadConfig on the file at path.
func LoadConfigFile(path string) (Config, error) {
	f, err := os.Open(path)
	if err != nil {
		return Config{}, fmt.Errorf("open config: %w", err)
	}
	defer f.Close()

	cfg, err := LoadConfig(f)
	if err != nil {
		return Config{}, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}
