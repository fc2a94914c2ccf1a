// Package config loads, defaults and validates the batch formatter's
// settings, and converts them into engine parameters.
package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/ironsheep/polaroid-compose/internal/layout"
	"github.com/ironsheep/polaroid-compose/internal/logo"
)

// ErrInvalidConfig wraps every validation failure.
var ErrInvalidConfig = errors.New("invalid config")

// Config holds the application configuration
type Config struct {
	InboxDir            string   `json:"inbox_dir" yaml:"inbox_dir"`
	OutDir              string   `json:"out_dir" yaml:"out_dir"`
	DoneDir             string   `json:"done_dir" yaml:"done_dir"`
	OutputSuffix        string   `json:"output_suffix" yaml:"output_suffix"`
	OutputExtension     string   `json:"output_extension" yaml:"output_extension"`
	JPEGQuality         int      `json:"jpeg_quality" yaml:"jpeg_quality"`
	MoveProcessedToDone bool     `json:"move_processed_to_done" yaml:"move_processed_to_done"`
	SupportedExtensions []string `json:"supported_extensions" yaml:"supported_extensions"`
	// Workers bounds concurrent files in a batch; 0 means one per CPU.
	Workers     int    `json:"workers" yaml:"workers"`
	LogFile     string `json:"log_file" yaml:"log_file"`
	DebugGuides bool   `json:"debug_guides" yaml:"debug_guides"`

	Canvas     CanvasConfig     `json:"canvas" yaml:"canvas"`
	Foreground ForegroundConfig `json:"foreground" yaml:"foreground"`
	Background BackgroundConfig `json:"background" yaml:"background"`
	Logo       LogoConfig       `json:"logo" yaml:"logo"`
}

// CanvasConfig is the output size in pixels.
type CanvasConfig struct {
	Width  int `json:"width" yaml:"width"`
	Height int `json:"height" yaml:"height"`
}

// ForegroundConfig selects the paper scale.
type ForegroundConfig struct {
	Mode  string  `json:"mode" yaml:"mode"`
	Ratio float64 `json:"ratio" yaml:"ratio"`
	// WidthRatio is the older single-knob form; set alone it selects
	// width_ratio mode.
	WidthRatio float64 `json:"width_ratio,omitempty" yaml:"width_ratio,omitempty"`
}

// BackgroundConfig holds configuration for the backdrop layer
type BackgroundConfig struct {
	Softening  string          `json:"softening" yaml:"softening"`
	ExtraScale float64         `json:"extra_scale" yaml:"extra_scale"`
	BlurRadius float64         `json:"blur_radius" yaml:"blur_radius"`
	Brightness float64         `json:"brightness" yaml:"brightness"`
	Saturation float64         `json:"saturation" yaml:"saturation"`
	SafeCrop   layout.SafeCrop `json:"safe_crop" yaml:"safe_crop"`
}

// Position is a point given as fractions of the canvas.
type Position struct {
	X float64 `json:"x" yaml:"x"`
	Y float64 `json:"y" yaml:"y"`
}

// LogoConfig holds configuration for the branding overlay
type LogoConfig struct {
	Enabled bool `json:"enabled" yaml:"enabled"`

	Dir      string   `json:"dir" yaml:"dir"`
	List     []string `json:"list" yaml:"list"`
	AutoScan bool     `json:"auto_scan" yaml:"auto_scan"`
	// ID is shorthand for an image brand selected by logo ID.
	ID int `json:"id,omitempty" yaml:"id,omitempty"`

	Brand logo.Item `json:"brand" yaml:"brand"`
	Model logo.Item `json:"model" yaml:"model"`

	Placement        string            `json:"placement" yaml:"placement"`
	LenientPlacement bool              `json:"lenient_placement" yaml:"lenient_placement"`
	MarginRatio      float64           `json:"margin_ratio" yaml:"margin_ratio"`
	ScaleRatio       float64           `json:"scale_ratio" yaml:"scale_ratio"`
	GapRatio         float64           `json:"gap_ratio" yaml:"gap_ratio"`
	Opacity          float64           `json:"opacity" yaml:"opacity"`
	CustomPosition   Position          `json:"custom_position" yaml:"custom_position"`
	BottomBand       layout.BottomBand `json:"bottom_band" yaml:"bottom_band"`
}

// Default returns a configuration with default values
func Default() *Config {
	return &Config{
		InboxDir:            "inbox",
		OutDir:              "out",
		DoneDir:             "done",
		OutputSuffix:        "_fmt",
		OutputExtension:     "jpg",
		JPEGQuality:         92,
		MoveProcessedToDone: true,
		SupportedExtensions: []string{".jpg", ".jpeg", ".png", ".webp", ".gif", ".bmp", ".tif", ".tiff"},
		Canvas:              CanvasConfig{Width: 2000, Height: 3000},
		Foreground:          ForegroundConfig{Mode: string(layout.ScaleGolden)},
		Background: BackgroundConfig{
			Softening:  "zoom",
			ExtraScale: 1.15,
			BlurRadius: 18,
			Brightness: 0.85,
			Saturation: 0.9,
		},
		Logo: LogoConfig{
			Dir:         "assets/logos",
			Placement:   string(layout.PlacementBottomRight),
			MarginRatio: 0.02,
			ScaleRatio:  0.055,
			GapRatio:    0.015,
			Opacity:     0.9,
			CustomPosition: Position{
				X: 0.98,
				Y: 0.98,
			},
			BottomBand: layout.DefaultBottomBand,
		},
	}
}

// LoadFromFile reads a JSON or YAML (.yaml, .yml) file over the defaults,
// so omitted keys keep their default values. The result is not validated.
func LoadFromFile(filename string) (*Config, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	cfg := Default()
	switch strings.ToLower(filepath.Ext(filename)) {
	case ".yaml", ".yml":
		err = yaml.Unmarshal(data, cfg)
	default:
		err = json.Unmarshal(data, cfg)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to parse config file %s: %w", filename, err)
	}

	cfg.normalize()
	return cfg, nil
}

// normalize folds legacy and shorthand keys into their current form.
func (c *Config) normalize() {
	c.OutputExtension = strings.ToLower(strings.TrimPrefix(c.OutputExtension, "."))
	for i, ext := range c.SupportedExtensions {
		ext = strings.ToLower(ext)
		if ext != "" && !strings.HasPrefix(ext, ".") {
			ext = "." + ext
		}
		c.SupportedExtensions[i] = ext
	}

	if fg := &c.Foreground; fg.WidthRatio > 0 && fg.Ratio == 0 {
		fg.Ratio = fg.WidthRatio
		if fg.Mode == "" || fg.Mode == string(layout.ScaleGolden) {
			fg.Mode = string(layout.ScaleWidthRatio)
		}
	}

	if l := &c.Logo; l.ID > 0 && l.Brand.IsZero() {
		l.Brand = logo.Item{Kind: logo.KindImage, ID: l.ID}
	}
}

// SaveToFile writes the configuration as indented JSON, or YAML for .yaml
// and .yml names.
func (c *Config) SaveToFile(filename string) error {
	dir := filepath.Dir(filename)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	var (
		data []byte
		err  error
	)
	switch strings.ToLower(filepath.Ext(filename)) {
	case ".yaml", ".yml":
		data, err = yaml.Marshal(c)
	default:
		data, err = json.MarshalIndent(c, "", "  ")
	}
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(filename, data, 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}
	return nil
}

// WithOverrides returns a copy of c with the JSON object raw applied on top.
// Keys absent from raw keep c's values. An empty raw returns a plain copy.
func (c *Config) WithOverrides(raw json.RawMessage) (*Config, error) {
	base, err := json.Marshal(c)
	if err != nil {
		return nil, fmt.Errorf("failed to copy config: %w", err)
	}
	out := &Config{}
	if err := json.Unmarshal(base, out); err != nil {
		return nil, fmt.Errorf("failed to copy config: %w", err)
	}
	if len(raw) > 0 && string(raw) != "null" {
		if err := json.Unmarshal(raw, out); err != nil {
			return nil, fmt.Errorf("failed to apply overrides: %w", err)
		}
	}
	out.normalize()
	return out, nil
}
