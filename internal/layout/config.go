package layout

import "fmt"

// Config is the page geometry and base style a layout is computed against.
// Geometry is in millimeters, font size in points.
type Config struct {
	PageWidth  float64 `json:"page_width"`
	PageHeight float64 `json:"page_height"`

	MarginTop    float64 `json:"margin_top"`
	MarginBottom float64 `json:"margin_bottom"`
	MarginLeft   float64 `json:"margin_left"`
	MarginRight  float64 `json:"margin_right"`

	FontFamily string  `json:"font_family"`
	FontSize   float64 `json:"font_size"`
	LineHeight float64 `json:"line_height"`

	PrimaryColor    string `json:"primary_color"`
	AccentColor     string `json:"accent_color"`
	BackgroundColor string `json:"background_color"`
}

// DefaultConfig returns the A4 serif defaults.
func DefaultConfig() Config {
	return Config{
		PageWidth:       210,
		PageHeight:      297,
		MarginTop:       2.0,
		MarginBottom:    2.0,
		MarginLeft:      1.5,
		MarginRight:     1.5,
		FontFamily:      "Georgia",
		FontSize:        12,
		LineHeight:      1.5,
		PrimaryColor:    "#1a1a1a",
		AccentColor:     "#8b7355",
		BackgroundColor: "#ffffff",
	}
}

// ConfigError reports a config key whose value has the wrong type.
type ConfigError struct {
	Key   string
	Value any
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("layout config: key %q has invalid value %v (%T)", e.Key, e.Value, e.Value)
}

// ParseConfig merges overrides on top of the defaults, last key wins.
// Unknown keys are ignored; missing keys keep their defaults. A non-numeric
// value for a geometry or font key fails fast with a *ConfigError rather
// than silently miscomputing the layout.
func ParseConfig(overrides map[string]any) (Config, error) {
	cfg := DefaultConfig()

	for key, value := range overrides {
		switch key {
		case "page_width", "page_height",
			"margin_top", "margin_bottom", "margin_left", "margin_right",
			"font_size", "line_height":
			n, ok := asFloat(value)
			if !ok {
				return cfg, &ConfigError{Key: key, Value: value}
			}
			switch key {
			case "page_width":
				cfg.PageWidth = n
			case "page_height":
				cfg.PageHeight = n
			case "margin_top":
				cfg.MarginTop = n
			case "margin_bottom":
				cfg.MarginBottom = n
			case "margin_left":
				cfg.MarginLeft = n
			case "margin_right":
				cfg.MarginRight = n
			case "font_size":
				cfg.FontSize = n
			case "line_height":
				cfg.LineHeight = n
			}
		case "font_family", "primary_color", "accent_color", "background_color":
			s, ok := value.(string)
			if !ok {
				return cfg, &ConfigError{Key: key, Value: value}
			}
			switch key {
			case "font_family":
				cfg.FontFamily = s
			case "primary_color":
				cfg.PrimaryColor = s
			case "accent_color":
				cfg.AccentColor = s
			case "background_color":
				cfg.BackgroundColor = s
			}
		}
	}

	return cfg, nil
}

// asFloat accepts the numeric shapes JSON decoding and Go callers produce.
func asFloat(v any) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, true
	case float32:
		return float64(n), true
	case int:
		return float64(n), true
	case int64:
		return float64(n), true
	default:
		return 0, false
	}
}
