package layout

import (
	"errors"
	"testing"
)

func TestParseConfig_Defaults(t *testing.T) {
	cfg, err := ParseConfig(nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.PageWidth != 210 || cfg.PageHeight != 297 {
		t.Errorf("expected A4 geometry, got %gx%g", cfg.PageWidth, cfg.PageHeight)
	}
	if cfg.FontFamily != "Georgia" || cfg.FontSize != 12 || cfg.LineHeight != 1.5 {
		t.Errorf("unexpected font defaults: %s %g %g", cfg.FontFamily, cfg.FontSize, cfg.LineHeight)
	}
	if cfg.PrimaryColor != "#1a1a1a" || cfg.AccentColor != "#8b7355" || cfg.BackgroundColor != "#ffffff" {
		t.Errorf("unexpected color defaults: %s %s %s",
			cfg.PrimaryColor, cfg.AccentColor, cfg.BackgroundColor)
	}
}

func TestParseConfig_Overrides(t *testing.T) {
	cfg, err := ParseConfig(map[string]any{
		"page_width":    float64(148),
		"font_size":     14, // int, as a Go caller would pass
		"line_height":   1.8,
		"font_family":   "Palatino",
		"accent_color":  "#123456",
		"margin_left":   int64(3),
		"bogus_setting": "ignored",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.PageWidth != 148 {
		t.Errorf("page_width: got %g", cfg.PageWidth)
	}
	if cfg.FontSize != 14 {
		t.Errorf("font_size: got %g", cfg.FontSize)
	}
	if cfg.LineHeight != 1.8 {
		t.Errorf("line_height: got %g", cfg.LineHeight)
	}
	if cfg.FontFamily != "Palatino" {
		t.Errorf("font_family: got %q", cfg.FontFamily)
	}
	if cfg.AccentColor != "#123456" {
		t.Errorf("accent_color: got %q", cfg.AccentColor)
	}
	if cfg.MarginLeft != 3 {
		t.Errorf("margin_left: got %g", cfg.MarginLeft)
	}
	// Untouched keys keep defaults.
	if cfg.PageHeight != 297 || cfg.PrimaryColor != "#1a1a1a" {
		t.Errorf("defaults lost: %g %s", cfg.PageHeight, cfg.PrimaryColor)
	}
}

func TestParseConfig_BadNumericType(t *testing.T) {
	_, err := ParseConfig(map[string]any{"font_size": "twelve"})
	if err == nil {
		t.Fatal("expected error for string font_size")
	}
	var cfgErr *ConfigError
	if !errors.As(err, &cfgErr) {
		t.Fatalf("expected *ConfigError, got %T", err)
	}
	if cfgErr.Key != "font_size" {
		t.Errorf("expected key font_size, got %q", cfgErr.Key)
	}
}

func TestParseConfig_BadStringType(t *testing.T) {
	_, err := ParseConfig(map[string]any{"font_family": 12})
	var cfgErr *ConfigError
	if !errors.As(err, &cfgErr) {
		t.Fatalf("expected *ConfigError, got %v", err)
	}
	if cfgErr.Key != "font_family" {
		t.Errorf("expected key font_family, got %q", cfgErr.Key)
	}
}
