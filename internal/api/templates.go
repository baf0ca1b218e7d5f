package api

import (
	"encoding/json"
	"net/http"
)

// Template is a named bundle of layout config overrides.
type Template struct {
	ID          string         `json:"id"`
	Name        string         `json:"name"`
	Description string         `json:"description"`
	Config      map[string]any `json:"config"`
}

// builtinTemplates is the design catalog offered to clients. Each config
// is a partial override merged over the layout defaults.
var builtinTemplates = []Template{
	{
		ID:          "classic",
		Name:        "Classic Premium",
		Description: "Elegant, traditional book design",
		Config: map[string]any{
			"font_family":      "Georgia",
			"font_size":        12,
			"line_height":      1.5,
			"margin_top":       2.0,
			"margin_bottom":    2.0,
			"margin_left":      1.5,
			"margin_right":     1.5,
			"primary_color":    "#1a1a1a",
			"accent_color":     "#8b7355",
			"background_color": "#ffffff",
		},
	},
	{
		ID:          "modern",
		Name:        "Modern Clean",
		Description: "Contemporary, minimalist design",
		Config: map[string]any{
			"font_family":      "Segoe UI",
			"font_size":        11,
			"line_height":      1.6,
			"margin_top":       1.5,
			"margin_bottom":    1.5,
			"margin_left":      1.25,
			"margin_right":     1.25,
			"primary_color":    "#2c3e50",
			"accent_color":     "#3498db",
			"background_color": "#ffffff",
		},
	},
	{
		ID:          "academic",
		Name:        "Academic",
		Description: "Formal design for academic publications",
		Config: map[string]any{
			"font_family":      "Times New Roman",
			"font_size":        12,
			"line_height":      2.0,
			"margin_top":       2.5,
			"margin_bottom":    2.5,
			"margin_left":      1.5,
			"margin_right":     1.5,
			"primary_color":    "#000000",
			"accent_color":     "#333333",
			"background_color": "#ffffff",
		},
	},
	{
		ID:          "contemporary",
		Name:        "Contemporary",
		Description: "Modern design with a creative touch",
		Config: map[string]any{
			"font_family":      "Calibri",
			"font_size":        11.5,
			"line_height":      1.55,
			"margin_top":       1.75,
			"margin_bottom":    1.75,
			"margin_left":      1.5,
			"margin_right":     1.5,
			"primary_color":    "#34495e",
			"accent_color":     "#e74c3c",
			"background_color": "#fafafa",
		},
	},
}

func (s *Server) handleTemplates(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]any{"templates": builtinTemplates})
}
