package theme

import (
	"fmt"
	"log"
	"os"
	"path/filepath"

	"github.com/gdamore/tcell/v2"
	"github.com/pelletier/go-toml/v2"
)

// ThemeConfig represents the raw TOML theme configuration.
// Color keys are snake_case field names, e.g. row_selected_bg.
type ThemeConfig struct {
	Name   string            `toml:"name"`
	Colors map[string]string `toml:"colors"`
}

// colorFields maps TOML color keys to the fields they set
func colorFields(c *Colors) map[string]*tcell.Color {
	return map[string]*tcell.Color{
		"sidebar_background":  &c.SidebarBackground,
		"sidebar_border":      &c.SidebarBorder,
		"resize_handle":       &c.ResizeHandle,
		"collapse_button":     &c.CollapseButton,
		"header_title":        &c.HeaderTitle,
		"header_arrow":        &c.HeaderArrow,
		"search_label":        &c.SearchLabel,
		"search_text":         &c.SearchText,
		"search_placeholder":  &c.SearchPlaceholder,
		"search_cursor":       &c.SearchCursor,
		"row_text":            &c.RowText,
		"row_selected":        &c.RowSelected,
		"row_selected_bg":     &c.RowSelectedBg,
		"row_dragging":        &c.RowDragging,
		"row_indicator":       &c.RowIndicator,
		"row_icon":            &c.RowIcon,
		"drop_indicator":      &c.DropIndicator,
		"drop_highlight_bg":   &c.DropHighlightBg,
		"drag_overlay_text":   &c.DragOverlayText,
		"drag_overlay_border": &c.DragOverlayBorder,
		"footer_text":         &c.FooterText,
		"dialog_border":       &c.DialogBorder,
		"dialog_title":        &c.DialogTitle,
		"dialog_text":         &c.DialogText,
		"dialog_selected":     &c.DialogSelected,
		"content_text":        &c.ContentText,
		"status_message":      &c.StatusMessage,
		"status_modified":     &c.StatusModified,
		"status_time":         &c.StatusTime,
	}
}

// getThemePaths returns the search paths for theme files
func getThemePaths() []string {
	home, err := os.UserHomeDir()
	if err != nil {
		return nil
	}
	return []string{
		filepath.Join(home, ".config", "tui-sidebar", "themes"),
		filepath.Join(home, ".local", "share", "tui-sidebar", "themes"),
	}
}

// findThemeFile searches for a theme file in standard locations
func findThemeFile(themeName string) (string, error) {
	filename := themeName + ".toml"

	for _, dir := range getThemePaths() {
		path := filepath.Join(dir, filename)
		if _, err := os.Stat(path); err == nil {
			return path, nil
		}
	}

	return "", fmt.Errorf("theme file not found: %s", filename)
}

// LoadThemeFromFile loads a theme from a TOML file
func LoadThemeFromFile(filePath string) (*Theme, error) {
	data, err := os.ReadFile(filePath)
	if err != nil {
		return nil, fmt.Errorf("failed to read theme file: %w", err)
	}

	var config ThemeConfig
	if err := toml.Unmarshal(data, &config); err != nil {
		return nil, fmt.Errorf("failed to parse theme file: %w", err)
	}

	return configToTheme(config), nil
}

// LoadTheme loads a theme by name, searching standard theme directories
func LoadTheme(themeName string) (*Theme, error) {
	filePath, err := findThemeFile(themeName)
	if err != nil {
		return nil, err
	}

	return LoadThemeFromFile(filePath)
}

// configToTheme converts a ThemeConfig to a Theme, with fallback to Tokyo Night for missing colors
func configToTheme(config ThemeConfig) *Theme {
	theme := TokyoNight()
	fields := colorFields(&theme.Colors)

	for key, value := range config.Colors {
		field, ok := fields[key]
		if !ok {
			log.Printf("Unknown theme color %q ignored", key)
			continue
		}
		*field = ParseColorString(value)
	}

	if config.Name != "" {
		theme.Name = config.Name
	}

	return theme
}

// LoadThemeOrDefault loads a theme by name, or returns Tokyo Night if not found
func LoadThemeOrDefault(themeName string) *Theme {
	switch themeName {
	case "default":
		return Default()
	case "", "tokyo-night":
		return TokyoNight()
	}

	theme, err := LoadTheme(themeName)
	if err != nil {
		log.Printf("Failed to load theme %s, using tokyo-night: %v", themeName, err)
		return TokyoNight()
	}

	return theme
}
