package game

import (
	"image/color"
	"strconv"
	"strings"
)

// ResourceConfig represents the top-level resource configuration loaded from YAML.
// It defines the structure of data/resources.yaml.
//
// Structure:
//
//	version: "1.0"
//	base_path: assets
//	images: [...]
//	sounds: [...]
//	music: [...]
//	fonts: [...]
type ResourceConfig struct {
	Version  string          `yaml:"version"`   // Configuration file version
	BasePath string          `yaml:"base_path"` // Base path for all resources (e.g., "assets")
	Images   []ImageResource `yaml:"images"`    // Sprite and background images
	Sounds   []SoundResource `yaml:"sounds"`    // Short sound effects
	Music    []MusicResource `yaml:"music"`     // Looping background music tracks
	Fonts    []FontResource  `yaml:"fonts"`     // TrueType fonts
}

// ImageResource represents a single image resource definition.
//
// Fields:
//   - ID: Unique identifier for the image (e.g., "IMAGE_SHIP_1")
//   - Path: Relative path from base_path to the image file
//   - MaxWidth: Optional display width cap; wider images are shrunk proportionally
//   - Fallback: Placeholder spec used when the file is missing or undecodable
//
// Example:
//
//	- id: IMAGE_SHIP_1
//	  path: images/player1.png
//	  max_width: 80
//	  fallback:
//	    width: 64
//	    height: 64
//	    color: "#1E64FF"
type ImageResource struct {
	ID       string       `yaml:"id"`                  // Resource ID (unique identifier)
	Path     string       `yaml:"path"`                // Relative file path from base_path
	MaxWidth int          `yaml:"max_width,omitempty"` // Display width cap in pixels (0 = no cap)
	Fallback FallbackSpec `yaml:"fallback,omitempty"`  // Placeholder when the asset is missing
}

// FallbackSpec describes the placeholder rectangle drawn in place of a
// missing image asset. Color is a "#RRGGBB" hex string.
type FallbackSpec struct {
	Width  int    `yaml:"width"`  // Placeholder width in pixels
	Height int    `yaml:"height"` // Placeholder height in pixels
	Color  string `yaml:"color"`  // Fill color as "#RRGGBB"
}

// RGBA parses the fallback color. Invalid or empty strings resolve to an
// opaque magenta so missing art stays loud on screen instead of invisible.
func (f FallbackSpec) RGBA() color.RGBA {
	fallback := color.RGBA{R: 255, G: 0, B: 255, A: 255}

	s := strings.TrimPrefix(strings.TrimSpace(f.Color), "#")
	if len(s) != 6 {
		return fallback
	}
	v, err := strconv.ParseUint(s, 16, 32)
	if err != nil {
		return fallback
	}
	return color.RGBA{
		R: uint8(v >> 16),
		G: uint8(v >> 8),
		B: uint8(v),
		A: 255,
	}
}

// SoundResource represents a single sound effect resource definition.
//
// Fields:
//   - ID: Unique identifier for the sound (e.g., "SOUND_LASER")
//   - Path: Relative path from base_path to the audio file
//   - Gain: Per-sound volume multiplier applied on top of the SFX volume
//     setting (0 or omitted means 1.0)
//
// Example:
//   - id: SOUND_EXPLOSION
//     path: sounds/explosion.wav
//     gain: 0.1
type SoundResource struct {
	ID   string  `yaml:"id"`             // Resource ID (unique identifier)
	Path string  `yaml:"path"`           // Relative file path from base_path
	Gain float64 `yaml:"gain,omitempty"` // Volume multiplier (0 = default 1.0)
}

// MusicResource represents a single background music track definition.
//
// Example:
//   - id: MUSIC_MENU
//     path: music/menu_theme.mp3
type MusicResource struct {
	ID   string `yaml:"id"`   // Resource ID (unique identifier)
	Path string `yaml:"path"` // Relative file path from base_path
}

// FontResource represents a single font resource definition.
//
// Example:
//   - id: FONT_TITLE
//     path: fonts/title.ttf
type FontResource struct {
	ID   string `yaml:"id"`   // Resource ID (unique identifier)
	Path string `yaml:"path"` // Relative file path from base_path
}

// buildFullPath constructs the full file path for a resource.
// It combines the base path with the resource's relative path.
//
// Parameters:
//   - basePath: The base path from ResourceConfig (e.g., "assets")
//   - relativePath: The resource's relative path (e.g., "images/player1.png")
//
// Returns:
//   - The full file path (e.g., "assets/images/player1.png")
func buildFullPath(basePath, relativePath string) string {
	if basePath == "" {
		return relativePath
	}
	// Simple path joining - handles the case where relative path might start with /
	if len(relativePath) > 0 && relativePath[0] == '/' {
		return basePath + relativePath
	}
	return basePath + "/" + relativePath
}
