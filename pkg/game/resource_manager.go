package game

import (
	"bytes"
	"fmt"
	"image"
	_ "image/jpeg" // Register JPEG decoder
	_ "image/png"  // Register PNG decoder
	"io"
	"log"
	"path/filepath"
	"strings"

	"github.com/hajimehoshi/bitmapfont/v3"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/audio"
	"github.com/hajimehoshi/ebiten/v2/audio/mp3"
	"github.com/hajimehoshi/ebiten/v2/audio/vorbis"
	"github.com/hajimehoshi/ebiten/v2/audio/wav"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"gopkg.in/yaml.v3"

	"github.com/gonewx/starshooter/internal/au"
	"github.com/gonewx/starshooter/pkg/embedded"
	"github.com/gonewx/starshooter/pkg/utils"
)

// fallbackImageSize is the placeholder edge length used when a missing image
// resource carries no fallback spec of its own.
const fallbackImageSize = 64

// ResourceManager is responsible for centralized management of game resources.
// It provides loading and caching mechanisms for images, audio and fonts,
// ensuring that resources are loaded only once and reused throughout the game.
//
// The ResourceManager implements the following key features:
// - Image loading and caching (PNG/JPEG format support)
// - Audio loading and caching (MP3/OGG/WAV/AU format support)
// - Font loading and caching (TTF/OTF, with a built-in bitmap fallback face)
// - Resource lookup by ID via the YAML resource table (data/resources.yaml)
// - Graceful degradation: a missing or corrupted asset never aborts the game;
//   by-ID image loads return a solid placeholder and log a warning instead
//
// All files are read from the embedded filesystem (see pkg/embedded), so the
// shipped binary has no runtime dependency on an assets directory on disk.
//
// Thread Safety Note:
// This implementation is NOT thread-safe. The internal caches use standard Go maps,
// which are not safe for concurrent access. For the current single-threaded game
// loop, no synchronization is needed.
//
// Usage:
//
//	audioContext := audio.NewContext(48000)
//	rm := NewResourceManager(audioContext)
//	if err := rm.LoadResourceConfig("data/resources.yaml"); err != nil {
//	    log.Fatal(err)
//	}
//	img := rm.LoadImageByID("IMAGE_SHIP_1") // never nil
type ResourceManager struct {
	imageCache    map[string]*ebiten.Image // Cache for loaded images: path -> Image
	audioCache    map[string]*audio.Player // Cache for loaded audio players: path -> Player
	audioContext  *audio.Context           // Global audio context for audio decoding
	fontFaceCache map[string]text.Face     // Cache for text faces: "path:size" -> Face

	// YAML resource configuration
	config       *ResourceConfig           // Parsed YAML configuration
	resourceMap  map[string]string         // Resource ID -> file path mapping for quick lookup
	imageByID    map[string]*ImageResource // Resource ID -> image entry (fallback spec, width cap)
	soundByID    map[string]*SoundResource // Resource ID -> sound entry (per-sound gain)
	musicByID    map[string]*MusicResource // Resource ID -> music entry
	fontByID     map[string]*FontResource  // Resource ID -> font entry
	idImageCache map[string]*ebiten.Image  // Resource ID -> final image (scaled, or placeholder)
}

// NewResourceManager creates and initializes a new ResourceManager instance.
// The audioContext parameter is required for audio decoding and playback.
// It should be created once at game startup with a sample rate of 48000 Hz.
//
// Parameters:
//   - audioContext: The global audio context used for decoding and playing audio files.
//
// Returns:
//   - A pointer to a newly initialized ResourceManager with empty caches.
//
// Example:
//
//	audioContext := audio.NewContext(48000)
//	resourceManager := NewResourceManager(audioContext)
func NewResourceManager(audioContext *audio.Context) *ResourceManager {
	return &ResourceManager{
		imageCache:    make(map[string]*ebiten.Image),
		audioCache:    make(map[string]*audio.Player),
		audioContext:  audioContext,
		fontFaceCache: make(map[string]text.Face),
		resourceMap:   make(map[string]string),
		imageByID:     make(map[string]*ImageResource),
		soundByID:     make(map[string]*SoundResource),
		musicByID:     make(map[string]*MusicResource),
		fontByID:      make(map[string]*FontResource),
		idImageCache:  make(map[string]*ebiten.Image),
	}
}

// LoadResourceConfig loads the resource table from an embedded YAML file.
// This method should be called once during game initialization, before loading
// any resources by ID.
//
// The configuration file defines every image, sound, music track and font the
// game knows about, allowing resources to be loaded by ID instead of
// hard-coded paths.
//
// Parameters:
//   - configPath: Path to the YAML configuration file (e.g., "data/resources.yaml")
//
// Returns:
//   - An error if the file cannot be read or parsed
//
// Example:
//
//	rm := NewResourceManager(audioContext)
//	if err := rm.LoadResourceConfig("data/resources.yaml"); err != nil {
//	    log.Fatal("Failed to load resource config:", err)
//	}
func (rm *ResourceManager) LoadResourceConfig(configPath string) error {
	data, err := embedded.ReadFile(configPath)
	if err != nil {
		return fmt.Errorf("failed to read resource config %s: %w", configPath, err)
	}

	var config ResourceConfig
	if err := yaml.Unmarshal(data, &config); err != nil {
		return fmt.Errorf("failed to parse resource config %s: %w", configPath, err)
	}

	rm.config = &config

	// Build resource ID -> path mapping for quick lookup
	rm.buildResourceMap()

	return nil
}

// buildResourceMap constructs the lookup tables from resource IDs to full file
// paths and to their typed config entries.
//
// The path mapping combines the base path with each resource's relative path.
// For example:
//
//	IMAGE_SHIP_1  -> assets/images/player1.png
//	SOUND_LASER   -> assets/sounds/laser.wav
func (rm *ResourceManager) buildResourceMap() {
	if rm.config == nil {
		return
	}

	rm.resourceMap = make(map[string]string)
	rm.imageByID = make(map[string]*ImageResource)
	rm.soundByID = make(map[string]*SoundResource)
	rm.musicByID = make(map[string]*MusicResource)
	rm.fontByID = make(map[string]*FontResource)

	for i := range rm.config.Images {
		img := &rm.config.Images[i]
		fullPath := buildFullPath(rm.config.BasePath, img.Path)
		if filepath.Ext(fullPath) == "" {
			fullPath += ".png" // Default to PNG for images
		}
		rm.resourceMap[img.ID] = fullPath
		rm.imageByID[img.ID] = img
	}

	for i := range rm.config.Sounds {
		sound := &rm.config.Sounds[i]
		fullPath := buildFullPath(rm.config.BasePath, sound.Path)
		if filepath.Ext(fullPath) == "" {
			fullPath += ".ogg" // Default to OGG for sounds
		}
		rm.resourceMap[sound.ID] = fullPath
		rm.soundByID[sound.ID] = sound
	}

	for i := range rm.config.Music {
		music := &rm.config.Music[i]
		rm.resourceMap[music.ID] = buildFullPath(rm.config.BasePath, music.Path)
		rm.musicByID[music.ID] = music
	}

	for i := range rm.config.Fonts {
		font := &rm.config.Fonts[i]
		rm.resourceMap[font.ID] = buildFullPath(rm.config.BasePath, font.Path)
		rm.fontByID[font.ID] = font
	}
}

// LoadImage loads an image from the embedded filesystem and caches it for
// future use. If the image has already been loaded, it returns the cached
// instance.
//
// Parameters:
//   - path: The file path to the image resource (e.g., "assets/images/player1.png").
//
// Returns:
//   - A pointer to the loaded ebiten.Image.
//   - An error if the file cannot be opened or decoded.
//
// Error handling:
//   - Returns an error if the file does not exist in the embedded filesystem.
//   - Returns an error if the file is corrupted or in an unsupported format.
//   - Does not panic - all errors are returned to the caller for handling.
//
// Example:
//
//	img, err := rm.LoadImage("assets/images/background_menu.png")
//	if err != nil {
//	    log.Printf("Failed to load image: %v", err)
//	}
func (rm *ResourceManager) LoadImage(path string) (*ebiten.Image, error) {
	// Check if the image is already cached
	if cachedImg, exists := rm.imageCache[path]; exists {
		return cachedImg, nil
	}

	// Open the image file from the embedded filesystem
	file, err := embedded.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open image file %s: %w", path, err)
	}
	defer file.Close()

	// Decode the image
	img, _, err := image.Decode(file)
	if err != nil {
		return nil, fmt.Errorf("failed to decode image %s: %w", path, err)
	}

	// Convert to ebiten.Image and store in cache
	ebitenImg := ebiten.NewImageFromImage(img)
	rm.imageCache[path] = ebitenImg

	return ebitenImg, nil
}

// GetImage retrieves a previously loaded image from the cache.
// If the image has not been loaded yet, it returns nil.
//
// Parameters:
//   - path: The file path of the image resource.
//
// Returns:
//   - A pointer to the cached ebiten.Image, or nil if not found in cache.
func (rm *ResourceManager) GetImage(path string) *ebiten.Image {
	return rm.imageCache[path]
}

// LoadAudio loads an audio file and caches it for future use.
// If the audio has already been loaded, it returns the cached player.
// Supported formats: MP3 (.mp3), OGG Vorbis (.ogg), WAV (.wav) and
// Sun AU (.au).
//
// The audio is automatically wrapped in an infinite loop, making it suitable
// for background music. For one-shot sound effects use LoadSoundEffect instead.
//
// Parameters:
//   - path: The file path to the audio resource (e.g., "assets/music/menu_theme.mp3").
//
// Returns:
//   - A pointer to the audio player (ready to play, but not started).
//   - An error if the file cannot be read, decoded, or the format is unsupported.
//
// Example:
//
//	player, err := rm.LoadAudio("assets/music/menu_theme.mp3")
//	if err != nil {
//	    log.Printf("Failed to load audio: %v", err)
//	    return err
//	}
//	player.Play() // Start playing the music
func (rm *ResourceManager) LoadAudio(path string) (*audio.Player, error) {
	// Check if the audio is already cached
	if cachedPlayer, exists := rm.audioCache[path]; exists {
		return cachedPlayer, nil
	}

	// Read the entire file into memory so the audio stream can seek freely
	audioData, err := embedded.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read audio file %s: %w", path, err)
	}

	// Create a reader from the in-memory data
	reader := bytes.NewReader(audioData)

	// Determine the file format by extension
	ext := strings.ToLower(filepath.Ext(path))

	// Decode based on format
	var stream interface {
		io.ReadSeeker
		Length() int64
	}

	switch ext {
	case ".mp3":
		decodedStream, err := mp3.DecodeWithoutResampling(reader)
		if err != nil {
			return nil, fmt.Errorf("failed to decode MP3 audio %s: %w", path, err)
		}
		stream = decodedStream
	case ".ogg":
		decodedStream, err := vorbis.DecodeWithoutResampling(reader)
		if err != nil {
			return nil, fmt.Errorf("failed to decode OGG audio %s: %w", path, err)
		}
		stream = decodedStream
	case ".wav":
		decodedStream, err := wav.DecodeWithoutResampling(reader)
		if err != nil {
			return nil, fmt.Errorf("failed to decode WAV audio %s: %w", path, err)
		}
		stream = decodedStream
	case ".au":
		decodedStream, err := au.Decode(reader, rm.audioContext.SampleRate())
		if err != nil {
			return nil, fmt.Errorf("failed to decode AU audio %s: %w", path, err)
		}
		stream = decodedStream
	default:
		return nil, fmt.Errorf("unsupported audio format: %s (supported: .mp3, .ogg, .wav, .au)", ext)
	}

	// Wrap the stream in an infinite loop for background music
	loopStream := audio.NewInfiniteLoop(stream, stream.Length())

	// Create an audio player
	player, err := rm.audioContext.NewPlayer(loopStream)
	if err != nil {
		return nil, fmt.Errorf("failed to create audio player for %s: %w", path, err)
	}

	// Store in cache
	rm.audioCache[path] = player

	return player, nil
}

// LoadSoundEffect loads a sound effect and caches it for future use.
// Unlike LoadAudio, this method does NOT wrap the audio in an infinite loop,
// making it suitable for one-shot sound effects like laser shots and button
// clicks. Supported formats: MP3 (.mp3), OGG Vorbis (.ogg), WAV (.wav) and
// Sun AU (.au).
//
// Parameters:
//   - path: The file path to the sound effect resource (e.g., "assets/sounds/laser.wav").
//
// Returns:
//   - A pointer to the audio player (ready to play, but not started).
//   - An error if the file cannot be read, decoded, or the format is unsupported.
func (rm *ResourceManager) LoadSoundEffect(path string) (*audio.Player, error) {
	// Check if the audio is already cached
	if cachedPlayer, exists := rm.audioCache[path]; exists {
		return cachedPlayer, nil
	}

	// Read the entire file into memory
	audioData, err := embedded.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read sound effect file %s: %w", path, err)
	}

	// Create a reader from the in-memory data
	reader := bytes.NewReader(audioData)

	// Determine the file format by extension
	ext := strings.ToLower(filepath.Ext(path))

	// Decode based on format (without infinite loop)
	var stream io.ReadSeeker

	switch ext {
	case ".mp3":
		decodedStream, err := mp3.DecodeWithoutResampling(reader)
		if err != nil {
			return nil, fmt.Errorf("failed to decode MP3 sound effect %s: %w", path, err)
		}
		stream = decodedStream
	case ".ogg":
		decodedStream, err := vorbis.DecodeWithoutResampling(reader)
		if err != nil {
			return nil, fmt.Errorf("failed to decode OGG sound effect %s: %w", path, err)
		}
		stream = decodedStream
	case ".wav":
		decodedStream, err := wav.DecodeWithoutResampling(reader)
		if err != nil {
			return nil, fmt.Errorf("failed to decode WAV sound effect %s: %w", path, err)
		}
		stream = decodedStream
	case ".au":
		decodedStream, err := au.Decode(reader, rm.audioContext.SampleRate())
		if err != nil {
			return nil, fmt.Errorf("failed to decode AU sound effect %s: %w", path, err)
		}
		stream = decodedStream
	default:
		return nil, fmt.Errorf("unsupported audio format: %s (supported: .mp3, .ogg, .wav, .au)", ext)
	}

	// Create an audio player WITHOUT infinite loop
	player, err := rm.audioContext.NewPlayer(stream)
	if err != nil {
		return nil, fmt.Errorf("failed to create audio player for %s: %w", path, err)
	}

	// Store in cache
	rm.audioCache[path] = player

	return player, nil
}

// GetAudioPlayer retrieves a previously loaded audio player from the cache.
// If the audio has not been loaded yet, it returns nil.
//
// Parameters:
//   - path: The file path of the audio resource.
//
// Returns:
//   - A pointer to the cached audio.Player, or nil if not found in cache.
func (rm *ResourceManager) GetAudioPlayer(path string) *audio.Player {
	return rm.audioCache[path]
}

// LoadFont loads a TrueType/OpenType font and creates a text face with the
// given size. The font face is cached with a cache key combining path and size.
// Supported formats: .ttf, .otf
//
// Parameters:
//   - path: The file path to the font resource (e.g., "assets/fonts/title.ttf").
//   - size: The font size in pixels.
//
// Returns:
//   - A text.Face ready for rendering.
//   - An error if the file cannot be read or parsed.
func (rm *ResourceManager) LoadFont(path string, size float64) (text.Face, error) {
	// Create cache key combining path and size
	cacheKey := fmt.Sprintf("%s:%.1f", path, size)

	// Check if the font face is already cached
	if cachedFace, exists := rm.fontFaceCache[cacheKey]; exists {
		return cachedFace, nil
	}

	// Read font file
	fontData, err := embedded.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read font file %s: %w", path, err)
	}

	// Create GoTextFaceSource from font data
	source, err := text.NewGoTextFaceSource(bytes.NewReader(fontData))
	if err != nil {
		return nil, fmt.Errorf("failed to create font source for %s: %w", path, err)
	}

	// Create GoTextFace with specified size
	goTextFace := &text.GoTextFace{
		Source:    source,
		Size:      size,
		Direction: text.DirectionLeftToRight,
	}

	// Store in cache
	rm.fontFaceCache[cacheKey] = goTextFace

	return goTextFace, nil
}

// GetFont retrieves a previously loaded font face from the cache.
// If the font has not been loaded yet, it returns nil.
//
// Parameters:
//   - path: The file path of the font resource.
//   - size: The font size in pixels.
//
// Returns:
//   - The cached text.Face, or nil if not found in cache.
func (rm *ResourceManager) GetFont(path string, size float64) text.Face {
	cacheKey := fmt.Sprintf("%s:%.1f", path, size)
	return rm.fontFaceCache[cacheKey]
}

// LoadImageByID loads an image resource using its resource ID.
//
// This method NEVER fails: when the ID is unknown, the file is missing, or the
// data cannot be decoded, it logs a warning and returns a solid placeholder
// built from the resource's fallback spec (an opaque magenta rectangle when no
// spec exists). Callers can therefore draw the result unconditionally.
//
// When the resource declares max_width, the loaded image is scaled down
// proportionally to fit.
//
// Parameters:
//   - resourceID: The resource ID (e.g., "IMAGE_SHIP_1", "IMAGE_BACKGROUND_MENU")
//
// Returns:
//   - A pointer to the final ebiten.Image, never nil
//
// Example:
//
//	shipImg := rm.LoadImageByID("IMAGE_SHIP_1")
//	screen.DrawImage(shipImg, op) // safe even if the asset was missing
func (rm *ResourceManager) LoadImageByID(resourceID string) *ebiten.Image {
	// Check the final-image cache first (holds scaled images and placeholders)
	if img, exists := rm.idImageCache[resourceID]; exists {
		return img
	}

	entry, exists := rm.imageByID[resourceID]
	if !exists {
		log.Printf("[ResourceManager] Warning: image resource ID not found: %s (using placeholder)", resourceID)
		placeholder := utils.NewPlaceholderImage(fallbackImageSize, fallbackImageSize, FallbackSpec{}.RGBA())
		rm.idImageCache[resourceID] = placeholder
		return placeholder
	}

	img, err := rm.LoadImage(rm.resourceMap[resourceID])
	if err != nil {
		log.Printf("[ResourceManager] Warning: failed to load image %s: %v (using placeholder)", resourceID, err)
		img = rm.placeholderFor(entry)
	} else {
		img = utils.ScaleImageToWidth(img, entry.MaxWidth)
	}

	rm.idImageCache[resourceID] = img
	return img
}

// placeholderFor builds the placeholder image for a missing image resource.
// Dimensions and fill color come from the resource's fallback spec; zero or
// missing dimensions fall back to a default square.
func (rm *ResourceManager) placeholderFor(entry *ImageResource) *ebiten.Image {
	width := entry.Fallback.Width
	height := entry.Fallback.Height
	if width <= 0 {
		width = fallbackImageSize
	}
	if height <= 0 {
		height = fallbackImageSize
	}
	return utils.NewPlaceholderImage(width, height, entry.Fallback.RGBA())
}

// GetImageByID retrieves a previously loaded image using its resource ID.
// If the image has not been loaded yet, it returns nil.
//
// Parameters:
//   - resourceID: The resource ID (e.g., "IMAGE_SHIP_1")
//
// Returns:
//   - A pointer to the cached ebiten.Image, or nil if not loaded yet
func (rm *ResourceManager) GetImageByID(resourceID string) *ebiten.Image {
	return rm.idImageCache[resourceID]
}

// LoadFontByID loads a font resource by ID at the requested size.
//
// Like LoadImageByID, this method never fails: when the ID is unknown or the
// font file cannot be read or parsed, it logs a warning and returns the
// built-in bitmap face so text stays readable without the shipped font.
//
// Parameters:
//   - fontID: The resource ID (e.g., "FONT_TITLE")
//   - size: The font size in pixels (ignored by the bitmap fallback face)
//
// Returns:
//   - A text.Face ready for rendering, never nil
func (rm *ResourceManager) LoadFontByID(fontID string, size float64) text.Face {
	cacheKey := fmt.Sprintf("%s:%.1f", fontID, size)
	if cachedFace, exists := rm.fontFaceCache[cacheKey]; exists {
		return cachedFace
	}

	entry, exists := rm.fontByID[fontID]
	if !exists {
		log.Printf("[ResourceManager] Warning: font resource ID not found: %s (using bitmap fallback)", fontID)
		face := text.NewGoXFace(bitmapfont.Face)
		rm.fontFaceCache[cacheKey] = face
		return face
	}

	face, err := rm.LoadFont(buildFullPath(rm.config.BasePath, entry.Path), size)
	if err != nil {
		log.Printf("[ResourceManager] Warning: failed to load font %s: %v (using bitmap fallback)", fontID, err)
		face = text.NewGoXFace(bitmapfont.Face)
	}

	rm.fontFaceCache[cacheKey] = face
	return face
}

// SoundGain returns the per-sound volume multiplier configured for a sound
// resource. Sounds without an explicit gain (or unknown IDs) default to 1.0.
//
// The effective playback volume of a sound is this gain multiplied by the
// player's SFX volume setting.
func (rm *ResourceManager) SoundGain(soundID string) float64 {
	entry, exists := rm.soundByID[soundID]
	if !exists || entry.Gain == 0 {
		return 1.0
	}
	return entry.Gain
}
