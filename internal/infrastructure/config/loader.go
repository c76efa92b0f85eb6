package config

import (
	"encoding/json"
	"fmt"
	"io/fs"
	"os"
	"path"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

const (
	settingsFile   = "settings.json"
	archetypesFile = "archetypes.yaml"

	tilesheetDir   = "tilesheets"
	spritesheetDir = "spritesheets"
	mapDir         = "maps"
	textureDir     = "textures"
)

// Loader loads game content from an fs.FS: JSON for settings, sheets and
// maps, YAML for archetypes, PNG bytes for textures
type Loader struct {
	fsys     fs.FS
	basePath string
}

// NewLoader creates a new config loader from filesystem path
func NewLoader(basePath string) *Loader {
	return &Loader{
		fsys:     os.DirFS(basePath),
		basePath: basePath,
	}
}

// NewFSLoader creates a new config loader from fs.FS
func NewFSLoader(fsys fs.FS, basePath string) *Loader {
	return &Loader{
		fsys:     fsys,
		basePath: basePath,
	}
}

// BasePath returns the directory the loader was created for
func (l *Loader) BasePath() string {
	return l.basePath
}

// LoadSettings loads settings.json and fills unset fields with defaults
func (l *Loader) LoadSettings() (*Settings, error) {
	var cfg Settings
	if err := l.readJSON(settingsFile, &cfg); err != nil {
		return nil, err
	}
	cfg.applyDefaults()
	return &cfg, nil
}

// LoadArchetypes loads archetypes.yaml
func (l *Loader) LoadArchetypes() (ArchetypesConfig, error) {
	data, err := fs.ReadFile(l.fsys, archetypesFile)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", archetypesFile, err)
	}

	var cfg ArchetypesConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", archetypesFile, err)
	}

	return cfg, nil
}

// LoadTilesheet loads tilesheets/<id>.json
func (l *Loader) LoadTilesheet(id string) (*TilesheetConfig, error) {
	var cfg TilesheetConfig
	if err := l.readJSON(path.Join(tilesheetDir, id+".json"), &cfg); err != nil {
		return nil, err
	}
	if cfg.ID == "" {
		cfg.ID = id
	}
	return &cfg, nil
}

// LoadSpritesheet loads spritesheets/<id>.json
func (l *Loader) LoadSpritesheet(id string) (*SpritesheetConfig, error) {
	var cfg SpritesheetConfig
	if err := l.readJSON(path.Join(spritesheetDir, id+".json"), &cfg); err != nil {
		return nil, err
	}
	if cfg.ID == "" {
		cfg.ID = id
	}
	return &cfg, nil
}

// LoadMap loads maps/<id>.json. The map is parsed but not validated.
func (l *Loader) LoadMap(id string) (*MapConfig, error) {
	var cfg MapConfig
	if err := l.readJSON(path.Join(mapDir, id+".json"), &cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// LoadTexture reads textures/<id>.png
func (l *Loader) LoadTexture(id string) ([]byte, error) {
	p := path.Join(textureDir, id+".png")
	data, err := fs.ReadFile(l.fsys, p)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", p, err)
	}
	return data, nil
}

// TilesheetIDs lists the ids under tilesheets/
func (l *Loader) TilesheetIDs() ([]string, error) { return l.list(tilesheetDir, ".json") }

// SpritesheetIDs lists the ids under spritesheets/
func (l *Loader) SpritesheetIDs() ([]string, error) { return l.list(spritesheetDir, ".json") }

// MapIDs lists the ids under maps/ in lexical order
func (l *Loader) MapIDs() ([]string, error) { return l.list(mapDir, ".json") }

// TextureIDs lists the ids under textures/
func (l *Loader) TextureIDs() ([]string, error) { return l.list(textureDir, ".png") }

// MapDir returns the on-disk maps directory
func (l *Loader) MapDir() string {
	return filepath.Join(l.basePath, mapDir)
}

func (l *Loader) readJSON(name string, v any) error {
	data, err := fs.ReadFile(l.fsys, name)
	if err != nil {
		return fmt.Errorf("failed to read %s: %w", name, err)
	}
	if err := json.Unmarshal(data, v); err != nil {
		return fmt.Errorf("failed to parse %s: %w", name, err)
	}
	return nil
}

func (l *Loader) list(dir, ext string) ([]string, error) {
	entries, err := fs.ReadDir(l.fsys, dir)
	if err != nil {
		return nil, fmt.Errorf("failed to list %s: %w", dir, err)
	}

	var ids []string
	for _, e := range entries {
		if e.IsDir() || !strings.HasSuffix(e.Name(), ext) {
			continue
		}
		ids = append(ids, strings.TrimSuffix(e.Name(), ext))
	}
	return ids, nil
}
