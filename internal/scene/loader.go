package scene

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// Load reads a project file from disk. The format is picked by extension:
// .json for editor exports, anything else is parsed as YAML.
func Load(path string) (*Project, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("scene: cannot read project %s: %w", path, err)
	}

	if strings.EqualFold(filepath.Ext(path), ".json") {
		return LoadJSON(data)
	}
	return LoadYAML(data)
}

// LoadYAML parses a YAML project document.
func LoadYAML(data []byte) (*Project, error) {
	var p Project
	if err := yaml.Unmarshal(data, &p); err != nil {
		return nil, fmt.Errorf("scene: cannot parse project: %w", err)
	}
	return finalize(&p)
}

// LoadJSON parses a JSON project document (the editor's export format).
func LoadJSON(data []byte) (*Project, error) {
	var p Project
	if err := json.Unmarshal(data, &p); err != nil {
		return nil, fmt.Errorf("scene: cannot parse project: %w", err)
	}
	return finalize(&p)
}

// finalize normalizes a freshly parsed project: verb categories are resolved
// from display names, session flags are reset, and the start scene defaults
// to the first scene.
func finalize(p *Project) (*Project, error) {
	if len(p.Scenes) == 0 {
		return nil, fmt.Errorf("scene: project %q has no scenes", p.Name)
	}

	ResolveVerbCategories(&p.Global)

	if p.StartScene == "" {
		p.StartScene = p.Scenes[0].ID
	}

	// Authored files may carry stale session flags; play always starts clean.
	for _, s := range p.Scenes {
		for i := range s.Puzzles {
			s.Puzzles[i].Solved = false
		}
		for i := range s.Cutscenes {
			s.Cutscenes[i].HasPlayed = false
		}
	}

	return p, nil
}
