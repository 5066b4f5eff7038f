package scene

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

const yamlProject = `
name: Harbor Mystery
startScene: docks
global:
  actors:
    - id: hero
      name: Ines
  items:
    - id: lantern
      name: Lantern
  verbs:
    - id: v-look
      name: Mirar
    - id: v-take
      name: Pick up
  inventory: [lantern]
  variables:
    tide: low
scenes:
  - id: docks
    name: The Docks
    width: 320
    height: 200
    walkboxes:
      - id: wb-1
        points:
          - {x: 0, y: 100}
          - {x: 320, y: 100}
          - {x: 320, y: 200}
          - {x: 0, y: 200}
    puzzles:
      - id: pz-1
        name: Raise the anchor
        trigger: anchor
        solved: true
        result:
          message: Up it goes.
    cutscenes:
      - id: cut-1
        trigger: {kind: scene-enter}
        hasPlayed: true
        actions:
          - type: wait
            duration: 200
  - id: tavern
    name: The Tavern
    width: 320
    height: 200
`

const jsonProject = `{
  "name": "Harbor Mystery",
  "global": {
    "verbs": [{"id": "v-use", "name": "Usar"}],
    "variables": {"tide": "low"}
  },
  "scenes": [
    {"id": "docks", "name": "The Docks", "width": 320, "height": 200}
  ]
}`

func TestLoadYAML(t *testing.T) {
	p, err := LoadYAML([]byte(yamlProject))
	if err != nil {
		t.Fatalf("LoadYAML() failed: %v", err)
	}

	if p.Name != "Harbor Mystery" || p.StartScene != "docks" {
		t.Errorf("project header = (%q, %q)", p.Name, p.StartScene)
	}
	if len(p.Scenes) != 2 || p.SceneByID("tavern") == nil {
		t.Fatalf("expected 2 scenes, got %d", len(p.Scenes))
	}
	if got := p.Global.Variables["tide"]; got != "low" {
		t.Errorf("variable tide = %v", got)
	}

	docks := p.SceneByID("docks")
	if len(docks.Walkboxes) != 1 || len(docks.Walkboxes[0].Points) != 4 {
		t.Errorf("walkbox did not parse: %+v", docks.Walkboxes)
	}
}

func TestLoadResolvesVerbCategories(t *testing.T) {
	p, err := LoadYAML([]byte(yamlProject))
	if err != nil {
		t.Fatalf("LoadYAML() failed: %v", err)
	}
	if got := p.Global.VerbByID("v-look").Category; got != CategoryLook {
		t.Errorf("v-look category = %q, expected %q", got, CategoryLook)
	}
	if got := p.Global.VerbByID("v-take").Category; got != CategoryPickUp {
		t.Errorf("v-take category = %q, expected %q", got, CategoryPickUp)
	}
}

func TestLoadResetsSessionFlags(t *testing.T) {
	p, err := LoadYAML([]byte(yamlProject))
	if err != nil {
		t.Fatalf("LoadYAML() failed: %v", err)
	}
	docks := p.SceneByID("docks")
	if docks.Puzzles[0].Solved {
		t.Error("stale Solved flag survived the load")
	}
	if docks.Cutscenes[0].HasPlayed {
		t.Error("stale HasPlayed flag survived the load")
	}
}

func TestLoadJSON(t *testing.T) {
	p, err := LoadJSON([]byte(jsonProject))
	if err != nil {
		t.Fatalf("LoadJSON() failed: %v", err)
	}
	if p.StartScene != "docks" {
		t.Errorf("StartScene = %q, expected the first scene as default", p.StartScene)
	}
	if got := p.Global.VerbByID("v-use").Category; got != CategoryUse {
		t.Errorf("v-use category = %q, expected %q", got, CategoryUse)
	}
}

func TestLoadRejectsEmptyProject(t *testing.T) {
	if _, err := LoadYAML([]byte("name: Empty\nscenes: []\n")); err == nil {
		t.Error("expected an error for a project with no scenes")
	}
}

func TestLoadPicksFormatByExtension(t *testing.T) {
	dir := t.TempDir()

	yml := filepath.Join(dir, "game.yaml")
	if err := os.WriteFile(yml, []byte(yamlProject), 0o644); err != nil {
		t.Fatal(err)
	}
	jsn := filepath.Join(dir, "game.JSON")
	if err := os.WriteFile(jsn, []byte(jsonProject), 0o644); err != nil {
		t.Fatal(err)
	}

	if _, err := Load(yml); err != nil {
		t.Errorf("Load(%s) failed: %v", yml, err)
	}
	if _, err := Load(jsn); err != nil {
		t.Errorf("Load(%s) failed: %v", jsn, err)
	}
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
	if err == nil || !strings.Contains(err.Error(), "cannot read project") {
		t.Errorf("Load() error = %v, expected a read error", err)
	}
}
