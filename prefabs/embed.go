package prefabs

import (
	"embed"
	"os"
	"path/filepath"
	"strings"
)

//go:embed *.yaml scripts/*.tengo
var PrefabsFS embed.FS

// Dir is the on-disk directory whose files override the embedded copies.
var Dir = "prefabs"

// Load reads a prefab file, preferring the on-disk copy so edits are
// picked up without a rebuild.
func Load(name string) ([]byte, error) {
	clean := cleanPrefabPath(name)
	if data, err := os.ReadFile(diskPrefabPath(clean)); err == nil {
		return data, nil
	}
	return PrefabsFS.ReadFile(clean)
}

// LoadScript reads a tengo script from scripts/.
func LoadScript(name string) ([]byte, error) {
	return Load(cleanScriptPath(name))
}

func cleanPrefabPath(path string) string {
	if path == "" {
		return ""
	}
	s := filepath.ToSlash(path)
	if after, ok := strings.CutPrefix(s, "prefabs/"); ok {
		return after
	}
	return s
}

func cleanScriptPath(path string) string {
	s := cleanPrefabPath(path)
	if strings.HasPrefix(s, "scripts/") {
		return s
	}
	return "scripts/" + s
}

func diskPrefabPath(clean string) string {
	return filepath.Join(Dir, filepath.FromSlash(clean))
}
