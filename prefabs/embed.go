package prefabs

import (
	"embed"
	"os"
	"path/filepath"
	"strings"
)

//go:embed *.yaml
var PrefabsFS embed.FS

//go:embed scripts/*.tengo
var ScriptsFS embed.FS

// Load reads a prefab yaml. A copy under prefabs/ on disk wins over the
// embedded one so edits show up without a rebuild.
func Load(name string) ([]byte, error) {
	return readOverride(PrefabsFS, cleanPrefabPath(name))
}

// LoadScript reads a tengo script by bare name or by any path ending in
// prefabs/scripts/<name>.
func LoadScript(name string) ([]byte, error) {
	return readOverride(ScriptsFS, cleanScriptPath(name))
}

func readOverride(fsys embed.FS, clean string) ([]byte, error) {
	if data, err := os.ReadFile(filepath.Join("prefabs", filepath.FromSlash(clean))); err == nil {
		return data, nil
	}
	return fsys.ReadFile(clean)
}

// cleanPrefabPath strips everything up to and including the last
// "prefabs/" so absolute watcher paths and relative names agree.
func cleanPrefabPath(path string) string {
	s := filepath.ToSlash(path)
	if idx := strings.LastIndex(s, "prefabs/"); idx >= 0 {
		s = s[idx+len("prefabs/"):]
	}
	return s
}

func cleanScriptPath(path string) string {
	s := strings.TrimPrefix(cleanPrefabPath(path), "scripts/")
	return "scripts/" + s
}
