package fs

import (
	"encoding/json"
	"fmt"
	"maps"
	"os"
	"path/filepath"

	"github.com/aeojs/aeo"
)

// packageJSON holds the dependency sections of a package.json file.
type packageJSON struct {
	Dependencies    map[string]string `json:"dependencies"`
	DevDependencies map[string]string `json:"devDependencies"`
}

// DetectFramework identifies the web framework of the project in dir from
// its package.json. A project without package.json is reported as unknown.
func DetectFramework(dir string) (aeo.FrameworkInfo, error) {
	data, err := os.ReadFile(filepath.Join(dir, "package.json"))
	if os.IsNotExist(err) {
		return aeo.DetectFramework(nil), nil
	} else if err != nil {
		return aeo.FrameworkInfo{}, err
	}

	var pkg packageJSON
	if err := json.Unmarshal(data, &pkg); err != nil {
		return aeo.FrameworkInfo{}, aeo.Errorf(aeo.EINVALID, "invalid package.json: %v", err)
	}

	deps := make(map[string]string, len(pkg.Dependencies)+len(pkg.DevDependencies))
	maps.Copy(deps, pkg.Dependencies)
	maps.Copy(deps, pkg.DevDependencies)
	return aeo.DetectFramework(deps), nil
}

// ResolveDirs makes the directories of cfg absolute relative to the project
// root, leaving absolute paths untouched.
func ResolveDirs(root string, cfg *aeo.ResolvedConfig) error {
	root, err := filepath.Abs(root)
	if err != nil {
		return fmt.Errorf("resolve project root: %w", err)
	}
	for _, dir := range []*string{&cfg.ContentDir, &cfg.OutDir, &cfg.BuildDir, &cfg.PagesDir} {
		if *dir != "" && !filepath.IsAbs(*dir) {
			*dir = filepath.Join(root, *dir)
		}
	}
	return nil
}
