package main

import (
	"github.com/aeojs/aeo"
	"github.com/aeojs/aeo/fs"
	aeoyaml "github.com/aeojs/aeo/yaml"
)

// project is a local site project: its detected framework and configuration.
type project struct {
	Info      aeo.FrameworkInfo
	Config    *aeo.Config
	HasConfig bool
}

// loadProject detects the framework of the project root and reads its
// config file. A missing config file yields an empty configuration.
func loadProject(deps *Dependencies) (*project, error) {
	info, err := fs.DetectFramework(deps.Root)
	if err != nil {
		return nil, err
	}

	p := &project{Info: info, Config: &aeo.Config{}}
	cfg, err := aeoyaml.LoadConfig(deps.ConfigPath)
	switch {
	case aeo.ErrorCode(err) == aeo.ENOTFOUND:
	case err != nil:
		return nil, err
	default:
		p.Config = cfg
		p.HasConfig = true
	}
	return p, nil
}

// resolve applies defaults and makes directories absolute.
func (p *project) resolve(root string) (*aeo.ResolvedConfig, error) {
	cfg := aeo.ResolveConfig(p.Config, p.Info)
	if cfg.PagesDir == "" {
		cfg.PagesDir = defaultPagesDir(p.Info.Framework)
	}
	if err := fs.ResolveDirs(root, cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

// defaultPagesDir returns the file-based routing directory of a framework.
func defaultPagesDir(fw aeo.Framework) string {
	switch fw {
	case aeo.FrameworkNext:
		return "app"
	case aeo.FrameworkNuxt:
		return "pages"
	case aeo.FrameworkAstro:
		return "src/pages"
	default:
		return ""
	}
}
