// Package app composes site modules into one HTTP handler.
package app

import (
	"fmt"
	"net/http"
	"strings"

	module "github.com/optionsbroker/vergleich/internal/services/site/module"
)

// ComposeInput carries the modules and their shared dependencies.
type ComposeInput struct {
	Dependencies module.Dependencies
	Modules      []module.Module
}

// Composer wires module mounts onto a root mux.
type Composer struct{}

// Compose builds a root HTTP handler from modules. Every prefix and exact
// path may be claimed by one module only.
func (Composer) Compose(input ComposeInput) (*http.ServeMux, error) {
	root := http.NewServeMux()
	seen := make(map[string]string)
	for _, feature := range input.Modules {
		if feature == nil {
			return nil, fmt.Errorf("module is nil")
		}
		mount, err := feature.Mount(input.Dependencies)
		if err != nil {
			return nil, fmt.Errorf("mount module %q: %w", feature.ID(), err)
		}
		if mount.Handler == nil {
			return nil, fmt.Errorf("mount module %q: handler is required", feature.ID())
		}
		patterns, err := mountPatterns(feature.ID(), mount)
		if err != nil {
			return nil, err
		}
		for _, pattern := range patterns {
			if previous, ok := seen[pattern]; ok {
				return nil, fmt.Errorf("module %q duplicates route %q owned by module %q", feature.ID(), pattern, previous)
			}
			seen[pattern] = feature.ID()
			root.Handle(pattern, mount.Handler)
		}
	}
	return root, nil
}

func mountPatterns(id string, mount module.Mount) ([]string, error) {
	var patterns []string
	if prefix := normalizePrefix(mount.Prefix); prefix != "" {
		patterns = append(patterns, prefix)
	}
	for _, path := range mount.Paths {
		path = normalizePath(path)
		if path == "" {
			return nil, fmt.Errorf("mount module %q: blank path", id)
		}
		patterns = append(patterns, path)
	}
	if len(patterns) == 0 {
		return nil, fmt.Errorf("mount module %q: prefix or paths are required", id)
	}
	return patterns, nil
}

func normalizePrefix(prefix string) string {
	prefix = normalizePath(prefix)
	if prefix == "" {
		return ""
	}
	if !strings.HasSuffix(prefix, "/") {
		prefix += "/"
	}
	return prefix
}

func normalizePath(path string) string {
	path = strings.TrimSpace(path)
	if path == "" {
		return ""
	}
	if !strings.HasPrefix(path, "/") {
		path = "/" + path
	}
	return path
}
