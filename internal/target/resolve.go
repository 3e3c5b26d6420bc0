// Where: cli/internal/target/resolve.go
// What: Target resolution against the workspace and global registry.
// Why: Normalize a reference into the project dir, declaration, and invocation options.
package target

import (
	"fmt"
	"os"
	"path/filepath"

	"dario.cat/mergo"
	"github.com/mitchellh/copystructure"
	"github.com/poruru-code/vue-serve-box/cli/internal/workspace"
)

// Resolved is a fully looked-up target: the project it belongs to, the
// directory it lives in, its declaration, and the invocation options
// (declared options overlaid with the selected configuration).
type Resolved struct {
	Ref        Ref
	ProjectDir string
	Project    workspace.ProjectFile
	Target     workspace.Target
	Options    map[string]any
}

// Resolver looks up references against a workspace file and the global
// project registry. Root and Workspace may be zero when running outside
// a workspace tree.
type Resolver struct {
	Root      string
	Workspace workspace.File
	Global    workspace.GlobalConfig
}

// ProjectDir locates a project's directory, preferring the workspace file
// over the global registry.
func (r Resolver) ProjectDir(name string) (string, error) {
	if dir, ok := r.Workspace.ProjectDir(r.Root, name); ok {
		return dir, nil
	}
	if entry, ok := r.Global.Projects[name]; ok && entry.Path != "" {
		dir := entry.Path
		if !filepath.IsAbs(dir) {
			if abs, err := filepath.Abs(dir); err == nil {
				dir = abs
			}
		}
		return filepath.Clean(dir), nil
	}
	return "", fmt.Errorf("project not registered: %s", name)
}

// Resolve looks up the reference and applies its configuration overlay.
func (r Resolver) Resolve(ref Ref) (Resolved, error) {
	projectDir, err := r.ProjectDir(ref.Project)
	if err != nil {
		return Resolved{}, err
	}
	if _, err := os.Stat(projectDir); err != nil {
		return Resolved{}, fmt.Errorf("project dir not found: %w", err)
	}

	project, err := workspace.LoadProjectFile(projectDir)
	if err != nil {
		return Resolved{}, err
	}

	decl, ok := project.Target(ref.Target)
	if !ok {
		return Resolved{}, fmt.Errorf("target not registered: %s", ref.String())
	}
	if decl.Executor == "" {
		return Resolved{}, fmt.Errorf("target %s declares no executor", ref.String())
	}

	options, err := overlayOptions(decl, ref)
	if err != nil {
		return Resolved{}, err
	}

	return Resolved{
		Ref:        ref,
		ProjectDir: projectDir,
		Project:    project,
		Target:     decl,
		Options:    options,
	}, nil
}

// overlayOptions deep-copies the declared options and merges the selected
// configuration over them. Configuration values win; the declaration's own
// maps stay untouched.
func overlayOptions(decl workspace.Target, ref Ref) (map[string]any, error) {
	options, err := copyOptionsMap(decl.Options)
	if err != nil {
		return nil, fmt.Errorf("copy target options: %w", err)
	}

	if ref.Configuration == "" {
		return options, nil
	}
	overlay, ok := decl.Configurations[ref.Configuration]
	if !ok {
		return nil, fmt.Errorf("configuration not registered: %s", ref.String())
	}
	src, err := copyOptionsMap(overlay)
	if err != nil {
		return nil, fmt.Errorf("copy configuration %s: %w", ref.Configuration, err)
	}
	if err := mergo.Merge(&options, src, mergo.WithOverride); err != nil {
		return nil, fmt.Errorf("apply configuration %s: %w", ref.Configuration, err)
	}
	return options, nil
}

func copyOptionsMap(m map[string]any) (map[string]any, error) {
	if len(m) == 0 {
		return map[string]any{}, nil
	}
	copied, err := copystructure.Copy(m)
	if err != nil {
		return nil, err
	}
	out, ok := copied.(map[string]any)
	if !ok || out == nil {
		return map[string]any{}, nil
	}
	return out, nil
}
