// Where: cli/internal/state/context.go
// What: Target context resolution for state detection.
// Why: Normalize declarations into the paths the detector probes.
package state

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/poruru-code/vue-serve-box/cli/internal/options"
	"github.com/poruru-code/vue-serve-box/cli/internal/staging"
	"github.com/poruru-code/vue-serve-box/cli/internal/workspace"
)

// Context carries the canonical paths probed during state detection.
type Context struct {
	ProjectDir string
	OutputDir  string
	LockPath   string
}

// ResolveContext loads the declarations for project/target under root and
// computes the probe paths. The output directory honors the declared
// outputDir option; callers that need config-file overrides applied inject
// a resolver built on the full option pipeline instead.
func ResolveContext(root, project, target string) (Context, error) {
	ws, err := workspace.LoadFile(root)
	if err != nil {
		return Context{}, err
	}
	projectDir, ok := ws.ProjectDir(root, project)
	if !ok {
		return Context{}, fmt.Errorf("project not registered: %s", project)
	}

	decl, err := workspace.LoadProjectFile(projectDir)
	if err != nil {
		return Context{}, err
	}
	tgt, ok := decl.Target(target)
	if !ok {
		return Context{}, fmt.Errorf("target not registered: %s", target)
	}

	outputDir := options.DefaultOutputDir
	if raw, ok := tgt.Options["outputDir"].(string); ok && strings.TrimSpace(raw) != "" {
		outputDir = raw
	}
	if !filepath.IsAbs(outputDir) {
		outputDir = filepath.Join(projectDir, outputDir)
	}

	return Context{
		ProjectDir: projectDir,
		OutputDir:  filepath.Clean(outputDir),
		LockPath:   staging.LockPath(root, project, target),
	}, nil
}
