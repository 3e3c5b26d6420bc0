// Where: cli/internal/chain/plan.go
// What: Patch plan for the delegate's webpack chain.
// Why: Collect every config rewrite in one place before the overlay is rendered.
package chain

import (
	"path/filepath"
	"sort"

	"github.com/poruru-code/vue-serve-box/cli/internal/options"
	"github.com/poruru-code/vue-serve-box/cli/internal/staging"
)

// Plan describes the webpack chain rewrites carried to the delegate:
// the app entry, the HTML template, the filesystem cache location, and
// module aliases from the project's tsconfig/jsconfig.
type Plan struct {
	Entry        string
	HTMLTemplate string
	HTMLFilename string
	CacheDir     string
	Aliases      []Alias
}

// Alias maps an import prefix to an absolute directory or file.
type Alias struct {
	Name string
	Path string
}

// PlanInputs carries everything the plan derives from.
type PlanInputs struct {
	WorkspaceRoot string
	ProjectDir    string
	Project       string
	Target        string
	Build         options.BuildOptions
}

// ComputePlan derives the patch plan from the resolved build options and the
// project layout. tsconfig parse failures downgrade to a warning through
// warn; the plan then simply carries no aliases.
func ComputePlan(in PlanInputs, warn func(msg string)) Plan {
	plan := Plan{
		Entry:        absUnder(in.ProjectDir, in.Build.Main),
		HTMLTemplate: absUnder(in.ProjectDir, in.Build.Index),
		HTMLFilename: filepath.Base(in.Build.Index),
		CacheDir:     staging.CacheDir(in.WorkspaceRoot, in.Project, in.Target),
	}

	aliases := loadAliases(in.ProjectDir, in.Build.TsConfig, warn)
	names := make([]string, 0, len(aliases))
	for name := range aliases {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		plan.Aliases = append(plan.Aliases, Alias{Name: name, Path: aliases[name]})
	}
	return plan
}

func absUnder(baseDir, path string) string {
	if path == "" {
		return ""
	}
	if filepath.IsAbs(path) {
		return filepath.Clean(path)
	}
	return filepath.Join(baseDir, path)
}
