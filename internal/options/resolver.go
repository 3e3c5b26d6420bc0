// Where: cli/internal/options/resolver.go
// What: Option resolution for the serve and build executors.
// Why: Collapse defaults, the project option file, and invocation options into one config.
package options

import (
	"fmt"
	"os"
	"path/filepath"

	"dario.cat/mergo"
	"github.com/poruru-code/vue-serve-box/cli/internal/meta"
)

// buildOverrideKeys is the whitelist of serve invocation keys copied onto
// the resolved build options so the delegate sees a consistent pair.
var buildOverrideKeys = []string{"mode", "host", "port", "https", "public", "watch"}

// cssKeys are the css sub-options. When none of them survives the merge the
// css block is dropped so the delegate default applies.
var cssKeys = []string{"requireModuleExtension", "extract", "sourceMap", "loaderOptions"}

// Inputs carries one executor invocation: the project it runs in and the
// explicit options (target declaration with configuration and flag overrides
// already applied).
type Inputs struct {
	ProjectDir string
	Invocation map[string]any
}

// ServeInputs pairs a serve invocation with its linked build target's inputs.
type ServeInputs struct {
	Serve Inputs
	Build Inputs
}

// ServeResolution is the outcome of resolving a serve invocation: the serve
// options and the linked build options the overlay is rendered from.
type ServeResolution struct {
	Serve ServeOptions
	Build BuildOptions
}

// Resolver merges option layers. Warn receives user-facing notices; the
// legacy hook notice fires at most once per resolver.
type Resolver struct {
	Warn func(msg string)

	warnedLegacyHook bool
}

// ResolveServe resolves a serve invocation and its linked build options.
// Priority per key, lowest to highest: built-in defaults, the project's
// vsb.config.yaml section, the invocation options. The serve invocation's
// override whitelist is then copied onto the resolved build options.
func (r *Resolver) ResolveServe(in ServeInputs) (ServeResolution, error) {
	serveBag, err := r.resolveBag(serveDefaults(), in.Serve, "serve")
	if err != nil {
		return ServeResolution{}, err
	}

	buildBag, err := r.resolveBag(buildDefaults(), in.Build, "build")
	if err != nil {
		return ServeResolution{}, err
	}

	for _, key := range buildOverrideKeys {
		if value, ok := in.Serve.Invocation[key]; ok {
			buildBag[key] = value
		}
	}

	r.applyLegacyHook(in.Build.ProjectDir, buildBag)
	pruneEmptyCSS(serveBag)
	pruneEmptyCSS(buildBag)

	var resolution ServeResolution
	if err := decodeBag(serveBag, &resolution.Serve); err != nil {
		return ServeResolution{}, fmt.Errorf("decode serve options: %w", err)
	}
	if err := decodeBag(buildBag, &resolution.Build); err != nil {
		return ServeResolution{}, fmt.Errorf("decode build options: %w", err)
	}
	return resolution, nil
}

// ResolveBuild resolves a standalone build invocation.
func (r *Resolver) ResolveBuild(in Inputs) (BuildOptions, error) {
	bag, err := r.resolveBag(buildDefaults(), in, "build")
	if err != nil {
		return BuildOptions{}, err
	}

	r.applyLegacyHook(in.ProjectDir, bag)
	pruneEmptyCSS(bag)

	var resolved BuildOptions
	if err := decodeBag(bag, &resolved); err != nil {
		return BuildOptions{}, fmt.Errorf("decode build options: %w", err)
	}
	return resolved, nil
}

// resolveBag layers the project option file and the invocation options over
// the defaults. Last writer wins for every overlapping key; nested maps
// merge key by key.
func (r *Resolver) resolveBag(defaults map[string]any, in Inputs, section string) (map[string]any, error) {
	bag := defaults

	cfg, err := LoadProjectConfig(in.ProjectDir)
	if err != nil {
		return nil, err
	}
	fileLayer := cfg.Serve
	if section == "build" {
		fileLayer = cfg.Build
	}

	for _, layer := range []map[string]any{fileLayer, in.Invocation} {
		if len(layer) == 0 {
			continue
		}
		src, err := copyBag(layer)
		if err != nil {
			return nil, fmt.Errorf("copy %s options: %w", section, err)
		}
		if err := mergo.Merge(&bag, src, mergo.WithOverride); err != nil {
			return nil, fmt.Errorf("merge %s options: %w", section, err)
		}
	}
	return bag, nil
}

// applyLegacyHook honors a project's legacy webpack config hook file. The
// hook still works, wired through the configureWebpack field, but its use
// is deprecated and reported once.
func (r *Resolver) applyLegacyHook(projectDir string, bag map[string]any) {
	if projectDir == "" {
		return
	}
	hookPath := filepath.Join(projectDir, meta.LegacyWebpackHook)
	if _, err := os.Stat(hookPath); err != nil {
		return
	}

	if !r.warnedLegacyHook {
		r.warnedLegacyHook = true
		if r.Warn != nil {
			r.Warn(fmt.Sprintf("%s is deprecated: move the custom webpack configuration into %s", meta.LegacyWebpackHook, meta.ProjectConfigFile))
		}
	}

	if _, ok := bag["configureWebpack"]; !ok {
		bag["configureWebpack"] = hookPath
	}
}

// pruneEmptyCSS drops the css block when no sub-option is present, leaving
// the delegate's own default in force.
func pruneEmptyCSS(bag map[string]any) {
	value, ok := bag["css"]
	if !ok {
		return
	}
	css := asMap(value)
	if css == nil {
		return
	}
	for _, key := range cssKeys {
		if _, ok := css[key]; ok {
			return
		}
	}
	delete(bag, "css")
}
