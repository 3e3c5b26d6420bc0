// Where: cli/internal/chain/tsconfig.go
// What: Module alias extraction from tsconfig/jsconfig files.
// Why: Mirror compilerOptions.paths into webpack resolve aliases.
package chain

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// compilerConfig is the slice of a tsconfig/jsconfig the plan cares about.
type compilerConfig struct {
	CompilerOptions struct {
		BaseURL string              `yaml:"baseUrl"`
		Paths   map[string][]string `yaml:"paths"`
	} `yaml:"compilerOptions"`
}

// loadAliases reads compilerOptions.paths from the configured tsconfig, or
// from tsconfig.json/jsconfig.json next to the project file when none is
// configured. A missing file yields no aliases; an unreadable or unparsable
// one downgrades to a warning.
func loadAliases(projectDir, tsConfig string, warn func(msg string)) map[string]string {
	path := findCompilerConfig(projectDir, tsConfig)
	if path == "" {
		return nil
	}

	payload, err := os.ReadFile(path)
	if err != nil {
		warnf(warn, "skipping aliases: read %s: %v", filepath.Base(path), err)
		return nil
	}

	var cfg compilerConfig
	if err := yaml.Unmarshal(payload, &cfg); err != nil {
		warnf(warn, "skipping aliases: parse %s: %v", filepath.Base(path), err)
		return nil
	}

	baseDir := filepath.Dir(path)
	if base := strings.TrimSpace(cfg.CompilerOptions.BaseURL); base != "" {
		baseDir = absUnder(baseDir, base)
	}

	aliases := map[string]string{}
	for pattern, targets := range cfg.CompilerOptions.Paths {
		if len(targets) == 0 {
			continue
		}
		name := strings.TrimSuffix(strings.TrimSpace(pattern), "/*")
		if name == "" || name == "*" {
			continue
		}
		// First pattern target wins.
		target := strings.TrimSuffix(strings.TrimSpace(targets[0]), "/*")
		target = strings.TrimSuffix(target, "*")
		aliases[name] = absUnder(baseDir, target)
	}
	if len(aliases) == 0 {
		return nil
	}
	return aliases
}

// findCompilerConfig resolves which tsconfig to read. An explicitly
// configured file that is missing still surfaces through loadAliases's
// read warning; the implicit candidates are optional.
func findCompilerConfig(projectDir, tsConfig string) string {
	if strings.TrimSpace(tsConfig) != "" {
		return absUnder(projectDir, tsConfig)
	}
	for _, candidate := range []string{"tsconfig.json", "jsconfig.json"} {
		path := filepath.Join(projectDir, candidate)
		if _, err := os.Stat(path); err == nil {
			return path
		}
	}
	return ""
}

func warnf(warn func(msg string), format string, args ...any) {
	if warn == nil {
		return
	}
	warn(fmt.Sprintf(format, args...))
}
