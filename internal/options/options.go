// Where: cli/internal/options/options.go
// What: Resolved option shapes for the serve and build executors.
// Why: Give the delegate-facing code typed options instead of raw maps.
package options

// ServeOptions is the fully resolved configuration for a dev-server session.
type ServeOptions struct {
	BuildTarget           string      `json:"buildTarget,omitempty"`
	Mode                  string      `json:"mode,omitempty"`
	Host                  string      `json:"host,omitempty"`
	Port                  int         `json:"port"`
	HTTPS                 bool        `json:"https"`
	Public                string      `json:"public,omitempty"`
	Watch                 bool        `json:"watch"`
	Open                  bool        `json:"open"`
	Copy                  bool        `json:"copy"`
	Stdin                 bool        `json:"stdin"`
	TranspileDependencies []string    `json:"transpileDependencies,omitempty"`
	CSS                   *CSSOptions `json:"css,omitempty"`
}

// BuildOptions is the fully resolved configuration for the build delegate.
// During a serve session it also feeds the generated service config overlay.
type BuildOptions struct {
	Main                  string      `json:"main,omitempty"`
	Index                 string      `json:"index,omitempty"`
	OutputDir             string      `json:"outputDir,omitempty"`
	PublicPath            string      `json:"publicPath,omitempty"`
	TsConfig              string      `json:"tsConfig,omitempty"`
	Mode                  string      `json:"mode,omitempty"`
	Host                  string      `json:"host,omitempty"`
	Port                  int         `json:"port"`
	HTTPS                 bool        `json:"https"`
	Public                string      `json:"public,omitempty"`
	Watch                 bool        `json:"watch"`
	SourceMap             bool        `json:"sourceMap"`
	TranspileDependencies []string    `json:"transpileDependencies,omitempty"`
	CSS                   *CSSOptions `json:"css,omitempty"`
	ConfigureWebpack      string      `json:"configureWebpack,omitempty"`
}

// CSSOptions carries the css sub-options. All fields are tri-state: a nil
// pointer means the user never set the field, so the delegate's own default
// must apply. When every field is unset the whole css block stays unset.
type CSSOptions struct {
	RequireModuleExtension *bool          `json:"requireModuleExtension,omitempty"`
	Extract                *bool          `json:"extract,omitempty"`
	SourceMap              *bool          `json:"sourceMap,omitempty"`
	LoaderOptions          map[string]any `json:"loaderOptions,omitempty"`
}

// Empty reports whether no css sub-option was set.
func (c *CSSOptions) Empty() bool {
	if c == nil {
		return true
	}
	return c.RequireModuleExtension == nil &&
		c.Extract == nil &&
		c.SourceMap == nil &&
		c.LoaderOptions == nil
}
