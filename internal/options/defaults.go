// Where: cli/internal/options/defaults.go
// What: Built-in defaults for the serve and build executors.
// Why: Keep the lowest merge layer in one place.
package options

const (
	DefaultServeMode = "development"
	DefaultBuildMode = "production"
	DefaultHost      = "0.0.0.0"
	DefaultPort      = 8080
	DefaultMain      = "src/main.js"
	DefaultIndex     = "public/index.html"
	DefaultOutputDir = "dist"
	DefaultPublic    = "/"
)

// serveDefaults returns the built-in serve option layer. css is deliberately
// absent so the delegate keeps its own default when nobody sets it.
func serveDefaults() map[string]any {
	return map[string]any{
		"mode":  DefaultServeMode,
		"host":  DefaultHost,
		"port":  DefaultPort,
		"https": false,
		"watch": true,
		"open":  false,
		"copy":  false,
		"stdin": false,
	}
}

// buildDefaults returns the built-in build option layer.
func buildDefaults() map[string]any {
	return map[string]any{
		"main":       DefaultMain,
		"index":      DefaultIndex,
		"outputDir":  DefaultOutputDir,
		"publicPath": DefaultPublic,
		"mode":       DefaultBuildMode,
		"watch":      false,
		"sourceMap":  false,
	}
}
