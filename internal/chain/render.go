// Where: cli/internal/chain/render.go
// What: Render the generated service config overlay.
// Why: Carry the patch plan and resolved options to the delegate through one file.
package chain

import (
	"bytes"
	"embed"
	"fmt"
	"os"
	"path"
	"path/filepath"
	"sync"
	"text/template"

	"github.com/Masterminds/sprig/v3"
	"github.com/poruru-code/vue-serve-box/cli/internal/meta"
	"github.com/poruru-code/vue-serve-box/cli/internal/options"
	"github.com/poruru-code/vue-serve-box/cli/internal/staging"
)

//go:embed templates/*.tmpl
var templateFS embed.FS

var templateCache sync.Map

// overlayData is the template context for vue.config.js.tmpl.
type overlayData struct {
	App              string
	PublicPath       string
	OutputDir        string
	SourceMap        bool
	Transpile        []string
	CSS              map[string]any
	DevServer        *devServerData
	ConfigureWebpack string
	Entry            string
	HTMLTemplate     string
	HTMLFilename     string
	CacheDir         string
	Aliases          []Alias
}

type devServerData struct {
	Host   string
	Port   int
	HTTPS  bool
	Public string
}

// Render produces the overlay content for a target. serve is nil for a
// standalone build; a serve session adds the devServer block.
func Render(plan Plan, serve *options.ServeOptions, build options.BuildOptions) (string, error) {
	data := overlayData{
		App:              meta.AppName,
		PublicPath:       build.PublicPath,
		OutputDir:        build.OutputDir,
		SourceMap:        build.SourceMap,
		Transpile:        build.TranspileDependencies,
		CSS:              cssMap(build.CSS),
		ConfigureWebpack: build.ConfigureWebpack,
		Entry:            plan.Entry,
		HTMLTemplate:     plan.HTMLTemplate,
		HTMLFilename:     plan.HTMLFilename,
		CacheDir:         plan.CacheDir,
		Aliases:          plan.Aliases,
	}
	if serve != nil {
		data.DevServer = &devServerData{
			Host:   serve.Host,
			Port:   serve.Port,
			HTTPS:  serve.HTTPS,
			Public: serve.Public,
		}
		if css := cssMap(serve.CSS); css != nil {
			data.CSS = css
		}
	}

	return renderTemplate("vue.config.js.tmpl", data)
}

// Stage renders the overlay and writes it under the workspace staging dir,
// returning the written path. The file has no lifecycle beyond the run that
// wrote it.
func Stage(workspaceRoot, project, target string, plan Plan, serve *options.ServeOptions, build options.BuildOptions) (string, error) {
	content, err := Render(plan, serve, build)
	if err != nil {
		return "", err
	}

	overlayPath := staging.OverlayPath(workspaceRoot, project, target)
	if err := os.MkdirAll(filepath.Dir(overlayPath), 0o755); err != nil {
		return "", fmt.Errorf("create staging dir: %w", err)
	}
	if err := os.WriteFile(overlayPath, []byte(content), 0o644); err != nil {
		return "", fmt.Errorf("write overlay: %w", err)
	}
	return overlayPath, nil
}

// cssMap flattens CSSOptions into a JSON-ready map holding only the fields
// that were actually set. Nil when the block must stay absent.
func cssMap(css *options.CSSOptions) map[string]any {
	if css.Empty() {
		return nil
	}
	out := map[string]any{}
	if css.RequireModuleExtension != nil {
		out["requireModuleExtension"] = *css.RequireModuleExtension
	}
	if css.Extract != nil {
		out["extract"] = *css.Extract
	}
	if css.SourceMap != nil {
		out["sourceMap"] = *css.SourceMap
	}
	if css.LoaderOptions != nil {
		out["loaderOptions"] = css.LoaderOptions
	}
	return out
}

func renderTemplate(name string, data any) (string, error) {
	tmpl, err := loadTemplate(name)
	if err != nil {
		return "", err
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		return "", err
	}
	return buf.String(), nil
}

func loadTemplate(name string) (*template.Template, error) {
	if value, ok := templateCache.Load(name); ok {
		cached, ok := value.(*template.Template)
		if !ok {
			return nil, fmt.Errorf("template cache type mismatch for %s", name)
		}
		return cached, nil
	}
	pathName := "templates/" + name
	baseName := path.Base(pathName)
	tmpl, err := template.New(baseName).Funcs(sprig.TxtFuncMap()).ParseFS(templateFS, pathName)
	if err != nil {
		return nil, err
	}
	templateCache.Store(name, tmpl)
	return tmpl, nil
}
