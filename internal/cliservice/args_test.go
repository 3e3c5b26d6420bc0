// Where: cli/internal/cliservice/args_test.go
// What: Tests for delegate argument and environment assembly.
// Why: Keep the forwarded command surface stable.
package cliservice

import (
	"reflect"
	"testing"

	"github.com/poruru-code/vue-serve-box/cli/internal/options"
)

func TestServeArgsDefaults(t *testing.T) {
	args := ServeArgs(options.ServeOptions{
		Mode: "development",
		Host: "0.0.0.0",
		Port: 8080,
	})
	expected := []string{"serve", "--mode", "development", "--host", "0.0.0.0", "--port", "8080"}
	if !reflect.DeepEqual(args, expected) {
		t.Fatalf("unexpected args: %v", args)
	}
}

func TestServeArgsHTTPSAndPublic(t *testing.T) {
	args := ServeArgs(options.ServeOptions{
		Mode:   "development",
		Host:   "127.0.0.1",
		Port:   4200,
		HTTPS:  true,
		Public: "https://preview.example.com",
	})
	expected := []string{
		"serve",
		"--mode", "development",
		"--host", "127.0.0.1",
		"--port", "4200",
		"--https",
		"--public", "https://preview.example.com",
	}
	if !reflect.DeepEqual(args, expected) {
		t.Fatalf("unexpected args: %v", args)
	}
}

func TestServeArgsNeverForwardsSessionFlags(t *testing.T) {
	args := ServeArgs(options.ServeOptions{
		Mode: "development",
		Host: "0.0.0.0",
		Port: 8080,
		Open: true,
		Copy: true,
	})
	for _, arg := range args {
		if arg == "--open" || arg == "--copy" {
			t.Fatalf("session flag leaked into delegate args: %v", args)
		}
	}
}

func TestBuildArgs(t *testing.T) {
	args := BuildArgs(options.BuildOptions{Mode: "production"}, "/work/shop/apps/storefront/dist")
	expected := []string{"build", "--mode", "production", "--dest", "/work/shop/apps/storefront/dist"}
	if !reflect.DeepEqual(args, expected) {
		t.Fatalf("unexpected args: %v", args)
	}
}

func TestBuildArgsWatch(t *testing.T) {
	args := BuildArgs(options.BuildOptions{Mode: "development", Watch: true}, "dist")
	expected := []string{"build", "--mode", "development", "--dest", "dist", "--watch"}
	if !reflect.DeepEqual(args, expected) {
		t.Fatalf("unexpected args: %v", args)
	}
}

func TestEnvCarriesOverlayAndMode(t *testing.T) {
	env := Env("/work/shop/.vsb/storefront/app/vue.config.js", "development")
	expected := []string{
		"VUE_CLI_SERVICE_CONFIG_PATH=/work/shop/.vsb/storefront/app/vue.config.js",
		"NODE_ENV=development",
	}
	if !reflect.DeepEqual(env, expected) {
		t.Fatalf("unexpected env: %v", env)
	}
}

func TestEnvSkipsEmptyMode(t *testing.T) {
	env := Env("/tmp/vue.config.js", "")
	expected := []string{"VUE_CLI_SERVICE_CONFIG_PATH=/tmp/vue.config.js"}
	if !reflect.DeepEqual(env, expected) {
		t.Fatalf("unexpected env: %v", env)
	}
}
