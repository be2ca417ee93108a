package config

import (
	"errors"
	"flag"
	"os"
	"path/filepath"
	"testing"

	"github.com/milk9111/cakechase/prefabs"
)

func TestBindUsesEnvironmentDefaults(t *testing.T) {
	t.Setenv(EnvCamera, "orbit")
	t.Setenv(EnvCake, "script")
	t.Setenv(EnvSeed, "42")
	t.Setenv(EnvDebug, "true")

	fs := flag.NewFlagSet("test", flag.ContinueOnError)
	opts := Bind(fs)
	if err := fs.Parse(nil); err != nil {
		t.Fatal(err)
	}
	if opts.Camera != "orbit" || opts.Cake != "script" || opts.Seed != 42 || !opts.Debug {
		t.Fatalf("unexpected options %+v", opts)
	}

	fs = flag.NewFlagSet("test", flag.ContinueOnError)
	opts = Bind(fs)
	if err := fs.Parse([]string{"-camera", "tracking", "-seed", "7"}); err != nil {
		t.Fatal(err)
	}
	if opts.Camera != "tracking" || opts.Seed != 7 {
		t.Fatalf("flags should override environment, got %+v", opts)
	}
}

func TestBindIgnoresMalformedEnvironment(t *testing.T) {
	t.Setenv(EnvSeed, "soon")
	t.Setenv(EnvDebug, "maybe")

	fs := flag.NewFlagSet("test", flag.ContinueOnError)
	opts := Bind(fs)
	if err := fs.Parse(nil); err != nil {
		t.Fatal(err)
	}
	if opts.Seed != 0 || opts.Debug {
		t.Fatalf("expected zero defaults, got %+v", opts)
	}
}

func TestApply(t *testing.T) {
	tests := []struct {
		name     string
		opts     Options
		tracking bool
		policy   string
		wantErr  error
	}{
		{"defaults", Options{}, true, "respawn", nil},
		{"orbit_camera", Options{Camera: "orbit"}, false, "respawn", nil},
		{"script_cake", Options{Cake: "script"}, true, "script", nil},
		{"bad_camera", Options{Camera: "fisheye"}, false, "", ErrInvalidOption},
		{"bad_cake", Options{Cake: "teleport"}, false, "", prefabs.ErrInvalidSpec},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			spec, err := tc.opts.Apply(prefabs.DefaultGameSpec())
			if tc.wantErr != nil {
				if !errors.Is(err, tc.wantErr) {
					t.Fatalf("expected %v, got %v", tc.wantErr, err)
				}
				return
			}
			if err != nil {
				t.Fatal(err)
			}
			if spec.Camera.Tracking != tc.tracking || spec.Cake.Policy != tc.policy {
				t.Fatalf("unexpected spec camera=%v cake=%s", spec.Camera.Tracking, spec.Cake.Policy)
			}
		})
	}
}

func TestLoadEnv(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, ".env")
	if err := os.WriteFile(path, []byte(EnvCake+"=orbit\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	t.Setenv(EnvCake, "")
	os.Unsetenv(EnvCake)

	if err := LoadEnv(filepath.Join(dir, "missing.env"), path); err != nil {
		t.Fatalf("LoadEnv: %v", err)
	}
	if got := os.Getenv(EnvCake); got != "orbit" {
		t.Fatalf("expected %s=orbit from file, got %q", EnvCake, got)
	}
}

func TestResolvedSeed(t *testing.T) {
	if got := (Options{Seed: 9}).ResolvedSeed(); got != 9 {
		t.Fatalf("expected explicit seed, got %d", got)
	}
	if got := (Options{}).ResolvedSeed(); got == 0 {
		t.Fatal("expected a clock seed")
	}
}
