package cmd

import (
	"archive/zip"
	"bytes"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/dendrascience/lovepack/internal/config"
	"github.com/fatih/color"
)

func TestPathsOverlap(t *testing.T) {
	tests := []struct {
		name     string
		path1    string
		path2    string
		expected bool
	}{
		{
			name:     "identical paths",
			path1:    "/tmp/game",
			path2:    "/tmp/game",
			expected: true,
		},
		{
			name:     "output inside root",
			path1:    "/tmp/game",
			path2:    "/tmp/game/dist/game.love",
			expected: true,
		},
		{
			name:     "root inside path",
			path1:    "/tmp/game/src",
			path2:    "/tmp/game",
			expected: true,
		},
		{
			name:     "completely separate paths",
			path1:    "/tmp/game",
			path2:    "/mnt/out/game.love",
			expected: false,
		},
		{
			name:     "sibling directories",
			path1:    "/tmp/game",
			path2:    "/tmp/game-dist/game.love",
			expected: false,
		},
		{
			name:     "relative paths - overlapping",
			path1:    ".",
			path2:    "dist/game.love",
			expected: true,
		},
		{
			name:     "relative paths - separate",
			path1:    "game",
			path2:    "out/game.love",
			expected: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := pathsOverlap(tt.path1, tt.path2)
			if result != tt.expected {
				t.Errorf("pathsOverlap(%q, %q) = %v, expected %v", tt.path1, tt.path2, result, tt.expected)
			}
		})
	}
}

func writeTree(t *testing.T, root string, files ...string) {
	t.Helper()
	for _, name := range files {
		path := filepath.Join(root, filepath.FromSlash(name))
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			t.Fatalf("Failed to create directory: %v", err)
		}
		if err := os.WriteFile(path, []byte("content of "+name), 0o644); err != nil {
			t.Fatalf("Failed to write file: %v", err)
		}
	}
}

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	color.NoColor = true
	root := NewRootCmd()
	var out bytes.Buffer
	root.SetOut(&out)
	root.SetErr(&out)
	root.SetArgs(args)
	err := root.Execute()
	return out.String(), err
}

func TestBuildCmd_UsesEnvDestination(t *testing.T) {
	root := t.TempDir()
	writeTree(t, root, "main.lua", "dist/old.love", "art/hero.psd", "assets/hero.png")
	dest := filepath.Join(t.TempDir(), "out", "game.love")
	t.Setenv(config.EnvOutput, dest)

	out, err := execute(t, "build", root)
	if err != nil {
		t.Fatalf("build failed: %v\n%s", err, out)
	}
	if !strings.Contains(out, "2 files") {
		t.Errorf("summary missing file count: %q", out)
	}

	r, err := zip.OpenReader(dest)
	if err != nil {
		t.Fatalf("Failed to open archive: %v", err)
	}
	defer r.Close()

	found := make(map[string]bool)
	for _, f := range r.File {
		found[f.Name] = true
	}
	if !found["main.lua"] || !found["assets/hero.png"] || len(found) != 2 {
		t.Errorf("unexpected archive members: %v", found)
	}
}

func TestBuildCmd_OutputFlagOverridesEnv(t *testing.T) {
	root := t.TempDir()
	writeTree(t, root, "main.lua")
	envDest := filepath.Join(t.TempDir(), "env.love")
	flagDest := filepath.Join(t.TempDir(), "flag.love")
	t.Setenv(config.EnvOutput, envDest)

	if out, err := execute(t, "build", root, "--output", flagDest); err != nil {
		t.Fatalf("build failed: %v\n%s", err, out)
	}
	if _, err := os.Stat(flagDest); err != nil {
		t.Errorf("flag destination not written: %v", err)
	}
	if _, err := os.Stat(envDest); !os.IsNotExist(err) {
		t.Errorf("env destination should not be written, stat err = %v", err)
	}
}

func TestBuildCmd_MissingDestination(t *testing.T) {
	t.Setenv(config.EnvOutput, "")
	_, err := execute(t, "build", t.TempDir())
	if err == nil || !strings.Contains(err.Error(), config.EnvOutput) {
		t.Fatalf("expected missing destination error, got: %v", err)
	}
}

func TestBuildCmd_MissingRoot(t *testing.T) {
	dest := filepath.Join(t.TempDir(), "game.love")
	_, err := execute(t, "build", filepath.Join(t.TempDir(), "nope"), "-o", dest)
	if !errors.Is(err, fs.ErrNotExist) {
		t.Fatalf("expected not-exist error, got: %v", err)
	}
}

func TestBuildCmd_ConfigFile(t *testing.T) {
	root := t.TempDir()
	writeTree(t, root, "main.lua", "notes.txt", "dist/keep.lua")
	dest := filepath.Join(t.TempDir(), "game.love")
	t.Setenv(config.EnvOutput, "")

	cfgPath := filepath.Join(t.TempDir(), "lovepack.yaml")
	cfgData := "output: " + dest + "\nexclude:\n  dirs: []\n  globs: [\"*.txt\"]\n"
	if err := os.WriteFile(cfgPath, []byte(cfgData), 0o644); err != nil {
		t.Fatal(err)
	}

	if out, err := execute(t, "build", root, "--config", cfgPath); err != nil {
		t.Fatalf("build failed: %v\n%s", err, out)
	}

	r, err := zip.OpenReader(dest)
	if err != nil {
		t.Fatalf("Failed to open archive: %v", err)
	}
	defer r.Close()

	found := make(map[string]bool)
	for _, f := range r.File {
		found[f.Name] = true
	}
	if !found["main.lua"] || !found["dist/keep.lua"] || found["notes.txt"] {
		t.Errorf("unexpected archive members: %v", found)
	}
}
