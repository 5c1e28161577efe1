package cli

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"image"
	"image/png"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/google/go-cmp/cmp"
	"github.com/spf13/pflag"

	"github.com/ironsheep/image-grid/internal/collage"
	"github.com/ironsheep/image-grid/internal/config"
	"github.com/ironsheep/image-grid/internal/layout"
)

func writePNG(t *testing.T, dir, name string, width, height int) string {
	t.Helper()
	img := image.NewNRGBA(image.Rect(0, 0, width, height))
	for i := range img.Pix {
		img.Pix[i] = 0xff
	}
	path := filepath.Join(dir, name)
	f, err := os.Create(path)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()
	if err := png.Encode(f, img); err != nil {
		t.Fatal(err)
	}
	return path
}

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
}

// runRoot executes the root command with args and returns stdout and the log.
func runRoot(t *testing.T, stdin string, args ...string) (string, string, error) {
	t.Helper()
	var stdout, logs bytes.Buffer
	logger := newLogger(&logs, log.InfoLevel)

	root := newRootCmd(logger)
	root.SetArgs(args)
	root.SetOut(&stdout)
	root.SetErr(&logs)
	root.SetIn(strings.NewReader(stdin))

	err := root.ExecuteContext(withLogger(context.Background(), logger))
	return stdout.String(), logs.String(), err
}

func TestSetVersion(t *testing.T) {
	defer SetVersion(version, commit, date)

	SetVersion("1.0.0", "abc123", "2024-01-01")

	if version != "1.0.0" {
		t.Errorf("version = %q, want %q", version, "1.0.0")
	}
	if commit != "abc123" {
		t.Errorf("commit = %q, want %q", commit, "abc123")
	}
	if date != "2024-01-01" {
		t.Errorf("date = %q, want %q", date, "2024-01-01")
	}
}

func TestComposeFlags_Options(t *testing.T) {
	dir := t.TempDir()
	cfg := filepath.Join(dir, "grid.toml")
	writeFile(t, cfg, `
paths = ["cfg-a.png", "cfg-b.png"]
rows = 1
center = true
output = "from-config.jpg"
quality = 80
`)

	tests := []struct {
		name string
		args []string
		want func(*config.Options)
	}{
		{
			name: "defaults without config",
			args: []string{"a.png"},
			want: func(o *config.Options) {
				*o = config.Default()
				o.Paths = []string{"a.png"}
			},
		},
		{
			name: "config values apply",
			args: []string{"--config", cfg},
			want: func(o *config.Options) {
				*o = config.Default()
				o.Paths = []string{"cfg-a.png", "cfg-b.png"}
				o.Rows = 1
				o.Center = true
				o.Output = "from-config.jpg"
				o.Quality = 80
			},
		},
		{
			name: "explicit flags override config",
			args: []string{"--config", cfg, "-r", "0", "--center=false", "-o", "cli.png", "x.png"},
			want: func(o *config.Options) {
				*o = config.Default()
				o.Paths = []string{"x.png"}
				o.Output = "cli.png"
				o.Quality = 80
			},
		},
		{
			name: "flag defaults do not override config",
			args: []string{"--config", cfg, "--columns", "4"},
			want: func(o *config.Options) {
				*o = config.Default()
				o.Paths = []string{"cfg-a.png", "cfg-b.png"}
				o.Rows = 1
				o.Columns = 4
				o.Center = true
				o.Output = "from-config.jpg"
				o.Quality = 80
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fs := pflag.NewFlagSet("test", pflag.ContinueOnError)
			var flags composeFlags
			flags.register(fs)
			if err := fs.Parse(tt.args); err != nil {
				t.Fatalf("parse: %v", err)
			}

			got, err := flags.options(fs, fs.Args())
			if err != nil {
				t.Fatalf("options: %v", err)
			}
			var want config.Options
			tt.want(&want)
			if diff := cmp.Diff(want, got); diff != "" {
				t.Errorf("options mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestComposeFlags_OptionsInvalid(t *testing.T) {
	tests := []struct {
		name string
		args []string
	}{
		{"negative rows", []string{"-r", "-1", "a.png"}},
		{"quality out of range", []string{"--quality", "101", "a.png"}},
		{"missing config", []string{"--config", filepath.Join(t.TempDir(), "none.toml")}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fs := pflag.NewFlagSet("test", pflag.ContinueOnError)
			var flags composeFlags
			flags.register(fs)
			if err := fs.Parse(tt.args); err != nil {
				t.Fatalf("parse: %v", err)
			}
			if _, err := flags.options(fs, fs.Args()); err == nil {
				t.Error("expected an error")
			}
		})
	}
}

func TestRootCmd_Compose(t *testing.T) {
	dir := t.TempDir()
	a := writePNG(t, dir, "a.png", 4, 2)
	b := writePNG(t, dir, "b.png", 2, 4)
	out := filepath.Join(dir, "grid.png")

	_, logs, err := runRoot(t, "", "-o", out, a, b)
	if err != nil {
		t.Fatalf("compose failed: %v", err)
	}
	if !strings.Contains(logs, "Composed 2 images") {
		t.Errorf("expected a completion log, got %q", logs)
	}

	f, err := os.Open(out)
	if err != nil {
		t.Fatalf("output not written: %v", err)
	}
	defer f.Close()
	cfg, err := png.DecodeConfig(f)
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Width != 8 || cfg.Height != 4 {
		t.Errorf("output size: got %dx%d, want 8x4", cfg.Width, cfg.Height)
	}
}

func TestRootCmd_DryRun(t *testing.T) {
	dir := t.TempDir()
	writePNG(t, dir, "1.png", 10, 10)
	writePNG(t, dir, "2.png", 10, 10)
	writePNG(t, dir, "3.png", 10, 10)
	out := filepath.Join(dir, "grid.png")

	stdout, _, err := runRoot(t, "", "--dry-run", "-p", filepath.Join(dir, "*.png"), "-c", "3", "-o", out)
	if err != nil {
		t.Fatalf("dry run failed: %v", err)
	}

	var res collage.Result
	if err := json.Unmarshal([]byte(stdout), &res); err != nil {
		t.Fatalf("dry run output is not JSON: %v\n%s", err, stdout)
	}
	if res.Plan.Shape != (layout.Shape{Rows: 1, Columns: 3}) {
		t.Errorf("shape: got %+v, want 1x3", res.Plan.Shape)
	}
	if len(res.Inputs) != 3 {
		t.Errorf("inputs: got %d, want 3", len(res.Inputs))
	}
	if _, err := os.Stat(out); !os.IsNotExist(err) {
		t.Error("dry run must not write the output")
	}
}

func TestRootCmd_InsufficientGrid(t *testing.T) {
	dir := t.TempDir()
	var args []string
	for _, name := range []string{"a.png", "b.png", "c.png", "d.png", "e.png"} {
		args = append(args, writePNG(t, dir, name, 2, 2))
	}
	args = append(args, "-r", "2", "-c", "2", "-o", filepath.Join(dir, "grid.png"))

	_, _, err := runRoot(t, "", args...)
	var gridErr *layout.InsufficientGridError
	if !errors.As(err, &gridErr) {
		t.Fatalf("got %v, want *layout.InsufficientGridError", err)
	}
}

func TestRootCmd_Serve(t *testing.T) {
	stdout, _, err := runRoot(t, `{"jsonrpc":"2.0","id":7,"method":"ping"}`+"\n", "serve")
	if err != nil {
		t.Fatalf("serve failed: %v", err)
	}

	var resp struct {
		ID     int             `json:"id"`
		Result json.RawMessage `json:"result"`
	}
	if err := json.Unmarshal([]byte(stdout), &resp); err != nil {
		t.Fatalf("invalid response %q: %v", stdout, err)
	}
	if resp.ID != 7 {
		t.Errorf("id: got %d, want 7", resp.ID)
	}
}

func TestReportError(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want []string
	}{
		{
			name: "insufficient grid",
			err:  &layout.InsufficientGridError{Rows: 2, Columns: 2, Items: 5},
			want: []string{"grid too small", "cells=4", "images=5"},
		},
		{
			name: "empty input",
			err:  layout.ErrEmptyInput,
			want: []string{"no input images"},
		},
		{
			name: "other",
			err:  errors.New("boom"),
			want: []string{"boom"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			reportError(newLogger(&buf, log.InfoLevel), tt.err)
			for _, w := range tt.want {
				if !strings.Contains(buf.String(), w) {
					t.Errorf("log %q should contain %q", buf.String(), w)
				}
			}
		})
	}
}
