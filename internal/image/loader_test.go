package image

import (
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// writePNG writes a solid w x h PNG to dir/name and returns its path.
func writePNG(t *testing.T, dir, name string, w, h int, c color.Color) string {
	t.Helper()

	img := image.NewNRGBA(image.Rect(0, 0, w, h))
	for y := range h {
		for x := range w {
			img.Set(x, y, c)
		}
	}

	path := filepath.Join(dir, name)
	f, err := os.Create(path)
	if err != nil {
		t.Fatalf("Failed to create %s: %v", path, err)
	}
	defer f.Close()

	if err := png.Encode(f, img); err != nil {
		t.Fatalf("Failed to encode %s: %v", path, err)
	}
	return path
}

func TestFileLoaderLoad(t *testing.T) {
	dir := t.TempDir()
	path := writePNG(t, dir, "red.png", 12, 8, color.NRGBA{R: 255, A: 255})

	img, err := NewFileLoader().Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if img.Bounds().Dx() != 12 || img.Bounds().Dy() != 8 {
		t.Errorf("Load() bounds = %v, want 12x8", img.Bounds())
	}
}

func TestFileLoaderLoadErrors(t *testing.T) {
	dir := t.TempDir()
	garbage := filepath.Join(dir, "garbage.png")
	if err := os.WriteFile(garbage, []byte("not an image"), 0o600); err != nil {
		t.Fatalf("Failed to write file: %v", err)
	}

	tests := []struct {
		name    string
		path    string
		wantErr string
	}{
		{name: "empty path", path: "", wantErr: "cannot be empty"},
		{name: "missing file", path: filepath.Join(dir, "missing.png"), wantErr: "not found"},
		{name: "directory", path: dir, wantErr: "is a directory"},
		{name: "undecodable", path: garbage, wantErr: "failed to decode"},
	}

	loader := NewFileLoader()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := loader.Load(tt.path)
			if err == nil || !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("Load() error = %v, want containing %q", err, tt.wantErr)
			}
		})
	}
}

func TestValidateImagePath(t *testing.T) {
	dir := t.TempDir()
	valid := writePNG(t, dir, "ok.png", 2, 2, color.White)
	bad := filepath.Join(dir, "bad.png")
	if err := os.WriteFile(bad, []byte("nope"), 0o600); err != nil {
		t.Fatalf("Failed to write file: %v", err)
	}

	if err := ValidateImagePath(valid); err != nil {
		t.Errorf("ValidateImagePath(valid) error = %v", err)
	}
	if err := ValidateImagePath(dir); err != nil {
		t.Errorf("ValidateImagePath(dir) error = %v", err)
	}
	if err := ValidateImagePath(bad); err == nil {
		t.Error("ValidateImagePath(bad) expected error")
	}
	if err := ValidateImagePath(""); err == nil {
		t.Error("ValidateImagePath(\"\") expected error")
	}
}

func TestResolveImagePath(t *testing.T) {
	dir := t.TempDir()
	a := writePNG(t, dir, "a.png", 2, 2, color.Black)
	b := writePNG(t, dir, "b.jpg.png", 2, 2, color.White)
	if err := os.WriteFile(filepath.Join(dir, "notes.txt"), []byte("x"), 0o600); err != nil {
		t.Fatalf("Failed to write file: %v", err)
	}

	got, err := ResolveImagePath(a)
	if err != nil || got != a {
		t.Errorf("ResolveImagePath(file) = %q, %v; want %q", got, err, a)
	}

	got, err = ResolveImagePath(dir)
	if err != nil {
		t.Fatalf("ResolveImagePath(dir) error = %v", err)
	}
	if got != a && got != b {
		t.Errorf("ResolveImagePath(dir) = %q, want one of the images", got)
	}

	empty := t.TempDir()
	if _, err := ResolveImagePath(empty); err == nil {
		t.Error("ResolveImagePath(empty dir) expected error")
	}
}
