package assets

import (
	"errors"
	"image"
	"image/color"
	"image/png"
	"io/fs"
	"os"
	"path/filepath"
	"testing"

	"roaddodge/internal/dodge"
)

func writePNG(t *testing.T, path string, w, h int, c color.NRGBA) {
	t.Helper()
	img := image.NewNRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.SetNRGBA(x, y, c)
		}
	}
	f, err := os.Create(path)
	if err != nil {
		t.Fatalf("create %s: %v", path, err)
	}
	defer f.Close()
	if err := png.Encode(f, img); err != nil {
		t.Fatalf("encode %s: %v", path, err)
	}
}

func writeAll(t *testing.T, dir string) {
	t.Helper()
	for _, name := range []string{BackgroundFile, PlayerFile, Enemy1File, Enemy2File, HeartFile} {
		writePNG(t, filepath.Join(dir, name), 16, 16, color.NRGBA{R: 200, G: 10, B: 10, A: 255})
	}
}

func TestLoadScalesImages(t *testing.T) {
	dir := t.TempDir()
	writeAll(t, dir)

	set, err := Load(dir)
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	tests := []struct {
		name string
		img  *image.NRGBA
		w, h int
	}{
		{"Background", set.Background, dodge.ScreenWidth, dodge.ScreenHeight},
		{"Player", set.Player, dodge.CarWidth, dodge.CarHeight},
		{"Enemy 1", set.Enemies[0], dodge.EnemyWidth, dodge.EnemyHeight},
		{"Enemy 2", set.Enemies[1], dodge.EnemyWidth, dodge.EnemyHeight},
		{"Heart", set.Heart, dodge.HeartSize, dodge.HeartSize},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.img == nil {
				t.Fatal("Expected image to be loaded")
			}
			b := tt.img.Bounds()
			if b.Dx() != tt.w || b.Dy() != tt.h {
				t.Errorf("Expected %dx%d, got %dx%d", tt.w, tt.h, b.Dx(), b.Dy())
			}
		})
	}
}

func TestLoadMissingFile(t *testing.T) {
	dir := t.TempDir()
	writeAll(t, dir)
	if err := os.Remove(filepath.Join(dir, HeartFile)); err != nil {
		t.Fatal(err)
	}

	_, err := Load(dir)
	if !errors.Is(err, fs.ErrNotExist) {
		t.Errorf("Expected not-exist error, got %v", err)
	}
}

func TestLoadImageRejectsGarbage(t *testing.T) {
	path := filepath.Join(t.TempDir(), "broken.png")
	if err := os.WriteFile(path, []byte("not a png"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadImage(path, 10, 10); err == nil {
		t.Error("Expected decode error")
	}
}

func TestScaleKeepsSolidColor(t *testing.T) {
	src := image.NewNRGBA(image.Rect(0, 0, 4, 4))
	for i := 0; i < len(src.Pix); i += 4 {
		src.Pix[i], src.Pix[i+1], src.Pix[i+2], src.Pix[i+3] = 10, 200, 30, 255
	}
	dst := Scale(src, 12, 8)
	got := dst.NRGBAAt(6, 4)
	near := func(a, b uint8) bool { return a+1 >= b && b+1 >= a }
	if !near(got.R, 10) || !near(got.G, 200) || !near(got.B, 30) || got.A != 255 {
		t.Errorf("Expected solid color preserved, got %+v", got)
	}
}
