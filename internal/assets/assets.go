// Package assets loads the game's PNG images and scales them to their on-screen size.
package assets

import (
	"fmt"
	"image"
	"image/png"
	"os"
	"path/filepath"

	xdraw "golang.org/x/image/draw"

	"roaddodge/internal/dodge"
)

// File names looked up in the asset directory.
const (
	BackgroundFile = "road.png"
	PlayerFile     = "car.png"
	Enemy1File     = "car1.png"
	Enemy2File     = "car2.png"
	HeartFile      = "heart.png"
)

// Set holds every image the game draws, already scaled.
type Set struct {
	Background *image.NRGBA
	Player     *image.NRGBA
	Enemies    [dodge.EnemySprites]*image.NRGBA
	Heart      *image.NRGBA
}

// Load reads all images from dir. Any missing or undecodable file is an error.
func Load(dir string) (*Set, error) {
	set := &Set{}
	specs := []struct {
		file string
		w, h int
		dst  **image.NRGBA
	}{
		{BackgroundFile, dodge.ScreenWidth, dodge.ScreenHeight, &set.Background},
		{PlayerFile, dodge.CarWidth, dodge.CarHeight, &set.Player},
		{Enemy1File, dodge.EnemyWidth, dodge.EnemyHeight, &set.Enemies[0]},
		{Enemy2File, dodge.EnemyWidth, dodge.EnemyHeight, &set.Enemies[1]},
		{HeartFile, dodge.HeartSize, dodge.HeartSize, &set.Heart},
	}

	for _, s := range specs {
		img, err := LoadImage(filepath.Join(dir, s.file), s.w, s.h)
		if err != nil {
			return nil, err
		}
		*s.dst = img
	}
	return set, nil
}

// LoadImage decodes a PNG and scales it to w x h.
func LoadImage(path string, w, h int) (*image.NRGBA, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()

	src, err := png.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("decode %s: %w", path, err)
	}
	return Scale(src, w, h), nil
}

// Scale resamples img into a new w x h NRGBA image.
func Scale(img image.Image, w, h int) *image.NRGBA {
	dst := image.NewNRGBA(image.Rect(0, 0, w, h))
	xdraw.CatmullRom.Scale(dst, dst.Bounds(), img, img.Bounds(), xdraw.Src, nil)
	return dst
}
