package game

import (
	"github.com/go-gl/gl/v4.1-core/gl"

	"roaddodge/internal/assets"
	"roaddodge/internal/dodge"
)

// Sprites are the uploaded asset textures.
type Sprites struct {
	Background Texture
	Player     Texture
	Enemies    [dodge.EnemySprites]Texture
	Heart      Texture
}

// UploadSprites uploads every image in set.
func (r *Renderer) UploadSprites(set *assets.Set) Sprites {
	var sp Sprites
	sp.Background = r.UploadTexture(set.Background, gl.LINEAR)
	sp.Player = r.UploadTexture(set.Player, gl.LINEAR)
	for i, img := range set.Enemies {
		sp.Enemies[i] = r.UploadTexture(img, gl.LINEAR)
	}
	sp.Heart = r.UploadTexture(set.Heart, gl.LINEAR)
	return sp
}

// DrawScene draws the road, enemies and player in back-to-front order.
func (r *Renderer) DrawScene(sp *Sprites, snap *dodge.Snapshot) {
	r.DrawTexture(sp.Background, 0, 0)
	for _, e := range snap.Enemies {
		r.DrawTexture(sp.Enemies[e.Sprite%dodge.EnemySprites], e.X, e.Y)
	}
	r.DrawTexture(sp.Player, snap.Player.X, snap.Player.Y)
}
