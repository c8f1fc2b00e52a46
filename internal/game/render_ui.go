package game

import (
	"github.com/go-gl/gl/v4.1-core/gl"

	"roaddodge/internal/assets"
)

// InitFont rasterises the font atlas and uploads it.
func (r *Renderer) InitFont() {
	r.fontTex = r.UploadTexture(assets.FontAtlas(), gl.NEAREST)
}

// DrawChar queues a single character as a textured quad in screen pixel space.
func (r *Renderer) DrawChar(ch rune, sx, sy, scale float32, col RGB) {
	cell, ok := assets.GlyphCell(ch)
	if !ok {
		return
	}

	u0 := float32(cell.Min.X) / float32(assets.FontAtlasW)
	v0 := float32(cell.Min.Y) / float32(assets.FontAtlasH)
	u1 := float32(cell.Max.X) / float32(assets.FontAtlasW)
	v1 := float32(cell.Max.Y) / float32(assets.FontAtlasH)

	w := float32(assets.FontCellW) * scale
	h := float32(assets.FontCellH) * scale

	r.DrawQuad(r.fontTex.ID, sx, sy, w, h, u0, v0, u1, v1, col)
}

// DrawString queues a string at screen pixel position (sx, sy) with given scale.
func (r *Renderer) DrawString(text string, sx, sy int, scale float32, col RGB) {
	advance := float32(assets.FontCellW) * scale
	lineAdvance := float32(assets.FontCellH) * scale
	baseX := float32(sx)
	x := float32(sx)
	y := float32(sy)
	for _, ch := range text {
		if ch == '\n' {
			x = baseX
			y += lineAdvance
			continue
		}
		r.DrawChar(ch, x, y, scale, col)
		x += advance
	}
}

// TextWidth returns the width in screen pixels of a string at given scale.
func TextWidth(text string, scale float32) int {
	lineLen := 0
	maxLineLen := 0
	for _, ch := range text {
		if ch == '\n' {
			if lineLen > maxLineLen {
				maxLineLen = lineLen
			}
			lineLen = 0
			continue
		}
		lineLen++
	}
	if lineLen > maxLineLen {
		maxLineLen = lineLen
	}
	return int(float32(maxLineLen*assets.FontCellW) * scale)
}

// TextHeight returns the height in screen pixels of one line at given scale.
func TextHeight(scale float32) int {
	return int(float32(assets.FontCellH) * scale)
}
