package assets

import (
	"image"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
)

// Font atlas layout: 32 cols x 4 rows, ASCII 0-127, one 7x13 cell per glyph.
const (
	FontCellW  = 7
	FontCellH  = 13
	FontCols   = 32
	FontRows   = 4
	FontAtlasW = FontCellW * FontCols // 224
	FontAtlasH = FontCellH * FontRows // 52
)

// FontAtlas rasterises the printable ASCII range of basicfont into a white
// glyph atlas. Cell (c%FontCols, c/FontCols) holds character c.
func FontAtlas() *image.NRGBA {
	face := basicfont.Face7x13
	atlas := image.NewNRGBA(image.Rect(0, 0, FontAtlasW, FontAtlasH))
	d := font.Drawer{
		Dst:  atlas,
		Src:  image.White,
		Face: face,
	}
	for c := 32; c < 127; c++ {
		col := c % FontCols
		row := c / FontCols
		d.Dot = fixed.P(col*FontCellW, row*FontCellH+face.Ascent)
		d.DrawString(string(rune(c)))
	}
	return atlas
}

// GlyphCell returns the atlas rectangle for ch, or false if ch is not printable.
func GlyphCell(ch rune) (image.Rectangle, bool) {
	if ch < 32 || ch > 126 {
		return image.Rectangle{}, false
	}
	c := int(ch)
	x := (c % FontCols) * FontCellW
	y := (c / FontCols) * FontCellH
	return image.Rect(x, y, x+FontCellW, y+FontCellH), true
}
