package term

import (
	"image"
	"image/color"

	"github.com/gdamore/tcell/v2"
	xdraw "golang.org/x/image/draw"

	"roaddodge/internal/assets"
	"roaddodge/internal/dodge"
)

// Upper half block: foreground paints the top pixel, background the bottom one.
const halfBlock = '▀'

// Smallest terminal the scene is drawn in.
const (
	MinCols = 40
	MinRows = 15
)

var (
	styleTime   = tcell.StyleDefault.Foreground(tcell.ColorWhite).Bold(true)
	styleRecord = tcell.StyleDefault.Foreground(tcell.NewRGBColor(255, 215, 0)).Bold(true)
	styleOver   = tcell.StyleDefault.Foreground(tcell.NewRGBColor(255, 0, 0)).Bold(true)
	styleRetry  = tcell.StyleDefault.Foreground(tcell.ColorWhite)
	styleHeart  = tcell.StyleDefault.Foreground(tcell.NewRGBColor(220, 20, 60))
)

// Renderer composites the scene in screen pixels and samples it into
// half-block terminal cells.
type Renderer struct {
	set    *assets.Set
	canvas *image.RGBA
	cells  *image.RGBA
}

func NewRenderer(set *assets.Set) *Renderer {
	return &Renderer{
		set:    set,
		canvas: image.NewRGBA(image.Rect(0, 0, dodge.ScreenWidth, dodge.ScreenHeight)),
	}
}

// compose draws the road, enemies and player onto the full-size canvas.
func (r *Renderer) compose(snap *dodge.Snapshot) {
	xdraw.Draw(r.canvas, r.canvas.Bounds(), r.set.Background, image.Point{}, xdraw.Src)
	for _, e := range snap.Enemies {
		r.blit(r.set.Enemies[e.Sprite%dodge.EnemySprites], e.X, e.Y)
	}
	r.blit(r.set.Player, snap.Player.X, snap.Player.Y)
}

func (r *Renderer) blit(img image.Image, x, y float64) {
	at := image.Pt(int(x), int(y))
	dst := img.Bounds().Sub(img.Bounds().Min).Add(at)
	xdraw.Draw(r.canvas, dst, img, img.Bounds().Min, xdraw.Over)
}

// sample scales the canvas down to cols x rows*2 pixels.
func (r *Renderer) sample(cols, rows int) *image.RGBA {
	want := image.Rect(0, 0, cols, rows*2)
	if r.cells == nil || r.cells.Bounds() != want {
		r.cells = image.NewRGBA(want)
	}
	xdraw.ApproxBiLinear.Scale(r.cells, want, r.canvas, r.canvas.Bounds(), xdraw.Src, nil)
	return r.cells
}

// Draw renders snap onto screen and shows it.
func (r *Renderer) Draw(screen tcell.Screen, snap *dodge.Snapshot) {
	screen.Clear()
	cols, rows := screen.Size()
	if cols < MinCols || rows < MinRows {
		drawText(screen, 0, 0, "Terminal too small", styleRetry)
		screen.Show()
		return
	}

	r.compose(snap)
	px := r.sample(cols, rows)
	for y := 0; y < rows; y++ {
		for x := 0; x < cols; x++ {
			top := toColor(px.RGBAAt(x, y*2))
			bottom := toColor(px.RGBAAt(x, y*2+1))
			screen.SetContent(x, y, halfBlock, nil, tcell.StyleDefault.Foreground(top).Background(bottom))
		}
	}

	r.drawHUD(screen, snap, cols, rows)
	screen.Show()
}

func (r *Renderer) drawHUD(screen tcell.Screen, snap *dodge.Snapshot, cols, rows int) {
	cellX := func(px int) int { return px * cols / dodge.ScreenWidth }
	cellY := func(py int) int { return py * rows / dodge.ScreenHeight }

	next := 0
	for i := 0; i < snap.Lives; i++ {
		hx, hy := dodge.HeartPos(i)
		x := cellX(hx)
		if x < next {
			x = next
		}
		screen.SetContent(x, cellY(hy), '♥', nil, styleHeart)
		next = x + 2
	}

	drawText(screen, cellX(dodge.TimeLabelX), cellY(dodge.TimeLabelY), snap.TimeLabel(), styleTime)
	drawText(screen, cellX(dodge.RecordLabelX), cellY(dodge.RecordLabelY), snap.RecordLabel(), styleRecord)

	if snap.Over {
		mid := rows / 2
		drawText(screen, (cols-len(dodge.GameOverText))/2, mid-1, dodge.GameOverText, styleOver)
		drawText(screen, (cols-len(dodge.RetryText))/2, mid+1, dodge.RetryText, styleRetry)
	}
}

func drawText(screen tcell.Screen, x, y int, s string, style tcell.Style) {
	for i, ch := range []rune(s) {
		screen.SetContent(x+i, y, ch, nil, style)
	}
}

func toColor(c color.RGBA) tcell.Color {
	return tcell.NewRGBColor(int32(c.R), int32(c.G), int32(c.B))
}
