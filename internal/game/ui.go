package game

import "roaddodge/internal/dodge"

// RenderHUD draws hearts, timer, record and the game over banner.
func RenderHUD(r *Renderer, sp *Sprites, snap *dodge.Snapshot) {
	for i := 0; i < snap.Lives; i++ {
		x, y := dodge.HeartPos(i)
		r.DrawTexture(sp.Heart, float64(x), float64(y))
	}

	r.DrawString(snap.TimeLabel(), dodge.TimeLabelX, dodge.TimeLabelY, HUDScale, Palette.Time)
	r.DrawString(snap.RecordLabel(), dodge.RecordLabelX, dodge.RecordLabelY, HUDScale, Palette.Record)

	if snap.Over {
		w, h := WindowWidth, WindowHeight
		msg := dodge.GameOverText
		r.DrawString(msg, w/2-TextWidth(msg, GameOverScale)/2, h/2-TextHeight(GameOverScale)/2, GameOverScale, Palette.Over)

		retry := dodge.RetryText
		r.DrawString(retry, w/2-TextWidth(retry, RetryScale)/2, h/2+TextHeight(GameOverScale), RetryScale, Palette.Retry)
	}

	r.Flush()
}
