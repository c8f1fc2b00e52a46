package dodge

import "fmt"

// HUD text positions. Hearts use HeartX/HeartY/HeartSpacing.
const (
	TimeLabelX   = ScreenWidth - 160
	TimeLabelY   = 10
	RecordLabelX = ScreenWidth/2 - 80
	RecordLabelY = 10

	GameOverText = "GAME OVER"
	RetryText    = "Press SPACE to retry"
)

func (s *Snapshot) TimeLabel() string {
	return fmt.Sprintf("Time: %ds", s.Elapsed)
}

func (s *Snapshot) RecordLabel() string {
	return fmt.Sprintf("Record: %ds", s.Record)
}

// HeartPos returns the top-left corner of heart i.
func HeartPos(i int) (int, int) {
	return HeartX + i*HeartSpacing, HeartY
}
