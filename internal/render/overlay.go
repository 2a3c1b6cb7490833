package render

import (
	"fmt"

	rl "github.com/gen2brain/raylib-go/raylib"

	"tiltmaze/internal/sim"
)

// Action is what the player clicked in the overlay this frame.
type Action int

const (
	ActionNone Action = iota
	ActionEasy
	ActionMedium
	ActionHard
	ActionNewLevel
	ActionMenu
)

const (
	buttonW     = 220
	buttonH     = 52
	buttonGap   = 16
	smallW      = 130
	smallH      = 36
	titleSize   = 48
	buttonText  = 24
	bannerText  = 56
	overlayPad  = 16
	smallText   = 18
	bannerAlpha = 180
)

// Overlay draws the 2D layer over the scene and reports at most one clicked
// action. Immediate-mode: buttons are hit-tested against this frame's mouse.
func (v *View) Overlay(s *sim.Session) Action {
	switch {
	case s.Phase() == sim.PhaseMenu:
		return v.drawMenu(s)
	case s.Won():
		return v.drawWinBanner()
	default:
		return v.drawRunningControls(s)
	}
}

func (v *View) drawMenu(s *sim.Session) Action {
	w := int32(rl.GetScreenWidth())
	h := int32(rl.GetScreenHeight())

	title := "TILT MAZE"
	tw := rl.MeasureText(title, titleSize)
	rl.DrawText(title, (w-tw)/2, h/5, titleSize, rl.RayWhite)

	sub := "drag to tilt the cube - roll the ball to the glowing goal"
	sw := rl.MeasureText(sub, smallText)
	rl.DrawText(sub, (w-sw)/2, h/5+titleSize+8, smallText, rl.Gray)

	labels := []struct {
		text   string
		action Action
	}{
		{"Easy", ActionEasy},
		{"Medium", ActionMedium},
		{"Hard", ActionHard},
	}

	y := float32(h)/2 - float32(len(labels)*(buttonH+buttonGap))/2
	clicked := ActionNone
	for _, l := range labels {
		rec := rl.NewRectangle(float32(w)/2-buttonW/2, y, buttonW, buttonH)
		if button(rec, l.text, buttonText) {
			clicked = l.action
		}
		y += buttonH + buttonGap
	}

	if d := s.Difficulty(); d != "" {
		last := fmt.Sprintf("last played: %s", d)
		rl.DrawText(last, overlayPad, h-overlayPad-smallText, smallText, rl.Gray)
	}
	return clicked
}

func (v *View) drawWinBanner() Action {
	w := int32(rl.GetScreenWidth())
	h := int32(rl.GetScreenHeight())

	alpha := uint8(float32(bannerAlpha) * v.bannerVal)
	rl.DrawRectangle(0, h/3, w, h/4, rl.NewColor(20, 20, 40, alpha))

	msg := "YOU WIN!"
	mw := rl.MeasureText(msg, bannerText)
	c := rl.Gold
	c.A = uint8(255 * v.bannerVal)
	rl.DrawText(msg, (w-mw)/2, h/3+overlayPad, bannerText, c)

	clicked := ActionNone
	again := rl.NewRectangle(float32(w)/2-buttonW-buttonGap/2, float32(h/3)+float32(bannerText)+overlayPad*2, buttonW, buttonH)
	if button(again, "Play again", buttonText) {
		clicked = ActionNewLevel
	}
	menu := rl.NewRectangle(float32(w)/2+buttonGap/2, float32(h/3)+float32(bannerText)+overlayPad*2, buttonW, buttonH)
	if button(menu, "Menu", buttonText) {
		clicked = ActionMenu
	}
	return clicked
}

func (v *View) drawRunningControls(s *sim.Session) Action {
	clicked := ActionNone
	if button(rl.NewRectangle(overlayPad, overlayPad, smallW, smallH), "New maze", smallText) {
		clicked = ActionNewLevel
	}
	if button(rl.NewRectangle(overlayPad, overlayPad+smallH+8, smallW, smallH), "Menu", smallText) {
		clicked = ActionMenu
	}

	label := fmt.Sprintf("difficulty: %s", s.Difficulty())
	rl.DrawText(label, overlayPad, int32(rl.GetScreenHeight())-overlayPad-smallText, smallText, rl.Gray)
	return clicked
}

// button draws one immediate-mode button and reports a click on it.
func button(rec rl.Rectangle, label string, fontSize int32) bool {
	mouse := rl.GetMousePosition()
	hover := rl.CheckCollisionPointRec(mouse, rec)

	bg := rl.NewColor(40, 45, 70, 230)
	if hover {
		bg = rl.NewColor(70, 80, 120, 230)
	}
	rl.DrawRectangleRec(rec, bg)
	rl.DrawRectangleLinesEx(rec, 2, rl.SkyBlue)

	tw := rl.MeasureText(label, fontSize)
	tx := int32(rec.X + rec.Width/2 - float32(tw)/2)
	ty := int32(rec.Y + rec.Height/2 - float32(fontSize)/2)
	rl.DrawText(label, tx, ty, fontSize, rl.RayWhite)

	return hover && rl.IsMouseButtonPressed(rl.MouseButtonLeft)
}
