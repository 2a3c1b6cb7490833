package physics

import "tiltmaze/internal/layout"

// CheckWin tests whether the ball is on or just above the goal's floor and
// latches ball.Won when it is. The flag only ever transitions false → true;
// an explicit reset is the only way to clear it. The vertical band rejects a
// ball merely passing underneath or flying far above the goal volume.
func CheckWin(ball *Ball, goal layout.GoalState) bool {
	if ball.Won {
		return true
	}

	dx := ball.Pos.X - goal.Pos.X
	dz := ball.Pos.Z - goal.Pos.Z
	if dx*dx+dz*dz >= goal.CaptureRadius*goal.CaptureRadius {
		return false
	}

	minY := goal.Pos.Y
	maxY := goal.Pos.Y + layout.FloorThickness + 1.5*ball.Radius
	if ball.Pos.Y < minY || ball.Pos.Y > maxY {
		return false
	}

	ball.Won = true
	return true
}
