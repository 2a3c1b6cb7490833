package debug

import (
	"fmt"
	"runtime"

	rl "github.com/gen2brain/raylib-go/raylib"
)

const (
	fontSize   = 20
	padding    = 12
	lineHeight = fontSize + 4
	// updateInterval: only refresh overlay text every N frames to reduce allocations.
	updateInterval = 30
)

// Overlay holds runtime debugging readouts (FPS, heap, ball speed). All are
// off by default.
type Overlay struct {
	ShowFPS      bool
	ShowMemAlloc bool
	ShowSpeed    bool

	frameCount    uint32
	lastFpsText   string
	lastMemText   string
	lastSpeedText string
	lastMemStats  runtime.MemStats
	speed         float32
}

// New returns an Overlay with everything hidden.
func New() *Overlay {
	return &Overlay{}
}

// SetSpeed records the ball's current speed for the next text refresh.
func (d *Overlay) SetSpeed(speed float32) {
	d.speed = speed
}

// Draw renders any enabled readouts at the top-right. Call after the scene
// and overlay in the draw loop. Text is recomputed only every updateInterval
// frames.
func (d *Overlay) Draw() {
	d.frameCount++
	update := (d.frameCount % updateInterval) == 0
	if d.ShowFPS && d.lastFpsText == "" {
		update = true
	}
	if d.ShowMemAlloc && d.lastMemText == "" {
		update = true
	}
	if d.ShowSpeed && d.lastSpeedText == "" {
		update = true
	}

	screenW := int32(rl.GetScreenWidth())
	y := int32(padding)

	if d.ShowFPS {
		if update {
			d.lastFpsText = fmt.Sprintf("FPS: %d", rl.GetFPS())
		}
		drawRight(d.lastFpsText, screenW, y, rl.Green)
		y += lineHeight
	}

	if d.ShowMemAlloc {
		if update {
			runtime.ReadMemStats(&d.lastMemStats)
			mb := float64(d.lastMemStats.Alloc) / (1024 * 1024)
			d.lastMemText = fmt.Sprintf("Mem: %.2f MiB", mb)
		}
		drawRight(d.lastMemText, screenW, y, rl.Green)
		y += lineHeight
	}

	if d.ShowSpeed {
		if update {
			d.lastSpeedText = fmt.Sprintf("Ball: %.2f u/s", d.speed)
		}
		drawRight(d.lastSpeedText, screenW, y, rl.Green)
	}
}

func drawRight(text string, screenW, y int32, c rl.Color) {
	if text == "" {
		return
	}
	w := rl.MeasureText(text, fontSize)
	rl.DrawText(text, screenW-w-padding, y, fontSize, c)
}
