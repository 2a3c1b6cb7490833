package main

import (
	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/sirupsen/logrus"

	"tiltmaze/internal/debug"
	"tiltmaze/internal/gameconfig"
	"tiltmaze/internal/input"
	"tiltmaze/internal/presets"
	"tiltmaze/internal/render"
	"tiltmaze/internal/sim"
)

func main() {
	log := logrus.New()
	log.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})

	prefs, _ := gameconfig.Load()

	cfg, err := presets.Load()
	if err != nil {
		log.WithError(err).Fatal("load presets")
	}

	session, err := sim.New(cfg, log, 0)
	if err != nil {
		log.WithError(err).Fatal("create session")
	}

	ctrl := input.New()
	view := render.New()
	dbg := debug.New()
	dbg.ShowFPS = prefs.ShowFPS
	dbg.ShowSpeed = prefs.ShowBallSpeed

	rl.InitWindow(int32(prefs.WindowWidth), int32(prefs.WindowHeight), "tiltmaze")
	defer rl.CloseWindow()
	rl.SetTargetFPS(60)

	for !rl.WindowShouldClose() {
		dt := rl.GetFrameTime()

		ctrl.Update(dt)
		view.Update(dt, session, ctrl)

		orient := ctrl.Current()
		session.Tick(dt, orient)
		dbg.SetSpeed(session.Ball().Vel.Length())

		rl.BeginDrawing()
		rl.ClearBackground(rl.NewColor(12, 14, 24, 255))

		view.Draw(session, orient)
		action := view.Overlay(session)
		dbg.Draw()

		rl.EndDrawing()

		switch action {
		case render.ActionEasy:
			selectDifficulty(session, ctrl, presets.Easy, log)
		case render.ActionMedium:
			selectDifficulty(session, ctrl, presets.Medium, log)
		case render.ActionHard:
			selectDifficulty(session, ctrl, presets.Hard, log)
		case render.ActionNewLevel:
			if err := session.NewLevel(); err != nil {
				log.WithError(err).Error("new level")
			}
		case render.ActionMenu:
			pitch, roll := ctrl.Tilt()
			session.Restart()
			view.StartReset(pitch, roll)
		}
	}

	prefs.LastDifficulty = string(session.Difficulty())
	if err := gameconfig.Save(prefs); err != nil {
		log.WithError(err).Warn("save prefs")
	}
}

func selectDifficulty(s *sim.Session, ctrl *input.Controller, d presets.Difficulty, log *logrus.Logger) {
	if err := s.SelectDifficulty(d); err != nil {
		log.WithError(err).Error("select difficulty")
		return
	}
	ctrl.Reset()
}
