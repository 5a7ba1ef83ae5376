package main

import (
	"context"
	"errors"
	"flag"
	"log"
	"os"

	"github.com/hajimehoshi/ebiten/v2"
	_ "github.com/joho/godotenv/autoload"
	"github.com/ncruces/zenity"

	"github.com/iburimskiy/particle-field/internal/config"
	"github.com/iburimskiy/particle-field/internal/game"
)

func main() {
	log.SetPrefix("particle-field ")

	cfg, err := config.Load(os.Args[1:])
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return
		}
		fatal(err)
	}

	ebiten.SetWindowSize(cfg.Width, cfg.Height)
	ebiten.SetWindowTitle("Particle Field - T: theme, S: stats, Space: pause, Esc/Q: quit")
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)

	g := game.New(context.Background(), cfg)
	err = ebiten.RunGame(g)
	g.Close()
	if err != nil && !errors.Is(err, ebiten.Termination) {
		fatal(err)
	}
}

// fatal reports err on stderr and, when a desktop is available, in a dialog.
func fatal(err error) {
	log.Printf("fatal: %v", err)
	if dlgErr := zenity.Error(err.Error(), zenity.Title("Particle Field"), zenity.ErrorIcon); dlgErr != nil {
		log.Printf("error dialog unavailable: %v", dlgErr)
	}
	os.Exit(1)
}
