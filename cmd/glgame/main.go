package main

import (
	"log"
	"log/slog"
	"os"
	"runtime"

	"github.com/fosdem/glgame/lib/config"
	"github.com/fosdem/glgame/lib/game"
	glog "github.com/fosdem/glgame/lib/log"
	"github.com/fosdem/glgame/lib/rendering"
	"github.com/fosdem/glgame/lib/utils"
)

func init() {
	// The OpenGL stuff must be in one thread
	runtime.LockOSThread()
}

func main() {
	cfg, err := config.Default()
	if err != nil {
		log.Fatal(err)
	}
	level, err := cfg.Level()
	if err != nil {
		log.Fatal(err)
	}
	slog.SetDefault(slog.New(glog.NewHandler(os.Stdout, &slog.HandlerOptions{Level: level})))

	session, err := game.Initialize(cfg, rendering.GLBackend{})
	if err != nil {
		log.Fatalf("could not start game: %s", err)
	}
	defer session.Teardown()

	session.Run(utils.NewFrameClock())
}
