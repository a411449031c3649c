package main

import (
	"bufio"
	"os"

	"github.com/charmbracelet/log"
	"golang.org/x/term"

	"github.com/mkovar/novastrike/internal/audio"
	"github.com/mkovar/novastrike/internal/config"
	"github.com/mkovar/novastrike/internal/game"
	"github.com/mkovar/novastrike/internal/loop"
)

func main() {
	logger := log.NewWithOptions(os.Stderr, log.Options{Prefix: "novastrike"})

	opts := loop.Options{}

	if path := config.GetEnv("NOVASTRIKE_TUNING", ""); path != "" {
		tuning, err := game.LoadTuning(path)
		if err != nil {
			logger.Fatal("load tuning", "path", path, "err", err)
		}
		logger.Info("loaded tuning overrides", "path", path)
		opts.Tuning = &tuning
	}

	if config.GetEnvBool("NOVASTRIKE_AUDIO", true) {
		sink := audio.NewSink()
		if err := sink.Init(); err != nil {
			// No audio device is not fatal; play silent.
			logger.Warn("audio disabled", "err", err)
		} else {
			defer sink.Close()
			opts.Audio = sink
		}
	}

	fd := int(os.Stdin.Fd())
	oldState, err := term.MakeRaw(fd)
	if err != nil {
		logger.Fatal("enable raw mode", "err", err)
	}
	defer func() {
		_ = term.Restore(fd, oldState)
	}()

	reader := bufio.NewReader(os.Stdin)
	if err := loop.Run(reader, os.Stdout, opts); err != nil {
		_ = term.Restore(fd, oldState)
		logger.Fatal("game error", "err", err)
	}
}
