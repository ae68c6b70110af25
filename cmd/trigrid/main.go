// Command trigrid runs the lattice demo in the terminal
package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/lixenwraith/karl-eido/audio"
	"github.com/lixenwraith/karl-eido/core"
	"github.com/lixenwraith/karl-eido/engine"
	"github.com/lixenwraith/karl-eido/terminal"
)

func main() {
	defer func() {
		if r := recover(); r != nil {
			core.HandleCrash(r)
		}
	}()

	if f := setupLogging(debugMode == "true"); f != nil {
		defer f.Close()
	}

	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "trigrid: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	host, err := terminal.NewScreenHost()
	if err != nil {
		return err
	}

	sess, err := engine.NewSession(engine.DefaultConfig(), engine.NewLatticeApp(), host)
	if err != nil {
		return err
	}
	defer sess.Close()

	feedback := audio.NewFeedback()
	if err := feedback.Initialize(); err != nil {
		log.Printf("audio unavailable, continuing silent: %v", err)
	} else {
		defer feedback.Close()
		sess.SetNotifier(feedback)
	}

	return sess.Run(ctx)
}
