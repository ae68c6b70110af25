// Command karl-eido-window runs the mirror demo in a desktop window
package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/lixenwraith/karl-eido/audio"
	"github.com/lixenwraith/karl-eido/core"
	"github.com/lixenwraith/karl-eido/engine"
	"github.com/lixenwraith/karl-eido/window"
)

func main() {
	if f := setupLogging(debugMode == "true"); f != nil {
		defer f.Close()
	}

	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "karl-eido-window: %v\n", err)
		os.Exit(1)
	}
}

// run drives the session on a worker goroutine; ebiten owns the main goroutine
func run() error {
	host := window.NewHost()

	app := engine.NewMirrorApp(uint64(time.Now().UnixNano()))
	sess, err := engine.NewSession(engine.DefaultConfig(), app, host)
	if err != nil {
		return err
	}

	feedback := audio.NewFeedback()
	if err := feedback.Initialize(); err != nil {
		log.Printf("audio unavailable, continuing silent: %v", err)
	} else {
		defer feedback.Close()
		sess.SetNotifier(feedback)
	}

	done := make(chan error, 1)
	core.Go(func() {
		err := sess.Run(context.Background())
		sess.Close()
		done <- err
	})

	if err := host.Run(); err != nil {
		sess.Close()
		return err
	}
	return <-done
}
