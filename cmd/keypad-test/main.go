// Command keypad-test shows the keypad events the terminal host produces,
// for checking key bindings and repeat classification. Back exits.
package main

import (
	"context"
	"fmt"
	"os"

	"github.com/lixenwraith/karl-eido/constants"
	"github.com/lixenwraith/karl-eido/core"
	"github.com/lixenwraith/karl-eido/engine"
	"github.com/lixenwraith/karl-eido/input"
	"github.com/lixenwraith/karl-eido/render"
	"github.com/lixenwraith/karl-eido/terminal"
)

const (
	maxLog     = 8
	lineHeight = 7
)

// eventLog is an engine.App that records the last keypad events
type eventLog struct {
	entries []string
	count   int
	running bool
}

func newEventLog() *eventLog {
	return &eventLog{entries: make([]string, 0, maxLog), running: true}
}

func (l *eventLog) Name() string  { return "keypad-test" }
func (l *eventLog) Running() bool { return l.running }

func (l *eventLog) HandleInput(ev input.Event) engine.Outcome {
	l.count++
	if len(l.entries) >= maxLog {
		copy(l.entries, l.entries[1:])
		l.entries = l.entries[:maxLog-1]
	}
	l.entries = append(l.entries, fmt.Sprintf("%3d %v", l.count, ev))

	if ev.Key == input.KeyBack && ev.Type == input.TypePress {
		l.running = false
		return engine.OutcomeExit
	}
	return engine.OutcomeChanged
}

func (l *eventLog) Draw(c render.Canvas) {
	c.Clear()
	c.SetColor(render.ColorBlack)
	c.DrawBox(0, 0, constants.ScreenWidth, constants.LatticeBannerHeight)

	c.SetColor(render.ColorWhite)
	c.DrawStr(constants.LatticeBannerTextX, constants.LatticeBannerTextY, "KEYPAD TEST  back: quit")

	c.SetColor(render.ColorBlack)
	for i, e := range l.entries {
		c.DrawStr(2, constants.LatticeBannerHeight+lineHeight*(i+1), e)
	}
}

func main() {
	defer func() {
		if r := recover(); r != nil {
			core.HandleCrash(r)
		}
	}()

	if f := setupLogging(debugMode == "true"); f != nil {
		defer f.Close()
	}

	host, err := terminal.NewScreenHost()
	if err != nil {
		fmt.Fprintf(os.Stderr, "init failed: %v\n", err)
		os.Exit(1)
	}

	sess, err := engine.NewSession(engine.DefaultConfig(), newEventLog(), host)
	if err != nil {
		fmt.Fprintf(os.Stderr, "init failed: %v\n", err)
		os.Exit(1)
	}

	err = sess.Run(context.Background())
	sess.Close()
	if err != nil {
		fmt.Fprintf(os.Stderr, "keypad-test: %v\n", err)
		os.Exit(1)
	}
}
