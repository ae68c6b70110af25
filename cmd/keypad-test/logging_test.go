package main

import (
	"bytes"
	"log"
	"testing"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/karl-eido/engine"
	"github.com/lixenwraith/karl-eido/terminal"
)

// Host and session startup log after the screen is live; with debug off
// none of it may reach the previous log writer
func TestStartupLogsStayOffScreen(t *testing.T) {
	if debugMode != "false" {
		t.Skip("binary built with debug logging")
	}
	out, flags := log.Writer(), log.Flags()
	t.Cleanup(func() {
		log.SetOutput(out)
		log.SetFlags(flags)
	})

	var terminalOut bytes.Buffer
	log.SetOutput(&terminalOut)

	if f := setupLogging(debugMode == "true"); f != nil {
		f.Close()
		t.Fatal("log file opened with debug off")
	}

	host := terminal.NewHost(tcell.NewSimulationScreen("UTF-8"))
	sess, err := engine.NewSession(engine.DefaultConfig(), newEventLog(), host)
	if err != nil {
		t.Fatalf("NewSession: %v", err)
	}
	sess.Close()

	if terminalOut.Len() != 0 {
		t.Errorf("startup wrote to the terminal: %q", terminalOut.String())
	}
}
