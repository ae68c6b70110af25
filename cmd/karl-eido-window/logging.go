package main

import (
	"os"

	"github.com/lixenwraith/karl-eido/core"
)

const (
	logDir      = "logs"
	logFileName = "karl-eido-window.log"
	maxLogSize  = 10 * 1024 * 1024
)

// debugMode is set at link time: -ldflags "-X main.debugMode=true"
var debugMode = "false"

func setupLogging(debug bool) *os.File {
	return core.SetupLogging(logDir, logFileName, maxLogSize, debug)
}
