package main

import (
	"fmt"
	"os"

	"github.com/sirupsen/logrus"
)

var logger = &logrus.Logger{
	Out: os.Stderr,
	Formatter: &logrus.TextFormatter{
		DisableTimestamp: true,
	},
	Hooks: make(logrus.LevelHooks),
	Level: logrus.WarnLevel,
}

func setupLogging() {
	switch {
	case debugFlag:
		logger.SetLevel(logrus.DebugLevel)
	case verboseFlag:
		logger.SetLevel(logrus.InfoLevel)
	default:
		logger.SetLevel(logrus.WarnLevel)
	}
}

func logVerbose(format string, v ...interface{}) {
	if verboseFlag || debugFlag {
		logger.Info(fmt.Sprintf(format, v...))
	}
}

func logDebug(format string, v ...interface{}) {
	if debugFlag {
		logger.Debug(fmt.Sprintf(format, v...))
	}
}
