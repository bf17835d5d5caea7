package exercise

import (
	"log"
	"os"
)

// level is a log severity with the ANSI colour its lines get when
// colour output is on.
type level struct {
	tag   string
	color string
}

var (
	levelInfo  = level{"INFO", "\033[32m"}
	levelWarn  = level{"WARN", "\033[33m"}
	levelErro  = level{"ERRO", "\033[31m"}
	levelFatal = level{"FATAL", "\033[31m"}
)

var (
	colorPrint = false

	// replaced in tests
	exit = os.Exit
)

// SetColorPrint turns ANSI colours in log output on or off.
func SetColorPrint(enable bool) {
	colorPrint = enable
}

func logf(l level, format string, v ...interface{}) {
	line := l.tag + " " + format
	if colorPrint {
		line = l.color + line + "\033[0m"
	}
	log.Printf(line+"\n", v...)
}

func LogInfo(format string, v ...interface{}) {
	logf(levelInfo, format, v...)
}

func LogWarn(format string, v ...interface{}) {
	logf(levelWarn, format, v...)
}

func LogErro(format string, v ...interface{}) {
	logf(levelErro, format, v...)
}

// LogFatal logs at FATAL and exits with status 1.
func LogFatal(format string, v ...interface{}) {
	logf(levelFatal, format, v...)
	exit(1)
}
