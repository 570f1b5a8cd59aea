/*
Package clilog provides the logger for wactl in the form of a logging
singleton: Writer.

It is a thin singleton wrapper of the leveled RFC5424 logger. While the
underlying logger is thread-safe, clilog's helper functions are not
necessarily.
*/
package clilog

import (
	"io"

	"github.com/Copysiter/O3GO-WA/log"
)

// Level recreates log.Level so other packages do not have to import the
// underlying logger.
type Level int

const (
	OFF      Level = 0
	DEBUG    Level = 1
	INFO     Level = 2
	WARN     Level = 3
	ERROR    Level = 4
	CRITICAL Level = 5
	FATAL    Level = 6
)

var Writer *log.Logger

// Init initializes Writer, the logging singleton.
// Safe (ineffectual) if the writer has already been initialized.
func Init(path string, lvl string) error {
	var err error
	if Writer != nil {
		return nil
	}

	Writer, err = log.NewFile(path)
	if err != nil {
		return err
	}

	if err = Writer.SetLevelString(lvl); err != nil {
		Writer.Close()
		return err
	}

	Writer.Infof("Logger initialized at %v level, hostname %v", Writer.GetLevel(), Writer.Hostname())

	return nil
}

// Tee writes the message to clilog.Writer and a secondary output, usually stderr.
func Tee(lvl Level, alt io.Writer, str string) {
	alt.Write([]byte(str))
	switch lvl {
	case OFF:
	case DEBUG:
		Writer.Debug(str)
	case INFO:
		Writer.Info(str)
	case WARN:
		Writer.Warn(str)
	case ERROR:
		Writer.Error(str)
	case CRITICAL:
		Writer.Critical(str)
	case FATAL:
		Writer.Fatal(str)
	}
}

// Active returns whether the given level is currently enabled.
func Active(lvl Level) bool {
	return Writer.GetLevel() <= log.Level(lvl)
}

// LogFlagFailedGet logs the non-fatal failure to fetch named flag from flagset.
// Used to keep flag handling errors uniform.
func LogFlagFailedGet(flagname string, err error) {
	Writer.Warnf("failed to fetch '--%v':%v\nignoring", flagname, err)
}
