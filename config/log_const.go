package config

import (
	"io"

	"github.com/sirupsen/logrus"
)

// Component names used as the "component" log field.
const (
	ComponentApp    = "APP"
	ComponentSolver = "SOLVER"
	ComponentAPI    = "API"
)

// NewLogger returns a text logger writing to w at the given level.
func NewLogger(w io.Writer, level logrus.Level) *logrus.Logger {
	l := logrus.New()
	l.SetOutput(w)
	l.SetLevel(level)
	l.SetFormatter(&logrus.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: "2006-01-02 15:04:05",
	})
	return l
}
