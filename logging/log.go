/*
Package logging initializes the application log.

The application log uses the logrus package. The routing diagnostics are
logged through it, with the level and output configured here.
*/
package logging

import (
	"fmt"
	"io"

	"github.com/sirupsen/logrus"
)

type prefixFormatter struct {
	prefix    string
	formatter logrus.Formatter
}

// Init options for logging.
type Options struct {

	// Prefix for application log entries.
	ApplicationLogPrefix string

	// Output for the application log entries, when nil, the logrus
	// default is used.
	ApplicationLogOutput io.Writer

	// When set, the application log is written in JSON format.
	ApplicationLogJSONEnabled bool

	// Application log level, one of the logrus level names. When
	// empty, the level is left unchanged.
	ApplicationLogLevel string
}

func (f *prefixFormatter) Format(e *logrus.Entry) ([]byte, error) {
	b, err := f.formatter.Format(e)
	if err != nil {
		return nil, err
	}

	return append([]byte(f.prefix), b...), nil
}

// Init initializes the application log.
func Init(o Options) error {
	if o.ApplicationLogJSONEnabled {
		logrus.SetFormatter(&logrus.JSONFormatter{})
	}

	if o.ApplicationLogPrefix != "" {
		logrus.SetFormatter(&prefixFormatter{
			o.ApplicationLogPrefix, logrus.StandardLogger().Formatter})
	}

	if o.ApplicationLogOutput != nil {
		logrus.SetOutput(o.ApplicationLogOutput)
	}

	if o.ApplicationLogLevel != "" {
		l, err := logrus.ParseLevel(o.ApplicationLogLevel)
		if err != nil {
			return fmt.Errorf("invalid application log level: %w", err)
		}

		logrus.SetLevel(l)
	}

	return nil
}
