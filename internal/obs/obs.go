// Package obs provides the interpreter's only logging: an optional
// eval/poly tracer gated by named debug flags (config.Debug(name)).
// It never runs on the hot evaluation path unless a flag is on.
package obs

import (
	"io"
	"os"
	"sync"

	"github.com/sirupsen/logrus"
)

var (
	mu  sync.Mutex
	log = newLogger(os.Stderr)
)

func newLogger(w io.Writer) *logrus.Logger {
	l := logrus.New()
	l.SetOutput(w)
	l.SetFormatter(&logrus.TextFormatter{DisableTimestamp: true})
	l.SetLevel(logrus.DebugLevel)
	return l
}

// SetOutput redirects the tracer's output, for tests.
func SetOutput(w io.Writer) {
	mu.Lock()
	defer mu.Unlock()
	log.SetOutput(w)
}

// Tracer emits debug-level trace lines for a single named facility (e.g.
// "parse" or "eval"), active only when enabled reports true.
type Tracer struct {
	name    string
	enabled func(name string) bool
}

// New returns a Tracer for the named facility, consulting enabled(name)
// on every call rather than caching it, so toggling )debug mid-session
// takes effect immediately.
func New(name string, enabled func(name string) bool) *Tracer {
	return &Tracer{name: name, enabled: enabled}
}

// Trace logs a formatted trace line if the facility is enabled.
func (t *Tracer) Trace(format string, args ...interface{}) {
	if t == nil || !t.enabled(t.name) {
		return
	}
	mu.Lock()
	defer mu.Unlock()
	log.WithField("facility", t.name).Debugf(format, args...)
}
