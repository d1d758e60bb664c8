// Package trace adds opt-in structured logging around deferred effects.
//
// The containers in this module never log. Wrap an IO with Traced when a run
// should leave a trail: the wrapped IO stays lazy, and each Run emits a start
// entry and a finish entry carrying the same run id.
package trace

import (
	"time"

	"github.com/google/uuid"
	"github.com/on-the-ground/monad_ive_go/monads/deferredio"
	"github.com/rickb777/date/v2/timespan"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

const defaultName = "deferredio"

// Messages of the entries written by a traced IO.
const (
	MsgStarted  = "deferred io started"
	MsgFinished = "deferred io finished"
	MsgAborted  = "deferred io aborted" // panic or runtime.Goexit inside the run
)

// Config controls how a traced IO logs.
type Config struct {
	Name  string        // default: "deferredio"
	Level zapcore.Level // level of the start and finish entries
}

// NewConfig returns a Config, defaulting an empty name to "deferredio".
func NewConfig(name string, level zapcore.Level) Config {
	if name == "" {
		name = defaultName
	}
	return Config{
		Name:  name,
		Level: level,
	}
}

// Traced returns an IO that runs m and logs the run with logger.
// Nothing is logged until the returned IO is run. A nil logger discards entries.
//
// If m does not return, because it panics or calls runtime.Goexit, an error
// entry is written and the unwinding continues to the caller of Run.
func Traced[A any](logger *zap.Logger, config Config, m deferredio.IO[A]) deferredio.IO[A] {
	if logger == nil {
		logger = zap.NewNop()
	}
	config = NewConfig(config.Name, config.Level)
	logger = logger.With(zap.String("name", config.Name))

	return deferredio.New(func() A {
		runID := uuid.New().String()
		startedAt := time.Now()
		logger.Log(config.Level, MsgStarted, zap.String("runId", runID))

		finished := false
		defer func() {
			span := timespan.BetweenTimes(startedAt, time.Now())
			fields := []zap.Field{
				zap.String("runId", runID),
				zap.Time("startedAt", span.Start()),
				zap.Duration("elapsed", span.Duration()),
			}
			if !finished {
				logger.Error(MsgAborted, fields...)
				return
			}
			logger.Log(config.Level, MsgFinished, fields...)
		}()

		res := m.Run()
		finished = true
		return res
	})
}
