// Package trace records machine cycles as structured log records.
package trace

import (
	"io"
	"log/slog"

	slogmulti "github.com/samber/slog-multi"

	"github.com/ezrec/utm/machine"
)

// New returns a logger writing JSON records to out. If echo is not nil,
// records at or above level are also written to echo as text.
func New(out io.Writer, echo io.Writer, level slog.Level) *slog.Logger {
	handlers := []slog.Handler{
		slog.NewJSONHandler(out, &slog.HandlerOptions{Level: slog.LevelDebug}),
	}

	if echo != nil {
		handlers = append(handlers, slog.NewTextHandler(echo, &slog.HandlerOptions{Level: level}))
	}

	return slog.New(slogmulti.Fanout(handlers...))
}

// Observer logs every applied cycle at debug level.
func Observer(logger *slog.Logger) machine.Observer {
	return func(snap machine.Snapshot) {
		data := snap.Data
		logger.Debug("cycle",
			slog.Int("cycle", snap.Cycle),
			slog.String("state", snap.State),
			slog.Int("head", data.Start+data.Head),
			slog.String("symbol", data.Cells[data.Head].String()),
		)
	}
}

// Halt logs the result of a run.
func Halt(logger *slog.Logger, m *machine.Machine, err error) {
	stats := m.Stats()
	scan := m.Scan()

	attrs := []any{
		slog.Bool("halted", m.Halted()),
		slog.String("state", m.State()),
		slog.String("output", m.Output()),
		slog.Int("cycles", scan.Cycles),
		slog.Group("stats",
			slog.Int("head_reads", stats.HeadReads),
			slog.Int("head_writes", stats.HeadWrites),
			slog.Int("tape_reads", stats.TapeReads),
			slog.Int("tape_writes", stats.TapeWrites),
		),
	}

	if err != nil {
		logger.Error("run", append(attrs, slog.Any("error", err))...)
		return
	}

	logger.Info("run", attrs...)
}
