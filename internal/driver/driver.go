package driver

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel/trace"

	"github.com/katalvlaran/gid/bfgt"
	"github.com/katalvlaran/gid/detector"
	"github.com/katalvlaran/gid/internal/streamio"
	"github.com/katalvlaran/gid/internal/telemetry"
	"github.com/katalvlaran/gid/jump"
	"github.com/katalvlaran/gid/logdet"
	"github.com/katalvlaran/gid/naive"
	"github.com/katalvlaran/gid/simple"
)

// ErrTimeout is returned by Run when the context deadline elapses before
// the whole update stream has been replayed.
var ErrTimeout = errors.New("driver: timed out replaying update stream")

// New constructs a fresh detector for algo.
func New(algo detector.Algorithm) detector.Detector {
	switch algo {
	case detector.AlgoNaive:
		return naive.New()
	case detector.AlgoSimple:
		return simple.New()
	case detector.AlgoBFGT:
		return bfgt.New()
	case detector.AlgoLog:
		return logdet.New()
	case detector.AlgoJump:
		return jump.New()
	default:
		return naive.New()
	}
}

// Result reports how a single Run went. RunID identifies the run for
// correlating log lines and telemetry records emitted during it.
type Result struct {
	RunID     string
	Algorithm detector.Algorithm
	Snapshot  detector.Snapshot
	Elapsed   time.Duration
}

// Run replays records against a freshly constructed detector for algo,
// checking ctx after every record so a deadline can abort mid-stream. If
// tel is non-nil, each update's duration and the final snapshot's vertex
// count are recorded; status transitions are not recorded.
func Run(ctx context.Context, algo detector.Algorithm, records []streamio.Record, tel *telemetry.Provider) (Result, error) {
	d := New(algo)
	runID := uuid.New().String()
	start := time.Now()

	if tel != nil {
		var span trace.Span
		ctx, span = tel.StartRun(ctx, algo.String())
		defer span.End()
	}

	for _, r := range records {
		if err := ctx.Err(); err != nil {
			return Result{RunID: runID, Algorithm: algo}, ErrTimeout
		}

		updateStart := time.Now()
		streamio.Apply(d, r)
		if tel != nil {
			tel.RecordUpdate(ctx, float64(time.Since(updateStart).Microseconds())/1000.0)
		}
	}

	if err := ctx.Err(); err != nil {
		return Result{RunID: runID, Algorithm: algo}, ErrTimeout
	}

	snap := d.Snapshot()
	if tel != nil {
		tel.RecordSnapshot(ctx, len(snap.Live)+len(snap.Dead)+len(snap.Unknown)+len(snap.Open))
	}

	return Result{RunID: runID, Algorithm: algo, Snapshot: snap, Elapsed: time.Since(start)}, nil
}
