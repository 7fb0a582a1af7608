// Package syncer implements the fetch/compare/write orchestration between
// the two tabular sources.
package syncer

import (
	"context"
	"fmt"
	"sync"

	"github.com/sheetbridge/sheetbridge/internal/tabular"
)

// Outcome tags the result of a synchronisation.
type Outcome string

const (
	Skipped Outcome = "skipped"
	Applied Outcome = "applied"
	Failed  Outcome = "failed"
)

// Stages at which a synchronisation can fail.
const (
	StageSourceARead = "source_a_read"
	StageSourceBRead = "source_b_read"
	StageWrite       = "write"
)

// DirectionAToB overwrites the workbook with the spreadsheet's snapshot.
// The direction is fixed - the spreadsheet is always treated as
// authoritative, without comparing modification times on either side.
const DirectionAToB = "A_to_B"

// Result is the outcome of a single synchronisation. Failed results carry
// the stage at which the invocation stopped and the reason.
type Result struct {
	Outcome   Outcome
	Direction string
	Stage     string
	Reason    string
}

func (r Result) Message() string {
	switch r.Outcome {
	case Skipped:
		return "no differences found - sync skipped"

	case Applied:
		if r.Direction == DirectionAToB {
			return "sync completed: spreadsheet to workbook"
		}
		return fmt.Sprintf("sync completed: %v", r.Direction)

	case Failed:
		return fmt.Sprintf("sync failed at %v (%v)", r.Stage, r.Reason)
	}

	return string(r.Outcome)
}

// Orchestrator synchronises a spreadsheet (source A) and a workbook file
// (source B). It holds no state of its own beyond the two collaborator
// handles; a mutex serialises overlapping invocations so that two
// concurrent triggers cannot interleave their read-then-write sequences
// on the destination.
type Orchestrator struct {
	spreadsheet tabular.Source
	workbook    tabular.Source
	guard       sync.Mutex
}

func New(spreadsheet, workbook tabular.Source) *Orchestrator {
	return &Orchestrator{
		spreadsheet: spreadsheet,
		workbook:    workbook,
	}
}

// Synchronize reads both sources, compares fingerprints and overwrites the
// workbook with the spreadsheet's snapshot if they differ. It never returns
// an error - every failure is folded into the Result. At most one remote
// write is issued per invocation and none at all when the sources already
// match or either read fails.
func (o *Orchestrator) Synchronize(ctx context.Context) Result {
	o.guard.Lock()
	defer o.guard.Unlock()

	a, err := o.spreadsheet.Read(ctx)
	if err != nil {
		return failed(StageSourceARead, err)
	}

	b, err := o.workbook.Read(ctx)
	if err != nil {
		return failed(StageSourceBRead, err)
	}

	if tabular.Fingerprint(a) == tabular.Fingerprint(b) {
		return Result{Outcome: Skipped}
	}

	if err := o.workbook.Write(ctx, a); err != nil {
		return failed(StageWrite, err)
	}

	return Result{
		Outcome:   Applied,
		Direction: DirectionAToB,
	}
}

func failed(stage string, err error) Result {
	return Result{
		Outcome: Failed,
		Stage:   stage,
		Reason:  fmt.Sprintf("%v", err),
	}
}
