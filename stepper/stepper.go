package stepper

import (
	"context"
	"errors"
	"fmt"

	"github.com/katalvlaran/cubegather/compact"
	"github.com/katalvlaran/cubegather/gather"
	"github.com/katalvlaran/cubegather/grid"
	"github.com/katalvlaran/cubegather/move"
	"github.com/katalvlaran/cubegather/topology"
)

// ErrInvalidMove is raised when a phase generator yields a move that
// isn't legal under the configuration at the moment it's about to be
// committed. This is always an algorithm bug, never a recoverable
// condition — the phase generators are only supposed to emit moves that
// move.IsValid already accepts.
var ErrInvalidMove = errors.New("stepper: phase emitted an illegal move")

// StepKind distinguishes which phase produced a transcript entry.
type StepKind int

const (
	StepGather StepKind = iota
	StepCompact
)

func (k StepKind) String() string {
	if k == StepCompact {
		return "compact"
	}
	return "gather"
}

// Step is one committed move, tagged with the phase that produced it.
type Step struct {
	Kind StepKind
	Cube grid.CubeID
	Dir  grid.Direction
	From grid.Cell
	To   grid.Cell
}

// Mode selects how the Stepper commits each move. ModeInteractive
// re-marks classification after every single move, so Transcript/World
// observers always see up-to-date Tag/ChunkID/OnBoundary fields —
// appropriate for a UI driving one move at a time. ModeBatch commits
// unmarked and only re-marks once at the end of each phase, which is
// cheaper for a CLI that only needs the final transcript and footprint.
type Mode int

const (
	ModeInteractive Mode = iota
	ModeBatch
)

// Stepper runs Gather to convergence, then Compact to convergence, over
// a single World, committing every move and recording a full transcript
// as it goes.
type Stepper struct {
	w          *grid.World
	mode       Mode
	transcript []Step
}

// New wraps w for a stepped Gather+Compact run in interactive mode.
func New(w *grid.World) *Stepper {
	return &Stepper{w: w, mode: ModeInteractive}
}

// NewBatch wraps w for a stepped Gather+Compact run in batch mode.
func NewBatch(w *grid.World) *Stepper {
	return &Stepper{w: w, mode: ModeBatch}
}

// Transcript returns every move committed so far, in commit order.
func (s *Stepper) Transcript() []Step {
	return s.transcript
}

// Run drives Gather to convergence and then Compact to convergence,
// returning the full transcript. gather.ErrLightConfiguration is not
// returned for configurations with fewer than five cubes: Gather is
// skipped and Compact alone runs in that case, since compacting a light
// configuration is well defined even though gathering one isn't. ctx is
// forwarded to every topology/BFS call underneath; a caller-supplied
// deadline aborts the run instead of hanging it indefinitely.
func (s *Stepper) Run(ctx context.Context) ([]Step, error) {
	if err := s.runGather(ctx); err != nil && !errors.Is(err, gather.ErrLightConfiguration) {
		return nil, err
	}
	if err := s.runCompact(ctx); err != nil {
		return nil, err
	}
	return s.transcript, nil
}

func (s *Stepper) runGather(ctx context.Context) error {
	g, err := gather.NewPhase(ctx, s.w)
	if err != nil {
		return err
	}
	for {
		mv, done, err := g.Next(ctx)
		if err != nil {
			return fmt.Errorf("stepper: gather: %w", err)
		}
		if done {
			break
		}
		if err := s.commit(ctx, StepGather, mv.Cube, mv.Dir); err != nil {
			return fmt.Errorf("stepper: gather: %w", err)
		}
	}
	if s.mode == ModeBatch {
		if err := topology.MarkComponents(ctx, s.w); err != nil {
			return fmt.Errorf("stepper: gather: %w", err)
		}
	}
	return nil
}

func (s *Stepper) runCompact(ctx context.Context) error {
	c := compact.NewPhase(s.w)
	for {
		mv, done, err := c.Next(ctx)
		if err != nil {
			return fmt.Errorf("stepper: compact: %w", err)
		}
		if done {
			break
		}
		if err := s.commit(ctx, StepCompact, mv.Cube, mv.Dir); err != nil {
			return fmt.Errorf("stepper: compact: %w", err)
		}
	}
	if s.mode == ModeBatch {
		if err := topology.MarkComponents(ctx, s.w); err != nil {
			return fmt.Errorf("stepper: compact: %w", err)
		}
	}
	return nil
}

// commit re-validates mv under the World's current state before applying
// it — a phase generator is only ever supposed to emit moves move.IsValid
// already accepts, so a rejection here means the generator has a bug,
// not that the move was merely inconvenient.
func (s *Stepper) commit(ctx context.Context, kind StepKind, cube grid.CubeID, dir grid.Direction) error {
	ok, err := move.IsValid(ctx, s.w, cube, dir)
	if err != nil {
		return fmt.Errorf("stepper: validate: %w", err)
	}
	if !ok {
		return fmt.Errorf("%w: cube %d dir %s", ErrInvalidMove, cube, dir)
	}

	from := s.w.Cube(cube).Pos
	dx, dy := dir.Offset()
	to := from.Add(dx, dy)
	if s.mode == ModeBatch {
		if err := s.w.Move(from, to); err != nil {
			return err
		}
	} else if err := topology.MoveMarked(ctx, s.w, from, to); err != nil {
		return err
	}
	s.transcript = append(s.transcript, Step{Kind: kind, Cube: cube, Dir: dir, From: from, To: to})
	return nil
}
