package trail

import (
	"context"
	"fmt"

	"github.com/hikelab/trailindex/mountain"

	"github.com/google/uuid"
	"github.com/looplab/fsm"
	log "github.com/sirupsen/logrus"
)

type (
	// Personality decides which branch a walker takes at a split.
	Personality interface {
		fmt.Stringer

		PickBranch(Split) Trail
	}

	// TopWalker always takes the top branch.
	TopWalker struct{}

	// BottomWalker always takes the bottom branch.
	BottomWalker struct{}

	// LazyWalker takes whichever branch passes fewer peaks,
	// preferring the top on a tie.
	LazyWalker struct{}

	// Walker traverses a trail once, recording the peaks it passes.
	Walker struct {
		id          uuid.UUID
		machine     *fsm.FSM
		personality Personality
		peaks       []mountain.Peak
	}
)

// The walker lifecycle states
const (
	Ready    = "ready"
	Walking  = "walking"
	Finished = "finished"
)

// The walker lifecycle events
const (
	StartWalk  = "start_walk"
	FinishWalk = "finish_walk"
)

var transitions = fsm.Events{
	{Name: StartWalk, Src: []string{Ready}, Dst: Walking},
	{Name: FinishWalk, Src: []string{Walking}, Dst: Finished},
}

func (TopWalker) String() string    { return "top" }
func (BottomWalker) String() string { return "bottom" }
func (LazyWalker) String() string   { return "lazy" }

func (TopWalker) PickBranch(s Split) Trail { return s.Top }

func (BottomWalker) PickBranch(s Split) Trail { return s.Bottom }

func (LazyWalker) PickBranch(s Split) Trail {
	if len(s.Bottom.Peaks()) < len(s.Top.Peaks()) {
		return s.Bottom
	}

	return s.Top
}

func NewWalker(personality Personality) *Walker {
	w := &Walker{id: uuid.New(), personality: personality}

	w.machine = fsm.NewFSM(Ready, transitions, fsm.Callbacks{
		FinishWalk: func(_ context.Context, e *fsm.Event) {
			log.WithFields(log.Fields{
				"walker":      w.id,
				"personality": w.personality.String(),
				"peaks":       len(w.peaks),
			}).Debug("finished trail")
		},
	})

	return w
}

func (w *Walker) ID() uuid.UUID { return w.id }

func (w *Walker) State() string { return w.machine.Current() }

// Peaks returns the peaks passed so far, in walking order.
func (w *Walker) Peaks() []mountain.Peak { return w.peaks }

// FollowPath walks the trail once, letting the personality pick a
// branch at every split. A walker cannot start a second walk.
func (w *Walker) FollowPath(t Trail) error {
	if err := w.machine.Event(context.Background(), StartWalk); err != nil {
		return fmt.Errorf("walker %s cannot start: %w", w.id, err)
	}

	// Explicit stack of the rejoined paths still to walk,
	// so branch depth cannot exhaust the call stack.
	var (
		pending []Trail
		cur     = t
	)

	for {
		switch store := cur.Store.(type) {
		case Series:
			w.peaks = append(w.peaks, store.Peak)
			cur = store.Following
		case Split:
			pending = append(pending, store.Following)
			cur = w.personality.PickBranch(store)
		default:
			if len(pending) == 0 {
				return w.machine.Event(context.Background(), FinishWalk)
			}

			cur = pending[len(pending)-1]
			pending = pending[:len(pending)-1]
		}
	}
}
