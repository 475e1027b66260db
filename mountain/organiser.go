package mountain

import (
	"errors"

	"github.com/emirpasic/gods/trees/redblacktree"
)

// Organiser keeps peaks ranked by (difficulty, name).
type Organiser struct {
	tree *redblacktree.Tree
}

var ErrPeakUnknown = errors.New("peak unknown")

func NewOrganiser() *Organiser {
	return &Organiser{tree: redblacktree.NewWith(comparePeaks)}
}

func comparePeaks(a, b interface{}) int {
	return a.(Peak).Compare(b.(Peak))
}

func (o *Organiser) Add(peaks ...Peak) {
	for _, p := range peaks {
		o.tree.Put(p, p)
	}
}

func (o *Organiser) Remove(p Peak) {
	o.tree.Remove(p)
}

// Rank returns the peak's 0-based position in (difficulty, name)
// order.
func (o *Organiser) Rank(p Peak) (int, error) {
	if _, ok := o.tree.Get(p); !ok {
		return 0, ErrPeakUnknown
	}

	var (
		rank int
		iter = o.tree.Iterator()
	)

	for iter.Next() {
		if iter.Key().(Peak) == p {
			return rank, nil
		}

		rank++
	}

	return 0, ErrPeakUnknown
}

// Peaks returns every organised peak in rank order.
func (o *Organiser) Peaks() []Peak {
	var (
		peaks = make([]Peak, 0, o.tree.Size())
		iter  = o.tree.Iterator()
	)

	for iter.Next() {
		peaks = append(peaks, iter.Key().(Peak))
	}

	return peaks
}

func (o *Organiser) Len() int { return o.tree.Size() }
