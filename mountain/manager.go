package mountain

import (
	"fmt"
	"strconv"

	"github.com/hikelab/trailindex/hashtable"

	log "github.com/sirupsen/logrus"
	"go.uber.org/multierr"
	"golang.org/x/exp/slices"
)

// Manager indexes peaks by difficulty and name on a two-level table,
// so all peaks of one difficulty share an inner table.
type Manager struct {
	peaks *hashtable.DoubleKey[Peak]
}

func NewManager() *Manager {
	return &Manager{peaks: hashtable.NewDoubleKey[Peak]()}
}

func difficultyKey(difficulty int) string {
	return strconv.Itoa(difficulty)
}

func (m *Manager) Add(p Peak) error {
	if err := m.peaks.Set(difficultyKey(p.Difficulty), p.Name, p); err != nil {
		return fmt.Errorf("failed to add peak %q: %w", p.Name, err)
	}

	log.WithFields(log.Fields{"peak": p.Name, "difficulty": p.Difficulty}).Debug("added peak")

	return nil
}

func (m *Manager) Remove(p Peak) error {
	if err := m.peaks.Delete(difficultyKey(p.Difficulty), p.Name); err != nil {
		return fmt.Errorf("failed to remove peak %q: %w", p.Name, err)
	}

	log.WithFields(log.Fields{"peak": p.Name, "difficulty": p.Difficulty}).Debug("removed peak")

	return nil
}

// Edit swaps prev for next. Both halves are attempted; their failures
// are aggregated.
func (m *Manager) Edit(prev, next Peak) error {
	var result error

	result = multierr.Append(result, m.Remove(prev))
	result = multierr.Append(result, m.Add(next))

	return result
}

func (m *Manager) Contains(p Peak) bool {
	return m.peaks.Contains(difficultyKey(p.Difficulty), p.Name)
}

// ByDifficulty returns every peak of the given difficulty sorted by
// name, or an empty slice when the difficulty is unknown.
func (m *Manager) ByDifficulty(difficulty int) []Peak {
	peaks, err := m.peaks.ValuesOf(difficultyKey(difficulty))
	if err != nil {
		return nil
	}

	slices.SortFunc(peaks, func(a, b Peak) bool { return a.Name < b.Name })

	return peaks
}

// Difficulties returns every difficulty with at least one peak,
// ascending.
func (m *Manager) Difficulties() []int {
	var (
		keys         = m.peaks.Keys()
		difficulties = make([]int, 0, len(keys))
	)

	for _, k := range keys {
		d, err := strconv.Atoi(k)
		if err != nil {
			// Keys are written by difficultyKey only.
			continue
		}

		difficulties = append(difficulties, d)
	}

	slices.Sort(difficulties)

	return difficulties
}

func (m *Manager) Len() int { return m.peaks.Len() }
