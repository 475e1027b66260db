// Package mountain holds the peak registry built on the table engines:
// a manager indexing peaks by (difficulty, name) and an organiser
// ranking them.
package mountain

import "fmt"

// Peak is a named, ranked entity. Peaks are totally ordered by
// difficulty, then name.
type Peak struct {
	Name       string
	Difficulty int
	Length     int
}

func (p Peak) Less(other Peak) bool {
	if p.Difficulty != other.Difficulty {
		return p.Difficulty < other.Difficulty
	}

	return p.Name < other.Name
}

func (p Peak) Compare(other Peak) int {
	switch {
	case p.Less(other):
		return -1
	case other.Less(p):
		return 1
	default:
		return 0
	}
}

func (p Peak) String() string {
	return fmt.Sprintf("%s (difficulty %d, %dm)", p.Name, p.Difficulty, p.Length)
}
