package mountain

import (
	"errors"
	"testing"
)

func TestOrganiserRank(t *testing.T) {
	o := NewOrganiser()

	o.Add(samplePeaks()...)

	// Ranked by difficulty, then name.
	want := []string{"buller", "kosciuszko", "townsend", "bogong", "feathertop"}

	peaks := o.Peaks()
	if len(peaks) != len(want) {
		t.Fatalf("Peaks() returned %d peaks but expected %d", len(peaks), len(want))
	}

	for i, name := range want {
		if peaks[i].Name != name {
			t.Errorf("Peaks()[%d] = %s but expected %s", i, peaks[i].Name, name)
		}
	}

	for i, p := range peaks {
		rank, err := o.Rank(p)
		if err != nil {
			t.Fatal(err)
		}
		if rank != i {
			t.Errorf("Rank(%s) = %d but expected %d", p.Name, rank, i)
		}
	}
}

func TestOrganiserUnknown(t *testing.T) {
	o := NewOrganiser()

	o.Add(samplePeaks()...)

	if _, err := o.Rank(Peak{Name: "phantom", Difficulty: 1}); !errors.Is(err, ErrPeakUnknown) {
		t.Errorf("Rank(phantom) = %v but expected ErrPeakUnknown", err)
	}
}

func TestOrganiserIncrementalAdd(t *testing.T) {
	var (
		o     = NewOrganiser()
		peaks = samplePeaks()
	)

	o.Add(peaks[0], peaks[1])
	o.Add(peaks[2:]...)

	if o.Len() != len(peaks) {
		t.Errorf("Len() = %d but expected %d", o.Len(), len(peaks))
	}

	rank, err := o.Rank(Peak{Name: "buller", Difficulty: 2, Length: 1805})
	if err != nil {
		t.Fatal(err)
	}
	if rank != 0 {
		t.Errorf("Rank(buller) = %d but expected 0", rank)
	}
}
