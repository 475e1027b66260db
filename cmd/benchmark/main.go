package main

import (
	"fmt"
	"math/rand"
	"os"
	"time"

	"github.com/hikelab/trailindex/hashtable"
	"github.com/hikelab/trailindex/trietable"
	"github.com/hikelab/trailindex/util"

	"github.com/aybabtme/uniplot/histogram"
	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"
)

const (
	keyCount = 50_000
	maxBins  = 5
	maxWidth = 40
)

var syllables = []string{
	"al", "bo", "ca", "du", "el", "fi", "go", "hu",
	"in", "ja", "ko", "lu", "me", "no", "pa", "qu",
	"ri", "so", "tu", "ve", "wi", "xa", "yo", "zu",
}

// Benchmark executable: runs the same synthetic workload through both
// table engines, plots per-operation latencies and cross-checks their
// contents via fingerprints.
func main() {
	run := uuid.New()

	log.WithField("run", run).Infof("generating %d keys", keyCount)

	keys := generateKeys(keyCount)

	var (
		linear = hashtable.NewLinearProbe[int]()
		trie   = trietable.New[int]()

		linearWrites = make([]float64, 0, len(keys))
		trieWrites   = make([]float64, 0, len(keys))
		linearReads  = make([]float64, 0, len(keys))
		trieReads    = make([]float64, 0, len(keys))
	)

	for i, k := range keys {
		start := time.Now()
		if err := linear.Set(k, i); err != nil {
			log.Fatalf("linear probe rejected %q: %v", k, err)
		}
		linearWrites = append(linearWrites, us(start))

		start = time.Now()
		trie.Set(k, i)
		trieWrites = append(trieWrites, us(start))
	}

	for _, k := range keys {
		start := time.Now()
		if _, err := linear.Get(k); err != nil {
			log.Fatalf("linear probe lost %q: %v", k, err)
		}
		linearReads = append(linearReads, us(start))

		start = time.Now()
		if _, err := trie.Get(k); err != nil {
			log.Fatalf("trie lost %q: %v", k, err)
		}
		trieReads = append(trieReads, us(start))
	}

	var (
		lfp = util.Fingerprint(linear.Keys())
		tfp = util.Fingerprint(trie.Keys())
	)

	if !lfp.Equals(tfp) {
		log.Fatalf("engines disagree on contents: %s != %s",
			util.FingerprintHex(lfp), util.FingerprintHex(tfp))
	}

	log.WithField("fingerprint", util.FingerprintHex(lfp)).
		Infof("both engines hold %d keys", linear.Len())

	// Churn: delete half of the keys from both engines
	for i, k := range keys {
		if i%2 == 0 {
			continue
		}

		if err := linear.Delete(k); err != nil {
			log.Fatalf("linear probe failed to delete %q: %v", k, err)
		}

		if err := trie.Delete(k); err != nil {
			log.Fatalf("trie failed to delete %q: %v", k, err)
		}
	}

	if !util.Fingerprint(linear.Keys()).Equals(util.Fingerprint(trie.Keys())) {
		log.Fatal("engines disagree on contents after churn")
	}

	log.Infof("after churn both engines hold %d keys", trie.Len())

	plot("linear probe writes (us)", linearWrites)
	plot("linear probe reads (us)", linearReads)
	plot("trie writes (us)", trieWrites)
	plot("trie reads (us)", trieReads)
}

func generateKeys(n int) []string {
	var (
		rng  = rand.New(rand.NewSource(time.Now().UnixNano()))
		seen = make(map[string]struct{}, n)
		keys = make([]string, 0, n)
	)

	for len(keys) < n {
		var (
			parts = make([]byte, 0, 12)
			count = util.Max(1, rng.Intn(5))
		)

		for i := 0; i < count; i++ {
			parts = append(parts, syllables[rng.Intn(len(syllables))]...)
		}

		key := string(parts)
		if _, ok := seen[key]; ok {
			continue
		}

		seen[key] = struct{}{}
		keys = append(keys, key)
	}

	return keys
}

func us(start time.Time) float64 {
	return float64(time.Since(start).Nanoseconds()) / 1e3
}

func plot(title string, samples []float64) {
	fmt.Printf("\n%s\n", title)

	h := histogram.Hist(util.Min(maxBins, len(samples)), samples)

	_ = histogram.Fprint(os.Stdout, h, histogram.Linear(maxWidth))
}
