package pascal3d

import (
	"fmt"
	"math"
	"math/rand/v2"
)

// Canonical split parameters. A canonical split is the same for every run
// over the same data ordering, so benchmark numbers stay comparable.
const (
	CanonicalValidationSplit        = 0.2
	CanonicalSeed            uint64 = 13
)

// Split partitions p into training and validation samples. When canonical is
// true, fraction is ignored and the canonical fraction and seed are used;
// otherwise the permutation is drawn from a freshly seeded generator.
func Split(p Partition, fraction float64, canonical bool) (train, val Partition, err error) {
	if canonical {
		return SplitSeeded(p, CanonicalValidationSplit, CanonicalSeed)
	}
	return split(p, fraction, newRand())
}

// SplitSeeded is like Split with a caller-chosen seed. Equal seeds over equal
// data produce equal partitions.
func SplitSeeded(p Partition, fraction float64, seed uint64) (train, val Partition, err error) {
	return split(p, fraction, seededRand(seed))
}

func split(p Partition, fraction float64, rng *rand.Rand) (train, val Partition, err error) {
	if err := validateFraction(fraction); err != nil {
		return Partition{}, Partition{}, err
	}
	if err := p.validate(); err != nil {
		return Partition{}, Partition{}, err
	}

	trainIdx, valIdx := SplitIndices(p.Len(), fraction, rng)
	return p.Take(trainIdx), p.Take(valIdx), nil
}

// SplitIndices draws a uniform permutation of [0, n) and cuts it after
// floor((1-fraction)*n) entries. The two slices are disjoint and together
// hold every index exactly once. A nil rng uses a freshly seeded generator.
func SplitIndices(n int, fraction float64, rng *rand.Rand) (train, val []int) {
	if rng == nil {
		rng = newRand()
	}
	perm := rng.Perm(n)
	nTrain := min(max(int((1-fraction)*float64(n)), 0), n)
	return perm[:nTrain:nTrain], perm[nTrain:]
}

func validateFraction(fraction float64) error {
	if math.IsNaN(fraction) || fraction < 0 || fraction > 1 {
		return fmt.Errorf("fraction %v outside [0, 1]: %w", fraction, ErrInvalidSplit)
	}
	return nil
}

func newRand() *rand.Rand {
	return rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
}

func seededRand(seed uint64) *rand.Rand {
	return rand.New(rand.NewPCG(seed, 0))
}
