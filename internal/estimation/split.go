package estimation

import (
	"math"
	"math/rand"
	"sort"
)

// SplitIndices partitions row indices 0..n-1 into a training and a hold-out
// set. The hold-out size is ceil(n*testFraction), kept between 1 and n-1 when
// n >= 2. The permutation is driven by seed only, so identical inputs always
// yield the same partition. Both slices are returned in ascending order.
func SplitIndices(n int, testFraction float64, seed int64) (train, test []int) {
	if n <= 0 {
		return nil, nil
	}
	nTest := int(math.Ceil(float64(n) * testFraction))
	if nTest < 1 {
		nTest = 1
	}
	if nTest > n-1 {
		nTest = n - 1
	}

	perm := rand.New(rand.NewSource(seed)).Perm(n)
	test = append([]int(nil), perm[:nTest]...)
	train = append([]int(nil), perm[nTest:]...)
	sort.Ints(test)
	sort.Ints(train)
	return train, test
}
