package classifier

import (
	"context"
	"math/rand/v2"
)

// Split shuffles the example indexes with a fixed seed and returns the
// train and test index sets; testFraction of the examples go to test.
func Split(n int, testFraction float64, seed uint64) (train, test []int) {
	idx := make([]int, n)
	for i := range idx {
		idx[i] = i
	}
	r := rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
	r.Shuffle(n, func(i, j int) { idx[i], idx[j] = idx[j], idx[i] })

	nTest := int(float64(n) * testFraction)
	return idx[nTest:], idx[:nTest]
}

// Accuracy is the share of vectors whose best label equals the expected tag.
func Accuracy(ctx context.Context, c Classifier, vectors [][]float32, tags []string) (float64, error) {
	if len(vectors) == 0 {
		return 0, nil
	}
	correct := 0
	for i, v := range vectors {
		dist, err := c.PredictProba(ctx, v)
		if err != nil {
			return 0, err
		}
		if best, ok := dist.Best(); ok && best.Tag == tags[i] {
			correct++
		}
	}
	return float64(correct) / float64(len(vectors)), nil
}
