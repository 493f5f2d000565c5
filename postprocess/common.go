package postprocess

import (
	"math"

	"github.com/ortlite/go-ortlite/postprocess/result"
	"gonum.org/v1/gonum/floats"
)

// NMSFilter applies class aware Non-Maximum Suppression to detection
// results, for use with models whose detection head does not suppress
// overlapping boxes internally.  Boxes are considered in descending
// confidence order, survivors are returned in their original order.
// The Detector itself never calls this, suppression is opt-in.
func NMSFilter(results []result.DetectResult, iouThreshold float32) []result.DetectResult {

	if len(results) < 2 {
		return results
	}

	// argsort the confidences ascending, then walk the index list
	// backwards for descending confidence order
	probs := make([]float64, len(results))
	order := make([]int, len(results))

	for i, res := range results {
		probs[i] = float64(res.Probability)
	}

	floats.Argsort(probs, order)

	keep := make([]bool, len(results))
	suppressed := make([]bool, len(results))

	for i := len(order) - 1; i >= 0; i-- {

		n := order[i]

		if suppressed[n] {
			continue
		}

		keep[n] = true

		for j := i - 1; j >= 0; j-- {

			m := order[j]

			if suppressed[m] || results[m].Class != results[n].Class {
				continue
			}

			iou := calculateOverlap(results[n].Box, results[m].Box)

			if iou > iouThreshold {
				suppressed[m] = true
			}
		}
	}

	filtered := make([]result.DetectResult, 0, len(results))

	for i, res := range results {
		if keep[i] {
			filtered = append(filtered, res)
		}
	}

	return filtered
}

// calculateOverlap works out the Intersection of Union (IoU) value of two
// boxes dimensions
func calculateOverlap(a, b result.BoxRect) float32 {

	w := math.Max(0.0, math.Min(float64(a.Right), float64(b.Right))-math.Max(float64(a.Left), float64(b.Left))+1.0)
	h := math.Max(0.0, math.Min(float64(a.Bottom), float64(b.Bottom))-math.Max(float64(a.Top), float64(b.Top))+1.0)
	intersection := w * h

	// areas use an added 1.0 for inclusive pixel calculation
	area0 := float64(a.Width()+1) * float64(a.Height()+1)
	area1 := float64(b.Width()+1) * float64(b.Height()+1)

	// calculate union
	union := area0 + area1 - intersection

	if union <= 0 {
		return 0.0
	}

	return float32(intersection / union)
}
