// SPDX-License-Identifier: Unlicense OR MIT

package layout

// Slot describes the constraints of one slot competing for space:
// a minimum size and a stretch weight controlling how much of the
// surplus beyond the minimums the slot receives.
type Slot struct {
	Min     float32
	Stretch float32
}

// Allocate distributes total among the slots. Every returned size is
// at least the slot's minimum and the sizes sum to total whenever
// total covers the minimums; the surplus is shared in proportion to
// the stretch weights, evenly when all weights are zero. When the
// minimums exceed total every slot is clamped to its minimum and the
// deficit is reported: surfacing it, typically by allowing overflow,
// is the caller's policy.
func Allocate(total float32, slots []Slot) (sizes []float32, deficit bool) {
	if len(slots) == 0 {
		return nil, false
	}
	if total < 0 {
		total = 0
	}
	sizes = make([]float32, len(slots))
	var mins, weights float32
	for i, s := range slots {
		sizes[i] = s.Min
		mins += s.Min
		weights += s.Stretch
	}
	if mins > total {
		return sizes, true
	}
	surplus := total - mins
	if weights == 0 {
		// No slot claims the surplus: split it evenly.
		share := surplus / float32(len(slots))
		for i := range sizes {
			sizes[i] += share
		}
		return sizes, false
	}
	for i, s := range slots {
		sizes[i] += surplus * s.Stretch / weights
	}
	return sizes, false
}

// allocateFairly splits extent evenly across count slots.
func allocateFairly(extent float32, count int) float32 {
	if count <= 0 {
		return 0
	}
	slots := make([]Slot, count)
	sizes, _ := Allocate(extent, slots)
	return sizes[0]
}
