package timeline

import (
	"fmt"
	"math/rand"
)

// Slot is one image display allocation on the timeline, in microseconds.
type Slot struct {
	Start    int64
	Duration int64
}

// End returns the first microsecond after the slot.
func (s Slot) End() int64 { return s.Start + s.Duration }

// Plan splits totalUS into ceil(totalUS/perImageUS) slots. Every slot lasts
// perImageUS except the last, which is clipped so the slots tile [0, totalUS)
// exactly.
func Plan(totalUS, perImageUS int64) ([]Slot, error) {
	if totalUS <= 0 {
		return nil, fmt.Errorf("total duration %d must be positive", totalUS)
	}
	if perImageUS <= 0 {
		return nil, fmt.Errorf("per-image duration %d must be positive", perImageUS)
	}

	count := (totalUS + perImageUS - 1) / perImageUS
	slots := make([]Slot, 0, count)
	cursor := int64(0)
	for cursor < totalUS {
		duration := perImageUS
		if remaining := totalUS - cursor; remaining < duration {
			duration = remaining
		}
		slots = append(slots, Slot{Start: cursor, Duration: duration})
		cursor += duration
	}
	return slots, nil
}

// SelectImages picks one image path per slot. Pools at least as large as
// slotCount yield a random sample without replacement; smaller pools
// contribute every image once in shuffled order and the remainder is drawn
// uniformly with replacement. Adjacent repeats are possible and accepted.
func SelectImages(pool []string, slotCount int, rng *rand.Rand) ([]string, error) {
	if len(pool) == 0 {
		return nil, fmt.Errorf("image pool is empty")
	}
	if slotCount < 0 {
		return nil, fmt.Errorf("slot count %d is negative", slotCount)
	}

	shuffled := make([]string, len(pool))
	copy(shuffled, pool)
	rng.Shuffle(len(shuffled), func(i, j int) {
		shuffled[i], shuffled[j] = shuffled[j], shuffled[i]
	})

	if slotCount <= len(shuffled) {
		return shuffled[:slotCount], nil
	}

	selected := make([]string, 0, slotCount)
	selected = append(selected, shuffled...)
	for len(selected) < slotCount {
		selected = append(selected, pool[rng.Intn(len(pool))])
	}
	return selected, nil
}
