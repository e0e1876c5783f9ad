package service

import (
	"sort"

	eventEntity "slotpoll/modules/event/entity"
	"slotpoll/modules/schedule/entity"
)

// Scheduler implements availability aggregation over a slot universe.
type Scheduler struct{}

func NewScheduler() *Scheduler {
	return &Scheduler{}
}

// Aggregate computes per-slot availability counts for one date.
//
// Common holds the slots available to every participant. Popular holds
// slots available to a strict majority but not all, sorted by count
// descending; within equal counts the chronological slot order is kept.
// Slot labels outside the enumerated universe and dates a participant
// never marked are ignored during counting rather than failing the
// aggregation. Zero participants yields empty results, not an
// "everyone is free" universe.
func (s *Scheduler) Aggregate(slots []string, participants []eventEntity.Participant, date string) entity.DaySummary {
	summary := entity.DaySummary{
		Date:    date,
		Common:  []string{},
		Popular: []entity.SlotCount{},
	}

	if len(participants) == 0 {
		return summary
	}

	counts := make(map[string]int, len(slots))
	for _, slot := range slots {
		counts[slot] = 0
	}

	for i := range participants {
		for _, slot := range participants[i].SlotsOn(date) {
			if _, known := counts[slot]; known {
				counts[slot]++
			}
		}
	}

	total := len(participants)
	for _, slot := range slots {
		if counts[slot] == total {
			summary.Common = append(summary.Common, slot)
		}
	}

	popular := []entity.SlotCount{}
	for _, slot := range slots {
		if c := counts[slot]; c > 0 && c < total {
			popular = append(popular, entity.SlotCount{Slot: slot, Count: c})
		}
	}
	sort.SliceStable(popular, func(i, j int) bool {
		return popular[i].Count > popular[j].Count
	})

	// Surface only slots a majority can make: count >= ceil(total/2).
	threshold := (total + 1) / 2
	for _, sc := range popular {
		if sc.Count >= threshold {
			summary.Popular = append(summary.Popular, sc)
		}
	}

	return summary
}
