package service

import (
	eventEntity "slotpoll/modules/event/entity"
	"slotpoll/modules/schedule/entity"
)

// Recommend picks the best meeting recommendation across dates.
//
// A date where everyone shares at least one slot always wins over any
// majority-only date. Among fully-common dates the one with the most
// common slots wins, earliest date on ties, and the whole common set is
// returned. Failing that, the single (date, slot) pair with the highest
// participant count among the surfaced popular slots wins, earliest
// date on ties. Nil means nothing qualified.
func (s *Scheduler) Recommend(dates []string, slots []string, participants []eventEntity.Participant) *entity.Recommendation {
	if len(dates) == 0 || len(participants) == 0 {
		return nil
	}

	total := len(participants)
	summaries := make([]entity.DaySummary, len(dates))
	for i, date := range dates {
		summaries[i] = s.Aggregate(slots, participants, date)
	}

	bestCommon := 0
	var commonDate string
	var commonSlots []string
	for _, summary := range summaries {
		// strictly greater keeps the earliest date on ties
		if len(summary.Common) > bestCommon {
			bestCommon = len(summary.Common)
			commonDate = summary.Date
			commonSlots = summary.Common
		}
	}
	if bestCommon > 0 {
		return &entity.Recommendation{
			Date:              commonDate,
			Slots:             commonSlots,
			AvailableCount:    total,
			TotalParticipants: total,
			AllAvailable:      true,
		}
	}

	bestCount := 0
	var popularDate, popularSlot string
	for _, summary := range summaries {
		if len(summary.Popular) == 0 {
			continue
		}
		if top := summary.Popular[0]; top.Count > bestCount {
			bestCount = top.Count
			popularDate = summary.Date
			popularSlot = top.Slot
		}
	}
	if bestCount > 0 {
		return &entity.Recommendation{
			Date:              popularDate,
			Slots:             []string{popularSlot},
			AvailableCount:    bestCount,
			TotalParticipants: total,
			AllAvailable:      false,
		}
	}

	return nil
}

// GapRecommendation surfaces the best popular slot the participant is
// not available for on date, the one worth nudging them about. Nil when
// they can already make every popular slot, or none exist.
func (s *Scheduler) GapRecommendation(p eventEntity.Participant, popular []entity.SlotCount, date string) *entity.SlotCount {
	for _, sc := range popular {
		if !p.IsAvailableAt(date, sc.Slot) {
			found := sc
			return &found
		}
	}
	return nil
}
