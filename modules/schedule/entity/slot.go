package entity

// SlotCount pairs a slot label with the number of participants
// available for it.
type SlotCount struct {
	Slot  string `json:"slot"`
	Count int    `json:"count"`
}

// DaySummary is the aggregation result for one date: the slots every
// participant can attend, and the majority slots ranked by count.
type DaySummary struct {
	Date    string      `json:"date"`
	Common  []string    `json:"common"`
	Popular []SlotCount `json:"popular"`
}

// Recommendation is the single best date and slot set across the
// event's date range.
type Recommendation struct {
	Date              string   `json:"date"`
	Slots             []string `json:"slots"`
	AvailableCount    int      `json:"available_count"`
	TotalParticipants int      `json:"total_participants"`
	AllAvailable      bool     `json:"all_available"`
}
