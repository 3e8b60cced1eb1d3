package models

import "sort"

// Goal is a target weight set by an account. Later goals supersede earlier
// ones; only the newest row's TargetDate is ever updated.
type Goal struct {
	ID         int64
	UserID     int64
	Value      int
	TargetDate Day // empty when not set
}

// WeightEntry is a dated measurement. GoalValue is a copy of the goal in
// effect when the entry was recorded and does not follow later goals.
type WeightEntry struct {
	ID        int64
	UserID    int64
	Date      Day
	Weight    int
	GoalValue int
}

// Progress summarizes where an account stands against its current goal.
type Progress struct {
	Latest     WeightEntry
	Goal       int
	TargetDate Day

	// Remaining is Latest.Weight - Goal. Positive means above the goal.
	Remaining int
}

// SortByDate orders entries chronologically in place. Entries on the same day
// keep their insertion order.
func SortByDate(entries []WeightEntry) {
	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].Date < entries[j].Date
	})
}
