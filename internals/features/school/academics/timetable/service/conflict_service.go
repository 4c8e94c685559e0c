// file: internals/features/school/academics/timetable/service/conflict_service.go
package service

import "github.com/google/uuid"

/* =========================
   Types
   ========================= */

// TimeSlot is one weekly occurrence: day_of_week 1..6, minutes since
// midnight, half-open [StartMin, EndMin).
type TimeSlot struct {
	DayOfWeek int
	StartMin  int
	EndMin    int
}

// ScheduledActivity is an already-booked lesson on one resource.
type ScheduledActivity struct {
	LessonID uuid.UUID
	Label    string // e.g. "Matemática — 8A" for the conflict message
	Slots    []TimeSlot
}

// Conflict reports the first collision found.
type Conflict struct {
	LessonID uuid.UUID
	Label    string
	Proposed TimeSlot
	Existing TimeSlot
}

/* =========================
   Detection
   ========================= */

// Overlaps reports whether two slots collide. Half-open intervals: a slot
// ending 10:00 never collides with one starting 10:00.
func Overlaps(a, b TimeSlot) bool {
	if a.DayOfWeek != b.DayOfWeek {
		return false
	}
	return a.StartMin < b.EndMin && a.EndMin > b.StartMin
}

// FindConflict checks the proposed slots against every activity already
// booked on one resource and returns the first collision, or nil. Activities
// matching excludeID are skipped so an edit never collides with itself.
//
// Callers run this once per resource the lesson occupies (room, cohort).
func FindConflict(proposed []TimeSlot, existing []ScheduledActivity, excludeID uuid.UUID) *Conflict {
	if len(proposed) == 0 {
		return nil
	}
	for _, act := range existing {
		if excludeID != uuid.Nil && act.LessonID == excludeID {
			continue
		}
		for _, e := range act.Slots {
			for _, p := range proposed {
				if Overlaps(p, e) {
					return &Conflict{
						LessonID: act.LessonID,
						Label:    act.Label,
						Proposed: p,
						Existing: e,
					}
				}
			}
		}
	}
	return nil
}
