// file: internals/features/school/academics/timetable/service/conflict_service_test.go
package service

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func slot(day, start, end int) TimeSlot {
	return TimeSlot{DayOfWeek: day, StartMin: start, EndMin: end}
}

func TestOverlaps(t *testing.T) {
	tests := []struct {
		name string
		a, b TimeSlot
		want bool
	}{
		{"different days", slot(1, 480, 600), slot(2, 480, 600), false},
		{"plain overlap", slot(1, 480, 600), slot(1, 540, 660), true},
		{"contained", slot(1, 480, 600), slot(1, 500, 560), true},
		{"identical", slot(1, 480, 600), slot(1, 480, 600), true},
		{"back to back", slot(1, 480, 600), slot(1, 600, 720), false},
		{"back to back reversed", slot(1, 600, 720), slot(1, 480, 600), false},
		{"one minute overlap", slot(1, 480, 601), slot(1, 600, 720), true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Overlaps(tt.a, tt.b))
			assert.Equal(t, tt.want, Overlaps(tt.b, tt.a))
		})
	}
}

func TestFindConflict_EmptyInputs(t *testing.T) {
	booked := []ScheduledActivity{
		{LessonID: uuid.New(), Label: "Matemática — 8A", Slots: []TimeSlot{slot(1, 480, 600)}},
	}

	assert.Nil(t, FindConflict(nil, booked, uuid.Nil))
	assert.Nil(t, FindConflict([]TimeSlot{slot(1, 480, 600)}, nil, uuid.Nil))

	// activity with no slots never collides
	empty := []ScheduledActivity{{LessonID: uuid.New(), Label: "Física — 9B"}}
	assert.Nil(t, FindConflict([]TimeSlot{slot(1, 480, 600)}, empty, uuid.Nil))
}

func TestFindConflict_ReportsFirstHit(t *testing.T) {
	first := uuid.New()
	second := uuid.New()
	booked := []ScheduledActivity{
		{LessonID: first, Label: "Matemática — 8A", Slots: []TimeSlot{slot(1, 480, 600)}}, // Mon 08:00–10:00
		{LessonID: second, Label: "Física — 8A", Slots: []TimeSlot{slot(1, 540, 660)}},    // Mon 09:00–11:00
	}

	c := FindConflict([]TimeSlot{slot(1, 540, 660)}, booked, uuid.Nil)
	require.NotNil(t, c)
	assert.Equal(t, first, c.LessonID)
	assert.Equal(t, "Matemática — 8A", c.Label)
	assert.Equal(t, slot(1, 480, 600), c.Existing)
	assert.Equal(t, slot(1, 540, 660), c.Proposed)
}

func TestFindConflict_BackToBackAllowed(t *testing.T) {
	booked := []ScheduledActivity{
		{LessonID: uuid.New(), Label: "Matemática — 8A", Slots: []TimeSlot{slot(1, 480, 600)}},
	}

	// Mon 10:00–12:00 right after Mon 08:00–10:00
	assert.Nil(t, FindConflict([]TimeSlot{slot(1, 600, 720)}, booked, uuid.Nil))
}

func TestFindConflict_ExcludeSelfOnEdit(t *testing.T) {
	self := uuid.New()
	other := uuid.New()
	booked := []ScheduledActivity{
		{LessonID: self, Label: "Matemática — 8A", Slots: []TimeSlot{slot(1, 480, 600)}},
		{LessonID: other, Label: "Física — 8A", Slots: []TimeSlot{slot(3, 480, 600)}},
	}

	// shrinking its own window must not collide with the stored row
	assert.Nil(t, FindConflict([]TimeSlot{slot(1, 480, 570)}, booked, self))

	// but it still collides with everything else
	c := FindConflict([]TimeSlot{slot(3, 500, 560)}, booked, self)
	require.NotNil(t, c)
	assert.Equal(t, other, c.LessonID)
}

func TestFindConflict_MultiSlotProposal(t *testing.T) {
	booked := []ScheduledActivity{
		{LessonID: uuid.New(), Label: "Química — 10C", Slots: []TimeSlot{
			slot(2, 420, 480), // Tue 07:00–08:00
			slot(4, 600, 720), // Thu 10:00–12:00
		}},
	}

	proposed := []TimeSlot{
		slot(2, 480, 540), // Tue 08:00–09:00, back to back — fine
		slot(4, 660, 780), // Thu 11:00–13:00 — collides
	}

	c := FindConflict(proposed, booked, uuid.Nil)
	require.NotNil(t, c)
	assert.Equal(t, slot(4, 600, 720), c.Existing)
	assert.Equal(t, slot(4, 660, 780), c.Proposed)
}
