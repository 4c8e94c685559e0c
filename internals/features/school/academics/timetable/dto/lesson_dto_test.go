// file: internals/features/school/academics/timetable/dto/lesson_dto_test.go
package dto

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	svc "escola_backend/internals/features/school/academics/timetable/service"
)

func TestSlotInput_TimeSlot(t *testing.T) {
	ts, err := SlotInput{DayOfWeek: 1, Start: "08:00", End: "10:00"}.TimeSlot()
	require.NoError(t, err)
	assert.Equal(t, svc.TimeSlot{DayOfWeek: 1, StartMin: 480, EndMin: 600}, ts)

	_, err = SlotInput{DayOfWeek: 0, Start: "08:00", End: "10:00"}.TimeSlot()
	assert.ErrorIs(t, err, ErrBadWeekday)

	_, err = SlotInput{DayOfWeek: 7, Start: "08:00", End: "10:00"}.TimeSlot()
	assert.ErrorIs(t, err, ErrBadWeekday)

	_, err = SlotInput{DayOfWeek: 2, Start: "10:00", End: "10:00"}.TimeSlot()
	assert.ErrorIs(t, err, ErrSlotOrder)

	_, err = SlotInput{DayOfWeek: 2, Start: "10:00", End: "09:00"}.TimeSlot()
	assert.ErrorIs(t, err, ErrSlotOrder)

	_, err = SlotInput{DayOfWeek: 2, Start: "25:00", End: "26:00"}.TimeSlot()
	assert.ErrorIs(t, err, ErrBadTimeFormat)

	_, err = SlotInput{DayOfWeek: 2, Start: "8am", End: "9am"}.TimeSlot()
	assert.ErrorIs(t, err, ErrBadTimeFormat)
}

func TestParseSlots_ReportsIndex(t *testing.T) {
	_, err := ParseSlots([]SlotInput{
		{DayOfWeek: 1, Start: "08:00", End: "09:00"},
		{DayOfWeek: 1, Start: "09:00", End: "08:30"},
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "slot 2")
	assert.ErrorIs(t, err, ErrSlotOrder)
}

func TestConflictMessage(t *testing.T) {
	msg := ConflictMessage("room B-12", svc.Conflict{
		Label:    "Matemática — 8A",
		Existing: svc.TimeSlot{DayOfWeek: 1, StartMin: 480, EndMin: 600},
	})
	assert.Equal(t, "Schedule conflict: room B-12 is already booked by Matemática — 8A on Monday 08:00–10:00", msg)
}
