// file: internals/features/school/academics/timetable/dto/lesson_dto.go
package dto

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	m "escola_backend/internals/features/school/academics/timetable/model"
	svc "escola_backend/internals/features/school/academics/timetable/service"
)

var (
	ErrBadTimeFormat = errors.New("time must be HH:mm")
	ErrSlotOrder     = errors.New("slot end must be after start")
	ErrBadWeekday    = errors.New("day_of_week must be between 1 (Monday) and 6 (Saturday)")
)

/* =========================
   Slot input
   ========================= */

type SlotInput struct {
	DayOfWeek int    `json:"day_of_week" validate:"required,min=1,max=6"`
	Start     string `json:"start" validate:"required"`
	End       string `json:"end" validate:"required"`
}

func parseHHMM(s string) (int, error) {
	t, err := time.Parse("15:04", strings.TrimSpace(s))
	if err != nil {
		return 0, ErrBadTimeFormat
	}
	return t.Hour()*60 + t.Minute(), nil
}

func minToHHMM(min int) string {
	return fmt.Sprintf("%02d:%02d", min/60, min%60)
}

// TimeSlot validates and converts one input to engine form.
func (in SlotInput) TimeSlot() (svc.TimeSlot, error) {
	if in.DayOfWeek < 1 || in.DayOfWeek > 6 {
		return svc.TimeSlot{}, ErrBadWeekday
	}
	start, err := parseHHMM(in.Start)
	if err != nil {
		return svc.TimeSlot{}, err
	}
	end, err := parseHHMM(in.End)
	if err != nil {
		return svc.TimeSlot{}, err
	}
	if end <= start {
		return svc.TimeSlot{}, ErrSlotOrder
	}
	return svc.TimeSlot{DayOfWeek: in.DayOfWeek, StartMin: start, EndMin: end}, nil
}

// ParseSlots converts and validates a full slot list.
func ParseSlots(inputs []SlotInput) ([]svc.TimeSlot, error) {
	out := make([]svc.TimeSlot, 0, len(inputs))
	for i, in := range inputs {
		ts, err := in.TimeSlot()
		if err != nil {
			return nil, fmt.Errorf("slot %d: %w", i+1, err)
		}
		out = append(out, ts)
	}
	return out, nil
}

/* =========================
   Requests
   ========================= */

type CreateLessonRequest struct {
	LessonClassID   uuid.UUID `json:"lesson_class_id" validate:"required"`
	LessonSubjectID uuid.UUID `json:"lesson_subject_id" validate:"required"`
	LessonRoomID    uuid.UUID `json:"lesson_room_id" validate:"required"`

	LessonTeacherName string `json:"lesson_teacher_name" validate:"omitempty,max=160"`

	Slots []SlotInput `json:"slots" validate:"required,min=1,dive"`
}

func (r *CreateLessonRequest) Normalize() {
	r.LessonTeacherName = strings.TrimSpace(r.LessonTeacherName)
}

// PatchLessonRequest replaces the slot set when Slots is present; refs are
// immutable after create (delete and recreate to move a lesson).
type PatchLessonRequest struct {
	LessonTeacherName *string     `json:"lesson_teacher_name" validate:"omitempty,max=160"`
	Slots             []SlotInput `json:"slots" validate:"omitempty,min=1,dive"`
}

func (r *PatchLessonRequest) Normalize() {
	if r.LessonTeacherName != nil {
		v := strings.TrimSpace(*r.LessonTeacherName)
		r.LessonTeacherName = &v
	}
}

/* =========================
   Responses
   ========================= */

type SlotResponse struct {
	LessonSlotID uuid.UUID `json:"lesson_slot_id"`
	DayOfWeek    int       `json:"day_of_week"`
	Start        string    `json:"start"`
	End          string    `json:"end"`
}

type LessonResponse struct {
	LessonID uuid.UUID `json:"lesson_id"`

	LessonClassID   uuid.UUID `json:"lesson_class_id"`
	LessonSubjectID uuid.UUID `json:"lesson_subject_id"`
	LessonRoomID    uuid.UUID `json:"lesson_room_id"`

	LessonClassName   string `json:"lesson_class_name"`
	LessonSubjectName string `json:"lesson_subject_name"`
	LessonRoomCode    string `json:"lesson_room_code"`
	LessonTeacherName string `json:"lesson_teacher_name,omitempty"`

	Slots []SlotResponse `json:"slots"`

	LessonCreatedAt time.Time `json:"lesson_created_at"`
	LessonUpdatedAt time.Time `json:"lesson_updated_at"`
}

func FromModel(l m.LessonModel) LessonResponse {
	slots := make([]SlotResponse, 0, len(l.LessonSlots))
	for _, s := range l.LessonSlots {
		slots = append(slots, SlotResponse{
			LessonSlotID: s.LessonSlotID,
			DayOfWeek:    s.LessonSlotDayOfWeek,
			Start:        minToHHMM(s.LessonSlotStartMin),
			End:          minToHHMM(s.LessonSlotEndMin),
		})
	}
	return LessonResponse{
		LessonID:          l.LessonID,
		LessonClassID:     l.LessonClassID,
		LessonSubjectID:   l.LessonSubjectID,
		LessonRoomID:      l.LessonRoomID,
		LessonClassName:   l.LessonClassName,
		LessonSubjectName: l.LessonSubjectName,
		LessonRoomCode:    l.LessonRoomCode,
		LessonTeacherName: l.LessonTeacherName,
		Slots:             slots,
		LessonCreatedAt:   l.LessonCreatedAt,
		LessonUpdatedAt:   l.LessonUpdatedAt,
	}
}

func FromModels(rows []m.LessonModel) []LessonResponse {
	out := make([]LessonResponse, 0, len(rows))
	for _, r := range rows {
		out = append(out, FromModel(r))
	}
	return out
}

/* =========================
   Conflict message
   ========================= */

var dayNames = [...]string{"", "Monday", "Tuesday", "Wednesday", "Thursday", "Friday", "Saturday"}

// ConflictMessage names the colliding lesson and slot for the 409 body.
func ConflictMessage(resource string, c svc.Conflict) string {
	day := ""
	if c.Existing.DayOfWeek >= 1 && c.Existing.DayOfWeek <= 6 {
		day = dayNames[c.Existing.DayOfWeek]
	}
	return fmt.Sprintf("Schedule conflict: %s is already booked by %s on %s %s–%s",
		resource, c.Label, day,
		minToHHMM(c.Existing.StartMin), minToHHMM(c.Existing.EndMin))
}
