// file: internals/features/school/academics/timetable/model/lesson_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

/* =========================
   Lesson
   ========================= */

type LessonModel struct {
	// PK
	LessonID uuid.UUID `gorm:"column:lesson_id;type:uuid;default:gen_random_uuid();primaryKey" json:"lesson_id"`

	// Tenant
	LessonSchoolID uuid.UUID `gorm:"column:lesson_school_id;type:uuid;not null;index" json:"lesson_school_id"`

	// Refs
	LessonClassID   uuid.UUID `gorm:"column:lesson_class_id;type:uuid;not null;index" json:"lesson_class_id"`
	LessonSubjectID uuid.UUID `gorm:"column:lesson_subject_id;type:uuid;not null;index" json:"lesson_subject_id"`
	LessonRoomID    uuid.UUID `gorm:"column:lesson_room_id;type:uuid;not null;index" json:"lesson_room_id"`

	// Snapshots for conflict messages and listings (no join needed)
	LessonClassName   string `gorm:"column:lesson_class_name;type:varchar(80);not null" json:"lesson_class_name"`
	LessonSubjectName string `gorm:"column:lesson_subject_name;type:varchar(120);not null" json:"lesson_subject_name"`
	LessonRoomCode    string `gorm:"column:lesson_room_code;type:varchar(40);not null" json:"lesson_room_code"`

	LessonTeacherName string `gorm:"column:lesson_teacher_name;type:varchar(160)" json:"lesson_teacher_name,omitempty"`

	// Audit
	LessonCreatedAt time.Time      `gorm:"column:lesson_created_at;type:timestamptz;not null;autoCreateTime" json:"lesson_created_at"`
	LessonUpdatedAt time.Time      `gorm:"column:lesson_updated_at;type:timestamptz;not null;autoUpdateTime" json:"lesson_updated_at"`
	LessonDeletedAt gorm.DeletedAt `gorm:"column:lesson_deleted_at;index" json:"lesson_deleted_at,omitempty"`

	// Child slots
	LessonSlots []LessonSlotModel `gorm:"foreignKey:LessonSlotLessonID;references:LessonID" json:"lesson_slots,omitempty"`
}

func (LessonModel) TableName() string { return "lessons" }

/* =========================
   Lesson slot
   ========================= */

// One weekly occurrence. Minutes since midnight keep the overlap check on
// plain integer comparison; day_of_week is 1 (Monday) through 6 (Saturday).
type LessonSlotModel struct {
	LessonSlotID uuid.UUID `gorm:"column:lesson_slot_id;type:uuid;default:gen_random_uuid();primaryKey" json:"lesson_slot_id"`

	LessonSlotSchoolID uuid.UUID `gorm:"column:lesson_slot_school_id;type:uuid;not null;index" json:"lesson_slot_school_id"`
	LessonSlotLessonID uuid.UUID `gorm:"column:lesson_slot_lesson_id;type:uuid;not null;index" json:"lesson_slot_lesson_id"`

	LessonSlotDayOfWeek int `gorm:"column:lesson_slot_day_of_week;type:smallint;not null" json:"lesson_slot_day_of_week"`
	LessonSlotStartMin  int `gorm:"column:lesson_slot_start_min;type:smallint;not null" json:"lesson_slot_start_min"`
	LessonSlotEndMin    int `gorm:"column:lesson_slot_end_min;type:smallint;not null" json:"lesson_slot_end_min"`

	LessonSlotCreatedAt time.Time `gorm:"column:lesson_slot_created_at;type:timestamptz;not null;autoCreateTime" json:"lesson_slot_created_at"`
}

func (LessonSlotModel) TableName() string { return "lesson_slots" }
