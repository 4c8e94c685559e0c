// file: internals/features/school/academics/classes/model/class_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ClassModel struct {
	// PK
	ClassID uuid.UUID `gorm:"column:class_id;type:uuid;default:gen_random_uuid();primaryKey" json:"class_id"`

	// Tenant
	ClassSchoolID uuid.UUID `gorm:"column:class_school_id;type:uuid;not null;index" json:"class_school_id"`

	// Cohort name is the resource key for timetable conflict checks,
	// unique per school (partial unique index on alive rows).
	ClassName  string `gorm:"column:class_name;type:varchar(80);not null" json:"class_name"`
	ClassLevel *int   `gorm:"column:class_level;type:smallint" json:"class_level,omitempty"`

	ClassAcademicYear *string `gorm:"column:class_academic_year;type:varchar(20)" json:"class_academic_year,omitempty"`
	ClassCapacity     *int    `gorm:"column:class_capacity;type:smallint" json:"class_capacity,omitempty"`

	ClassIsActive bool `gorm:"column:class_is_active;not null;default:true" json:"class_is_active"`

	// Audit
	ClassCreatedAt time.Time      `gorm:"column:class_created_at;type:timestamptz;not null;autoCreateTime" json:"class_created_at"`
	ClassUpdatedAt time.Time      `gorm:"column:class_updated_at;type:timestamptz;not null;autoUpdateTime" json:"class_updated_at"`
	ClassDeletedAt gorm.DeletedAt `gorm:"column:class_deleted_at;index" json:"class_deleted_at,omitempty"`
}

func (ClassModel) TableName() string { return "classes" }
