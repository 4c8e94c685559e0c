// file: internals/features/school/academics/enrollments/model/enrollment_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type EnrollmentModel struct {
	// PK
	EnrollmentID uuid.UUID `gorm:"column:enrollment_id;type:uuid;default:gen_random_uuid();primaryKey" json:"enrollment_id"`

	// Tenant
	EnrollmentSchoolID uuid.UUID `gorm:"column:enrollment_school_id;type:uuid;not null;index" json:"enrollment_school_id"`

	// Student record lives in the external record store; only the reference
	// and a display snapshot are kept here.
	EnrollmentStudentID   uuid.UUID `gorm:"column:enrollment_student_id;type:uuid;not null" json:"enrollment_student_id"`
	EnrollmentStudentName string    `gorm:"column:enrollment_student_name;type:varchar(160);not null" json:"enrollment_student_name"`

	EnrollmentClassID   uuid.UUID `gorm:"column:enrollment_class_id;type:uuid;not null;index" json:"enrollment_class_id"`
	EnrollmentSubjectID uuid.UUID `gorm:"column:enrollment_subject_id;type:uuid;not null;index" json:"enrollment_subject_id"`

	// Subject snapshot at enrollment time (name + policy), filled by backend
	EnrollmentSubjectSnapshot datatypes.JSONMap `gorm:"column:enrollment_subject_snapshot;type:jsonb;not null" json:"enrollment_subject_snapshot"`

	// Audit
	EnrollmentCreatedAt time.Time      `gorm:"column:enrollment_created_at;type:timestamptz;not null;autoCreateTime" json:"enrollment_created_at"`
	EnrollmentUpdatedAt time.Time      `gorm:"column:enrollment_updated_at;type:timestamptz;not null;autoUpdateTime" json:"enrollment_updated_at"`
	EnrollmentDeletedAt gorm.DeletedAt `gorm:"column:enrollment_deleted_at;index" json:"enrollment_deleted_at,omitempty"`
}

func (EnrollmentModel) TableName() string { return "enrollments" }

// Guard: snapshot column is NOT NULL
func (m *EnrollmentModel) BeforeSave(tx *gorm.DB) error {
	if m.EnrollmentSubjectSnapshot == nil {
		m.EnrollmentSubjectSnapshot = datatypes.JSONMap{}
	}
	return nil
}
