// file: internals/features/school/academics/subjects/model/subject_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type SubjectModel struct {
	// PK
	SubjectID uuid.UUID `gorm:"column:subject_id;type:uuid;default:gen_random_uuid();primaryKey" json:"subject_id"`

	// Tenant
	SubjectSchoolID uuid.UUID `gorm:"column:subject_school_id;type:uuid;not null;index" json:"subject_school_id"`

	// Identity
	SubjectCode string  `gorm:"column:subject_code;type:varchar(40);not null" json:"subject_code"`
	SubjectName string  `gorm:"column:subject_name;type:varchar(120);not null" json:"subject_name"`
	SubjectDesc *string `gorm:"column:subject_desc;type:text" json:"subject_desc,omitempty"`

	// Evaluation policy (0–20 scale), read-only input for the engine.
	// Invariant: 0 <= exclusion <= waiver <= 20 (checked at the DTO).
	SubjectExamWaiverAllowed  bool    `gorm:"column:subject_exam_waiver_allowed;not null;default:true" json:"subject_exam_waiver_allowed"`
	SubjectWaiverThreshold    float64 `gorm:"column:subject_waiver_threshold;type:numeric(4,1);not null;default:14" json:"subject_waiver_threshold"`
	SubjectExclusionThreshold float64 `gorm:"column:subject_exclusion_threshold;type:numeric(4,1);not null;default:7" json:"subject_exclusion_threshold"`

	SubjectIsActive bool `gorm:"column:subject_is_active;not null;default:true" json:"subject_is_active"`

	// Audit
	SubjectCreatedAt time.Time      `gorm:"column:subject_created_at;type:timestamptz;not null;autoCreateTime" json:"subject_created_at"`
	SubjectUpdatedAt time.Time      `gorm:"column:subject_updated_at;type:timestamptz;not null;autoUpdateTime" json:"subject_updated_at"`
	SubjectDeletedAt gorm.DeletedAt `gorm:"column:subject_deleted_at;index" json:"subject_deleted_at,omitempty"`
}

func (SubjectModel) TableName() string { return "subjects" }
