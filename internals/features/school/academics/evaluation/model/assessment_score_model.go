// file: internals/features/school/academics/evaluation/model/assessment_score_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type AssessmentScoreModel struct {
	// PK
	AssessmentScoreID uuid.UUID `gorm:"column:assessment_score_id;type:uuid;default:gen_random_uuid();primaryKey" json:"assessment_score_id"`

	// Tenant
	AssessmentScoreSchoolID uuid.UUID `gorm:"column:assessment_score_school_id;type:uuid;not null;index" json:"assessment_score_school_id"`

	// Idempotent upsert key: unique (enrollment, kind) on alive rows
	AssessmentScoreEnrollmentID uuid.UUID `gorm:"column:assessment_score_enrollment_id;type:uuid;not null;uniqueIndex:uq_assessment_scores_enrollment_kind" json:"assessment_score_enrollment_id"`
	AssessmentScoreKind         string    `gorm:"column:assessment_score_kind;type:assessment_kind_enum;not null;uniqueIndex:uq_assessment_scores_enrollment_kind" json:"assessment_score_kind"`

	// 0–20 scale; the range is enforced by the input DTO, not the engine
	AssessmentScoreValue float64 `gorm:"column:assessment_score_value;type:numeric(4,1);not null" json:"assessment_score_value"`

	// Audit
	AssessmentScoreCreatedAt time.Time      `gorm:"column:assessment_score_created_at;type:timestamptz;not null;autoCreateTime" json:"assessment_score_created_at"`
	AssessmentScoreUpdatedAt time.Time      `gorm:"column:assessment_score_updated_at;type:timestamptz;not null;autoUpdateTime" json:"assessment_score_updated_at"`
	AssessmentScoreDeletedAt gorm.DeletedAt `gorm:"column:assessment_score_deleted_at;index" json:"assessment_score_deleted_at,omitempty"`
}

func (AssessmentScoreModel) TableName() string { return "assessment_scores" }
