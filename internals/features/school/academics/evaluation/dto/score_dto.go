// file: internals/features/school/academics/evaluation/dto/score_dto.go
package dto

import (
	"math"
	"strings"
	"time"

	"github.com/google/uuid"

	m "escola_backend/internals/features/school/academics/evaluation/model"
	svc "escola_backend/internals/features/school/academics/evaluation/service"
)

/* =========================================================
   1) REQUESTS
   ========================================================= */

type UpsertScoreRequest struct {
	ScoreEnrollmentID uuid.UUID `json:"assessment_score_enrollment_id" validate:"required"`
	ScoreKind         string    `json:"assessment_score_kind" validate:"required,oneof=first_partial second_partial coursework exam resit"`
	ScoreValue        float64   `json:"assessment_score_value" validate:"min=0,max=20"`
}

func (r *UpsertScoreRequest) Normalize() {
	r.ScoreKind = strings.ToLower(strings.TrimSpace(r.ScoreKind))
}

func (r UpsertScoreRequest) Kind() svc.AssessmentKind {
	return svc.AssessmentKind(r.ScoreKind)
}

func (r UpsertScoreRequest) ToModel(schoolID uuid.UUID) m.AssessmentScoreModel {
	return m.AssessmentScoreModel{
		AssessmentScoreSchoolID:     schoolID,
		AssessmentScoreEnrollmentID: r.ScoreEnrollmentID,
		AssessmentScoreKind:         r.ScoreKind,
		AssessmentScoreValue:        r.ScoreValue,
	}
}

/* =========================================================
   2) RESPONSES
   ========================================================= */

type ScoreResponse struct {
	AssessmentScoreID           uuid.UUID `json:"assessment_score_id"`
	AssessmentScoreEnrollmentID uuid.UUID `json:"assessment_score_enrollment_id"`
	AssessmentScoreKind         string    `json:"assessment_score_kind"`
	AssessmentScoreValue        float64   `json:"assessment_score_value"`
	AssessmentScoreUpdatedAt    time.Time `json:"assessment_score_updated_at"`
}

func ScoreFromModel(s m.AssessmentScoreModel) ScoreResponse {
	return ScoreResponse{
		AssessmentScoreID:           s.AssessmentScoreID,
		AssessmentScoreEnrollmentID: s.AssessmentScoreEnrollmentID,
		AssessmentScoreKind:         s.AssessmentScoreKind,
		AssessmentScoreValue:        s.AssessmentScoreValue,
		AssessmentScoreUpdatedAt:    s.AssessmentScoreUpdatedAt,
	}
}

func ScoresFromModels(rows []m.AssessmentScoreModel) []ScoreResponse {
	out := make([]ScoreResponse, 0, len(rows))
	for _, s := range rows {
		out = append(out, ScoreFromModel(s))
	}
	return out
}

// OutcomeResponse renders a derived evaluation outcome. The *_display fields
// are rounded to one decimal for presentation only; pass/fail decisions use
// the unrounded values inside the engine.
type OutcomeResponse struct {
	HasContinuousGrades bool     `json:"has_continuous_grades"`
	ContinuousAverage   *float64 `json:"continuous_average,omitempty"`
	ContinuousDisplay   *float64 `json:"continuous_average_display,omitempty"`

	IsExcluded    bool `json:"is_excluded"`
	IsExempt      bool `json:"is_exempt"`
	RequiresExam  bool `json:"requires_exam"`
	RequiresResit bool `json:"requires_resit"`

	FinalGrade        *float64 `json:"final_grade,omitempty"`
	FinalGradeDisplay *float64 `json:"final_grade_display,omitempty"`

	Status      string `json:"status"`
	StatusLabel string `json:"status_label"`

	ExamInputLocked  bool `json:"exam_input_locked"`
	ResitInputLocked bool `json:"resit_input_locked"`
}

func round1(v *float64) *float64 {
	if v == nil {
		return nil
	}
	r := math.Round(*v*10) / 10
	return &r
}

func OutcomeFromService(o svc.Outcome) OutcomeResponse {
	return OutcomeResponse{
		HasContinuousGrades: o.HasContinuousGrades,
		ContinuousAverage:   o.ContinuousAverage,
		ContinuousDisplay:   round1(o.ContinuousAverage),
		IsExcluded:          o.IsExcluded,
		IsExempt:            o.IsExempt,
		RequiresExam:        o.RequiresExam,
		RequiresResit:       o.RequiresResit,
		FinalGrade:          o.FinalGrade,
		FinalGradeDisplay:   round1(o.FinalGrade),
		Status:              string(o.Status),
		StatusLabel:         o.Status.Label(),
		ExamInputLocked:     o.ExamInputLocked(),
		ResitInputLocked:    o.ResitInputLocked(),
	}
}

// GradeSheetRow is one enrollee line of the printable grade sheet.
type GradeSheetRow struct {
	EnrollmentID uuid.UUID       `json:"enrollment_id"`
	StudentID    uuid.UUID       `json:"student_id"`
	StudentName  string          `json:"student_name"`
	Scores       []ScoreResponse `json:"scores"`
	Outcome      OutcomeResponse `json:"outcome"`
}
