// file: internals/features/school/academics/subjects/dto/subject_dto.go
package dto

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"

	m "escola_backend/internals/features/school/academics/subjects/model"
)

var ErrPolicyOrder = errors.New("policy thresholds must satisfy 0 <= exclusion <= waiver <= 20")

/* =========================================================
   1) REQUESTS
   ========================================================= */

type CreateSubjectRequest struct {
	SubjectCode string  `json:"subject_code" validate:"required,min=1,max=40"`
	SubjectName string  `json:"subject_name" validate:"required,min=1,max=120"`
	SubjectDesc *string `json:"subject_desc" validate:"omitempty,max=2000"`

	SubjectExamWaiverAllowed  *bool    `json:"subject_exam_waiver_allowed"`
	SubjectWaiverThreshold    *float64 `json:"subject_waiver_threshold" validate:"omitempty,min=0,max=20"`
	SubjectExclusionThreshold *float64 `json:"subject_exclusion_threshold" validate:"omitempty,min=0,max=20"`

	SubjectIsActive *bool `json:"subject_is_active"`
}

func (r *CreateSubjectRequest) Normalize() {
	r.SubjectCode = strings.TrimSpace(r.SubjectCode)
	r.SubjectName = strings.TrimSpace(r.SubjectName)
	if r.SubjectDesc != nil {
		v := strings.TrimSpace(*r.SubjectDesc)
		if v == "" {
			r.SubjectDesc = nil
		} else {
			r.SubjectDesc = &v
		}
	}
}

// schoolID is forced by the controller from the token scope.
func (r CreateSubjectRequest) ToModel(schoolID uuid.UUID) (m.SubjectModel, error) {
	waiverAllowed := true
	if r.SubjectExamWaiverAllowed != nil {
		waiverAllowed = *r.SubjectExamWaiverAllowed
	}
	// UI defaults on the 0–20 scale
	waiver := 14.0
	if r.SubjectWaiverThreshold != nil {
		waiver = *r.SubjectWaiverThreshold
	}
	exclusion := 7.0
	if r.SubjectExclusionThreshold != nil {
		exclusion = *r.SubjectExclusionThreshold
	}
	if exclusion > waiver {
		return m.SubjectModel{}, ErrPolicyOrder
	}

	isActive := true
	if r.SubjectIsActive != nil {
		isActive = *r.SubjectIsActive
	}

	return m.SubjectModel{
		SubjectSchoolID:           schoolID,
		SubjectCode:               r.SubjectCode,
		SubjectName:               r.SubjectName,
		SubjectDesc:               r.SubjectDesc,
		SubjectExamWaiverAllowed:  waiverAllowed,
		SubjectWaiverThreshold:    waiver,
		SubjectExclusionThreshold: exclusion,
		SubjectIsActive:           isActive,
	}, nil
}

type UpdateSubjectRequest struct {
	SubjectCode *string `json:"subject_code" validate:"omitempty,min=1,max=40"`
	SubjectName *string `json:"subject_name" validate:"omitempty,min=1,max=120"`
	SubjectDesc *string `json:"subject_desc" validate:"omitempty,max=2000"`

	SubjectExamWaiverAllowed  *bool    `json:"subject_exam_waiver_allowed"`
	SubjectWaiverThreshold    *float64 `json:"subject_waiver_threshold" validate:"omitempty,min=0,max=20"`
	SubjectExclusionThreshold *float64 `json:"subject_exclusion_threshold" validate:"omitempty,min=0,max=20"`

	SubjectIsActive *bool `json:"subject_is_active"`
}

func (r UpdateSubjectRequest) Apply(existing *m.SubjectModel) error {
	if r.SubjectCode != nil {
		existing.SubjectCode = strings.TrimSpace(*r.SubjectCode)
	}
	if r.SubjectName != nil {
		existing.SubjectName = strings.TrimSpace(*r.SubjectName)
	}
	if r.SubjectDesc != nil {
		v := strings.TrimSpace(*r.SubjectDesc)
		if v == "" {
			existing.SubjectDesc = nil
		} else {
			existing.SubjectDesc = &v
		}
	}
	if r.SubjectExamWaiverAllowed != nil {
		existing.SubjectExamWaiverAllowed = *r.SubjectExamWaiverAllowed
	}
	if r.SubjectWaiverThreshold != nil {
		existing.SubjectWaiverThreshold = *r.SubjectWaiverThreshold
	}
	if r.SubjectExclusionThreshold != nil {
		existing.SubjectExclusionThreshold = *r.SubjectExclusionThreshold
	}
	if existing.SubjectExclusionThreshold > existing.SubjectWaiverThreshold {
		return ErrPolicyOrder
	}
	if r.SubjectIsActive != nil {
		existing.SubjectIsActive = *r.SubjectIsActive
	}
	return nil
}

/* =========================================================
   2) RESPONSE
   ========================================================= */

type SubjectResponse struct {
	SubjectID       uuid.UUID `json:"subject_id"`
	SubjectSchoolID uuid.UUID `json:"subject_school_id"`

	SubjectCode string  `json:"subject_code"`
	SubjectName string  `json:"subject_name"`
	SubjectDesc *string `json:"subject_desc,omitempty"`

	SubjectExamWaiverAllowed  bool    `json:"subject_exam_waiver_allowed"`
	SubjectWaiverThreshold    float64 `json:"subject_waiver_threshold"`
	SubjectExclusionThreshold float64 `json:"subject_exclusion_threshold"`

	SubjectIsActive bool `json:"subject_is_active"`

	SubjectCreatedAt time.Time `json:"subject_created_at"`
	SubjectUpdatedAt time.Time `json:"subject_updated_at"`
}

func FromModel(s m.SubjectModel) SubjectResponse {
	return SubjectResponse{
		SubjectID:                 s.SubjectID,
		SubjectSchoolID:           s.SubjectSchoolID,
		SubjectCode:               s.SubjectCode,
		SubjectName:               s.SubjectName,
		SubjectDesc:               s.SubjectDesc,
		SubjectExamWaiverAllowed:  s.SubjectExamWaiverAllowed,
		SubjectWaiverThreshold:    s.SubjectWaiverThreshold,
		SubjectExclusionThreshold: s.SubjectExclusionThreshold,
		SubjectIsActive:           s.SubjectIsActive,
		SubjectCreatedAt:          s.SubjectCreatedAt,
		SubjectUpdatedAt:          s.SubjectUpdatedAt,
	}
}

func FromModels(rows []m.SubjectModel) []SubjectResponse {
	out := make([]SubjectResponse, 0, len(rows))
	for _, s := range rows {
		out = append(out, FromModel(s))
	}
	return out
}
