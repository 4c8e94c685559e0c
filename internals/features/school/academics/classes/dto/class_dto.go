// file: internals/features/school/academics/classes/dto/class_dto.go
package dto

import (
	"strings"
	"time"

	"github.com/google/uuid"

	m "escola_backend/internals/features/school/academics/classes/model"
)

/* ========================= Requests ========================= */

type CreateClassRequest struct {
	ClassName         string  `json:"class_name" validate:"required,min=1,max=80"`
	ClassLevel        *int    `json:"class_level" validate:"omitempty,min=1,max=13"`
	ClassAcademicYear *string `json:"class_academic_year" validate:"omitempty,max=20"`
	ClassCapacity     *int    `json:"class_capacity" validate:"omitempty,min=1,max=200"`
	ClassIsActive     *bool   `json:"class_is_active"`
}

func (r *CreateClassRequest) Normalize() {
	r.ClassName = strings.TrimSpace(r.ClassName)
	if r.ClassAcademicYear != nil {
		v := strings.TrimSpace(*r.ClassAcademicYear)
		if v == "" {
			r.ClassAcademicYear = nil
		} else {
			r.ClassAcademicYear = &v
		}
	}
}

func (r CreateClassRequest) ToModel(schoolID uuid.UUID) m.ClassModel {
	isActive := true
	if r.ClassIsActive != nil {
		isActive = *r.ClassIsActive
	}
	return m.ClassModel{
		ClassSchoolID:     schoolID,
		ClassName:         r.ClassName,
		ClassLevel:        r.ClassLevel,
		ClassAcademicYear: r.ClassAcademicYear,
		ClassCapacity:     r.ClassCapacity,
		ClassIsActive:     isActive,
	}
}

type UpdateClassRequest struct {
	ClassName         *string `json:"class_name" validate:"omitempty,min=1,max=80"`
	ClassLevel        *int    `json:"class_level" validate:"omitempty,min=1,max=13"`
	ClassAcademicYear *string `json:"class_academic_year" validate:"omitempty,max=20"`
	ClassCapacity     *int    `json:"class_capacity" validate:"omitempty,min=1,max=200"`
	ClassIsActive     *bool   `json:"class_is_active"`
}

func (r UpdateClassRequest) Apply(existing *m.ClassModel) {
	if r.ClassName != nil {
		existing.ClassName = strings.TrimSpace(*r.ClassName)
	}
	if r.ClassLevel != nil {
		existing.ClassLevel = r.ClassLevel
	}
	if r.ClassAcademicYear != nil {
		v := strings.TrimSpace(*r.ClassAcademicYear)
		if v == "" {
			existing.ClassAcademicYear = nil
		} else {
			existing.ClassAcademicYear = &v
		}
	}
	if r.ClassCapacity != nil {
		existing.ClassCapacity = r.ClassCapacity
	}
	if r.ClassIsActive != nil {
		existing.ClassIsActive = *r.ClassIsActive
	}
}

/* ========================= Response ========================= */

type ClassResponse struct {
	ClassID           uuid.UUID `json:"class_id"`
	ClassSchoolID     uuid.UUID `json:"class_school_id"`
	ClassName         string    `json:"class_name"`
	ClassLevel        *int      `json:"class_level,omitempty"`
	ClassAcademicYear *string   `json:"class_academic_year,omitempty"`
	ClassCapacity     *int      `json:"class_capacity,omitempty"`
	ClassIsActive     bool      `json:"class_is_active"`
	ClassCreatedAt    time.Time `json:"class_created_at"`
	ClassUpdatedAt    time.Time `json:"class_updated_at"`
}

func FromModel(cl m.ClassModel) ClassResponse {
	return ClassResponse{
		ClassID:           cl.ClassID,
		ClassSchoolID:     cl.ClassSchoolID,
		ClassName:         cl.ClassName,
		ClassLevel:        cl.ClassLevel,
		ClassAcademicYear: cl.ClassAcademicYear,
		ClassCapacity:     cl.ClassCapacity,
		ClassIsActive:     cl.ClassIsActive,
		ClassCreatedAt:    cl.ClassCreatedAt,
		ClassUpdatedAt:    cl.ClassUpdatedAt,
	}
}

func FromModels(rows []m.ClassModel) []ClassResponse {
	out := make([]ClassResponse, 0, len(rows))
	for _, cl := range rows {
		out = append(out, FromModel(cl))
	}
	return out
}
