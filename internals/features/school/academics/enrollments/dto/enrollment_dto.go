// file: internals/features/school/academics/enrollments/dto/enrollment_dto.go
package dto

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"

	m "escola_backend/internals/features/school/academics/enrollments/model"
	subjectModel "escola_backend/internals/features/school/academics/subjects/model"
)

/* ========================= Requests ========================= */

type CreateEnrollmentRequest struct {
	EnrollmentStudentID   uuid.UUID `json:"enrollment_student_id" validate:"required"`
	EnrollmentStudentName string    `json:"enrollment_student_name" validate:"required,min=1,max=160"`
	EnrollmentClassID     uuid.UUID `json:"enrollment_class_id" validate:"required"`
	EnrollmentSubjectID   uuid.UUID `json:"enrollment_subject_id" validate:"required"`
}

func (r *CreateEnrollmentRequest) Normalize() {
	r.EnrollmentStudentName = strings.TrimSpace(r.EnrollmentStudentName)
}

// Snapshot is built by the controller from the subject row.
func (r CreateEnrollmentRequest) ToModel(schoolID uuid.UUID, subject subjectModel.SubjectModel) m.EnrollmentModel {
	return m.EnrollmentModel{
		EnrollmentSchoolID:        schoolID,
		EnrollmentStudentID:       r.EnrollmentStudentID,
		EnrollmentStudentName:     r.EnrollmentStudentName,
		EnrollmentClassID:         r.EnrollmentClassID,
		EnrollmentSubjectID:       r.EnrollmentSubjectID,
		EnrollmentSubjectSnapshot: SubjectSnapshot(subject),
	}
}

func SubjectSnapshot(s subjectModel.SubjectModel) datatypes.JSONMap {
	return datatypes.JSONMap{
		"subject_code":                s.SubjectCode,
		"subject_name":                s.SubjectName,
		"subject_exam_waiver_allowed": s.SubjectExamWaiverAllowed,
		"subject_waiver_threshold":    s.SubjectWaiverThreshold,
		"subject_exclusion_threshold": s.SubjectExclusionThreshold,
	}
}

/* ========================= Response ========================= */

type EnrollmentResponse struct {
	EnrollmentID              uuid.UUID         `json:"enrollment_id"`
	EnrollmentSchoolID        uuid.UUID         `json:"enrollment_school_id"`
	EnrollmentStudentID       uuid.UUID         `json:"enrollment_student_id"`
	EnrollmentStudentName     string            `json:"enrollment_student_name"`
	EnrollmentClassID         uuid.UUID         `json:"enrollment_class_id"`
	EnrollmentSubjectID       uuid.UUID         `json:"enrollment_subject_id"`
	EnrollmentSubjectSnapshot datatypes.JSONMap `json:"enrollment_subject_snapshot"`
	EnrollmentCreatedAt       time.Time         `json:"enrollment_created_at"`
	EnrollmentUpdatedAt       time.Time         `json:"enrollment_updated_at"`
}

func FromModel(e m.EnrollmentModel) EnrollmentResponse {
	return EnrollmentResponse{
		EnrollmentID:              e.EnrollmentID,
		EnrollmentSchoolID:        e.EnrollmentSchoolID,
		EnrollmentStudentID:       e.EnrollmentStudentID,
		EnrollmentStudentName:     e.EnrollmentStudentName,
		EnrollmentClassID:         e.EnrollmentClassID,
		EnrollmentSubjectID:       e.EnrollmentSubjectID,
		EnrollmentSubjectSnapshot: e.EnrollmentSubjectSnapshot,
		EnrollmentCreatedAt:       e.EnrollmentCreatedAt,
		EnrollmentUpdatedAt:       e.EnrollmentUpdatedAt,
	}
}

func FromModels(rows []m.EnrollmentModel) []EnrollmentResponse {
	out := make([]EnrollmentResponse, 0, len(rows))
	for _, e := range rows {
		out = append(out, FromModel(e))
	}
	return out
}
