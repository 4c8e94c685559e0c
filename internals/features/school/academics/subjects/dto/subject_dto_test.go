// file: internals/features/school/academics/subjects/dto/subject_dto_test.go
package dto

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	m "escola_backend/internals/features/school/academics/subjects/model"
)

func fptr(v float64) *float64 { return &v }
func bptr(v bool) *bool       { return &v }

func TestCreateSubjectRequest_ToModel_Defaults(t *testing.T) {
	schoolID := uuid.New()
	req := CreateSubjectRequest{SubjectCode: "MAT", SubjectName: "Matemática"}
	req.Normalize()

	model, err := req.ToModel(schoolID)
	require.NoError(t, err)
	assert.Equal(t, schoolID, model.SubjectSchoolID)
	assert.True(t, model.SubjectExamWaiverAllowed)
	assert.Equal(t, 14.0, model.SubjectWaiverThreshold)
	assert.Equal(t, 7.0, model.SubjectExclusionThreshold)
	assert.True(t, model.SubjectIsActive)
}

func TestCreateSubjectRequest_ToModel_PolicyOrder(t *testing.T) {
	req := CreateSubjectRequest{
		SubjectCode:               "FIS",
		SubjectName:               "Física",
		SubjectWaiverThreshold:    fptr(10),
		SubjectExclusionThreshold: fptr(12),
	}
	_, err := req.ToModel(uuid.New())
	assert.ErrorIs(t, err, ErrPolicyOrder)

	// equal thresholds are allowed
	req.SubjectExclusionThreshold = fptr(10)
	_, err = req.ToModel(uuid.New())
	assert.NoError(t, err)
}

func TestUpdateSubjectRequest_Apply_PolicyOrder(t *testing.T) {
	existing := m.SubjectModel{
		SubjectCode:               "QUI",
		SubjectName:               "Química",
		SubjectExamWaiverAllowed:  true,
		SubjectWaiverThreshold:    14,
		SubjectExclusionThreshold: 7,
		SubjectIsActive:           true,
	}

	// raising exclusion past the current waiver must fail
	err := UpdateSubjectRequest{SubjectExclusionThreshold: fptr(15)}.Apply(&existing)
	assert.ErrorIs(t, err, ErrPolicyOrder)

	// moving both together is fine
	err = UpdateSubjectRequest{
		SubjectWaiverThreshold:    fptr(16),
		SubjectExclusionThreshold: fptr(8),
		SubjectExamWaiverAllowed:  bptr(false),
	}.Apply(&existing)
	require.NoError(t, err)
	assert.Equal(t, 16.0, existing.SubjectWaiverThreshold)
	assert.Equal(t, 8.0, existing.SubjectExclusionThreshold)
	assert.False(t, existing.SubjectExamWaiverAllowed)
}
