// file: internals/features/school/academics/evaluation/service/evaluation_service_test.go
package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var defaultPolicy = Policy{
	ExamWaiverAllowed:  true,
	WaiverThreshold:    14,
	ExclusionThreshold: 7,
}

func fp(t *testing.T, o Outcome) float64 {
	t.Helper()
	require.NotNil(t, o.FinalGrade)
	return *o.FinalGrade
}

func TestEvaluate_NoContinuousGrades(t *testing.T) {
	cases := []struct {
		name   string
		scores []Score
	}{
		{"empty", nil},
		{"only exam", []Score{{KindExam, 18}}},
		{"exam and resit", []Score{{KindExam, 18}, {KindResit, 19}}},
		{"unknown kind", []Score{{AssessmentKind("oral"), 12}}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			out := Evaluate(tc.scores, defaultPolicy)
			assert.False(t, out.HasContinuousGrades)
			assert.Nil(t, out.ContinuousAverage)
			assert.Nil(t, out.FinalGrade)
			assert.Equal(t, StatusPending, out.Status)
			assert.False(t, out.RequiresExam)
		})
	}
}

func TestEvaluate_ExclusionIsTerminal(t *testing.T) {
	// average 5 < exclusion 7, even with a high exam supplied
	out := Evaluate([]Score{
		{KindFirstPartial, 4},
		{KindSecondPartial, 6},
		{KindExam, 18},
	}, defaultPolicy)

	assert.True(t, out.IsExcluded)
	assert.Equal(t, StatusExcluded, out.Status)
	assert.True(t, out.Status.Terminal())
	assert.InDelta(t, 5.0, fp(t, out), 1e-9)
	assert.True(t, out.ExamInputLocked())
	assert.True(t, out.ResitInputLocked())
}

func TestEvaluate_WaiverBeatsExam(t *testing.T) {
	// average 15 >= waiver 14: exempt; the exam score is ignored
	out := Evaluate([]Score{
		{KindFirstPartial, 14},
		{KindSecondPartial, 16},
		{KindExam, 3},
	}, defaultPolicy)

	assert.True(t, out.IsExempt)
	assert.Equal(t, StatusExempt, out.Status)
	assert.Equal(t, "Exempt/Pass", out.Status.Label())
	assert.InDelta(t, 15.0, fp(t, out), 1e-9)
	assert.True(t, out.ExamInputLocked())
}

func TestEvaluate_WaiverDisabled(t *testing.T) {
	p := defaultPolicy
	p.ExamWaiverAllowed = false

	out := Evaluate([]Score{
		{KindFirstPartial, 15},
		{KindSecondPartial, 15},
	}, p)

	assert.False(t, out.IsExempt)
	assert.True(t, out.RequiresExam)
	assert.Equal(t, StatusAwaitingExam, out.Status)
	assert.Nil(t, out.FinalGrade)
}

func TestEvaluate_WaiverBoundaryInclusive(t *testing.T) {
	// average exactly at the waiver threshold earns the exemption
	out := Evaluate([]Score{
		{KindFirstPartial, 14},
		{KindSecondPartial, 14},
	}, defaultPolicy)
	assert.True(t, out.IsExempt)

	// average exactly at the exclusion threshold is NOT excluded
	out = Evaluate([]Score{
		{KindFirstPartial, 7},
		{KindSecondPartial, 7},
	}, defaultPolicy)
	assert.False(t, out.IsExcluded)
	assert.True(t, out.RequiresExam)
}

func TestEvaluate_ExamPass(t *testing.T) {
	// average 9, exam 13 → final 11, pass
	out := Evaluate([]Score{
		{KindFirstPartial, 9},
		{KindSecondPartial, 9},
		{KindExam, 13},
	}, defaultPolicy)

	assert.Equal(t, StatusPass, out.Status)
	assert.InDelta(t, 11.0, fp(t, out), 1e-9)
	assert.False(t, out.RequiresResit)
}

func TestEvaluate_ExamFailThenResit(t *testing.T) {
	scores := []Score{
		{KindFirstPartial, 9},
		{KindSecondPartial, 9},
		{KindExam, 8},
	}

	// average 9, exam 8 → final 8.5, resit required
	out := Evaluate(scores, defaultPolicy)
	assert.Equal(t, StatusResitRequired, out.Status)
	assert.True(t, out.RequiresResit)
	assert.False(t, out.ResitInputLocked())
	assert.InDelta(t, 8.5, fp(t, out), 1e-9)

	// resit 14 replaces the exam → final 11.5, pass
	out = Evaluate(append(scores, Score{KindResit, 14}), defaultPolicy)
	assert.Equal(t, StatusPass, out.Status)
	assert.InDelta(t, 11.5, fp(t, out), 1e-9)

	// resit 9 → final 9, terminal fail
	out = Evaluate(append(scores, Score{KindResit, 9}), defaultPolicy)
	assert.Equal(t, StatusFail, out.Status)
	assert.True(t, out.Status.Terminal())
	assert.InDelta(t, 9.0, fp(t, out), 1e-9)
	assert.True(t, out.ResitInputLocked())
}

func TestEvaluate_ResitIgnoredWhenExamPassed(t *testing.T) {
	out := Evaluate([]Score{
		{KindFirstPartial, 10},
		{KindSecondPartial, 10},
		{KindExam, 12},
		{KindResit, 2},
	}, defaultPolicy)

	assert.Equal(t, StatusPass, out.Status)
	assert.InDelta(t, 11.0, fp(t, out), 1e-9)
}

func TestEvaluate_PassBoundaryUsesUnroundedValue(t *testing.T) {
	// average 9.9, exam 10.0 → final 9.95: below 10, not rounded up
	out := Evaluate([]Score{
		{KindCoursework, 9.9},
		{KindExam, 10.0},
	}, defaultPolicy)

	assert.Equal(t, StatusResitRequired, out.Status)
	assert.InDelta(t, 9.95, fp(t, out), 1e-9)
}

func TestEvaluate_DuplicateKindLastWins(t *testing.T) {
	out := Evaluate([]Score{
		{KindCoursework, 2},
		{KindCoursework, 16},
	}, defaultPolicy)

	require.NotNil(t, out.ContinuousAverage)
	assert.InDelta(t, 16.0, *out.ContinuousAverage, 1e-9)
	assert.True(t, out.IsExempt)
}

func TestEvaluate_OutOfRangeValuesPropagate(t *testing.T) {
	// engine computes as given; the input form owns range enforcement
	out := Evaluate([]Score{
		{KindFirstPartial, 25},
		{KindSecondPartial, 25},
	}, defaultPolicy)

	require.NotNil(t, out.ContinuousAverage)
	assert.InDelta(t, 25.0, *out.ContinuousAverage, 1e-9)
	assert.True(t, out.IsExempt)
}

func TestEvaluate_PartialContinuousSet(t *testing.T) {
	// a single coursework mark is enough to form the average
	out := Evaluate([]Score{{KindCoursework, 12}}, defaultPolicy)

	assert.True(t, out.HasContinuousGrades)
	require.NotNil(t, out.ContinuousAverage)
	assert.InDelta(t, 12.0, *out.ContinuousAverage, 1e-9)
	assert.Equal(t, StatusAwaitingExam, out.Status)
}
