// file: internals/features/school/academics/evaluation/service/evaluation_service.go
package service

/* =========================================================
   Assessment kinds
   ========================================================= */

type AssessmentKind string

const (
	KindFirstPartial  AssessmentKind = "first_partial"
	KindSecondPartial AssessmentKind = "second_partial"
	KindCoursework    AssessmentKind = "coursework"
	KindExam          AssessmentKind = "exam"
	KindResit         AssessmentKind = "resit"
)

func (k AssessmentKind) Valid() bool {
	switch k {
	case KindFirstPartial, KindSecondPartial, KindCoursework, KindExam, KindResit:
		return true
	}
	return false
}

// Continuous reports whether the kind counts toward the continuous average
// (in-term assessment, as opposed to exam/resit).
func (k AssessmentKind) Continuous() bool {
	switch k {
	case KindFirstPartial, KindSecondPartial, KindCoursework:
		return true
	}
	return false
}

/* =========================================================
   Inputs
   ========================================================= */

// Score is one numeric observation for an enrollment, on the 0–20 scale.
// The engine does not enforce the range; out-of-range values propagate.
type Score struct {
	Kind  AssessmentKind
	Value float64
}

// Policy is the subject's evaluation policy.
// Invariant (enforced upstream): 0 <= ExclusionThreshold <= WaiverThreshold <= 20.
type Policy struct {
	ExamWaiverAllowed  bool
	WaiverThreshold    float64
	ExclusionThreshold float64
}

// PassingGrade is the pass threshold on the 0–20 scale.
const PassingGrade = 10.0

/* =========================================================
   Outcome
   ========================================================= */

type Status string

const (
	StatusPending       Status = "pending"
	StatusExcluded      Status = "excluded"
	StatusExempt        Status = "exempt_pass"
	StatusAwaitingExam  Status = "awaiting_exam"
	StatusPass          Status = "pass"
	StatusResitRequired Status = "resit_required"
	StatusFail          Status = "fail"
)

func (s Status) Label() string {
	switch s {
	case StatusPending:
		return "Pending"
	case StatusExcluded:
		return "Excluded"
	case StatusExempt:
		return "Exempt/Pass"
	case StatusAwaitingExam:
		return "Awaiting Exam"
	case StatusPass:
		return "Pass"
	case StatusResitRequired:
		return "Resit Required"
	case StatusFail:
		return "Fail"
	}
	return string(s)
}

// Terminal reports whether no further score can change the outcome.
func (s Status) Terminal() bool {
	switch s {
	case StatusExcluded, StatusExempt, StatusPass, StatusFail:
		return true
	}
	return false
}

// Outcome is derived on every read, never stored.
type Outcome struct {
	HasContinuousGrades bool
	ContinuousAverage   *float64
	IsExcluded          bool
	IsExempt            bool
	RequiresExam        bool
	RequiresResit       bool
	FinalGrade          *float64
	Status              Status
}

// ExamInputLocked drives the grade-entry form: the exam field is disabled
// when the student is excluded or already exempt.
func (o Outcome) ExamInputLocked() bool {
	return o.IsExcluded || o.IsExempt
}

// ResitInputLocked: the resit field is enabled only while a resit is pending.
func (o Outcome) ResitInputLocked() bool {
	return !o.RequiresResit
}

/* =========================================================
   Engine
   ========================================================= */

// Evaluate turns raw assessment scores plus the subject policy into an
// academic outcome. Pure and total: it never errors, missing data yields a
// pending/neutral outcome. Duplicate kinds resolve last-wins, matching the
// upsert semantics of the score store. Unknown kinds are ignored.
func Evaluate(scores []Score, p Policy) Outcome {
	byKind := make(map[AssessmentKind]float64, len(scores))
	for _, s := range scores {
		if s.Kind.Valid() {
			byKind[s.Kind] = s.Value
		}
	}

	var sum float64
	var n int
	for k, v := range byKind {
		if k.Continuous() {
			sum += v
			n++
		}
	}

	// No continuous assessment yet: everything downstream is deferred.
	if n == 0 {
		return Outcome{Status: StatusPending}
	}

	avg := sum / float64(n)
	out := Outcome{
		HasContinuousGrades: true,
		ContinuousAverage:   &avg,
	}

	// Exclusion is terminal and beats everything, including late exam scores.
	if avg < p.ExclusionThreshold {
		out.IsExcluded = true
		out.FinalGrade = &avg
		out.Status = StatusExcluded
		return out
	}

	// Waiver: an earned exemption is not overridden by a late exam score.
	if p.ExamWaiverAllowed && avg >= p.WaiverThreshold {
		out.IsExempt = true
		out.FinalGrade = &avg
		out.Status = StatusExempt
		return out
	}

	out.RequiresExam = true

	exam, hasExam := byKind[KindExam]
	if !hasExam {
		out.Status = StatusAwaitingExam
		return out
	}

	final := (avg + exam) / 2
	out.FinalGrade = &final
	if final >= PassingGrade {
		out.Status = StatusPass
		return out
	}

	// Ordinary exam failed: one resit, final.
	resit, hasResit := byKind[KindResit]
	if !hasResit {
		out.RequiresResit = true
		out.Status = StatusResitRequired
		return out
	}

	retry := (avg + resit) / 2
	out.FinalGrade = &retry
	if retry >= PassingGrade {
		out.Status = StatusPass
		return out
	}
	out.Status = StatusFail
	return out
}
