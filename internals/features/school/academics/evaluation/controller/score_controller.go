// file: internals/features/school/academics/evaluation/controller/score_controller.go
package controller

import (
	"errors"
	"fmt"
	"log"
	"net/http"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	d "escola_backend/internals/features/school/academics/evaluation/dto"
	m "escola_backend/internals/features/school/academics/evaluation/model"
	svc "escola_backend/internals/features/school/academics/evaluation/service"

	enrollmentModel "escola_backend/internals/features/school/academics/enrollments/model"
	subjectModel "escola_backend/internals/features/school/academics/subjects/model"
	helper "escola_backend/internals/helpers"
	helperAuth "escola_backend/internals/helpers/auth"
)

/* =========================
   Controller & Constructor
   ========================= */

type EvaluationController struct {
	DB       *gorm.DB
	Validate *validator.Validate
}

func New(db *gorm.DB, v *validator.Validate) *EvaluationController {
	return &EvaluationController{DB: db, Validate: v}
}

func parseUUIDParam(c *fiber.Ctx, name string) (uuid.UUID, error) {
	idStr := strings.TrimSpace(c.Params(name))
	if idStr == "" {
		return uuid.Nil, fmt.Errorf("%s is required", name)
	}
	return uuid.Parse(idStr)
}

/* =========================
   Internal loaders
   ========================= */

func policyFromSubject(s subjectModel.SubjectModel) svc.Policy {
	return svc.Policy{
		ExamWaiverAllowed:  s.SubjectExamWaiverAllowed,
		WaiverThreshold:    s.SubjectWaiverThreshold,
		ExclusionThreshold: s.SubjectExclusionThreshold,
	}
}

func scoresToEngine(rows []m.AssessmentScoreModel) []svc.Score {
	out := make([]svc.Score, 0, len(rows))
	for _, r := range rows {
		out = append(out, svc.Score{
			Kind:  svc.AssessmentKind(r.AssessmentScoreKind),
			Value: r.AssessmentScoreValue,
		})
	}
	return out
}

func (ctl *EvaluationController) loadEnrollment(c *fiber.Ctx, id, schoolID uuid.UUID) (*enrollmentModel.EnrollmentModel, error) {
	var enr enrollmentModel.EnrollmentModel
	if err := ctl.DB.WithContext(c.Context()).
		Where("enrollment_id = ? AND enrollment_school_id = ?", id, schoolID).
		First(&enr).Error; err != nil {
		return nil, err
	}
	return &enr, nil
}

func (ctl *EvaluationController) loadPolicy(c *fiber.Ctx, subjectID, schoolID uuid.UUID) (svc.Policy, error) {
	var subject subjectModel.SubjectModel
	if err := ctl.DB.WithContext(c.Context()).
		Where("subject_id = ? AND subject_school_id = ?", subjectID, schoolID).
		First(&subject).Error; err != nil {
		return svc.Policy{}, err
	}
	return policyFromSubject(subject), nil
}

func (ctl *EvaluationController) loadScores(c *fiber.Ctx, enrollmentID uuid.UUID) ([]m.AssessmentScoreModel, error) {
	var rows []m.AssessmentScoreModel
	err := ctl.DB.WithContext(c.Context()).
		Where("assessment_score_enrollment_id = ?", enrollmentID).
		Order("assessment_score_updated_at ASC").
		Find(&rows).Error
	return rows, err
}

/* =========================
   Upsert score
   ========================= */

// Upsert writes one score keyed by (enrollment, kind) — the latest write for
// a kind overwrites the previous one — and returns the recomputed outcome so
// the form can lock/unlock inputs without a second round trip.
func (ctl *EvaluationController) Upsert(c *fiber.Ctx) error {
	if !(helperAuth.IsOwner(c) || helperAuth.IsAdmin(c) || helperAuth.IsTeacher(c)) {
		return helper.JsonError(c, http.StatusForbidden, "Access denied")
	}

	var req d.UpsertScoreRequest
	if err := c.BodyParser(&req); err != nil {
		log.Printf("[Evaluation.Upsert] BodyParser error: %v", err)
		return helper.JsonError(c, http.StatusBadRequest, err.Error())
	}
	req.Normalize()

	schoolID, err := helperAuth.GetSchoolIDFromToken(c)
	if err != nil {
		return err
	}

	if ctl.Validate != nil {
		if err := ctl.Validate.Struct(req); err != nil {
			return helper.JsonError(c, http.StatusBadRequest, err.Error())
		}
	}

	enr, err := ctl.loadEnrollment(c, req.ScoreEnrollmentID, schoolID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, http.StatusNotFound, "enrollment not found")
		}
		return helper.WritePGError(c, err)
	}

	policy, err := ctl.loadPolicy(c, enr.EnrollmentSubjectID, schoolID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, http.StatusNotFound, "subject not found")
		}
		return helper.WritePGError(c, err)
	}

	// The form disables locked inputs; reject writes that bypass it.
	existing, err := ctl.loadScores(c, enr.EnrollmentID)
	if err != nil {
		return helper.WritePGError(c, err)
	}
	current := svc.Evaluate(scoresToEngine(existing), policy)
	switch req.Kind() {
	case svc.KindExam:
		if current.ExamInputLocked() {
			return helper.JsonError(c, http.StatusConflict, "Exam input is locked for this enrollment ("+current.Status.Label()+")")
		}
	case svc.KindResit:
		if current.ResitInputLocked() {
			return helper.JsonError(c, http.StatusConflict, "Resit input is locked: no resit is pending")
		}
	}

	model := req.ToModel(schoolID)

	// idempotent upsert on (enrollment, kind)
	if err := ctl.DB.WithContext(c.Context()).
		Clauses(clause.OnConflict{
			Columns: []clause.Column{
				{Name: "assessment_score_enrollment_id"},
				{Name: "assessment_score_kind"},
			},
			DoUpdates: clause.AssignmentColumns([]string{
				"assessment_score_value",
				"assessment_score_updated_at",
			}),
		}).
		Create(&model).Error; err != nil {
		log.Printf("[Evaluation.Upsert] DB.Create error: %v", err)
		return helper.WritePGError(c, err)
	}

	rows, err := ctl.loadScores(c, enr.EnrollmentID)
	if err != nil {
		return helper.WritePGError(c, err)
	}
	outcome := svc.Evaluate(scoresToEngine(rows), policy)

	return helper.JsonCreated(c, "Score saved", fiber.Map{
		"score":   d.ScoreFromModel(model),
		"outcome": d.OutcomeFromService(outcome),
	})
}

/* =========================
   Outcome (single enrollment)
   ========================= */

// Outcome recomputes the evaluation on every read; nothing is cached because
// scores can change at any time before term close.
func (ctl *EvaluationController) Outcome(c *fiber.Ctx) error {
	id, err := parseUUIDParam(c, "id")
	if err != nil {
		return helper.JsonError(c, http.StatusBadRequest, err.Error())
	}

	schoolID, err := helperAuth.GetSchoolIDFromToken(c)
	if err != nil {
		return err
	}

	enr, err := ctl.loadEnrollment(c, id, schoolID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, http.StatusNotFound, "enrollment not found")
		}
		return helper.WritePGError(c, err)
	}

	policy, err := ctl.loadPolicy(c, enr.EnrollmentSubjectID, schoolID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, http.StatusNotFound, "subject not found")
		}
		return helper.WritePGError(c, err)
	}

	rows, err := ctl.loadScores(c, enr.EnrollmentID)
	if err != nil {
		return helper.WritePGError(c, err)
	}

	outcome := svc.Evaluate(scoresToEngine(rows), policy)

	return helper.JsonOK(c, "ok", fiber.Map{
		"enrollment_id": enr.EnrollmentID,
		"student_name":  enr.EnrollmentStudentName,
		"scores":        d.ScoresFromModels(rows),
		"outcome":       d.OutcomeFromService(outcome),
	})
}

/* =========================
   Grade sheet (per class)
   ========================= */

// GradeSheet feeds the printable per-class report: one row per enrollee with
// scores and the derived outcome.
func (ctl *EvaluationController) GradeSheet(c *fiber.Ctx) error {
	classID, err := parseUUIDParam(c, "id")
	if err != nil {
		return helper.JsonError(c, http.StatusBadRequest, err.Error())
	}

	schoolID, err := helperAuth.GetSchoolIDFromToken(c)
	if err != nil {
		return err
	}

	var enrollments []enrollmentModel.EnrollmentModel
	q := ctl.DB.WithContext(c.Context()).
		Where("enrollment_school_id = ? AND enrollment_class_id = ?", schoolID, classID)
	if v := strings.TrimSpace(c.Query("subject_id")); v != "" {
		if sid, perr := uuid.Parse(v); perr == nil {
			q = q.Where("enrollment_subject_id = ?", sid)
		}
	}
	if err := q.Order("enrollment_student_name ASC").Find(&enrollments).Error; err != nil {
		return helper.WritePGError(c, err)
	}

	if len(enrollments) == 0 {
		return helper.JsonOK(c, "ok", []d.GradeSheetRow{})
	}

	// one fetch per table, grouped in memory
	enrollmentIDs := make([]uuid.UUID, 0, len(enrollments))
	subjectIDs := make(map[uuid.UUID]struct{}, 4)
	for _, e := range enrollments {
		enrollmentIDs = append(enrollmentIDs, e.EnrollmentID)
		subjectIDs[e.EnrollmentSubjectID] = struct{}{}
	}

	var scoreRows []m.AssessmentScoreModel
	if err := ctl.DB.WithContext(c.Context()).
		Where("assessment_score_school_id = ? AND assessment_score_enrollment_id IN ?", schoolID, enrollmentIDs).
		Order("assessment_score_updated_at ASC").
		Find(&scoreRows).Error; err != nil {
		return helper.WritePGError(c, err)
	}
	scoresByEnrollment := make(map[uuid.UUID][]m.AssessmentScoreModel, len(enrollments))
	for _, s := range scoreRows {
		scoresByEnrollment[s.AssessmentScoreEnrollmentID] = append(scoresByEnrollment[s.AssessmentScoreEnrollmentID], s)
	}

	sids := make([]uuid.UUID, 0, len(subjectIDs))
	for id := range subjectIDs {
		sids = append(sids, id)
	}
	var subjects []subjectModel.SubjectModel
	if err := ctl.DB.WithContext(c.Context()).
		Where("subject_school_id = ? AND subject_id IN ?", schoolID, sids).
		Find(&subjects).Error; err != nil {
		return helper.WritePGError(c, err)
	}
	policyBySubject := make(map[uuid.UUID]svc.Policy, len(subjects))
	for _, s := range subjects {
		policyBySubject[s.SubjectID] = policyFromSubject(s)
	}

	rows := make([]d.GradeSheetRow, 0, len(enrollments))
	for _, e := range enrollments {
		scores := scoresByEnrollment[e.EnrollmentID]
		outcome := svc.Evaluate(scoresToEngine(scores), policyBySubject[e.EnrollmentSubjectID])
		rows = append(rows, d.GradeSheetRow{
			EnrollmentID: e.EnrollmentID,
			StudentID:    e.EnrollmentStudentID,
			StudentName:  e.EnrollmentStudentName,
			Scores:       d.ScoresFromModels(scores),
			Outcome:      d.OutcomeFromService(outcome),
		})
	}

	return helper.JsonOK(c, "ok", rows)
}
