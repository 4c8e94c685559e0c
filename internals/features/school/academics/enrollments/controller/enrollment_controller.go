// file: internals/features/school/academics/enrollments/controller/enrollment_controller.go
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

	d "escola_backend/internals/features/school/academics/enrollments/dto"
	m "escola_backend/internals/features/school/academics/enrollments/model"
	subjectModel "escola_backend/internals/features/school/academics/subjects/model"
	helper "escola_backend/internals/helpers"
	helperAuth "escola_backend/internals/helpers/auth"
)

type EnrollmentController struct {
	DB       *gorm.DB
	Validate *validator.Validate
}

func New(db *gorm.DB, v *validator.Validate) *EnrollmentController {
	return &EnrollmentController{DB: db, Validate: v}
}

func parseUUIDParam(c *fiber.Ctx, name string) (uuid.UUID, error) {
	idStr := strings.TrimSpace(c.Params(name))
	if idStr == "" {
		return uuid.Nil, fmt.Errorf("%s is required", name)
	}
	return uuid.Parse(idStr)
}

/* ========================= Create ========================= */

func (ctl *EnrollmentController) Create(c *fiber.Ctx) error {
	if !(helperAuth.IsOwner(c) || helperAuth.IsAdmin(c) || helperAuth.IsTeacher(c)) {
		return helper.JsonError(c, http.StatusForbidden, "Access denied")
	}

	var req d.CreateEnrollmentRequest
	if err := c.BodyParser(&req); err != nil {
		log.Printf("[Enrollment.Create] BodyParser error: %v", err)
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

	// subject must exist in the same school; its policy goes into the snapshot
	var subject subjectModel.SubjectModel
	if err := ctl.DB.WithContext(c.Context()).
		Where("subject_id = ? AND subject_school_id = ?", req.EnrollmentSubjectID, schoolID).
		First(&subject).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, http.StatusBadRequest, "subject not found in school")
		}
		return helper.WritePGError(c, err)
	}

	model := req.ToModel(schoolID, subject)
	if err := ctl.DB.WithContext(c.Context()).Create(&model).Error; err != nil {
		log.Printf("[Enrollment.Create] DB.Create error: %v", err)
		return helper.WritePGError(c, err)
	}

	return helper.JsonCreated(c, "Enrollment created", d.FromModel(model))
}

/* ========================= Soft Delete ========================= */

func (ctl *EnrollmentController) Delete(c *fiber.Ctx) error {
	if !(helperAuth.IsOwner(c) || helperAuth.IsAdmin(c)) {
		return helper.JsonError(c, http.StatusForbidden, "Access denied")
	}

	id, err := parseUUIDParam(c, "id")
	if err != nil {
		return helper.JsonError(c, http.StatusBadRequest, err.Error())
	}

	schoolID, err := helperAuth.GetSchoolIDFromToken(c)
	if err != nil {
		return err
	}

	var existing m.EnrollmentModel
	if err := ctl.DB.WithContext(c.Context()).
		Where("enrollment_id = ? AND enrollment_school_id = ?", id, schoolID).
		First(&existing).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, http.StatusNotFound, "enrollment not found")
		}
		return helper.WritePGError(c, err)
	}

	if err := ctl.DB.WithContext(c.Context()).Delete(&existing).Error; err != nil {
		return helper.WritePGError(c, err)
	}

	return helper.JsonDeleted(c, "Enrollment deleted", d.FromModel(existing))
}

/* ========================= List ========================= */

func (ctl *EnrollmentController) List(c *fiber.Ctx) error {
	schoolID, err := helperAuth.GetSchoolIDFromToken(c)
	if err != nil {
		return err
	}

	paging := helper.ResolvePaging(c, 20, 200)

	q := ctl.DB.WithContext(c.Context()).Model(&m.EnrollmentModel{}).
		Where("enrollment_school_id = ?", schoolID)

	if v := strings.TrimSpace(c.Query("class_id")); v != "" {
		if id, perr := uuid.Parse(v); perr == nil {
			q = q.Where("enrollment_class_id = ?", id)
		}
	}
	if v := strings.TrimSpace(c.Query("subject_id")); v != "" {
		if id, perr := uuid.Parse(v); perr == nil {
			q = q.Where("enrollment_subject_id = ?", id)
		}
	}
	if s := strings.TrimSpace(c.Query("search")); s != "" {
		q = q.Where("enrollment_student_name ILIKE ?", "%"+s+"%")
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return helper.WritePGError(c, err)
	}

	var rows []m.EnrollmentModel
	if err := q.Order("enrollment_student_name ASC").
		Offset(paging.Offset).Limit(paging.Limit).
		Find(&rows).Error; err != nil {
		return helper.WritePGError(c, err)
	}

	pg := helper.BuildPaginationFromPage(total, paging.Page, paging.PerPage)
	return helper.JsonList(c, "ok", d.FromModels(rows), pg)
}
