// file: internals/features/school/academics/subjects/controller/subject_controller.go
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

	d "escola_backend/internals/features/school/academics/subjects/dto"
	m "escola_backend/internals/features/school/academics/subjects/model"
	helper "escola_backend/internals/helpers"
	helperAuth "escola_backend/internals/helpers/auth"
)

/* =========================
   Controller & Constructor
   ========================= */

type SubjectController struct {
	DB       *gorm.DB
	Validate *validator.Validate
}

func New(db *gorm.DB, v *validator.Validate) *SubjectController {
	return &SubjectController{DB: db, Validate: v}
}

func parseUUIDParam(c *fiber.Ctx, name string) (uuid.UUID, error) {
	idStr := strings.TrimSpace(c.Params(name))
	if idStr == "" {
		return uuid.Nil, fmt.Errorf("%s is required", name)
	}
	return uuid.Parse(idStr)
}

/* =========================
   Create
   ========================= */

func (ctl *SubjectController) Create(c *fiber.Ctx) error {
	if !(helperAuth.IsOwner(c) || helperAuth.IsAdmin(c)) {
		return helper.JsonError(c, http.StatusForbidden, "Access denied")
	}

	var req d.CreateSubjectRequest
	if err := c.BodyParser(&req); err != nil {
		log.Printf("[Subject.Create] BodyParser error: %v", err)
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

	model, err := req.ToModel(schoolID)
	if err != nil {
		return helper.JsonError(c, http.StatusBadRequest, err.Error())
	}

	if err := ctl.DB.WithContext(c.Context()).Create(&model).Error; err != nil {
		log.Printf("[Subject.Create] DB.Create error: %v", err)
		return helper.WritePGError(c, err)
	}

	return helper.JsonCreated(c, "Subject created", d.FromModel(model))
}

/* =========================
   Patch (Partial)
   ========================= */

func (ctl *SubjectController) Patch(c *fiber.Ctx) error {
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

	var existing m.SubjectModel
	if err := ctl.DB.WithContext(c.Context()).
		Where("subject_id = ? AND subject_school_id = ?", id, schoolID).
		First(&existing).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, http.StatusNotFound, "subject not found")
		}
		return helper.WritePGError(c, err)
	}

	var req d.UpdateSubjectRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, http.StatusBadRequest, err.Error())
	}
	if ctl.Validate != nil {
		if err := ctl.Validate.Struct(req); err != nil {
			return helper.JsonError(c, http.StatusBadRequest, err.Error())
		}
	}
	if err := req.Apply(&existing); err != nil {
		return helper.JsonError(c, http.StatusBadRequest, err.Error())
	}

	if err := ctl.DB.WithContext(c.Context()).Save(&existing).Error; err != nil {
		return helper.WritePGError(c, err)
	}

	return helper.JsonUpdated(c, "Subject updated", d.FromModel(existing))
}

/* =========================
   Soft Delete
   ========================= */

func (ctl *SubjectController) Delete(c *fiber.Ctx) error {
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

	var existing m.SubjectModel
	if err := ctl.DB.WithContext(c.Context()).
		Where("subject_id = ? AND subject_school_id = ?", id, schoolID).
		First(&existing).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, http.StatusNotFound, "subject not found")
		}
		return helper.WritePGError(c, err)
	}

	// GORM soft delete → sets subject_deleted_at
	if err := ctl.DB.WithContext(c.Context()).Delete(&existing).Error; err != nil {
		return helper.WritePGError(c, err)
	}

	return helper.JsonDeleted(c, "Subject deleted", d.FromModel(existing))
}

/* =========================
   List
   ========================= */

func (ctl *SubjectController) List(c *fiber.Ctx) error {
	// token scope first; public mounts pass ?school_id=
	schoolID, err := helperAuth.GetSchoolIDFromToken(c)
	if err != nil {
		qid, perr := uuid.Parse(strings.TrimSpace(c.Query("school_id")))
		if perr != nil {
			return err
		}
		schoolID = qid
	}

	paging := helper.ResolvePaging(c, 20, 200)

	q := ctl.DB.WithContext(c.Context()).Model(&m.SubjectModel{}).
		Where("subject_school_id = ?", schoolID)

	if s := strings.TrimSpace(c.Query("search")); s != "" {
		like := "%" + s + "%"
		q = q.Where("subject_name ILIKE ? OR subject_code ILIKE ?", like, like)
	}
	if v := strings.TrimSpace(c.Query("is_active")); v != "" {
		q = q.Where("subject_is_active = ?", v == "true" || v == "1")
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return helper.WritePGError(c, err)
	}

	var rows []m.SubjectModel
	if err := q.Order("subject_name ASC").
		Offset(paging.Offset).Limit(paging.Limit).
		Find(&rows).Error; err != nil {
		return helper.WritePGError(c, err)
	}

	pg := helper.BuildPaginationFromPage(total, paging.Page, paging.PerPage)
	return helper.JsonList(c, "ok", d.FromModels(rows), pg)
}
