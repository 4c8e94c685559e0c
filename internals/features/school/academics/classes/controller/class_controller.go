// file: internals/features/school/academics/classes/controller/class_controller.go
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

	d "escola_backend/internals/features/school/academics/classes/dto"
	m "escola_backend/internals/features/school/academics/classes/model"
	helper "escola_backend/internals/helpers"
	helperAuth "escola_backend/internals/helpers/auth"
)

type ClassController struct {
	DB       *gorm.DB
	Validate *validator.Validate
}

func New(db *gorm.DB, v *validator.Validate) *ClassController {
	return &ClassController{DB: db, Validate: v}
}

func parseUUIDParam(c *fiber.Ctx, name string) (uuid.UUID, error) {
	idStr := strings.TrimSpace(c.Params(name))
	if idStr == "" {
		return uuid.Nil, fmt.Errorf("%s is required", name)
	}
	return uuid.Parse(idStr)
}

func (ctl *ClassController) Create(c *fiber.Ctx) error {
	if !(helperAuth.IsOwner(c) || helperAuth.IsAdmin(c)) {
		return helper.JsonError(c, http.StatusForbidden, "Access denied")
	}

	var req d.CreateClassRequest
	if err := c.BodyParser(&req); err != nil {
		log.Printf("[Class.Create] BodyParser error: %v", err)
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

	model := req.ToModel(schoolID)
	if err := ctl.DB.WithContext(c.Context()).Create(&model).Error; err != nil {
		log.Printf("[Class.Create] DB.Create error: %v", err)
		return helper.WritePGError(c, err)
	}

	return helper.JsonCreated(c, "Class created", d.FromModel(model))
}

func (ctl *ClassController) Patch(c *fiber.Ctx) error {
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

	var existing m.ClassModel
	if err := ctl.DB.WithContext(c.Context()).
		Where("class_id = ? AND class_school_id = ?", id, schoolID).
		First(&existing).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, http.StatusNotFound, "class not found")
		}
		return helper.WritePGError(c, err)
	}

	var req d.UpdateClassRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, http.StatusBadRequest, err.Error())
	}
	if ctl.Validate != nil {
		if err := ctl.Validate.Struct(req); err != nil {
			return helper.JsonError(c, http.StatusBadRequest, err.Error())
		}
	}
	req.Apply(&existing)

	if err := ctl.DB.WithContext(c.Context()).Save(&existing).Error; err != nil {
		return helper.WritePGError(c, err)
	}

	return helper.JsonUpdated(c, "Class updated", d.FromModel(existing))
}

func (ctl *ClassController) Delete(c *fiber.Ctx) error {
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

	var existing m.ClassModel
	if err := ctl.DB.WithContext(c.Context()).
		Where("class_id = ? AND class_school_id = ?", id, schoolID).
		First(&existing).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, http.StatusNotFound, "class not found")
		}
		return helper.WritePGError(c, err)
	}

	if err := ctl.DB.WithContext(c.Context()).Delete(&existing).Error; err != nil {
		return helper.WritePGError(c, err)
	}

	return helper.JsonDeleted(c, "Class deleted", d.FromModel(existing))
}

func (ctl *ClassController) List(c *fiber.Ctx) error {
	schoolID, err := helperAuth.GetSchoolIDFromToken(c)
	if err != nil {
		qid, perr := uuid.Parse(strings.TrimSpace(c.Query("school_id")))
		if perr != nil {
			return err
		}
		schoolID = qid
	}

	paging := helper.ResolvePaging(c, 20, 200)

	q := ctl.DB.WithContext(c.Context()).Model(&m.ClassModel{}).
		Where("class_school_id = ?", schoolID)

	if s := strings.TrimSpace(c.Query("search")); s != "" {
		q = q.Where("class_name ILIKE ?", "%"+s+"%")
	}
	if v := strings.TrimSpace(c.Query("academic_year")); v != "" {
		q = q.Where("class_academic_year = ?", v)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return helper.WritePGError(c, err)
	}

	var rows []m.ClassModel
	if err := q.Order("class_name ASC").
		Offset(paging.Offset).Limit(paging.Limit).
		Find(&rows).Error; err != nil {
		return helper.WritePGError(c, err)
	}

	pg := helper.BuildPaginationFromPage(total, paging.Page, paging.PerPage)
	return helper.JsonList(c, "ok", d.FromModels(rows), pg)
}
