// file: internals/features/school/academics/rooms/controller/room_controller.go
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

	d "escola_backend/internals/features/school/academics/rooms/dto"
	m "escola_backend/internals/features/school/academics/rooms/model"
	helper "escola_backend/internals/helpers"
	helperAuth "escola_backend/internals/helpers/auth"
)

type RoomController struct {
	DB       *gorm.DB
	Validate *validator.Validate
}

func New(db *gorm.DB, v *validator.Validate) *RoomController {
	return &RoomController{DB: db, Validate: v}
}

func parseUUIDParam(c *fiber.Ctx, name string) (uuid.UUID, error) {
	idStr := strings.TrimSpace(c.Params(name))
	if idStr == "" {
		return uuid.Nil, fmt.Errorf("%s is required", name)
	}
	return uuid.Parse(idStr)
}

func (ctl *RoomController) Create(c *fiber.Ctx) error {
	if !(helperAuth.IsOwner(c) || helperAuth.IsAdmin(c)) {
		return helper.JsonError(c, http.StatusForbidden, "Access denied")
	}

	var req d.CreateRoomRequest
	if err := c.BodyParser(&req); err != nil {
		log.Printf("[Room.Create] BodyParser error: %v", err)
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
		log.Printf("[Room.Create] DB.Create error: %v", err)
		return helper.WritePGError(c, err)
	}

	return helper.JsonCreated(c, "Room created", d.FromModel(model))
}

func (ctl *RoomController) Patch(c *fiber.Ctx) error {
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

	var existing m.RoomModel
	if err := ctl.DB.WithContext(c.Context()).
		Where("room_id = ? AND room_school_id = ?", id, schoolID).
		First(&existing).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, http.StatusNotFound, "room not found")
		}
		return helper.WritePGError(c, err)
	}

	var req d.UpdateRoomRequest
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

	return helper.JsonUpdated(c, "Room updated", d.FromModel(existing))
}

func (ctl *RoomController) Delete(c *fiber.Ctx) error {
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

	var existing m.RoomModel
	if err := ctl.DB.WithContext(c.Context()).
		Where("room_id = ? AND room_school_id = ?", id, schoolID).
		First(&existing).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, http.StatusNotFound, "room not found")
		}
		return helper.WritePGError(c, err)
	}

	if err := ctl.DB.WithContext(c.Context()).Delete(&existing).Error; err != nil {
		return helper.WritePGError(c, err)
	}

	return helper.JsonDeleted(c, "Room deleted", d.FromModel(existing))
}

func (ctl *RoomController) List(c *fiber.Ctx) error {
	schoolID, err := helperAuth.GetSchoolIDFromToken(c)
	if err != nil {
		qid, perr := uuid.Parse(strings.TrimSpace(c.Query("school_id")))
		if perr != nil {
			return err
		}
		schoolID = qid
	}

	paging := helper.ResolvePaging(c, 20, 200)

	q := ctl.DB.WithContext(c.Context()).Model(&m.RoomModel{}).
		Where("room_school_id = ?", schoolID)

	if s := strings.TrimSpace(c.Query("search")); s != "" {
		like := "%" + s + "%"
		q = q.Where("room_name ILIKE ? OR room_code ILIKE ?", like, like)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return helper.WritePGError(c, err)
	}

	var rows []m.RoomModel
	if err := q.Order("room_code ASC").
		Offset(paging.Offset).Limit(paging.Limit).
		Find(&rows).Error; err != nil {
		return helper.WritePGError(c, err)
	}

	pg := helper.BuildPaginationFromPage(total, paging.Page, paging.PerPage)
	return helper.JsonList(c, "ok", d.FromModels(rows), pg)
}
