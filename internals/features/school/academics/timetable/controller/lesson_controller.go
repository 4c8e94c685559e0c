// file: internals/features/school/academics/timetable/controller/lesson_controller.go
package controller

import (
	"errors"
	"fmt"
	"log"
	"net/http"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	classModel "escola_backend/internals/features/school/academics/classes/model"
	roomModel "escola_backend/internals/features/school/academics/rooms/model"
	subjectModel "escola_backend/internals/features/school/academics/subjects/model"
	d "escola_backend/internals/features/school/academics/timetable/dto"
	m "escola_backend/internals/features/school/academics/timetable/model"
	svc "escola_backend/internals/features/school/academics/timetable/service"
	helper "escola_backend/internals/helpers"
	helperAuth "escola_backend/internals/helpers/auth"
)

/* =========================
   Controller & Constructor
   ========================= */

type LessonController struct {
	DB       *gorm.DB
	Validate *validator.Validate
}

func New(db *gorm.DB, v *validator.Validate) *LessonController {
	return &LessonController{DB: db, Validate: v}
}

func parseUUIDParam(c *fiber.Ctx, name string) (uuid.UUID, error) {
	idStr := strings.TrimSpace(c.Params(name))
	if idStr == "" {
		return uuid.Nil, fmt.Errorf("%s is required", name)
	}
	return uuid.Parse(idStr)
}

/* =========================
   Booked-activity loaders
   ========================= */

// bookedActivities loads every lesson (with slots) occupying one resource.
// resourceCol is a lessons column; both checks share this loader.
func bookedActivities(tx *gorm.DB, schoolID uuid.UUID, resourceCol string, resourceID uuid.UUID) ([]svc.ScheduledActivity, error) {
	var lessons []m.LessonModel
	if err := tx.
		Preload("LessonSlots").
		Where("lesson_school_id = ? AND "+resourceCol+" = ?", schoolID, resourceID).
		Find(&lessons).Error; err != nil {
		return nil, err
	}

	out := make([]svc.ScheduledActivity, 0, len(lessons))
	for _, l := range lessons {
		act := svc.ScheduledActivity{
			LessonID: l.LessonID,
			Label:    l.LessonSubjectName + " — " + l.LessonClassName,
			Slots:    make([]svc.TimeSlot, 0, len(l.LessonSlots)),
		}
		for _, s := range l.LessonSlots {
			act.Slots = append(act.Slots, svc.TimeSlot{
				DayOfWeek: s.LessonSlotDayOfWeek,
				StartMin:  s.LessonSlotStartMin,
				EndMin:    s.LessonSlotEndMin,
			})
		}
		out = append(out, act)
	}
	return out, nil
}

// checkBothResources runs the detector once for the room and once for the
// cohort. A lesson occupies both; either collision blocks the write.
func checkBothResources(tx *gorm.DB, schoolID uuid.UUID, lesson *m.LessonModel, proposed []svc.TimeSlot, excludeID uuid.UUID) error {
	roomActs, err := bookedActivities(tx, schoolID, "lesson_room_id", lesson.LessonRoomID)
	if err != nil {
		return err
	}
	if c := svc.FindConflict(proposed, roomActs, excludeID); c != nil {
		return fiber.NewError(fiber.StatusConflict, d.ConflictMessage("room "+lesson.LessonRoomCode, *c))
	}

	classActs, err := bookedActivities(tx, schoolID, "lesson_class_id", lesson.LessonClassID)
	if err != nil {
		return err
	}
	if c := svc.FindConflict(proposed, classActs, excludeID); c != nil {
		return fiber.NewError(fiber.StatusConflict, d.ConflictMessage("class "+lesson.LessonClassName, *c))
	}
	return nil
}

func slotModels(schoolID, lessonID uuid.UUID, slots []svc.TimeSlot) []m.LessonSlotModel {
	out := make([]m.LessonSlotModel, 0, len(slots))
	for _, s := range slots {
		out = append(out, m.LessonSlotModel{
			LessonSlotSchoolID:  schoolID,
			LessonSlotLessonID:  lessonID,
			LessonSlotDayOfWeek: s.DayOfWeek,
			LessonSlotStartMin:  s.StartMin,
			LessonSlotEndMin:    s.EndMin,
		})
	}
	return out
}

/* =========================
   Handlers
   ========================= */

func (ctl *LessonController) Create(c *fiber.Ctx) error {
	if !(helperAuth.IsOwner(c) || helperAuth.IsAdmin(c)) {
		return helper.JsonError(c, http.StatusForbidden, "Access denied")
	}

	var req d.CreateLessonRequest
	if err := c.BodyParser(&req); err != nil {
		log.Printf("[Lesson.Create] BodyParser error: %v", err)
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

	proposed, err := d.ParseSlots(req.Slots)
	if err != nil {
		return helper.JsonError(c, http.StatusBadRequest, err.Error())
	}

	// snapshots
	var class classModel.ClassModel
	if err := ctl.DB.WithContext(c.Context()).
		Where("class_id = ? AND class_school_id = ?", req.LessonClassID, schoolID).
		First(&class).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, http.StatusNotFound, "class not found")
		}
		return helper.WritePGError(c, err)
	}
	var subject subjectModel.SubjectModel
	if err := ctl.DB.WithContext(c.Context()).
		Where("subject_id = ? AND subject_school_id = ?", req.LessonSubjectID, schoolID).
		First(&subject).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, http.StatusNotFound, "subject not found")
		}
		return helper.WritePGError(c, err)
	}
	var room roomModel.RoomModel
	if err := ctl.DB.WithContext(c.Context()).
		Where("room_id = ? AND room_school_id = ?", req.LessonRoomID, schoolID).
		First(&room).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, http.StatusNotFound, "room not found")
		}
		return helper.WritePGError(c, err)
	}

	lesson := m.LessonModel{
		LessonSchoolID:    schoolID,
		LessonClassID:     class.ClassID,
		LessonSubjectID:   subject.SubjectID,
		LessonRoomID:      room.RoomID,
		LessonClassName:   class.ClassName,
		LessonSubjectName: subject.SubjectName,
		LessonRoomCode:    room.RoomCode,
		LessonTeacherName: req.LessonTeacherName,
	}

	// Detector runs inside the write transaction; the exclusion constraint on
	// lesson_slots catches anything that slips between check and insert
	// (surfaces as 23P01 via WritePGError).
	txErr := ctl.DB.WithContext(c.Context()).Transaction(func(tx *gorm.DB) error {
		if err := checkBothResources(tx, schoolID, &lesson, proposed, uuid.Nil); err != nil {
			return err
		}
		if err := tx.Create(&lesson).Error; err != nil {
			return err
		}
		slots := slotModels(schoolID, lesson.LessonID, proposed)
		if err := tx.Create(&slots).Error; err != nil {
			return err
		}
		lesson.LessonSlots = slots
		return nil
	})
	if txErr != nil {
		var fe *fiber.Error
		if errors.As(txErr, &fe) {
			return helper.JsonError(c, fe.Code, fe.Message)
		}
		log.Printf("[Lesson.Create] TX error: %v", txErr)
		return helper.WritePGError(c, txErr)
	}

	return helper.JsonCreated(c, "Lesson created", d.FromModel(lesson))
}

func (ctl *LessonController) Patch(c *fiber.Ctx) error {
	if !(helperAuth.IsOwner(c) || helperAuth.IsAdmin(c)) {
		return helper.JsonError(c, http.StatusForbidden, "Access denied")
	}

	id, err := parseUUIDParam(c, "id")
	if err != nil {
		return helper.JsonError(c, http.StatusBadRequest, err.Error())
	}

	var req d.PatchLessonRequest
	if err := c.BodyParser(&req); err != nil {
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

	var proposed []svc.TimeSlot
	if req.Slots != nil {
		proposed, err = d.ParseSlots(req.Slots)
		if err != nil {
			return helper.JsonError(c, http.StatusBadRequest, err.Error())
		}
	}

	var lesson m.LessonModel
	txErr := ctl.DB.WithContext(c.Context()).Transaction(func(tx *gorm.DB) error {
		if err := tx.
			Preload("LessonSlots").
			Where("lesson_id = ? AND lesson_school_id = ?", id, schoolID).
			First(&lesson).Error; err != nil {
			return err
		}

		if req.LessonTeacherName != nil {
			lesson.LessonTeacherName = *req.LessonTeacherName
		}

		if proposed != nil {
			// the stored row is excluded so a lesson never collides with itself
			if err := checkBothResources(tx, schoolID, &lesson, proposed, lesson.LessonID); err != nil {
				return err
			}
			if err := tx.
				Where("lesson_slot_lesson_id = ?", lesson.LessonID).
				Delete(&m.LessonSlotModel{}).Error; err != nil {
				return err
			}
			slots := slotModels(schoolID, lesson.LessonID, proposed)
			if err := tx.Create(&slots).Error; err != nil {
				return err
			}
			lesson.LessonSlots = slots
		}

		return tx.Omit("LessonSlots").Save(&lesson).Error
	})
	if txErr != nil {
		if errors.Is(txErr, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, http.StatusNotFound, "lesson not found")
		}
		var fe *fiber.Error
		if errors.As(txErr, &fe) {
			return helper.JsonError(c, fe.Code, fe.Message)
		}
		log.Printf("[Lesson.Patch] TX error: %v", txErr)
		return helper.WritePGError(c, txErr)
	}

	return helper.JsonUpdated(c, "Lesson updated", d.FromModel(lesson))
}

func (ctl *LessonController) Delete(c *fiber.Ctx) error {
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

	txErr := ctl.DB.WithContext(c.Context()).Transaction(func(tx *gorm.DB) error {
		res := tx.
			Where("lesson_id = ? AND lesson_school_id = ?", id, schoolID).
			Delete(&m.LessonModel{})
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return gorm.ErrRecordNotFound
		}
		// slots are hard-deleted so the freed window is bookable right away
		return tx.
			Where("lesson_slot_lesson_id = ?", id).
			Delete(&m.LessonSlotModel{}).Error
	})
	if txErr != nil {
		if errors.Is(txErr, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, http.StatusNotFound, "lesson not found")
		}
		return helper.WritePGError(c, txErr)
	}

	return helper.JsonDeleted(c, "Lesson deleted", fiber.Map{"lesson_id": id})
}

func (ctl *LessonController) GetByID(c *fiber.Ctx) error {
	id, err := parseUUIDParam(c, "id")
	if err != nil {
		return helper.JsonError(c, http.StatusBadRequest, err.Error())
	}

	schoolID, err := helperAuth.GetSchoolIDFromToken(c)
	if err != nil {
		return err
	}

	var lesson m.LessonModel
	if err := ctl.DB.WithContext(c.Context()).
		Preload("LessonSlots").
		Where("lesson_id = ? AND lesson_school_id = ?", id, schoolID).
		First(&lesson).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, http.StatusNotFound, "lesson not found")
		}
		return helper.WritePGError(c, err)
	}

	return helper.JsonOK(c, "ok", d.FromModel(lesson))
}

func (ctl *LessonController) List(c *fiber.Ctx) error {
	schoolID, err := helperAuth.GetSchoolIDFromToken(c)
	if err != nil {
		// public mount: fall back to explicit school scope
		raw := strings.TrimSpace(c.Query("school_id"))
		sid, perr := uuid.Parse(raw)
		if perr != nil {
			return err
		}
		schoolID = sid
	}

	p := helper.ResolvePaging(c, 20, 100)

	q := ctl.DB.WithContext(c.Context()).
		Model(&m.LessonModel{}).
		Where("lesson_school_id = ?", schoolID)

	if v := strings.TrimSpace(c.Query("class_id")); v != "" {
		if cid, perr := uuid.Parse(v); perr == nil {
			q = q.Where("lesson_class_id = ?", cid)
		}
	}
	if v := strings.TrimSpace(c.Query("room_id")); v != "" {
		if rid, perr := uuid.Parse(v); perr == nil {
			q = q.Where("lesson_room_id = ?", rid)
		}
	}
	if v := strings.TrimSpace(c.Query("day_of_week")); v != "" {
		if day, perr := strconv.Atoi(v); perr == nil && day >= 1 && day <= 6 {
			q = q.Where("lesson_id IN (?)", ctl.DB.
				Model(&m.LessonSlotModel{}).
				Select("lesson_slot_lesson_id").
				Where("lesson_slot_day_of_week = ?", day))
		}
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return helper.WritePGError(c, err)
	}

	var rows []m.LessonModel
	if err := q.
		Preload("LessonSlots").
		Order("lesson_created_at ASC").
		Limit(p.Limit).
		Offset(p.Offset).
		Find(&rows).Error; err != nil {
		return helper.WritePGError(c, err)
	}

	pg := helper.BuildPaginationFromPage(total, p.Page, p.PerPage)
	return helper.JsonList(c, "ok", d.FromModels(rows), pg)
}
