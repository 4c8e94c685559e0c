// file: internals/features/school/academics/rooms/dto/room_dto.go
package dto

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"

	m "escola_backend/internals/features/school/academics/rooms/model"
)

/* ========================= Requests ========================= */

type CreateRoomRequest struct {
	RoomCode       string   `json:"room_code" validate:"required,min=1,max=40"`
	RoomName       string   `json:"room_name" validate:"required,min=1,max=120"`
	RoomDesc       *string  `json:"room_desc" validate:"omitempty,max=2000"`
	RoomCapacity   *int     `json:"room_capacity" validate:"omitempty,min=1,max=1000"`
	RoomFacilities []string `json:"room_facilities" validate:"omitempty,dive,min=1,max=60"`
	RoomIsActive   *bool    `json:"room_is_active"`
}

func (r *CreateRoomRequest) Normalize() {
	r.RoomCode = strings.TrimSpace(r.RoomCode)
	r.RoomName = strings.TrimSpace(r.RoomName)
	if r.RoomDesc != nil {
		v := strings.TrimSpace(*r.RoomDesc)
		if v == "" {
			r.RoomDesc = nil
		} else {
			r.RoomDesc = &v
		}
	}
	cleaned := r.RoomFacilities[:0]
	for _, f := range r.RoomFacilities {
		if f = strings.TrimSpace(f); f != "" {
			cleaned = append(cleaned, f)
		}
	}
	r.RoomFacilities = cleaned
}

func (r CreateRoomRequest) ToModel(schoolID uuid.UUID) m.RoomModel {
	isActive := true
	if r.RoomIsActive != nil {
		isActive = *r.RoomIsActive
	}
	return m.RoomModel{
		RoomSchoolID:   schoolID,
		RoomCode:       r.RoomCode,
		RoomName:       r.RoomName,
		RoomDesc:       r.RoomDesc,
		RoomCapacity:   r.RoomCapacity,
		RoomFacilities: pq.StringArray(r.RoomFacilities),
		RoomIsActive:   isActive,
	}
}

type UpdateRoomRequest struct {
	RoomCode       *string  `json:"room_code" validate:"omitempty,min=1,max=40"`
	RoomName       *string  `json:"room_name" validate:"omitempty,min=1,max=120"`
	RoomDesc       *string  `json:"room_desc" validate:"omitempty,max=2000"`
	RoomCapacity   *int     `json:"room_capacity" validate:"omitempty,min=1,max=1000"`
	RoomFacilities []string `json:"room_facilities" validate:"omitempty,dive,min=1,max=60"`
	RoomIsActive   *bool    `json:"room_is_active"`
}

func (r UpdateRoomRequest) Apply(existing *m.RoomModel) {
	if r.RoomCode != nil {
		existing.RoomCode = strings.TrimSpace(*r.RoomCode)
	}
	if r.RoomName != nil {
		existing.RoomName = strings.TrimSpace(*r.RoomName)
	}
	if r.RoomDesc != nil {
		v := strings.TrimSpace(*r.RoomDesc)
		if v == "" {
			existing.RoomDesc = nil
		} else {
			existing.RoomDesc = &v
		}
	}
	if r.RoomCapacity != nil {
		existing.RoomCapacity = r.RoomCapacity
	}
	if r.RoomFacilities != nil {
		existing.RoomFacilities = pq.StringArray(r.RoomFacilities)
	}
	if r.RoomIsActive != nil {
		existing.RoomIsActive = *r.RoomIsActive
	}
}

/* ========================= Response ========================= */

type RoomResponse struct {
	RoomID         uuid.UUID `json:"room_id"`
	RoomSchoolID   uuid.UUID `json:"room_school_id"`
	RoomCode       string    `json:"room_code"`
	RoomName       string    `json:"room_name"`
	RoomDesc       *string   `json:"room_desc,omitempty"`
	RoomCapacity   *int      `json:"room_capacity,omitempty"`
	RoomFacilities []string  `json:"room_facilities,omitempty"`
	RoomIsActive   bool      `json:"room_is_active"`
	RoomCreatedAt  time.Time `json:"room_created_at"`
	RoomUpdatedAt  time.Time `json:"room_updated_at"`
}

func FromModel(r m.RoomModel) RoomResponse {
	return RoomResponse{
		RoomID:         r.RoomID,
		RoomSchoolID:   r.RoomSchoolID,
		RoomCode:       r.RoomCode,
		RoomName:       r.RoomName,
		RoomDesc:       r.RoomDesc,
		RoomCapacity:   r.RoomCapacity,
		RoomFacilities: []string(r.RoomFacilities),
		RoomIsActive:   r.RoomIsActive,
		RoomCreatedAt:  r.RoomCreatedAt,
		RoomUpdatedAt:  r.RoomUpdatedAt,
	}
}

func FromModels(rows []m.RoomModel) []RoomResponse {
	out := make([]RoomResponse, 0, len(rows))
	for _, r := range rows {
		out = append(out, FromModel(r))
	}
	return out
}
