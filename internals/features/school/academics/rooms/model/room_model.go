// file: internals/features/school/academics/rooms/model/room_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"gorm.io/gorm"
)

type RoomModel struct {
	// PK
	RoomID uuid.UUID `gorm:"column:room_id;type:uuid;default:gen_random_uuid();primaryKey" json:"room_id"`

	// Tenant
	RoomSchoolID uuid.UUID `gorm:"column:room_school_id;type:uuid;not null;index" json:"room_school_id"`

	// Room code is the resource key for timetable conflict checks.
	RoomCode string  `gorm:"column:room_code;type:varchar(40);not null" json:"room_code"`
	RoomName string  `gorm:"column:room_name;type:varchar(120);not null" json:"room_name"`
	RoomDesc *string `gorm:"column:room_desc;type:text" json:"room_desc,omitempty"`

	RoomCapacity   *int           `gorm:"column:room_capacity;type:smallint" json:"room_capacity,omitempty"`
	RoomFacilities pq.StringArray `gorm:"column:room_facilities;type:text[]" json:"room_facilities,omitempty"`

	RoomIsActive bool `gorm:"column:room_is_active;not null;default:true" json:"room_is_active"`

	// Audit
	RoomCreatedAt time.Time      `gorm:"column:room_created_at;type:timestamptz;not null;autoCreateTime" json:"room_created_at"`
	RoomUpdatedAt time.Time      `gorm:"column:room_updated_at;type:timestamptz;not null;autoUpdateTime" json:"room_updated_at"`
	RoomDeletedAt gorm.DeletedAt `gorm:"column:room_deleted_at;index" json:"room_deleted_at,omitempty"`
}

func (RoomModel) TableName() string { return "rooms" }
