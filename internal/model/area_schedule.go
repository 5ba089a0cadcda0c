package model

import (
    "time"

    "github.com/google/uuid"
    "github.com/shopspring/decimal"
)

// AreaSchedule is a bookable time window on a laser area with its own
// price.  Schedules cascade away with the owning area.  A schedule
// without a start time is a draft; the catalog listings only expose
// schedules whose start time is set.
//
// Fields:
//  ID          – UUID primary key.
//  LaserAreaID – area this schedule belongs to.
//  Price       – price for a session booked through this schedule.
//  StartTime   – start of the window (nullable while drafting).
//  EndTime     – end of the window (nullable; must be after StartTime).
//  OperateTime – duration of one laser operation in minutes.
//  CreatedAt   – creation timestamp.
//  UpdatedAt   – last update timestamp.
type AreaSchedule struct {
    ID          uuid.UUID       // area_schedules.id
    LaserAreaID uint64          // area_schedules.laser_area_id
    Price       decimal.Decimal // area_schedules.price
    StartTime   *time.Time      // area_schedules.start_time (nullable)
    EndTime     *time.Time      // area_schedules.end_time (nullable)
    OperateTime int64           // area_schedules.operate_time
    CreatedAt   time.Time       // area_schedules.created_at
    UpdatedAt   time.Time       // area_schedules.updated_at
}

// Validate checks the schedule's self-consistency before insert or update.
func (s *AreaSchedule) Validate() error {
    if s.LaserAreaID == 0 {
        return invalid("laser_area_id", "laser area is required")
    }
    if s.Price.IsNegative() {
        return invalid("price", "price cannot be negative")
    }
    if s.OperateTime < 0 {
        return invalid("operate_time", "operation time cannot be negative")
    }
    if s.StartTime != nil && s.EndTime != nil && !s.EndTime.After(*s.StartTime) {
        return invalid("end_time", "end time must be after start time")
    }
    return nil
}
