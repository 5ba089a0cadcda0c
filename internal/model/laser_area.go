package model

import (
    "strings"
    "time"

    "github.com/shopspring/decimal"
)

// LaserArea describes one treatable body area together with its pricing
// and operational settings.  Area names are unique and act as the
// natural lookup key for the catalog endpoints.
//
// Fields:
//  ID            – primary key identifier.
//  Name          – unique area name (max 50 characters).
//  CurrentPrice  – current price for a session on this area.
//  DeadlineReset – days before a treatment session counter resets.
//  IsActive      – whether the area is currently offered.
//  OperateTime   – duration of one laser operation in minutes.
//  CreatedAt     – creation timestamp.
//  UpdatedAt     – last update timestamp.
type LaserArea struct {
    ID            uint64          // laser_areas.id
    Name          string          // laser_areas.name
    CurrentPrice  decimal.Decimal // laser_areas.current_price
    DeadlineReset int64           // laser_areas.deadline_reset
    IsActive      bool            // laser_areas.is_active
    OperateTime   int64           // laser_areas.operate_time
    CreatedAt     time.Time       // laser_areas.created_at
    UpdatedAt     time.Time       // laser_areas.updated_at
}

// Validate checks the area's self-consistency before insert or update.
func (a *LaserArea) Validate() error {
    if strings.TrimSpace(a.Name) == "" {
        return invalid("name", "area name cannot be empty")
    }
    if len(a.Name) > 50 {
        return invalid("name", "area name cannot exceed 50 characters")
    }
    if a.CurrentPrice.IsNegative() {
        return invalid("current_price", "price cannot be negative")
    }
    if a.DeadlineReset < 0 {
        return invalid("deadline_reset", "reset deadline cannot be negative")
    }
    if a.OperateTime < 0 {
        return invalid("operate_time", "operation time cannot be negative")
    }
    return nil
}
