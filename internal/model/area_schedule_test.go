package model

import (
    "testing"
    "time"

    "github.com/google/uuid"
    "github.com/shopspring/decimal"
    "github.com/stretchr/testify/assert"
)

func validAreaSchedule() AreaSchedule {
    return AreaSchedule{
        ID:          uuid.New(),
        LaserAreaID: 1,
        Price:       decimal.RequireFromString("120.50"),
        OperateTime: 25,
    }
}

func TestAreaScheduleValidate_DraftWithoutTimes(t *testing.T) {
    // Schedules may be created without a window and published later.
    s := validAreaSchedule()
    assert.NoError(t, s.Validate())
}

func TestAreaScheduleValidate_MissingArea(t *testing.T) {
    s := validAreaSchedule()
    s.LaserAreaID = 0
    assertInvalidField(t, s.Validate(), "laser_area_id")
}

func TestAreaScheduleValidate_NegativePrice(t *testing.T) {
    s := validAreaSchedule()
    s.Price = decimal.NewFromInt(-1)
    assertInvalidField(t, s.Validate(), "price")
}

func TestAreaScheduleValidate_NegativeOperateTime(t *testing.T) {
    s := validAreaSchedule()
    s.OperateTime = -5
    assertInvalidField(t, s.Validate(), "operate_time")
}

func TestAreaScheduleValidate_EndMustFollowStart(t *testing.T) {
    s := validAreaSchedule()
    start := time.Date(2025, 6, 10, 9, 0, 0, 0, time.UTC)
    end := start.Add(-time.Hour)
    s.StartTime = &start
    s.EndTime = &end
    assertInvalidField(t, s.Validate(), "end_time")

    end = start.Add(2 * time.Hour)
    s.EndTime = &end
    assert.NoError(t, s.Validate())
}

func TestAreaScheduleValidate_StartOnlyIsPublishable(t *testing.T) {
    s := validAreaSchedule()
    start := time.Date(2025, 6, 10, 9, 0, 0, 0, time.UTC)
    s.StartTime = &start
    assert.NoError(t, s.Validate())
}
