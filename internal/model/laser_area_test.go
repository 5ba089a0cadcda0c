package model

import (
    "strings"
    "testing"

    "github.com/shopspring/decimal"
    "github.com/stretchr/testify/assert"
)

func validLaserArea() LaserArea {
    return LaserArea{
        ID:            1,
        Name:          "full-leg",
        CurrentPrice:  decimal.RequireFromString("180.00"),
        DeadlineReset: 45,
        IsActive:      true,
        OperateTime:   30,
    }
}

func TestLaserAreaValidate_Valid(t *testing.T) {
    a := validLaserArea()
    assert.NoError(t, a.Validate())
}

func TestLaserAreaValidate_EmptyName(t *testing.T) {
    a := validLaserArea()
    a.Name = "  "
    assertInvalidField(t, a.Validate(), "name")
}

func TestLaserAreaValidate_NameTooLong(t *testing.T) {
    a := validLaserArea()
    a.Name = strings.Repeat("x", 51)
    assertInvalidField(t, a.Validate(), "name")
}

func TestLaserAreaValidate_NegativePrice(t *testing.T) {
    a := validLaserArea()
    a.CurrentPrice = decimal.NewFromInt(-10)
    assertInvalidField(t, a.Validate(), "current_price")
}

func TestLaserAreaValidate_NegativeDeadlineReset(t *testing.T) {
    a := validLaserArea()
    a.DeadlineReset = -1
    assertInvalidField(t, a.Validate(), "deadline_reset")
}

func TestLaserAreaValidate_NegativeOperateTime(t *testing.T) {
    a := validLaserArea()
    a.OperateTime = -1
    assertInvalidField(t, a.Validate(), "operate_time")
}
