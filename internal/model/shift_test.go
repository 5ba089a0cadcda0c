package model

import (
    "testing"
    "time"

    "github.com/google/uuid"
    "github.com/stretchr/testify/assert"
)

func validShift() OperatorShift {
    return OperatorShift{
        ID:         uuid.New(),
        OperatorID: 4,
        ShiftDate:  time.Date(2025, 6, 10, 0, 0, 0, 0, time.UTC),
        Period:     PeriodAfternoon,
    }
}

func TestShiftValidate_Valid(t *testing.T) {
    s := validShift()
    assert.NoError(t, s.Validate())
}

func TestShiftValidate_MissingOperator(t *testing.T) {
    s := validShift()
    s.OperatorID = 0
    assertInvalidField(t, s.Validate(), "operator_id")
}

func TestShiftValidate_EmptyDate(t *testing.T) {
    s := validShift()
    s.ShiftDate = time.Time{}
    assertInvalidField(t, s.Validate(), "shift_date")
}

func TestShiftValidate_UnknownPeriod(t *testing.T) {
    s := validShift()
    s.Period = "NIGHT"
    assertInvalidField(t, s.Validate(), "period")
}

func TestValidPeriod(t *testing.T) {
    assert.True(t, ValidPeriod(PeriodMorning))
    assert.True(t, ValidPeriod(PeriodAfternoon))
    assert.False(t, ValidPeriod("morning"))
    assert.False(t, ValidPeriod(""))
}
