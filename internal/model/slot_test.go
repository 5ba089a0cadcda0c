package model

import (
    "testing"
    "time"

    "github.com/google/uuid"
    "github.com/stretchr/testify/assert"
)

func validSlot() Slot {
    return Slot{
        ID:         uuid.New(),
        OperatorID: 4,
        Date:       time.Date(2025, 6, 10, 0, 0, 0, 0, time.UTC),
        Period:     PeriodMorning,
        TimeSlot:   Slot8To10,
        Duration:   120,
    }
}

func TestValidTimeSlot(t *testing.T) {
    for _, ts := range []string{
        Slot8To10, Slot10To12, Slot12To14, Slot15To17, Slot17To19,
        Slot19To21, Slot21To23, Slot23To1, Slot1To3, Slot3To5,
    } {
        assert.True(t, ValidTimeSlot(ts), ts)
    }
    // The clinic pauses between 14:00-15:00 and 05:00-08:00.
    assert.False(t, ValidTimeSlot("14-15"))
    assert.False(t, ValidTimeSlot("5-8"))
    assert.False(t, ValidTimeSlot(""))
}

func TestSlotValidate_Valid(t *testing.T) {
    s := validSlot()
    assert.NoError(t, s.Validate())
}

func TestSlotValidate_MissingOperator(t *testing.T) {
    s := validSlot()
    s.OperatorID = 0
    assertInvalidField(t, s.Validate(), "operator_id")
}

func TestSlotValidate_EmptyDate(t *testing.T) {
    s := validSlot()
    s.Date = time.Time{}
    assertInvalidField(t, s.Validate(), "date")
}

func TestSlotValidate_UnknownPeriod(t *testing.T) {
    s := validSlot()
    s.Period = "EVENING"
    assertInvalidField(t, s.Validate(), "period")
}

func TestSlotValidate_UnknownTimeSlot(t *testing.T) {
    s := validSlot()
    s.TimeSlot = "9-11"
    assertInvalidField(t, s.Validate(), "time_slot")
}

func TestSlotValidate_DurationMustBePositive(t *testing.T) {
    s := validSlot()
    s.Duration = 0
    assertInvalidField(t, s.Validate(), "duration")
}
