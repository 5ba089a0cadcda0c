package model

import (
    "testing"
    "time"

    "github.com/google/uuid"
    "github.com/stretchr/testify/assert"
)

func validCancellationPeriod() CancellationPeriod {
    start := time.Date(2025, 7, 1, 8, 0, 0, 0, time.UTC)
    return CancellationPeriod{
        ID:        uuid.New(),
        StartTime: start,
        EndTime:   start.Add(4 * time.Hour),
    }
}

func TestCancellationPeriodValidate_Valid(t *testing.T) {
    p := validCancellationPeriod()
    assert.NoError(t, p.Validate())
}

func TestCancellationPeriodValidate_MissingTimes(t *testing.T) {
    p := validCancellationPeriod()
    p.StartTime = time.Time{}
    assertInvalidField(t, p.Validate(), "start_time")
}

func TestCancellationPeriodValidate_EndNotAfterStart(t *testing.T) {
    p := validCancellationPeriod()
    p.EndTime = p.StartTime
    assertInvalidField(t, p.Validate(), "end_time")

    p.EndTime = p.StartTime.Add(-time.Minute)
    assertInvalidField(t, p.Validate(), "end_time")
}

func TestCancellationPeriodValidateNew_PastStartRejected(t *testing.T) {
    now := time.Date(2025, 7, 2, 0, 0, 0, 0, time.UTC)
    p := validCancellationPeriod() // starts 2025-07-01
    assertInvalidField(t, p.ValidateNew(now), "start_time")
}

func TestCancellationPeriodValidateNew_FutureStartAccepted(t *testing.T) {
    now := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)
    p := validCancellationPeriod()
    assert.NoError(t, p.ValidateNew(now))
}
