package model

import (
    "testing"

    "github.com/stretchr/testify/assert"
)

// assertInvalidField fails the test unless err is a ValidationError
// naming the given field.
func assertInvalidField(t *testing.T, err error, field string) {
    t.Helper()
    var ve *ValidationError
    if assert.ErrorAs(t, err, &ve) {
        assert.Equal(t, field, ve.Field)
    }
}

func TestValidationError_Error(t *testing.T) {
    err := invalid("name", "name cannot be empty")
    assert.Equal(t, "name: name cannot be empty", err.Error())
    assert.Equal(t, "name", err.Field)
}
