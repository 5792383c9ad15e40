package errors

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

var errBusy = New("store busy")

func TestWrapKeepsCause(t *testing.T) {
	err := Wrapf(errBusy, "dispatch %d", 7)

	assert.True(t, Is(err, errBusy))
	assert.Equal(t, "dispatch 7: store busy", err.Error())
	assert.Contains(t, fmt.Sprintf("%+v", err), "TestWrapKeepsCause")
	assert.Nil(t, Wrap(nil, "ignored"))
}

func TestJoinKeepsBoth(t *testing.T) {
	rollback := New("rollback failed")
	err := Join(Wrap(errBusy, "insert batch"), rollback)

	assert.True(t, Is(err, errBusy))
	assert.True(t, Is(err, rollback))
}
