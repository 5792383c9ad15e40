package handler

import (
	"strconv"

	"github.com/pkg/errors"
)

var errInvalidID = errors.New("invalid id")

// parseID parses a positive numeric path parameter.
func parseID(raw string) (uint, error) {
	id, err := strconv.ParseUint(raw, 10, 64)
	if err != nil || id == 0 {
		return 0, errInvalidID
	}

	return uint(id), nil
}
