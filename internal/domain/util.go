package domain

import (
	"strconv"

	"github.com/onepiece-lab/backend/pkg/errorx"
)

// parseID converts an id path parameter. Non-numeric input is a client error,
// never a lookup miss.
func parseID(id string) (int64, error) {
	n, err := strconv.ParseInt(id, 10, 64)
	if err != nil {
		return 0, errorx.New(errorx.BadRequest, "ID invalid. Must be a number.")
	}

	return n, nil
}
