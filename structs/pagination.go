package structs

import (
	"fmt"
	"strconv"
)

type Pagination struct {
	Skip  int64
	Limit int64
}

// ParsePagination turns the raw limit/skip query values into a
// Pagination, rejecting anything that is not a non-negative integer.
func ParsePagination(limitStr, skipStr string) (Pagination, error) {
	limit, err := strconv.ParseInt(limitStr, 10, 64)
	if err != nil || limit < 0 {
		return Pagination{}, fmt.Errorf("limit must be a non-negative integer")
	}
	skip, err := strconv.ParseInt(skipStr, 10, 64)
	if err != nil || skip < 0 {
		return Pagination{}, fmt.Errorf("skip must be a non-negative integer")
	}
	return Pagination{Skip: skip, Limit: limit}, nil
}
