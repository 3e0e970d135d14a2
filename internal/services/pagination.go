package services

import (
	"fmt"
	"strconv"
)

const (
	defaultPage  = 1
	defaultLimit = 50
	maxLimit     = 100
)

// ValidatePaginationParams parses the page and limit query parameters,
// applying defaults for missing values and rejecting invalid ones
func ValidatePaginationParams(pageStr, limitStr string) (int, int, error) {
	page := defaultPage
	if pageStr != "" {
		p, err := strconv.Atoi(pageStr)
		if err != nil || p < 1 {
			return 0, 0, fmt.Errorf("page must be a positive integer")
		}
		page = p
	}

	limit := defaultLimit
	if limitStr != "" {
		l, err := strconv.Atoi(limitStr)
		if err != nil || l < 1 || l > maxLimit {
			return 0, 0, fmt.Errorf("limit must be between 1 and %d", maxLimit)
		}
		limit = l
	}

	return page, limit, nil
}
