package http

import (
	"net/http"
	"strconv"

	apperrors "github.com/autogirlng/muvment-customer-sub002/pkg/errors"
)

const (
	DefaultPageSize = 10
	MaxPageSize     = 50
)

// ExtractPage reads page/size query parameters using the remote booking
// API's pagination vocabulary. Page numbers start at 1.
func ExtractPage(r *http.Request) (int, int, error) {
	query := r.URL.Query()

	page := 1
	if s := query.Get("page"); s != "" {
		v, err := strconv.Atoi(s)
		if err != nil {
			return 0, 0, apperrors.InvalidInput("invalid page parameter: " + s)
		}
		page = v
	}
	if page < 1 {
		page = 1
	}

	size := DefaultPageSize
	if s := query.Get("size"); s != "" {
		v, err := strconv.Atoi(s)
		if err != nil {
			return 0, 0, apperrors.InvalidInput("invalid size parameter: " + s)
		}
		size = v
	}
	if size < 1 {
		size = DefaultPageSize
	} else if size > MaxPageSize {
		size = MaxPageSize
	}

	return page, size, nil
}
