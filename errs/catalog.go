package errs

import (
	"errors"
	"fmt"
	"net/http"
)

// Catalog & filter errors
var (
	ErrInvalidFilter      = errors.New("invalid filter")
	ErrInvalidCategory    = errors.New("invalid category")
	ErrInvalidProject     = errors.New("invalid project")
	ErrDuplicateProjectID = errors.New("duplicate project id")
	ErrCatalogLoad        = errors.New("catalog load failed")
)

func NewInvalidFilterError(value string) *ApiErr {
	return &ApiErr{
		StatusCode: http.StatusBadRequest,
		err:        ErrInvalidFilter,
		Details:    fmt.Sprintf("unknown filter %q, expected one of all, mobile, web, system", value),
		Field:      "filter",
	}
}

func NewInvalidCategoryError(value string) *ApiErr {
	return &ApiErr{
		StatusCode: http.StatusBadRequest,
		err:        ErrInvalidCategory,
		Details:    fmt.Sprintf("unknown category %q, expected one of mobile, web, system", value),
		Field:      "category",
	}
}

// NewInvalidProjectError reports a catalog record that breaks a data model rule.
// index is the record's position in the source list.
func NewInvalidProjectError(index int, field, reason string) *ApiErr {
	return &ApiErr{
		StatusCode: http.StatusInternalServerError,
		err:        ErrInvalidProject,
		Details:    fmt.Sprintf("project #%d: %s", index, reason),
		Field:      field,
	}
}

func NewDuplicateProjectIDError(id int) *ApiErr {
	return &ApiErr{
		StatusCode: http.StatusInternalServerError,
		err:        ErrDuplicateProjectID,
		Details:    fmt.Sprintf("project id %d appears more than once", id),
		Field:      "id",
	}
}

func NewCatalogLoadError(path string, cause error) *ApiErr {
	return &ApiErr{
		StatusCode: http.StatusInternalServerError,
		err:        ErrCatalogLoad,
		Details:    fmt.Sprintf("Failed to load catalog from %s", path),
		Cause:      cause,
	}
}

func IsInvalidFilterError(err error) bool {
	return errors.Is(err, ErrInvalidFilter)
}

func IsInvalidProjectError(err error) bool {
	return errors.Is(err, ErrInvalidProject) || errors.Is(err, ErrDuplicateProjectID)
}
