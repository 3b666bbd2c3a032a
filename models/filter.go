package models

import (
	"strconv"
	"strings"

	"github.com/rpupo63/studio-landing/errs"
)

// Filter selects which projects the gallery shows. The zero value is
// FilterAll, which is also the default selection of a new page view.
type Filter uint8

const (
	FilterAll Filter = iota
	FilterMobile
	FilterWeb
	FilterSystem
)

type filterInfo struct {
	value    string
	label    string
	category Category
}

var filterTable = [...]filterInfo{
	FilterAll:    {value: "all", label: "All"},
	FilterMobile: {value: "mobile", label: "Mobile", category: CategoryMobile},
	FilterWeb:    {value: "web", label: "Web", category: CategoryWeb},
	FilterSystem: {value: "system", label: "Systems", category: CategorySystem},
}

// Filters returns the four filters in the order their controls are shown.
func Filters() []Filter {
	return []Filter{FilterAll, FilterMobile, FilterWeb, FilterSystem}
}

// FilterFor returns the filter that selects exactly category c.
func FilterFor(c Category) Filter {
	for f, info := range filterTable {
		if info.category == c && c.Valid() {
			return Filter(f)
		}
	}
	return FilterAll
}

func (f Filter) Valid() bool {
	return int(f) < len(filterTable)
}

// String returns the query value of the filter, e.g. "mobile".
func (f Filter) String() string {
	if !f.Valid() {
		return ""
	}
	return filterTable[f].value
}

// Label returns the text shown on the filter control, e.g. "Systems".
func (f Filter) Label() string {
	if !f.Valid() {
		return ""
	}
	return filterTable[f].label
}

// Matches reports whether p belongs in the gallery under f.
func (f Filter) Matches(p Project) bool {
	if f == FilterAll {
		return true
	}
	return f.Valid() && filterTable[f].category == p.Category
}

// ParseFilter converts untrusted input such as a query parameter. An empty
// string selects FilterAll.
func ParseFilter(s string) (Filter, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	if s == "" {
		return FilterAll, nil
	}
	for f, info := range filterTable {
		if info.value == s {
			return Filter(f), nil
		}
	}
	return FilterAll, errs.NewInvalidFilterError(s)
}

func (f Filter) MarshalText() ([]byte, error) {
	if !f.Valid() {
		return nil, errs.NewInvalidFilterError(strconv.Itoa(int(f)))
	}
	return []byte(f.String()), nil
}

func (f *Filter) UnmarshalText(text []byte) error {
	parsed, err := ParseFilter(string(text))
	if err != nil {
		return err
	}
	*f = parsed
	return nil
}
