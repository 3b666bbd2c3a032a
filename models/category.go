package models

import (
	"strconv"

	"github.com/rpupo63/studio-landing/errs"
)

// Category is the closed set of project kinds. The zero value is not a
// valid category, so a record decoded without one fails validation.
type Category uint8

const (
	CategoryMobile Category = iota + 1
	CategoryWeb
	CategorySystem
)

var categoryNames = map[Category]string{
	CategoryMobile: "mobile",
	CategoryWeb:    "web",
	CategorySystem: "system",
}

// Categories returns every category in display order.
func Categories() []Category {
	return []Category{CategoryMobile, CategoryWeb, CategorySystem}
}

func (c Category) String() string {
	if name, ok := categoryNames[c]; ok {
		return name
	}
	return ""
}

func (c Category) Valid() bool {
	_, ok := categoryNames[c]
	return ok
}

// ParseCategory converts the text form of a category.
func ParseCategory(s string) (Category, error) {
	for _, c := range Categories() {
		if c.String() == s {
			return c, nil
		}
	}
	return 0, errs.NewInvalidCategoryError(s)
}

func (c Category) MarshalText() ([]byte, error) {
	if !c.Valid() {
		return nil, errs.NewInvalidCategoryError(strconv.Itoa(int(c)))
	}
	return []byte(c.String()), nil
}

func (c *Category) UnmarshalText(text []byte) error {
	parsed, err := ParseCategory(string(text))
	if err != nil {
		return err
	}
	*c = parsed
	return nil
}
