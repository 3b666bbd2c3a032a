package models

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rpupo63/studio-landing/errs"
)

func TestFilterZeroValueIsAll(t *testing.T) {
	var f Filter
	assert.Equal(t, FilterAll, f)
	assert.Equal(t, "all", f.String())
}

func TestFiltersControlOrder(t *testing.T) {
	var labels, values []string
	for _, f := range Filters() {
		labels = append(labels, f.Label())
		values = append(values, f.String())
	}
	assert.Equal(t, []string{"All", "Mobile", "Web", "Systems"}, labels)
	assert.Equal(t, []string{"all", "mobile", "web", "system"}, values)
}

func TestParseFilter(t *testing.T) {
	tests := []struct {
		in   string
		want Filter
	}{
		{"", FilterAll},
		{"all", FilterAll},
		{"mobile", FilterMobile},
		{"web", FilterWeb},
		{"system", FilterSystem},
		{" Web ", FilterWeb},
	}
	for _, tt := range tests {
		got, err := ParseFilter(tt.in)
		require.NoError(t, err, tt.in)
		assert.Equal(t, tt.want, got, tt.in)
	}
}

func TestParseFilterRejectsUnknownValues(t *testing.T) {
	for _, in := range []string{"systems", "desktop", "1"} {
		_, err := ParseFilter(in)
		require.Error(t, err, in)
		assert.True(t, errs.IsInvalidFilterError(err))
		assert.Equal(t, 400, errs.StatusCode(err))
	}
}

func TestFilterMatches(t *testing.T) {
	mobile := Project{ID: 1, Category: CategoryMobile}
	web := Project{ID: 2, Category: CategoryWeb}

	assert.True(t, FilterAll.Matches(mobile))
	assert.True(t, FilterAll.Matches(web))
	assert.True(t, FilterMobile.Matches(mobile))
	assert.False(t, FilterMobile.Matches(web))
	assert.False(t, FilterSystem.Matches(web))
	assert.False(t, Filter(42).Matches(web))
}

func TestFilterForCategory(t *testing.T) {
	assert.Equal(t, FilterMobile, FilterFor(CategoryMobile))
	assert.Equal(t, FilterWeb, FilterFor(CategoryWeb))
	assert.Equal(t, FilterSystem, FilterFor(CategorySystem))
	assert.Equal(t, FilterAll, FilterFor(Category(0)))
}

func TestCategoryJSON(t *testing.T) {
	var p Project
	require.NoError(t, json.Unmarshal([]byte(`{"id":7,"title":"Kiosk","category":"system"}`), &p))
	assert.Equal(t, CategorySystem, p.Category)

	out, err := json.Marshal(p)
	require.NoError(t, err)
	assert.Contains(t, string(out), `"category":"system"`)

	err = json.Unmarshal([]byte(`{"id":8,"category":"desktop"}`), &p)
	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrInvalidCategory)
}

func TestSiteLinks(t *testing.T) {
	site := DefaultSite()
	assert.Equal(t, "mailto:hello@studio.com", site.MailtoHref())
	assert.Equal(t, "tel:+15555551234", site.PhoneHref())
	assert.Equal(t, "© 2025 Studio. All rights reserved.", site.CopyrightLine())
}
