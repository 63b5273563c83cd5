package constants

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"grant-portal/internal/storage"
)

func TestCatalog_EverySourceHasFieldsAndDateField(t *testing.T) {
	for _, src := range storage.DataSources {
		fields := Catalog(src)
		assert.NotEmpty(t, fields, src)

		dateID, ok := DateFields[src]
		assert.True(t, ok, src)

		f, ok := LookupField(src, dateID)
		assert.True(t, ok, src)
		assert.Equal(t, storage.FieldDate, f.Type, src)
	}
}

func TestCatalog_FieldIDsUniquePerSource(t *testing.T) {
	for _, src := range storage.DataSources {
		seen := map[string]bool{}
		for _, f := range Catalog(src) {
			assert.False(t, seen[f.ID], "%s: duplicate %s", src, f.ID)
			seen[f.ID] = true
			assert.NotEmpty(t, f.Column)
			assert.NotEmpty(t, f.Table)
		}
	}
}

func TestCatalog_UnknownSource(t *testing.T) {
	assert.Nil(t, Catalog("grants"))
	assert.False(t, KnownSource("grants"))

	_, ok := LookupField("grants", "title")
	assert.False(t, ok)
}

func TestCatalog_ReturnsCopy(t *testing.T) {
	fields := Catalog(storage.SourceProjects)
	fields[0].ID = "changed"
	fields[0].Column = "salary"

	f, ok := LookupField(storage.SourceProjects, "title")
	assert.True(t, ok)
	assert.Equal(t, "title", f.Column)
	assert.Equal(t, "title", ProjectFields[0].ID)
}
