package models

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSuggestClassName(t *testing.T) {
	tests := []struct {
		name     string
		course   string
		year     int
		semester int
		want     string
	}{
		{name: "regular", course: "Engineering", year: 2025, semester: 1, want: "ENG-2025-1"},
		{name: "short course", course: "Ux", year: 2024, semester: 2, want: "UX-2024-2"},
		{name: "accented", course: "Ética", year: 2026, semester: 1, want: "ÉTI-2026-1"},
		{name: "missing course", course: "  ", year: 2025, semester: 1, want: ""},
		{name: "missing year", course: "Law", year: 0, semester: 1, want: ""},
		{name: "missing semester", course: "Law", year: 2025, semester: 0, want: ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, SuggestClassName(tt.course, tt.year, tt.semester))
		})
	}
}

func TestStudentStatusValid(t *testing.T) {
	assert.True(t, StudentStatusActive.Valid())
	assert.True(t, StudentStatusSuspended.Valid())
	assert.True(t, StudentStatusGraduated.Valid())
	assert.False(t, StudentStatus("ativo").Valid())
	assert.False(t, StudentStatus("").Valid())
}

func TestDateJSON(t *testing.T) {
	d := NewDate(2000, time.January, 1)
	out, err := json.Marshal(d)
	require.NoError(t, err)
	assert.Equal(t, `"2000-01-01"`, string(out))

	var parsed Date
	require.NoError(t, json.Unmarshal([]byte(`"2000-01-01T00:00:00Z"`), &parsed))
	assert.Equal(t, d, parsed)

	require.NoError(t, json.Unmarshal([]byte(`null`), &parsed))
	assert.True(t, parsed.IsZero())

	out, err = json.Marshal(Date{})
	require.NoError(t, err)
	assert.Equal(t, "null", string(out))
}

func TestDateScanAndValue(t *testing.T) {
	var d Date
	require.NoError(t, d.Scan(time.Date(1999, time.March, 4, 0, 0, 0, 0, time.Local)))
	assert.Equal(t, "1999-03-04", d.String())

	require.NoError(t, d.Scan([]byte("2001-02-03T00:00:00Z")))
	assert.Equal(t, "2001-02-03", d.String())

	require.NoError(t, d.Scan(nil))
	assert.True(t, d.IsZero())
	assert.Error(t, d.Scan(42))

	v, err := NewDate(2000, time.January, 1).Value()
	require.NoError(t, err)
	assert.Equal(t, "2000-01-01", v)

	v, err = Date{}.Value()
	require.NoError(t, err)
	assert.Nil(t, v)
}
