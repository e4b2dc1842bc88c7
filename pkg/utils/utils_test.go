package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewRunID(t *testing.T) {
	first, err := NewRunID()
	require.NoError(t, err)

	second, err := NewRunID()
	require.NoError(t, err)

	assert.Len(t, first, 10)
	assert.Regexp(t, "^[0-9a-z]{10}$", first)
	assert.NotEqual(t, first, second)
}

func TestDateOnlyUTC(t *testing.T) {
	saoPaulo := time.FixedZone("BRT", -3*60*60)

	tests := []struct {
		name  string
		input time.Time
		want  string
	}{
		{name: "Meio do dia em UTC", input: time.Date(2024, 3, 9, 12, 0, 0, 0, time.UTC), want: "2024-03-09"},
		{name: "Noite em São Paulo já é amanhã em UTC", input: time.Date(2024, 3, 9, 22, 0, 0, 0, saoPaulo), want: "2024-03-10"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := DateOnlyUTC(tt.input)

			assert.Equal(t, tt.want, got.Format(time.DateOnly))
			assert.Equal(t, time.UTC, got.Location())
			assert.Zero(t, got.Hour())
		})
	}
}

func TestPrettyJSON(t *testing.T) {
	pretty := PrettyJSON(map[string]string{"message": "ok"})
	assert.Contains(t, pretty, "\n  \"message\":")
	assert.JSONEq(t, `{"message":"ok"}`, pretty)

	assert.JSONEq(t, `{"a":1}`, PrettyJSON([]byte(`{"a":1}`)))
	assert.Contains(t, PrettyJSON([]byte(`{"a":1}`)), "\n")

	assert.Equal(t, "", PrettyJSON([]byte(`{quebrado`)))
}
