package apperr

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStatus(t *testing.T) {
	cases := []struct {
		name string
		err  error
		want int
	}{
		{"missing", MissingFields([]string{"a"}), http.StatusBadRequest},
		{"category", InvalidCategory(99), http.StatusBadRequest},
		{"bad body", BadRequest("invalid request body", nil), http.StatusBadRequest},
		{"not found", NotFound(), http.StatusNotFound},
		{"conflict", Conflict("dup"), http.StatusConflict},
		{"incomplete", RegistrationIncomplete(errors.New("no id")), http.StatusInternalServerError},
		{"internal", Internal("boom", errors.New("x")), http.StatusInternalServerError},
		{"plain error", errors.New("x"), http.StatusInternalServerError},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, Status(tc.err))
		})
	}
}

func TestMissingFieldsListsEveryField(t *testing.T) {
	err := MissingFields([]string{"category_id", "city_id"})
	assert.Equal(t, "Missing required fields: category_id, city_id", err.Message)
	assert.Equal(t, []string{"category_id", "city_id"}, err.Fields)
}

func TestKindSurvivesWrapping(t *testing.T) {
	wrapped := fmt.Errorf("register: %w", Conflict("dup"))
	assert.True(t, Is(wrapped, KindConflict))
	assert.Equal(t, "dup", Message(wrapped))
}

func TestInternalHidesCauseFromMessage(t *testing.T) {
	err := Internal("Failed to register agent", errors.New("pq: connection refused"))
	assert.Equal(t, "Failed to register agent", Message(err))
	assert.Contains(t, err.Error(), "connection refused")
	assert.Equal(t, "An error occurred", Message(errors.New("raw")))
}
