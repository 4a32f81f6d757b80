package dto

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/pmapi/project-management-api/internal/models"
)

func validTaskBody() map[string]any {
	return map[string]any{
		"title":       "Ship it",
		"description": "Everything",
		"status":      "In Progress",
		"priority":    "Low",
		"project":     float64(3),
		"due_date":    "2026-10-01T12:00:00Z",
	}
}

func TestParseTaskCreate(t *testing.T) {
	in, errs := ParseTaskCreate(validTaskBody(), false)
	require.Nil(t, errs)
	assert.Equal(t, "Ship it", in.Title)
	assert.Equal(t, models.TaskStatusInProgress, in.Status)
	assert.Equal(t, models.TaskPriorityLow, in.Priority)
	assert.Equal(t, uint64(3), in.Project)
	assert.Nil(t, in.AssignedTo)
	assert.Equal(t, time.Date(2026, 10, 1, 12, 0, 0, 0, time.UTC), in.DueDate)
}

func TestParseTaskCreate_MissingEverything(t *testing.T) {
	in, errs := ParseTaskCreate(map[string]any{}, false)
	require.Nil(t, in)
	for _, field := range []string{"title", "description", "status", "priority", "project", "due_date"} {
		assert.Equal(t, []string{"This field is required."}, errs[field], field)
	}
	assert.NotContains(t, errs, "assigned_to")
}

func TestParseTaskCreate_InvalidChoices(t *testing.T) {
	body := validTaskBody()
	body["status"] = "Stalled"
	body["priority"] = "Critical"

	in, errs := ParseTaskCreate(body, false)
	require.Nil(t, in)
	assert.Equal(t, []string{`"Stalled" is not a valid choice.`}, errs["status"])
	assert.Equal(t, []string{`"Critical" is not a valid choice.`}, errs["priority"])
}

func TestParseTaskCreate_BadDueDate(t *testing.T) {
	body := validTaskBody()
	body["due_date"] = "next tuesday"

	in, errs := ParseTaskCreate(body, false)
	require.Nil(t, in)
	assert.Len(t, errs["due_date"], 1)
}

func TestParseTaskCreate_ProjectScoped(t *testing.T) {
	body := validTaskBody()
	delete(body, "project")

	in, errs := ParseTaskCreate(body, true)
	require.Nil(t, errs)
	assert.Zero(t, in.Project)
}

func TestParseTaskCreate_PKAsString(t *testing.T) {
	body := validTaskBody()
	body["project"] = "7"
	body["assigned_to"] = "9"

	in, errs := ParseTaskCreate(body, false)
	require.Nil(t, errs)
	assert.Equal(t, uint64(7), in.Project)
	require.NotNil(t, in.AssignedTo)
	assert.Equal(t, uint64(9), *in.AssignedTo)
}

func TestParseTaskCreate_PKNotIntegral(t *testing.T) {
	body := validTaskBody()
	body["project"] = 3.5

	in, errs := ParseTaskCreate(body, false)
	require.Nil(t, in)
	assert.Equal(t, []string{"A valid integer is required."}, errs["project"])
}

func TestParseTaskUpdate_AssignedToTriState(t *testing.T) {
	// Absent: untouched.
	in, errs := ParseTaskUpdate(map[string]any{"title": "t"})
	require.Nil(t, errs)
	assert.False(t, in.AssignedToSet)

	// Explicit null: unassign.
	in, errs = ParseTaskUpdate(map[string]any{"assigned_to": nil})
	require.Nil(t, errs)
	assert.True(t, in.AssignedToSet)
	assert.Nil(t, in.AssignedTo)

	// Present: assign.
	in, errs = ParseTaskUpdate(map[string]any{"assigned_to": float64(4)})
	require.Nil(t, errs)
	assert.True(t, in.AssignedToSet)
	require.NotNil(t, in.AssignedTo)
	assert.Equal(t, uint64(4), *in.AssignedTo)
}

func TestParseTaskUpdate_Empty(t *testing.T) {
	in, errs := ParseTaskUpdate(map[string]any{})
	require.Nil(t, errs)
	assert.Nil(t, in.Title)
	assert.Nil(t, in.Status)
	assert.Nil(t, in.Project)
	assert.Nil(t, in.DueDate)
}

func TestParseTaskUpdate_NullProject(t *testing.T) {
	in, errs := ParseTaskUpdate(map[string]any{"project": nil})
	require.Nil(t, in)
	assert.Equal(t, []string{"This field may not be null."}, errs["project"])
}
