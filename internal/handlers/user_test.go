package handlers

import (
	"errors"
	"net/http"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/pmapi/project-management-api/internal/dto"
	"github.com/pmapi/project-management-api/internal/models"
	"gorm.io/gorm"
)

func TestUserHandler_Register(t *testing.T) {
	env := setupTestEnv(t)

	payload := map[string]any{
		"username":   "newuser",
		"email":      "newuser@example.com",
		"password":   "p@ss",
		"first_name": "New",
		"last_name":  "User",
	}

	w := env.request(t, http.MethodPost, "/users/register/", payload, 0)
	require.Equal(t, http.StatusCreated, w.Code)

	var response map[string]any
	decodeBody(t, w, &response)
	require.Equal(t, "newuser", response["username"])
	require.Equal(t, "newuser@example.com", response["email"])
	require.Equal(t, "New", response["first_name"])
	require.NotContains(t, response, "password")
	require.NotContains(t, w.Body.String(), "p@ss")

	// Stored hash is never the plaintext.
	var stored models.User
	require.NoError(t, env.db.Where("username = ?", "newuser").First(&stored).Error)
	require.NotEqual(t, "p@ss", stored.PasswordHash)
	require.NotEmpty(t, stored.PasswordHash)
}

func TestUserHandler_Register_MissingFields(t *testing.T) {
	env := setupTestEnv(t)

	w := env.request(t, http.MethodPost, "/users/register/", map[string]any{}, 0)
	require.Equal(t, http.StatusBadRequest, w.Code)

	var response map[string][]string
	decodeBody(t, w, &response)
	require.Equal(t, []string{"This field is required."}, response["username"])
	require.Equal(t, []string{"This field is required."}, response["email"])
	require.Equal(t, []string{"This field is required."}, response["password"])
}

func TestUserHandler_Register_DuplicateUsername(t *testing.T) {
	env := setupTestEnv(t)
	env.createUser(t, "taken")

	payload := map[string]any{
		"username": "taken",
		"email":    "other@example.com",
		"password": "secret",
	}

	w := env.request(t, http.MethodPost, "/users/register/", payload, 0)
	require.Equal(t, http.StatusBadRequest, w.Code)

	var response map[string][]string
	decodeBody(t, w, &response)
	require.Equal(t, []string{"A user with that username already exists."}, response["username"])
}

func TestUserHandler_ListAndRetrieve_NeverExposePassword(t *testing.T) {
	env := setupTestEnv(t)

	registered, err := env.userService.Register(dto.UserRegisterInput{
		Username: "alice",
		Email:    "alice@example.com",
		Password: "p@ss",
	})
	require.NoError(t, err)

	w := env.request(t, http.MethodGet, "/users/", nil, registered.ID)
	require.Equal(t, http.StatusOK, w.Code)
	require.NotContains(t, w.Body.String(), "p@ss")
	require.NotContains(t, w.Body.String(), "password")
	require.NotContains(t, w.Body.String(), registered.PasswordHash)

	var listed []map[string]any
	decodeBody(t, w, &listed)
	require.Len(t, listed, 1)

	w = env.request(t, http.MethodGet, "/users/1/", nil, registered.ID)
	require.Equal(t, http.StatusOK, w.Code)
	require.NotContains(t, w.Body.String(), "p@ss")
	require.NotContains(t, w.Body.String(), registered.PasswordHash)
}

func TestUserHandler_Retrieve_NotFound(t *testing.T) {
	env := setupTestEnv(t)
	caller := env.createUser(t, "caller")

	w := env.request(t, http.MethodGet, "/users/999/", nil, caller.ID)
	require.Equal(t, http.StatusNotFound, w.Code)
	require.Empty(t, strings.TrimSpace(w.Body.String()))
}

func TestUserHandler_Update_Partial(t *testing.T) {
	env := setupTestEnv(t)
	user := env.createUser(t, "bob")

	w := env.request(t, http.MethodPatch, "/users/1/", map[string]any{
		"first_name": "Bob",
	}, user.ID)
	require.Equal(t, http.StatusOK, w.Code)

	var response map[string]any
	decodeBody(t, w, &response)
	require.Equal(t, "Bob", response["first_name"])
	require.Equal(t, "bob", response["username"])
	require.Equal(t, "bob@example.com", response["email"])
}

func TestUserHandler_Delete(t *testing.T) {
	env := setupTestEnv(t)
	caller := env.createUser(t, "caller")
	victim := env.createUser(t, "victim")

	w := env.request(t, http.MethodDelete, "/users/2/", nil, caller.ID)
	require.Equal(t, http.StatusNoContent, w.Code)
	require.Empty(t, w.Body.String())

	var count int64
	env.db.Model(&models.User{}).Where("id = ?", victim.ID).Count(&count)
	require.Zero(t, count)

	w = env.request(t, http.MethodDelete, "/users/2/", nil, caller.ID)
	require.Equal(t, http.StatusNotFound, w.Code)
}

func TestUserHandler_Delete_CascadesAndNullifies(t *testing.T) {
	env := setupTestEnv(t)
	owner := env.createUser(t, "owner")
	doomed := env.createUser(t, "doomed")

	// doomed owns a project of their own, is assigned a task in owner's
	// project, and commented on it.
	ownProject := env.createProject(t, "Doomed Project", doomed.ID)
	otherProject := env.createProject(t, "Other Project", owner.ID)
	assigned := env.createTask(t, "Assigned", otherProject.ID, &doomed.ID)
	env.createTask(t, "In Doomed Project", ownProject.ID, nil)
	comment := env.createComment(t, "mine", doomed.ID, assigned.ID)

	w := env.request(t, http.MethodDelete, "/users/2/", nil, owner.ID)
	require.Equal(t, http.StatusNoContent, w.Code)

	// Owned project and its task are gone.
	err := env.db.First(&models.Project{}, ownProject.ID).Error
	require.True(t, errors.Is(err, gorm.ErrRecordNotFound))
	var taskCount int64
	env.db.Model(&models.Task{}).Where("project_id = ?", ownProject.ID).Count(&taskCount)
	require.Zero(t, taskCount)

	// The assigned task survives, unassigned.
	var survivor models.Task
	require.NoError(t, env.db.First(&survivor, assigned.ID).Error)
	require.Nil(t, survivor.AssignedToID)

	// The comment is gone with its author.
	err = env.db.First(&models.Comment{}, comment.ID).Error
	require.True(t, errors.Is(err, gorm.ErrRecordNotFound))
}
