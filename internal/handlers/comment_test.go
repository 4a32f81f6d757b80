package handlers

import (
	"net/http"
	"strings"
	"testing"

	"github.com/stretchr/testify/suite"
	"github.com/pmapi/project-management-api/internal/models"
)

// CommentHandlerTestSuite defines the test suite for CommentHandler
type CommentHandlerTestSuite struct {
	suite.Suite
	env    *testEnv
	caller *models.User
	task   *models.Task
}

// SetupTest runs before each test
func (suite *CommentHandlerTestSuite) SetupTest() {
	suite.env = setupTestEnv(suite.T())
	suite.caller = suite.env.createUser(suite.T(), "caller")
	project := suite.env.createProject(suite.T(), "P", suite.caller.ID)
	suite.task = suite.env.createTask(suite.T(), "t", project.ID, nil)
}

func (suite *CommentHandlerTestSuite) TestCreateComment() {
	w := suite.env.request(suite.T(), http.MethodPost, "/comments/", map[string]any{
		"content": "Looks good",
		"user":    suite.caller.ID,
		"task":    suite.task.ID,
	}, suite.caller.ID)
	suite.Require().Equal(http.StatusCreated, w.Code)

	var response map[string]any
	decodeBody(suite.T(), w, &response)
	suite.Equal("Looks good", response["content"])
	suite.EqualValues(suite.caller.ID, response["user"])
	suite.EqualValues(suite.task.ID, response["task"])
	suite.NotEmpty(response["created_at"])
}

func (suite *CommentHandlerTestSuite) TestCreateComment_MissingFields() {
	w := suite.env.request(suite.T(), http.MethodPost, "/comments/", map[string]any{}, suite.caller.ID)
	suite.Require().Equal(http.StatusBadRequest, w.Code)

	var response map[string][]string
	decodeBody(suite.T(), w, &response)
	for _, field := range []string{"content", "user", "task"} {
		suite.Equal([]string{"This field is required."}, response[field], field)
	}
}

func (suite *CommentHandlerTestSuite) TestCreateComment_DanglingReferences() {
	w := suite.env.request(suite.T(), http.MethodPost, "/comments/", map[string]any{
		"content": "x",
		"user":    41,
		"task":    42,
	}, suite.caller.ID)
	suite.Require().Equal(http.StatusBadRequest, w.Code)

	var response map[string][]string
	decodeBody(suite.T(), w, &response)
	suite.Equal([]string{`Invalid pk "41" - object does not exist.`}, response["user"])
	suite.Equal([]string{`Invalid pk "42" - object does not exist.`}, response["task"])
}

func (suite *CommentHandlerTestSuite) TestCreateComment_ScopedUnderTask() {
	w := suite.env.request(suite.T(), http.MethodPost, "/tasks/1/comments/", map[string]any{
		"content": "scoped",
		"user":    suite.caller.ID,
	}, suite.caller.ID)
	suite.Require().Equal(http.StatusCreated, w.Code)

	var response map[string]any
	decodeBody(suite.T(), w, &response)
	suite.EqualValues(suite.task.ID, response["task"])
}

func (suite *CommentHandlerTestSuite) TestCreateComment_ScopedMissingTask() {
	w := suite.env.request(suite.T(), http.MethodPost, "/tasks/999/comments/", map[string]any{
		"content": "scoped",
		"user":    suite.caller.ID,
	}, suite.caller.ID)
	suite.Require().Equal(http.StatusNotFound, w.Code)
	suite.JSONEq(`{"error": "Task does not exist."}`, w.Body.String())
}

func (suite *CommentHandlerTestSuite) TestListComments_FilterByTask() {
	other := suite.env.createTask(suite.T(), "other", suite.task.ProjectID, nil)
	suite.env.createComment(suite.T(), "a", suite.caller.ID, suite.task.ID)
	suite.env.createComment(suite.T(), "b", suite.caller.ID, other.ID)
	suite.env.createComment(suite.T(), "c", suite.caller.ID, suite.task.ID)

	w := suite.env.request(suite.T(), http.MethodGet, "/comments/?task_id=1", nil, suite.caller.ID)
	suite.Require().Equal(http.StatusOK, w.Code)

	var listed []map[string]any
	decodeBody(suite.T(), w, &listed)
	suite.Require().Len(listed, 2)
	suite.Equal("a", listed[0]["content"])
	suite.Equal("c", listed[1]["content"])
}

func (suite *CommentHandlerTestSuite) TestListComments_InvalidFilter() {
	w := suite.env.request(suite.T(), http.MethodGet, "/comments/?task_id=abc", nil, suite.caller.ID)
	suite.Require().Equal(http.StatusBadRequest, w.Code)
	suite.JSONEq(`{"error": "Invalid task_id"}`, w.Body.String())
}

func (suite *CommentHandlerTestSuite) TestUpdateComment_Partial() {
	suite.env.createComment(suite.T(), "before", suite.caller.ID, suite.task.ID)

	w := suite.env.request(suite.T(), http.MethodPatch, "/comments/1/", map[string]any{
		"content": "after",
	}, suite.caller.ID)
	suite.Require().Equal(http.StatusOK, w.Code)

	var response map[string]any
	decodeBody(suite.T(), w, &response)
	suite.Equal("after", response["content"])
	suite.EqualValues(suite.caller.ID, response["user"])
	suite.EqualValues(suite.task.ID, response["task"])
}

func (suite *CommentHandlerTestSuite) TestGetComment_NotFound() {
	w := suite.env.request(suite.T(), http.MethodGet, "/comments/999/", nil, suite.caller.ID)
	suite.Require().Equal(http.StatusNotFound, w.Code)
	suite.Empty(strings.TrimSpace(w.Body.String()))
}

func (suite *CommentHandlerTestSuite) TestDeleteComment() {
	suite.env.createComment(suite.T(), "gone", suite.caller.ID, suite.task.ID)

	w := suite.env.request(suite.T(), http.MethodDelete, "/comments/1/", nil, suite.caller.ID)
	suite.Require().Equal(http.StatusNoContent, w.Code)

	w = suite.env.request(suite.T(), http.MethodGet, "/comments/1/", nil, suite.caller.ID)
	suite.Require().Equal(http.StatusNotFound, w.Code)
}

func TestCommentHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(CommentHandlerTestSuite))
}
