package mutation_test

import (
	"net/http"
	"testing"
	"todo-backend/pkg/infrastructure/router"
	"todo-backend/testutil"
	"todo-backend/testutil/e2e"

	"github.com/gavv/httpexpect/v2"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTodo_CreateTodo(t *testing.T) {
	expect, client, teardown := e2e.Setup(t, e2e.SetupOption{
		TearDown: func(t *testing.T, client *sqlx.DB) {
			testutil.DropAll(t, client)
		},
	})
	defer teardown()

	tests := []struct {
		name     string
		body     interface{}
		assert   func(t *testing.T, got *httpexpect.Response)
		teardown func(t *testing.T)
	}{
		{
			name: "It should create todo with defaults",
			body: map[string]interface{}{"name": "buy milk"},
			assert: func(t *testing.T, got *httpexpect.Response) {
				got.Status(http.StatusCreated)
				got.JSON().Object().IsEqual(map[string]interface{}{
					"id":         1,
					"name":       "buy milk",
					"priority":   "low",
					"isComplete": false,
					"isFun":      false,
				})
			},
			teardown: func(t *testing.T) {
				testutil.DropTodo(t, client)
			},
		},
		{
			name: "It should never create a completed todo",
			body: map[string]interface{}{"name": "sneaky", "isComplete": true, "isFun": true, "priority": "high"},
			assert: func(t *testing.T, got *httpexpect.Response) {
				got.Status(http.StatusCreated)
				todo := got.JSON().Object()
				todo.Value("isComplete").Boolean().IsFalse()
				todo.Value("isFun").Boolean().IsTrue()
				todo.Value("priority").String().IsEqual("high")
			},
			teardown: func(t *testing.T) {
				testutil.DropTodo(t, client)
			},
		},
		{
			name: "It should reject a missing name without writing",
			body: map[string]interface{}{"priority": "high"},
			assert: func(t *testing.T, got *httpexpect.Response) {
				got.Status(http.StatusBadRequest)
				got.JSON().Object().Value("message").String().IsEqual("Name is required")
				assert.Equal(t, 0, testutil.CountTodo(t, client))
			},
			teardown: func(t *testing.T) {},
		},
		{
			name: "It should reject an empty name without writing",
			body: map[string]interface{}{"name": ""},
			assert: func(t *testing.T, got *httpexpect.Response) {
				got.Status(http.StatusBadRequest)
				got.JSON().Object().Value("message").String().IsEqual("Name is required")
				assert.Equal(t, 0, testutil.CountTodo(t, client))
			},
			teardown: func(t *testing.T) {},
		},
		{
			name: "It should reject an isFun that is not a boolean",
			body: map[string]interface{}{"name": "x", "isFun": "yes"},
			assert: func(t *testing.T, got *httpexpect.Response) {
				got.Status(http.StatusBadRequest)
				got.JSON().Object().Value("message").String().IsEqual("Invalid request body")
				assert.Equal(t, 0, testutil.CountTodo(t, client))
			},
			teardown: func(t *testing.T) {},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := expect.POST(router.TodosPath).WithJSON(tt.body).Expect()
			tt.assert(t, got)
			tt.teardown(t)
		})
	}
}

func TestTodo_DeleteTodo(t *testing.T) {
	expect, client, teardown := e2e.Setup(t, e2e.SetupOption{
		TearDown: func(t *testing.T, client *sqlx.DB) {
			testutil.DropAll(t, client)
		},
	})
	defer teardown()

	create := func(name string) {
		expect.POST(router.TodosPath).
			WithJSON(map[string]interface{}{"name": name}).
			Expect().
			Status(http.StatusCreated)
	}

	tests := []struct {
		name     string
		arrange  func(t *testing.T)
		id       string
		assert   func(t *testing.T, got *httpexpect.Response)
		teardown func(t *testing.T)
	}{
		{
			name:    "It should return 404 and leave the table unchanged",
			arrange: func(t *testing.T) { create("keep") },
			id:      "42",
			assert: func(t *testing.T, got *httpexpect.Response) {
				got.Status(http.StatusNotFound)
				got.JSON().Object().Value("message").String().IsEqual("Todo item not found")
				assert.Equal(t, 1, testutil.CountTodo(t, client))
			},
			teardown: func(t *testing.T) {
				testutil.DropTodo(t, client)
			},
		},
		{
			name: "It should delete without resetting while rows remain",
			arrange: func(t *testing.T) {
				create("one")
				create("two")
			},
			id: "1",
			assert: func(t *testing.T, got *httpexpect.Response) {
				got.Status(http.StatusOK)
				got.JSON().Object().Value("message").String().IsEqual("Todo item 1 deleted.")
			},
			teardown: func(t *testing.T) {
				testutil.DropTodo(t, client)
			},
		},
		{
			name:    "It should note the counter reset when the last row goes",
			arrange: func(t *testing.T) { create("only") },
			id:      "1",
			assert: func(t *testing.T, got *httpexpect.Response) {
				got.Status(http.StatusOK)
				got.JSON().Object().Value("message").String().IsEqual("Todo item 1 deleted. ID counter reset.")
				assert.Equal(t, 0, testutil.CountTodo(t, client))
			},
			teardown: func(t *testing.T) {},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.arrange(t)
			got := expect.DELETE(router.TodosPath + "/" + tt.id).Expect()
			tt.assert(t, got)
			tt.teardown(t)
		})
	}
}

func TestTodo_ResetScenario(t *testing.T) {
	expect, _, teardown := e2e.Setup(t, e2e.SetupOption{})
	defer teardown()

	expect.POST(router.TodosPath).
		WithJSON(map[string]interface{}{"name": "buy milk"}).
		Expect().
		Status(http.StatusCreated).
		JSON().Object().IsEqual(map[string]interface{}{
		"id":         1,
		"name":       "buy milk",
		"priority":   "low",
		"isComplete": false,
		"isFun":      false,
	})

	expect.DELETE(router.TodosPath + "/1").
		Expect().
		Status(http.StatusOK).
		JSON().Object().Value("message").String().Contains("1").Contains("reset")

	expect.POST(router.TodosPath).
		WithJSON(map[string]interface{}{"name": "walk dog"}).
		Expect().
		Status(http.StatusCreated).
		JSON().Object().Value("id").Number().IsEqual(1)

	expect.GET(router.TodosPath + "/1").
		Expect().
		Status(http.StatusOK).
		JSON().Object().Value("name").String().IsEqual("walk dog")
}

func TestTodo_MutationStorageFailure(t *testing.T) {
	expect, client, teardown := e2e.Setup(t, e2e.SetupOption{})
	defer teardown()

	_, err := client.Exec("DROP TABLE todos")
	require.NoError(t, err)

	tests := []struct {
		name string
		act  func(t *testing.T) *httpexpect.Response
	}{
		{
			name: "It should return 500 when creating a todo",
			act: func(t *testing.T) *httpexpect.Response {
				return expect.POST(router.TodosPath).
					WithJSON(map[string]interface{}{"name": "buy milk"}).
					Expect()
			},
		},
		{
			name: "It should return 500 when deleting a todo",
			act: func(t *testing.T) *httpexpect.Response {
				return expect.DELETE(router.TodosPath + "/1").Expect()
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.act(t)

			got.Status(http.StatusInternalServerError)
			body := got.JSON().Object()
			body.Value("message").String().IsEqual("Database error")
			body.Value("error").String().Contains("no such table")
		})
	}
}
