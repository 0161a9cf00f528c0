package e2e

import (
	"net/http/httptest"
	"testing"
	"todo-backend/pkg/infrastructure/logger"
	"todo-backend/pkg/infrastructure/router"
	"todo-backend/pkg/registry"
	"todo-backend/testutil"

	"github.com/gavv/httpexpect/v2"
	"github.com/jmoiron/sqlx"
)

// SetupOption is an option of setup
type SetupOption struct {
	TearDown  func(t *testing.T, client *sqlx.DB)
	StaticDir string
}

// Setup starts the API on a test server backed by an in-memory database.
func Setup(t *testing.T, option SetupOption) (*httpexpect.Expect, *sqlx.DB, func()) {
	t.Helper()
	testutil.ReadConfigE2E()

	client := testutil.NewDBClient(t)
	ctrl := registry.New(client).NewController()

	e := router.New(ctrl, logger.NewWithLevel("error", false), router.Options{
		StaticDir: option.StaticDir,
	})
	srv := httptest.NewServer(e)

	expect := httpexpect.Default(t, srv.URL)

	return expect, client, func() {
		if option.TearDown != nil {
			option.TearDown(t, client)
		}
		srv.Close()
	}
}
