//go:build e2e

package e2e_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	gqlhandler "github.com/99designs/gqlgen/graphql/handler"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/require"

	"github.com/lawndon/lawndon-backend/internal/adapter/postgres"
	forumrepo "github.com/lawndon/lawndon-backend/internal/adapter/postgres/forum"
	mowerrepo "github.com/lawndon/lawndon-backend/internal/adapter/postgres/mower"
	mowingrepo "github.com/lawndon/lawndon-backend/internal/adapter/postgres/mowing"
	profilerepo "github.com/lawndon/lawndon-backend/internal/adapter/postgres/profile"
	"github.com/lawndon/lawndon-backend/internal/adapter/postgres/testhelper"
	"github.com/lawndon/lawndon-backend/internal/questions"
	forumsvc "github.com/lawndon/lawndon-backend/internal/service/forum"
	mowersvc "github.com/lawndon/lawndon-backend/internal/service/mower"
	mowingsvc "github.com/lawndon/lawndon-backend/internal/service/mowing"
	profilesvc "github.com/lawndon/lawndon-backend/internal/service/profile"
	graphqlapi "github.com/lawndon/lawndon-backend/internal/transport/graphql"
	"github.com/lawndon/lawndon-backend/internal/transport/graphql/dataloader"
	"github.com/lawndon/lawndon-backend/internal/transport/graphql/generated"
	"github.com/lawndon/lawndon-backend/internal/transport/graphql/resolver"
	"github.com/lawndon/lawndon-backend/internal/transport/middleware"
	"github.com/lawndon/lawndon-backend/internal/transport/rest"
)

// ---------------------------------------------------------------------------
// GraphQL assertion / extraction helpers.
// ---------------------------------------------------------------------------

// gqlData extracts the "data" map from a GraphQL response.
func gqlData(t *testing.T, result map[string]any) map[string]any {
	t.Helper()
	data, ok := result["data"].(map[string]any)
	require.True(t, ok, "expected data object in response")
	return data
}

// gqlString extracts a string field from the data map. Mutation status
// operations return their result this way.
func gqlString(t *testing.T, result map[string]any, field string) string {
	t.Helper()
	data := gqlData(t, result)
	s, ok := data[field].(string)
	require.True(t, ok, "expected string %q in data", field)
	return s
}

// gqlObject extracts an object field from the data map.
func gqlObject(t *testing.T, result map[string]any, field string) map[string]any {
	t.Helper()
	data := gqlData(t, result)
	obj, ok := data[field].(map[string]any)
	require.True(t, ok, "expected object %q in data", field)
	return obj
}

// requireNoErrors asserts that the GraphQL response has no errors.
func requireNoErrors(t *testing.T, result map[string]any) {
	t.Helper()
	if errs, ok := result["errors"]; ok && errs != nil {
		t.Fatalf("unexpected GraphQL errors: %v", errs)
	}
}

// uniqueName returns a name that will not collide across tests sharing the
// database container.
func uniqueName(prefix string) string {
	return fmt.Sprintf("%s-%s", prefix, uuid.NewString()[:8])
}

// ---------------------------------------------------------------------------
// testServer wraps the full-stack HTTP server for E2E tests.
// ---------------------------------------------------------------------------

type testServer struct {
	URL    string
	Client *http.Client
	Pool   *pgxpool.Pool
}

// testLogWriter adapts testing.T to io.Writer for slog.
type testLogWriter struct{ t *testing.T }

func (w testLogWriter) Write(p []byte) (int, error) {
	w.t.Helper()
	w.t.Log(string(p))
	return len(p), nil
}

// setupTestServer bootstraps the full application stack backed by a real
// PostgreSQL container (shared via testhelper).
func setupTestServer(t *testing.T) *testServer {
	t.Helper()

	pool := testhelper.SetupTestDB(t)

	logger := slog.New(slog.NewTextHandler(testLogWriter{t}, nil))
	txm := postgres.NewTxManager(pool)

	profiles := profilerepo.New(pool)
	mowers := mowerrepo.New(pool)
	mowings := mowingrepo.New(pool)
	forums := forumrepo.New(pool)

	profileService := profilesvc.NewService(logger, profiles)
	mowerService := mowersvc.NewService(logger, profiles, mowers, txm)
	mowingService := mowingsvc.NewService(logger, profiles, mowings, txm)
	forumService := forumsvc.NewService(logger, profiles, forums, txm)

	res := resolver.NewResolver(logger, profileService, mowerService, mowingService, forumService)

	schema := generated.NewExecutableSchema(generated.Config{Resolvers: res})
	gqlSrv := gqlhandler.NewDefaultServer(schema)
	gqlSrv.SetErrorPresenter(graphqlapi.NewErrorPresenter(logger))

	dlRepos := &dataloader.Repos{Profile: profiles}

	graphqlHandler := middleware.Chain(
		middleware.RequestID,
		middleware.Recovery(logger),
		dataloader.Middleware(dlRepos),
	)(gqlSrv)

	bank, err := questions.Load()
	require.NoError(t, err)

	mux := http.NewServeMux()
	mux.Handle("POST /query", graphqlHandler)

	healthHandler := rest.NewHealthHandler(pool, "test-version")
	mux.HandleFunc("GET /health/live", healthHandler.Live)
	mux.HandleFunc("GET /health/ready", healthHandler.Ready)
	mux.HandleFunc("GET /questions", rest.NewQuestionsHandler(bank).List)

	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)

	return &testServer{
		URL:    srv.URL,
		Client: srv.Client(),
		Pool:   pool,
	}
}

// graphqlQuery sends a GraphQL POST request and returns status + decoded body.
func (ts *testServer) graphqlQuery(t *testing.T, query string, variables map[string]any) (int, map[string]any) {
	t.Helper()

	body := map[string]any{
		"query":     query,
		"variables": variables,
	}
	jsonBody, err := json.Marshal(body)
	require.NoError(t, err)

	req, err := http.NewRequest(http.MethodPost, ts.URL+"/query", bytes.NewReader(jsonBody))
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")

	resp, err := ts.Client.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	var result map[string]any
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&result))
	return resp.StatusCode, result
}

// registerUser registers a fresh account and returns its account id.
func registerUser(t *testing.T, ts *testServer, username string) string {
	t.Helper()

	const mutation = `
		mutation Register($username: String!, $code: String!) {
			register(username: $username, security_code: $code, telegram_tag: "@e2e",
				region: "North", cords: {lat: 1.0, long: 2.0}, activity_day: "Mon", main_photo: "") {
				account_id
				username
			}
		}`

	status, result := ts.graphqlQuery(t, mutation, map[string]any{
		"username": username,
		"code":     "code-" + username,
	})
	require.Equal(t, http.StatusOK, status)
	requireNoErrors(t, result)

	cookie := gqlObject(t, result, "register")
	accountID, _ := cookie["account_id"].(string)
	require.NotEmpty(t, accountID)
	return accountID
}
