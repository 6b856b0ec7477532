package api

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	tc "github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"

	rt "github.com/racefuel/racefuel-api/internal/racefueltest"
)

type postgresContainer struct {
	Ctx       context.Context
	Container postgres.PostgresContainer
	URI       string
}

type StdoutLogConsumer struct{}

func (lc *StdoutLogConsumer) Accept(l tc.Log) {
	if l.LogType == "STDERR" {
		_, err := fmt.Fprintln(os.Stdout, string(l.Content))
		if err != nil {
			fmt.Println("Error writing to stdout:", err)
			return
		}
	}
}

func SetupPostgres(t testing.TB) *postgresContainer {
	t.Helper()
	ctx := context.Background()

	// Ensure migration files exist
	migrations, err := filepath.Glob("../../sql/schema/*.sql")
	require.NoError(t, err)
	require.NotEmpty(t, migrations)

	g := StdoutLogConsumer{}

	pgc, err := postgres.Run(
		ctx,
		"postgres:18.1-alpine",
		postgres.WithDatabase("racefuel"),
		postgres.WithUsername("postgres"),
		postgres.WithPassword("postgres"),
		tc.WithLogConsumerConfig(&tc.LogConsumerConfig{
			Consumers: []tc.LogConsumer{&g},
		}),
		postgres.BasicWaitStrategies(),
		tc.WithReuseByName("racefueldb-integration-tests"),
	)
	defer tc.CleanupContainer(t, pgc)
	require.NoError(t, err)

	err = pgc.Snapshot(ctx)
	require.NoError(t, err)

	dbURL, err := pgc.ConnectionString(ctx, "sslmode=disable")
	require.NoError(t, err)

	return &postgresContainer{Ctx: ctx, Container: *pgc, URI: dbURL}
}

// ---------------
// TEST CLIENT
// ---------------

type APITestClient struct {
	Mux       http.Handler
	W         *httptest.ResponseRecorder
	Resources map[string]any
	testState *testing.T
}

func (c *APITestClient) GetJSONField(field string) (any, error) {
	return rt.GetJSONField(c.W, field)
}

func (c *APITestClient) GetJSONFieldAsString(field string) (string, error) {
	fieldRetrieved, err := c.GetJSONField(field)
	if err != nil {
		return "", err
	}
	if val, ok := fieldRetrieved.(string); ok {
		return val, nil
	}
	return "", fmt.Errorf("field retrieved from response was not of type string")
}

func (c *APITestClient) GetJSONFieldAsInt64(field string) (int64, error) {
	fieldRetrieved, err := c.GetJSONField(field)
	if err != nil {
		return 0, err
	}
	if val, ok := fieldRetrieved.(int64); ok {
		return val, nil
	}
	return 0, fmt.Errorf("field retrieved from response was not of type int64")
}

// GetJSONFieldAsFloat64 accepts integral numbers as well.
func (c *APITestClient) GetJSONFieldAsFloat64(field string) (float64, error) {
	fieldRetrieved, err := c.GetJSONField(field)
	if err != nil {
		return 0, err
	}
	switch val := fieldRetrieved.(type) {
	case float64:
		return val, nil
	case int64:
		return float64(val), nil
	}
	return 0, fmt.Errorf("field retrieved from response was not a number")
}

// Request records a new request, saves the response to a new recorder for reference,
// and calls an assert check against the response status code before then returning the request.
func (c *APITestClient) Request(req *http.Request, expectedCode int) *http.Request {
	w := httptest.NewRecorder()
	c.Mux.ServeHTTP(w, req)
	c.W = w
	if expectedCode != 0 {
		assert.Equal(c.testState, expectedCode, c.W.Code, "%s %s: %s", req.Method, req.URL.Path, c.W.Body.String())
	}
	return req
}

// MustString is GetJSONFieldAsString that fails the test on error.
func (c *APITestClient) MustString(field string) string {
	c.testState.Helper()
	val, err := c.GetJSONFieldAsString(field)
	require.NoError(c.testState, err)
	return val
}

func (c *APITestClient) GetResource(name string) any {
	if v, ok := c.Resources[name]; ok {
		return v
	}
	return nil
}

func (c *APITestClient) SaveResourceFromJSON(field string, name string) {
	jsonObject, _ := c.GetJSONField(field)
	c.Resources[name] = jsonObject
	slog.Debug(fmt.Sprintf("Saved resource %s at: %v (type: %T)", name, c.Resources[name], c.Resources[name]))
}

func (c *APITestClient) equalsResourceAt(expected any, resourceName string) func() bool {
	return func() bool {
		return expected == c.Resources[resourceName]
	}
}

type httpTestCase struct {
	// Optional name for subtest
	Name string
	// Path saved from making the request
	Path string
	// Request to make; use rt.MakeRequest, or a premade wrapper that uses it
	RequestFunc func() *http.Request
	// JSON objects, derived from the Response body at the given JSON fields, to assign to given names
	SaveFields map[string]string
	// Status code that this subtest expects to receive in response to its Request
	Expected int
	// Further expectations beyond status code, typically surrounding resources
	Checks []func() bool
}

func (tc *httpTestCase) Handle(t *testing.T, client *APITestClient) {
	t.Helper()
	client.testState = t
	tc.Path = client.Request(tc.RequestFunc(), tc.Expected).URL.Path
	for key, val := range tc.SaveFields {
		client.SaveResourceFromJSON(key, val)
	}
	for _, check := range tc.Checks {
		assert.True(t, check())
	}
}

func (tc *httpTestCase) getName() string {
	if tc.Name != "" {
		return tc.Name
	}
	return tc.Path
}
