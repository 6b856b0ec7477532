package racefueltest

import (
	"bytes"
	"fmt"
	"net/http/httptest"
	"strconv"
	"strings"
	"testing"
	"time"

	"github.com/goccy/go-json"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/require"

	"github.com/racefuel/racefuel-api/internal/auth"
)

// MakeToken signs a token for subject the way the identity provider would.
func MakeToken(t testing.TB, idp auth.IdentityProvider, subject string) string {
	t.Helper()
	token, err := auth.MakeJWT(subject, jwt.SigningMethodHS256, idp, time.Hour)
	require.NoError(t, err)
	return token
}

// GetJSONField reads a value from the recorded JSON body. path may descend
// into objects and arrays with dots, e.g. "food_instances.0.contribution".
// Numbers come back as int64 when integral, otherwise float64.
func GetJSONField(w *httptest.ResponseRecorder, path string) (any, error) {
	var body any
	decoder := json.NewDecoder(bytes.NewReader(w.Body.Bytes()))
	decoder.UseNumber()
	if err := decoder.Decode(&body); err != nil {
		return nil, err
	}

	val := body
	for _, key := range strings.Split(path, ".") {
		switch node := val.(type) {
		case map[string]any:
			next, ok := node[key]
			if !ok {
				return nil, fmt.Errorf("field %s not found in response", path)
			}
			val = next
		case []any:
			i, err := strconv.Atoi(key)
			if err != nil || i < 0 || i >= len(node) {
				return nil, fmt.Errorf("index %s out of range in %s", key, path)
			}
			val = node[i]
		default:
			return nil, fmt.Errorf("field %s not found in response", path)
		}
	}

	if num, ok := val.(json.Number); ok {
		if i, err := num.Int64(); err == nil {
			return i, nil
		}
		if f, err := num.Float64(); err == nil {
			return f, nil
		}
	}

	return val, nil
}
