package httpserver_test

import (
	"encoding/json"
	"net/http/httptest"
	"testing"

	"filmstore/pkg/config"

	"github.com/stretchr/testify/require"
)

func testConfig() *config.Config {
	return &config.Config{}
}

// apiResponse mirrors httpserver.APIResponse with a raw Result so tests can
// decode the payload into whatever shape they expect.
type apiResponse struct {
	Code    string          `json:"code"`
	Message string          `json:"message"`
	Result  json.RawMessage `json:"result"`
}

func decodeAPIResponse(t *testing.T, rec *httptest.ResponseRecorder) apiResponse {
	t.Helper()
	var resp apiResponse
	err := json.Unmarshal(rec.Body.Bytes(), &resp)
	require.NoError(t, err, "failed to decode response body: %s", rec.Body.String())
	return resp
}

func decodeAPIResult(t *testing.T, raw json.RawMessage, target interface{}) {
	t.Helper()
	err := json.Unmarshal(raw, target)
	require.NoError(t, err, "failed to decode result payload")
}

func decodeErrorResponse(t *testing.T, rec *httptest.ResponseRecorder) map[string]string {
	t.Helper()
	var resp map[string]string
	err := json.Unmarshal(rec.Body.Bytes(), &resp)
	require.NoError(t, err, "failed to decode error body: %s", rec.Body.String())
	return resp
}
