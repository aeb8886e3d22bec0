package httpserver_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"filmstore/httpserver"

	"github.com/stretchr/testify/assert"
)

func TestHealthCheck(t *testing.T) {
	server := httpserver.Default(testConfig())
	request := httptest.NewRequest(http.MethodGet, "/healthcheck", nil)
	recorder := httptest.NewRecorder()

	server.Router.ServeHTTP(recorder, request)

	assert.Equal(t, http.StatusOK, recorder.Code)
	resp := decodeAPIResponse(t, recorder)
	assert.Equal(t, "200", resp.Code)
	assert.Equal(t, "OK", resp.Message)

	var result map[string]string
	decodeAPIResult(t, resp.Result, &result)
	assert.Equal(t, "OK", result["status"])
}
