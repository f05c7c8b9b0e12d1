package e2etest

import (
	"encoding/json"
	"io"
	"net/http"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

// apiResponse is a decoded response from the real server
type apiResponse struct {
	StatusCode int
	Header     http.Header
	Body       map[string]interface{}
	Raw        []byte
}

// postJSON sends body to path on the real server and decodes the JSON object it returns
func postJSON(t *testing.T, env *TestEnv, path, body string) apiResponse {
	resp, err := http.Post(env.ServerBaseURL+path, "application/json", strings.NewReader(body))
	require.NoError(t, err, "Should be able to make a request to %s", path)
	defer resp.Body.Close()
	return readResponse(t, resp)
}

// getJSON fetches path from the real server
func getJSON(t *testing.T, env *TestEnv, path string) apiResponse {
	resp, err := http.Get(env.ServerBaseURL + path)
	require.NoError(t, err, "Should be able to make a request to %s", path)
	defer resp.Body.Close()
	return readResponse(t, resp)
}

func readResponse(t *testing.T, resp *http.Response) apiResponse {
	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err, "Should be able to read response body")

	result := apiResponse{StatusCode: resp.StatusCode, Header: resp.Header, Raw: raw}
	if strings.HasPrefix(strings.TrimSpace(string(raw)), "{") {
		require.NoError(t, json.Unmarshal(raw, &result.Body), "Response should be valid JSON")
	}
	return result
}
