package testutil

import (
	"encoding/json"
	"io"
	"net/http"
	"testing"

	"github.com/dom/wardle/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// AssertStatusCode verifies the HTTP response status code
func AssertStatusCode(t *testing.T, resp *http.Response, expected int) {
	t.Helper()
	assert.Equal(t, expected, resp.StatusCode, "unexpected status code")
}

// AssertJSONResponse decodes JSON response into v and verifies success
func AssertJSONResponse(t *testing.T, resp *http.Response, v interface{}) {
	t.Helper()

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err, "failed to read response body")

	err = json.Unmarshal(body, v)
	require.NoError(t, err, "failed to unmarshal response: %s", string(body))
}

// AssertErrorResponse verifies error response with expected status and message
func AssertErrorResponse(t *testing.T, resp *http.Response, expectedStatus int, expectedMessage string) {
	t.Helper()

	assert.Equal(t, expectedStatus, resp.StatusCode, "unexpected status code")

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err, "failed to read response body")

	// Error responses are plain text in this API
	assert.Contains(t, string(body), expectedMessage, "error message mismatch")
}

// AssertVerdict checks every attribute of a classic verdict, in table
// column order.
func AssertVerdict(t *testing.T, verdict domain.Verdict, expected ...domain.Status) {
	t.Helper()

	require.Len(t, expected, len(domain.Attributes), "one status per attribute")
	for i, attr := range domain.Attributes {
		assert.Equal(t, expected[i], verdict[attr], "attribute %s", attr)
	}
}

// AssertRejected verifies a guess was not recorded, for the given reason.
func AssertRejected(t *testing.T, outcome *domain.GuessOutcome, reason domain.RejectReason) {
	t.Helper()

	require.NotNil(t, outcome)
	assert.False(t, outcome.Accepted, "guess should be rejected")
	assert.False(t, outcome.Correct, "rejected guess cannot be correct")
	assert.Equal(t, reason, outcome.Reason)
}

// AssertGuessNames verifies the guessed names of a mode, in order.
func AssertGuessNames(t *testing.T, state *domain.GameState, mode domain.ModeID, expected ...string) {
	t.Helper()

	var names []string
	for _, g := range state.GuessesFor(mode) {
		names = append(names, g.Name())
	}
	assert.Equal(t, expected, names, "guesses for %s", mode)
}
