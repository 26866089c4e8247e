package handlers_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"strings"
	"testing"

	"github.com/dom/wardle/internal/catalog"
	"github.com/dom/wardle/internal/domain"
	"github.com/dom/wardle/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func doRequest(t *testing.T, method, url string, body interface{}, header http.Header) *http.Response {
	t.Helper()

	var reader *bytes.Reader
	switch b := body.(type) {
	case nil:
		reader = bytes.NewReader(nil)
	case string:
		reader = bytes.NewReader([]byte(b))
	default:
		data, err := json.Marshal(b)
		require.NoError(t, err)
		reader = bytes.NewReader(data)
	}

	req, err := http.NewRequest(method, url, reader)
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")
	for k, v := range header {
		req.Header[k] = v
	}

	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	t.Cleanup(func() { resp.Body.Close() })
	return resp
}

func TestHealth(t *testing.T) {
	ts := testutil.NewTestServer(t)

	for _, url := range []string{ts.BaseURL() + "/health", ts.APIURL("/health")} {
		resp := doRequest(t, http.MethodGet, url, nil, nil)
		testutil.AssertStatusCode(t, resp, http.StatusOK)
	}
}

func TestGameHandler_State(t *testing.T) {
	ts := testutil.NewTestServer(t)

	resp := doRequest(t, http.MethodGet, ts.APIURL("/state"), nil, nil)
	testutil.AssertStatusCode(t, resp, http.StatusOK)
	assert.Equal(t, "application/json", resp.Header.Get("Content-Type"))
	assert.NotEmpty(t, resp.Header.Get("X-Request-Id"))

	var state domain.GameState
	testutil.AssertJSONResponse(t, resp, &state)
	assert.Equal(t, domain.ModeClassic, state.CurrentMode)
	assert.Equal(t, "222", state.DailyAnswers[domain.ModeClassic])
}

func TestGameHandler_SubmitGuess(t *testing.T) {
	tests := []struct {
		name           string
		mode           domain.ModeID
		body           interface{}
		expectedStatus int
		checkResponse  func(*testing.T, *http.Response)
	}{
		{
			name:           "wrong guess",
			body:           map[string]string{"guess": "Lux"},
			expectedStatus: http.StatusOK,
			checkResponse: func(t *testing.T, resp *http.Response) {
				var outcome domain.GuessOutcome
				testutil.AssertJSONResponse(t, resp, &outcome)
				assert.True(t, outcome.Accepted)
				assert.False(t, outcome.Correct)
				assert.Equal(t, domain.StatusCorrect, outcome.Verdict[domain.AttrGender])
			},
		},
		{
			name:           "correct guess",
			body:           map[string]string{"guess": "jinx"},
			expectedStatus: http.StatusOK,
			checkResponse: func(t *testing.T, resp *http.Response) {
				var outcome domain.GuessOutcome
				testutil.AssertJSONResponse(t, resp, &outcome)
				assert.True(t, outcome.Correct)
				assert.True(t, outcome.Complete)
				assert.Equal(t, "Jinx", outcome.Guess)
			},
		},
		{
			name:           "coming soon",
			mode:           "arena",
			body:           map[string]string{"guess": "Lux"},
			expectedStatus: http.StatusOK,
			checkResponse: func(t *testing.T, resp *http.Response) {
				var outcome domain.GuessOutcome
				testutil.AssertJSONResponse(t, resp, &outcome)
				assert.False(t, outcome.Accepted)
				assert.Equal(t, domain.RejectComingSoon, outcome.Reason)
			},
		},
		{
			name:           "unknown champion",
			body:           map[string]string{"guess": "Teemo"},
			expectedStatus: http.StatusBadRequest,
			checkResponse: func(t *testing.T, resp *http.Response) {
				testutil.AssertErrorResponse(t, resp, http.StatusBadRequest, "Teemo")
			},
		},
		{
			name:           "empty guess",
			body:           map[string]string{"guess": ""},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:           "invalid body",
			body:           "{guess",
			expectedStatus: http.StatusBadRequest,
			checkResponse: func(t *testing.T, resp *http.Response) {
				testutil.AssertErrorResponse(t, resp, http.StatusBadRequest, "Invalid request body")
			},
		},
		{
			name:           "bravery",
			mode:           domain.ModeBravery,
			body:           map[string]string{"guess": "Zed"},
			expectedStatus: http.StatusConflict,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ts := testutil.NewTestServer(t)

			if tt.mode != "" {
				resp := doRequest(t, http.MethodPut, ts.APIURL("/mode"), map[string]string{"mode": string(tt.mode)}, nil)
				require.Equal(t, http.StatusOK, resp.StatusCode)
			}

			resp := doRequest(t, http.MethodPost, ts.APIURL("/guesses"), tt.body, nil)
			assert.Equal(t, tt.expectedStatus, resp.StatusCode)

			if tt.checkResponse != nil {
				tt.checkResponse(t, resp)
			}
		})
	}
}

func TestGameHandler_ChangeMode(t *testing.T) {
	ts := testutil.NewTestServer(t)

	resp := doRequest(t, http.MethodPut, ts.APIURL("/mode"), map[string]string{"mode": "quote"}, nil)
	testutil.AssertStatusCode(t, resp, http.StatusOK)
	var state domain.GameState
	testutil.AssertJSONResponse(t, resp, &state)
	assert.Equal(t, domain.ModeQuote, state.CurrentMode)

	resp = doRequest(t, http.MethodPut, ts.APIURL("/mode"), map[string]string{"mode": ""}, nil)
	testutil.AssertErrorResponse(t, resp, http.StatusBadRequest, "invalid mode")
}

func TestGameHandler_Reset(t *testing.T) {
	ts := testutil.NewTestServer(t)

	resp := doRequest(t, http.MethodPost, ts.APIURL("/guesses"), map[string]string{"guess": "Lux"}, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	resp = doRequest(t, http.MethodPost, ts.APIURL("/reset"), nil, nil)
	testutil.AssertStatusCode(t, resp, http.StatusOK)
	var state domain.GameState
	testutil.AssertJSONResponse(t, resp, &state)
	assert.Empty(t, state.Guesses)

	ts.Services.Catalog.Set(&domain.Catalog{}, domain.CatalogSnapshot{Source: catalog.SourceEmpty})
	resp = doRequest(t, http.MethodPost, ts.APIURL("/reset"), nil, nil)
	testutil.AssertErrorResponse(t, resp, http.StatusServiceUnavailable, "Catalog unavailable")
}

func TestGameHandler_Play(t *testing.T) {
	ts := testutil.NewTestServer(t)

	resp := doRequest(t, http.MethodPut, ts.APIURL("/mode"), map[string]string{"mode": "splash"}, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	resp = doRequest(t, http.MethodPost, ts.APIURL("/guesses"), map[string]string{"guess": "Ahri"}, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	resp = doRequest(t, http.MethodGet, ts.APIURL("/play"), nil, nil)
	testutil.AssertStatusCode(t, resp, http.StatusOK)

	var view domain.Presentation
	testutil.AssertJSONResponse(t, resp, &view)
	assert.Equal(t, domain.ModeSplash, view.Mode.ID)
	assert.Equal(t, 350, view.Zoom)
	require.Len(t, view.Guesses, 1)
	assert.Equal(t, "Ahri", view.Guesses[0].Name)
	require.NotNil(t, view.Clue)
	assert.True(t, strings.HasSuffix(view.Clue.Image, "/splash/1.jpg"))
}

func TestGameHandler_Modes(t *testing.T) {
	ts := testutil.NewTestServer(t)

	resp := doRequest(t, http.MethodGet, ts.APIURL("/modes"), nil, nil)
	testutil.AssertStatusCode(t, resp, http.StatusOK)

	var result struct {
		Modes   []domain.GameMode `json:"modes"`
		Default domain.ModeID     `json:"default"`
	}
	testutil.AssertJSONResponse(t, resp, &result)
	assert.Len(t, result.Modes, len(domain.GameModes))
	assert.Equal(t, domain.ModeClassic, result.Modes[0].ID)
	assert.Equal(t, domain.ModeClassic, result.Default)
}

func TestGameHandler_Loadout(t *testing.T) {
	ts := testutil.NewTestServer(t)

	resp := doRequest(t, http.MethodGet, ts.APIURL("/loadout"), nil, nil)
	testutil.AssertStatusCode(t, resp, http.StatusOK)

	var loadout domain.Loadout
	testutil.AssertJSONResponse(t, resp, &loadout)
	require.NotNil(t, loadout.Champion)
	assert.Equal(t, "Zed", loadout.Champion.Name)
	assert.Len(t, loadout.Items, domain.LoadoutItems)
	assert.Len(t, loadout.Spells, domain.LoadoutSpells)
}
