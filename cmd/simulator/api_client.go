package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/dom/wardle/internal/domain"
)

// APIClient handles HTTP communication with the backend
type APIClient struct {
	baseURL    string
	httpClient *http.Client
}

// NewAPIClient creates a new API client
func NewAPIClient(baseURL string) *APIClient {
	return &APIClient{
		baseURL: baseURL + "/api/v1",
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
	}
}

// Response types matching backend

type championsResponse struct {
	Champions []*domain.Champion `json:"champions"`
	Source    string             `json:"source"`
}

type namesResponse struct {
	Names []string `json:"names"`
}

type syncResponse struct {
	Synced int    `json:"synced"`
	Source string `json:"source"`
}

// GetState fetches the current game state
func (c *APIClient) GetState() (*domain.GameState, error) {
	var state domain.GameState
	if err := c.do(http.MethodGet, "/state", nil, "", &state); err != nil {
		return nil, fmt.Errorf("get state: %w", err)
	}
	return &state, nil
}

// GetPresentation fetches the view of the current mode
func (c *APIClient) GetPresentation() (*domain.Presentation, error) {
	var view domain.Presentation
	if err := c.do(http.MethodGet, "/play", nil, "", &view); err != nil {
		return nil, fmt.Errorf("get presentation: %w", err)
	}
	return &view, nil
}

// GetChampions fetches the full champion catalog
func (c *APIClient) GetChampions() ([]*domain.Champion, error) {
	var result championsResponse
	if err := c.do(http.MethodGet, "/champions", nil, "", &result); err != nil {
		return nil, fmt.Errorf("get champions: %w", err)
	}
	return result.Champions, nil
}

// GetNames fetches the guessable names of a catalog
func (c *APIClient) GetNames(kind domain.CatalogKind) ([]string, error) {
	var result namesResponse
	if err := c.do(http.MethodGet, "/catalog/"+string(kind)+"/names", nil, "", &result); err != nil {
		return nil, fmt.Errorf("get %s names: %w", kind, err)
	}
	return result.Names, nil
}

// SubmitGuess submits a guess for the current mode
func (c *APIClient) SubmitGuess(guess string) (*domain.GuessOutcome, error) {
	var outcome domain.GuessOutcome
	body := map[string]string{"guess": guess}
	if err := c.do(http.MethodPost, "/guesses", body, "", &outcome); err != nil {
		return nil, fmt.Errorf("submit guess %q: %w", guess, err)
	}
	return &outcome, nil
}

// ChangeMode switches the current mode
func (c *APIClient) ChangeMode(mode domain.ModeID) (*domain.GameState, error) {
	var state domain.GameState
	body := map[string]domain.ModeID{"mode": mode}
	if err := c.do(http.MethodPut, "/mode", body, "", &state); err != nil {
		return nil, fmt.Errorf("change mode: %w", err)
	}
	return &state, nil
}

// Reset starts the day over
func (c *APIClient) Reset() (*domain.GameState, error) {
	var state domain.GameState
	if err := c.do(http.MethodPost, "/reset", nil, "", &state); err != nil {
		return nil, fmt.Errorf("reset: %w", err)
	}
	return &state, nil
}

// SyncCatalog asks the server to refetch the remote catalog
func (c *APIClient) SyncCatalog(token string) (*syncResponse, error) {
	var result syncResponse
	if err := c.do(http.MethodPost, "/catalog/sync", nil, token, &result); err != nil {
		return nil, fmt.Errorf("sync catalog: %w", err)
	}
	return &result, nil
}

// HTTP helpers

func (c *APIClient) do(method, path string, body interface{}, token string, dst interface{}) error {
	var bodyReader io.Reader
	if body != nil {
		jsonBody, err := json.Marshal(body)
		if err != nil {
			return err
		}
		bodyReader = bytes.NewReader(jsonBody)
	}

	req, err := http.NewRequest(method, c.baseURL+path, bodyReader)
	if err != nil {
		return err
	}

	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		bodyBytes, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("status %d: %s", resp.StatusCode, bytes.TrimSpace(bodyBytes))
	}

	if err := json.NewDecoder(resp.Body).Decode(dst); err != nil {
		return fmt.Errorf("failed to decode response: %w", err)
	}
	return nil
}
