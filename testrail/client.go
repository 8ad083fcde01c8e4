package testrail

import (
	"bytes"
	"crypto/tls"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/bitrise-io/go-utils/v2/log"
	"github.com/goccy/go-json"
	"github.com/hashicorp/go-cleanhttp"
)

const (
	apiPath        = "/index.php?/api/v2/"
	nextLinkPrefix = "/api/v2/"
	// DefaultTimeout is used when no timeout is configured.
	DefaultTimeout = 10 * time.Second
)

// Settings ...
type Settings struct {
	URL       string
	Email     string
	Password  string
	Timeout   time.Duration
	CertCheck bool
}

// Client is the TestRail API surface used by the reporter.
type Client interface {
	AddResults(runID int, payload AddResultsPayload) error
	AddRun(projectID int, payload AddRunPayload) (Run, error)
	AddPlanEntry(planID int, payload AddPlanEntryPayload) (PlanEntry, error)
	AddPlan(projectID int, payload AddPlanPayload) (Plan, error)
	UpdateRun(runID int, payload UpdateCasesPayload) error
	UpdatePlanEntry(planID int, entryID string, payload UpdateCasesPayload) error
	CloseRun(runID int) error
	ClosePlan(planID int) error
	GetRun(runID int) (Run, error)
	GetPlan(planID int) (Plan, error)
	GetTests(runID int) ([]Test, error)
	GetCases(projectID, suiteID int) ([]Case, error)
	GetSuites(projectID int) ([]Suite, error)
}

type client struct {
	baseURL    string
	email      string
	password   string
	httpClient *http.Client
	logger     log.Logger
}

// NewClient ...
func NewClient(settings Settings, logger log.Logger) Client {
	transport := cleanhttp.DefaultPooledTransport()
	if !settings.CertCheck {
		transport.TLSClientConfig = &tls.Config{InsecureSkipVerify: true} //nolint:gosec
	}

	timeout := settings.Timeout
	if timeout <= 0 {
		timeout = DefaultTimeout
	}

	return &client{
		baseURL:  strings.TrimRight(settings.URL, "/") + apiPath,
		email:    settings.Email,
		password: settings.Password,
		httpClient: &http.Client{
			Transport: transport,
			Timeout:   timeout,
		},
		logger: logger,
	}
}

// APIError is returned for every non-200 TestRail response.
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("TestRail API returned HTTP %d", e.StatusCode)
	}
	return fmt.Sprintf("TestRail API returned HTTP %d (%s)", e.StatusCode, e.Message)
}

func newAPIError(statusCode int, body []byte) *APIError {
	var errorResponse struct {
		Error string `json:"error"`
	}
	if err := json.Unmarshal(body, &errorResponse); err == nil && errorResponse.Error != "" {
		return &APIError{StatusCode: statusCode, Message: errorResponse.Error}
	}
	return &APIError{StatusCode: statusCode, Message: strings.TrimSpace(string(body))}
}

func (c *client) sendGet(uri string, v interface{}) error {
	return c.send(http.MethodGet, uri, nil, v)
}

func (c *client) sendPost(uri string, data interface{}, v interface{}) error {
	if data == nil {
		data = struct{}{}
	}
	return c.send(http.MethodPost, uri, data, v)
}

func (c *client) send(method, uri string, data interface{}, v interface{}) error {
	var body io.Reader = http.NoBody
	if data != nil {
		b, err := json.Marshal(data)
		if err != nil {
			return fmt.Errorf("failed to encode request: %w", err)
		}
		body = bytes.NewReader(b)
	}

	req, err := http.NewRequest(method, c.baseURL+uri, body)
	if err != nil {
		return fmt.Errorf("create request failed: %w", err)
	}
	req.SetBasicAuth(c.email, c.password)
	req.Header.Set("Content-Type", "application/json")

	c.logger.Debugf("%s %s", method, uri)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("request failed: %w", err)
	}
	defer func() {
		if err := resp.Body.Close(); err != nil {
			c.logger.Warnf("Failed to close response body: %s", err)
		}
	}()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("failed to read response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		return newAPIError(resp.StatusCode, raw)
	}

	if v == nil || len(bytes.TrimSpace(raw)) == 0 {
		return nil
	}
	if err := json.Unmarshal(raw, v); err != nil {
		return fmt.Errorf("failed to decode response: %w", err)
	}
	return nil
}

// getList reads a bulk endpoint. TestRail 6.7+ wraps the items in a page object
// ({"offset":..,"_links":{"next":..},"<key>":[...]}), older servers return a bare array.
func getList[T any](c *client, uri, key string) ([]T, error) {
	items := []T{}
	for uri != "" {
		var raw json.RawMessage
		if err := c.sendGet(uri, &raw); err != nil {
			return nil, err
		}

		trimmed := bytes.TrimSpace(raw)
		if len(trimmed) > 0 && trimmed[0] == '[' {
			var page []T
			if err := json.Unmarshal(trimmed, &page); err != nil {
				return nil, fmt.Errorf("failed to decode %s: %w", key, err)
			}
			return append(items, page...), nil
		}

		var page map[string]json.RawMessage
		if err := json.Unmarshal(trimmed, &page); err != nil {
			return nil, fmt.Errorf("failed to decode %s page: %w", key, err)
		}

		if rawItems, ok := page[key]; ok {
			var pageItems []T
			if err := json.Unmarshal(rawItems, &pageItems); err != nil {
				return nil, fmt.Errorf("failed to decode %s: %w", key, err)
			}
			items = append(items, pageItems...)
		}

		uri = ""
		if rawLinks, ok := page["_links"]; ok {
			var links struct {
				Next *string `json:"next"`
			}
			if err := json.Unmarshal(rawLinks, &links); err != nil {
				return nil, fmt.Errorf("failed to decode %s page links: %w", key, err)
			}
			if links.Next != nil {
				uri = strings.TrimPrefix(*links.Next, nextLinkPrefix)
			}
		}
	}
	return items, nil
}
