// File: cmd/hospital/client/client.go
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/hashicorp/go-retryablehttp"
	"github.com/rs/zerolog"

	"github.com/SanteonNL/occupancy/cmd/hospital/types"
	"github.com/SanteonNL/occupancy/models/hospital"
)

// HospitalApiClient talks to the hospital API
type HospitalApiClient struct {
	BaseURI    string
	HTTPClient *http.Client
	log        zerolog.Logger
}

// APIError is returned for non-2xx responses
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("hospital api: %d %s", e.StatusCode, e.Message)
}

// NewHospitalApiClient returns a client that retries failed requests up to
// retryMax times.
func NewHospitalApiClient(baseURI string, retryMax int, log zerolog.Logger) *HospitalApiClient {
	retryClient := retryablehttp.NewClient()
	retryClient.RetryMax = retryMax
	retryClient.RetryWaitMin = 50 * time.Millisecond
	retryClient.RetryWaitMax = time.Second
	retryClient.HTTPClient = &http.Client{
		Timeout: 30 * time.Second,
	}
	retryClient.Logger = nil
	retryClient.RequestLogHook = func(_ retryablehttp.Logger, req *http.Request, attempt int) {
		if attempt > 0 {
			log.Warn().Str("url", req.URL.String()).Int("attempt", attempt).Msg("Retrying request")
		}
	}

	return &HospitalApiClient{
		BaseURI:    baseURI,
		HTTPClient: retryClient.StandardClient(),
		log:        log.With().Str("component", "client").Logger(),
	}
}

// Summary returns the hospital summary
func (c *HospitalApiClient) Summary(ctx context.Context) (types.Summary, error) {
	var s types.Summary
	err := c.get(ctx, "hospital", nil, &s)
	return s, err
}

// Occupants returns all occupants, grouped by kind when sortByCode is set
func (c *HospitalApiClient) Occupants(ctx context.Context, sortByCode bool) ([]hospital.Occupant, error) {
	query := url.Values{}
	if sortByCode {
		query.Set("sort", "code")
	}

	var views []types.OccupantView
	if err := c.get(ctx, "hospital/occupants", query, &views); err != nil {
		return nil, err
	}

	occupants := make([]hospital.Occupant, 0, len(views))
	for _, v := range views {
		o, ok := v.Occupant()
		if !ok {
			c.log.Warn().Uint8("code", v.Code).Msg("Skipping occupant with unknown code")
			continue
		}
		occupants = append(occupants, o)
	}
	return occupants, nil
}

// CheckIn checks o in to the hospital
func (c *HospitalApiClient) CheckIn(ctx context.Context, o hospital.Occupant) (types.OccupantView, error) {
	var created types.OccupantView

	switch v := o.(type) {
	case hospital.Patient:
		body := types.PatientRequest{LastName: v.LastName, FirstName: v.FirstName, Age: v.Age, Condition: uint8(v.Condition)}
		return created, c.post(ctx, "hospital/patients", body, &created)
	case hospital.HospitalStaff:
		body := types.StaffRequest{LastName: v.LastName, FirstName: v.FirstName, Age: v.Age, Position: uint8(v.Position)}
		return created, c.post(ctx, "hospital/staff", body, &created)
	default:
		return created, fmt.Errorf("unsupported occupant type %T", o)
	}
}

// get wraps do using http.MethodGet
func (c *HospitalApiClient) get(ctx context.Context, endpoint string, query url.Values, response any) error {
	return c.do(ctx, http.MethodGet, endpoint, query, nil, response)
}

// post wraps do using http.MethodPost
func (c *HospitalApiClient) post(ctx context.Context, endpoint string, body, response any) error {
	return c.do(ctx, http.MethodPost, endpoint, nil, body, response)
}

func (c *HospitalApiClient) do(ctx context.Context, method, endpoint string, query url.Values, body, response any) error {
	req, err := c.prepareRequest(ctx, method, endpoint, query, body)
	if err != nil {
		return err
	}
	return c.sendRequest(req, response)
}

// prepareRequest returns a new HTTP request given a method, API endpoint,
// query and optional body.
func (c *HospitalApiClient) prepareRequest(ctx context.Context, method, endpoint string, query url.Values, body any) (*http.Request, error) {
	uri, err := url.JoinPath(c.BaseURI, endpoint)
	if err != nil {
		return nil, err
	}
	if len(query) > 0 {
		uri += "?" + query.Encode()
	}

	var reader io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			return nil, err
		}
		reader = bytes.NewReader(b)
	}

	req, err := http.NewRequestWithContext(ctx, method, uri, reader)
	if err != nil {
		return nil, err
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json; charset=utf-8")
	}
	req.Header.Set("Accept", "application/json")
	return req, nil
}

// sendRequest sends an HTTP request and stores the HTTP response body in the value
// pointed to by response.
func (c *HospitalApiClient) sendRequest(req *http.Request, response any) error {
	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	c.log.Debug().
		Str("method", req.Method).
		Str("url", req.URL.String()).
		Str("status", resp.Status).
		Msg("Received response")

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		var apiErr types.ErrorResponse
		if err := json.NewDecoder(resp.Body).Decode(&apiErr); err != nil || apiErr.Error == "" {
			apiErr.Error = resp.Status
		}
		return &APIError{StatusCode: resp.StatusCode, Message: apiErr.Error}
	}

	if response != nil {
		if err := json.NewDecoder(resp.Body).Decode(response); err != nil {
			return fmt.Errorf("failed to decode response: %w", err)
		}
	}
	return nil
}
