// Package routeclient is the Go client for the route planning API.
// It owns the session token and maps transport failures onto a small
// error taxonomy callers can branch on.
package routeclient

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/url"
	"strconv"
	"sync"
	"time"

	"bagusgo_backend/internal/stops"
)

type Client struct {
	baseURL    string
	httpClient *http.Client

	mu    sync.Mutex
	token string
	user  *User

	// OnAuthExpired fires after the client clears its session on a 401.
	// UIs hook this to return to the login screen.
	OnAuthExpired func()
}

type User struct {
	ID          string `json:"id"`
	PhoneNumber string `json:"phone_number"`
}

// Stop aliases the tracker's stop type so optimizer results feed the
// progress tracker directly.
type Stop = stops.Stop

type Option func(*Client)

func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) { c.httpClient = hc }
}

func WithToken(token string) Option {
	return func(c *Client) { c.token = token }
}

func New(baseURL string, opts ...Option) *Client {
	c := &Client{
		baseURL:    baseURL,
		httpClient: &http.Client{Timeout: 30 * time.Second},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Token returns the current session token, empty when logged out.
func (c *Client) Token() string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.token
}

// CurrentUser returns the logged-in user, nil when logged out.
func (c *Client) CurrentUser() *User {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.user
}

// Logout drops the session locally. There is no server-side session to
// revoke; tokens simply expire.
func (c *Client) Logout() {
	c.mu.Lock()
	c.token = ""
	c.user = nil
	c.mu.Unlock()
}

type credentials struct {
	PhoneNumber string `json:"phone_number"`
	Password    string `json:"password"`
}

type authResponse struct {
	Status string `json:"status"`
	Token  string `json:"token"`
	User   *User  `json:"user"`
}

func (c *Client) Login(ctx context.Context, phoneNumber, password string) (*User, error) {
	return c.authenticate(ctx, "/api/auth/login", phoneNumber, password)
}

func (c *Client) Register(ctx context.Context, phoneNumber, password string) (*User, error) {
	return c.authenticate(ctx, "/api/auth/register", phoneNumber, password)
}

func (c *Client) authenticate(ctx context.Context, path, phoneNumber, password string) (*User, error) {
	body, err := json.Marshal(credentials{PhoneNumber: phoneNumber, Password: password})
	if err != nil {
		return nil, err
	}

	resp, err := c.send(ctx, http.MethodPost, path, "application/json", bytes.NewReader(body))
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, c.errorFromResponse(resp)
	}

	var auth authResponse
	if err := json.NewDecoder(resp.Body).Decode(&auth); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrServer, err)
	}

	c.mu.Lock()
	c.token = auth.Token
	c.user = auth.User
	c.mu.Unlock()

	return auth.User, nil
}

type optimizeRequest struct {
	Origin       Origin   `json:"origin"`
	Destinations []string `json:"destinations"`
}

type Origin struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

// OptimizeRoute submits the destinations and returns the stops exactly
// in the order the server planned them. No client-side reordering.
func (c *Client) OptimizeRoute(ctx context.Context, origin Origin, destinations []string) ([]Stop, error) {
	var items []Stop
	err := c.doJSON(ctx, http.MethodPost, "/api/optimize-route", optimizeRequest{Origin: origin, Destinations: destinations}, &items)
	if err != nil {
		return nil, err
	}
	return items, nil
}

// GeocodeResult is a resolved address with optional coordinates.
type GeocodeResult struct {
	FormattedAddress string `json:"formatted_address"`
	Location         *struct {
		Lat float64 `json:"lat"`
		Lng float64 `json:"lng"`
	} `json:"location"`
}

// Geocode resolves a free-text query. Source "scan" gets the lenient
// OCR contract; anything else is a strict search.
func (c *Client) Geocode(ctx context.Context, query, source string) (GeocodeResult, error) {
	q := url.Values{}
	q.Set("q", query)
	if source != "" {
		q.Set("source", source)
	}

	var result GeocodeResult
	err := c.doJSON(ctx, http.MethodGet, "/api/geocode?"+q.Encode(), nil, &result)
	return result, err
}

// ReverseGeocode resolves a coordinate to a formatted address.
func (c *Client) ReverseGeocode(ctx context.Context, lat, lng float64) (GeocodeResult, error) {
	q := url.Values{}
	q.Set("lat", strconv.FormatFloat(lat, 'f', -1, 64))
	q.Set("lng", strconv.FormatFloat(lng, 'f', -1, 64))

	var result GeocodeResult
	err := c.doJSON(ctx, http.MethodGet, "/api/reverse-geocode?"+q.Encode(), nil, &result)
	return result, err
}

// ScanResult is the outcome of a photo scan: the filtered OCR text and
// the normalized address.
type ScanResult struct {
	Query   string `json:"query"`
	Address string `json:"address"`
}

// ScanAddress uploads a label photo and returns the extracted address.
func (c *Client) ScanAddress(ctx context.Context, photo io.Reader, filename string) (ScanResult, error) {
	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	part, err := mw.CreateFormFile("photo", filename)
	if err != nil {
		return ScanResult{}, err
	}
	if _, err := io.Copy(part, photo); err != nil {
		return ScanResult{}, err
	}
	if err := mw.Close(); err != nil {
		return ScanResult{}, err
	}

	resp, err := c.send(ctx, http.MethodPost, "/api/scan-address", mw.FormDataContentType(), &buf)
	if err != nil {
		return ScanResult{}, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return ScanResult{}, c.errorFromResponse(resp)
	}

	var result ScanResult
	if err := decodeData(resp.Body, &result); err != nil {
		return ScanResult{}, err
	}
	return result, nil
}

// SavedAddress mirrors the server's saved address payload.
type SavedAddress struct {
	ID      string   `json:"id"`
	Label   string   `json:"label"`
	Address string   `json:"address"`
	Lat     *float64 `json:"lat"`
	Lng     *float64 `json:"lng"`
}

// AddressPage is one page of saved addresses.
type AddressPage struct {
	Items   []SavedAddress `json:"items"`
	Page    int            `json:"page"`
	Limit   int            `json:"limit"`
	Total   int            `json:"total"`
	HasMore bool           `json:"hasMore"`
}

func (c *Client) ListAddresses(ctx context.Context, page, limit int) (AddressPage, error) {
	q := url.Values{}
	q.Set("page", strconv.Itoa(page))
	q.Set("limit", strconv.Itoa(limit))

	var out AddressPage
	err := c.doJSON(ctx, http.MethodGet, "/api/addresses?"+q.Encode(), nil, &out)
	return out, err
}

type saveAddressRequest struct {
	Label   string   `json:"label"`
	Address string   `json:"address"`
	Lat     *float64 `json:"lat,omitempty"`
	Lng     *float64 `json:"lng,omitempty"`
}

func (c *Client) SaveAddress(ctx context.Context, label, address string, lat, lng *float64) (SavedAddress, error) {
	var out SavedAddress
	err := c.doJSON(ctx, http.MethodPost, "/api/addresses", saveAddressRequest{Label: label, Address: address, Lat: lat, Lng: lng}, &out)
	return out, err
}

func (c *Client) UpdateAddress(ctx context.Context, id, label, address string, lat, lng *float64) (SavedAddress, error) {
	var out SavedAddress
	err := c.doJSON(ctx, http.MethodPut, "/api/addresses/"+id, saveAddressRequest{Label: label, Address: address, Lat: lat, Lng: lng}, &out)
	return out, err
}

func (c *Client) DeleteAddress(ctx context.Context, id string) error {
	return c.doJSON(ctx, http.MethodDelete, "/api/addresses/"+id, nil, nil)
}

// doJSON runs an authenticated JSON round trip, decoding the envelope's
// data field into out when out is non-nil.
func (c *Client) doJSON(ctx context.Context, method, path string, in, out interface{}) error {
	var body io.Reader
	if in != nil {
		encoded, err := json.Marshal(in)
		if err != nil {
			return err
		}
		body = bytes.NewReader(encoded)
	}

	resp, err := c.send(ctx, method, path, "application/json", body)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return c.errorFromResponse(resp)
	}

	if out == nil {
		return nil
	}
	return decodeData(resp.Body, out)
}

func (c *Client) send(ctx context.Context, method, path, contentType string, body io.Reader) (*http.Response, error) {
	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return nil, err
	}
	if body != nil {
		req.Header.Set("Content-Type", contentType)
	}
	if token := c.Token(); token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrNetwork, err)
	}
	return resp, nil
}

type errorBody struct {
	Status  string `json:"status"`
	Code    string `json:"code"`
	Message string `json:"message"`
}

// errorFromResponse converts a non-2xx response into the client error
// taxonomy. A 401 on any call ends the session.
func (c *Client) errorFromResponse(resp *http.Response) error {
	var body errorBody
	_ = json.NewDecoder(io.LimitReader(resp.Body, 1<<16)).Decode(&body)

	switch {
	case resp.StatusCode == http.StatusUnauthorized:
		c.expireSession()
		return ErrUnauthorized
	case resp.StatusCode == http.StatusForbidden:
		return ErrSubscriptionExpired
	case resp.StatusCode >= 500:
		return fmt.Errorf("%w: %s", ErrServer, body.Message)
	default:
		return &APIError{StatusCode: resp.StatusCode, Code: body.Code, Message: body.Message}
	}
}

func (c *Client) expireSession() {
	c.mu.Lock()
	hadSession := c.token != ""
	c.token = ""
	c.user = nil
	hook := c.OnAuthExpired
	c.mu.Unlock()

	if hadSession && hook != nil {
		hook()
	}
}

func decodeData(r io.Reader, out interface{}) error {
	var envelope struct {
		Status string          `json:"status"`
		Data   json.RawMessage `json:"data"`
	}
	if err := json.NewDecoder(r).Decode(&envelope); err != nil {
		return fmt.Errorf("%w: %v", ErrServer, err)
	}
	if err := json.Unmarshal(envelope.Data, out); err != nil {
		return fmt.Errorf("%w: %v", ErrServer, err)
	}
	return nil
}
