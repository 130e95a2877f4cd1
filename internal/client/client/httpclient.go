package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/dmitrijs2005/artspace/internal/client/models"
	"github.com/dmitrijs2005/artspace/internal/common"
	"github.com/dmitrijs2005/artspace/internal/logging"
	"github.com/dmitrijs2005/artspace/internal/netx"
	"github.com/google/uuid"
)

const (
	DefaultTimeout = 30 * time.Second

	userAgent       = "artspace-cli/1.0"
	contentTypeJSON = "application/json"
)

// API paths. These must match the marketplace service exactly.
const (
	PathArtworks      = "/api/artworks"
	PathRegister      = "/api/register"
	PathLogin         = "/api/login"
	PathUpload        = "/api/upload"
	PathBuy           = "/api/buy"
	PathEdit          = "/api/edit"
	PathDeleteArt     = "/api/delete_art"
	PathDeleteAccount = "/api/delete_account"
	PathReset         = "/api/reset"
	PathUsers         = "/api/users"
	PathDeleteUser    = "/api/delete_user"
)

// HTTPClient implements Client over the marketplace JSON/multipart API.
type HTTPClient struct {
	baseURL    string
	httpClient *http.Client
	log        logging.Logger
}

// Option configures an HTTPClient.
type Option func(*HTTPClient)

// WithHTTPClient replaces the underlying *http.Client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *HTTPClient) {
		c.httpClient = hc
	}
}

// WithTimeout sets the per-request timeout.
func WithTimeout(timeout time.Duration) Option {
	return func(c *HTTPClient) {
		c.httpClient.Timeout = timeout
	}
}

// WithLogger sets the logger used for request diagnostics.
func WithLogger(l logging.Logger) Option {
	return func(c *HTTPClient) {
		c.log = l
	}
}

// NewHTTPClient builds a client for the service at baseURL
// (e.g. "http://127.0.0.1:5000").
func NewHTTPClient(baseURL string, opts ...Option) (*HTTPClient, error) {
	u, err := url.Parse(baseURL)
	if err != nil {
		return nil, fmt.Errorf("invalid base URL: %w", err)
	}
	if u.Scheme != "http" && u.Scheme != "https" || u.Host == "" {
		return nil, fmt.Errorf("invalid base URL %q: want http(s)://host[:port]", baseURL)
	}

	c := &HTTPClient{
		baseURL:    baseURL,
		httpClient: &http.Client{Timeout: DefaultTimeout},
		log:        logging.Nop(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c, nil
}

// result is the {success, message, user} shape several endpoints answer with.
// Success is a pointer so an absent field can be told apart from false.
type result struct {
	Success *bool        `json:"success"`
	Message string       `json:"message"`
	User    *models.User `json:"user"`
}

func (r result) rejected() bool {
	return r.Success != nil && !*r.Success
}

// Artworks fetches the catalog. Rows that do not decode are skipped with a
// warning so one bad record cannot hide the rest.
func (c *HTTPClient) Artworks(ctx context.Context) ([]models.Artwork, error) {
	var rows []json.RawMessage
	if err := c.doJSON(ctx, "artworks", http.MethodGet, PathArtworks, nil, &rows); err != nil {
		return nil, err
	}

	items := make([]models.Artwork, 0, len(rows))
	for i, row := range rows {
		var a models.Artwork
		if err := json.Unmarshal(row, &a); err != nil {
			c.log.Warn(ctx, "skipping undecodable artwork", "index", i, "error", err)
			continue
		}
		items = append(items, a)
	}
	return items, nil
}

func (c *HTTPClient) Register(ctx context.Context, name, email string, password []byte) (models.User, error) {
	req := struct {
		Name     string `json:"name"`
		Email    string `json:"email"`
		Password string `json:"password"`
	}{Name: name, Email: email, Password: string(password)}

	return c.authenticate(ctx, "register", PathRegister, req, "registration failed")
}

func (c *HTTPClient) Login(ctx context.Context, email string, password []byte) (models.User, error) {
	req := struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}{Email: email, Password: string(password)}

	return c.authenticate(ctx, "login", PathLogin, req, "invalid email or password")
}

func (c *HTTPClient) authenticate(ctx context.Context, op, path string, req any, fallback string) (models.User, error) {
	var res result
	if err := c.doJSON(ctx, op, http.MethodPost, path, req, &res); err != nil {
		return models.User{}, err
	}
	if res.Success == nil || !*res.Success {
		msg := res.Message
		if msg == "" {
			msg = fallback
		}
		return models.User{}, &RejectedError{Op: op, StatusCode: http.StatusOK, Message: msg}
	}
	if res.User == nil || res.User.Name == "" {
		return models.User{}, fmt.Errorf("%s: %w: no user in response", op, ErrMalformedResponse)
	}
	return *res.User, nil
}

func (c *HTTPClient) Upload(ctx context.Context, req UploadRequest) error {
	fields := []netx.Field{
		{Name: "title", Value: req.Title},
		{Name: "price", Value: strconv.FormatInt(req.Price, 10)},
		{Name: "category", Value: req.Category},
		{Name: "artist", Value: req.Artist},
	}
	files := []netx.FilePart{{Name: "image", Attachment: req.Image}}

	return c.doMultipart(ctx, "upload", PathUpload, fields, files)
}

func (c *HTTPClient) Buy(ctx context.Context, id int64, buyer string, slip models.Attachment) error {
	fields := []netx.Field{
		{Name: "id", Value: strconv.FormatInt(id, 10)},
		{Name: "buyer", Value: buyer},
	}
	files := []netx.FilePart{{Name: "slip", Attachment: slip}}

	return c.doMultipart(ctx, "buy", PathBuy, fields, files)
}

func (c *HTTPClient) Edit(ctx context.Context, id int64, price int64, caption string) error {
	req := struct {
		ID      int64  `json:"id"`
		Price   int64  `json:"price"`
		Caption string `json:"caption"`
	}{ID: id, Price: price, Caption: caption}

	return c.command(ctx, "edit", PathEdit, req)
}

func (c *HTTPClient) DeleteArtwork(ctx context.Context, id int64) error {
	req := struct {
		ID int64 `json:"id"`
	}{ID: id}

	return c.command(ctx, "delete artwork", PathDeleteArt, req)
}

func (c *HTTPClient) DeleteAccount(ctx context.Context, email string) error {
	return c.command(ctx, "delete account", PathDeleteAccount, emailRequest{Email: email})
}

func (c *HTTPClient) Reset(ctx context.Context) error {
	return c.command(ctx, "reset", PathReset, nil)
}

func (c *HTTPClient) Users(ctx context.Context) ([]models.User, error) {
	var users []models.User
	if err := c.doJSON(ctx, "users", http.MethodGet, PathUsers, nil, &users); err != nil {
		return nil, err
	}
	if users == nil {
		users = []models.User{}
	}
	return users, nil
}

func (c *HTTPClient) DeleteUser(ctx context.Context, email string) error {
	return c.command(ctx, "delete user", PathDeleteUser, emailRequest{Email: email})
}

// Close releases idle connections.
func (c *HTTPClient) Close() error {
	c.httpClient.CloseIdleConnections()
	return nil
}

type emailRequest struct {
	Email string `json:"email"`
}

// command posts a JSON body to an endpoint whose only answer is an optional
// {"success": bool, "message": string}.
func (c *HTTPClient) command(ctx context.Context, op, path string, body any) error {
	var res result
	if err := c.doJSON(ctx, op, http.MethodPost, path, body, &res); err != nil {
		return err
	}
	if res.rejected() {
		return &RejectedError{Op: op, StatusCode: http.StatusOK, Message: res.Message}
	}
	return nil
}

func (c *HTTPClient) doJSON(ctx context.Context, op, method, path string, body any, out any) error {
	var (
		reader      io.Reader
		contentType string
	)
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("%s: marshal request: %w", op, err)
		}
		reader = bytes.NewReader(b)
		contentType = contentTypeJSON
	}

	return c.do(ctx, op, method, path, reader, contentType, out)
}

func (c *HTTPClient) doMultipart(ctx context.Context, op, path string, fields []netx.Field, files []netx.FilePart) error {
	body, contentType, err := netx.MultipartBody(fields, files)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	var res result
	if err := c.do(ctx, op, http.MethodPost, path, body, contentType, &res); err != nil {
		return err
	}
	if res.rejected() {
		return &RejectedError{Op: op, StatusCode: http.StatusOK, Message: res.Message}
	}
	return nil
}

func (c *HTTPClient) do(ctx context.Context, op, method, path string, body io.Reader, contentType string, out any) error {
	reqURL, err := url.JoinPath(c.baseURL, path)
	if err != nil {
		return fmt.Errorf("%s: build URL: %w", op, err)
	}

	req, err := http.NewRequestWithContext(ctx, method, reqURL, body)
	if err != nil {
		return fmt.Errorf("%s: create request: %w", op, err)
	}

	requestID := uuid.NewString()
	req.Header.Set(common.RequestIDHeaderName, requestID)
	req.Header.Set(common.UserAgentHeaderName, userAgent)
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}

	log := c.log.With("op", op, "request_id", requestID)
	started := time.Now()

	resp, err := c.httpClient.Do(req)
	if err != nil {
		log.Warn(ctx, "request failed", "error", err)
		return fmt.Errorf("%s: %w: %w", op, ErrUnavailable, err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("%s: %w: read body: %w", op, ErrUnavailable, err)
	}

	log.Debug(ctx, "request done", "method", method, "path", path, "status", resp.StatusCode, "took", time.Since(started))

	if resp.StatusCode >= http.StatusBadRequest {
		return statusError(op, resp.StatusCode, respBody)
	}

	if out != nil && len(bytes.TrimSpace(respBody)) > 0 {
		if err := json.Unmarshal(respBody, out); err != nil {
			return fmt.Errorf("%s: %w: %w", op, ErrMalformedResponse, err)
		}
	}
	return nil
}

func statusError(op string, status int, body []byte) error {
	switch {
	case status == http.StatusUnauthorized || status == http.StatusForbidden:
		return fmt.Errorf("%s: %w (status %d)", op, ErrUnauthorized, status)
	case status >= http.StatusInternalServerError:
		return fmt.Errorf("%s: %w (status %d)", op, ErrUnavailable, status)
	}

	var res result
	msg := ""
	if err := json.Unmarshal(body, &res); err == nil {
		msg = res.Message
	}
	if msg == "" {
		msg = http.StatusText(status)
	}
	return &RejectedError{Op: op, StatusCode: status, Message: msg}
}
