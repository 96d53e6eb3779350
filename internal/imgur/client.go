package imgur

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/url"
	"os"
	"path/filepath"
	"strings"

	"github.com/hpungsan/imgup/internal/config"
)

// Client talks to the imgur v3 API with a static anonymous client credential.
// It issues exactly the two calls the uploader needs and imposes no timeouts
// or retries of its own.
type Client struct {
	httpClient *http.Client
	api        Endpoint
	clientID   string
}

// NewClient creates a client for the API root and credential in cfg.
func NewClient(cfg *config.Config) *Client {
	return &Client{
		httpClient: &http.Client{},
		api:        Endpoint(cfg.APIBase),
		clientID:   cfg.ClientID,
	}
}

// Resource holds the fields imgur returns for a created image or album.
// Albums have no Link in the response; their URL is derived from the ID.
type Resource struct {
	ID         string `json:"id"`
	Link       string `json:"link"`
	Deletehash string `json:"deletehash"`
}

// UploadImage submits the file at path as a multipart upload and returns the
// created resource. The returned error carries the server's human-readable
// message when the failure body is JSON, else the raw HTTP status.
func (c *Client) UploadImage(ctx context.Context, path string) (*Resource, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var buf bytes.Buffer
	form := multipart.NewWriter(&buf)
	part, err := form.CreateFormFile("image", filepath.Base(path))
	if err != nil {
		return nil, err
	}
	if _, err := io.Copy(part, f); err != nil {
		return nil, err
	}
	if err := form.Close(); err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.api.Join("image").String(), &buf)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", form.FormDataContentType())
	return c.do(req)
}

// CreateAlbum groups already-uploaded images, referenced by their deletion
// tokens, into a new anonymous album with the given layout.
func (c *Client) CreateAlbum(ctx context.Context, deletehashes []string, layout string) (*Resource, error) {
	form := url.Values{}
	form.Set("deletehashes", strings.Join(deletehashes, ","))
	form.Set("layout", layout)

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.api.Join("album").String(), strings.NewReader(form.Encode()))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	return c.do(req)
}

// do sends the request with the Client-ID header and decodes the data
// envelope of a successful response.
func (c *Client) do(req *http.Request) (*Resource, error) {
	req.Header.Set("Authorization", "Client-ID "+c.clientID)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, fmt.Errorf("%s", errorMessage(body, resp.StatusCode))
	}

	var payload struct {
		Data Resource `json:"data"`
	}
	if err := json.Unmarshal(body, &payload); err != nil {
		return nil, fmt.Errorf("unexpected response body: %w", err)
	}
	return &payload.Data, nil
}

// errorMessage extracts data.error.message from a failure body, falling back
// to the raw HTTP status when the body is not the expected JSON shape.
func errorMessage(body []byte, statusCode int) string {
	var payload struct {
		Data struct {
			Error struct {
				Message string `json:"message"`
			} `json:"error"`
		} `json:"data"`
	}
	if err := json.Unmarshal(body, &payload); err == nil && payload.Data.Error.Message != "" {
		return payload.Data.Error.Message
	}
	return fmt.Sprintf("HTTP %d", statusCode)
}
