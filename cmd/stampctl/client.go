package main

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"mime/multipart"
	"net/http"
	"net/url"
	"os"
	"path/filepath"
	"strings"
	"time"

	"stampshop/internal/domain/entity"
	"stampshop/internal/usecase"

	"github.com/pkg/errors"
)

// apiError is the error envelope returned by the storefront API.
type apiError struct {
	Status  int
	Code    string `json:"code"`
	Message string `json:"message"`
	Details any    `json:"details,omitempty"`
}

func (e *apiError) Error() string {
	return e.Code + ": " + e.Message
}

type envelope struct {
	Data  json.RawMessage `json:"data"`
	Error *apiError       `json:"error"`
}

// storefrontClient talks to the storefront HTTP API.
type storefrontClient struct {
	baseURL    string
	httpClient *http.Client
}

func newStorefrontClient(baseURL string) *storefrontClient {
	return &storefrontClient{
		baseURL: strings.TrimSuffix(baseURL, "/"),
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
	}
}

func (c *storefrontClient) SubmitOrder(ctx context.Context, input *usecase.SubmitOrderInput) (*usecase.SubmitOrderOutput, error) {
	var out usecase.SubmitOrderOutput
	if err := c.postJSON(ctx, "/orders", input, &out); err != nil {
		return nil, err
	}

	return &out, nil
}

func (c *storefrontClient) CreateCheckout(ctx context.Context, orderID string) (*usecase.CheckoutOutput, error) {
	var out usecase.CheckoutOutput
	if err := c.postJSON(ctx, "/payment/checkout", map[string]string{"orderId": orderID}, &out); err != nil {
		return nil, err
	}

	return &out, nil
}

func (c *storefrontClient) TrackOrder(ctx context.Context, friendlyID, phone string) (*entity.TrackedOrder, error) {
	query := url.Values{}
	query.Set("id", friendlyID)
	query.Set("phone", phone)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/orders/track?"+query.Encode(), nil)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	var out struct {
		Order *entity.TrackedOrder `json:"order"`
	}
	if err := c.do(req, &out); err != nil {
		return nil, err
	}

	return out.Order, nil
}

func (c *storefrontClient) UploadDocument(ctx context.Context, path string) (string, error) {
	file, err := os.Open(path)
	if err != nil {
		return "", errors.WithStack(err)
	}
	defer file.Close()

	var body bytes.Buffer
	form := multipart.NewWriter(&body)
	part, err := form.CreateFormFile("file", filepath.Base(path))
	if err != nil {
		return "", errors.WithStack(err)
	}
	if _, err := io.Copy(part, file); err != nil {
		return "", errors.WithStack(err)
	}
	if err := form.Close(); err != nil {
		return "", errors.WithStack(err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/uploads", &body)
	if err != nil {
		return "", errors.WithStack(err)
	}
	req.Header.Set("Content-Type", form.FormDataContentType())

	var out struct {
		URL string `json:"url"`
	}
	if err := c.do(req, &out); err != nil {
		return "", err
	}

	return out.URL, nil
}

func (c *storefrontClient) postJSON(ctx context.Context, path string, in, out any) error {
	payload, err := json.Marshal(in)
	if err != nil {
		return errors.WithStack(err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, bytes.NewReader(payload))
	if err != nil {
		return errors.WithStack(err)
	}
	req.Header.Set("Content-Type", "application/json")

	return c.do(req, out)
}

func (c *storefrontClient) do(req *http.Request, out any) error {
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return errors.Wrapf(err, "%s %s", req.Method, req.URL.Path)
	}
	defer resp.Body.Close()

	var env envelope
	if err := json.NewDecoder(resp.Body).Decode(&env); err != nil {
		return errors.Wrapf(err, "unexpected response from %s (status %d)", req.URL.Path, resp.StatusCode)
	}

	if resp.StatusCode >= http.StatusBadRequest {
		if env.Error == nil {
			return errors.Errorf("%s returned status %d", req.URL.Path, resp.StatusCode)
		}
		env.Error.Status = resp.StatusCode

		return env.Error
	}

	if out == nil {
		return nil
	}

	return errors.WithStack(json.Unmarshal(env.Data, out))
}
