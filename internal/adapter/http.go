// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"strconv"
	"strings"
	"sync"

	"github.com/MKhiriev/bookmark-keeper/internal/config"
	"github.com/MKhiriev/bookmark-keeper/internal/logger"
	"github.com/MKhiriev/bookmark-keeper/internal/utils"
	"github.com/MKhiriev/bookmark-keeper/models"
	"github.com/go-resty/resty/v2"
)

type httpBookmarkAPI struct {
	client *utils.HTTPClient

	mu    sync.RWMutex
	token string

	logger *logger.Logger
}

// NewHTTPBookmarkAPI builds a resty-backed [BookmarkAPI] for cfg.ServerURL.
// A token in cfg is stored up front.
//
// Returns an error if the URL is empty or cannot be parsed.
func NewHTTPBookmarkAPI(cfg config.ClientConfig, logger *logger.Logger) (BookmarkAPI, error) {
	baseURL, err := normalizeBaseURL(cfg.ServerURL)
	if err != nil {
		return nil, fmt.Errorf("invalid server url: %w", err)
	}

	api := &httpBookmarkAPI{
		client: utils.NewHTTPClient(baseURL, cfg.RequestTimeout),
		logger: logger,
	}
	api.SetToken(cfg.Token)

	return api, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

func (h *httpBookmarkAPI) SetToken(token string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.token = strings.TrimSpace(token)
}

func (h *httpBookmarkAPI) Token() string {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.token
}

func (h *httpBookmarkAPI) Signup(ctx context.Context, req models.AuthRequest) (string, error) {
	return h.authenticate(ctx, "/auth/signup", req)
}

func (h *httpBookmarkAPI) Signin(ctx context.Context, req models.AuthRequest) (string, error) {
	return h.authenticate(ctx, "/auth/signin", req)
}

// authenticate posts credentials and stores the token from the response
// body, falling back to the Authorization header.
func (h *httpBookmarkAPI) authenticate(ctx context.Context, path string, req models.AuthRequest) (string, error) {
	resp, err := h.client.R().
		SetContext(ctx).
		SetBody(req).
		Post(path)
	if err != nil {
		return "", fmt.Errorf("%s request: %w", path, err)
	}
	if err = mapHTTPError(resp); err != nil {
		return "", err
	}

	var tokenResp models.TokenResponse
	if err = decode(resp, &tokenResp); err != nil {
		return "", err
	}

	token := tokenResp.AccessToken
	if token == "" {
		if token, err = utils.ParseBearerToken(resp.Header().Get("Authorization")); err != nil {
			return "", fmt.Errorf("%s parse bearer token: %w", path, err)
		}
	}

	h.SetToken(token)
	h.logger.Debug().Str("path", path).Msg("access token stored")
	return token, nil
}

func (h *httpBookmarkAPI) Me(ctx context.Context) (models.User, error) {
	var user models.User
	r, err := h.authorized(ctx)
	if err != nil {
		return user, err
	}

	return user, do(r.Get("/users/me"))(&user)
}

func (h *httpBookmarkAPI) UpdateMe(ctx context.Context, req models.UpdateUserRequest) (models.User, error) {
	var user models.User
	r, err := h.authorized(ctx)
	if err != nil {
		return user, err
	}

	return user, do(r.SetBody(req).Patch("/users"))(&user)
}

func (h *httpBookmarkAPI) CreateBookmark(ctx context.Context, req models.CreateBookmarkRequest) (models.Bookmark, error) {
	var bookmark models.Bookmark
	r, err := h.authorized(ctx)
	if err != nil {
		return bookmark, err
	}

	return bookmark, do(r.SetBody(req).Post("/bookmarks"))(&bookmark)
}

func (h *httpBookmarkAPI) ListBookmarks(ctx context.Context) ([]models.Bookmark, error) {
	bookmarks := []models.Bookmark{}
	r, err := h.authorized(ctx)
	if err != nil {
		return nil, err
	}

	if err = do(r.Get("/bookmarks"))(&bookmarks); err != nil {
		return nil, err
	}
	return bookmarks, nil
}

func (h *httpBookmarkAPI) GetBookmark(ctx context.Context, id int64) (*models.Bookmark, error) {
	var bookmark *models.Bookmark
	r, err := h.authorized(ctx)
	if err != nil {
		return nil, err
	}

	if err = do(r.SetPathParam("id", strconv.FormatInt(id, 10)).Get("/bookmarks/{id}"))(&bookmark); err != nil {
		return nil, err
	}
	return bookmark, nil
}

func (h *httpBookmarkAPI) EditBookmark(ctx context.Context, id int64, req models.EditBookmarkRequest) (models.Bookmark, error) {
	var bookmark models.Bookmark
	r, err := h.authorized(ctx)
	if err != nil {
		return bookmark, err
	}

	return bookmark, do(r.SetPathParam("id", strconv.FormatInt(id, 10)).SetBody(req).Patch("/bookmarks/{id}"))(&bookmark)
}

func (h *httpBookmarkAPI) DeleteBookmark(ctx context.Context, id int64) error {
	r, err := h.authorized(ctx)
	if err != nil {
		return err
	}

	return do(r.SetPathParam("id", strconv.FormatInt(id, 10)).Delete("/bookmarks/{id}"))(nil)
}

func (h *httpBookmarkAPI) Version(ctx context.Context) (string, error) {
	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Accept", "text/plain").
		Get("/api/version")
	if err != nil {
		return "", fmt.Errorf("version request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return "", err
	}

	return strings.TrimSpace(resp.String()), nil
}

// authorized starts a request carrying the stored bearer token.
func (h *httpBookmarkAPI) authorized(ctx context.Context) (*resty.Request, error) {
	token := h.Token()
	if token == "" {
		return nil, ErrNoToken
	}

	return h.client.R().
		SetContext(ctx).
		SetAuthToken(token), nil
}

// do turns a resty call result into a decoder for the response body. A nil
// destination skips decoding.
func do(resp *resty.Response, err error) func(dst any) error {
	return func(dst any) error {
		if err != nil {
			return fmt.Errorf("%s request: %w", requestLabel(resp), err)
		}
		if err = mapHTTPError(resp); err != nil {
			return err
		}
		if dst == nil {
			return nil
		}
		return decode(resp, dst)
	}
}

func decode(resp *resty.Response, dst any) error {
	if err := json.Unmarshal(resp.Body(), dst); err != nil {
		return fmt.Errorf("%s decoding response: %w", requestLabel(resp), err)
	}
	return nil
}

func requestLabel(resp *resty.Response) string {
	if resp == nil || resp.Request == nil {
		return "api"
	}
	return resp.Request.Method + " " + resp.Request.URL
}
