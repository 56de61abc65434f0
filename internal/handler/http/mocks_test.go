// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"context"
	"net/http"

	"github.com/MKhiriev/bookmark-keeper/internal/config"
	"github.com/MKhiriev/bookmark-keeper/internal/logger"
	"github.com/MKhiriev/bookmark-keeper/internal/service"
	"github.com/MKhiriev/bookmark-keeper/internal/utils"
	"github.com/MKhiriev/bookmark-keeper/models"
)

// mockAuthService implements service.AuthService; unset funcs panic.
type mockAuthService struct {
	signupFn       func(ctx context.Context, req models.AuthRequest) (models.Token, error)
	signinFn       func(ctx context.Context, req models.AuthRequest) (models.Token, error)
	authenticateFn func(ctx context.Context, token string) (models.User, error)
}

func (m *mockAuthService) Signup(ctx context.Context, req models.AuthRequest) (models.Token, error) {
	return m.signupFn(ctx, req)
}

func (m *mockAuthService) Signin(ctx context.Context, req models.AuthRequest) (models.Token, error) {
	return m.signinFn(ctx, req)
}

func (m *mockAuthService) CreateToken(ctx context.Context, userID int64) (models.Token, error) {
	return models.Token{SignedString: "token", UserID: userID}, nil
}

func (m *mockAuthService) ParseToken(ctx context.Context, token string) (models.Token, error) {
	return models.Token{}, service.ErrTokenIsExpiredOrInvalid
}

func (m *mockAuthService) Authenticate(ctx context.Context, token string) (models.User, error) {
	if m.authenticateFn == nil {
		return models.User{}, service.ErrTokenIsExpiredOrInvalid
	}
	return m.authenticateFn(ctx, token)
}

type mockUserService struct {
	getOwnProfileFn func(ctx context.Context, caller models.User) (models.User, error)
	updateProfileFn func(ctx context.Context, callerID int64, req models.UpdateUserRequest) (models.User, error)
}

func (m *mockUserService) GetOwnProfile(ctx context.Context, caller models.User) (models.User, error) {
	return m.getOwnProfileFn(ctx, caller)
}

func (m *mockUserService) UpdateProfile(ctx context.Context, callerID int64, req models.UpdateUserRequest) (models.User, error) {
	return m.updateProfileFn(ctx, callerID, req)
}

type mockBookmarkService struct {
	createFn     func(ctx context.Context, ownerID int64, req models.CreateBookmarkRequest) (models.Bookmark, error)
	listOwnedFn  func(ctx context.Context, ownerID int64) ([]models.Bookmark, error)
	getByIDFn    func(ctx context.Context, ownerID, bookmarkID int64) (*models.Bookmark, error)
	editByIDFn   func(ctx context.Context, ownerID, bookmarkID int64, req models.EditBookmarkRequest) (models.Bookmark, error)
	deleteByIDFn func(ctx context.Context, ownerID, bookmarkID int64) error
}

func (m *mockBookmarkService) Create(ctx context.Context, ownerID int64, req models.CreateBookmarkRequest) (models.Bookmark, error) {
	return m.createFn(ctx, ownerID, req)
}

func (m *mockBookmarkService) ListOwned(ctx context.Context, ownerID int64) ([]models.Bookmark, error) {
	return m.listOwnedFn(ctx, ownerID)
}

func (m *mockBookmarkService) GetByID(ctx context.Context, ownerID, bookmarkID int64) (*models.Bookmark, error) {
	return m.getByIDFn(ctx, ownerID, bookmarkID)
}

func (m *mockBookmarkService) EditByID(ctx context.Context, ownerID, bookmarkID int64, req models.EditBookmarkRequest) (models.Bookmark, error) {
	return m.editByIDFn(ctx, ownerID, bookmarkID, req)
}

func (m *mockBookmarkService) DeleteByID(ctx context.Context, ownerID, bookmarkID int64) error {
	return m.deleteByIDFn(ctx, ownerID, bookmarkID)
}

// mockAppInfoService implements service.AppInfoService for testing.
type mockAppInfoService struct {
	version string
}

func (m *mockAppInfoService) GetAppVersion(_ context.Context) string {
	return m.version
}

// authenticatedAs returns an Authenticate func that accepts only "good-token".
func authenticatedAs(user models.User) func(context.Context, string) (models.User, error) {
	return func(_ context.Context, token string) (models.User, error) {
		if token != "good-token" {
			return models.User{}, service.ErrTokenIsExpiredOrInvalid
		}
		return user, nil
	}
}

// newTestRouter builds the full router over the given services with the
// limiter disabled.
func newTestRouter(services *service.Services) http.Handler {
	if services.AppInfoService == nil {
		services.AppInfoService = &mockAppInfoService{version: "test-version"}
	}
	return NewHandler(services, config.Server{HTTPAddress: ":8080"}, logger.Nop()).Init()
}

// withCaller attaches a caller the way the auth middleware does.
func withCaller(r *http.Request, user models.User) *http.Request {
	return r.WithContext(utils.WithUser(r.Context(), user))
}
