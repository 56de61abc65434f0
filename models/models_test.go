// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"encoding/json"
	"testing"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUser_JSONNeverContainsHash(t *testing.T) {
	first := "Fry"
	u := User{ID: 7, Email: "fry@example.com", Hash: "$2a$10$secret", FirstName: &first}

	b, err := json.Marshal(u)
	require.NoError(t, err)

	assert.NotContains(t, string(b), "secret")
	assert.NotContains(t, string(b), "hash")
	assert.Contains(t, string(b), `"firstName":"Fry"`)
}

func TestUser_WithoutHash(t *testing.T) {
	u := User{ID: 1, Hash: "h"}

	stripped := u.WithoutHash()

	assert.Empty(t, stripped.Hash)
	assert.Equal(t, "h", u.Hash, "original must not be modified")
}

func TestUserUpdate_IsEmpty(t *testing.T) {
	assert.True(t, UserUpdate{}.IsEmpty())

	name := "x"
	assert.False(t, UserUpdate{LastName: &name}.IsEmpty())
}

func TestClaims_GetUserID(t *testing.T) {
	tests := []struct {
		name    string
		subject string
		want    int64
		wantErr bool
	}{
		{name: "valid", subject: "42", want: 42},
		{name: "empty", subject: "", wantErr: true},
		{name: "not a number", subject: "abc", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := &Claims{RegisteredClaims: jwt.RegisteredClaims{Subject: tt.subject}}
			got, err := c.GetUserID()
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestAppBuildInfo_Defaults(t *testing.T) {
	info := NewAppBuildInfo("", "2026-01-01", "")

	assert.Equal(t, "N/A", info.BuildVersion())
	assert.Equal(t, "2026-01-01", info.BuildDate())
	assert.Equal(t, "N/A", info.BuildCommit())
	assert.Contains(t, info.String(), "Build date: 2026-01-01")
}
