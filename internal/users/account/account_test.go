// Copyright (c) 2026 Smart Wardrobe. All rights reserved.
// Author: vigneshrv10

package account

import (
	"bytes"
	"context"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/textproto"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vigneshrv10/AI-driven-smart-wardrobe/internal/platform/apperr"
	"github.com/vigneshrv10/AI-driven-smart-wardrobe/internal/platform/ctxutil"
	"github.com/vigneshrv10/AI-driven-smart-wardrobe/internal/platform/sec"
	"github.com/vigneshrv10/AI-driven-smart-wardrobe/internal/platform/storage"
	"github.com/vigneshrv10/AI-driven-smart-wardrobe/internal/users/auth"
)

// memoryAccounts applies patches the way the COALESCE update does.
type memoryAccounts struct {
	users   map[string]*auth.User
	updates int
}

func (repository *memoryAccounts) FindByID(_ context.Context, id string) (*auth.User, error) {
	user, ok := repository.users[id]
	if !ok {
		return nil, apperr.NotFound("User")
	}
	copied := *user
	return &copied, nil
}

func (repository *memoryAccounts) UpdateProfile(_ context.Context, userID string, patch ProfilePatch) (*auth.User, error) {
	user, ok := repository.users[userID]
	if !ok {
		return nil, apperr.NotFound("User")
	}
	repository.updates++
	if patch.ProfilePicture != nil {
		user.ProfilePicture = patch.ProfilePicture
	}
	if patch.Preferences.Style != nil {
		user.Preferences.Style = *patch.Preferences.Style
	}
	if patch.Preferences.Colors != nil {
		user.Preferences.Colors = *patch.Preferences.Colors
	}
	if patch.Preferences.Occasions != nil {
		user.Preferences.Occasions = *patch.Preferences.Occasions
	}
	copied := *user
	return &copied, nil
}

type recordingStore struct {
	keys []string
}

func (store *recordingStore) Put(_ context.Context, key, _ string, _ []byte) (string, error) {
	store.keys = append(store.keys, key)
	return "https://cdn.example.com/" + key, nil
}

func newAccounts() *memoryAccounts {
	return &memoryAccounts{users: map[string]*auth.User{
		"u-1": {
			ID:          "u-1",
			Username:    "ada",
			Preferences: auth.Preferences{Style: []string{"casual"}, Colors: []string{"red"}, Occasions: []string{}},
		},
	}}
}

func authenticated(request *http.Request, userID string) *http.Request {
	return request.WithContext(ctxutil.WithPrincipal(request.Context(), &sec.Principal{UserID: userID}))
}

/*
TestService_UpdateProfile covers partial preference replacement.
*/
func TestService_UpdateProfile(t *testing.T) {
	colors := []string{" navy ", "", "white"}

	tests := []struct {
		name        string
		patch       ProfilePatch
		wantStyle   []string
		wantColors  []string
		wantUpdates int
	}{
		{
			name:        "replace_colors_only",
			patch:       ProfilePatch{Preferences: PreferencesPatch{Colors: &colors}},
			wantStyle:   []string{"casual"},
			wantColors:  []string{"navy", "white"},
			wantUpdates: 1,
		},
		{
			name:        "blank_picture_is_a_no_op",
			patch:       ProfilePatch{ProfilePicture: new(string)},
			wantStyle:   []string{"casual"},
			wantColors:  []string{"red"},
			wantUpdates: 0,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			repository := newAccounts()
			service := NewService(repository, storage.NewInlineStore())

			user, err := service.UpdateProfile(context.Background(), "u-1", tc.patch)
			require.NoError(t, err)

			assert.Equal(t, tc.wantStyle, user.Preferences.Style)
			assert.Equal(t, tc.wantColors, user.Preferences.Colors)
			assert.Equal(t, tc.wantUpdates, repository.updates)
		})
	}
}

/*
TestService_UpdateProfile_UnknownUser surfaces NOT_FOUND.
*/
func TestService_UpdateProfile_UnknownUser(t *testing.T) {
	service := NewService(newAccounts(), storage.NewInlineStore())
	picture := "https://p/x.png"

	_, err := service.UpdateProfile(context.Background(), "u-404", ProfilePatch{ProfilePicture: &picture})

	assert.True(t, apperr.IsNotFound(err))
}

/*
TestHandler_UpdateProfile decodes the camelCase payload.
*/
func TestHandler_UpdateProfile(t *testing.T) {
	repository := newAccounts()
	router := NewHandler(NewService(repository, storage.NewInlineStore())).Routes()

	body := `{"profilePicture":"https://p/new.png","preferences":{"occasions":["wedding"]}}`
	request := authenticated(httptest.NewRequest(http.MethodPut, "/profile", strings.NewReader(body)), "u-1")
	recorder := httptest.NewRecorder()

	router.ServeHTTP(recorder, request)

	require.Equal(t, http.StatusOK, recorder.Code)
	assert.Contains(t, recorder.Body.String(), `"profilePicture":"https://p/new.png"`)
	assert.Equal(t, []string{"wedding"}, repository.users["u-1"].Preferences.Occasions)
	assert.Equal(t, []string{"casual"}, repository.users["u-1"].Preferences.Style)
}

/*
TestHandler_UploadAvatar stores the image and saves its reference on the user.
*/
func TestHandler_UploadAvatar(t *testing.T) {
	repository := newAccounts()
	images := &recordingStore{}
	router := NewHandler(NewService(repository, images)).Routes()

	var body bytes.Buffer
	form := multipart.NewWriter(&body)
	header := textproto.MIMEHeader{}
	header.Set("Content-Disposition", `form-data; name="image"; filename="me.png"`)
	header.Set("Content-Type", "image/png")
	part, err := form.CreatePart(header)
	require.NoError(t, err)
	_, _ = part.Write([]byte("\x89PNG\r\n\x1a\nfake"))
	require.NoError(t, form.Close())

	request := httptest.NewRequest(http.MethodPost, "/avatar", &body)
	request.Header.Set("Content-Type", form.FormDataContentType())
	recorder := httptest.NewRecorder()

	router.ServeHTTP(recorder, authenticated(request, "u-1"))

	require.Equal(t, http.StatusOK, recorder.Code)
	require.Len(t, images.keys, 1)
	assert.True(t, strings.HasPrefix(images.keys[0], "avatars/u-1/"))
	assert.True(t, strings.HasSuffix(images.keys[0], "-me.png"))
	assert.Equal(t, "https://cdn.example.com/"+images.keys[0], *repository.users["u-1"].ProfilePicture)
	assert.Contains(t, recorder.Body.String(), `"url":"https://cdn.example.com/avatars/u-1/`)
}

/*
TestHandler_RequiresAuth rejects anonymous callers.
*/
func TestHandler_RequiresAuth(t *testing.T) {
	router := NewHandler(NewService(newAccounts(), storage.NewInlineStore())).Routes()

	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, httptest.NewRequest(http.MethodGet, "/profile", nil))

	assert.Equal(t, http.StatusUnauthorized, recorder.Code)
}
