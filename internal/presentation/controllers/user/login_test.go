package user

import (
	"io"
	"net/http"
	"strings"
	"testing"

	"github.com/fintrix/fintrix-backend/internal/domain/models"
	"github.com/fintrix/fintrix-backend/internal/presentation/helpers"
	presentationProtocols "github.com/fintrix/fintrix-backend/internal/presentation/protocols"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func storeWithUser(t *testing.T, email string, password string) *fakeUserStore {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	require.NoError(t, err)

	store := &fakeUserStore{}
	_, err = store.Create(&models.UserInput{Name: "Ada", Email: email, Password: string(hash)})
	require.NoError(t, err)
	return store
}

func TestLoginUserSuccess(t *testing.T) {
	t.Setenv("SECRET_JWT", "test-secret")
	store := storeWithUser(t, "ada@example.com", "hunter22")
	controller := NewLoginUserController(store)

	response := controller.Handle(presentationProtocols.HttpRequest{
		Body: io.NopCloser(strings.NewReader(`{"email": "ada@example.com", "password": "hunter22"}`)),
	})

	require.Equal(t, http.StatusOK, response.StatusCode)

	decoded := decodeBody(t, response)
	assert.NotEmpty(t, jsonString(t, decoded, "token"))

	require.Len(t, response.Cookies, 1)
	assert.Equal(t, helpers.SessionCookieName, response.Cookies[0].Name)
	assert.NotEmpty(t, response.Cookies[0].Value)
}

func TestLoginUserWrongPassword(t *testing.T) {
	store := storeWithUser(t, "ada@example.com", "hunter22")
	controller := NewLoginUserController(store)

	response := controller.Handle(presentationProtocols.HttpRequest{
		Body: io.NopCloser(strings.NewReader(`{"email": "ada@example.com", "password": "wrong"}`)),
	})

	assert.Equal(t, http.StatusBadRequest, response.StatusCode)
	decoded := decodeBody(t, response)
	assert.Equal(t, presentationProtocols.CodeInvalidCredentials, jsonString(t, decoded, "code"))
}

func TestLoginUserUnknownEmail(t *testing.T) {
	controller := NewLoginUserController(&fakeUserStore{})

	response := controller.Handle(presentationProtocols.HttpRequest{
		Body: io.NopCloser(strings.NewReader(`{"email": "who@example.com", "password": "hunter22"}`)),
	})

	assert.Equal(t, http.StatusBadRequest, response.StatusCode)
	decoded := decodeBody(t, response)
	assert.Equal(t, presentationProtocols.CodeInvalidCredentials, jsonString(t, decoded, "code"))
}

func TestLogoutClearsSessionCookie(t *testing.T) {
	controller := NewLogoutUserController()

	response := controller.Handle(presentationProtocols.HttpRequest{})

	require.Equal(t, http.StatusOK, response.StatusCode)
	require.Len(t, response.Cookies, 1)
	assert.Equal(t, helpers.SessionCookieName, response.Cookies[0].Name)
	assert.Equal(t, -1, response.Cookies[0].MaxAge)
}
