package handler

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"flatmatch/internal/adapter/api"
)

func newValidatingContext(t *testing.T, body string) echo.Context {
	t.Helper()

	e := echo.New()
	e.Validator = api.NewValidator()
	req := httptest.NewRequest(http.MethodPost, "/v1/profiles", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec)
}

func TestSeekerProfileRequestAcceptsAnyPets(t *testing.T) {
	for _, pets := range []string{"yes", "no", "any", ""} {
		c := newValidatingContext(t, `{"name":"Anna","pets":"`+pets+`"}`)

		var req seekerProfileRequest
		require.NoError(t, c.Bind(&req))
		assert.NoError(t, c.Validate(&req), "pets %q", pets)
	}
}

func TestSeekerProfileRequestRejectsUnknownPets(t *testing.T) {
	c := newValidatingContext(t, `{"name":"Anna","pets":"maybe"}`)

	var req seekerProfileRequest
	require.NoError(t, c.Bind(&req))
	assert.Error(t, c.Validate(&req))
}

func TestRoomProfileRequestAcceptsAnyPetsAllowed(t *testing.T) {
	for _, pets := range []string{"yes", "no", "any", ""} {
		c := newValidatingContext(t, `{"name":"Sunny WG","petsAllowed":"`+pets+`"}`)

		var req roomProfileRequest
		require.NoError(t, c.Bind(&req))
		assert.NoError(t, c.Validate(&req), "petsAllowed %q", pets)
	}
}

func TestRoomProfileRequestRoomTypeEnum(t *testing.T) {
	for _, roomType := range []string{"single", "double", ""} {
		c := newValidatingContext(t, `{"name":"Sunny WG","roomType":"`+roomType+`"}`)

		var req roomProfileRequest
		require.NoError(t, c.Bind(&req))
		assert.NoError(t, c.Validate(&req), "roomType %q", roomType)
	}

	c := newValidatingContext(t, `{"name":"Sunny WG","roomType":"loft"}`)

	var req roomProfileRequest
	require.NoError(t, c.Bind(&req))
	assert.Error(t, c.Validate(&req))
}
