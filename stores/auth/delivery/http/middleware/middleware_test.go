package middleware_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bayt-xyz/marketapi/domain"
	authMiddleware "github.com/bayt-xyz/marketapi/stores/auth/delivery/http/middleware"
)

func TestIsAdmin(t *testing.T) {
	ownerAddress := "0xc165Fbd2a99C928e8999a1C4184Ec3c16D169b4F"
	m := authMiddleware.New(nil, []string{ownerAddress})

	next := func(c echo.Context) error { return c.NoContent(http.StatusOK) }

	run := func(address domain.Address) *httptest.ResponseRecorder {
		e := echo.New()
		req := httptest.NewRequest(http.MethodPatch, "/market/fee", nil)
		rec := httptest.NewRecorder()
		c := e.NewContext(req, rec)
		c.Set("address", address)
		require.NoError(t, m.IsAdmin()(next)(c))
		return rec
	}

	// tokens carry lowercased addresses, the match ignores case
	rec := run(domain.Address(ownerAddress).ToLower())
	assert.Equal(t, http.StatusOK, rec.Code)

	rec = run(domain.Address("0x71c7656ec7ab88b098defb751b7401b5f6d8976f"))
	assert.Equal(t, http.StatusMethodNotAllowed, rec.Code)
}
