package auth

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func TestTokenRoundTrip(t *testing.T) {
	issuer := NewTokenIssuer("test-secret")

	token, err := issuer.Issue("user-1", RoleUser)
	assert.NoError(t, err)

	subject, role, err := issuer.Verify(token)
	assert.NoError(t, err)
	assert.Equal(t, "user-1", subject)
	assert.Equal(t, RoleUser, role)
}

func TestTokenWrongSecret(t *testing.T) {
	token, err := NewTokenIssuer("secret-a").Issue("user-1", RoleUser)
	assert.NoError(t, err)

	_, _, err = NewTokenIssuer("secret-b").Verify(token)
	assert.ErrorIs(t, err, ErrInvalidToken)

	_, _, err = NewTokenIssuer("secret-a").Verify("not-a-token")
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestOTPSingleUse(t *testing.T) {
	store := NewOTPStore()

	code, err := store.Generate(RoleUser, "9876543210")
	assert.NoError(t, err)
	assert.Len(t, code, OTPLength)

	assert.ErrorIs(t, store.Verify(RoleUser, "9876543210", "000000x"), ErrInvalidOTP)
	assert.NoError(t, store.Verify(RoleUser, "9876543210", code))
	// consumed on first use
	assert.ErrorIs(t, store.Verify(RoleUser, "9876543210", code), ErrInvalidOTP)
}

func TestOTPRoleScoped(t *testing.T) {
	store := NewOTPStore()

	code, err := store.Generate(RoleUser, "9876543210")
	assert.NoError(t, err)

	// a user code never unlocks the ambulance app
	assert.ErrorIs(t, store.Verify(RoleAmbulance, "9876543210", code), ErrInvalidOTP)
	assert.NoError(t, store.Verify(RoleUser, "9876543210", code))
}

func TestOTPRegenerateReplaces(t *testing.T) {
	store := NewOTPStore()

	first, err := store.Generate(RoleUser, "9876543210")
	assert.NoError(t, err)
	second, err := store.Generate(RoleUser, "9876543210")
	assert.NoError(t, err)

	if first != second {
		assert.ErrorIs(t, store.Verify(RoleUser, "9876543210", first), ErrInvalidOTP)
	}
	assert.NoError(t, store.Verify(RoleUser, "9876543210", second))
}

func TestRequireRole(t *testing.T) {
	gin.SetMode(gin.TestMode)
	issuer := NewTokenIssuer("test-secret")

	router := gin.New()
	router.GET("/me", RequireRole(issuer, RoleUser), func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"caller": CallerID(c)})
	})

	// no token
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/me", nil)
	router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	// wrong role
	ambToken, _ := issuer.Issue("amb-1", RoleAmbulance)
	w = httptest.NewRecorder()
	req = httptest.NewRequest(http.MethodGet, "/me", nil)
	req.Header.Set("Authorization", "Bearer "+ambToken)
	router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusForbidden, w.Code)

	// happy path
	userToken, _ := issuer.Issue("user-1", RoleUser)
	w = httptest.NewRecorder()
	req = httptest.NewRequest(http.MethodGet, "/me", nil)
	req.Header.Set("Authorization", "Bearer "+userToken)
	router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "user-1")
}
