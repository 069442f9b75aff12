package middleware

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strconv"
	"testing"
	"time"

	"core-bridge-controller/config"
	"core-bridge-controller/internal/core/domain"
	"core-bridge-controller/internal/core/ports/mocks"

	"github.com/ethereum/go-ethereum/common"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func init() {
	gin.SetMode(gin.TestMode)
}

var testPrincipal = common.HexToAddress("0x1111111111111111111111111111111111111111")

func setupAuthRouter(t *testing.T, cfg config.AuthConfig) (*gin.Engine, *mocks.MockSignatureService, *mocks.MockNonceStore, *domain.Principal) {
	t.Helper()
	ctrl := gomock.NewController(t)

	sigSvc := mocks.NewMockSignatureService(ctrl)
	nonceStore := mocks.NewMockNonceStore(ctrl)
	captured := &domain.Principal{}

	router := gin.New()
	router.POST("/test", SignatureAuth(sigSvc, nonceStore, cfg, zerolog.Nop()), func(c *gin.Context) {
		p, ok := GetPrincipal(c)
		require.True(t, ok)
		*captured = p
		c.JSON(200, gin.H{"ok": true})
	})
	return router, sigSvc, nonceStore, captured
}

func errorCode(t *testing.T, w *httptest.ResponseRecorder) string {
	t.Helper()
	var resp map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	code, _ := resp["error_code"].(string)
	return code
}

func TestSignatureAuth_MissingHeaders(t *testing.T) {
	router, _, _, _ := setupAuthRouter(t, config.AuthConfig{})

	req := httptest.NewRequest(http.MethodPost, "/test", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Equal(t, "SEC_005", errorCode(t, w))
}

func TestSignatureAuth_MalformedTimestamp(t *testing.T) {
	router, _, _, _ := setupAuthRouter(t, config.AuthConfig{})

	req := httptest.NewRequest(http.MethodPost, "/test", nil)
	req.Header.Set(HeaderSignature, "sig")
	req.Header.Set(HeaderTimestamp, "not-a-number")
	req.Header.Set(HeaderNonce, "nonce123")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusForbidden, w.Code)
	assert.Equal(t, "SEC_003", errorCode(t, w))
}

func TestSignatureAuth_ExpiredTimestamp(t *testing.T) {
	router, _, _, _ := setupAuthRouter(t, config.AuthConfig{})

	req := httptest.NewRequest(http.MethodPost, "/test", nil)
	req.Header.Set(HeaderSignature, "sig")
	req.Header.Set(HeaderTimestamp, strconv.FormatInt(time.Now().Add(-120*time.Second).Unix(), 10))
	req.Header.Set(HeaderNonce, "nonce123")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusForbidden, w.Code)
	assert.Equal(t, "SEC_003", errorCode(t, w))
}

func TestSignatureAuth_InvalidSignature(t *testing.T) {
	router, sigSvc, _, _ := setupAuthRouter(t, config.AuthConfig{})

	nowTs := time.Now().Unix()
	sigSvc.EXPECT().BuildCanonicalString("POST", "/test", nowTs, "nonce123", "").Return("canonical")
	sigSvc.EXPECT().Recover("canonical", "bad_sig").Return(common.Address{}, assert.AnError)

	req := httptest.NewRequest(http.MethodPost, "/test", nil)
	req.Header.Set(HeaderSignature, "bad_sig")
	req.Header.Set(HeaderTimestamp, strconv.FormatInt(nowTs, 10))
	req.Header.Set(HeaderNonce, "nonce123")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Equal(t, "SEC_002", errorCode(t, w))
}

func TestSignatureAuth_ReplayedNonce(t *testing.T) {
	router, sigSvc, nonceStore, _ := setupAuthRouter(t, config.AuthConfig{})

	nowTs := time.Now().Unix()
	sigSvc.EXPECT().BuildCanonicalString("POST", "/test", nowTs, "nonce-used", "").Return("canonical")
	sigSvc.EXPECT().Recover("canonical", "sig").Return(testPrincipal, nil)
	nonceStore.EXPECT().CheckAndSet(gomock.Any(), testPrincipal.Hex(), "nonce-used", defaultNonceTTL).Return(false, nil)

	req := httptest.NewRequest(http.MethodPost, "/test", nil)
	req.Header.Set(HeaderSignature, "sig")
	req.Header.Set(HeaderTimestamp, strconv.FormatInt(nowTs, 10))
	req.Header.Set(HeaderNonce, "nonce-used")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusForbidden, w.Code)
	assert.Equal(t, "SEC_004", errorCode(t, w))
}

func TestSignatureAuth_NonceStoreErrorAllowsRequest(t *testing.T) {
	router, sigSvc, nonceStore, captured := setupAuthRouter(t, config.AuthConfig{})

	nowTs := time.Now().Unix()
	sigSvc.EXPECT().BuildCanonicalString("POST", "/test", nowTs, "nonce123", "").Return("canonical")
	sigSvc.EXPECT().Recover("canonical", "sig").Return(testPrincipal, nil)
	nonceStore.EXPECT().CheckAndSet(gomock.Any(), testPrincipal.Hex(), "nonce123", defaultNonceTTL).Return(false, assert.AnError)

	req := httptest.NewRequest(http.MethodPost, "/test", nil)
	req.Header.Set(HeaderSignature, "sig")
	req.Header.Set(HeaderTimestamp, strconv.FormatInt(nowTs, 10))
	req.Header.Set(HeaderNonce, "nonce123")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, testPrincipal, *captured)
}

func TestSignatureAuth_Success(t *testing.T) {
	cfg := config.AuthConfig{TimestampSkew: 60 * time.Second, NonceTTL: 2 * time.Minute}
	router, sigSvc, nonceStore, captured := setupAuthRouter(t, cfg)

	nowTs := time.Now().Unix()
	body := `{"wei_amount":1000}`

	sigSvc.EXPECT().BuildCanonicalString("POST", "/test", nowTs, "nonce-ok", body).Return("canonical")
	sigSvc.EXPECT().Recover("canonical", "valid_sig").Return(testPrincipal, nil)
	nonceStore.EXPECT().CheckAndSet(gomock.Any(), testPrincipal.Hex(), "nonce-ok", 2*time.Minute).Return(true, nil)

	req := httptest.NewRequest(http.MethodPost, "/test", bytes.NewBufferString(body))
	req.Header.Set(HeaderSignature, "valid_sig")
	req.Header.Set(HeaderTimestamp, strconv.FormatInt(nowTs, 10))
	req.Header.Set(HeaderNonce, "nonce-ok")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, testPrincipal, *captured)
}

func TestSignatureAuth_BodyRemainsReadable(t *testing.T) {
	ctrl := gomock.NewController(t)

	sigSvc := mocks.NewMockSignatureService(ctrl)
	nonceStore := mocks.NewMockNonceStore(ctrl)

	nowTs := time.Now().Unix()
	body := `{"name":"bot"}`

	sigSvc.EXPECT().BuildCanonicalString("POST", "/test", nowTs, "n1", body).Return("canonical")
	sigSvc.EXPECT().Recover("canonical", "sig").Return(testPrincipal, nil)
	nonceStore.EXPECT().CheckAndSet(gomock.Any(), testPrincipal.Hex(), "n1", defaultNonceTTL).Return(true, nil)

	var seenBody string
	router := gin.New()
	router.POST("/test", SignatureAuth(sigSvc, nonceStore, config.AuthConfig{}, zerolog.Nop()), func(c *gin.Context) {
		var req struct {
			Name string `json:"name"`
		}
		require.NoError(t, c.ShouldBindJSON(&req))
		seenBody = req.Name
		c.JSON(200, gin.H{"ok": true})
	})

	req := httptest.NewRequest(http.MethodPost, "/test", bytes.NewBufferString(body))
	req.Header.Set(HeaderSignature, "sig")
	req.Header.Set(HeaderTimestamp, strconv.FormatInt(nowTs, 10))
	req.Header.Set(HeaderNonce, "n1")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "bot", seenBody)
}

func TestGetPrincipal_NotSet(t *testing.T) {
	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	_, ok := GetPrincipal(c)
	assert.False(t, ok)
}

func TestRecovery_PanicRecovered(t *testing.T) {
	log := zerolog.Nop()

	router := gin.New()
	router.Use(Recovery(log))
	router.GET("/panic", func(c *gin.Context) {
		panic("something went wrong")
	})

	req := httptest.NewRequest(http.MethodGet, "/panic", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	var resp map[string]string
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "SYS_001", resp["error_code"])
}
