package httpsig

import (
	"bytes"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

func Test_Require(t *testing.T) {
	secret := "my-secret"
	handler := Require(NewVerifier(secret))(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		// Echo the body back so tests can confirm it survives verification
		body, err := io.ReadAll(r.Body)
		assert.NoError(t, err)
		w.Write(body)
	}))

	t.Run("signed request passes through with its body intact", func(t *testing.T) {
		body := []byte(`{"value":42}`)
		req := httptest.NewRequest(http.MethodPost, "/protected", bytes.NewReader(body))
		req = NewSigner(secret).Sign(req, body)

		res := httptest.NewRecorder()
		handler.ServeHTTP(res, req)
		assert.Equal(t, http.StatusOK, res.Code)
		assert.Equal(t, body, res.Body.Bytes())
	})

	t.Run("unsigned request is rejected with 401", func(t *testing.T) {
		body := []byte(`{"value":42}`)
		req := httptest.NewRequest(http.MethodPost, "/protected", bytes.NewReader(body))

		res := httptest.NewRecorder()
		handler.ServeHTTP(res, req)
		assert.Equal(t, http.StatusUnauthorized, res.Code)
	})

	t.Run("request signed with the wrong secret is rejected", func(t *testing.T) {
		body := []byte(`{"value":42}`)
		req := httptest.NewRequest(http.MethodPost, "/protected", bytes.NewReader(body))
		req = NewSigner("wrong-secret").Sign(req, body)

		res := httptest.NewRecorder()
		handler.ServeHTTP(res, req)
		assert.Equal(t, http.StatusUnauthorized, res.Code)
	})
}
