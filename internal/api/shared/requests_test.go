package shared_test

import (
	"bytes"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/parkerross/totodo-api/internal/api/shared"
)

type decodeTarget struct {
	Email string `json:"email" validate:"required,email"`
	Name  string `json:"name"`
}

func TestDecodeJSON(t *testing.T) {
	t.Parallel()

	t.Run("valid body", func(t *testing.T) {
		t.Parallel()

		req := httptest.NewRequest(
			http.MethodPost, "/", bytes.NewBufferString(`{"email":"a@b.co","name":"Ada"}`))

		var target decodeTarget
		require.NoError(t, shared.DecodeJSON(req, &target))
		assert.Equal(t, "a@b.co", target.Email)
		assert.Equal(t, "Ada", target.Name)
	})

	t.Run("malformed body", func(t *testing.T) {
		t.Parallel()

		req := httptest.NewRequest(http.MethodPost, "/", bytes.NewBufferString(`{"email":`))

		var target decodeTarget
		assert.Error(t, shared.DecodeJSON(req, &target))
	})
}

func TestValidateRequest(t *testing.T) {
	t.Parallel()

	assert.NoError(t, shared.ValidateRequest(decodeTarget{Email: "a@b.co"}))
	assert.Error(t, shared.ValidateRequest(decodeTarget{Email: "not-an-email"}))
	assert.Error(t, shared.ValidateRequest(decodeTarget{}))
}

type selfValidating struct{ fail bool }

func (s selfValidating) Validate() error {
	if s.fail {
		return errors.New("custom validation failed")
	}
	return nil
}

func TestValidateRequestPrefersCustomValidator(t *testing.T) {
	t.Parallel()

	assert.NoError(t, shared.ValidateRequest(selfValidating{}))
	assert.Error(t, shared.ValidateRequest(selfValidating{fail: true}))
}
