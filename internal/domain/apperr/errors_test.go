package apperr

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestKindOf(t *testing.T) {
	assert.Equal(t, KindValidation, KindOf(Validation("bad input")))
	assert.Equal(t, KindNotFound, KindOf(NotFound("missing")))
	assert.Equal(t, KindPersistence, KindOf(Persistence("db down", errors.New("dial tcp"))))
	assert.Equal(t, KindStorage, KindOf(Storage("presign failed", errors.New("credentials"))))

	// Untyped errors default to a server fault.
	assert.Equal(t, KindPersistence, KindOf(errors.New("something else")))
}

func TestKindOfWrapped(t *testing.T) {
	wrapped := fmt.Errorf("handling request: %w", NotFound("missing"))
	assert.True(t, IsNotFound(wrapped))
}

func TestStatus(t *testing.T) {
	assert.Equal(t, http.StatusBadRequest, Status(Validation("bad input")))
	assert.Equal(t, http.StatusNotFound, Status(NotFound("missing")))
	assert.Equal(t, http.StatusInternalServerError, Status(Persistence("db down", nil)))
	assert.Equal(t, http.StatusInternalServerError, Status(Storage("presign failed", nil)))
	assert.Equal(t, http.StatusInternalServerError, Status(errors.New("untyped")))
}

func TestErrorMessage(t *testing.T) {
	cause := errors.New("dial tcp: connection refused")
	err := Persistence("db down", cause)

	assert.Equal(t, "db down: dial tcp: connection refused", err.Error())
	assert.Equal(t, cause, errors.Unwrap(err))

	assert.Equal(t, "missing", NotFound("missing").Error())
}
