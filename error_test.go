package esosearch_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/fwojciec/esosearch"
	"github.com/stretchr/testify/assert"
)

func TestErrorf(t *testing.T) {
	t.Parallel()

	err := esosearch.Errorf(esosearch.EFETCH, "HTTP %d for %s", 404, "https://esolangs.org/wiki/Nope")

	assert.Equal(t, esosearch.EFETCH, esosearch.ErrorCode(err))
	assert.Equal(t, "HTTP 404 for https://esolangs.org/wiki/Nope", esosearch.ErrorMessage(err))
}

func TestErrorCode_WrappedError(t *testing.T) {
	t.Parallel()

	err := fmt.Errorf("scoring: %w", esosearch.Errorf(esosearch.ENOTCACHED, "page not cached"))

	assert.Equal(t, esosearch.ENOTCACHED, esosearch.ErrorCode(err))
	assert.Equal(t, "page not cached", esosearch.ErrorMessage(err))
}

func TestErrorCode_NonApplicationError(t *testing.T) {
	t.Parallel()

	err := errors.New("boom")

	assert.Equal(t, esosearch.EINTERNAL, esosearch.ErrorCode(err))
	assert.Equal(t, "Internal error.", esosearch.ErrorMessage(err))
}

func TestErrorCode_NilError(t *testing.T) {
	t.Parallel()

	assert.Empty(t, esosearch.ErrorCode(nil))
}

func TestErrorMessage_NilError(t *testing.T) {
	t.Parallel()

	assert.Empty(t, esosearch.ErrorMessage(nil))
}
