package utils

import (
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHTTPStatusMapping(t *testing.T) {
	cases := map[Code]int{
		CodeInvalidArgument: http.StatusBadRequest,
		CodeUnauthorized:    http.StatusUnauthorized,
		CodeForbidden:       http.StatusForbidden,
		CodeNotFound:        http.StatusNotFound,
		CodeConflict:        http.StatusConflict,
		CodeUnavailable:     http.StatusServiceUnavailable,
		CodeInternal:        http.StatusInternalServerError,
	}
	for code, want := range cases {
		assert.Equal(t, want, HTTPStatus(E(code, "Op", "msg", nil)), string(code))
	}

	assert.Equal(t, http.StatusNotFound, HTTPStatus(ErrNotFound))
	assert.Equal(t, http.StatusInternalServerError, HTTPStatus(errors.New("plain")))
}

func TestIsCodeUnwrapsChain(t *testing.T) {
	inner := E(CodeNotFound, "Repo.Get", "missing", ErrNotFound)
	outer := E(CodeInternal, "Service.Get", "failed", inner)

	assert.True(t, IsCode(outer, CodeInternal))
	assert.False(t, IsCode(outer, CodeNotFound), "the outermost code wins")
	assert.True(t, errors.Is(outer, ErrNotFound), "sentinels stay reachable")
}

func TestAppErrorMessageComposition(t *testing.T) {
	err := E(CodeInternal, "SearchService.Search", "search failed", errors.New("timeout"))
	assert.Equal(t, "SearchService.Search: search failed: timeout", err.Error())
}
