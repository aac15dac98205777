package errors

import (
	stderrors "errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCodes(t *testing.T) {
	noStories := NewWithCode(CodeNoStoriesAvailable, "no stories available")
	wrapped := fmt.Errorf("initialize: %w", noStories)

	assert.True(t, IsNoStoriesAvailable(wrapped))
	assert.False(t, IsInvalidState(wrapped))
	assert.Equal(t, CodeNoStoriesAvailable, GetCode(wrapped))
	assert.True(t, Is(wrapped, noStories))
}

func TestIsMatchesByCode(t *testing.T) {
	a := NewWithCode(CodeInvalidState, "advance while idle")
	b := NewWithCode(CodeInvalidState, "pause while closed")

	assert.True(t, stderrors.Is(a, b))
	assert.False(t, stderrors.Is(a, New("other")))
	assert.False(t, stderrors.Is(New("x"), New("x")))
}

func TestWrap(t *testing.T) {
	assert.Nil(t, Wrap(nil, "ignored"))

	err := Wrap(ErrNotFound, "performer not found")
	assert.True(t, IsNotFound(err))
	assert.Equal(t, "performer not found: not found", err.Error())
	assert.Equal(t, "performer not found", GetMessage(err))
	assert.Empty(t, GetCode(err))

	coded := WrapWithCode(err, CodeInvalidState, "state")
	assert.Equal(t, CodeInvalidState, GetCode(coded))
	assert.True(t, IsNotFound(coded))
	assert.Equal(t, "state", GetMessage(coded))
	assert.Equal(t, "plain", GetMessage(stderrors.New("plain")))
	assert.Empty(t, GetMessage(nil))
}
