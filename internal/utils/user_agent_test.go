package utils

import (
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestUserAgent(t *testing.T) {
	ua := UserAgent("1.2.3")

	assert.Equal(t, "Go-SDK/1.2.3 ("+runtime.GOOS+"; "+runtime.GOARCH+"; "+runtime.Version()+")", ua)
	assert.Contains(t, UserAgent(""), "Go-SDK/dev ")
}
