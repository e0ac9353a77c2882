package version

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGetVersion(t *testing.T) {
	defer func(v, h string) { Version, GitHash = v, h }(Version, GitHash)

	Version, GitHash = "v1.2.0", "0123456789abcdef"
	assert.Equal(t, "v1.2.0-0123456", GetVersion())

	GitHash = ""
	assert.Equal(t, "v1.2.0", GetVersion())

	var b bytes.Buffer
	Printer(&b)
	assert.Contains(t, b.String(), "v1.2.0")
}
