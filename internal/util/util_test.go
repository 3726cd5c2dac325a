package util

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFormatBytes(t *testing.T) {
	cases := map[int64]string{
		0:               "0 B",
		1023:            "1023 B",
		1024:            "1.0 KB",
		1536:            "1.5 KB",
		10 << 20:        "10.0 MB",
		5 << 30:         "5.0 GB",
		3 << 60:         "3.0 EB",
		(1 << 20) - 100: "1023.9 KB",
	}

	for n, want := range cases {
		assert.Equal(t, want, FormatBytes(n), "bytes=%d", n)
	}
}
