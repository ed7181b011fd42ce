package main

import (
	"bytes"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/vvka-141/nftmeta/pkg/nftmeta"
)

func TestRun(t *testing.T) {
	tests := []struct {
		name    string
		execute func() error
		want    int
	}{
		{"success", func() error { return nil }, nftmeta.ExitSuccess},
		{"validation failed", func() error {
			return fmt.Errorf("%w: 1 invalid", nftmeta.ErrValidationFailed)
		}, nftmeta.ExitValidationFailed},
		{"usage", func() error { return fmt.Errorf("unknown flag: --nope") }, nftmeta.ExitUsageError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var stderr bytes.Buffer
			assert.Equal(t, tt.want, run(tt.execute, &stderr))
			assert.Empty(t, stderr.String())
		})
	}
}

func TestRun_RecoversPanic(t *testing.T) {
	var stderr bytes.Buffer

	code := run(func() error { panic("boom") }, &stderr)

	assert.Equal(t, nftmeta.ExitPanic, code)
	assert.Contains(t, stderr.String(), "panic: boom")
	assert.Contains(t, stderr.String(), "goroutine")
}
