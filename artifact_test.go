package aeo_test

import (
	"testing"

	"github.com/aeojs/aeo"
	"github.com/stretchr/testify/assert"
)

func TestArtifact_Validate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		path    string
		wantErr bool
	}{
		{"simple file", "robots.txt", false},
		{"nested file", "docs/api.md", false},
		{"empty path", "", true},
		{"absolute path", "/etc/passwd", true},
		{"escapes output dir", "../outside.txt", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			err := (&aeo.Artifact{Path: tt.path}).Validate()

			if tt.wantErr {
				assert.Equal(t, aeo.EINVALID, aeo.ErrorCode(err))
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
