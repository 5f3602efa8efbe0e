package style_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"go.trai.ch/thumbs/internal/core/domain"
	"go.trai.ch/thumbs/internal/ui/style"
)

func TestStatusIconAndColor(t *testing.T) {
	t.Parallel()

	tests := []struct {
		status domain.Status
		icon   string
		color  string
	}{
		{domain.StatusCached, style.Dot, string(style.Slate)},
		{domain.StatusGenerated, style.Check, string(style.Green)},
		{domain.StatusUnreadable, style.Warning, string(style.Yellow)},
		{domain.StatusFailed, style.Cross, string(style.Red)},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.icon, style.StatusIcon(tt.status), tt.status)
		assert.Equal(t, tt.color, string(style.StatusColor(tt.status)), tt.status)
	}
}
