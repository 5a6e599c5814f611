package wizard

import (
	"regexp"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGenerateTrackingCode_Shape(t *testing.T) {
	pattern := regexp.MustCompile(`^RANE-[A-Z0-9]{4}-\d{4}$`)
	for i := 0; i < 50; i++ {
		code := GenerateTrackingCode()
		assert.Regexp(t, pattern, code)
		assert.True(t, strings.HasPrefix(code, trackingPrefix))
	}
}
