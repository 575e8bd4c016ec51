package handlers

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestCommentDateLayoutZeroPadsHour(t *testing.T) {
	at := time.Date(2026, time.September, 2, 9, 5, 0, 0, time.UTC)
	assert.Equal(t, "September 02, 2026 at 09:05 AM", at.Format(commentDateLayout))

	at = time.Date(2026, time.September, 2, 21, 5, 0, 0, time.UTC)
	assert.Equal(t, "September 02, 2026 at 09:05 PM", at.Format(commentDateLayout))
}
