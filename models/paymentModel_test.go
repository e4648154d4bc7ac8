package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestReceiptNumberAt(t *testing.T) {
	at := time.Date(2025, time.March, 7, 14, 5, 9, 0, time.Local)
	assert.Equal(t, "R20250307140509", ReceiptNumberAt(at))

	// Same-second payments collide; the format is only second-granular.
	assert.Equal(t, ReceiptNumberAt(at), ReceiptNumberAt(at.Add(500*time.Millisecond)))
}
