package storage

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryStorage(t *testing.T) {
	ctx := context.Background()
	s := NewMemoryStorage("https://docs.example.com")

	data := []byte("%PDF-1.7")
	require.NoError(t, s.Upload(ctx, "invoices/a.pdf", data, "application/pdf"))
	data[0] = 'X'

	got, contentType, ok := s.Get("invoices/a.pdf")
	require.True(t, ok)
	assert.Equal(t, []byte("%PDF-1.7"), got)
	assert.Equal(t, "application/pdf", contentType)

	u, expiresAt, err := s.GenerateDownloadURL(ctx, "invoices/a.pdf", time.Minute)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(u, "https://docs.example.com/invoices/a.pdf?expires="))
	assert.WithinDuration(t, time.Now().Add(time.Minute), expiresAt, 5*time.Second)

	assert.ErrorIs(t, s.Upload(ctx, "", nil, ""), ErrStorageKeyRequired)
	_, _, err = s.GenerateDownloadURL(ctx, "", 0)
	assert.ErrorIs(t, err, ErrStorageKeyRequired)

	_, _, ok = s.Get("missing")
	assert.False(t, ok)
}
