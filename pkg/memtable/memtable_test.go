package memtable

import (
	"github.com/stretchr/testify/assert"
	"testing"
	"time"
)

func TestMemTable(t *testing.T) {
	m := New(512 * 1024)

	m.SetString("key01", "Aisha", time.Minute)
	m.Set("key02", []byte{1, 2, 3}, 0)

	s, ok := m.GetString("key01")
	assert.Equal(t, true, ok)
	assert.Equal(t, "Aisha", s)

	data, ok := m.Get("key02")
	assert.Equal(t, true, ok)
	assert.Equal(t, []byte{1, 2, 3}, data)

	s, ok = m.GetString("key03")
	assert.Equal(t, false, ok)
	assert.Equal(t, "", s)

	m.Delete("key01")
	_, ok = m.GetString("key01")
	assert.Equal(t, false, ok)
}

func TestExpireSeconds(t *testing.T) {
	assert.Equal(t, 0, expireSeconds(0))
	assert.Equal(t, 1, expireSeconds(200*time.Millisecond))
	assert.Equal(t, 90, expireSeconds(90*time.Second))
}
