package cacheclient

import (
	"github.com/QuangTung97/minicrm/pkg/leasecache"
	"github.com/stretchr/testify/assert"
	"testing"
	"time"
)

func newClient() *Client {
	c := New("localhost:11211", 1)
	err := c.UnsafeFlushAll()
	if err != nil {
		panic(err)
	}
	return c
}

func TestCacheClient__Get__Miss(t *testing.T) {
	c := newClient()
	defer func() { _ = c.Close() }()

	data, found, err := c.Get("key01")
	assert.Equal(t, nil, err)
	assert.Equal(t, false, found)
	assert.Nil(t, data)
}

func TestCacheClient__Set_Then_Get(t *testing.T) {
	c := newClient()
	defer func() { _ = c.Close() }()

	err := c.Set("key01", []byte(`{"customers":3}`), time.Minute)
	assert.Equal(t, nil, err)

	data, found, err := c.Get("key01")
	assert.Equal(t, nil, err)
	assert.Equal(t, true, found)
	assert.Equal(t, []byte(`{"customers":3}`), data)
}

func TestCacheClient__LeaseGet__Granted_And_Rejected(t *testing.T) {
	c := newClient()
	defer func() { _ = c.Close() }()

	output, err := c.LeaseGet("key01")
	assert.Equal(t, nil, err)

	assert.Greater(t, output.LeaseID, uint64(0))
	output.LeaseID = 0

	assert.Equal(t, leasecache.LeaseGetOutput{
		Type: leasecache.LeaseGetTypeGranted,
	}, output)

	// Lease Get Second Time
	output, err = c.LeaseGet("key01")
	assert.Equal(t, nil, err)
	assert.Equal(t, leasecache.LeaseGetOutput{
		Type: leasecache.LeaseGetTypeRejected,
	}, output)
}

func TestCacheClient__LeaseGet__OK(t *testing.T) {
	c := newClient()
	defer func() { _ = c.Close() }()

	output, err := c.LeaseGet("key01")
	assert.Equal(t, nil, err)
	assert.Equal(t, leasecache.LeaseGetTypeGranted, output.Type)

	err = c.LeaseSet("key01", []byte("Aisha"), output.LeaseID, time.Minute)
	assert.Equal(t, nil, err)

	// Lease Get After Set
	output, err = c.LeaseGet("key01")
	assert.Equal(t, nil, err)
	assert.Equal(t, leasecache.LeaseGetOutput{
		Type: leasecache.LeaseGetTypeOK,
		Data: []byte("Aisha"),
	}, output)

	// Delete
	err = c.Delete("key01")
	assert.Equal(t, nil, err)

	_, found, err := c.Get("key01")
	assert.Equal(t, nil, err)
	assert.Equal(t, false, found)

	// Lease Get Again
	output, err = c.LeaseGet("key01")
	assert.Equal(t, nil, err)
	assert.Equal(t, leasecache.LeaseGetTypeGranted, output.Type)
}
