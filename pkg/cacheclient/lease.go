package cacheclient

import (
	"github.com/QuangTung97/go-memcache/memcache"
	"github.com/QuangTung97/minicrm/pkg/leasecache"
	"time"
)

var _ leasecache.Client = &Client{}

// LeaseGet grants a lease on miss, concurrent callers are rejected until the holder sets the value
func (c *Client) LeaseGet(key string) (leasecache.LeaseGetOutput, error) {
	p := c.client.Pipeline()
	defer p.Finish()

	resp, err := p.MGet(key, memcache.MGetOptions{
		N:   5,
		CAS: true,
	})()
	if err != nil {
		return leasecache.LeaseGetOutput{}, err
	}

	if resp.Type != memcache.MGetResponseTypeVA || resp.Flags&memcache.MGetFlagZ != 0 {
		return leasecache.LeaseGetOutput{
			Type: leasecache.LeaseGetTypeRejected,
		}, nil
	}

	if resp.Flags&memcache.MGetFlagW != 0 {
		return leasecache.LeaseGetOutput{
			Type:    leasecache.LeaseGetTypeGranted,
			LeaseID: resp.CAS,
		}, nil
	}

	return leasecache.LeaseGetOutput{
		Type: leasecache.LeaseGetTypeOK,
		Data: resp.Data,
	}, nil
}

// LeaseSet only succeeds for the lease holder
func (c *Client) LeaseSet(key string, value []byte, leaseID uint64, ttl time.Duration) error {
	p := c.client.Pipeline()
	defer p.Finish()

	_, err := p.MSet(key, value, memcache.MSetOptions{
		CAS: leaseID,
		TTL: uint32(ttl / time.Second),
	})()
	return err
}

// Delete ...
func (c *Client) Delete(key string) error {
	p := c.client.Pipeline()
	defer p.Finish()

	_, err := p.MDel(key, memcache.MDelOptions{})()
	return err
}
