package cache

import "github.com/archsim/tomasulo32/timing/port"

// Port adapts a Cache to the timing/port.Port interface: a request is
// accepted immediately (CanSend is always true — one cache access is
// always "in flight" capacity here) but its response is only ready after
// the access latency (hit or miss) elapses.
//
// Recv does not clear the completed access: the caller's fetch buffer is
// only cleared once Decode actually dispatches, which a full reservation
// station may delay a cycle or more, so a response must stay readable
// across repeated CanRecv/Recv calls until the next Send overwrites it.
type Port struct {
	cache *Cache

	waiting   bool
	ready     bool
	req       port.Request
	countdown uint64
}

// NewPort wraps cache as a port.Port.
func NewPort(cache *Cache) *Port {
	return &Port{cache: cache}
}

// CanSend always reports true: nothing in this Port enforces a one-
// outstanding-request limit, since the core's single-entry fetch buffer
// already guarantees Send is never called while a request is in flight.
func (p *Port) CanSend() bool {
	return true
}

// Send submits a request, performs the cache access immediately, and
// starts the resulting latency countdown, discarding any previously
// completed (and by now already consumed) response.
func (p *Port) Send(req port.Request) {
	p.req = req
	p.ready = false

	var latency uint64
	switch req.Op {
	case port.OpWrite:
		latency = p.cache.Write(req.Addr, req.Data)
	default:
		_, latency = p.cache.Read(req.Addr, req.Size)
	}

	if latency == 0 {
		p.waiting = false
		p.ready = true
		return
	}
	p.waiting = true
	p.countdown = latency
}

// CanRecv reports whether the outstanding access has completed.
func (p *Port) CanRecv() bool {
	return p.ready
}

// Recv returns the completed response. The actual cache access already
// happened in Send (this models the data being latched into the response
// buffer, not a second access), so Recv re-reads the (now certainly
// cached) line to build the response payload.
func (p *Port) Recv() port.Response {
	var data []byte
	if p.req.Op == port.OpRead {
		data, _ = p.cache.Read(p.req.Addr, p.req.Size)
	}
	return port.Response{Data: data, Tag: p.req.Tag}
}

// Tick advances the latency countdown by one cycle.
func (p *Port) Tick() {
	if !p.waiting {
		return
	}
	p.countdown--
	if p.countdown == 0 {
		p.waiting = false
		p.ready = true
	}
}

// Reset discards any outstanding or completed request, draining a stale
// response after a squash.
func (p *Port) Reset() {
	p.waiting = false
	p.ready = false
	p.countdown = 0
}
