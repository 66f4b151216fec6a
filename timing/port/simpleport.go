package port

import "github.com/archsim/tomasulo32/emu"

// SimplePort is a fixed-latency Port backed directly by an emu.Memory:
// requests always accepted, responses ready after Latency ticks. It is
// the default I-memory collaborator and the test double for callers that
// don't care about cache fidelity; timing/cache.Port is the
// directory-backed implementation.
//
// Recv does not clear the outstanding request: the fetch buffer it serves
// is only cleared once Decode actually dispatches, and Decode can stall
// for a cycle or more on a full reservation station, so a response must
// stay readable across repeated CanRecv/Recv calls until the next Send
// overwrites it.
type SimplePort struct {
	memory  *emu.Memory
	latency uint64

	waiting   bool
	ready     bool
	req       Request
	countdown uint64
}

// NewSimplePort creates a Port with the given fixed per-request latency in
// ticks. A Latency of 0 means a response is ready the same tick the
// request was accepted (observed on the *next* call to CanRecv, since Tick
// is invoked once per cycle by the driver).
func NewSimplePort(memory *emu.Memory, latency uint64) *SimplePort {
	return &SimplePort{memory: memory, latency: latency}
}

// CanSend always reports true: nothing in this Port enforces a one-
// outstanding-request limit, since the core's single-entry fetch buffer
// already guarantees Send is never called while a request is in flight.
func (p *SimplePort) CanSend() bool {
	return true
}

// Send accepts a request and starts its latency countdown, discarding any
// previously completed (and by now already consumed) response.
func (p *SimplePort) Send(req Request) {
	p.req = req
	p.ready = false
	p.waiting = true
	p.countdown = p.latency
	if p.latency == 0 {
		p.waiting = false
		p.ready = true
	}
}

// CanRecv reports whether the outstanding request's latency has elapsed.
func (p *SimplePort) CanRecv() bool {
	return p.ready
}

// Recv performs the memory access and returns the response. The request
// stays readable until the next Send, so a Decode stall can retry safely.
func (p *SimplePort) Recv() Response {
	data := p.memory.ReadWord(p.req.Addr, p.req.Size)
	return Response{Data: data, Tag: p.req.Tag}
}

// Tick advances the latency countdown by one cycle.
func (p *SimplePort) Tick() {
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
func (p *SimplePort) Reset() {
	p.waiting = false
	p.ready = false
	p.countdown = 0
}
