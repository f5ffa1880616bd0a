package btdevice

import "log/slog"

// defaultQueueDepth is the per-connection outgoing queue bound spec.md
// §4.6 requires to be "implementation-defined >= 8".
const defaultQueueDepth = 8

// outPacket is one queued (cid, payload) pair awaiting a can-send-now
// callback, per spec.md §4.6.
type outPacket struct {
	cid     uint16
	payload []byte
}

// outgoingQueue is the bounded per-connection FIFO spec.md §4.6
// describes: an L2CAP send that fails busy enqueues here instead, and
// the dispatcher drains one entry per CID per can-send-now callback.
// Overflow drops the newest packet with a diagnostic rather than
// blocking the event loop.
type outgoingQueue struct {
	depth int
	items []outPacket
}

func newOutgoingQueue(depth int) *outgoingQueue {
	return &outgoingQueue{depth: depth}
}

// Enqueue appends a packet, dropping it (and logging) if the queue is
// already at capacity.
func (q *outgoingQueue) Enqueue(cid uint16, payload []byte) {
	if len(q.items) >= q.depth {
		slog.Warn("btdevice: outgoing queue full, dropping packet", "cid", cid, "len", len(payload))
		return
	}
	q.items = append(q.items, outPacket{cid: cid, payload: append([]byte(nil), payload...)})
}

// DrainOne pops and returns the oldest queued packet for cid, the way a
// can-send-now callback drains "one queued entry per callback per CID".
// The bool is false when nothing is queued for cid.
func (q *outgoingQueue) DrainOne(cid uint16) ([]byte, bool) {
	for i, p := range q.items {
		if p.cid != cid {
			continue
		}
		q.items = append(q.items[:i], q.items[i+1:]...)
		return p.payload, true
	}
	return nil, false
}

// Pending reports whether cid still has queued packets, so the caller
// knows whether to re-request a can-send-now callback.
func (q *outgoingQueue) Pending(cid uint16) bool {
	for _, p := range q.items {
		if p.cid == cid {
			return true
		}
	}
	return false
}

func (q *outgoingQueue) Len() int { return len(q.items) }
