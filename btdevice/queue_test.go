package btdevice

import "testing"

func TestOutgoingQueueDrainsFIFOAndDropsOnOverflow(t *testing.T) {
	q := newOutgoingQueue(2)
	q.Enqueue(1, []byte{0x01})
	q.Enqueue(1, []byte{0x02})
	q.Enqueue(1, []byte{0x03}) // dropped, queue already at depth 2

	if q.Len() != 2 {
		t.Fatalf("expected 2 queued packets, got %d", q.Len())
	}

	p, ok := q.DrainOne(1)
	if !ok || p[0] != 0x01 {
		t.Fatalf("expected FIFO order, got %v ok=%v", p, ok)
	}

	if !q.Pending(1) {
		t.Fatal("expected one packet still pending")
	}

	p, ok = q.DrainOne(1)
	if !ok || p[0] != 0x02 {
		t.Fatalf("expected second packet 0x02, got %v ok=%v", p, ok)
	}

	if _, ok := q.DrainOne(1); ok {
		t.Fatal("expected queue to be empty")
	}
}

func TestOutgoingQueueDrainOneIgnoresOtherCIDs(t *testing.T) {
	q := newOutgoingQueue(8)
	q.Enqueue(1, []byte{0xAA})
	q.Enqueue(2, []byte{0xBB})

	p, ok := q.DrainOne(2)
	if !ok || p[0] != 0xBB {
		t.Fatalf("expected cid 2's packet, got %v ok=%v", p, ok)
	}
	if !q.Pending(1) {
		t.Fatal("cid 1's packet must still be pending")
	}
}
