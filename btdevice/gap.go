package btdevice

import "time"

// gapInquiryPause is the single-shot delay spec.md §4.8 requires between
// inquiries: "inquiries block inbound connections, so the pause is
// required for incoming pairings to succeed."
const gapInquiryPause = 1280 * time.Millisecond

// BeginInquiry claims the inquiry gate. It returns false if an inquiry
// (or its post-inquiry pause) is already in progress.
func (t *Table) BeginInquiry() bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.inquiryRunning {
		return false
	}
	t.inquiryRunning = true
	return true
}

// EndInquiry marks the inquiry itself complete but keeps the gate closed
// for gapInquiryPause before the next inquiry may start.
func (t *Table) EndInquiry(clk Scheduler) {
	clk.AfterFunc(gapInquiryPause, func() {
		t.mu.Lock()
		t.inquiryRunning = false
		t.mu.Unlock()
	})
}
