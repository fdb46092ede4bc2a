package snapshot

import (
	"crypto/rand"
)

const (
	reportIDLen      = 12
	reportIDAlphabet = "abcdefghijklmnopqrstuvwxyz0123456789"
)

// NewReportID returns a fresh 12-character lowercase alphanumeric id.
// Practically unique; no pre-insert uniqueness check is made, the
// primary-key constraint on the reports table is the backstop.
func NewReportID() string {
	buf := make([]byte, reportIDLen)
	if _, err := rand.Read(buf); err != nil {
		panic("reportid: crypto/rand unavailable: " + err.Error())
	}
	for i, b := range buf {
		buf[i] = reportIDAlphabet[int(b)%len(reportIDAlphabet)]
	}
	return string(buf)
}
