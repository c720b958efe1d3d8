// Copyright (c) 2025 Nikita Kamenev
// Licensed under the MIT License. See LICENSE file in the project root for details.
package gsacads

import "strconv"

// Stats is a write-only sink for engine measurements. The engine reports
// per-stage timings through it and nothing else; a nil sink disables
// reporting. Sinks must not be called from inner loops, so a slow consumer
// cannot distort the construction itself.
type Stats func(key string, value int64)

// statsLogLimit caps a StatsLog at 1 MiB of collected text.
const statsLogLimit = 1 << 20

// StatsLog is a bounded collecting sink. Entries are appended as
// space-separated key=value pairs; when the cap is reached the collected
// text is dropped and collection restarts.
type StatsLog struct {
	size int
	buf  []byte
}

// Sink returns a Stats function writing into the log.
func (l *StatsLog) Sink() Stats {
	return func(key string, value int64) {
		entry := key + "=" + strconv.FormatInt(value, 10)
		if l.size > 0 {
			entry = " " + entry
		}
		if l.size+len(entry) >= statsLogLimit {
			l.buf = l.buf[:0]
			l.size = 0
			entry = key + "=" + strconv.FormatInt(value, 10)
		}
		l.buf = append(l.buf, entry...)
		l.size += len(entry)
	}
}

// GetAndClear returns the collected log and resets the collector.
func (l *StatsLog) GetAndClear() string {
	s := string(l.buf)
	l.buf = l.buf[:0]
	l.size = 0
	return s
}
