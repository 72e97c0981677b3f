package logging

import (
	"bytes"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/go-logfmt/logfmt"
)

// writer is a slog TextHandler writer that decodes each record and keeps it in
// memory.
type writer struct {
	messages []Message
	serial   uint
	mu       sync.Mutex
}

func (w *writer) Write(p []byte) (int, error) {
	msgs := make([]Message, 0, 1)
	d := logfmt.NewDecoder(bytes.NewReader(p))
	for d.ScanRecord() {
		msg := Message{Serial: w.serial}
		for d.ScanKeyval() {
			switch string(d.Key()) {
			case "time":
				parsed, err := time.Parse(time.RFC3339, string(d.Value()))
				if err != nil {
					return 0, fmt.Errorf("parsing time: %w", err)
				}
				msg.Time = parsed
			case "level":
				var level slog.Level
				if err := level.UnmarshalText(d.Value()); err != nil {
					return 0, fmt.Errorf("parsing level: %w", err)
				}
				msg.Level = level
			case "msg":
				msg.Message = string(d.Value())
			default:
				msg.Attributes = append(msg.Attributes, Attr{
					Key:   string(d.Key()),
					Value: string(d.Value()),
				})
			}
		}
		msgs = append(msgs, msg)
		w.serial++
	}
	if d.Err() != nil {
		return 0, d.Err()
	}
	w.mu.Lock()
	w.messages = append(w.messages, msgs...)
	w.mu.Unlock()
	return len(p), nil
}

func (w *writer) list() []Message {
	w.mu.Lock()
	defer w.mu.Unlock()

	return append([]Message(nil), w.messages...)
}
