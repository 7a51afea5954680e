// Package sse decodes the chunked `data: <json>` event streams the
// showcase backend emits for chat, catalog, and ideator responses.
//
// The transport delivers bytes in arbitrary chunks; the decoder
// reassembles them into frames on a configurable record separator,
// strips the frame prefix, and hands back one parsed envelope per
// frame in arrival order. One corrupt frame never poisons the rest of
// the stream.
package sse

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	log "github.com/sirupsen/logrus"
)

const (
	// DefaultSeparator terminates chat and detail frames.
	DefaultSeparator = "\n\n"
	// LineSeparator terminates item-list frames (one item per line).
	LineSeparator = "\n"
	// DefaultPrefix marks structured content inside a frame.
	DefaultPrefix = "data: "
)

// Options configures frame extraction for one stream.
type Options struct {
	RecordSeparator string // "" means DefaultSeparator
	FramePrefix     string // "" means DefaultPrefix
}

func (o Options) separator() string {
	if o.RecordSeparator == "" {
		return DefaultSeparator
	}
	return o.RecordSeparator
}

func (o Options) prefix() string {
	if o.FramePrefix == "" {
		return DefaultPrefix
	}
	return o.FramePrefix
}

// Envelope is one parsed frame. Raw holds the full JSON payload after
// prefix stripping; Type is the discriminant field, empty for untyped
// item frames (catalog and ideator lists).
type Envelope struct {
	Type string
	Raw  json.RawMessage
}

// Decoder turns a byte-chunk source into an ordered sequence of
// envelopes. It is single-use: one decoder per HTTP response, consumed
// once via Next until io.EOF.
type Decoder struct {
	r    io.Reader
	sep  string
	pfx  string
	buf  []byte // read scratch
	text string // accumulated undelivered text

	eof      bool // underlying reader returned io.EOF
	tailDone bool // final unterminated fragment already attempted
	err      error
	dropped  int
}

// NewDecoder wraps r, typically an HTTP response body. The caller
// keeps ownership of r and closes it.
func NewDecoder(r io.Reader, opts Options) *Decoder {
	return &Decoder{
		r:   r,
		sep: opts.separator(),
		pfx: opts.prefix(),
		buf: make([]byte, 4096),
	}
}

// Dropped reports how many frames failed to parse and were discarded.
func (d *Decoder) Dropped() int {
	return d.dropped
}

// Next returns the next envelope in frame order. It returns io.EOF at
// normal end of stream and any other error on a transport failure.
// Frames missing the prefix are skipped; frames with invalid JSON are
// logged, counted, and skipped.
func (d *Decoder) Next() (Envelope, error) {
	if d.err != nil {
		return Envelope{}, d.err
	}

	for {
		// Drain complete frames already buffered.
		for {
			idx := strings.Index(d.text, d.sep)
			if idx < 0 {
				break
			}
			frame := d.text[:idx]
			d.text = d.text[idx+len(d.sep):]
			if env, ok := d.parseFrame(frame); ok {
				return env, nil
			}
		}

		if d.eof {
			// Servers sometimes omit the trailing separator on the
			// final frame: give the remainder one parse attempt, then
			// discard it whether or not that worked.
			if !d.tailDone {
				d.tailDone = true
				tail := d.text
				d.text = ""
				if strings.TrimSpace(tail) != "" {
					if env, ok := d.parseFrame(tail); ok {
						return env, nil
					}
				}
			}
			d.err = io.EOF
			return Envelope{}, d.err
		}

		n, err := d.r.Read(d.buf)
		if n > 0 {
			d.text += string(d.buf[:n])
		}
		if err == io.EOF {
			d.eof = true
		} else if err != nil {
			d.err = fmt.Errorf("reading stream: %w", err)
			return Envelope{}, d.err
		}
	}
}

// parseFrame strips the prefix and parses one frame's payload.
// Returns false for frames that produce no envelope.
func (d *Decoder) parseFrame(frame string) (Envelope, bool) {
	frame = strings.TrimRight(frame, "\r\n")
	if frame == "" {
		return Envelope{}, false
	}
	if !strings.HasPrefix(frame, d.pfx) {
		// Comments, keep-alives, anything unmarked: not an event.
		return Envelope{}, false
	}
	payload := strings.TrimSpace(frame[len(d.pfx):])

	var probe struct {
		Type string `json:"type"`
	}
	if err := json.Unmarshal([]byte(payload), &probe); err != nil {
		d.dropped++
		log.WithError(err).Warnf("sse: dropping malformed frame (%d dropped so far)", d.dropped)
		return Envelope{}, false
	}
	return Envelope{Type: probe.Type, Raw: json.RawMessage(payload)}, true
}
