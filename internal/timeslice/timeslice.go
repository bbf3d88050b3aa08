// Package timeslice records how long each phase of a frame takes.
//
// A log starts with a header and a JSON table of kinds, padded to 4096
// bytes, followed by fixed size records of (kind, frame, duration).
package timeslice

import (
	"bufio"
	"encoding/binary"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"
	"time"
)

const (
	Magic   uint32 = 0x54465844 // "DXFT"
	Version uint32 = 1

	align = 4096
)

var (
	ErrStarted = errors.New("timeslice: recorder already started")
	ErrClosed  = errors.New("timeslice: recorder closed")
)

type header struct {
	Magic       uint32
	Version     uint32
	KindsLength uint32
}

// Kind identifies a phase registered with a Recorder.
type Kind uint32

type Flags uint32

const (
	// FlagFrame marks phases that happen once per frame.
	FlagFrame Flags = 1 << iota
	// FlagSetup marks one off phases such as asset loading.
	FlagSetup
)

func (f Flags) String() string {
	var flags []string
	if f&FlagFrame != 0 {
		flags = append(flags, "frame")
	}
	if f&FlagSetup != 0 {
		flags = append(flags, "setup")
	}
	return strings.Join(flags, ",")
}

type KindInfo struct {
	Name  string
	Flags Flags
}

type record struct {
	Kind     Kind
	Frame    uint32
	Duration int64
}

var recordSize = binary.Size(record{})

// Recorder buffers records and writes them from a background goroutine.
// A nil *Recorder discards everything. It is not safe for concurrent use.
type Recorder struct {
	kinds map[Kind]KindInfo
	frame uint32

	w       io.Writer
	records chan record
	done    chan error
	started bool
	closed  bool
}

func NewRecorder() *Recorder {
	return &Recorder{kinds: make(map[Kind]KindInfo)}
}

// Register adds a kind. Kinds must be registered before Start.
func (r *Recorder) Register(name string, flags Flags) Kind {
	if r.started {
		panic("timeslice: Register after Start")
	}
	k := Kind(len(r.kinds) + 1)
	r.kinds[k] = KindInfo{Name: name, Flags: flags}
	return k
}

// Start writes the log header to w and begins accepting records.
func (r *Recorder) Start(w io.Writer) error {
	if r.started {
		return ErrStarted
	}

	kinds, err := json.Marshal(r.kinds)
	if err != nil {
		return fmt.Errorf("timeslice: marshal kinds: %w", err)
	}
	if err := binary.Write(w, binary.LittleEndian, header{
		Magic:       Magic,
		Version:     Version,
		KindsLength: uint32(len(kinds)),
	}); err != nil {
		return fmt.Errorf("timeslice: write header: %w", err)
	}
	if _, err := w.Write(kinds); err != nil {
		return fmt.Errorf("timeslice: write kinds: %w", err)
	}
	if pad := padding(binary.Size(header{}) + len(kinds)); pad > 0 {
		if _, err := w.Write(make([]byte, pad)); err != nil {
			return fmt.Errorf("timeslice: write padding: %w", err)
		}
	}

	r.w = w
	r.records = make(chan record, align)
	r.done = make(chan error, 1)
	r.started = true
	go r.run()
	return nil
}

func padding(off int) int {
	if off%align == 0 {
		return 0
	}
	return align - off%align
}

func (r *Recorder) run() {
	var buf [align]byte
	off := 0
	for rec := range r.records {
		if off+recordSize > len(buf) {
			if _, err := r.w.Write(buf[:off]); err != nil {
				r.done <- err
				for range r.records {
				}
				return
			}
			off = 0
		}
		binary.LittleEndian.PutUint32(buf[off:], uint32(rec.Kind))
		binary.LittleEndian.PutUint32(buf[off+4:], rec.Frame)
		binary.LittleEndian.PutUint64(buf[off+8:], uint64(rec.Duration))
		off += recordSize
	}
	if off > 0 {
		if _, err := r.w.Write(buf[:off]); err != nil {
			r.done <- err
			return
		}
	}
	r.done <- nil
}

// SetFrame sets the frame index stamped on following records.
func (r *Recorder) SetFrame(i int) {
	if r != nil {
		r.frame = uint32(i)
	}
}

func (r *Recorder) Record(k Kind, d time.Duration) {
	if r == nil || !r.started || r.closed {
		return
	}
	r.records <- record{Kind: k, Frame: r.frame, Duration: d.Nanoseconds()}
}

// Since records the time elapsed from start and returns the current time,
// so consecutive phases can be chained.
func (r *Recorder) Since(k Kind, start time.Time) time.Time {
	now := time.Now()
	r.Record(k, now.Sub(start))
	return now
}

// Close flushes pending records.
func (r *Recorder) Close() error {
	if r == nil || !r.started {
		return nil
	}
	if r.closed {
		return ErrClosed
	}
	r.closed = true
	close(r.records)
	if err := <-r.done; err != nil {
		return fmt.Errorf("timeslice: write records: %w", err)
	}
	return nil
}

// Record is one decoded entry.
type Record struct {
	Kind     string
	Flags    Flags
	Frame    uint32
	Duration time.Duration
}

// ReadAll decodes a log, calling fn for every record in order.
func ReadAll(rd io.Reader, fn func(rec Record) error) error {
	buf := bufio.NewReaderSize(rd, align)

	var h header
	if err := binary.Read(buf, binary.LittleEndian, &h); err != nil {
		return fmt.Errorf("timeslice: read header: %w", err)
	}
	if h.Magic != Magic {
		return fmt.Errorf("timeslice: invalid magic %#x", h.Magic)
	}
	if h.Version != Version {
		return fmt.Errorf("timeslice: unsupported version %d", h.Version)
	}

	var kinds map[Kind]KindInfo
	if err := json.NewDecoder(io.LimitReader(buf, int64(h.KindsLength))).Decode(&kinds); err != nil {
		return fmt.Errorf("timeslice: decode kinds: %w", err)
	}
	if pad := padding(binary.Size(h) + int(h.KindsLength)); pad > 0 {
		if _, err := buf.Discard(pad); err != nil {
			return fmt.Errorf("timeslice: skip padding: %w", err)
		}
	}

	for {
		var rec record
		if err := binary.Read(buf, binary.LittleEndian, &rec); err != nil {
			if errors.Is(err, io.EOF) {
				return nil
			}
			return fmt.Errorf("timeslice: read record: %w", err)
		}
		info, ok := kinds[rec.Kind]
		if !ok {
			return fmt.Errorf("timeslice: unknown kind %d", rec.Kind)
		}
		if err := fn(Record{
			Kind:     info.Name,
			Flags:    info.Flags,
			Frame:    rec.Frame,
			Duration: time.Duration(rec.Duration),
		}); err != nil {
			return err
		}
	}
}

// Stat aggregates the records of one kind.
type Stat struct {
	Kind  string
	Flags Flags
	Count int
	Sum   time.Duration
	Min   time.Duration
	Max   time.Duration
}

func (s *Stat) add(d time.Duration) {
	s.Count++
	s.Sum += d
	if s.Count == 1 || d < s.Min {
		s.Min = d
	}
	if d > s.Max {
		s.Max = d
	}
}

func (s Stat) Avg() time.Duration {
	if s.Count == 0 {
		return 0
	}
	return s.Sum / time.Duration(s.Count)
}

// Summarize reads a log and returns one Stat per kind in first seen order.
func Summarize(rd io.Reader) ([]Stat, error) {
	var stats []*Stat
	byKind := map[string]*Stat{}
	if err := ReadAll(rd, func(rec Record) error {
		s, ok := byKind[rec.Kind]
		if !ok {
			s = &Stat{Kind: rec.Kind, Flags: rec.Flags}
			byKind[rec.Kind] = s
			stats = append(stats, s)
		}
		s.add(rec.Duration)
		return nil
	}); err != nil {
		return nil, err
	}

	out := make([]Stat, len(stats))
	for i, s := range stats {
		out[i] = *s
	}
	return out, nil
}
