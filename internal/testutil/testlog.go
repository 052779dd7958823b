package testlog

import (
	"sync"

	"truckhub/internal/logx"
)

// Level identifies the severity a message was logged at.
type Level string

const (
	LevelDebug Level = "debug"
	LevelInfo  Level = "info"
	LevelWarn  Level = "warn"
	LevelError Level = "error"
)

// Entry is one captured log call.
type Entry struct {
	Level  Level
	Msg    string
	Fields []logx.Field
}

// Recorder captures log entries so tests can assert on them.
type Recorder struct {
	mu      sync.Mutex
	entries []Entry
}

func New() *Recorder { return &Recorder{} }

// Logger returns a logx.Logger that writes into the recorder.
func (r *Recorder) Logger() logx.Logger {
	return recorded{sink: r}
}

// Entries returns a snapshot of everything logged so far.
func (r *Recorder) Entries() []Entry {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]Entry(nil), r.entries...)
}

// AtLevel returns the subset of entries logged at lvl.
func (r *Recorder) AtLevel(lvl Level) []Entry {
	var out []Entry
	for _, e := range r.Entries() {
		if e.Level == lvl {
			out = append(out, e)
		}
	}
	return out
}

func (r *Recorder) record(lvl Level, msg string, fields []logx.Field) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.entries = append(r.entries, Entry{
		Level:  lvl,
		Msg:    msg,
		Fields: append([]logx.Field(nil), fields...),
	})
}

type recorded struct {
	sink *Recorder
	with []logx.Field
}

func (l recorded) Debug(msg string, f ...logx.Field) { l.emit(LevelDebug, msg, f) }
func (l recorded) Info(msg string, f ...logx.Field)  { l.emit(LevelInfo, msg, f) }
func (l recorded) Warn(msg string, f ...logx.Field)  { l.emit(LevelWarn, msg, f) }
func (l recorded) Error(msg string, f ...logx.Field) { l.emit(LevelError, msg, f) }

func (l recorded) emit(lvl Level, msg string, f []logx.Field) {
	all := append(append([]logx.Field(nil), l.with...), f...)
	l.sink.record(lvl, msg, all)
}

func (l recorded) With(f ...logx.Field) logx.Logger {
	return recorded{sink: l.sink, with: append(append([]logx.Field(nil), l.with...), f...)}
}

func (l recorded) Sync() error { return nil }

var _ logx.Logger = recorded{}
