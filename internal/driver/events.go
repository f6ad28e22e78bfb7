package driver

// Stage is the coarse progress state of one file in a directory lint.
type Stage uint8

const (
	StageQueued Stage = iota
	StageLexing
	StageChecking
	StageDone
)

func (s Stage) String() string {
	switch s {
	case StageQueued:
		return "queued"
	case StageLexing:
		return "lexing"
	case StageChecking:
		return "checking"
	case StageDone:
		return "done"
	}
	return "stage(?)"
}

// Event is one progress update emitted during a directory lint.
type Event struct {
	Path     string
	Stage    Stage
	Index    int // position within the file list
	Total    int
	Findings int  // valid at StageDone
	Cached   bool // finding replayed from the disk cache
	Err      bool // file failed to load
}

// EventSink receives progress events. Implementations must be safe for
// concurrent use; the driver calls Publish from worker goroutines.
type EventSink interface {
	Publish(Event)
}

// ChanSink forwards events into a channel, dropping them when the receiver
// lags. The UI drains the channel; linting never blocks on drawing.
type ChanSink struct {
	C chan Event
}

// NewChanSink returns a sink with the given buffer size.
func NewChanSink(buf int) *ChanSink {
	return &ChanSink{C: make(chan Event, buf)}
}

func (s *ChanSink) Publish(e Event) {
	if s == nil {
		return
	}
	select {
	case s.C <- e:
	default:
	}
}

// Close closes the event channel once linting is finished.
func (s *ChanSink) Close() {
	if s != nil {
		close(s.C)
	}
}

func publish(sink EventSink, e Event) {
	if sink != nil {
		sink.Publish(e)
	}
}
