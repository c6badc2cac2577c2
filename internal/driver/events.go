package driver

// Stage describes a high-level pipeline phase.
type Stage string

const (
	// StageParse is the parsing stage.
	StageParse Stage = "parse"
	// StageValidate is the schema validation stage.
	StageValidate Stage = "validate"
)

// Status captures progress state within a stage.
type Status string

const (
	// StatusQueued indicates the file is waiting to start.
	StatusQueued Status = "queued"
	// StatusWorking indicates the file is currently being processed.
	StatusWorking Status = "working"
	// StatusDone indicates the file is done.
	StatusDone Status = "done"
	// StatusError indicates the file failed.
	StatusError Status = "error"
)

// Event reports progress for a file (or for the whole batch when File is empty).
type Event struct {
	File   string
	Stage  Stage
	Status Status
	Err    error
}

// emit sends an event; a nil channel disables progress reporting.
func emit(progress chan<- Event, ev Event) {
	if progress == nil {
		return
	}
	progress <- ev
}

func emitQueued(progress chan<- Event, files []string) {
	for _, f := range files {
		emit(progress, Event{File: f, Stage: StageParse, Status: StatusQueued})
	}
}
