package checker

// Stage identifies where in the pipeline a file currently is.
type Stage uint8

const (
	StageParse Stage = iota + 1
	StageCompare
)

// Status is the progress state of a file within a stage.
type Status uint8

const (
	StatusQueued Status = iota + 1
	StatusWorking
	StatusDone
	StatusError
)

// Event is a progress notification for one file. Events are emitted in
// arbitrary order across files but in order within a file.
type Event struct {
	File   string
	Stage  Stage
	Status Status
	Err    error
}

func emit(ch chan<- Event, file string, stage Stage, status Status, err error) {
	if ch == nil {
		return
	}
	ch <- Event{File: file, Stage: stage, Status: status, Err: err}
}
