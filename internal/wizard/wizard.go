package wizard

import (
	"errors"
	"strings"
	"sync"

	"github.com/google/uuid"

	"packsight/internal/capture"
)

// Step is the wizard's position. The three steps are strictly ordered;
// transition methods refuse anything the UI could not have triggered, so an
// out-of-step submit is an error rather than a silent misfire.
type Step int

const (
	StepParcelInfo Step = iota
	StepImages
	StepProcessing
)

func (s Step) String() string {
	switch s {
	case StepParcelInfo:
		return "parcel-info"
	case StepImages:
		return "images"
	case StepProcessing:
		return "processing"
	}
	return "unknown"
}

var (
	ErrTrackingRequired = errors.New("tracking number required")
	ErrNoImages         = errors.New("at least one image required")
	ErrWrongStep        = errors.New("action not valid in this step")
)

// Draft is one in-flight inspection: the tracking number entered in step one
// and the capture set filled in step two. One draft per session, but one
// session can open several tabs, so every handler touching a draft must hold
// its lock for the whole request. Submit keeps the lock across the entire
// pipeline; a concurrent upload waits rather than mutating the set mid-run.
type Draft struct {
	mu sync.Mutex

	ID             string
	TrackingNumber string
	Set            *capture.Set
	Step           Step
}

func (d *Draft) Lock()   { d.mu.Lock() }
func (d *Draft) Unlock() { d.mu.Unlock() }

func NewDraft() *Draft {
	return &Draft{
		ID:  uuid.NewString(),
		Set: capture.NewSet(),
	}
}

// Start validates the tracking number and advances to image capture. An
// empty number keeps the draft in parcel-info.
func (d *Draft) Start(tracking string) error {
	if d.Step != StepParcelInfo {
		return ErrWrongStep
	}
	tracking = strings.TrimSpace(tracking)
	if tracking == "" {
		return ErrTrackingRequired
	}
	d.TrackingNumber = tracking
	d.Step = StepImages
	return nil
}

// Back returns to parcel-info without discarding the tracking number or any
// captured images.
func (d *Draft) Back() error {
	if d.Step != StepImages {
		return ErrWrongStep
	}
	d.Step = StepParcelInfo
	return nil
}
