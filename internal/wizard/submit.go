package wizard

import (
	"bytes"
	"context"
	"io"

	"go.uber.org/zap"

	"packsight/internal/capture"
	"packsight/internal/models"
)

// Detector is the one backend call the submission loop needs; satisfied by
// *backend.Client.
type Detector interface {
	DetectDamage(ctx context.Context, filename string, r io.Reader) (models.DetectionResult, error)
}

type FileResult struct {
	Angle    capture.Angle          `json:"angle"`
	Filename string                 `json:"filename"`
	Result   models.DetectionResult `json:"result"`
}

// Summary is what the user sees after processing. Submitted counts every
// captured image; Processed only those the detector answered for. A failed
// upload is logged and otherwise indistinguishable from "never sent".
type Summary struct {
	Submitted int          `json:"submitted"`
	Processed int          `json:"processed"`
	Damaged   int          `json:"damaged"`
	Files     []FileResult `json:"files"`
}

// Submit runs the detection pipeline: every (angle, file) pair in angle
// order, one request at a time, never concurrently. A per-file failure is
// swallowed into the tally; only an out-of-step call or an empty set is an
// error. There is no timeout or cancellation beyond ctx itself.
func (d *Draft) Submit(ctx context.Context, det Detector, reg *capture.Registry, lg *zap.SugaredLogger) (Summary, error) {
	if d.Step != StepImages {
		return Summary{}, ErrWrongStep
	}
	total := d.Set.TotalImages()
	if total == 0 {
		return Summary{}, ErrNoImages
	}
	d.Step = StepProcessing

	sum := Summary{Submitted: total}
	d.Set.Each(func(a capture.Angle, filename, previewID string) bool {
		data, err := reg.Bytes(previewID)
		if err != nil {
			lg.Errorw("read captured image failed", "angle", a, "file", filename, "error", err)
			return true
		}
		res, err := det.DetectDamage(ctx, filename, bytes.NewReader(data))
		if err != nil {
			lg.Errorw("detect damage failed", "angle", a, "file", filename, "error", err)
			return true
		}
		sum.Processed++
		if res.HasDamage {
			sum.Damaged++
		}
		sum.Files = append(sum.Files, FileResult{Angle: a, Filename: filename, Result: res})
		return true
	})
	return sum, nil
}
