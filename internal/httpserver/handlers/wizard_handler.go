package handlers

import (
	"errors"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"packsight/internal/capture"
	"packsight/internal/models"
	"packsight/internal/session"
	"packsight/internal/wizard"
)

var angleLabels = map[capture.Angle]string{
	capture.AngleFront:  "Front View",
	capture.AngleBack:   "Back View",
	capture.AngleLeft:   "Left View",
	capture.AngleRight:  "Right View",
	capture.AngleTop:    "Top View",
	capture.AngleBottom: "Bottom View",
}

type angleView struct {
	Index  int
	ID     capture.Angle
	Label  string
	Count  int
	Done   bool
	Active bool
}

type imageView struct {
	Index     int
	Filename  string
	PreviewID string
}

// draftFor returns the session's draft. Callers hold draft.Lock for the rest
// of the request; two tabs on the same session take turns.
func draftFor(d Deps, r *http.Request) *wizard.Draft {
	s, _ := session.FromContext(r.Context())
	return d.Wizards.Get(s.SID)
}

// wizardView builds the page data for a draft. The caller holds the lock.
func wizardView(draft *wizard.Draft, errMsg string) map[string]any {
	set := draft.Set
	angles := make([]angleView, len(capture.Angles))
	for i, a := range capture.Angles {
		angles[i] = angleView{
			Index:  i,
			ID:     a,
			Label:  angleLabels[a],
			Count:  set.Slots[a].Len(),
			Done:   set.Complete(a),
			Active: i == set.Current,
		}
	}
	active := set.Active()
	images := make([]imageView, active.Len())
	for i := range active.Files {
		images[i] = imageView{Index: i, Filename: active.Files[i], PreviewID: active.Previews[i]}
	}
	return map[string]any{
		"Title":       "New Inspection",
		"Step":        draft.Step.String(),
		"Tracking":    draft.TrackingNumber,
		"Angles":      angles,
		"Current":     set.Current,
		"CurrentNum":  set.Current + 1,
		"ActiveLabel": angleLabels[set.ActiveAngle()],
		"Images":      images,
		"SlotCount":   active.Len(),
		"MaxPerAngle": capture.MaxPerAngle,
		"Total":       set.TotalImages(),
		"Error":       errMsg,
	}
}

func NewInspection(d Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		draft := draftFor(d, r)
		draft.Lock()
		data := wizardView(draft, r.URL.Query().Get("error"))
		draft.Unlock()
		d.renderApp(w, r, "inspection_new.tmpl", data)
	}
}

// StartInspection validates the tracking number and moves to image capture.
func StartInspection(d Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := r.ParseForm(); err != nil {
			http.Error(w, "bad form", http.StatusBadRequest)
			return
		}
		draft := draftFor(d, r)
		draft.Lock()
		defer draft.Unlock()
		if err := draft.Start(r.FormValue("tracking_number")); err != nil {
			if errors.Is(err, wizard.ErrTrackingRequired) {
				d.renderApp(w, r, "inspection_new.tmpl", wizardView(draft, "Please enter tracking number"))
				return
			}
		}
		http.Redirect(w, r, "/inspections/new", http.StatusFound)
	}
}

func BackToParcelInfo(d Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		draft := draftFor(d, r)
		draft.Lock()
		_ = draft.Back()
		draft.Unlock()
		http.Redirect(w, r, "/inspections/new", http.StatusFound)
	}
}

// SelectAngle handles jump, next and prev from one form via the "move"
// field. Next/prev clamp at the edges; an out-of-range jump is ignored.
func SelectAngle(d Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := r.ParseForm(); err != nil {
			http.Error(w, "bad form", http.StatusBadRequest)
			return
		}
		draft := draftFor(d, r)
		draft.Lock()
		switch r.FormValue("move") {
		case "next":
			draft.Set.Next()
		case "prev":
			draft.Set.Prev()
		default:
			if i, err := strconv.Atoi(r.FormValue("index")); err == nil {
				_ = draft.Set.Select(i)
			}
		}
		draft.Unlock()
		http.Redirect(w, r, "/inspections/new", http.StatusFound)
	}
}

// UploadImages appends the selected files to the active angle's slot. A
// selection past the per-angle cap is rejected wholesale with an inline
// message, leaving the slot as it was.
func UploadImages(d Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := r.ParseMultipartForm(32 << 20); err != nil {
			http.Error(w, "bad upload", http.StatusBadRequest)
			return
		}
		draft := draftFor(d, r)
		draft.Lock()
		defer draft.Unlock()
		if draft.Step != wizard.StepImages {
			http.Redirect(w, r, "/inspections/new", http.StatusFound)
			return
		}

		var uploads []capture.Upload
		for _, fh := range r.MultipartForm.File["images"] {
			f, err := fh.Open()
			if err != nil {
				d.Log.Errorw("open uploaded file failed", "file", fh.Filename, "error", err)
				continue
			}
			b, err := io.ReadAll(f)
			f.Close()
			if err != nil {
				d.Log.Errorw("read uploaded file failed", "file", fh.Filename, "error", err)
				continue
			}
			uploads = append(uploads, capture.Upload{Filename: fh.Filename, Data: b})
		}

		slot := draft.Set.Active()
		if err := slot.Add(d.Previews, uploads, capture.MaxPerAngle); err != nil {
			if errors.Is(err, capture.ErrTooManyImages) {
				msg := fmt.Sprintf("Maximum %d images allowed", capture.MaxPerAngle)
				d.renderApp(w, r, "inspection_new.tmpl", wizardView(draft, msg))
				return
			}
			d.Log.Errorw("spool upload failed", "error", err)
			http.Error(w, "upload failed", http.StatusInternalServerError)
			return
		}
		http.Redirect(w, r, "/inspections/new", http.StatusFound)
	}
}

func RemoveImage(d Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := r.ParseForm(); err != nil {
			http.Error(w, "bad form", http.StatusBadRequest)
			return
		}
		draft := draftFor(d, r)
		draft.Lock()
		if i, err := strconv.Atoi(r.FormValue("index")); err == nil {
			if err := draft.Set.Active().Remove(d.Previews, i); err != nil {
				d.Log.Warnw("remove image failed", "index", i, "error", err)
			}
		}
		draft.Unlock()
		http.Redirect(w, r, "/inspections/new", http.StatusFound)
	}
}

// SubmitInspection runs the sequential detection pipeline, records the
// summary locally, tears the draft down and lands on the inspections list
// regardless of per-file outcomes.
func SubmitInspection(d Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		s, _ := session.FromContext(r.Context())
		draft := draftFor(d, r)

		// Drop locks the draft itself, so the lock is released by hand
		// before the teardown instead of deferred.
		draft.Lock()
		sum, err := draft.Submit(r.Context(), d.backendFor(r), d.Previews, d.Log)
		if err != nil {
			msg := "Failed to submit inspection"
			if errors.Is(err, wizard.ErrNoImages) {
				msg = "Please upload at least one image"
			} else {
				d.Log.Errorw("inspection submit failed", "error", err)
			}
			data := wizardView(draft, msg)
			draft.Unlock()
			d.renderApp(w, r, "inspection_new.tmpl", data)
			return
		}
		tracking := draft.TrackingNumber
		draft.Unlock()

		results, _ := models.MarshalJSONB(sum)
		rec := models.InspectionRecord{
			ID:             uuid.NewString(),
			TrackingNumber: tracking,
			SubmittedBy:    s.Username,
			Submitted:      sum.Submitted,
			Processed:      sum.Processed,
			Damaged:        sum.Damaged,
			Results:        results,
			CreatedAt:      time.Now(),
		}
		if err := d.Records.Create(r.Context(), rec); err != nil {
			d.Log.Errorw("record inspection failed", "error", err)
		}
		d.Wizards.Drop(s.SID, d.Previews)

		http.Redirect(w, r, fmt.Sprintf("/inspections?submitted=%d&processed=%d&damaged=%d",
			sum.Submitted, sum.Processed, sum.Damaged), http.StatusFound)
	}
}

// Preview streams a spooled capture back to the page.
func Preview(d Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := chi.URLParam(r, "previewID")
		b, err := d.Previews.Bytes(id)
		if err != nil {
			http.NotFound(w, r)
			return
		}
		w.Header().Set("Content-Type", http.DetectContentType(b))
		_, _ = w.Write(b)
	}
}
