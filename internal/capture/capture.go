package capture

import "errors"

// Angle is one of the six fixed physical orientations a parcel is
// photographed from.
type Angle string

const (
	AngleFront  Angle = "front"
	AngleBack   Angle = "back"
	AngleLeft   Angle = "left"
	AngleRight  Angle = "right"
	AngleTop    Angle = "top"
	AngleBottom Angle = "bottom"
)

// Angles is the capture order. Slot navigation indexes into this list.
var Angles = []Angle{AngleFront, AngleBack, AngleLeft, AngleRight, AngleTop, AngleBottom}

// MaxPerAngle caps files per slot during a multi-angle capture.
const MaxPerAngle = 2

var (
	ErrTooManyImages = errors.New("too many images for this slot")
	ErrBadIndex      = errors.New("index out of range")
)

// Upload is one incoming file selection.
type Upload struct {
	Filename string
	Data     []byte
}

// Slot holds one angle's selections. Files and Previews are parallel and
// index-aligned at all times; Remove drops both atomically.
type Slot struct {
	Files    []string
	Previews []string
}

// Add appends a selection. A selection that would push the slot past max is
// rejected wholesale, leaving the slot untouched.
func (s *Slot) Add(reg *Registry, uploads []Upload, max int) error {
	if len(s.Files)+len(uploads) > max {
		return ErrTooManyImages
	}
	for _, u := range uploads {
		id, err := reg.Put(u.Data)
		if err != nil {
			return err
		}
		s.Files = append(s.Files, u.Filename)
		s.Previews = append(s.Previews, id)
	}
	return nil
}

// Remove releases the preview at i and drops the file with it.
func (s *Slot) Remove(reg *Registry, i int) error {
	if i < 0 || i >= len(s.Files) {
		return ErrBadIndex
	}
	if err := reg.Release(s.Previews[i]); err != nil {
		return err
	}
	s.Files = append(s.Files[:i], s.Files[i+1:]...)
	s.Previews = append(s.Previews[:i], s.Previews[i+1:]...)
	return nil
}

func (s *Slot) Len() int { return len(s.Files) }

// Set is the full multi-angle capture: six slots and a cursor over them.
type Set struct {
	Current int
	Slots   map[Angle]*Slot
}

func NewSet() *Set {
	slots := make(map[Angle]*Slot, len(Angles))
	for _, a := range Angles {
		slots[a] = &Slot{}
	}
	return &Set{Slots: slots}
}

func (s *Set) ActiveAngle() Angle { return Angles[s.Current] }
func (s *Set) Active() *Slot      { return s.Slots[s.ActiveAngle()] }

// Select jumps to an arbitrary slot. Prior slots need not be filled.
func (s *Set) Select(i int) error {
	if i < 0 || i >= len(Angles) {
		return ErrBadIndex
	}
	s.Current = i
	return nil
}

// Next and Prev clamp at the ends; no wraparound.
func (s *Set) Next() {
	if s.Current < len(Angles)-1 {
		s.Current++
	}
}

func (s *Set) Prev() {
	if s.Current > 0 {
		s.Current--
	}
}

// Complete means the slot has at least one image. Never required globally.
func (s *Set) Complete(a Angle) bool { return s.Slots[a].Len() > 0 }

func (s *Set) TotalImages() int {
	n := 0
	for _, a := range Angles {
		n += s.Slots[a].Len()
	}
	return n
}

// Each visits every captured image in angle order, then selection order.
func (s *Set) Each(fn func(a Angle, filename, previewID string) bool) {
	for _, a := range Angles {
		slot := s.Slots[a]
		for i := range slot.Files {
			if !fn(a, slot.Files[i], slot.Previews[i]) {
				return
			}
		}
	}
}

// ReleaseAll tears the set down, releasing every remaining preview once.
func (s *Set) ReleaseAll(reg *Registry) {
	for _, a := range Angles {
		slot := s.Slots[a]
		for _, id := range slot.Previews {
			_ = reg.Release(id)
		}
		slot.Files = nil
		slot.Previews = nil
	}
}
