package board

import (
	"strings"

	"github.com/vladimirvolkov/tactics/internal/annotation"
	"github.com/vladimirvolkov/tactics/internal/pitch"
)

// AddAnnotation appends a finished drawing.
func (b *Board) AddAnnotation(a annotation.Annotation) {
	b.annotations.Append(a)
	b.touch()
}

// Undo removes the most recent drawing.
func (b *Board) Undo() (annotation.Annotation, bool) {
	a, ok := b.annotations.RemoveLast()
	if ok {
		b.touch()
	}
	return a, ok
}

func (b *Board) RemoveAnnotation(id string) bool {
	if !b.annotations.RemoveByID(id) {
		return false
	}
	b.touch()
	return true
}

func (b *Board) ClearAnnotations() {
	b.annotations.Clear()
	b.touch()
}

// AddNote pins text to the board. Blank text is ignored.
func (b *Board) AddNote(text string, at pitch.Position, color string) (annotation.Note, bool) {
	text = strings.TrimSpace(text)
	if text == "" {
		return annotation.Note{}, false
	}
	n := annotation.Note{ID: b.newID(), Text: text, Position: at, Color: color}
	b.notes = append(b.notes, n)
	b.touch()
	return n, true
}

func (b *Board) RemoveNote(id string) bool {
	for i, n := range b.notes {
		if n.ID == id {
			b.notes = append(b.notes[:i:i], b.notes[i+1:]...)
			b.touch()
			return true
		}
	}
	return false
}

func (b *Board) MoveNote(id string, at pitch.Position) bool {
	for i := range b.notes {
		if b.notes[i].ID == id {
			b.notes[i].Position = at
			b.touch()
			return true
		}
	}
	return false
}

// PlaceMarker drops a new unlocked marker and returns its id.
func (b *Board) PlaceMarker(shape annotation.Shape, at pitch.Position, size float64, color string) string {
	m := annotation.Marker{
		Base:     annotation.Base{AnnotationID: b.newID(), Stroke: color},
		Shape:    shape,
		Position: at,
		Size:     size,
	}
	b.AddAnnotation(m)
	return m.ID()
}

// Marker returns the marker with id.
func (b *Board) Marker(id string) (annotation.Marker, bool) {
	a, ok := b.annotations.Get(id)
	if !ok {
		return annotation.Marker{}, false
	}
	m, ok := a.(annotation.Marker)
	return m, ok
}

func (b *Board) updateMarker(id string, fn func(*annotation.Marker)) bool {
	n := b.annotations.ReplaceWhere(
		func(a annotation.Annotation) bool { return a.ID() == id && a.Kind() == annotation.KindMarker },
		func(a annotation.Annotation) annotation.Annotation {
			m := a.(annotation.Marker)
			fn(&m)
			return m
		},
	)
	if n == 0 {
		return false
	}
	b.touch()
	return true
}

func (b *Board) ResizeMarker(id string, size float64) bool {
	return b.updateMarker(id, func(m *annotation.Marker) { m.Size = size })
}

func (b *Board) RecolorMarker(id, color string) bool {
	return b.updateMarker(id, func(m *annotation.Marker) { m.Stroke = color })
}

func (b *Board) ToggleMarkerLock(id string) bool {
	return b.updateMarker(id, func(m *annotation.Marker) { m.Locked = !m.Locked })
}

// MoveMarker drags a marker. Locked markers stay put.
func (b *Board) MoveMarker(id string, at pitch.Position) bool {
	m, ok := b.Marker(id)
	if !ok || m.Locked {
		return false
	}
	return b.updateMarker(id, func(m *annotation.Marker) { m.Position = at })
}
