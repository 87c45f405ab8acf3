package board

import (
	"errors"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/vladimirvolkov/tactics/internal/annotation"
	"github.com/vladimirvolkov/tactics/internal/formation"
	"github.com/vladimirvolkov/tactics/internal/frame"
	"github.com/vladimirvolkov/tactics/internal/pitch"
)

var ErrUnknownBoard = errors.New("unknown board")

const (
	DefaultColor     = "#FFFFFF"
	DefaultShapeSize = 3.5
)

// Boards are the two boards every session starts with. Board 2 carries the
// ball and answers home formation changes automatically.
var Boards = [2]Config{
	{
		Number: 1,
		Home:   Side{Color: "#DA291C", Formation: "4-4-2"},
		Away:   Side{Color: "#034694", Formation: "4-3-3"},
	},
	{
		Number:      2,
		Home:        Side{Color: "#6CABDD", Formation: "4-3-3"},
		Away:        Side{Color: "#FFFFFF", Formation: "4-2-3-1"},
		WithBall:    true,
		AutoCounter: true,
	},
}

// Session is one coach's workspace: two boards, the active one and the
// authoring tool settings shared between them.
type Session struct {
	host   frame.Host
	log    zerolog.Logger
	boards [2]*Board
	active int

	tool           Tool
	color          string
	shape          annotation.Shape
	shapeSize      float64
	mapper         pitch.Mapper
	selectedMarker string
	pendingNote    *pitch.Position
	gesture        gesture

	version uint64
}

func NewSession(host frame.Host, log zerolog.Logger) (*Session, error) {
	s := &Session{
		host:      host,
		log:       log,
		active:    1,
		tool:      ToolMove,
		color:     DefaultColor,
		shape:     annotation.ShapeCross,
		shapeSize: DefaultShapeSize,
	}
	for i, cfg := range Boards {
		b, err := New(host, cfg, log)
		if err != nil {
			return nil, err
		}
		s.boards[i] = b
	}
	return s, nil
}

func (s *Session) touch() { s.version++ }

// Version changes whenever anything visible in View changes.
func (s *Session) Version() uint64 {
	return s.version + s.boards[0].Version() + s.boards[1].Version()
}

func (s *Session) Board(n int) (*Board, error) {
	if n < 1 || n > len(s.boards) {
		return nil, fmt.Errorf("%w: %d", ErrUnknownBoard, n)
	}
	return s.boards[n-1], nil
}

// Active returns the board pointer input applies to.
func (s *Session) Active() *Board { return s.boards[s.active-1] }

func (s *Session) ActiveNumber() int { return s.active }

// SwitchBoard makes n the active board. Every run on the board being left
// is cancelled and any half-finished gesture is dropped.
func (s *Session) SwitchBoard(n int) error {
	next, err := s.Board(n)
	if err != nil {
		return err
	}
	if n == s.active {
		return nil
	}
	s.Active().CancelRuns()
	s.gesture = gesture{}
	s.selectedMarker = ""
	s.active = next.Number()
	s.log.Debug().Int("board", n).Msg("board switched")
	s.touch()
	return nil
}

// SetViewport records where the pitch is drawn so pointer positions can be
// mapped onto it.
func (s *Session) SetViewport(bounds pitch.Rect, o pitch.Orientation) {
	s.mapper = pitch.Mapper{Bounds: bounds, Orientation: o}
	s.touch()
}

// SetColor changes the drawing colour and recolours the selected marker.
func (s *Session) SetColor(color string) {
	s.color = color
	if s.selectedMarker != "" {
		s.Active().RecolorMarker(s.selectedMarker, color)
	}
	s.touch()
}

// SetShapeSize changes the marker size and resizes the selected marker.
func (s *Session) SetShapeSize(size float64) {
	if size <= 0 {
		return
	}
	s.shapeSize = size
	if s.selectedMarker != "" {
		s.Active().ResizeMarker(s.selectedMarker, size)
	}
	s.touch()
}

func (s *Session) SetShape(shape annotation.Shape) {
	s.shape = shape
	s.touch()
}

// ToggleMarkerLock flips the lock of the selected marker.
func (s *Session) ToggleMarkerLock() bool {
	if s.selectedMarker == "" {
		return false
	}
	return s.Active().ToggleMarkerLock(s.selectedMarker)
}

func (s *Session) selectMarker(id string) {
	s.selectedMarker = id
	if m, ok := s.Active().Marker(id); ok {
		s.shapeSize = m.Size
		s.color = m.Stroke
	}
	s.touch()
}

// RemoveAnnotation erases a drawing from the active board.
func (s *Session) RemoveAnnotation(id string) bool {
	if id == s.selectedMarker {
		s.selectedMarker = ""
	}
	return s.Active().RemoveAnnotation(id)
}

// ClearAnnotations wipes the active board's drawings.
func (s *Session) ClearAnnotations() {
	s.selectedMarker = ""
	s.Active().ClearAnnotations()
	s.touch()
}

// Undo removes the active board's last drawing.
func (s *Session) Undo() bool {
	a, ok := s.Active().Undo()
	if ok && a.ID() == s.selectedMarker {
		s.selectedMarker = ""
		s.touch()
	}
	return ok
}

// Reset resets the active board.
func (s *Session) Reset() {
	s.selectedMarker = ""
	s.gesture = gesture{}
	s.Active().Reset()
	s.touch()
}

// CommitNote saves the note whose spot was picked with the note tool.
// Blank text discards it. Either way the move tool is restored.
func (s *Session) CommitNote(text string) (annotation.Note, bool) {
	at := pitch.Position{X: 50, Y: 50}
	if s.pendingNote != nil {
		at = *s.pendingNote
	}
	s.pendingNote = nil
	n, ok := s.Active().AddNote(text, at, s.color)
	s.SetTool(ToolMove)
	return n, ok
}

// SetFormation changes a side's formation on the active board.
func (s *Session) SetFormation(team formation.Team, name formation.Name) error {
	return s.Active().SetFormation(team, name)
}

// Tactic snapshots the active board.
func (s *Session) Tactic(name string) Tactic {
	return s.Active().Tactic(name)
}

// Install loads t onto the active board.
func (s *Session) Install(t Tactic) {
	s.selectedMarker = ""
	s.gesture = gesture{}
	s.Active().Install(t)
	s.touch()
}
