package board

import (
	"github.com/vladimirvolkov/tactics/internal/annotation"
	"github.com/vladimirvolkov/tactics/internal/formation"
	"github.com/vladimirvolkov/tactics/internal/pitch"
)

// BoardView is a board as the client draws it.
type BoardView struct {
	Number      int               `json:"number"`
	Players     []Player          `json:"players"`
	Ball        *Ball             `json:"ball,omitempty"`
	Possessor   string            `json:"possessor,omitempty"`
	Selected    []string          `json:"selected"`
	Annotations annotation.List   `json:"drawings"`
	Notes       []annotation.Note `json:"notes"`
	Home        Side              `json:"home"`
	Away        Side              `json:"away"`
	Speed       formation.Speed   `json:"speed"`
	Passes      []PassAction      `json:"passSequence,omitempty"`
	Animating   bool              `json:"animating"`
	Adapting    bool              `json:"adapting"`
}

func (b *Board) View() BoardView {
	v := BoardView{
		Number:      b.number,
		Players:     b.Players(),
		Possessor:   b.possessor,
		Selected:    b.Selected(),
		Annotations: b.annotations.All(),
		Notes:       b.Notes(),
		Home:        b.Side(formation.Home),
		Away:        b.Side(formation.Away),
		Speed:       b.speed,
		Passes:      b.Passes(),
		Animating:   b.Animating(),
		Adapting:    b.adapting,
	}
	if ball, ok := b.Ball(); ok {
		v.Ball = &ball
	}
	return v
}

// View is the whole session as sent to the client.
type View struct {
	Active         int               `json:"activeBoard"`
	Tool           Tool              `json:"tool"`
	Color          string            `json:"color"`
	Shape          annotation.Shape  `json:"shapeType"`
	ShapeSize      float64           `json:"shapeSize"`
	Orientation    string            `json:"orientation"`
	SelectedMarker string            `json:"selectedShapeId,omitempty"`
	PendingNote    *pitch.Position   `json:"pendingNote,omitempty"`
	Preview        *Preview          `json:"preview,omitempty"`
	Insight        formation.Insight `json:"insight"`
	Boards         []BoardView       `json:"boards"`
}

func (s *Session) View() View {
	v := View{
		Active:         s.active,
		Tool:           s.tool,
		Color:          s.color,
		Shape:          s.shape,
		ShapeSize:      s.shapeSize,
		Orientation:    s.mapper.Orientation.String(),
		SelectedMarker: s.selectedMarker,
		Preview:        s.preview(),
		Insight:        formation.InsightFor(s.Active().sides[formation.Home].Formation),
	}
	if s.pendingNote != nil {
		at := *s.pendingNote
		v.PendingNote = &at
	}
	for _, b := range s.boards {
		v.Boards = append(v.Boards, b.View())
	}
	return v
}
