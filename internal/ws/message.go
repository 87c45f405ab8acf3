package ws

import (
	"encoding/json"
	"fmt"

	"github.com/vladimirvolkov/tactics/internal/annotation"
	"github.com/vladimirvolkov/tactics/internal/board"
	"github.com/vladimirvolkov/tactics/internal/formation"
	"github.com/vladimirvolkov/tactics/internal/pitch"
)

// Client -> Server message types
const (
	MsgViewport         uint8 = 0x01
	MsgSetTool          uint8 = 0x02
	MsgPointerDown      uint8 = 0x03
	MsgPing             uint8 = 0x04
	MsgPointerMove      uint8 = 0x05
	MsgPointerUp        uint8 = 0x06
	MsgPlayMotion       uint8 = 0x07
	MsgPlayBallMotion   uint8 = 0x08
	MsgSetFormation     uint8 = 0x09
	MsgResetBoard       uint8 = 0x0A
	MsgGiveBall         uint8 = 0x0B
	MsgPass             uint8 = 0x0C
	MsgUndo             uint8 = 0x0D
	MsgClearDrawings    uint8 = 0x0E
	MsgRemoveAnnotation uint8 = 0x0F
	MsgCommitNote       uint8 = 0x10
	MsgRemoveNote       uint8 = 0x11
	MsgStyle            uint8 = 0x12
	MsgToggleMarkerLock uint8 = 0x13
	MsgSetSpeed         uint8 = 0x14
	MsgSwitchBoard      uint8 = 0x15
	MsgPlayerNumber     uint8 = 0x16
	MsgPlayerName       uint8 = 0x17
	MsgSelectClub       uint8 = 0x18
	MsgTeamColor        uint8 = 0x19
	MsgSelectGroup      uint8 = 0x1A
	MsgSaveTactic       uint8 = 0x1B
	MsgLoadTactic       uint8 = 0x1C
)

// Server -> Client message types
const (
	MsgState   uint8 = 0x81
	MsgWelcome uint8 = 0x82
	MsgSaved   uint8 = 0x85
	MsgPong    uint8 = 0x86
	MsgError   uint8 = 0x88
)

var typeNames = map[uint8]string{
	MsgViewport:         "viewport",
	MsgSetTool:          "setTool",
	MsgPointerDown:      "pointerDown",
	MsgPing:             "ping",
	MsgPointerMove:      "pointerMove",
	MsgPointerUp:        "pointerUp",
	MsgPlayMotion:       "playMotion",
	MsgPlayBallMotion:   "playBallMotion",
	MsgSetFormation:     "setFormation",
	MsgResetBoard:       "resetBoard",
	MsgGiveBall:         "giveBall",
	MsgPass:             "pass",
	MsgUndo:             "undo",
	MsgClearDrawings:    "clearDrawings",
	MsgRemoveAnnotation: "removeAnnotation",
	MsgCommitNote:       "commitNote",
	MsgRemoveNote:       "removeNote",
	MsgStyle:            "style",
	MsgToggleMarkerLock: "toggleMarkerLock",
	MsgSetSpeed:         "setSpeed",
	MsgSwitchBoard:      "switchBoard",
	MsgPlayerNumber:     "playerNumber",
	MsgPlayerName:       "playerName",
	MsgSelectClub:       "selectClub",
	MsgTeamColor:        "teamColor",
	MsgSelectGroup:      "selectGroup",
	MsgSaveTactic:       "saveTactic",
	MsgLoadTactic:       "loadTactic",
	MsgState:            "state",
	MsgWelcome:          "welcome",
	MsgSaved:            "saved",
	MsgPong:             "pong",
	MsgError:            "error",
}

// TypeName names a message type for logs.
func TypeName(typ uint8) string {
	if name, ok := typeNames[typ]; ok {
		return name
	}
	return fmt.Sprintf("unknown(%#x)", typ)
}

// Message is the envelope of every frame on the socket. Seq echoes the
// client's sequence number on replies and carries the state version on
// state messages.
type Message struct {
	Type    uint8           `json:"type"`
	Seq     uint64          `json:"seq"`
	Payload json.RawMessage `json:"payload,omitempty"`
}

type ViewportPayload struct {
	Bounds      pitch.Rect `json:"bounds"`
	Orientation string     `json:"orientation"`
}

type ToolPayload struct {
	Tool board.Tool `json:"tool"`
}

type FormationPayload struct {
	Team      formation.Team `json:"team"`
	Formation formation.Name `json:"formation"`
}

// PlayerPayload names a player: who gets the ball, or who a pass goes to.
type PlayerPayload struct {
	PlayerID string `json:"playerId"`
}

type IDPayload struct {
	ID string `json:"id"`
}

type NotePayload struct {
	Text string `json:"text"`
}

// StylePayload changes the drawing style. Absent fields are left alone.
type StylePayload struct {
	Color *string           `json:"color,omitempty"`
	Shape *annotation.Shape `json:"shapeType,omitempty"`
	Size  *float64          `json:"shapeSize,omitempty"`
}

type SpeedPayload struct {
	Speed formation.Speed `json:"speed"`
}

type BoardPayload struct {
	Board int `json:"board"`
}

type PlayerNumberPayload struct {
	PlayerID string `json:"playerId"`
	Number   string `json:"number"`
}

type PlayerNamePayload struct {
	PlayerID string `json:"playerId"`
	Name     string `json:"name"`
}

type ClubPayload struct {
	Team formation.Team `json:"team"`
	Club string         `json:"club"`
}

type TeamColorPayload struct {
	Team  formation.Team `json:"team"`
	Color string         `json:"color"`
}

type GroupPayload struct {
	Group board.Group `json:"group"`
}

type SaveTacticPayload struct {
	Name string `json:"name"`
}

type PingPayload struct {
	ClientTime uint64 `json:"clientTime"`
}

type PongPayload struct {
	ClientTime uint64 `json:"clientTime"`
	ServerTime uint64 `json:"serverTime"`
}

type WelcomePayload struct {
	ConnID string `json:"connId"`
	Coach  string `json:"coach"`
}

type SavedPayload struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

type ErrorPayload struct {
	Request uint8  `json:"request"`
	Message string `json:"message"`
}

func Encode(msg Message) ([]byte, error) {
	return json.Marshal(msg)
}

func Decode(data []byte) (Message, error) {
	var msg Message
	err := json.Unmarshal(data, &msg)
	return msg, err
}

func NewMessage(typ uint8, seq uint64, payload any) (Message, error) {
	data, err := json.Marshal(payload)
	if err != nil {
		return Message{}, err
	}
	return Message{
		Type:    typ,
		Seq:     seq,
		Payload: json.RawMessage(data),
	}, nil
}
