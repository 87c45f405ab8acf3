// Package room runs one coach's session: it owns the frame loop the
// boards animate on, applies the coach's messages to the session and
// streams the session back whenever it changes.
package room

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/vladimirvolkov/tactics/internal/board"
	"github.com/vladimirvolkov/tactics/internal/frame"
	"github.com/vladimirvolkov/tactics/internal/logging"
	"github.com/vladimirvolkov/tactics/internal/pitch"
	"github.com/vladimirvolkov/tactics/internal/ws"
)

var (
	ErrUnknownMessage = errors.New("unknown message type")
	ErrNoLibrary      = errors.New("tactic library unavailable")
)

// libraryTimeout bounds a single save or load.
const libraryTimeout = 10 * time.Second

// Peer is the coach's end of the connection.
type Peer interface {
	Send(msg ws.Message)
	ReadLoop(ctx context.Context) <-chan ws.Message
	Close()
	Done() <-chan struct{}
}

// Tactics is the part of the tactic library a room uses.
type Tactics interface {
	Save(ctx context.Context, author string, t board.Tactic) (board.Tactic, error)
	Get(ctx context.Context, id string) (board.Tactic, error)
}

type Options struct {
	ID        string
	Coach     string
	FrameRate int
	Tactics   Tactics
	Log       zerolog.Logger
}

type Room struct {
	id       string
	coach    string
	peer     Peer
	loop     *frame.Loop
	session  *board.Session
	tactics  Tactics
	log      zerolog.Logger
	stateLog zerolog.Logger

	// sent is the session version last streamed. Loop goroutine only.
	sent uint64

	ctx    context.Context
	cancel context.CancelFunc
}

func New(peer Peer, opts Options) (*Room, error) {
	log := opts.Log.With().Str("room", opts.ID).Logger()
	loop := frame.NewLoop(opts.FrameRate, log)
	session, err := board.NewSession(loop, log)
	if err != nil {
		return nil, fmt.Errorf("new session: %w", err)
	}
	return &Room{
		id:       opts.ID,
		coach:    opts.Coach,
		peer:     peer,
		loop:     loop,
		session:  session,
		tactics:  opts.Tactics,
		log:      log,
		stateLog: logging.Sampled(log),
	}, nil
}

func (r *Room) Start(ctx context.Context) {
	r.ctx, r.cancel = context.WithCancel(ctx)

	welcome, _ := ws.NewMessage(ws.MsgWelcome, 0, ws.WelcomePayload{ConnID: r.id, Coach: r.coach})
	r.peer.Send(welcome)
	r.sendState()

	r.loop.OnFrame(func(time.Duration) {
		if r.session.Version() != r.sent {
			r.sendState()
		}
	})

	go r.loop.Run(r.ctx)
	go r.readLoop()
	go func() {
		<-r.loop.Done()
		r.peer.Close()
		r.log.Info().Msg("room closed")
	}()
	r.log.Info().Str("coach", r.coach).Msg("room started")
}

// Done returns a channel that closes when the room's frame loop exits.
func (r *Room) Done() <-chan struct{} {
	return r.loop.Done()
}

// Stop ends the room and closes the connection.
func (r *Room) Stop() {
	r.cancel()
}

func (r *Room) readLoop() {
	defer r.cancel()
	for msg := range r.peer.ReadLoop(r.ctx) {
		if !r.loop.Post(func() { r.handleMessage(msg) }) {
			return
		}
	}
	r.log.Debug().Msg("coach disconnected")
}

func (r *Room) sendState() {
	r.sent = r.session.Version()
	msg, err := ws.NewMessage(ws.MsgState, r.sent, r.session.View())
	if err != nil {
		r.log.Error().Err(err).Msg("encode state")
		return
	}
	r.stateLog.Debug().Uint64("version", r.sent).Msg("state sent")
	r.peer.Send(msg)
}

func (r *Room) sendError(req ws.Message, err error) {
	r.log.Debug().Err(err).Str("type", ws.TypeName(req.Type)).Uint64("seq", req.Seq).Msg("request failed")
	msg, _ := ws.NewMessage(ws.MsgError, req.Seq, ws.ErrorPayload{Request: req.Type, Message: err.Error()})
	r.peer.Send(msg)
}

func (r *Room) handleMessage(msg ws.Message) {
	if err := r.apply(msg); err != nil {
		r.sendError(msg, err)
	}
}

func decode[T any](msg ws.Message) (T, error) {
	var p T
	if err := json.Unmarshal(msg.Payload, &p); err != nil {
		return p, fmt.Errorf("bad payload: %w", err)
	}
	return p, nil
}

// apply runs msg against the session. It is only called on the loop
// goroutine.
func (r *Room) apply(msg ws.Message) error {
	s := r.session
	switch msg.Type {
	case ws.MsgPing:
		p, err := decode[ws.PingPayload](msg)
		if err != nil {
			return err
		}
		pong, _ := ws.NewMessage(ws.MsgPong, msg.Seq, ws.PongPayload{
			ClientTime: p.ClientTime,
			ServerTime: uint64(time.Now().UnixMilli()),
		})
		r.peer.Send(pong)

	case ws.MsgViewport:
		p, err := decode[ws.ViewportPayload](msg)
		if err != nil {
			return err
		}
		s.SetViewport(p.Bounds, pitch.ParseOrientation(p.Orientation))

	case ws.MsgSetTool:
		p, err := decode[ws.ToolPayload](msg)
		if err != nil {
			return err
		}
		s.SetTool(p.Tool)

	case ws.MsgPointerDown, ws.MsgPointerMove, ws.MsgPointerUp:
		ev, err := decode[board.Pointer](msg)
		if err != nil {
			return err
		}
		switch msg.Type {
		case ws.MsgPointerDown:
			s.PointerDown(ev)
		case ws.MsgPointerMove:
			s.PointerMove(ev)
		default:
			s.PointerUp(ev)
		}

	case ws.MsgPlayMotion:
		s.Active().PlayMotion()

	case ws.MsgPlayBallMotion:
		s.Active().PlayBallMotion()

	case ws.MsgSetFormation:
		p, err := decode[ws.FormationPayload](msg)
		if err != nil {
			return err
		}
		return s.SetFormation(p.Team, p.Formation)

	case ws.MsgResetBoard:
		s.Reset()

	case ws.MsgGiveBall:
		p, err := decode[ws.PlayerPayload](msg)
		if err != nil {
			return err
		}
		return s.Active().GiveBall(p.PlayerID)

	case ws.MsgPass:
		p, err := decode[ws.PlayerPayload](msg)
		if err != nil {
			return err
		}
		return s.Active().Pass(p.PlayerID)

	case ws.MsgUndo:
		s.Undo()

	case ws.MsgClearDrawings:
		s.ClearAnnotations()

	case ws.MsgRemoveAnnotation:
		p, err := decode[ws.IDPayload](msg)
		if err != nil {
			return err
		}
		s.RemoveAnnotation(p.ID)

	case ws.MsgCommitNote:
		p, err := decode[ws.NotePayload](msg)
		if err != nil {
			return err
		}
		s.CommitNote(p.Text)

	case ws.MsgRemoveNote:
		p, err := decode[ws.IDPayload](msg)
		if err != nil {
			return err
		}
		s.Active().RemoveNote(p.ID)

	case ws.MsgStyle:
		p, err := decode[ws.StylePayload](msg)
		if err != nil {
			return err
		}
		if p.Color != nil {
			s.SetColor(*p.Color)
		}
		if p.Shape != nil {
			s.SetShape(*p.Shape)
		}
		if p.Size != nil {
			s.SetShapeSize(*p.Size)
		}

	case ws.MsgToggleMarkerLock:
		s.ToggleMarkerLock()

	case ws.MsgSetSpeed:
		p, err := decode[ws.SpeedPayload](msg)
		if err != nil {
			return err
		}
		return s.Active().SetSpeed(p.Speed)

	case ws.MsgSwitchBoard:
		p, err := decode[ws.BoardPayload](msg)
		if err != nil {
			return err
		}
		return s.SwitchBoard(p.Board)

	case ws.MsgPlayerNumber:
		p, err := decode[ws.PlayerNumberPayload](msg)
		if err != nil {
			return err
		}
		s.Active().SetPlayerNumber(p.PlayerID, p.Number)

	case ws.MsgPlayerName:
		p, err := decode[ws.PlayerNamePayload](msg)
		if err != nil {
			return err
		}
		return s.Active().SetPlayerName(p.PlayerID, p.Name)

	case ws.MsgSelectClub:
		p, err := decode[ws.ClubPayload](msg)
		if err != nil {
			return err
		}
		return s.Active().SelectClub(p.Team, p.Club)

	case ws.MsgTeamColor:
		p, err := decode[ws.TeamColorPayload](msg)
		if err != nil {
			return err
		}
		return s.Active().SetColor(p.Team, p.Color)

	case ws.MsgSelectGroup:
		p, err := decode[ws.GroupPayload](msg)
		if err != nil {
			return err
		}
		s.Active().SelectGroup(p.Group)

	case ws.MsgSaveTactic:
		p, err := decode[ws.SaveTacticPayload](msg)
		if err != nil {
			return err
		}
		if r.tactics == nil {
			return ErrNoLibrary
		}
		go r.save(msg, s.Tactic(p.Name))

	case ws.MsgLoadTactic:
		p, err := decode[ws.IDPayload](msg)
		if err != nil {
			return err
		}
		if r.tactics == nil {
			return ErrNoLibrary
		}
		go r.load(msg, p.ID)

	default:
		return fmt.Errorf("%w: %#x", ErrUnknownMessage, msg.Type)
	}
	return nil
}

// save stores t off the loop and reports back to the coach.
func (r *Room) save(req ws.Message, t board.Tactic) {
	ctx, cancel := context.WithTimeout(r.ctx, libraryTimeout)
	defer cancel()
	saved, err := r.tactics.Save(ctx, r.coach, t)
	if err != nil {
		r.sendError(req, err)
		return
	}
	r.log.Info().Str("tactic", saved.ID).Str("name", saved.Name).Msg("tactic saved")
	reply, _ := ws.NewMessage(ws.MsgSaved, req.Seq, ws.SavedPayload{ID: saved.ID, Name: saved.Name})
	r.peer.Send(reply)
}

// load fetches a tactic off the loop and installs it on the active board.
func (r *Room) load(req ws.Message, id string) {
	ctx, cancel := context.WithTimeout(r.ctx, libraryTimeout)
	defer cancel()
	t, err := r.tactics.Get(ctx, id)
	if err != nil {
		r.sendError(req, err)
		return
	}
	r.loop.Post(func() {
		r.session.Install(t)
		r.log.Info().Str("tactic", t.ID).Msg("tactic loaded")
	})
}
