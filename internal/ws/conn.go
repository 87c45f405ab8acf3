package ws

import (
	"context"
	"sync"
	"time"

	"github.com/coder/websocket"
	"github.com/rs/zerolog"

	"github.com/vladimirvolkov/tactics/internal/logging"
	"github.com/vladimirvolkov/tactics/internal/middleware"
)

const (
	sendBuffer   = 64
	writeTimeout = 5 * time.Second
)

type Conn struct {
	ws      *websocket.Conn
	sendCh  chan []byte
	done    chan struct{}
	once    sync.Once
	ID      string
	Coach   string
	IP      string
	limiter *middleware.IPRateLimiter
	log     zerolog.Logger
	dropLog zerolog.Logger
}

func NewConn(ws *websocket.Conn, id string, ip string, limiter *middleware.IPRateLimiter, log zerolog.Logger) *Conn {
	c := &Conn{
		ws:      ws,
		sendCh:  make(chan []byte, sendBuffer),
		done:    make(chan struct{}),
		ID:      id,
		IP:      ip,
		limiter: limiter,
		log:     log.With().Str("conn", id).Logger(),
	}
	c.dropLog = logging.Sampled(c.log)
	return c
}

// Send queues msg for the write loop. It never blocks; when the buffer is
// full the message is dropped.
func (c *Conn) Send(msg Message) {
	data, err := Encode(msg)
	if err != nil {
		c.log.Error().Err(err).Str("type", TypeName(msg.Type)).Msg("encode error")
		return
	}
	select {
	case c.sendCh <- data:
	case <-c.done:
	default:
		c.log.Warn().Str("type", TypeName(msg.Type)).Msg("send buffer full, dropping message")
	}
}

func (c *Conn) ReadLoop(ctx context.Context) <-chan Message {
	ch := make(chan Message, sendBuffer)
	go func() {
		defer close(ch)
		for {
			_, data, err := c.ws.Read(ctx)
			if err != nil {
				c.log.Debug().Err(err).Msg("read error")
				c.Close()
				return
			}
			msg, err := Decode(data)
			if err != nil {
				c.log.Debug().Err(err).Msg("decode error")
				continue
			}
			// Per-IP message rate limiting; drop, don't disconnect
			if c.limiter != nil && !c.limiter.MessageAllowed(c.IP) {
				c.dropLog.Debug().Str("type", TypeName(msg.Type)).Str("ip", c.IP).Msg("rate limited")
				continue
			}
			c.log.Trace().Str("type", TypeName(msg.Type)).Uint64("seq", msg.Seq).Msg("recv")
			select {
			case ch <- msg:
			case <-ctx.Done():
				return
			}
		}
	}()
	return ch
}

func (c *Conn) WriteLoop(ctx context.Context) {
	for {
		select {
		case data := <-c.sendCh:
			ctx2, cancel := context.WithTimeout(ctx, writeTimeout)
			err := c.ws.Write(ctx2, websocket.MessageText, data)
			cancel()
			if err != nil {
				c.log.Debug().Err(err).Msg("write error")
				c.Close()
				return
			}
		case <-c.done:
			return
		case <-ctx.Done():
			return
		}
	}
}

func (c *Conn) Close() {
	c.closeWith(websocket.StatusNormalClosure, "")
}

func (c *Conn) closeWith(code websocket.StatusCode, reason string) {
	c.once.Do(func() {
		close(c.done)
		c.ws.Close(code, reason)
	})
}

func (c *Conn) Done() <-chan struct{} {
	return c.done
}
