package web

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/gorilla/websocket"

	"github.com/khadija-altaf/folio/internal/app"
)

const liveWriteWait = 10 * time.Second

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool { return true },
}

// liveRequest is the incoming WebSocket message format.
type liveRequest struct {
	Type string `json:"type"` // "navigate", "toggle_theme" or "dismiss"
	Path string `json:"path,omitempty"`
	ID   string `json:"id,omitempty"`
}

// handleLive streams the events of the caller's tab session as JSON and
// applies the actions the client sends back. The tab is named by the "tab"
// query parameter.
func (wb *Web) handleLive(w http.ResponseWriter, r *http.Request) {
	var visitor string
	if c, err := r.Cookie(CookieName); err == nil {
		visitor = c.Value
	}
	s, _, err := wb.sessions.GetOrCreate(r.Context(), visitor, tabID(r))
	if err != nil {
		http.Error(w, err.Error(), statusFor(err))
		return
	}
	header := http.Header{TabHeader: {s.ID()}}
	if s.Visitor() != visitor {
		header.Set("Set-Cookie", sessionCookie(s.Visitor(), r).String())
	}

	conn, err := upgrader.Upgrade(w, r, header)
	if err != nil {
		wb.log.DebugErr(err, "websocket upgrade")
		return
	}
	defer conn.Close()

	events, cancel := s.Subscribe()
	defer cancel()

	replies := make(chan app.Event, 8)
	done := make(chan struct{})
	go wb.readLive(conn, s, replies, done)

	for {
		select {
		case <-done:
			return
		case ev := <-replies:
			if err := writeLive(conn, ev); err != nil {
				return
			}
		case ev, ok := <-events:
			if !ok {
				conn.SetWriteDeadline(time.Now().Add(liveWriteWait))
				conn.WriteMessage(websocket.CloseMessage,
					websocket.FormatCloseMessage(websocket.CloseGoingAway, "session closed"))
				return
			}
			if err := writeLive(conn, ev); err != nil {
				return
			}
		}
	}
}

// readLive applies client messages until the connection fails. Errors are
// handed to the writer through replies.
func (wb *Web) readLive(conn *websocket.Conn, s *app.Session, replies chan<- app.Event, done chan<- struct{}) {
	defer close(done)
	for {
		_, msg, err := conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				wb.log.DebugErr(err, "websocket read")
			}
			return
		}

		var req liveRequest
		if err := json.Unmarshal(msg, &req); err != nil {
			sendError(replies, "invalid message format")
			continue
		}

		switch req.Type {
		case "navigate":
			err = s.Navigate(req.Path)
		case "toggle_theme":
			_, err = s.ToggleTheme(context.Background())
		case "dismiss":
			_, err = s.DismissToast(req.ID)
		default:
			sendError(replies, "unknown message type: "+req.Type)
			continue
		}
		if err != nil {
			sendError(replies, err.Error())
		}
	}
}

func writeLive(conn *websocket.Conn, ev app.Event) error {
	conn.SetWriteDeadline(time.Now().Add(liveWriteWait))
	return conn.WriteJSON(ev)
}

func sendError(replies chan<- app.Event, msg string) {
	select {
	case replies <- app.Event{Kind: "error", Data: msg, At: time.Now()}:
	default:
	}
}
