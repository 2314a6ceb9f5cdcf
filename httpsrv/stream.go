package httpsrv

import (
	"net/http"
	"time"

	"github.com/gorilla/websocket"
	"gitlab.com/distributed_lab/logan/v3"

	"github.com/tutils/lcgen/lcg"
)

// stream message types
const (
	MessageValues = "values"
	MessageDone   = "done"
)

const (
	streamBatch  = 1000
	writeTimeout = time.Second * 5
)

var (
	upgrader = websocket.Upgrader{
		ReadBufferSize:  4 << 10,
		WriteBufferSize: 4 << 10,
		CheckOrigin: func(r *http.Request) bool {
			return true
		},
	}
)

// StreamMessage is one websocket text frame of a value stream. Values frames
// carry consecutive batches, Offset is the 0-based index of the first value
// in the batch. The stream ends with a single done frame.
type StreamMessage struct {
	Type   string  `json:"type"`
	Offset int     `json:"offset"`
	Values []int64 `json:"values,omitempty"`
	Count  int     `json:"count,omitempty"`
	Period int     `json:"period,omitempty"`
}

// handleStream 通过websocket分批推送序列
func (s *Server) handleStream(w http.ResponseWriter, r *http.Request) {
	if !allowMethods(w, r, http.MethodGet) {
		return
	}
	p, ok := s.params(w, r)
	if !ok {
		return
	}
	if !s.acquire(w) {
		return
	}
	defer s.gate.Unlock()

	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		// Upgrade has already answered the client
		s.log.WithError(err).Debug("websocket upgrade failed")
		return
	}
	defer conn.Close()

	log := s.log.WithFields(logan.F{
		"remote": r.RemoteAddr,
		"params": p.String(),
	})
	if err := s.stream(conn, p); err != nil {
		log.WithError(err).Warn("stream aborted")
		return
	}
	log.Debug("stream finished")
}

func (s *Server) stream(conn *websocket.Conn, p lcg.Params) error {
	g := lcg.NewGenerator(p)
	batch := make([]int64, 0, min(streamBatch, p.Count()))
	send := func(msg StreamMessage) error {
		conn.SetWriteDeadline(time.Now().Add(writeTimeout))
		return conn.WriteJSON(msg)
	}

	for offset := 0; offset < p.Count(); offset += len(batch) {
		batch = batch[:0]
		for i := offset; i < p.Count() && len(batch) < streamBatch; i++ {
			batch = append(batch, g.Next())
		}
		if err := send(StreamMessage{Type: MessageValues, Offset: offset, Values: batch}); err != nil {
			return err
		}
		s.opts.throughput.Add(int64(len(batch)))
	}

	period := lcg.FindPeriod(p)
	s.record(p.Count(), period)
	if err := send(StreamMessage{Type: MessageDone, Count: p.Count(), Period: period}); err != nil {
		return err
	}

	conn.SetWriteDeadline(time.Now().Add(writeTimeout))
	return conn.WriteMessage(websocket.CloseMessage,
		websocket.FormatCloseMessage(websocket.CloseNormalClosure, ""))
}
