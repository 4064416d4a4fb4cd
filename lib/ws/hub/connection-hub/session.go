package connectionhub

import (
	"context"

	"github.com/gofiber/contrib/websocket"
	log "github.com/sirupsen/logrus"
)

type clientSession struct {
	conn *websocket.Conn

	// исходящие сообщения, буферизованы
	sendCh chan any
	stop   func()
}

func newSession(conn *websocket.Conn) clientSession {
	ctx, cancelFn := context.WithCancel(context.TODO())
	sess := clientSession{
		stop:   cancelFn,
		conn:   conn,
		sendCh: make(chan any, 1),
	}
	go sess.startSend(ctx)
	return sess
}

func (s clientSession) startSend(ctx context.Context) {
	for {
		select {
		case <-ctx.Done():
			return
		case msg, ok := <-s.sendCh:
			if !ok {
				return
			}
			if err := s.conn.WriteJSON(msg); err != nil {
				log.WithError(err).Error("ошибка отправки сообщения в ws")
				return
			}
		}
	}
}
