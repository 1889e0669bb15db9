package wsclient

import (
	"fmt"
	"sync"

	"github.com/gofiber/contrib/websocket"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
)

func NewClient(jobID string, c *websocket.Conn) *WsClient {
	return &WsClient{
		conn:  c,
		jobID: jobID,
	}
}

type WsClient struct {
	conn  *websocket.Conn
	jobID string
	mu    sync.Mutex
}

var closeCodes []int

func init() {
	for i := websocket.CloseNormalClosure; i <= websocket.CloseTLSHandshake; i++ {
		closeCodes = append(closeCodes, i)
	}
}

func (c *WsClient) getLogger() *log.Entry {
	return log.WithField("job_id", c.jobID)
}

// Send отправка сообщения клиенту, безопасна для вызова из разных горутин
func (c *WsClient) Send(msg interface{}) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.conn == nil {
		return errors.New("соединение закрыто")
	}
	if err := c.conn.WriteJSON(msg); err != nil {
		return errors.Wrap(err, "ошибка отправки сообщения")
	}
	return nil
}

// Dispatch читает входящие сообщения до закрытия соединения
func (c *WsClient) Dispatch() {
	for {
		if c.conn == nil {
			return
		}
		_, data, err := c.conn.ReadMessage()
		if err != nil {
			if !websocket.IsCloseError(err, closeCodes...) {
				c.getLogger().WithError(err).Error("ошибка получения сообщения")
			}
			break
		}
		c.getLogger().WithField("ws_message", fmt.Sprintf("%s", data)).Debug("ws-msg")
	}
}
