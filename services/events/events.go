package events

import (
	"encoding/json"
	"errors"
	"fmt"
	"sync"
	"time"

	"healthtrack-api/services/trackLog"
	"healthtrack-api/utils"

	"github.com/streadway/amqp"
)

const (
	ActionCreated = "created"
	ActionUpdated = "updated"
	ActionDeleted = "deleted"
)

const connName = "healthtrack"

// RecordEvent is the message published after every successful write.
type RecordEvent struct {
	Action     string    `json:"action"`
	Resource   string    `json:"resource"`
	RecordID   string    `json:"record_id"`
	OccurredAt time.Time `json:"occurred_at"`
}

// Connection is the amqp connection created
type Connection struct {
	name    string
	Conn    *amqp.Connection
	Channel *amqp.Channel
	Queue   string
	Err     chan error
	mu      sync.Mutex
}

var (
	connectionPool = make(map[string]*Connection)
)

// NewConnection returns the new connection object
func NewConnection(name, queue string) *Connection {
	if c, ok := connectionPool[name]; ok {
		return c
	}
	c := &Connection{
		name:  name,
		Queue: queue,
		// buffered: nothing consumes close notifications here, the
		// publisher just reconnects on the next Emit
		Err: make(chan error, 1),
	}
	connectionPool[name] = c
	return c
}

// GetConnection returns the connection which was instantiated
func GetConnection(name string) *Connection {
	return connectionPool[name]
}

func (c *Connection) Connect() error {
	var err error
	c.Conn, err = amqp.Dial(utils.EnvConfig.RabbitMQ.Domain)
	if err != nil {
		return fmt.Errorf("Error in creating rabbitmq connection with %s : %s", utils.EnvConfig.RabbitMQ.Domain, err.Error())
	}
	go func() {
		<-c.Conn.NotifyClose(make(chan *amqp.Error))
		select {
		case c.Err <- errors.New("Connection Closed"):
		default:
		}
	}()
	c.Channel, err = c.Conn.Channel()
	if err != nil {
		return fmt.Errorf("Channel: %s", err)
	}
	return nil
}

func (c *Connection) BindQueue() error {
	if _, err := c.Channel.QueueDeclare(c.Queue, false, false, false, false, nil); err != nil {
		return fmt.Errorf("error in declaring the queue %s", err)
	}
	return nil
}

// Reconnect reconnects the connection. Serialized so that emitters
// racing on a closed connection dial the broker once, not once each.
func (c *Connection) Reconnect() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.Conn != nil && !c.Conn.IsClosed() {
		return nil
	}
	if err := c.Connect(); err != nil {
		return err
	}
	return c.BindQueue()
}

func (c *Connection) Publish(body []byte) error {
	return c.Channel.Publish(
		"",      // exchange
		c.Queue, // routing key
		false,   // mandatory
		false,   // immediate
		amqp.Publishing{
			ContentType: "application/json",
			Body:        body,
		})
}

// Init connects the publisher when rabbitmq.enable is set. A broker
// that is down at startup only disables events; the API still serves.
func Init() {
	if utils.EnvConfig.RabbitMQ.Enable != 1 {
		return
	}
	conn := NewConnection(connName, utils.EnvConfig.RabbitMQ.Queue)
	if err := conn.Connect(); err != nil {
		trackLog.Error(fmt.Sprintf("events disabled: %s", err.Error()), true)
		conn.Conn = nil
		return
	}
	if err := conn.BindQueue(); err != nil {
		trackLog.Error(fmt.Sprintf("events disabled: %s", err.Error()), true)
		conn.Conn = nil
	}
}

// Emit publishes a record change event, fire and forget. A publish
// failure is logged and never fails the originating request.
func Emit(action, resource, recordID string) {
	if utils.EnvConfig.RabbitMQ.Enable != 1 {
		return
	}
	conn := GetConnection(connName)
	if conn == nil || conn.Conn == nil {
		return
	}
	if conn.Conn.IsClosed() {
		if err := conn.Reconnect(); err != nil {
			trackLog.Error(fmt.Sprintf("reconnect rabbit fail: %s", err.Error()), true)
			return
		}
	}
	event := RecordEvent{
		Action:     action,
		Resource:   resource,
		RecordID:   recordID,
		OccurredAt: time.Now().UTC(),
	}
	body, err := json.Marshal(event)
	if err != nil {
		trackLog.Error(err.Error(), true)
		return
	}
	if err := conn.Publish(body); err != nil {
		trackLog.Error(fmt.Sprintf("publish %s %s event: %s", resource, action, err.Error()), true)
		if err := conn.Reconnect(); err != nil {
			trackLog.Error(err.Error(), true)
		}
	}
}
