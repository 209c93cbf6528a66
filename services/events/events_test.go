package events

import (
	"os"
	"sync"
	"testing"

	"healthtrack-api/structs"
	"healthtrack-api/utils"
)

func TestMain(m *testing.M) {
	utils.EnvConfig = &structs.EnviromentModel{}
	os.Exit(m.Run())
}

func TestNewConnectionIsPooledByName(t *testing.T) {
	a := NewConnection("pool-test", "q1")
	b := NewConnection("pool-test", "q2")
	if a != b {
		t.Error("expected the same pooled connection for one name")
	}
	if b.Queue != "q1" {
		t.Errorf("pooled connection must keep its original queue, got %s", b.Queue)
	}
}

func TestEmitWithEventsDisabledIsNoOp(t *testing.T) {
	utils.EnvConfig.RabbitMQ.Enable = 0
	// must not touch the pool or panic on a missing connection
	Emit(ActionCreated, "peptides", "rec-1")
}

// run with -race: concurrent emitters that both observe a dead
// connection must not dial the broker at the same time
func TestReconnectIsSerialized(t *testing.T) {
	utils.EnvConfig.RabbitMQ.Domain = "amqp://127.0.0.1:1"
	conn := NewConnection("reconnect-test", "q")

	var wg sync.WaitGroup
	for i := 0; i < 4; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			// broker is unreachable, every attempt fails fast
			if err := conn.Reconnect(); err == nil {
				t.Error("expected dial failure against an unreachable broker")
			}
		}()
	}
	wg.Wait()
}
