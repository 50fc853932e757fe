package websocket

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/gorilla/websocket"
	"github.com/mototrack/mototrack/internal/pkg/constants"
	"github.com/mototrack/mototrack/internal/pkg/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// dialTestConn upgrades a real connection and returns both ends
func dialTestConn(t *testing.T) (serverConn, clientConn *websocket.Conn) {
	t.Helper()

	upgrader := websocket.Upgrader{}
	connCh := make(chan *websocket.Conn, 1)
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		conn, err := upgrader.Upgrade(w, r, nil)
		if err != nil {
			return
		}
		connCh <- conn
	}))
	t.Cleanup(srv.Close)

	url := "ws" + strings.TrimPrefix(srv.URL, "http")
	clientConn, _, err := websocket.DefaultDialer.Dial(url, nil)
	require.NoError(t, err)
	t.Cleanup(func() { clientConn.Close() })

	select {
	case serverConn = <-connCh:
	case <-time.After(2 * time.Second):
		t.Fatal("server side of the connection never arrived")
	}
	t.Cleanup(func() { serverConn.Close() })

	return serverConn, clientConn
}

// Every device stream consumer broadcasts on its own goroutine while the
// client's reader goroutine replays state on the same connection, so writes
// must be serialized per connection.
func TestSendMessage_SerializesConcurrentWriters(t *testing.T) {
	m := NewManager(models.JWTConfig{Secret: "test-secret"})
	serverConn, clientConn := dialTestConn(t)

	m.AddClient(&models.WebSocketClient{UserID: "user-1", Conn: serverConn})

	const writers = 6
	const framesPerWriter = 25
	totalFrames := writers*framesPerWriter + framesPerWriter

	received := make(chan struct{})
	go func() {
		defer close(received)
		for i := 0; i < totalFrames; i++ {
			var msg models.WSMessage
			if err := clientConn.ReadJSON(&msg); err != nil {
				return
			}
		}
	}()

	var wg sync.WaitGroup
	for i := 0; i < writers; i++ {
		wg.Add(1)
		go func(writer int) {
			defer wg.Done()
			for j := 0; j < framesPerWriter; j++ {
				m.Broadcast(constants.EventDisplayUpdate, models.DisplayUpdate{
					Field: "speed-value",
					Value: "42",
				})
			}
		}(i)
	}

	// replay path: direct sends interleaved with the broadcasts
	wg.Add(1)
	go func() {
		defer wg.Done()
		for j := 0; j < framesPerWriter; j++ {
			assert.NoError(t, m.SendMessage(serverConn, constants.EventCommandState,
				models.CommandStateMessage{Busy: false}))
		}
	}()
	wg.Wait()

	select {
	case <-received:
	case <-time.After(5 * time.Second):
		t.Fatal("client did not receive every frame; writes were lost or corrupted")
	}
}

func TestSendMessage_NilConnIsNoop(t *testing.T) {
	m := NewManager(models.JWTConfig{Secret: "test-secret"})

	assert.NoError(t, m.SendMessage(nil, constants.EventPong, nil))
}
