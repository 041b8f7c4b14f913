package tui

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"sync"
	"time"

	"namedeck/internal/dto"

	"github.com/gorilla/websocket"
)

// APIClient talks to the backend: REST for directory queries, a websocket
// for session lifecycle events.
type APIClient struct {
	baseURL string
	http    *http.Client

	// mu guards conn and events: ConnectEvents may be called again after
	// a drop, from a different goroutine than the event reader.
	mu     sync.Mutex
	conn   *websocket.Conn
	events chan dto.SessionEvent
}

func NewAPIClient(baseURL string) *APIClient {
	return &APIClient{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: 30 * time.Second},
		events:  make(chan dto.SessionEvent, 16),
	}
}

// ConnectEvents dials the push channel and starts pumping events into
// Events(). The channel closes when the connection drops; calling
// ConnectEvents again opens a fresh channel.
func (c *APIClient) ConnectEvents() error {
	wsURL := strings.Replace(c.baseURL, "http", "ws", 1) + "/ws"
	conn, _, err := websocket.DefaultDialer.Dial(wsURL, nil)
	if err != nil {
		return fmt.Errorf("dial %s: %w", wsURL, err)
	}

	events := make(chan dto.SessionEvent, 16)
	c.mu.Lock()
	c.conn = conn
	c.events = events
	c.mu.Unlock()

	go func() {
		defer close(events)
		for {
			var evt dto.SessionEvent
			if err := conn.ReadJSON(&evt); err != nil {
				return
			}
			events <- evt
		}
	}()
	return nil
}

func (c *APIClient) Events() <-chan dto.SessionEvent {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.events
}

func (c *APIClient) Close() {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.conn != nil {
		c.conn.Close()
	}
}

func (c *APIClient) Status() (*dto.StatusResponse, error) {
	var status dto.StatusResponse
	if err := c.get("/api/status", &status); err != nil {
		return nil, err
	}
	return &status, nil
}

func (c *APIClient) Initialize() (*dto.InitializeResponse, error) {
	res, err := c.http.Post(c.baseURL+"/api/initialize", "application/json", nil)
	if err != nil {
		return nil, err
	}
	defer res.Body.Close()
	if res.StatusCode != http.StatusOK {
		return nil, apiError(res)
	}
	var ack dto.InitializeResponse
	if err := json.NewDecoder(res.Body).Decode(&ack); err != nil {
		return nil, err
	}
	return &ack, nil
}

func (c *APIClient) Groups() ([]dto.GroupSummary, error) {
	var groups []dto.GroupSummary
	if err := c.get("/api/groups", &groups); err != nil {
		return nil, err
	}
	return groups, nil
}

func (c *APIClient) Participants(groupID string) ([]dto.Participant, error) {
	var participants []dto.Participant
	if err := c.get("/api/group/"+groupID+"/participants", &participants); err != nil {
		return nil, err
	}
	return participants, nil
}

func (c *APIClient) get(path string, out interface{}) error {
	res, err := c.http.Get(c.baseURL + path)
	if err != nil {
		return err
	}
	defer res.Body.Close()
	if res.StatusCode != http.StatusOK {
		return apiError(res)
	}
	return json.NewDecoder(res.Body).Decode(out)
}

func apiError(res *http.Response) error {
	body, _ := io.ReadAll(res.Body)
	var envelope struct {
		Message string `json:"message"`
	}
	if err := json.Unmarshal(body, &envelope); err == nil && envelope.Message != "" {
		return fmt.Errorf("%s", envelope.Message)
	}
	return fmt.Errorf("server returned %s", res.Status)
}
