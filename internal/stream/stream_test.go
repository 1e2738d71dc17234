package stream

import (
	"io"
	"log/slog"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"antcolony/internal/geometry"
	"antcolony/internal/pheromone"
	"antcolony/internal/sim"
	pb "antcolony/proto"

	"github.com/gorilla/websocket"
	"github.com/pkg/errors"
	"google.golang.org/protobuf/encoding/protowire"
	"google.golang.org/protobuf/proto"
)

func testSnapshot(t *testing.T) sim.Snapshot {
	t.Helper()
	hill, err := geometry.NewCircle(geometry.Vector{X: 0.1, Y: -0.2}, 0.03)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	rect, err := geometry.NewRectangle(geometry.Vector{X: -1, Y: 1}, 0.5, 0.25)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	return sim.Snapshot{
		Scenario:     "default",
		Tick:         42,
		Time:         0.42,
		Speed:        2,
		Paused:       true,
		Anthill:      hill,
		FoodCounter:  3,
		Obstacles:    []geometry.Rectangle{rect},
		Food:         []geometry.Vector{{X: 0.5, Y: 0.5}, {X: 0.51, Y: 0.49}},
		Ants:         []sim.AntState{{Position: geometry.Vector{X: 0.01, Y: 0.02}, Heading: -1.5, HasFood: true, Frame: 3}},
		ToAnthill:    []pheromone.Particle{{Position: geometry.Vector{X: 0.3}, Intensity: 40}},
		ToFood:       []pheromone.Particle{{Position: geometry.Vector{Y: 0.3}, Intensity: 12.5}},
		MeanDistance: 0.125,
	}
}

func mustMarshalFrame(t *testing.T, f *pb.Frame) []byte {
	t.Helper()
	b, err := MarshalFrame(f)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	return b
}

func mustMarshalControl(t *testing.T, c *pb.Control) []byte {
	t.Helper()
	b, err := MarshalControl(c)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	return b
}

func TestFrameRoundTrip(t *testing.T) {
	want := FrameFromSnapshot(testSnapshot(t))

	msg, err := Unmarshal(mustMarshalFrame(t, want))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if msg.GetControl() != nil || msg.GetFrame() == nil {
		t.Fatalf("expected a frame message, got %v", msg)
	}
	got := msg.GetFrame()

	if got.GetScenario() != "default" || got.GetTick() != 42 || got.GetTime() != 0.42 || got.GetFoodCounter() != 3 || got.GetMeanDistance() != 0.125 {
		t.Fatalf("expected header fields to survive, got %v", got)
	}
	if a := got.GetAnthill(); a.GetX() != 0.1 || a.GetY() != -0.2 || a.GetRadius() != 0.03 {
		t.Fatalf("expected anthill at (0.1,-0.2) r 0.03, got %v", a)
	}
	if obs := got.GetObstacles(); len(obs) != 1 || !proto.Equal(obs[0], &pb.Rect{X: -1, Y: 1, Width: 0.5, Height: 0.25}) {
		t.Fatalf("expected the obstacle to survive, got %v", obs)
	}
	if food := got.GetFood(); len(food) != 2 || food[1].GetX() != 0.51 || food[1].GetY() != 0.49 {
		t.Fatalf("expected food in order, got %v", food)
	}
	wantAnt := &pb.Ant{X: 0.01, Y: 0.02, Heading: -1.5, HasFood: true, Frame: 3}
	if ants := got.GetAnts(); len(ants) != 1 || !proto.Equal(ants[0], wantAnt) {
		t.Fatalf("expected ant %v, got %v", wantAnt, ants)
	}
	toAnthill, toFood := got.GetToAnthill(), got.GetToFood()
	if len(toAnthill) != 1 || toAnthill[0].GetIntensity() != 40 || len(toFood) != 1 || toFood[0].GetY() != 0.3 {
		t.Fatalf("expected pheromones to stay in their kind, got %v and %v", toAnthill, toFood)
	}
	if settings := SettingsFromControl(got.GetControl()); settings != (sim.ControlSettings{Paused: true, Speed: 2}) {
		t.Fatalf("expected control state in the frame, got %+v", settings)
	}
}

func TestUnmarshalSkipsUnknownFields(t *testing.T) {
	var b []byte
	b = protowire.AppendTag(b, 99, protowire.BytesType)
	b = protowire.AppendString(b, "from a newer client")
	b = append(b, mustMarshalControl(t, &pb.Control{OptimizePath: true, Speed: 4})...)
	b = protowire.AppendTag(b, 100, protowire.VarintType)
	b = protowire.AppendVarint(b, 7)

	msg, err := Unmarshal(b)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if settings := SettingsFromControl(msg.GetControl()); settings != (sim.ControlSettings{OptimizePath: true, Speed: 4}) {
		t.Fatalf("expected the control to decode, got %+v", settings)
	}
}

func TestUnmarshalRejectsBadInput(t *testing.T) {
	if _, err := Unmarshal(nil); !errors.Is(err, ErrEmptyMessage) {
		t.Fatalf("expected ErrEmptyMessage, got %v", err)
	}

	full := mustMarshalFrame(t, FrameFromSnapshot(testSnapshot(t)))
	if _, err := Unmarshal(full[:len(full)-3]); err == nil {
		t.Fatal("expected a truncated frame to fail")
	}
}

type fakeController struct {
	mu       sync.Mutex
	settings sim.ControlSettings
}

func (c *fakeController) Controls() sim.ControlSettings {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.settings
}

func (c *fakeController) ApplyControlSettings(s sim.ControlSettings) sim.ControlSettings {
	c.mu.Lock()
	defer c.mu.Unlock()
	if s.Speed < 1 {
		s.Speed = 1
	}
	c.settings = s
	return s
}

func readMessage(t *testing.T, conn *websocket.Conn) *pb.Message {
	t.Helper()
	conn.SetReadDeadline(time.Now().Add(2 * time.Second))
	typ, data, err := conn.ReadMessage()
	if err != nil {
		t.Fatalf("unexpected read error: %v", err)
	}
	if typ != websocket.BinaryMessage {
		t.Fatalf("expected a binary message, got type %d", typ)
	}
	msg, err := Unmarshal(data)
	if err != nil {
		t.Fatalf("unexpected decode error: %v", err)
	}
	return msg
}

func writeMessage(t *testing.T, conn *websocket.Conn, payload []byte) {
	t.Helper()
	if err := conn.WriteMessage(websocket.BinaryMessage, payload); err != nil {
		t.Fatalf("unexpected write error: %v", err)
	}
}

func TestHubControlAndFrames(t *testing.T) {
	controller := &fakeController{settings: sim.ControlSettings{Speed: 1}}
	hub := NewHub(controller, slog.New(slog.NewTextHandler(io.Discard, nil)))
	srv := httptest.NewServer(hub)
	t.Cleanup(srv.Close)

	conn, _, err := websocket.DefaultDialer.Dial("ws"+strings.TrimPrefix(srv.URL, "http"), nil)
	if err != nil {
		t.Fatalf("unexpected dial error: %v", err)
	}
	defer conn.Close()

	msg := readMessage(t, conn)
	if c := msg.GetControl(); c == nil || SettingsFromControl(c) != (sim.ControlSettings{Speed: 1}) {
		t.Fatalf("expected the initial control state, got %v", msg)
	}

	writeMessage(t, conn, mustMarshalControl(t, &pb.Control{Paused: true}))
	msg = readMessage(t, conn)
	if c := msg.GetControl(); c == nil || SettingsFromControl(c) != (sim.ControlSettings{Paused: true, Speed: 1}) {
		t.Fatalf("expected the applied control state, got %v", msg)
	}
	if !controller.Controls().Paused {
		t.Fatal("expected the controller to be paused")
	}

	// garbage and frames from spectators are ignored
	writeMessage(t, conn, []byte{0xff, 0xff, 0xff})
	writeMessage(t, conn, mustMarshalFrame(t, &pb.Frame{Tick: 1}))
	writeMessage(t, conn, mustMarshalControl(t, &pb.Control{OptimizePath: true, Speed: 5}))
	msg = readMessage(t, conn)
	if c := msg.GetControl(); c == nil || SettingsFromControl(c) != (sim.ControlSettings{OptimizePath: true, Speed: 5}) {
		t.Fatalf("expected the hub to keep serving after bad input, got %v", msg)
	}

	hub.Broadcast(testSnapshot(t))
	msg = readMessage(t, conn)
	if f := msg.GetFrame(); f == nil || f.GetTick() != 42 || len(f.GetAnts()) != 1 {
		t.Fatalf("expected the broadcast frame, got %v", msg)
	}

	if hub.Len() != 1 {
		t.Fatalf("expected one spectator, got %d", hub.Len())
	}
	conn.Close()
	deadline := time.Now().Add(2 * time.Second)
	for hub.Len() != 0 {
		if time.Now().After(deadline) {
			t.Fatal("expected the spectator to be removed after disconnecting")
		}
		time.Sleep(5 * time.Millisecond)
	}
}
