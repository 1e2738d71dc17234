// Package stream carries simulation frames to spectators and control
// changes back over a websocket. Every websocket message is a binary
// pb.Message, see proto/stream.proto.
package stream

import (
	"antcolony/internal/sim"
	pb "antcolony/proto"

	"github.com/pkg/errors"
	"google.golang.org/protobuf/proto"
)

// ErrEmptyMessage is returned for a message holding neither a frame nor a control.
var ErrEmptyMessage = errors.New("stream: message has no body")

// ControlFromSettings converts the simulation knobs to their wire form.
func ControlFromSettings(c sim.ControlSettings) *pb.Control {
	return &pb.Control{OptimizePath: c.OptimizePath, Paused: c.Paused, Speed: int32(c.Speed)}
}

// SettingsFromControl converts c back to simulation knobs.
func SettingsFromControl(c *pb.Control) sim.ControlSettings {
	return sim.ControlSettings{
		OptimizePath: c.GetOptimizePath(),
		Paused:       c.GetPaused(),
		Speed:        int(c.GetSpeed()),
	}
}

// FrameFromSnapshot flattens a snapshot into a frame.
func FrameFromSnapshot(snap sim.Snapshot) *pb.Frame {
	f := &pb.Frame{
		Scenario:     snap.Scenario,
		Tick:         snap.Tick,
		Time:         snap.Time,
		FoodCounter:  int64(snap.FoodCounter),
		MeanDistance: snap.MeanDistance,
		Anthill: &pb.Circle{
			X:      snap.Anthill.Center().X,
			Y:      snap.Anthill.Center().Y,
			Radius: snap.Anthill.Radius(),
		},
		Obstacles: make([]*pb.Rect, 0, len(snap.Obstacles)),
		Food:      make([]*pb.Point, 0, len(snap.Food)),
		Ants:      make([]*pb.Ant, 0, len(snap.Ants)),
		ToAnthill: make([]*pb.Pheromone, 0, len(snap.ToAnthill)),
		ToFood:    make([]*pb.Pheromone, 0, len(snap.ToFood)),
		Control: &pb.Control{
			OptimizePath: snap.OptimizePath,
			Paused:       snap.Paused,
			Speed:        int32(snap.Speed),
		},
	}
	for _, r := range snap.Obstacles {
		f.Obstacles = append(f.Obstacles, &pb.Rect{X: r.TopLeft().X, Y: r.TopLeft().Y, Width: r.Width(), Height: r.Height()})
	}
	for _, p := range snap.Food {
		f.Food = append(f.Food, &pb.Point{X: p.X, Y: p.Y})
	}
	for _, a := range snap.Ants {
		f.Ants = append(f.Ants, &pb.Ant{
			X:       a.Position.X,
			Y:       a.Position.Y,
			Heading: a.Heading,
			HasFood: a.HasFood,
			Frame:   int32(a.Frame),
		})
	}
	for _, p := range snap.ToAnthill {
		f.ToAnthill = append(f.ToAnthill, &pb.Pheromone{X: p.Position.X, Y: p.Position.Y, Intensity: p.Intensity})
	}
	for _, p := range snap.ToFood {
		f.ToFood = append(f.ToFood, &pb.Pheromone{X: p.Position.X, Y: p.Position.Y, Intensity: p.Intensity})
	}
	return f
}

// MarshalFrame encodes f as a websocket message.
func MarshalFrame(f *pb.Frame) ([]byte, error) {
	return proto.Marshal(&pb.Message{Body: &pb.Message_Frame{Frame: f}})
}

// MarshalControl encodes c as a websocket message.
func MarshalControl(c *pb.Control) ([]byte, error) {
	return proto.Marshal(&pb.Message{Body: &pb.Message_Control{Control: c}})
}

// Unmarshal decodes a websocket message. Unknown fields are kept aside and
// ignored.
func Unmarshal(b []byte) (*pb.Message, error) {
	msg := &pb.Message{}
	if err := proto.Unmarshal(b, msg); err != nil {
		return nil, errors.Wrap(err, "decode message")
	}
	if msg.GetBody() == nil {
		return nil, ErrEmptyMessage
	}
	return msg, nil
}
