package game

import (
	"fmt"
	"os"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/memmaker/unitcommand/engine/util"
	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

// Scenario is a scripted session: a camera, some units and the input of each tick.
type Scenario struct {
	Name      string      `yaml:"name"`
	DeltaTime float64     `yaml:"deltaTime"`
	Ticks     int         `yaml:"ticks"`
	Camera    CameraSpec  `yaml:"camera"`
	Units     []UnitSpec  `yaml:"units"`
	Frames    []FrameSpec `yaml:"frames"`
}

type CameraSpec struct {
	Position    []float32 `yaml:"position"`
	Target      []float32 `yaml:"target"`
	Width       int       `yaml:"width"`
	Height      int       `yaml:"height"`
	FieldOfView float32   `yaml:"fieldOfView"`
}

type UnitSpec struct {
	ID            uint64    `yaml:"id"`
	Name          string    `yaml:"name"`
	Position      []float32 `yaml:"position"`
	MoveSpeed     float32   `yaml:"moveSpeed"`
	RotationSpeed float32   `yaml:"rotationSpeed"`
	Selectable    *bool     `yaml:"selectable"`
	AcceptsOrders *bool     `yaml:"acceptsOrders"`
}

// FrameSpec is one tick of input. Repeat > 1 holds the cursor for that many
// ticks; the edges only fire on the first one.
type FrameSpec struct {
	Repeat           int       `yaml:"repeat"`
	PrimaryPressed   bool      `yaml:"primaryPressed"`
	PrimaryReleased  bool      `yaml:"primaryReleased"`
	SecondaryPressed bool      `yaml:"secondaryPressed"`
	Cursor           []float32 `yaml:"cursor"`
	Ground           []float32 `yaml:"ground"`
}

func LoadScenario(path string) (*Scenario, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "error reading scenario %s", path)
	}
	scenario, err := ParseScenario(data)
	if err != nil {
		return nil, errors.Wrapf(err, "scenario %s", path)
	}
	return scenario, nil
}

func ParseScenario(data []byte) (*Scenario, error) {
	scenario := &Scenario{}
	if err := yaml.Unmarshal(data, scenario); err != nil {
		return nil, errors.Wrap(err, "error decoding scenario")
	}
	if err := scenario.applyDefaults(); err != nil {
		return nil, err
	}
	return scenario, nil
}

func (s *Scenario) applyDefaults() error {
	if s.DeltaTime <= 0 {
		s.DeltaTime = 1.0 / 50.0
	}
	if s.Camera.Width <= 0 {
		s.Camera.Width = 800
	}
	if s.Camera.Height <= 0 {
		s.Camera.Height = 600
	}
	if len(s.Camera.Position) == 0 {
		s.Camera.Position = []float32{0, 30, 20}
	}
	if len(s.Camera.Target) == 0 {
		s.Camera.Target = []float32{0, 0, 0}
	}
	seen := make(map[uint64]bool, len(s.Units))
	for i := range s.Units {
		if s.Units[i].ID == 0 {
			s.Units[i].ID = uint64(i + 1)
		}
		if seen[s.Units[i].ID] {
			return errors.Errorf("duplicate unit id %d", s.Units[i].ID)
		}
		seen[s.Units[i].ID] = true
		if s.Units[i].Name == "" {
			s.Units[i].Name = fmt.Sprintf("Unit #%d", s.Units[i].ID)
		}
	}
	frameTicks := 0
	for i := range s.Frames {
		if s.Frames[i].Repeat <= 0 {
			s.Frames[i].Repeat = 1
		}
		frameTicks += s.Frames[i].Repeat
	}
	if s.Ticks < frameTicks {
		s.Ticks = frameTicks
	}
	return nil
}

// ScenarioRun is a scenario wired to a running simulation.
type ScenarioRun struct {
	Scenario   *Scenario
	Registry   *UnitRegistry
	Camera     *util.TopDownCamera
	Collisions *util.CollisionWorld
	Visuals    *VisualScales
	Events     *SelectionEventLog
	Input      *ScriptedInput
	Simulation *Simulation
}

func (s *Scenario) Build(config Config) (*ScenarioRun, error) {
	camPos, err := toVec3(s.Camera.Position, "camera.position")
	if err != nil {
		return nil, err
	}
	camTarget, err := toVec3(s.Camera.Target, "camera.target")
	if err != nil {
		return nil, err
	}
	camera := util.NewTopDownCamera(camPos, camTarget, s.Camera.Width, s.Camera.Height)
	if s.Camera.FieldOfView > 0 {
		camera.SetFieldOfView(s.Camera.FieldOfView)
	}

	registry := NewUnitRegistry()
	collisions := util.NewCollisionWorld()
	physics := NewPhysicsSync(collisions)
	for _, spec := range s.Units {
		unit, unitErr := spec.toUnit(config)
		if unitErr != nil {
			return nil, unitErr
		}
		registry.Add(unit)
		physics.AddUnitBody(unit, config.UnitsLayer)
	}

	frames, err := s.inputFrames(camera)
	if err != nil {
		return nil, err
	}

	visuals := NewVisualScales()
	events := NewSelectionEventLog()
	simulation := NewSimulation(registry, Collaborators{
		Projector: camera,
		Picker:    camera,
		Caster:    collisions,
		Visuals:   visuals,
		Physics:   physics,
	}, config)
	simulation.SelectionManager().AddObserver(events)

	return &ScenarioRun{
		Scenario:   s,
		Registry:   registry,
		Camera:     camera,
		Collisions: collisions,
		Visuals:    visuals,
		Events:     events,
		Input:      NewScriptedInput(frames),
		Simulation: simulation,
	}, nil
}

func (r *ScenarioRun) Run() {
	util.LogSystemInfo(fmt.Sprintf("[Scenario] %s: %d units, %d ticks", r.Scenario.Name, r.Registry.Len(), r.Scenario.Ticks))
	r.Simulation.Run(r.Input, r.Scenario.Ticks, r.Scenario.DeltaTime)
}

func (u UnitSpec) toUnit(config Config) (*Unit, error) {
	position, err := toVec3(u.Position, fmt.Sprintf("units[%s].position", u.Name))
	if err != nil {
		return nil, err
	}
	moveSpeed := u.MoveSpeed
	if moveSpeed <= 0 {
		moveSpeed = config.DefaultMoveSpeed
	}
	rotationSpeed := u.RotationSpeed
	if rotationSpeed <= 0 {
		rotationSpeed = config.DefaultRotationSpeed
	}
	options := []UnitOption{WithMover(moveSpeed, rotationSpeed)}
	if u.AcceptsOrders == nil || *u.AcceptsOrders {
		options = append(options, WithMoveOverride())
	}
	if u.Selectable == nil || *u.Selectable {
		options = append(options, WithSelectable(u.ID, config.SelectedShowScale))
	}
	return NewUnit(UnitID(u.ID), u.Name, position, options...), nil
}

func (s *Scenario) inputFrames(camera *util.TopDownCamera) ([]InputFrame, error) {
	var frames []InputFrame
	for i, spec := range s.Frames {
		frame := InputFrame{
			PrimaryPressed:   spec.PrimaryPressed,
			PrimaryReleased:  spec.PrimaryReleased,
			SecondaryPressed: spec.SecondaryPressed,
		}
		if len(spec.Cursor) > 0 {
			if len(spec.Cursor) != 2 {
				return nil, errors.Errorf("frames[%d].cursor needs 2 values, got %d", i, len(spec.Cursor))
			}
			frame.Cursor = mgl32.Vec2{spec.Cursor[0], spec.Cursor[1]}
		}
		if len(spec.Ground) > 0 {
			ground, err := toVec3(spec.Ground, fmt.Sprintf("frames[%d].ground", i))
			if err != nil {
				return nil, err
			}
			frame.MouseWorldPosition = ground
			frame.HasMouseWorldPosition = true
		} else {
			frame.MouseWorldPosition, frame.HasMouseWorldPosition = camera.GroundPoint(frame.Cursor)
		}
		frames = append(frames, frame)
		for r := 1; r < spec.Repeat; r++ {
			frames = append(frames, InputFrame{
				Cursor:                frame.Cursor,
				MouseWorldPosition:    frame.MouseWorldPosition,
				HasMouseWorldPosition: frame.HasMouseWorldPosition,
			})
		}
	}
	return frames, nil
}

func toVec3(values []float32, field string) (mgl32.Vec3, error) {
	if len(values) != 3 {
		return mgl32.Vec3{}, errors.Errorf("%s needs 3 values, got %d", field, len(values))
	}
	return mgl32.Vec3{values[0], values[1], values[2]}, nil
}
