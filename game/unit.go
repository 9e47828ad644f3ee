package game

import (
	"fmt"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/memmaker/unitcommand/engine/util"
)

type UnitID uint64

// Velocity is what the unit mover wants the physics step to apply.
type Velocity struct {
	Linear  mgl32.Vec3
	Angular mgl32.Vec3
}

// UnitMover holds the standing target the unit steers towards.
type UnitMover struct {
	TargetPosition mgl32.Vec3
	MoveSpeed      float32
	RotationSpeed  float32
}

// MoveOverride is a direct move order. It is deactivated on arrival, never removed.
type MoveOverride struct {
	TargetPosition mgl32.Vec3
	Active         bool
}

type Selectable struct {
	IsSelected     bool
	JustSelected   bool
	JustDeselected bool
	VisualID       uint64
	ShowScale      float32
}

// Unit is one simulated entity. Nil components are absent: a unit without
// Override does not accept move orders, one without Selectable cannot be picked.
type Unit struct {
	ID         UnitID
	Name       string
	Transform  *util.Transform
	Velocity   Velocity
	Mover      *UnitMover
	Override   *MoveOverride
	Selectable *Selectable
}

type UnitOption func(u *Unit)

func WithMover(moveSpeed, rotationSpeed float32) UnitOption {
	return func(u *Unit) {
		u.Mover = &UnitMover{
			TargetPosition: u.Transform.GetPosition(),
			MoveSpeed:      moveSpeed,
			RotationSpeed:  rotationSpeed,
		}
	}
}

func WithMoveOverride() UnitOption {
	return func(u *Unit) {
		u.Override = &MoveOverride{}
	}
}

func WithSelectable(visualID uint64, showScale float32) UnitOption {
	return func(u *Unit) {
		u.Selectable = &Selectable{
			VisualID:  visualID,
			ShowScale: showScale,
		}
	}
}

func WithForward(forward mgl32.Vec3) UnitOption {
	return func(u *Unit) {
		u.Transform.SetForward(forward)
	}
}

func NewUnit(id UnitID, name string, position mgl32.Vec3, options ...UnitOption) *Unit {
	u := &Unit{
		ID:        id,
		Name:      name,
		Transform: util.NewTransform(position, mgl32.QuatIdent()),
	}
	for _, option := range options {
		option(u)
	}
	return u
}

// NewSoldier is a selectable unit that accepts move orders, using the configured speeds.
func NewSoldier(id UnitID, name string, position mgl32.Vec3, cfg Config) *Unit {
	return NewUnit(id, name, position,
		WithMover(cfg.DefaultMoveSpeed, cfg.DefaultRotationSpeed),
		WithMoveOverride(),
		WithSelectable(uint64(id), cfg.SelectedShowScale),
	)
}

func (u *Unit) GetPosition() mgl32.Vec3 {
	return u.Transform.GetPosition()
}

func (u *Unit) GetName() string {
	return u.Name
}

func (u *Unit) IsSelected() bool {
	return u.Selectable != nil && u.Selectable.IsSelected
}

func (u *Unit) CanBeSelected() bool {
	return u.Selectable != nil && u.Transform != nil
}

func (u *Unit) AcceptsMoveOrders() bool {
	return u.Override != nil && u.Mover != nil
}

func (u *Unit) HasActiveOverride() bool {
	return u.Override != nil && u.Override.Active
}

func (u *Unit) Description() string {
	return fmt.Sprintf("Unit %s(%d) at %v", u.Name, u.ID, u.GetPosition())
}
