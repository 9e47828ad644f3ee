package client

import (
	"fmt"

	"github.com/faiface/mainthread"
	"github.com/go-gl/glfw/v3.3/glfw"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/memmaker/unitcommand/engine/util"
	"github.com/memmaker/unitcommand/game"
	"github.com/pkg/errors"
)

type WindowOptions struct {
	Title     string
	Width     int
	Height    int
	UnitCount int
}

// BattleClient drives the simulation from a glfw window. Nothing is rendered;
// the title bar shows the current selection.
type BattleClient struct {
	window     *glfw.Window
	input      *GlfwInput
	camera     *util.TopDownCamera
	registry   *game.UnitRegistry
	simulation *game.Simulation
	title      string
	dragging   bool
}

// Run blocks until the window is closed. It must be called from main.
func Run(config game.Config, options WindowOptions) error {
	var runErr error
	mainthread.Run(func() {
		runErr = run(config, options)
	})
	return runErr
}

func run(config game.Config, options WindowOptions) error {
	var window *glfw.Window
	var initErr error
	mainthread.Call(func() {
		window, initErr = initWindow(options)
	})
	if initErr != nil {
		return initErr
	}
	defer mainthread.Call(glfw.Terminate)

	client := newBattleClient(window, config, options)
	client.loop()
	return nil
}

func initWindow(options WindowOptions) (*glfw.Window, error) {
	if err := glfw.Init(); err != nil {
		return nil, errors.Wrap(err, "glfw init")
	}
	glfw.WindowHint(glfw.ClientAPI, glfw.NoAPI)
	glfw.WindowHint(glfw.Resizable, glfw.True)
	window, err := glfw.CreateWindow(options.Width, options.Height, options.Title, nil, nil)
	if err != nil {
		glfw.Terminate()
		return nil, errors.Wrap(err, "glfw create window")
	}
	return window, nil
}

func newBattleClient(window *glfw.Window, config game.Config, options WindowOptions) *BattleClient {
	camera := util.NewTopDownCamera(mgl32.Vec3{0, 30, 20}, mgl32.Vec3{0, 0, 0}, options.Width, options.Height)
	registry := game.NewUnitRegistry()
	collisions := util.NewCollisionWorld()
	physics := game.NewPhysicsSync(collisions)
	for _, unit := range spawnUnitGrid(options.UnitCount, config) {
		registry.Add(unit)
		physics.AddUnitBody(unit, config.UnitsLayer)
	}

	simulation := game.NewSimulation(registry, game.Collaborators{
		Projector: camera,
		Picker:    camera,
		Caster:    collisions,
		Visuals:   game.NewVisualScales(),
		Physics:   physics,
	}, config)

	client := &BattleClient{
		window:     window,
		input:      NewGlfwInput(window, camera),
		camera:     camera,
		registry:   registry,
		simulation: simulation,
		title:      options.Title,
	}
	simulation.SelectionManager().AddObserver(client)
	mainthread.Call(func() {
		window.SetSizeCallback(client.onResize)
	})
	return client
}

// spawnUnitGrid places count soldiers on a square grid around the origin.
func spawnUnitGrid(count int, config game.Config) []*game.Unit {
	const spacing = 3
	columns := 1
	for columns*columns < count {
		columns++
	}
	offset := float32(columns-1) * spacing / 2
	units := make([]*game.Unit, 0, count)
	for i := 0; i < count; i++ {
		position := mgl32.Vec3{float32(i%columns)*spacing - offset, 0, float32(i/columns)*spacing - offset}
		units = append(units, game.NewSoldier(game.UnitID(i+1), fmt.Sprintf("Soldier #%d", i+1), position, config))
	}
	return units
}

func (a *BattleClient) loop() {
	var previousTime float64
	mainthread.Call(func() {
		previousTime = glfw.GetTime()
	})
	shouldQuit := false
	for !shouldQuit {
		var frame game.InputFrame
		var cameraMoved bool
		var movementVector [2]int
		var elapsed float64
		mainthread.Call(func() {
			glfw.PollEvents()
			shouldQuit = a.input.ShouldQuit()
			frame = a.input.Poll()
			cameraMoved, movementVector = a.input.PollCameraMovement()
			now := glfw.GetTime()
			elapsed = now - previousTime
			previousTime = now
		})
		if cameraMoved {
			a.camera.MoveInDirection(float32(elapsed), movementVector)
			util.LogSystemDebug(fmt.Sprintf("[BattleClient] Camera moved\n%s", a.camera.DebugString()))
		}
		a.simulation.Tick(elapsed, frame)
		if a.simulation.Ticks()%30 == 0 {
			a.updateTitle()
		}
		if elapsed < 1.0/120.0 {
			mainthread.Call(func() {
				glfw.WaitEventsTimeout(1.0/120.0 - elapsed)
			})
		}
	}
	util.LogSystemInfo(fmt.Sprintf("[BattleClient] Closing after %d ticks\n%s", a.simulation.Ticks(), a.simulation.TimingReport()))
}

// onResize runs inside glfw.PollEvents on the main thread while the tick loop waits for it.
func (a *BattleClient) onResize(_ *glfw.Window, width, height int) {
	if width <= 0 || height <= 0 {
		return
	}
	a.camera.SetWindowSize(width, height)
	util.LogSystemDebug(fmt.Sprintf("[BattleClient] Window resized to %dx%d", width, height))
}

func (a *BattleClient) updateTitle() {
	selected := len(a.registry.Selected())
	moving := 0
	for _, unit := range a.registry.Units() {
		if unit.Velocity.Linear.LenSqr() > 0 {
			moving++
		}
	}
	status := fmt.Sprintf("%s - %d selected, %d moving", a.title, selected, moving)
	if a.dragging {
		status += " (selecting)"
	}
	mainthread.CallNonBlock(func() {
		a.window.SetTitle(status)
	})
}

func (a *BattleClient) OnSelectionAreaStart(start mgl32.Vec2) {
	a.dragging = true
	util.LogSelectionDebug(fmt.Sprintf("[BattleClient] Selection area started at %v", start))
}

func (a *BattleClient) OnSelectionAreaEnd(rect game.Rect, selected []game.UnitID) {
	a.dragging = false
	util.LogSelectionInfo(fmt.Sprintf("[BattleClient] %v selected %v", rect, selected))
}
