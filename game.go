package main

import (
	"fmt"
	"log"

	"github.com/ebitenui/ebitenui"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/jakecoffman/cp"
	"github.com/milk9111/platformer/ecs"
	"github.com/milk9111/platformer/ecs/entity"
	"github.com/milk9111/platformer/ecs/system"
	"github.com/milk9111/platformer/levels"
	"github.com/milk9111/platformer/prefabs"
)

const (
	baseWidth  = 1280
	baseHeight = 720
	tps        = 60
)

type Options struct {
	Level        string
	Debug        bool
	AllAbilities bool
	Watch        bool
}

// Game hosts the world. The fixed schedule runs input, motion and physics;
// the frame schedule runs the camera and the shake compositor.
type Game struct {
	world  *ecs.World
	fixed  *ecs.Scheduler
	frame  *ecs.Scheduler
	render *system.RenderSystem

	motion   *system.MotionSystem
	feedback *system.FeedbackSystem
	gate     *system.ScriptAbilityGate
	watcher  *prefabs.Watcher

	player ecs.Entity
	camera ecs.Entity
	opts   Options
	paused bool
	quit   bool

	pauseUI *ebitenui.UI
}

func NewGame(opts Options) (*Game, error) {
	lvl, err := levels.LoadLevel(opts.Level)
	if err != nil {
		return nil, err
	}

	gravity := lvl.Gravity
	if gravity == 0 {
		gravity = -30
	}
	world := ecs.NewWorld()
	world.SetPhysicsWorld(ecs.NewPhysicsWorld(cp.Vector{X: 0, Y: gravity}))
	if err := entity.LoadLevel(world, lvl); err != nil {
		return nil, err
	}

	playerSpec, err := prefabs.LoadPlayerSpec()
	if err != nil {
		return nil, err
	}
	if opts.AllAbilities {
		playerSpec.Abilities = prefabs.AbilitiesSpec{Jumps: 3, WallJumps: 99, Dashes: 2}
	}
	player, err := entity.NewPlayerFromSpec(world, playerSpec, lvl.Spawn.X, lvl.Spawn.Y)
	if err != nil {
		return nil, err
	}
	camera, err := entity.NewCameraAt(world, lvl.Spawn.X, lvl.Spawn.Y)
	if err != nil {
		return nil, err
	}

	shakes, err := prefabs.LoadShakesSpec()
	if err != nil {
		log.Printf("game: shakes disabled: %v", err)
		shakes = &prefabs.ShakesSpec{}
	}

	g := &Game{
		world:  world,
		player: player,
		camera: camera,
		opts:   opts,
		render: system.NewRenderSystem(),
	}
	g.render.HUD = opts.Debug
	g.pauseUI = NewPauseUI(g)

	var gate system.AbilityGate = system.AbilitiesGate{}
	if playerSpec.AbilityGate != "" {
		scriptGate, err := system.NewScriptAbilityGate(playerSpec.AbilityGate)
		if err != nil {
			log.Printf("game: ability script disabled: %v", err)
		} else {
			g.gate = scriptGate
			gate = scriptGate
		}
	}

	g.motion = system.NewMotionSystem(nil, gate)
	g.motion.Debug = opts.Debug
	g.feedback = system.NewFeedbackSystem(shakes.Presets)
	g.fixed = ecs.NewScheduler(
		system.NewInputSystem(),
		g.motion,
		system.NewPhysicsSystem(),
		system.NewBumpSystem(nil),
		system.NewCameraSubjectSystem(),
		system.NewLockZoneSystem(),
		g.feedback,
	)
	g.frame = ecs.NewScheduler(
		system.NewCameraSystem(),
		system.NewScreenShakeSystem(),
	)

	if opts.Watch {
		watcher, err := prefabs.NewWatcher("prefabs", "prefabs/scripts")
		if err != nil {
			log.Printf("game: hot reload disabled: %v", err)
		} else {
			g.watcher = watcher
		}
	}

	return g, nil
}

func (g *Game) Update() error {
	if g.quit {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) || inpututil.IsKeyJustPressed(ebiten.KeyP) {
		g.togglePause()
	}
	g.reload()

	dt := 1.0 / float64(ebiten.TPS())
	if g.paused {
		g.pauseUI.Update()
	} else {
		g.fixed.Update(g.world, dt)
	}
	g.frame.Update(g.world, dt)
	g.world.Events().Clear()
	return nil
}

func (g *Game) reload() {
	if g.watcher == nil {
		return
	}
	for _, change := range g.watcher.Poll() {
		var err error
		switch change.Kind {
		case prefabs.SpecPlayer:
			var spec *prefabs.PlayerSpec
			if spec, err = prefabs.LoadPlayerSpec(); err == nil {
				err = entity.ApplyPlayerSpec(g.world, g.player, spec)
			}
		case prefabs.SpecCamera:
			var spec *prefabs.CameraSpec
			if spec, err = prefabs.LoadCameraSpec(); err == nil {
				entity.ApplyCameraSpec(g.world, g.camera, spec)
			}
		case prefabs.SpecShakes:
			var spec *prefabs.ShakesSpec
			if spec, err = prefabs.LoadShakesSpec(); err == nil {
				g.feedback.Presets = spec.Presets
			}
		case prefabs.SpecScript:
			if g.gate != nil {
				err = g.gate.Reload()
			}
		default:
			continue
		}
		if err != nil {
			log.Printf("game: reload %s: %v", change.Path, err)
			continue
		}
		log.Printf("game: reloaded %s", change.Path)
	}
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.render.Draw(g.world, screen)
	if g.opts.Debug {
		system.DrawPhysicsDebug(g.world, screen)
	}
	if g.paused {
		g.pauseUI.Draw(screen)
	}
}

func (g *Game) togglePause() {
	g.paused = !g.paused
}

func (g *Game) resume() {
	g.paused = false
}

// requestQuit ends the run loop on the next update.
func (g *Game) requestQuit() {
	g.paused = false
	g.quit = true
}

func (g *Game) Close() error {
	if g.watcher == nil {
		return nil
	}
	if err := g.watcher.Close(); err != nil {
		return fmt.Errorf("game: close watcher: %w", err)
	}
	return nil
}

func (g *Game) LayoutF(outsideWidth, outsideHeight float64) (float64, float64) {
	return baseWidth, baseHeight
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	panic("shouldn't use Layout")
}
