// Package playing provides the main gameplay scene.
package playing

import (
	"fmt"
	"log/slog"
	"math/rand"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/younwookim/flipstrike/internal/application/replay"
	"github.com/younwookim/flipstrike/internal/application/scene"
	"github.com/younwookim/flipstrike/internal/application/state"
	"github.com/younwookim/flipstrike/internal/application/system"
	"github.com/younwookim/flipstrike/internal/domain/entity"
	"github.com/younwookim/flipstrike/internal/domain/gesture"
	"github.com/younwookim/flipstrike/internal/infrastructure/config"
)

// GestureKey is the single button every gesture is read from
const GestureKey = ebiten.KeySpace

// Options configures optional Playing features
type Options struct {
	// RecordPath enables input recording when not empty.
	RecordPath string
	// Seed fixes the RNG seed; zero picks one from the clock.
	Seed int64
	// Loader and Reloads enable config hot reload. A reload applies on the next restart.
	Loader  *config.Loader
	Reloads <-chan string
	Logger  *slog.Logger
}

// Playing is the main gameplay scene
type Playing struct {
	config *config.GameConfig
	state  state.GameState
	player *entity.Player
	logger *slog.Logger

	inputSystem   *system.InputSystem
	gestureSystem *system.GestureSystem
	physicsSystem *system.PhysicsSystem
	combatSystem  *system.CombatSystem

	// Feedback
	attackFlash  float64
	attackRadius float64
	survived     float64

	// Deterministic RNG
	rng       *rand.Rand
	seed      int64
	fixedSeed bool

	// Config hot reload
	loader  *config.Loader
	reloads <-chan string
	pending *config.GameConfig

	// Input recording
	recorder       *replay.Recorder
	recordFilename string
}

// New creates a new Playing scene
func New(cfg *config.GameConfig, opts Options) (*Playing, error) {
	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}

	seed := opts.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	p := &Playing{
		state:          state.StatePlaying,
		logger:         logger,
		inputSystem:    system.NewInputSystem(GestureKey),
		rng:            rand.New(rand.NewSource(seed)),
		seed:           seed,
		fixedSeed:      opts.Seed != 0,
		loader:         opts.Loader,
		reloads:        opts.Reloads,
		recordFilename: opts.RecordPath,
	}
	if err := p.build(cfg); err != nil {
		return nil, err
	}

	if opts.RecordPath != "" {
		p.recorder = replay.NewRecorder(seed, cfg.Display.Framerate, replay.SettingsFor(cfg.Gesture.Classifier()))
		logger.Info("recording enabled", "path", opts.RecordPath, "seed", seed)
	}

	return p, nil
}

// build creates the per-config systems and a fresh player
func (p *Playing) build(cfg *config.GameConfig) error {
	gestures, err := system.NewGestureSystem(cfg.Gesture.Classifier(), p.logger)
	if err != nil {
		return fmt.Errorf("gesture system: %w", err)
	}

	p.config = cfg
	p.gestureSystem = gestures
	p.physicsSystem = system.NewPhysicsSystem(cfg.Physics)
	p.combatSystem = system.NewCombatSystem(cfg, p.rng)
	p.combatSystem.OnKill = func(e *entity.Enemy) {
		p.logger.Debug("enemy killed", "id", e.ID)
	}
	p.player = p.newPlayer()
	return nil
}

func (p *Playing) newPlayer() *entity.Player {
	cfg := p.config
	player := entity.NewPlayer(cfg.Player.X, 0, cfg.Player.Width, cfg.Player.Height, cfg.Player.MaxHealth)
	player.Y = p.physicsSystem.SurfaceY(player.H, player.GravityDir)
	player.OnSurface = true
	return player
}

// OnEnter implements scene.Scene
func (p *Playing) OnEnter() {}

// OnExit implements scene.Scene
func (p *Playing) OnExit() {
	if p.recorder != nil && p.recorder.IsRecording() {
		p.saveRecording()
	}
}

// Update proceeds the game state (implements scene.Scene)
func (p *Playing) Update(dt float64) (scene.Scene, error) {
	p.pollReload()

	switch p.state {
	case state.StatePlaying:
		if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
			p.state = state.StatePaused
			return nil, nil
		}
		// F5: Save recording manually
		if inpututil.IsKeyJustPressed(ebiten.KeyF5) && p.recorder != nil {
			p.saveRecording()
		}
		// A release sampled while paused never reached the classifier
		p.Step(p.gestureSystem.Reconcile(p.inputSystem.GetInput()), dt)
	case state.StatePaused:
		if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
			p.state = state.StatePlaying
		}
	case state.StateGameOver:
		if inpututil.IsKeyJustPressed(ebiten.KeyEnter) {
			p.Restart()
		}
	}

	return nil, nil // nil = stay on this scene
}

// Step runs one gameplay tick with the given gesture input.
// The gesture is resolved first so its consumers act on it in the same tick.
func (p *Playing) Step(input gesture.Input, dt float64) {
	if !p.state.AcceptsGestures() {
		return
	}

	if p.recorder != nil {
		p.recorder.RecordFrame(input)
	}

	p.apply(p.gestureSystem.Update(input, dt))
	p.physicsSystem.Update(p.player, dt)
	p.combatSystem.Update(p.player, dt)

	p.survived += dt
	if p.attackFlash > 0 {
		p.attackFlash -= dt
	}

	if !p.player.IsAlive() {
		p.state = state.StateGameOver
		p.logger.Info("game over", "survived", p.survived, "kills", p.combatSystem.Kills())
		// Auto-save recording on game over; Restart resumes it
		if p.recorder != nil {
			p.saveRecording()
			p.recorder.Stop()
		}
	}
}

// apply hands an intent to the collaborator that consumes it
func (p *Playing) apply(intent system.Intent) {
	switch it := intent.(type) {
	case system.LightAttackIntent:
		hits := p.combatSystem.LightAttack(p.player)
		p.flash(p.config.Combat.Light.Radius)
		p.logger.Debug("light attack", "hits", hits)
	case system.ChargeStartIntent:
		p.player.Charging = true
	case system.ChargedAttackIntent:
		p.player.Charging = false
		hits := p.combatSystem.ChargedAttack(p.player)
		p.flash(p.config.Combat.Charged.Radius)
		p.logger.Debug("charged attack", "charge", it.Charge, "hits", hits)
	case system.GravityFlipIntent:
		p.player.FlipGravity()
	}
}

func (p *Playing) flash(radius float64) {
	p.attackRadius = radius
	p.attackFlash = 0.12
}

// ChargeMeterFill returns the charge meter fill and whether the meter is visible
func (p *Playing) ChargeMeterFill() (float64, bool) {
	d, ok := p.gestureSystem.ChargeDuration()
	if !ok {
		return 0, false
	}
	return system.ChargeMeterFill(d, p.config.ChargeMeter.MaxVisualChargeTime), true
}

// Restart begins a new session. Gesture tracking is reset and a pending
// config reload takes effect here.
func (p *Playing) Restart() {
	if !p.fixedSeed {
		p.seed = time.Now().UnixNano()
	}
	p.rng.Seed(p.seed)

	if p.pending != nil {
		cfg := p.pending
		p.pending = nil
		if err := p.build(cfg); err != nil {
			p.logger.Warn("reloaded config rejected", "err", err)
		} else {
			p.logger.Info("reloaded config applied")
		}
	}

	p.gestureSystem.Reset()
	p.combatSystem.Reset()
	p.player = p.newPlayer()
	p.state = state.StatePlaying
	p.survived = 0
	p.attackFlash = 0

	if p.recorder != nil {
		p.recorder.Restart(p.seed, replay.SettingsFor(p.config.Gesture.Classifier()))
		p.logger.Info("recording restarted", "seed", p.seed)
	}
}

// pollReload picks up config file changes without blocking
func (p *Playing) pollReload() {
	if p.reloads == nil || p.loader == nil {
		return
	}
	select {
	case name, ok := <-p.reloads:
		if !ok {
			p.reloads = nil
			return
		}
		cfg, err := p.loader.LoadGame()
		if err != nil {
			p.logger.Warn("config reload failed", "file", name, "err", err)
			return
		}
		p.pending = cfg
		p.logger.Info("config reloaded; applies on restart", "file", name)
	default:
	}
}

// saveRecording saves the current recording to file
func (p *Playing) saveRecording() {
	if p.recorder == nil {
		return
	}

	filename := p.recordFilename
	if filename == "" {
		filename = replay.GenerateFilename()
	}

	if err := p.recorder.Save(filename); err != nil {
		p.logger.Warn("failed to save recording", "err", err)
	} else {
		p.logger.Info("recording saved", "path", filename, "frames", p.recorder.FrameCount())
	}
}

// State returns the session state
func (p *Playing) State() state.GameState {
	return p.state
}

// Player returns the player entity
func (p *Playing) Player() *entity.Player {
	return p.player
}
