// internal/config/config.go
package config

import "image/color"

const (
	ScreenWidth  = 1280
	ScreenHeight = 640
	WaterLine    = 540 // y of the sea surface; the player's boat floats on it
	WaterHeight  = 100

	TicksPerSecond = 60.0 // nominal update rate the time scale is normalized to
	MaxDeltaTime   = 0.06 // seconds; longer frames are clamped

	AnimationFPS = 20.0

	// Projectiles leaving this vertical band are dropped with a splash.
	ProjectileMinY = -ScreenHeight
	ProjectileMaxY = ScreenHeight
	// Horizontal margin beyond the screen before a projectile is silently dropped.
	ProjectileMarginX = ScreenWidth

	DefaultCooldown = 60.0 // ticks between shots when no firespeed is given

	PlayerStartX     = 640
	PlayerStartY     = WaterLine
	PlayerSpeed      = 4.0
	PlayerMaxHealth  = 100
	PlayerCooldown   = 30.0
	PlayerExpPerStep = 100 // exp above this threshold levels the player up
	WaveExpBase      = 12  // exp granted per spawned enemy, divided by player level

	LobShotLevel     = 2
	RearTurretLevel  = 3
	RearTurretSlot   = 1
	MaxDisplayLevels = 5

	WaveSpawnSpacing = 140.0 // horizontal distance between copies of an archetype within a wave

	HealthBarHeight = 5
	HealthBarGap    = 5

	ClickCooldown = 300 // ms
)

// Sound IDs understood by the audio service.
const (
	SoundFire   = "fire1"
	SoundFire2  = "fire2"
	SoundDead   = "dead"
	SoundDamage = "damage"
	SoundSplash = "splash"
)

// Sprite keys for the player ship.
const (
	PlayerSprite       = "sprite_enemy_mediumboat_main"
	PlayerDeathSprite  = "sprite_explosion_medium"
	PlayerFrontTurret  = "sprite_enemy_mediumboat_frontturret"
	PlayerRearTurret   = "sprite_enemy_mediumboat_frontturret"
	PlayerShotSprite   = "sprite_enemy_shot_rotating"
	PlayerTurretBullet = "sprite_enemy_shot_pulse"
)

var (
	BackgroundColor   = color.RGBA{20, 20, 30, 255}
	WaterColor        = color.RGBA{0, 127, 255, 255}
	HealthBackColor   = color.RGBA{127, 127, 127, 255}
	HealthFillColor   = color.RGBA{0, 127, 0, 255}
	ExpFillColor      = color.RGBA{70, 100, 120, 220}
	TextLightColor    = color.RGBA{240, 240, 240, 255}
	BossWaveColor     = color.RGBA{220, 60, 60, 255}
	PauseOverlay      = color.RGBA{0, 0, 0, 128}
	SpeedButtonColors = []color.Color{
		color.RGBA{70, 130, 180, 220},  // x1
		color.RGBA{220, 60, 60, 220},   // x2
		color.RGBA{194, 178, 128, 255}, // x4
	}
	SpeedMultipliers = []float64{1, 2, 4}
)
