package profile

import (
	"math"
	"testing"

	"github.com/df-mc/dragonfly/server/item"
	"github.com/go-gl/mathgl/mgl64"
	"github.com/oomph-ac/aimpreview/game"
	"github.com/oomph-ac/aimpreview/tuning"
	"github.com/stretchr/testify/require"
)

type mockActor struct {
	eye        mgl64.Vec3
	yaw, pitch float64
	vel        mgl64.Vec3
	using      bool
	useTicks   int
	hand       Hand
	arm        Arm
}

func (m mockActor) EyePosition(float64) mgl64.Vec3 { return m.eye }
func (m mockActor) LookDirection(float64) mgl64.Vec3 {
	return game.DirectionVector(m.yaw, m.pitch)
}
func (m mockActor) Rotation(float64) (float64, float64) { return m.yaw, m.pitch }
func (m mockActor) Velocity() mgl64.Vec3                { return m.vel }
func (m mockActor) UsingItem() bool                     { return m.using }
func (m mockActor) UseTicks() int                       { return m.useTicks }
func (m mockActor) ActiveHand() Hand                    { return m.hand }
func (m mockActor) MainArm() Arm                        { return m.arm }

type mockRaycaster struct {
	hit game.RayHit
	ok  bool
}

func (m mockRaycaster) Raycast(mgl64.Vec3, mgl64.Vec3) (game.RayHit, bool) { return m.hit, m.ok }

func requireVecInDelta(t *testing.T, expected, actual mgl64.Vec3, delta float64) {
	t.Helper()
	for i := range 3 {
		require.InDelta(t, expected[i], actual[i], delta, "component %d of %v vs %v", i, expected, actual)
	}
}

func TestItemKindOf(t *testing.T) {
	require.Equal(t, ItemBow, ItemKindOf(item.Bow{}))
	require.Equal(t, ItemSnowball, ItemKindOf(item.Snowball{}))
	require.Equal(t, ItemNone, ItemKindOf(nil))
	require.Equal(t, ItemLingeringPotion, ItemKindByName("minecraft:lingering_potion"))
	require.Equal(t, ItemNone, ItemKindByName("minecraft:stick"))
}

func TestItemKindString(t *testing.T) {
	require.Equal(t, "minecraft:bow", ItemBow.String())
	require.Equal(t, "minecraft:egg", ItemEgg.String())
	require.Equal(t, "none", ItemNone.String())
	require.Equal(t, "none", ItemKind(200).String())

	for k := ItemBow; k <= ItemEgg; k++ {
		require.Equal(t, k, ItemKindByName(k.String()))
	}
}

func TestMatchUseStatePreconditions(t *testing.T) {
	idle := mockActor{}
	using := mockActor{using: true}

	_, ok := Match(idle, HeldItem{Kind: ItemBow})
	require.False(t, ok, "bow must be drawn")
	p, ok := Match(using, HeldItem{Kind: ItemBow})
	require.True(t, ok)
	require.Equal(t, KindBow, p.Kind)

	_, ok = Match(using, HeldItem{Kind: ItemCrossbow})
	require.False(t, ok, "crossbow must be charged")
	p, ok = Match(idle, HeldItem{Kind: ItemCrossbow, Charged: true})
	require.True(t, ok)
	require.Equal(t, KindCrossbow, p.Kind)

	_, ok = Match(idle, HeldItem{Kind: ItemTrident})
	require.False(t, ok, "trident must be wound up")
	p, ok = Match(using, HeldItem{Kind: ItemTrident})
	require.True(t, ok)
	require.Equal(t, KindTrident, p.Kind)

	_, ok = Match(using, HeldItem{Kind: ItemNone})
	require.False(t, ok)
}

func TestMatchThrowables(t *testing.T) {
	for kind, expected := range map[ItemKind]Kind{
		ItemWindCharge:       KindWindCharge,
		ItemExperienceBottle: KindExperienceBottle,
		ItemSplashPotion:     KindPotion,
		ItemLingeringPotion:  KindPotion,
		ItemEnderPearl:       KindEnderPearl,
		ItemSnowball:         KindSnowball,
		ItemEgg:              KindSnowball,
	} {
		p, ok := Match(mockActor{}, HeldItem{Kind: kind})
		require.True(t, ok, "item kind %d", kind)
		require.Equal(t, expected, p.Kind)
		require.Equal(t, game.DefaultSteps, p.Steps)
		require.Equal(t, game.DefaultStepTime, p.StepTime)
	}
}

func TestProfileConstants(t *testing.T) {
	wind, _ := ByKind(KindWindCharge)
	require.Equal(t, 0.995, wind.Drag)
	require.Zero(t, wind.Gravity)

	xp, _ := ByKind(KindExperienceBottle)
	require.Equal(t, 0.07, xp.Gravity)

	pearl, _ := ByKind(KindEnderPearl)
	require.Equal(t, 0.03, pearl.Gravity)

	_, ok := ByKind(Kind(200))
	require.False(t, ok)
}

func TestMultishotFansIntoThreeVelocities(t *testing.T) {
	r := NewResolver(tuning.New(), nil)
	a := mockActor{yaw: 35, pitch: -12}
	held := HeldItem{Kind: ItemCrossbow, Charged: true, Multishot: 2}

	p, ok := Match(a, held)
	require.True(t, ok)
	vels := r.StartVelocities(p, a, held, 0)
	require.Len(t, vels, 3)

	base := vels[1]
	bearing := func(v mgl64.Vec3) float64 {
		return mgl64.RadToDeg(math.Atan2(v.Z(), v.X()))
	}
	for i, expected := range []float64{-10, 0, 10} {
		require.InDelta(t, expected, bearing(vels[i])-bearing(base), 1e-9)
		require.Equal(t, base.Y(), vels[i].Y())
		require.InDelta(t, math.Hypot(base.X(), base.Z()), math.Hypot(vels[i].X(), vels[i].Z()), 1e-12)
	}
	require.InDelta(t, 3.15, base.Len(), 1e-9)
}

func TestCrossbowWithoutMultishot(t *testing.T) {
	r := NewResolver(nil, nil)
	held := HeldItem{Kind: ItemCrossbow, Charged: true}
	p, _ := Match(mockActor{}, held)
	require.Len(t, r.StartVelocities(p, mockActor{}, held, 0), 1)
}

func TestBowVelocityScalesWithPull(t *testing.T) {
	r := NewResolver(nil, nil)
	p, _ := ByKind(KindBow)

	require.Empty(t, r.StartVelocities(p, mockActor{using: true}, HeldItem{Kind: ItemBow}, 0.5))

	full := r.StartVelocities(p, mockActor{using: true, useTicks: 20}, HeldItem{Kind: ItemBow}, 0)
	require.Len(t, full, 1)
	requireVecInDelta(t, mgl64.Vec3{0, 0, 3}, full[0], 1e-9)

	half := r.StartVelocities(p, mockActor{using: true, useTicks: 10}, HeldItem{Kind: ItemBow}, 0)
	require.InDelta(t, 3*BowPullProgress(10), half[0].Len(), 1e-9)
}

func TestBowPullProgress(t *testing.T) {
	require.Zero(t, BowPullProgress(0))
	require.InDelta(t, (0.25+1.0)/3, BowPullProgress(10), 1e-12)
	require.Equal(t, 1.0, BowPullProgress(20))
	require.Equal(t, 1.0, BowPullProgress(400))
}

func TestActorVelocityIsInherited(t *testing.T) {
	r := NewResolver(nil, nil)
	p, _ := ByKind(KindSnowball)
	a := mockActor{vel: mgl64.Vec3{0.1, 0.2, -0.3}}

	vels := r.StartVelocities(p, a, HeldItem{Kind: ItemSnowball}, 0)
	requireVecInDelta(t, mgl64.Vec3{0.1, 0.2, 1.5 - 0.3}, vels[0], 1e-9)
}

func TestHandTipMirrorsForLeftArm(t *testing.T) {
	r := NewResolver(tuning.New(), nil)
	p, _ := ByKind(KindBow)
	eye := mgl64.Vec3{10, 65.62, -4}

	right := r.StartPosition(p, mockActor{eye: eye, using: true}, 0)
	requireVecInDelta(t, eye.Add(mgl64.Vec3{-0.35, -0.08, 0.45}), right, 1e-9)

	left := r.StartPosition(p, mockActor{eye: eye, using: true, arm: ArmLeft}, 0)
	requireVecInDelta(t, eye.Add(mgl64.Vec3{0.35, -0.08, 0.45}), left, 1e-9)

	offHand := r.StartPosition(p, mockActor{eye: eye, using: true, hand: HandOff}, 0)
	requireVecInDelta(t, left, offHand, 1e-12)
}

func TestStartPositionReadsTuning(t *testing.T) {
	tbl := tuning.New()
	require.NoError(t, tbl.Set("throwable", tuning.Offset{}))

	r := NewResolver(tbl, nil)
	p, _ := ByKind(KindEnderPearl)
	eye := mgl64.Vec3{1, 2, 3}
	requireVecInDelta(t, eye, r.StartPosition(p, mockActor{eye: eye, yaw: 72, pitch: 40}, 0), 1e-12)
}

func TestTridentRaiseIsCapped(t *testing.T) {
	tbl := tuning.New()
	require.NoError(t, tbl.Set("trident", tuning.Offset{}))
	r := NewResolver(tbl, nil)
	p, _ := ByKind(KindTrident)

	early := r.StartPosition(p, mockActor{using: true, useTicks: 2}, 0.5)
	requireVecInDelta(t, mgl64.Vec3{0, 2.5 * tridentRaisePerTick, 2.5 * tridentForwardPerTick}, early, 1e-12)

	late := r.StartPosition(p, mockActor{using: true, useTicks: 100}, 0)
	requireVecInDelta(t, mgl64.Vec3{0, tridentMaxRaise, tridentMaxForward}, late, 1e-12)
}

func TestAimTowardsCrosshairHit(t *testing.T) {
	target := mgl64.Vec3{0, 0, 8}
	r := NewResolver(tuning.New(), mockRaycaster{hit: game.RayHit{Position: target}, ok: true})
	p, _ := ByKind(KindSnowball)
	a := mockActor{}

	start := r.StartPosition(p, a, 0)
	vels := r.StartVelocities(p, a, HeldItem{Kind: ItemSnowball}, 0)
	requireVecInDelta(t, target.Sub(start).Normalize().Mul(1.5), vels[0], 1e-9)
}

func TestAimFallsBackToRayEnd(t *testing.T) {
	r := NewResolver(tuning.New(), mockRaycaster{})
	r.AimDistance = 50
	p, _ := ByKind(KindWindCharge)
	a := mockActor{yaw: 90}

	start := r.StartPosition(p, a, 0)
	end := a.LookDirection(0).Mul(50)
	vels := r.StartVelocities(p, a, HeldItem{Kind: ItemWindCharge}, 0)
	requireVecInDelta(t, end.Sub(start).Normalize().Mul(1.6), vels[0], 1e-9)
}

func TestUnderhandThrowArcsUpwards(t *testing.T) {
	r := NewResolver(tuning.New(), nil)
	p, _ := ByKind(KindPotion)
	a := mockActor{}

	vels := r.StartVelocities(p, a, HeldItem{Kind: ItemSplashPotion}, 0)
	require.Len(t, vels, 1)
	require.InDelta(t, 0.5, vels[0].Len(), 1e-9)
	require.Greater(t, vels[0].Y(), 0.0)

	raised := game.DirectionVector(0, underhandPitch)
	expected := game.LerpVec64(mgl64.Vec3{0, 0, 1}, raised, underhandBlend).Normalize().Mul(0.5)
	requireVecInDelta(t, expected, vels[0], 1e-12)
}
