package physics

import (
	"math"
	"testing"
	"time"

	"github.com/jakecoffman/cp"
	"github.com/milk9111/dashcore/level"
)

const tick = 20 * time.Millisecond

var block16 = cp.Vector{X: 16, Y: 16}

func buildGrid(t *testing.T, fill func(b *level.Builder)) *level.Grid {
	t.Helper()
	b := level.NewBuilder(cp.Vector{}, block16).SetSpawn(cp.Vector{})
	if fill != nil {
		fill(b)
	}
	g, err := b.Build()
	if err != nil {
		t.Fatalf("build grid: %v", err)
	}
	return g
}

func near(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}

func TestStepAcceleratesTowardMaxVel(t *testing.T) {
	tun := DefaultTuning()
	it := NewIntegrator(tun, buildGrid(t, nil))
	body := NewBody(cp.Vector{}, tun)
	body.Grounded = true
	dash := NewDash(tun)

	dt := time.Second / 60
	prevX, prevVX := body.Position.X, body.Velocity.X
	for i := 0; i < 5; i++ {
		in := Intent{Direction: cp.Vector{X: 1}}
		it.Step(&body, &dash, &in, dt)
		if body.Position.X <= prevX {
			t.Fatalf("tick %d: x did not increase: %v -> %v", i, prevX, body.Position.X)
		}
		if body.Velocity.X <= prevVX || body.Velocity.X > tun.MaxVel {
			t.Fatalf("tick %d: vx not approaching max: %v -> %v", i, prevVX, body.Velocity.X)
		}
		prevX, prevVX = body.Position.X, body.Velocity.X
	}
}

func TestStepClampsHorizontalSpeed(t *testing.T) {
	tun := DefaultTuning()
	g := buildGrid(t, func(b *level.Builder) { b.Repeat(-10, 0, 200, 0) })

	cases := []struct {
		name   string
		vx     float64
		dir    float64
		ticks  int
		wantVX float64
	}{
		{"overspeed_right", 1000, 1, 1, tun.MaxVel},
		{"overspeed_left", -1000, -1, 1, -tun.MaxVel},
		{"long_run", 0, 1, 300, tun.MaxVel},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			it := NewIntegrator(tun, g)
			body := NewBody(cp.Vector{X: 40, Y: 24}, tun)
			body.Velocity.X = c.vx
			dash := NewDash(tun)
			for i := 0; i < c.ticks; i++ {
				in := Intent{Direction: cp.Vector{X: c.dir}}
				it.Step(&body, &dash, &in, tick)
				if math.Abs(body.Velocity.X) > tun.MaxVel {
					t.Fatalf("tick %d: |vx| %v exceeds %v", i, body.Velocity.X, tun.MaxVel)
				}
			}
			if body.Velocity.X != c.wantVX {
				t.Fatalf("expected vx %v, got %v", c.wantVX, body.Velocity.X)
			}
		})
	}
}

func TestStepDashStart(t *testing.T) {
	tun := DefaultTuning()
	it := NewIntegrator(tun, buildGrid(t, nil))
	body := NewBody(cp.Vector{X: 200, Y: 200}, tun)
	dash := NewDash(tun)
	dash.Charges = 2

	in := Intent{Direction: cp.Vector{X: 1}, Dash: true}
	res, ok := it.ResolveDash(&body, &dash, &in)
	if !ok || !res.DashStarted {
		t.Fatalf("expected dash to start, got %+v ok=%v", res, ok)
	}
	if in.Dash {
		t.Fatalf("expected dash request to be consumed")
	}
	if body.Velocity != (cp.Vector{X: tun.DashSpeed}) {
		t.Fatalf("expected velocity (%v,0), got %v", tun.DashSpeed, body.Velocity)
	}

	// The rest of the tick integrates the opposing acceleration only.
	body = NewBody(cp.Vector{X: 200, Y: 200}, tun)
	dash = NewDash(tun)
	dash.Charges = 2
	in = Intent{Direction: cp.Vector{X: 1}, Dash: true}
	it.Step(&body, &dash, &in, tick)

	if dash.State != Dashing {
		t.Fatalf("expected dashing, got %v", dash.State)
	}
	if dash.Charges != 1 {
		t.Fatalf("expected 1 charge left, got %d", dash.Charges)
	}
	if body.Gravity != 0 || body.Friction != 0 {
		t.Fatalf("expected gravity and friction cleared, got %v %v", body.Gravity, body.Friction)
	}
	wantVX := tun.DashSpeed - tun.DashAccel*tick.Seconds()
	if !near(body.Velocity.X, wantVX) || body.Velocity.Y != 0 {
		t.Fatalf("expected velocity (%v,0), got %v", wantVX, body.Velocity)
	}
	if dash.Start != (cp.Vector{X: 200, Y: 200}) {
		t.Fatalf("expected start recorded at spawn, got %v", dash.Start)
	}
}

func TestStepDashWithoutChargesCancels(t *testing.T) {
	tun := DefaultTuning()
	it := NewIntegrator(tun, buildGrid(t, nil))
	body := NewBody(cp.Vector{X: 50, Y: 60}, tun)
	body.Velocity = cp.Vector{X: 40, Y: -30}
	body.Acceleration = cp.Vector{X: 1200}
	dash := NewDash(tun)
	dash.Charges = 0

	before := body
	in := Intent{Direction: cp.Vector{X: 1}, Dash: true}
	res := it.Step(&body, &dash, &in, tick)

	if !res.DashCancelled || dash.State != DashCancelled {
		t.Fatalf("expected cancelled, got %v (%+v)", dash.State, res)
	}
	if dash.Charges != 0 {
		t.Fatalf("charges changed to %d", dash.Charges)
	}
	if body.Velocity != before.Velocity || body.Acceleration != before.Acceleration {
		t.Fatalf("expected kinematics unchanged, got v=%v a=%v", body.Velocity, body.Acceleration)
	}
	if body.Position != before.Position {
		t.Fatalf("expected tick skipped, position moved to %v", body.Position)
	}

	in = Intent{}
	it.Step(&body, &dash, &in, tick)
	if dash.State != DashReady {
		t.Fatalf("expected ready after cancel, got %v", dash.State)
	}
	if body.Position == before.Position {
		t.Fatalf("expected physics to resume after cancel")
	}
}

func TestStepIgnoresDashWhileDashing(t *testing.T) {
	tun := DefaultTuning()
	it := NewIntegrator(tun, buildGrid(t, nil))
	body := NewBody(cp.Vector{X: 200, Y: 200}, tun)
	dash := NewDash(tun)
	dash.Charges = 3

	in := Intent{Dash: true}
	it.Step(&body, &dash, &in, tick)
	in = Intent{Dash: true}
	it.Step(&body, &dash, &in, tick)

	if dash.State != Dashing || dash.Charges != 2 {
		t.Fatalf("expected single dash, got %v with %d charges", dash.State, dash.Charges)
	}
}

func TestStepRefillsChargesWhenGrounded(t *testing.T) {
	tun := DefaultTuning()
	tun.MaxDashCharges = 2
	g := buildGrid(t, func(b *level.Builder) { b.Repeat(0, 0, 20, 0) })

	cases := []struct {
		name     string
		grounded bool
		state    DashState
		want     int
	}{
		{"grounded_ready", true, DashReady, 2},
		{"airborne_ready", false, DashReady, 0},
		{"grounded_dashing", true, Dashing, 0},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			it := NewIntegrator(tun, g)
			body := NewBody(cp.Vector{X: 100, Y: 24}, tun)
			if !c.grounded {
				body.Position.Y = 200
			}
			body.Grounded = c.grounded
			dash := NewDash(tun)
			dash.Charges = 0
			dash.State = c.state
			in := Intent{}
			it.Step(&body, &dash, &in, tick)
			if dash.Charges != c.want {
				t.Fatalf("expected %d charges, got %d", c.want, dash.Charges)
			}
		})
	}
}

func TestStepJumpOnlyWhenGrounded(t *testing.T) {
	tun := DefaultTuning()
	g := buildGrid(t, func(b *level.Builder) { b.Repeat(0, 0, 20, 0) })
	it := NewIntegrator(tun, g)

	body := NewBody(cp.Vector{X: 100, Y: 24}, tun)
	body.Grounded = true
	dash := NewDash(tun)
	in := Intent{Jump: true}
	it.Step(&body, &dash, &in, tick)

	if in.Jump {
		t.Fatalf("expected jump to be consumed")
	}
	wantVY := tun.JumpSpeed - tun.Gravity*tick.Seconds()
	if !near(body.Velocity.Y, wantVY) || body.Grounded || body.Position.Y <= 24 {
		t.Fatalf("expected lift-off, got v=%v y=%v grounded=%v", body.Velocity, body.Position.Y, body.Grounded)
	}

	in = Intent{Jump: true}
	vy := body.Velocity.Y
	it.Step(&body, &dash, &in, tick)
	if body.Velocity.Y >= vy {
		t.Fatalf("expected no air jump, vy %v -> %v", vy, body.Velocity.Y)
	}
}

func TestStepWallBlocksX(t *testing.T) {
	tun := DefaultTuning()
	// Tile (7,6) covers x 112..128, y 96..112.
	g := buildGrid(t, func(b *level.Builder) { b.AddTile(7, 6) })

	cases := []struct {
		name  string
		x     float64
		vx    float64
		dir   float64
		block bool
	}{
		{"touching", 104, 200, 1, true},
		{"within_probe", 103, 60, 1, true},
		{"moving_away", 104, -200, -1, false},
		{"far", 40, 100, 1, false},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			it := NewIntegrator(tun, g)
			body := NewBody(cp.Vector{X: c.x, Y: 104}, tun)
			body.Velocity.X = c.vx
			dash := NewDash(tun)
			in := Intent{Direction: cp.Vector{X: c.dir}}
			res := it.Step(&body, &dash, &in, tick)

			if res.HitWall != c.block {
				t.Fatalf("expected hit wall %v, got %+v", c.block, res)
			}
			if c.block {
				if body.Position.X != c.x {
					t.Fatalf("expected x to stay at %v, got %v", c.x, body.Position.X)
				}
				if body.Position.X+g.HalfBlock().X > 112 {
					t.Fatalf("body edge %v passed the wall", body.Position.X+g.HalfBlock().X)
				}
				if body.Friction != 0 {
					t.Fatalf("expected friction cleared on wall contact, got %v", body.Friction)
				}
				return
			}
			if body.Position.X == c.x {
				t.Fatalf("expected x to advance")
			}
		})
	}
}

func TestStepRestsOnFloor(t *testing.T) {
	tun := DefaultTuning()
	g := buildGrid(t, func(b *level.Builder) { b.Repeat(0, 0, 30, 0) })
	it := NewIntegrator(tun, g)

	body := NewBody(cp.Vector{X: 100, Y: 24}, tun)
	body.Velocity.X = 50
	dash := NewDash(tun)

	for i := 0; i < 60; i++ {
		in := Intent{}
		it.Step(&body, &dash, &in, tick)
		if !body.Grounded {
			t.Fatalf("tick %d: expected grounded", i)
		}
	}
	if body.Velocity != (cp.Vector{}) {
		t.Fatalf("expected body at rest, got %v", body.Velocity)
	}
	if body.Acceleration.X != 0 || body.Friction != 0 {
		t.Fatalf("expected no residual forces, got a=%v f=%v", body.Acceleration, body.Friction)
	}
	if body.Position.Y != 24 {
		t.Fatalf("expected to stay on the floor, y=%v", body.Position.Y)
	}
}

func TestStepCeilingStopsRise(t *testing.T) {
	tun := DefaultTuning()
	g := buildGrid(t, func(b *level.Builder) { b.Repeat(0, 10, 20, 0) })
	it := NewIntegrator(tun, g)

	// Ceiling row 10 spans y 160..176.
	body := NewBody(cp.Vector{X: 100, Y: 150}, tun)
	body.Velocity.Y = 300
	dash := NewDash(tun)
	in := Intent{}
	res := it.Step(&body, &dash, &in, tick)

	if !res.HitVertical || body.Velocity.Y != 0 || body.Position.Y != 152 {
		t.Fatalf("expected ceiling contact, got %+v v=%v y=%v", res, body.Velocity, body.Position.Y)
	}
}

func TestDashTimerFinishesAndResolves(t *testing.T) {
	tun := DefaultTuning()
	if tun.DashDuration != 200*time.Millisecond {
		t.Fatalf("unexpected default duration %v", tun.DashDuration)
	}
	it := NewIntegrator(tun, buildGrid(t, nil))
	start := cp.Vector{X: 200, Y: 200}
	body := NewBody(start, tun)
	dash := NewDash(tun)

	in := Intent{Direction: cp.Vector{X: 1}, Dash: true}
	finishedAt := -1
	for i := 1; i <= 10; i++ {
		it.Step(&body, &dash, &in, tick)
		in = Intent{}
		if dash.TickTimer(tick) {
			finishedAt = i
		}
	}
	if finishedAt != 10 || dash.State != DashFinished {
		t.Fatalf("expected finish on tick 10, got %d (%v)", finishedAt, dash.State)
	}
	end := body.Position

	res := it.Step(&body, &dash, &in, tick)
	if !res.DashResolved || dash.State != DashReady {
		t.Fatalf("expected ready one tick after finish, got %v", dash.State)
	}
	if dash.Distance != start.Distance(end) {
		t.Fatalf("expected distance %v, got %v", start.Distance(end), dash.Distance)
	}
	// 600*0.2 - 0.5*2000*0.2^2
	if math.Abs(dash.Distance-80) > 1e-6 {
		t.Fatalf("expected about 80 units, got %v", dash.Distance)
	}
	if body.Gravity != tun.Gravity {
		t.Fatalf("expected gravity restored, got %v", body.Gravity)
	}
}

func TestDashDirection(t *testing.T) {
	cases := []struct {
		name     string
		input    cp.Vector
		velocity cp.Vector
		want     cp.Vector
	}{
		{"input_wins", cp.Vector{X: -1}, cp.Vector{X: 5}, cp.Vector{X: -1}},
		{"diagonal_input", cp.Vector{X: 1, Y: 1}, cp.Vector{}, cp.Vector{X: math.Sqrt2 / 2, Y: math.Sqrt2 / 2}},
		{"velocity_fallback", cp.Vector{}, cp.Vector{Y: -5}, cp.Vector{Y: -1}},
		{"default_right", cp.Vector{}, cp.Vector{}, cp.Vector{X: 1}},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			got := dashDirection(c.input, c.velocity)
			if !near(got.X, c.want.X) || !near(got.Y, c.want.Y) {
				t.Fatalf("expected %v, got %v", c.want, got)
			}
		})
	}
}

func TestStepLandsFlush(t *testing.T) {
	tun := DefaultTuning()
	g := buildGrid(t, func(b *level.Builder) { b.Repeat(0, 0, 20, 0) })
	it := NewIntegrator(tun, g)

	body := NewBody(cp.Vector{X: 100, Y: 30}, tun)
	body.Velocity.Y = -400
	dash := NewDash(tun)
	in := Intent{}
	res := it.Step(&body, &dash, &in, tick)

	if !res.HitVertical || !body.Grounded {
		t.Fatalf("expected floor contact, got %+v", res)
	}
	if body.Position.Y != 24 || body.Velocity.Y != 0 {
		t.Fatalf("expected to settle on the floor at 24, got y=%v vy=%v", body.Position.Y, body.Velocity.Y)
	}
}

func TestStepRestsOnTopOfStackedFloor(t *testing.T) {
	tun := DefaultTuning()
	dt := time.Second / 60
	cases := []struct {
		name  string
		fill  func(b *level.Builder)
		y, vy float64
		wantY float64
	}{
		// rows are inserted bottom first, so the probe hits the lower row
		{name: "fast_fall_two_rows", fill: func(b *level.Builder) { b.Repeat(0, 0, 4, 1) }, y: 42, vy: -1200, wantY: 40},
		{name: "fast_fall_three_rows", fill: func(b *level.Builder) { b.Repeat(0, 0, 4, 2) }, y: 60, vy: -1500, wantY: 56},
		{name: "already_overlapping_keeps_position", fill: func(b *level.Builder) { b.Repeat(0, 0, 4, 0) }, y: 20, vy: 0, wantY: 20},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			g := buildGrid(t, c.fill)
			it := NewIntegrator(tun, g)
			body := NewBody(cp.Vector{X: 40, Y: c.y}, tun)
			body.Velocity.Y = c.vy
			dash := NewDash(tun)
			in := Intent{}

			it.Step(&body, &dash, &in, dt)
			if !body.Grounded || body.Velocity.Y != 0 {
				t.Fatalf("expected floor contact, got grounded=%v vy=%v", body.Grounded, body.Velocity.Y)
			}
			if body.Position.Y != c.wantY {
				t.Fatalf("expected y=%v, got %v", c.wantY, body.Position.Y)
			}

			for i := 0; i < 30; i++ {
				it.Step(&body, &dash, &in, dt)
			}
			if body.Position.Y != c.wantY || !body.Grounded {
				t.Fatalf("expected to stay at y=%v grounded, got y=%v grounded=%v", c.wantY, body.Position.Y, body.Grounded)
			}
			if c.wantY > 32 {
				if _, inside := g.QueryPoint(body.Position.X, body.Position.Y); inside {
					t.Fatalf("center (%v, %v) is inside a solid", body.Position.X, body.Position.Y)
				}
			}
		})
	}
}

func TestDashTimerAtSixtyHertz(t *testing.T) {
	tun := DefaultTuning()
	dt := time.Second / 60
	it := NewIntegrator(tun, buildGrid(t, nil))
	body := NewBody(cp.Vector{X: 200, Y: 200}, tun)
	dash := NewDash(tun)

	in := Intent{Direction: cp.Vector{X: 1}, Dash: true}
	finishedAt := -1
	for i := 1; i <= 13; i++ {
		it.Step(&body, &dash, &in, dt)
		in = Intent{}
		if dash.TickTimer(dt) {
			finishedAt = i
		}
	}
	// 12 ticks of 16666666ns fall just short of 200ms
	if finishedAt != 13 || dash.State != DashFinished {
		t.Fatalf("expected finish on tick 13, got %d (%v)", finishedAt, dash.State)
	}

	res := it.Step(&body, &dash, &in, dt)
	if !res.DashResolved || dash.State != DashReady {
		t.Fatalf("expected ready on tick 14, got %v", dash.State)
	}
}
