package mapview

import (
	"math"
	"testing"

	vec "github.com/yohamta/donburi/features/math"
)

func TestCameraMoveToClearsTarget(t *testing.T) {
	c := &Camera{}
	c.SetTarget(vec.Vec2{X: 10, Y: 0})
	if c.Target() == nil {
		t.Fatal("expected an active target")
	}

	c.MoveTo(vec.Vec2{X: 3, Y: 4})
	if c.Target() != nil {
		t.Fatal("MoveTo should cancel the active target")
	}
	if pos := c.Position(); pos.X != 3 || pos.Y != 4 {
		t.Fatalf("position = %+v, want (3, 4)", pos)
	}
}

func TestCameraGlideNeverOvershoots(t *testing.T) {
	c := &Camera{}
	c.SetTarget(vec.Vec2{X: 10, Y: 0})

	prev := c.Position().X
	for i := 0; i < 200; i++ {
		c.Advance(1.0 / 60.0)

		pos := c.Position()
		if pos.X > 10+1e-9 {
			t.Fatalf("overshoot: position.X = %v", pos.X)
		}
		if pos.X < prev-1e-9 {
			t.Fatalf("regression: position.X went from %v to %v", prev, pos.X)
		}
		prev = pos.X

		if c.Target() == nil {
			break
		}
	}

	if c.Target() != nil {
		t.Fatal("camera never arrived")
	}
	if pos := c.Position(); pos.X != 10 || pos.Y != 0 {
		t.Fatalf("arrival position = %+v, want exactly (10, 0)", pos)
	}
}

func TestCameraAdvanceWithoutTargetIsNoop(t *testing.T) {
	c := &Camera{}
	c.MoveTo(vec.Vec2{X: 5, Y: 5})

	c.Advance(1.0)
	if pos := c.Position(); pos.X != 5 || pos.Y != 5 {
		t.Fatalf("position = %+v, want (5, 5)", pos)
	}
}

func TestCameraSetTargetWithinEpsilonSnaps(t *testing.T) {
	c := &Camera{}
	c.MoveTo(vec.Vec2{X: 1, Y: 1})

	c.SetTarget(vec.Vec2{X: 1.01, Y: 1})
	if c.Target() != nil {
		t.Fatal("a target within the snap epsilon should resolve immediately")
	}
	if pos := c.Position(); pos.X != 1.01 || pos.Y != 1 {
		t.Fatalf("position = %+v, want (1.01, 1)", pos)
	}
}

func TestCameraMoveByShiftsGlide(t *testing.T) {
	c := &Camera{}
	c.SetTarget(vec.Vec2{X: 10, Y: 0})

	c.MoveBy(vec.Vec2{X: 1, Y: 2})
	if pos := c.Position(); pos.X != 1 || pos.Y != 2 {
		t.Fatalf("position = %+v, want (1, 2)", pos)
	}

	target := c.Target()
	if target == nil {
		t.Fatal("MoveBy should keep the glide alive")
	}
	if target.X != 11 || target.Y != 2 {
		t.Fatalf("target = %+v, want (11, 2)", *target)
	}

	for i := 0; i < 400 && c.Target() != nil; i++ {
		c.Advance(1.0 / 60.0)
	}
	if pos := c.Position(); pos.X != 11 || pos.Y != 2 {
		t.Fatalf("arrival position = %+v, want (11, 2)", pos)
	}
}

func TestCameraMoveTargetBy(t *testing.T) {
	c := &Camera{}

	// no active target: relative to position
	c.MoveTargetBy(vec.Vec2{X: 4, Y: 3})
	target := c.Target()
	if target == nil {
		t.Fatal("expected a target")
	}
	if target.X != 4 || target.Y != 3 {
		t.Fatalf("target = %+v, want (4, 3)", *target)
	}

	// active target: relative to it
	c.MoveTargetBy(vec.Vec2{X: 1, Y: 0})
	target = c.Target()
	if target == nil {
		t.Fatal("expected a target")
	}
	if target.X != 5 || target.Y != 3 {
		t.Fatalf("target = %+v, want (5, 3)", *target)
	}
}

func TestCameraGlideDurationScalesWithDistance(t *testing.T) {
	near := &Camera{}
	near.SetTarget(vec.Vec2{X: 2, Y: 0})

	far := &Camera{}
	far.SetTarget(vec.Vec2{X: 40, Y: 0})

	steps := func(c *Camera) int {
		n := 0
		for c.Target() != nil {
			c.Advance(1.0 / 60.0)
			n++
			if n > 100000 {
				t.Fatal("camera never arrived")
			}
		}
		return n
	}

	if nearSteps, farSteps := steps(near), steps(far); nearSteps >= farSteps {
		t.Fatalf("near glide took %d steps, far glide %d; far should take longer", nearSteps, farSteps)
	}
}

func TestDistance(t *testing.T) {
	if d := distance(vec.Vec2{X: 0, Y: 0}, vec.Vec2{X: 3, Y: 4}); math.Abs(d-5) > 1e-12 {
		t.Fatalf("distance = %v, want 5", d)
	}
}
