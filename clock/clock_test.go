package clock

import (
	"testing"
	"time"
)

func TestCooldownZeroValueIsReady(t *testing.T) {
	var c Cooldown
	c.Interval = time.Second
	if !c.Ready(time.Unix(0, 0)) {
		t.Fatal("fresh cooldown should be ready")
	}
}

func TestCooldownStrictInterval(t *testing.T) {
	start := time.Unix(1000, 0)
	c := NewCooldown(200 * time.Millisecond)
	if !c.TryFire(start) {
		t.Fatal("first fire should succeed")
	}

	tests := []struct {
		name  string
		after time.Duration
		want  bool
	}{
		{"immediately", 0, false},
		{"before interval", 199 * time.Millisecond, false},
		{"exactly interval", 200 * time.Millisecond, false},
		{"past interval", 201 * time.Millisecond, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := c.Ready(start.Add(tt.after)); got != tt.want {
				t.Errorf("Ready(+%v) = %v, want %v", tt.after, got, tt.want)
			}
		})
	}
}

func TestDeadline(t *testing.T) {
	now := time.Unix(50, 0)
	var d Deadline
	if d.Active(now) {
		t.Error("zero deadline should be inactive")
	}
	d.Arm(now, 2*time.Second)
	if !d.Active(now.Add(1999 * time.Millisecond)) {
		t.Error("deadline should be active inside window")
	}
	if d.Active(now.Add(2 * time.Second)) {
		t.Error("deadline should expire at its end")
	}
	d.Clear()
	if d.Active(now) {
		t.Error("cleared deadline should be inactive")
	}
}

func TestSchedulerCategoriesIndependent(t *testing.T) {
	mock := NewMock(time.Unix(0, 0))
	s := NewScheduler(Intervals{
		PlayerMove: 200 * time.Millisecond,
		Patrol:     500 * time.Millisecond,
		Chase:      250 * time.Millisecond,
		Spawn:      10 * time.Second,
	})

	now := mock.Now()
	for _, cat := range []Category{CategoryPlayerMove, CategoryPatrol, CategoryChase, CategorySpawn} {
		if !s.TryFire(cat, now) {
			t.Fatalf("%s should be ready at start", cat)
		}
	}

	now = mock.Advance(300 * time.Millisecond)
	if !s.Ready(CategoryPlayerMove, now) {
		t.Error("player move should be ready after 300ms")
	}
	if !s.Ready(CategoryChase, now) {
		t.Error("chase should be ready after 300ms")
	}
	if s.Ready(CategoryPatrol, now) {
		t.Error("patrol should still be cooling down after 300ms")
	}
	if s.Ready(CategorySpawn, now) {
		t.Error("spawn should still be cooling down after 300ms")
	}

	s.Fire(CategoryPlayerMove, now)
	if s.Ready(CategoryPlayerMove, now) {
		t.Error("player move should cool down after firing")
	}
	if !s.Ready(CategoryChase, now) {
		t.Error("firing one category must not affect another")
	}
}

func TestSchedulerUnknownCategory(t *testing.T) {
	s := NewScheduler(Intervals{})
	if s.Ready(Category(99), time.Now()) {
		t.Error("unknown category should never be ready")
	}
	if Category(99).String() != "unknown" {
		t.Error("unknown category name")
	}
}
