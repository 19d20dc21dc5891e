package projectile

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lixenwraith/minotaur/entity"
	"github.com/lixenwraith/minotaur/maze"
)

func corridor() *maze.Grid {
	return maze.ParseGrid([]string{
		"############",
		"#..........#",
		"############",
	})
}

func TestShotAdvancesThroughOpenFloor(t *testing.T) {
	res := Advance([]Projectile{Fire(maze.Point{X: 1, Y: 1}, entity.Right)}, corridor(), nil, nil, false)

	require.Len(t, res.Projectiles, 1)
	assert.Equal(t, maze.Point{X: 2, Y: 1}, res.Projectiles[0].Pos)
	assert.Empty(t, res.Impacts)
}

func TestShotRemovedOnWall(t *testing.T) {
	res := Advance([]Projectile{Fire(maze.Point{X: 1, Y: 1}, entity.Up)}, corridor(), nil, nil, true)

	assert.Empty(t, res.Projectiles)
	require.Len(t, res.Impacts, 1)
	assert.Equal(t, ImpactWall, res.Impacts[0].Kind)
}

func TestShotRemovedOutOfBounds(t *testing.T) {
	g := maze.ParseGrid([]string{"...."})
	res := Advance([]Projectile{Fire(maze.Point{X: 3, Y: 0}, entity.Right)}, g, nil, nil, true)
	assert.Empty(t, res.Projectiles)
}

func TestChaserKilledByOneShotWhenArmed(t *testing.T) {
	c := entity.NewChaser(maze.Point{X: 3, Y: 1}, 1)
	res := Advance([]Projectile{Fire(maze.Point{X: 2, Y: 1}, entity.Right)}, corridor(), []*entity.Chaser{c}, nil, true)

	assert.Empty(t, res.Chasers)
	assert.Empty(t, res.Projectiles, "shot is consumed by the kill")
	assert.Equal(t, []maze.Point{{X: 3, Y: 1}}, res.Kills)
	require.Len(t, res.Impacts, 1)
	assert.Equal(t, ImpactChaserKill, res.Impacts[0].Kind)
	assert.True(t, res.Impacts[0].IsKill())
}

func TestChaserSurvivingHitConsumesShot(t *testing.T) {
	c := entity.NewChaser(maze.Point{X: 3, Y: 1}, 3)
	res := Advance([]Projectile{Fire(maze.Point{X: 2, Y: 1}, entity.Right)}, corridor(), []*entity.Chaser{c}, nil, true)

	require.Len(t, res.Chasers, 1)
	assert.Equal(t, 2, res.Chasers[0].HP)
	assert.Empty(t, res.Projectiles)
	assert.Empty(t, res.Kills)
	assert.Equal(t, ImpactChaserHit, res.Impacts[0].Kind)
}

func TestChaserImmuneWithoutKey(t *testing.T) {
	c := entity.NewChaser(maze.Point{X: 3, Y: 1}, 1)
	p := entity.NewPatroller(maze.Point{X: 3, Y: 1})

	res := Advance([]Projectile{Fire(maze.Point{X: 2, Y: 1}, entity.Right)}, corridor(),
		[]*entity.Chaser{c}, []*entity.Patroller{p}, false)

	require.Len(t, res.Chasers, 1)
	assert.Equal(t, 1, res.Chasers[0].HP)
	assert.Len(t, res.Patrollers, 1, "shot absorbed by the chaser cannot reach a patroller behind it")
	assert.Empty(t, res.Projectiles)
	assert.Equal(t, ImpactChaserImmune, res.Impacts[0].Kind)
}

func TestChaserImmunityOverManyShots(t *testing.T) {
	c := entity.NewChaser(maze.Point{X: 5, Y: 1}, 2)
	chasers := []*entity.Chaser{c}
	for range 20 {
		res := Advance([]Projectile{Fire(maze.Point{X: 4, Y: 1}, entity.Right)}, corridor(), chasers, nil, false)
		chasers = res.Chasers
	}
	require.Len(t, chasers, 1)
	assert.Equal(t, 2, chasers[0].HP)
}

func TestEnemyOnShotTileStruckBeforeStep(t *testing.T) {
	tests := []struct {
		name  string
		armed bool
		kind  ImpactKind
		hp    int
	}{
		{"armed", true, ImpactChaserHit, 2},
		{"unarmed", false, ImpactChaserImmune, 3},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := entity.NewChaser(maze.Point{X: 4, Y: 1}, 3)
			res := Advance([]Projectile{Fire(maze.Point{X: 4, Y: 1}, entity.Right)}, corridor(),
				[]*entity.Chaser{c}, nil, tt.armed)

			assert.Empty(t, res.Projectiles)
			require.Len(t, res.Impacts, 1)
			assert.Equal(t, tt.kind, res.Impacts[0].Kind)
			assert.Equal(t, maze.Point{X: 4, Y: 1}, res.Impacts[0].At)
			assert.Equal(t, tt.hp, c.HP)
		})
	}

	p := entity.NewPatroller(maze.Point{X: 2, Y: 1})
	res := Advance([]Projectile{Fire(maze.Point{X: 2, Y: 1}, entity.Left)}, corridor(),
		nil, []*entity.Patroller{p}, false)
	assert.Empty(t, res.Patrollers)
	assert.Equal(t, []maze.Point{{X: 2, Y: 1}}, res.Kills)
}

func TestPatrollerKilled(t *testing.T) {
	p := entity.NewPatroller(maze.Point{X: 4, Y: 1})
	other := entity.NewPatroller(maze.Point{X: 8, Y: 1})

	res := Advance([]Projectile{Fire(maze.Point{X: 3, Y: 1}, entity.Right)}, corridor(),
		nil, []*entity.Patroller{p, other}, false)

	require.Len(t, res.Patrollers, 1)
	assert.Same(t, other, res.Patrollers[0])
	assert.Equal(t, []maze.Point{{X: 4, Y: 1}}, res.Kills)
	assert.Equal(t, ImpactPatrollerKill, res.Impacts[0].Kind)
}

func TestTwoShotsSameTargetOnlyOneKill(t *testing.T) {
	p := entity.NewPatroller(maze.Point{X: 5, Y: 1})
	shots := []Projectile{
		Fire(maze.Point{X: 4, Y: 1}, entity.Right),
		Fire(maze.Point{X: 6, Y: 1}, entity.Left),
	}

	res := Advance(shots, corridor(), nil, []*entity.Patroller{p}, true)

	assert.Empty(t, res.Patrollers)
	assert.Len(t, res.Kills, 1)
	require.Len(t, res.Projectiles, 1, "second shot flies on once its target is already dead")
	assert.Equal(t, maze.Point{X: 5, Y: 1}, res.Projectiles[0].Pos)
}

func TestInputSlicesNotMutated(t *testing.T) {
	a := entity.NewPatroller(maze.Point{X: 3, Y: 1})
	b := entity.NewPatroller(maze.Point{X: 9, Y: 1})
	patrollers := []*entity.Patroller{a, b}

	Advance([]Projectile{Fire(maze.Point{X: 2, Y: 1}, entity.Right)}, corridor(), nil, patrollers, true)

	assert.Same(t, a, patrollers[0])
	assert.Same(t, b, patrollers[1])
}

func TestFlightLengthBounded(t *testing.T) {
	g := maze.NewGrid(30, 20)
	for y := 0; y < 20; y++ {
		for x := 0; x < 30; x++ {
			g.Set(x, y, maze.Floor)
		}
	}
	limit := g.Width() + g.Height()

	for _, dir := range entity.Directions {
		shots := []Projectile{Fire(maze.Point{X: 15, Y: 10}, dir)}
		steps := 0
		for len(shots) > 0 {
			shots = Advance(shots, g, nil, nil, false).Projectiles
			steps++
			require.LessOrEqual(t, steps, limit, "shot heading %v never terminated", dir)
		}
		assert.LessOrEqual(t, steps, max(g.Width(), g.Height()))
	}
}
