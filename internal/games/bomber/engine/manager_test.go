package engine

import (
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/tui-bomber/internal/core"
	"github.com/vovakirdan/tui-bomber/internal/games/bomber/level"
)

func TestStartGameModes(t *testing.T) {
	m := newTestManager(t, Options{DuelRounds: 3})

	m.StartGame(latticeMap(7, 7, map[level.Point]level.TileType{
		pt(1, 1): level.Player1,
		pt(5, 5): level.Enemy,
		pt(3, 1): level.Breakable,
	}))
	assert.Equal(t, level.SinglePlayer, m.Mode())
	assert.Equal(t, 1, m.AlivePlayers())
	assert.Equal(t, 1, m.AliveEnemies())
	assert.Equal(t, level.Breakable, m.Tiles().TypeAt(pt(3, 1)))
	assert.Equal(t, 0, m.Rounds())

	m.StartGame(latticeMap(7, 7, map[level.Point]level.TileType{
		pt(1, 1): level.Player1,
		pt(5, 5): level.Player2,
	}))
	assert.Equal(t, level.Duel, m.Mode())
	assert.Equal(t, 3, m.Rounds())
	assert.Len(t, m.Objects(), 2)
}

func TestStartGameKeepsMapScore(t *testing.T) {
	m := newTestManager(t, Options{})
	mp := latticeMap(7, 7, map[level.Point]level.TileType{pt(1, 1): level.Player1})
	mp.Score = 250

	m.StartGame(mp)
	p1, _ := m.Score()
	assert.Equal(t, 250, p1)
	assert.Equal(t, 250, m.Player(core.Player1).Score())
}

func TestSaveIntoMapRoundTrip(t *testing.T) {
	m := newTestManager(t, Options{})
	mp := latticeMap(7, 7, map[level.Point]level.TileType{
		pt(1, 1): level.Player1,
		pt(3, 1): level.Breakable,
		pt(5, 1): level.Enemy,
		pt(1, 5): level.Bonus,
		pt(5, 5): level.Bomb,
		pt(3, 5): level.Blast,
	})
	mp.Score = 40

	m.StartGame(mp)
	saved := m.SaveIntoMap()

	assert.True(t, mp.Equal(saved), "saved map differs:\n%s", level.Encode(saved))
	assert.Equal(t, 40, saved.Score)
	require.NoError(t, saved.CheckLayout())
}

func TestDoorSpawnsOnceWhenEnemiesAreGone(t *testing.T) {
	m := newTestManager(t, Options{})
	m.StartGame(latticeMap(7, 7, map[level.Point]level.TileType{
		pt(1, 1): level.Player1,
		pt(3, 3): level.Breakable,
	}))

	m.ProcessEvents()
	assert.Equal(t, 1, countType(m.Objects(), level.Door))
	assert.Equal(t, -1, m.AliveEnemies())
	// The breakable under the center was cleared for the door
	assert.Equal(t, level.Empty, m.Tiles().TypeAt(pt(3, 3)))

	for i := 0; i < 10; i++ {
		m.Step(core.NewMultiInputFrame())
	}
	assert.Equal(t, 1, countType(m.Objects(), level.Door))
}

func TestLoadedDoorIsNotDuplicated(t *testing.T) {
	m := newTestManager(t, Options{})
	m.StartGame(latticeMap(7, 7, map[level.Point]level.TileType{
		pt(1, 1): level.Player1,
		pt(5, 5): level.Door,
	}))

	m.Step(core.NewMultiInputFrame())
	assert.Equal(t, 1, countType(m.Objects(), level.Door))
}

func TestDoorReachedNeedsNewMap(t *testing.T) {
	m := newTestManager(t, Options{})
	m.StartGame(latticeMap(7, 7, map[level.Point]level.TileType{pt(1, 1): level.Player1}))

	// Put a door right under the player
	m.add(NewDoor(m.handle(), pt(1, 1), m.Geometry()))
	m.aliveEnemies = -1

	m.Step(core.NewMultiInputFrame())
	assert.True(t, m.NeedsNewMap())
	assert.Equal(t, 1, m.Stats().MapsCleared)
	assert.Zero(t, m.Events().Len())

	m.LoadFromMap(latticeMap(7, 7, map[level.Point]level.TileType{pt(5, 5): level.Player1}))
	assert.False(t, m.NeedsNewMap())
}

func TestExplosionClearsBreakableAndMayDropBonus(t *testing.T) {
	m := newTestManager(t, Options{BonusChance: 100})
	m.StartGame(latticeMap(7, 7, map[level.Point]level.TileType{
		pt(1, 1): level.Player1,
		pt(5, 5): level.Enemy,
		pt(3, 1): level.Breakable,
	}))

	m.Events().Push(Event{Kind: EventPlaceExplosion, Pos: pt(3, 1)})
	m.Events().Push(Event{Kind: EventPlaceExplosion, Pos: pt(4, 1)})
	m.ProcessEvents()

	assert.Equal(t, level.Empty, m.Tiles().TypeAt(pt(3, 1)))
	assert.Equal(t, 2, countType(m.Objects(), level.Blast))
	assert.Equal(t, 1, countType(m.Objects(), level.Bonus))
	assert.Zero(t, m.Events().Len())
}

func TestNoBonusWhenChanceIsZero(t *testing.T) {
	m := newTestManager(t, Options{BonusChance: 0})
	m.StartGame(latticeMap(7, 7, map[level.Point]level.TileType{
		pt(1, 1): level.Player1,
		pt(5, 5): level.Enemy,
		pt(3, 1): level.Breakable,
	}))

	m.Events().Push(Event{Kind: EventPlaceExplosion, Pos: pt(3, 1)})
	m.ProcessEvents()
	assert.Zero(t, countType(m.Objects(), level.Bonus))
}

func TestBombKeyIsEdgeTriggered(t *testing.T) {
	m := newTestManager(t, Options{})
	m.StartGame(latticeMap(7, 7, map[level.Point]level.TileType{
		pt(1, 1): level.Player1,
		pt(5, 5): level.Enemy,
	}))

	held := press(core.Player1, core.ActionBomb)
	for i := 0; i < 3; i++ {
		m.Step(held)
	}
	assert.Equal(t, 1, countType(m.Objects(), level.Bomb))

	m.Step(core.NewMultiInputFrame())
	m.Step(held)
	assert.Equal(t, 2, countType(m.Objects(), level.Bomb))
	assert.Equal(t, 2, m.Stats().BombsPlaced)
}

func TestPlayerSlidesButStopsAtWalls(t *testing.T) {
	m := newTestManager(t, Options{})
	m.StartGame(latticeMap(7, 7, map[level.Point]level.TileType{
		pt(1, 1): level.Player1,
		pt(5, 5): level.Enemy,
	}))
	p := m.Player(core.Player1)
	require.NotNil(t, p)

	for i := 0; i < 30; i++ {
		m.Step(press(core.Player1, core.ActionLeft))
	}
	assert.Equal(t, pt(1, 1), p.TilePos())
	assert.Greater(t, float64(p.Box().X), 64-6.4)

	startX := p.Box().X
	for i := 0; i < 5; i++ {
		m.Step(press(core.Player1, core.ActionRight, core.ActionUp))
	}
	assert.Equal(t, startX+15, p.Box().X)
}

func TestBonusPickupAppliesToPlayer(t *testing.T) {
	m := newTestManager(t, Options{Bonuses: BonusCatalog{MegaBombs: 3, Speed: 3}})
	m.StartGame(latticeMap(7, 7, map[level.Point]level.TileType{
		pt(1, 1): level.Player1,
		pt(5, 5): level.Enemy,
	}))
	m.add(NewBonus(m.handle(), pt(1, 1), m.Geometry()))

	// The bonus is newer, updates before the player and is collected in the
	// same tick
	m.Step(core.NewMultiInputFrame())
	assert.Zero(t, countType(m.Objects(), level.Bonus))

	p := m.Player(core.Player1)
	applied := p.BombSize() == 4 || p.Speed() == m.Geometry().PlayerSpeed+3
	assert.True(t, applied, "bomb size %d, speed %d", p.BombSize(), p.Speed())
	assert.Zero(t, m.Events().Len())
}

func TestBonusForDeadPlayerIsDropped(t *testing.T) {
	m := newTestManager(t, Options{})
	m.StartGame(latticeMap(7, 7, map[level.Point]level.TileType{
		pt(1, 1): level.Player1,
		pt(5, 5): level.Enemy,
	}))
	m.Events().Push(Event{Kind: EventGetBonus, Target: Handle(9999), Value: 2})
	m.ProcessEvents()
	assert.Zero(t, m.Events().Len())
}

func TestEnemyDiesInBlastAndScores(t *testing.T) {
	m := newTestManager(t, Options{})
	m.StartGame(latticeMap(7, 7, map[level.Point]level.TileType{
		pt(1, 1): level.Player1,
		pt(5, 5): level.Enemy,
		pt(5, 3): level.Breakable,
	}))

	m.Events().Push(Event{Kind: EventPlaceExplosion, Pos: pt(5, 5)})
	m.ProcessEvents()
	m.Step(core.NewMultiInputFrame())

	assert.Zero(t, countType(m.Objects(), level.Enemy))
	assert.Equal(t, 0, m.AliveEnemies())
	assert.Equal(t, 1, m.Stats().EnemiesKilled)

	// The door appears on the tick after the last enemy died
	m.Step(core.NewMultiInputFrame())
	p1, _ := m.Score()
	assert.Equal(t, 100, p1)
	assert.Equal(t, 1, countType(m.Objects(), level.Door))
}

func TestSinglePlayerDeathEndsGameAndRecordsHighScore(t *testing.T) {
	hs := &memoryHighScores{best: 50}
	m := newTestManager(t, Options{HighScores: hs})
	mp := latticeMap(7, 7, map[level.Point]level.TileType{
		pt(1, 1): level.Player1,
		pt(5, 5): level.Enemy,
	})
	mp.Score = 80
	m.StartGame(mp)

	m.Events().Push(Event{Kind: EventPlaceExplosion, Pos: pt(1, 1)})
	m.ProcessEvents()
	m.Step(core.NewMultiInputFrame())
	assert.Nil(t, m.Player(core.Player1))
	assert.False(t, m.EndGame())

	m.Step(core.NewMultiInputFrame())
	assert.True(t, m.EndGame())
	assert.True(t, m.NewRecord())
	assert.Equal(t, []int{80}, hs.recorded)
	assert.Equal(t, -1, m.AlivePlayers())

	// Game over is only processed once
	m.Step(core.NewMultiInputFrame())
	assert.Len(t, hs.recorded, 1)
}

func TestSinglePlayerDeathBelowHighScore(t *testing.T) {
	hs := &memoryHighScores{best: 500}
	m := newTestManager(t, Options{HighScores: hs})
	m.StartGame(latticeMap(7, 7, map[level.Point]level.TileType{
		pt(1, 1): level.Player1,
		pt(5, 5): level.Enemy,
	}))

	m.Events().Push(Event{Kind: EventPlaceExplosion, Pos: pt(1, 1)})
	m.ProcessEvents()
	m.Step(core.NewMultiInputFrame())
	m.Step(core.NewMultiInputFrame())

	assert.True(t, m.EndGame())
	assert.False(t, m.NewRecord())
	assert.Empty(t, hs.recorded)
}

func TestDuelRoundGoesToSurvivor(t *testing.T) {
	m := newTestManager(t, Options{DuelRounds: 2})
	duel := func() *level.Map {
		return latticeMap(7, 7, map[level.Point]level.TileType{
			pt(1, 1): level.Player1,
			pt(5, 5): level.Player2,
		})
	}
	m.StartGame(duel())

	m.Events().Push(Event{Kind: EventPlaceExplosion, Pos: pt(5, 5)})
	m.ProcessEvents()
	m.Step(core.NewMultiInputFrame()) // player 2 dies, player 1 takes the point
	assert.Equal(t, 1, m.AlivePlayers())
	assert.False(t, m.NeedsNewMap())

	m.Step(core.NewMultiInputFrame()) // round ends
	p1, p2 := m.Score()
	assert.Equal(t, 1, p1)
	assert.Equal(t, 0, p2)
	w1, w2 := m.RoundWins()
	assert.Equal(t, 1, w1)
	assert.Equal(t, 0, w2)
	assert.Equal(t, 1, m.Rounds())
	assert.True(t, m.NeedsNewMap())
	assert.False(t, m.EndGame())

	// Next round keeps scores
	m.LoadFromMap(duel())
	assert.Equal(t, 2, m.AlivePlayers())
	assert.Equal(t, 1, m.Player(core.Player1).Score())

	m.Events().Push(Event{Kind: EventPlaceExplosion, Pos: pt(1, 1)})
	m.ProcessEvents()
	m.Step(core.NewMultiInputFrame())
	m.Step(core.NewMultiInputFrame())

	assert.True(t, m.EndGame())
	assert.Equal(t, 0, m.Rounds())
	p1, p2 = m.Score()
	assert.Equal(t, 1, p1)
	assert.Equal(t, 1, p2)
}

func TestEnemyBoxedInStaysInCell(t *testing.T) {
	m := newTestManager(t, Options{})
	m.StartGame(latticeMap(7, 7, map[level.Point]level.TileType{
		pt(5, 5): level.Player1,
		pt(1, 1): level.Enemy,
		pt(2, 1): level.Breakable,
		pt(1, 2): level.Breakable,
	}))

	enemy := onlyEnemy(t, m)

	for i := 0; i < 300; i++ {
		m.Step(core.NewMultiInputFrame())
		require.Equal(t, pt(1, 1), enemy.TilePos(), "tick %d", i)
	}
}

func TestEnemyRecoilsFromBlast(t *testing.T) {
	m := newTestManager(t, Options{})
	m.StartGame(latticeMap(7, 7, map[level.Point]level.TileType{
		pt(5, 5): level.Player1,
		pt(1, 1): level.Enemy,
	}))
	enemy := onlyEnemy(t, m)
	head(enemy, DirRight, 1000)

	m.Events().Push(Event{Kind: EventPlaceExplosion, Pos: pt(2, 1)})
	m.ProcessEvents()
	var blast *Explosion
	for _, obj := range m.Objects() {
		if b, ok := obj.(*Explosion); ok {
			blast = b
		}
	}
	require.NotNil(t, blast)
	blast.ticks = 1000

	recoiled := false
	for i := 0; i < 30; i++ {
		m.Step(core.NewMultiInputFrame())
		if !slices.Contains(enemy.Wander().Pool(), DirRight) {
			recoiled = true
			break
		}
	}
	require.True(t, recoiled, "enemy never turned away from the blast")

	assert.ElementsMatch(t, []Direction{DirStay, DirUp, DirDown, DirLeft}, enemy.Wander().Pool())
	assert.NotEqual(t, DirRight, enemy.Wander().Direction())
	assert.LessOrEqual(t, enemy.Box().Right(), blast.Box().X, "enemy stepped into the blast")
	assert.Equal(t, 1, m.AliveEnemies())
	assert.Equal(t, 1, countType(m.Objects(), level.Enemy))
}

func TestEnemyRefillsPoolWhenHeadingExpires(t *testing.T) {
	m := newTestManager(t, Options{})
	m.StartGame(latticeMap(7, 7, map[level.Point]level.TileType{
		pt(5, 5): level.Player1,
		pt(3, 3): level.Enemy,
	}))
	enemy := onlyEnemy(t, m)
	enemy.Wander().Drop(DirUp)
	enemy.Wander().Drop(DirLeft)
	head(enemy, DirStay, 1)

	m.Step(core.NewMultiInputFrame())

	assert.ElementsMatch(t, allDirections[:], enemy.Wander().Pool())
	assert.Positive(t, enemy.Wander().Frames())
	assert.Equal(t, pt(3, 3), enemy.TilePos())
}

func TestEnemyContactKillsPlayer(t *testing.T) {
	m := newTestManager(t, Options{})
	m.StartGame(latticeMap(7, 7, map[level.Point]level.TileType{
		pt(1, 1): level.Player1,
		pt(5, 5): level.Enemy,
	}))
	enemy := onlyEnemy(t, m)
	enemy.x, enemy.y = 64, 64
	enemy.setBox()
	head(enemy, DirStay, 1000)

	m.Step(core.NewMultiInputFrame())
	assert.Nil(t, m.Player(core.Player1))
	assert.Equal(t, 1, m.Stats().PlayersKilled)
	assert.Equal(t, 1, m.AliveEnemies(), "contact does not hurt the enemy")
	assert.False(t, m.EndGame())

	m.Step(core.NewMultiInputFrame())
	assert.True(t, m.EndGame())
}
