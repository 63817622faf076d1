package system

import (
	"testing"

	"dungeon-crawler/internal/component"
	"dungeon-crawler/internal/ecs"
	"dungeon-crawler/internal/gamemap"
	"dungeon-crawler/internal/input"
	"dungeon-crawler/internal/render"
	"dungeon-crawler/internal/rng"
)

// setupMoveWorld builds a 10x10 map with an open 8x8 floor and a player at (3,3).
func setupMoveWorld() (*ecs.World, *gamemap.GameMap, ecs.EntityID) {
	w := ecs.NewWorld()
	gmap := gamemap.New(10, 10)
	for y := 1; y <= 8; y++ {
		for x := 1; x <= 8; x++ {
			gmap.Set(gamemap.Pt(x, y), gamemap.TileFloor)
		}
	}
	player := w.Spawn(component.Position{X: 3, Y: 3}, component.TagPlayer{})
	return w, gmap, player
}

func positionOf(t *testing.T, w *ecs.World, id ecs.EntityID) gamemap.Point {
	t.Helper()
	c := w.Get(id, component.CPosition)
	if c == nil {
		t.Fatalf("entity %v has no position", id)
	}
	return c.(component.Position).Point()
}

func TestResolveMovesOntoFloor(t *testing.T) {
	w, gmap, player := setupMoveWorld()
	intent := Intend(w, player, gamemap.Pt(4, 3))

	out := ResolveMoves(w, gmap)
	if len(out) != 1 || out[0].Result != MoveOK {
		t.Fatalf("expected one MoveOK outcome, got %v", out)
	}
	if got := positionOf(t, w, player); got != gamemap.Pt(4, 3) {
		t.Fatalf("expected position (4,3), got %v", got)
	}
	if w.Alive(intent) || len(w.Query(component.CPendingMove)) != 0 {
		t.Fatal("pending move should be consumed")
	}
}

func TestResolveMovesIntoWallIsDropped(t *testing.T) {
	w, gmap, player := setupMoveWorld()
	w.Add(player, component.Position{X: 3, Y: 1})
	Intend(w, player, gamemap.Pt(3, 0))

	out := ResolveMoves(w, gmap)
	if len(out) != 1 || out[0].Result != MoveBlocked {
		t.Fatalf("expected MoveBlocked, got %v", out)
	}
	if got := positionOf(t, w, player); got != gamemap.Pt(3, 1) {
		t.Fatalf("position should be unchanged, got %v", got)
	}
	if len(w.Query(component.CPendingMove)) != 0 {
		t.Fatal("rejected pending move should still be removed")
	}
}

func TestResolveMovesOutOfBoundsIsDropped(t *testing.T) {
	w, gmap, player := setupMoveWorld()
	Intend(w, player, gamemap.Pt(-1, 3))
	Intend(w, player, gamemap.Pt(3, 42))

	for _, o := range ResolveMoves(w, gmap) {
		if o.Result != MoveBlocked {
			t.Errorf("move to %v should be blocked, got %v", o.To, o.Result)
		}
	}
	if got := positionOf(t, w, player); got != gamemap.Pt(3, 3) {
		t.Fatalf("position should be unchanged, got %v", got)
	}
}

func TestResolveMovesForDestroyedMover(t *testing.T) {
	w, gmap, _ := setupMoveWorld()
	ghost := w.Spawn(component.Position{X: 5, Y: 5})
	Intend(w, ghost, gamemap.Pt(5, 6))
	w.DestroyEntity(ghost)

	out := ResolveMoves(w, gmap)
	if len(out) != 1 || out[0].Result != MoveGone {
		t.Fatalf("expected MoveGone, got %v", out)
	}
	if len(w.Query(component.CPendingMove)) != 0 {
		t.Fatal("orphaned pending move should be removed")
	}
}

func TestResolveMovesRunsOncePerIntent(t *testing.T) {
	w, gmap, player := setupMoveWorld()
	Intend(w, player, gamemap.Pt(4, 3))
	ResolveMoves(w, gmap)
	if out := ResolveMoves(w, gmap); out != nil {
		t.Fatalf("second pass should find no intents, got %v", out)
	}
	if got := positionOf(t, w, player); got != gamemap.Pt(4, 3) {
		t.Fatalf("intent applied more than once: %v", got)
	}
}

func TestPlayerInput(t *testing.T) {
	cases := []struct {
		key    input.Key
		ok     bool
		target gamemap.Point
	}{
		{input.KeyLeft, true, gamemap.Pt(2, 3)},
		{input.KeyRight, true, gamemap.Pt(4, 3)},
		{input.KeyUp, true, gamemap.Pt(3, 2)},
		{input.KeyDown, true, gamemap.Pt(3, 4)},
		{input.KeyNone, false, gamemap.Point{}},
		{input.KeyOther, false, gamemap.Point{}},
	}
	for _, tc := range cases {
		t.Run(tc.key.String(), func(t *testing.T) {
			w, _, player := setupMoveWorld()
			if got := PlayerInput(w, tc.key); got != tc.ok {
				t.Fatalf("PlayerInput(%v) = %v; want %v", tc.key, got, tc.ok)
			}
			intents := w.Query(component.CPendingMove)
			if !tc.ok {
				if len(intents) != 0 {
					t.Fatalf("no intent expected, got %d", len(intents))
				}
				return
			}
			if len(intents) != 1 {
				t.Fatalf("expected 1 intent, got %d", len(intents))
			}
			pm := w.Get(intents[0], component.CPendingMove).(component.PendingMove)
			if pm.Entity != player || pm.Destination != tc.target {
				t.Errorf("intent = %+v; want player -> %v", pm, tc.target)
			}
			if got := positionOf(t, w, player); got != gamemap.Pt(3, 3) {
				t.Errorf("input must not move the player directly, got %v", got)
			}
		})
	}
}

func TestRandomMoveQueuesAdjacentSteps(t *testing.T) {
	w, _, _ := setupMoveWorld()
	var movers []ecs.EntityID
	for i := 0; i < 5; i++ {
		movers = append(movers, w.Spawn(component.Position{X: 4, Y: 4}, component.TagRandomMover{}))
	}
	if n := RandomMove(w, rng.New(1)); n != len(movers) {
		t.Fatalf("expected %d intents, got %d", len(movers), n)
	}
	for _, id := range w.Query(component.CPendingMove) {
		pm := w.Get(id, component.CPendingMove).(component.PendingMove)
		d := pm.Destination.Sub(gamemap.Pt(4, 4))
		if abs(d.X)+abs(d.Y) != 1 {
			t.Errorf("step %v is not a single cardinal move", d)
		}
	}
}

func TestRandomMoveSameSeedSameSteps(t *testing.T) {
	collect := func() []gamemap.Point {
		w := ecs.NewWorld()
		for i := 0; i < 8; i++ {
			w.Spawn(component.Position{X: 5, Y: 5}, component.TagRandomMover{})
		}
		RandomMove(w, rng.New(42))
		var dests []gamemap.Point
		for _, id := range w.Query(component.CPendingMove) {
			dests = append(dests, w.Get(id, component.CPendingMove).(component.PendingMove).Destination)
		}
		return dests
	}
	a, b := collect(), collect()
	for i := range a {
		if a[i] != b[i] {
			t.Fatalf("intent %d differs between runs: %v vs %v", i, a[i], b[i])
		}
	}
}

func TestResolveCollisionsRemovesEnemyOnPlayer(t *testing.T) {
	w := ecs.NewWorld()
	w.Spawn(component.Position{X: 5, Y: 5}, component.TagPlayer{})
	onPlayer := w.Spawn(component.Position{X: 5, Y: 5}, component.TagEnemy{})
	elsewhere := w.Spawn(component.Position{X: 6, Y: 5}, component.TagEnemy{})
	friendly := w.Spawn(component.Position{X: 5, Y: 5}, component.TagRandomMover{})

	hit := ResolveCollisions(w)
	if len(hit) != 1 || hit[0] != onPlayer {
		t.Fatalf("expected only %v to be hit, got %v", onPlayer, hit)
	}
	w.Flush()

	if w.Alive(onPlayer) {
		t.Error("enemy on the player's tile should be removed")
	}
	if !w.Alive(elsewhere) {
		t.Error("enemy on another tile must be unaffected")
	}
	if !w.Alive(friendly) {
		t.Error("non-enemy sharing the tile must be unaffected")
	}
}

func TestResolveCollisionsWithoutPlayer(t *testing.T) {
	w := ecs.NewWorld()
	w.Spawn(component.Position{X: 0, Y: 0}, component.TagEnemy{})
	if hit := ResolveCollisions(w); hit != nil {
		t.Fatalf("expected no collisions without a player, got %v", hit)
	}
}

func TestRenderMapAndEntities(t *testing.T) {
	w, gmap, _ := setupMoveWorld()
	w.Add(w.First(component.CTagPlayer), component.Renderable{Glyph: "@", RenderOrder: 10})
	w.Spawn(component.Position{X: 3, Y: 3}, component.Renderable{Glyph: "o", RenderOrder: 5})
	cam := render.NewCamera(gamemap.Pt(3, 3), 6, 6) // x 0..5, y 0..6
	batch := render.NewBatch()

	RenderMap(gmap, cam, render.DefaultTheme, batch)
	RenderEntities(w, cam, batch)

	// World (0,0) is a wall at screen (0,0) because the camera starts at (0,0).
	if c, ok := batch.At(gamemap.Pt(0, 0)); !ok || c.Glyph != render.DefaultTheme.Wall {
		t.Errorf("expected wall at screen (0,0), got %+v", c)
	}
	if c, ok := batch.At(gamemap.Pt(1, 1)); !ok || c.Glyph != render.DefaultTheme.Floor {
		t.Errorf("expected floor at screen (1,1), got %+v", c)
	}
	if c, ok := batch.At(gamemap.Pt(3, 3)); !ok || c.Glyph != "@" {
		t.Errorf("player should be drawn above the monster, got %+v", c)
	}
	mapCells := 6 * 7
	if batch.Len() != mapCells+2 {
		t.Errorf("expected %d commands, got %d", mapCells+2, batch.Len())
	}
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
