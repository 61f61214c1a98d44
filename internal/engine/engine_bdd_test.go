package engine

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/cucumber/godog"
	"github.com/tatianab/asciiliens/internal/models"
)

func TestFeatures(t *testing.T) {
	suite := godog.TestSuite{
		ScenarioInitializer: InitializeTurnScenario,
		Options: &godog.Options{
			Format:   "pretty",
			Paths:    []string{"features"},
			TestingT: t,
		},
	}

	if suite.Run() != 0 {
		t.Fatal("non-zero status returned, failed to run feature tests")
	}
}

type turnContext struct {
	world *models.World
	err   error
}

func (tc *turnContext) reset() {
	tc.world = nil
	tc.err = nil
}

func (tc *turnContext) aBoardWithThePlayerAtColumn(width, height, x int) error {
	tc.world = &models.World{
		Bounds: models.Bounds{Width: width, Height: height},
		Player: models.Player{Pos: models.Position{X: x, Y: height - 1}, Alive: true},
		Score:  models.InitialScore,
	}
	return nil
}

func (tc *turnContext) anAlienAtSweeping(x, y int, dir string) error {
	tc.world.Aliens = append(tc.world.Aliens, models.Alien{Pos: models.Position{X: x, Y: y}, Alive: true, Glyph: models.DefaultGlyph})
	tc.world.Direction = 1
	if dir == "left" {
		tc.world.Direction = -1
	}
	return nil
}

func (tc *turnContext) thePlayerIsAtColumn(x int) error {
	tc.world.Player.Pos.X = x
	return nil
}

func (tc *turnContext) apply(a models.Action, times int) error {
	for i := 0; i < times; i++ {
		if _, err := ApplyTurn(tc.world, a); err != nil {
			tc.err = err
			return nil
		}
	}
	return nil
}

func (tc *turnContext) thePlayerFires() error {
	return tc.apply(models.Fire, 1)
}

func (tc *turnContext) thePlayerFiresTimes(n int) error {
	return tc.apply(models.Fire, n)
}

func (tc *turnContext) thePlayerMoves(dir string) error {
	return tc.thePlayerMovesTimes(dir, 1)
}

func (tc *turnContext) thePlayerMovesTimes(dir string, n int) error {
	a, err := models.ParseAction(dir)
	if err != nil {
		return err
	}
	return tc.apply(a, n)
}

func (tc *turnContext) thereIsABulletAt(x, y int) error {
	if !tc.world.BulletAt(models.Position{X: x, Y: y}) {
		return fmt.Errorf("no bullet at (%d,%d), bullets: %v", x, y, tc.world.Bullets)
	}
	return nil
}

func (tc *turnContext) thereIsAnAlienAt(x, y int) error {
	if _, ok := tc.world.AlienAt(models.Position{X: x, Y: y}); !ok {
		return fmt.Errorf("no alien at (%d,%d), aliens: %v", x, y, tc.world.Aliens)
	}
	return nil
}

func (tc *turnContext) theScoreIs(score int) error {
	if tc.world.Score != score {
		return fmt.Errorf("expected score %d, got %d", score, tc.world.Score)
	}
	return nil
}

func (tc *turnContext) thePlayerIsAtColumnNow(x int) error {
	if tc.world.Player.Pos.X != x {
		return fmt.Errorf("expected player at column %d, got %d", x, tc.world.Player.Pos.X)
	}
	return nil
}

func (tc *turnContext) thereAreAliensLeft(n int) error {
	if got := tc.world.AlienCount(); got != n {
		return fmt.Errorf("expected %d aliens, got %d", n, got)
	}
	return nil
}

func (tc *turnContext) theSwarmIsSweeping(dir string) error {
	want := 1
	if dir == "left" {
		want = -1
	}
	if tc.world.Direction != want {
		return fmt.Errorf("expected direction %d, got %d", want, tc.world.Direction)
	}
	return nil
}

func (tc *turnContext) theGameIs(state string) error {
	want := map[string]models.Status{
		"in progress": models.InProgress,
		"won":         models.Won,
		"lost":        models.Lost,
	}[state]
	if tc.world.Status != want {
		return fmt.Errorf("expected status %v, got %v", want, tc.world.Status)
	}
	return nil
}

func (tc *turnContext) thePlayerIsAlive() error {
	if !tc.world.Player.Alive {
		return errors.New("expected the player to be alive")
	}
	return nil
}

func (tc *turnContext) theTurnIsRejected() error {
	if !errors.Is(tc.err, ErrAlreadyOver) {
		return fmt.Errorf("expected ErrAlreadyOver, got %v", tc.err)
	}
	return nil
}

func InitializeTurnScenario(sc *godog.ScenarioContext) {
	tc := &turnContext{}

	sc.Before(func(ctx context.Context, s *godog.Scenario) (context.Context, error) {
		tc.reset()
		return ctx, nil
	})

	sc.Step(`^a (\d+) by (\d+) board with the player at column (\d+)$`, tc.aBoardWithThePlayerAtColumn)
	sc.Step(`^an alien at (\d+),(\d+) sweeping (left|right)$`, tc.anAlienAtSweeping)
	sc.Step(`^the player is at column (\d+)$`, tc.thePlayerIsAtColumn)
	sc.Step(`^the player fires$`, tc.thePlayerFires)
	sc.Step(`^the player fires (\d+) times$`, tc.thePlayerFiresTimes)
	sc.Step(`^the player moves (left|right)$`, tc.thePlayerMoves)
	sc.Step(`^the player moves (left|right) (\d+) times$`, tc.thePlayerMovesTimes)
	sc.Step(`^there is a bullet at (\d+),(\d+)$`, tc.thereIsABulletAt)
	sc.Step(`^there is an alien at (\d+),(\d+)$`, tc.thereIsAnAlienAt)
	sc.Step(`^the score is (-?\d+)$`, tc.theScoreIs)
	sc.Step(`^the player ends at column (\d+)$`, tc.thePlayerIsAtColumnNow)
	sc.Step(`^there are (\d+) aliens left$`, tc.thereAreAliensLeft)
	sc.Step(`^the swarm is sweeping (left|right)$`, tc.theSwarmIsSweeping)
	sc.Step(`^the game is (in progress|won|lost)$`, tc.theGameIs)
	sc.Step(`^the player is alive$`, tc.thePlayerIsAlive)
	sc.Step(`^the turn is rejected because the game is over$`, tc.theTurnIsRejected)
}
