// Package testdata fills a history database with simulated rounds.
package testdata

import (
	"context"
	"math/rand/v2"
	"time"

	"github.com/jask/guesstimate/internal/angle"
	"github.com/jask/guesstimate/internal/config"
	"github.com/jask/guesstimate/internal/database/repository"
	"github.com/jask/guesstimate/internal/fraction"
)

// Inserter stores one round.
type Inserter interface {
	Insert(ctx context.Context, r repository.Round) (repository.Round, error)
}

// Seed plays n rounds, alternating games, with guesses scattered around the
// target, and records them a minute apart ending at now.
func Seed(ctx context.Context, repo Inserter, rng *rand.Rand, n int, now time.Time) error {
	th := fraction.DefaultThresholds()
	for i := 0; i < n; i++ {
		var rd repository.Round
		if i%2 == 0 {
			rd = playAngle(rng)
		} else {
			r, err := playFraction(rng, th)
			if err != nil {
				return err
			}
			rd = r
		}
		rd.CreatedAt = now.Add(-time.Duration(n-1-i) * time.Minute).UTC()
		if _, err := repo.Insert(ctx, rd); err != nil {
			return err
		}
	}
	return nil
}

func playAngle(rng *rand.Rand) repository.Round {
	g := angle.NewGame(rng, angle.Degrees)
	// Most guesses land within 15 degrees, a few far off.
	off := rng.NormFloat64() * 15
	g.PointerDown()
	g.PointerMove(angle.PointAt(angle.Center, angle.ArmLength, g.Target()+angle.FromDegrees(off)))
	g.PointerUp()
	grade, _ := g.Submit()
	return repository.Round{
		Game:       config.GameAngle,
		Target:     angle.Format(g.Target(), g.Unit()),
		Guess:      angle.Format(g.Current(), g.Unit()),
		TargetVal:  angle.NormalizeDegrees(g.Target()),
		GuessVal:   angle.NormalizeDegrees(g.Current()),
		Difference: g.Diff(),
		Grade:      string(grade),
		Unit:       g.Unit().String(),
	}
}

func playFraction(rng *rand.Rand, th fraction.Thresholds) (repository.Round, error) {
	g, err := fraction.NewGame(rng, fraction.Fractional)
	if err != nil {
		return repository.Round{}, err
	}
	guess := g.Target().Float() + rng.NormFloat64()*0.08
	g.PointerDown()
	g.PointerMove(fraction.BarX + guess*fraction.BarWidth)
	g.PointerUp()
	grade, _ := g.Submit()
	return repository.Round{
		Game:       config.GameFraction,
		Target:     fraction.FormatTarget(g.Target(), g.Unit()),
		Guess:      fraction.Format(g.Current(), g.Unit(), th),
		TargetVal:  g.Target().Float(),
		GuessVal:   g.Current(),
		Difference: g.Diff(),
		Grade:      string(grade),
		Unit:       g.Unit().String(),
	}, nil
}
