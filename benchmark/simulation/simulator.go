// Package simulation plays engine-versus-engine games for strength
// calibration.
package simulation

import (
	"context"
	"errors"
	"fmt"
	"math/rand"

	"github.com/google/uuid"
	"github.com/notnil/chess"

	"github.com/discochess/patzer"
)

// DefaultMaxPlies caps runaway games that neither side can finish.
const DefaultMaxPlies = 300

// Config describes one self-play run.
type Config struct {
	WhiteElo int
	BlackElo int
	Games    int
	MaxPlies int   // 0 means DefaultMaxPlies
	Seed     int64 // seeds both engines; 0 keeps them time-seeded
}

// Result is the outcome of a single game from White's point of view.
type Result int

const (
	Draw Result = iota
	WhiteWin
	BlackWin
)

// Score returns the game score for White: 1, 0.5 or 0.
func (r Result) Score() float64 {
	switch r {
	case WhiteWin:
		return 1
	case BlackWin:
		return 0
	}
	return 0.5
}

func (r Result) String() string {
	switch r {
	case WhiteWin:
		return "1-0"
	case BlackWin:
		return "0-1"
	}
	return "1/2-1/2"
}

// GameRecord describes one completed game.
type GameRecord struct {
	ID     string // random UUID
	Result Result
	Plies  int
	Nodes  int64 // total search nodes across both engines
	PGN    string
}

// Summary aggregates a full run.
type Summary struct {
	Config    Config
	Records   []GameRecord
	WhiteWins int
	BlackWins int
	Draws     int
}

// WhiteScore returns White's score rate over the run, in [0,1].
func (s *Summary) WhiteScore() float64 {
	if len(s.Records) == 0 {
		return 0
	}
	var total float64
	for _, r := range s.Records {
		total += r.Result.Score()
	}
	return total / float64(len(s.Records))
}

// Scores returns the per-game White scores, in game order.
func (s *Summary) Scores() []float64 {
	scores := make([]float64, len(s.Records))
	for i, r := range s.Records {
		scores[i] = r.Result.Score()
	}
	return scores
}

// Simulator runs self-play games between two strength settings.
type Simulator struct {
	cfg   Config
	white *patzer.Engine
	black *patzer.Engine
}

// New creates a Simulator for the given configuration.
func New(cfg Config) (*Simulator, error) {
	if cfg.Games <= 0 {
		return nil, errors.New("simulation: games must be positive")
	}
	if cfg.MaxPlies <= 0 {
		cfg.MaxPlies = DefaultMaxPlies
	}

	whiteOpts := []patzer.Option{patzer.WithElo(cfg.WhiteElo)}
	blackOpts := []patzer.Option{patzer.WithElo(cfg.BlackElo)}
	if cfg.Seed != 0 {
		whiteOpts = append(whiteOpts, patzer.WithRandom(rand.New(rand.NewSource(cfg.Seed))))
		blackOpts = append(blackOpts, patzer.WithRandom(rand.New(rand.NewSource(cfg.Seed+1))))
	}

	white, err := patzer.New(whiteOpts...)
	if err != nil {
		return nil, fmt.Errorf("creating white engine: %w", err)
	}
	black, err := patzer.New(blackOpts...)
	if err != nil {
		return nil, fmt.Errorf("creating black engine: %w", err)
	}

	return &Simulator{cfg: cfg, white: white, black: black}, nil
}

// Run plays every configured game and returns the aggregated summary.
func (s *Simulator) Run(ctx context.Context) (*Summary, error) {
	summary := &Summary{
		Config:  s.cfg,
		Records: make([]GameRecord, 0, s.cfg.Games),
	}

	for i := 0; i < s.cfg.Games; i++ {
		record, err := s.playGame(ctx)
		if err != nil {
			return nil, fmt.Errorf("game %d: %w", i+1, err)
		}
		summary.Records = append(summary.Records, record)

		switch record.Result {
		case WhiteWin:
			summary.WhiteWins++
		case BlackWin:
			summary.BlackWins++
		default:
			summary.Draws++
		}
	}

	return summary, nil
}

// playGame plays a single game to completion or the ply cap.
func (s *Simulator) playGame(ctx context.Context) (GameRecord, error) {
	game := chess.NewGame()
	record := GameRecord{ID: uuid.NewString()}

	for game.Outcome() == chess.NoOutcome && record.Plies < s.cfg.MaxPlies {
		eng := s.white
		if game.Position().Turn() == chess.Black {
			eng = s.black
		}

		sel, err := eng.SelectMove(ctx, game.Position())
		if err != nil {
			if errors.Is(err, patzer.ErrNoLegalMoves) {
				break
			}
			return GameRecord{}, err
		}
		if err := game.Move(sel.Move); err != nil {
			return GameRecord{}, fmt.Errorf("applying %s: %w", sel.Move, err)
		}

		record.Plies++
		record.Nodes += sel.Nodes
	}

	switch game.Outcome() {
	case chess.WhiteWon:
		record.Result = WhiteWin
	case chess.BlackWon:
		record.Result = BlackWin
	default:
		// Drawn, or the ply cap was reached.
		record.Result = Draw
	}
	record.PGN = game.String()

	return record, nil
}
