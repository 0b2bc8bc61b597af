package catalog

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"

	_ "github.com/mattn/go-sqlite3"

	"github.com/statdle/statdle/internal/model"
)

// LoadFromSQLite loads the catalog from a SQLite stats database.
// Only players with at least one stats season are eligible; a player's
// season table is chosen by position (passing for QB, receiving for WR,
// rushing for everyone else).
func (c *Catalog) LoadFromSQLite(ctx context.Context, path string) error {
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return fmt.Errorf("opening stats database: %w", err)
	}
	defer db.Close()

	players, err := loadPlayers(ctx, db)
	if err != nil {
		return fmt.Errorf("loading players: %w", err)
	}

	eligible := make([]*model.PlayerRecord, 0, len(players))
	for _, p := range players {
		if err := loadSeasons(ctx, db, p); err != nil {
			return fmt.Errorf("loading seasons for %q: %w", p.Name, err)
		}
		if len(p.Seasons) == 0 {
			continue
		}
		eligible = append(eligible, p)
	}

	if err := c.LoadPlayers(eligible); err != nil {
		return err
	}

	c.logger.Info("catalog loaded",
		slog.String("path", path),
		slog.Int("players", len(eligible)),
	)
	return nil
}

func loadPlayers(ctx context.Context, db *sql.DB) ([]*model.PlayerRecord, error) {
	rows, err := db.QueryContext(ctx,
		`SELECT id, name, pfr_id, position FROM players ORDER BY id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var players []*model.PlayerRecord
	for rows.Next() {
		var (
			p     model.PlayerRecord
			pfrID sql.NullString
			pos   string
		)
		if err := rows.Scan(&p.ID, &p.Name, &pfrID, &pos); err != nil {
			return nil, err
		}
		p.PfrID = pfrID.String
		p.Position = model.Position(pos)
		players = append(players, &p)
	}
	return players, rows.Err()
}

func loadSeasons(ctx context.Context, db *sql.DB, p *model.PlayerRecord) error {
	switch p.Position {
	case model.PositionQB:
		return loadPassingSeasons(ctx, db, p)
	case model.PositionWR:
		return loadReceivingSeasons(ctx, db, p)
	default:
		return loadRushingSeasons(ctx, db, p)
	}
}

func loadPassingSeasons(ctx context.Context, db *sql.DB, p *model.PlayerRecord) error {
	rows, err := db.QueryContext(ctx,
		`SELECT season, team, games, games_started,
		        completions, attempts, yards,
		        touchdowns, interceptions,
		        passer_rating, awards
		 FROM passing_seasons
		 WHERE player_id = ?
		 ORDER BY season`, p.ID)
	if err != nil {
		return err
	}
	defer rows.Close()

	for rows.Next() {
		var (
			s    model.Season
			team sql.NullString
		)
		if err := rows.Scan(&s.Year, &team, &s.Games, &s.GamesStarted,
			&s.Completions, &s.PassAttempts, &s.PassYards,
			&s.PassTDs, &s.Interceptions,
			&s.PasserRating, &s.Awards); err != nil {
			return err
		}
		s.Team = team.String
		p.Seasons = append(p.Seasons, s)
	}
	return rows.Err()
}

func loadReceivingSeasons(ctx context.Context, db *sql.DB, p *model.PlayerRecord) error {
	rows, err := db.QueryContext(ctx,
		`SELECT season, team, games, targets, receptions,
		        yards, yards_per_reception, touchdowns, awards
		 FROM receiving_seasons
		 WHERE player_id = ?
		 ORDER BY season`, p.ID)
	if err != nil {
		return err
	}
	defer rows.Close()

	for rows.Next() {
		var (
			s    model.Season
			team sql.NullString
		)
		if err := rows.Scan(&s.Year, &team, &s.Games, &s.Targets, &s.Receptions,
			&s.RecYards, &s.YardsPerReception, &s.RecTDs, &s.Awards); err != nil {
			return err
		}
		s.Team = team.String
		p.Seasons = append(p.Seasons, s)
	}
	return rows.Err()
}

func loadRushingSeasons(ctx context.Context, db *sql.DB, p *model.PlayerRecord) error {
	rows, err := db.QueryContext(ctx,
		`SELECT season, team, games,
		        attempts, yards, yards_per_attempt, touchdowns,
		        receptions, receiving_yards, awards
		 FROM rushing_seasons
		 WHERE player_id = ?
		 ORDER BY season`, p.ID)
	if err != nil {
		return err
	}
	defer rows.Close()

	for rows.Next() {
		var (
			s    model.Season
			team sql.NullString
		)
		if err := rows.Scan(&s.Year, &team, &s.Games,
			&s.RushAttempts, &s.RushYards, &s.YardsPerRush, &s.RushTDs,
			&s.Receptions, &s.RecYards, &s.Awards); err != nil {
			return err
		}
		s.Team = team.String
		p.Seasons = append(p.Seasons, s)
	}
	return rows.Err()
}
