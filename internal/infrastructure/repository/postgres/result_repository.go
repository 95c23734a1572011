package postgres

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"
	"github.com/riskibarqy/tt-league/internal/domain/fixture"
	"github.com/riskibarqy/tt-league/internal/domain/result"
	"github.com/riskibarqy/tt-league/internal/platform/dberr"
	qb "github.com/riskibarqy/tt-league/internal/platform/querybuilder"
)

type ResultRepository struct {
	db *sqlx.DB
}

func NewResultRepository(db *sqlx.DB) *ResultRepository {
	return &ResultRepository{db: db}
}

func (r *ResultRepository) GetByID(ctx context.Context, resultID int64) (result.FixtureResult, bool, error) {
	return r.getResult(ctx, qb.Eq("id", resultID))
}

func (r *ResultRepository) GetByFixture(ctx context.Context, fixtureID int64) (result.FixtureResult, bool, error) {
	return r.getResult(ctx, qb.Eq("fixture_id", fixtureID))
}

func (r *ResultRepository) getResult(ctx context.Context, cond qb.Condition) (result.FixtureResult, bool, error) {
	query, args, err := qb.Select("*").From("fixture_results").Where(cond).ToSQL()
	if err != nil {
		return result.FixtureResult{}, false, fmt.Errorf("build get fixture result query: %w", err)
	}

	var row fixtureResultTableModel
	if err := r.db.GetContext(ctx, &row, query, args...); err != nil {
		if isNotFound(err) {
			return result.FixtureResult{}, false, nil
		}
		return result.FixtureResult{}, false, fmt.Errorf("get fixture result: %w", err)
	}
	return row.toDomain(), true, nil
}

func (r *ResultRepository) ListByFixtures(ctx context.Context, fixtureIDs []int64) ([]result.FixtureResult, error) {
	query, args, err := qb.Select("*").From("fixture_results").
		Where(qb.In("fixture_id", int64sToAny(fixtureIDs))).
		OrderBy("id").
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build select fixture results query: %w", err)
	}

	var rows []fixtureResultTableModel
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("select fixture results: %w", err)
	}

	out := make([]result.FixtureResult, 0, len(rows))
	for _, row := range rows {
		out = append(out, row.toDomain())
	}
	return out, nil
}

func (r *ResultRepository) Create(ctx context.Context, res result.FixtureResult) (result.FixtureResult, error) {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return result.FixtureResult{}, fmt.Errorf("begin tx create fixture result: %w", err)
	}
	defer func() {
		_ = tx.Rollback()
	}()

	query, args, err := qb.InsertModel("fixture_results", fixtureResultModelOf(res), "RETURNING id")
	if err != nil {
		return result.FixtureResult{}, fmt.Errorf("build insert fixture result query: %w", err)
	}
	if err := tx.GetContext(ctx, &res.ID, query, args...); err != nil {
		return result.FixtureResult{}, fmt.Errorf("insert fixture result: %w", dberr.Classify(err))
	}

	query, args, err = qb.Update("fixtures").
		Set("status", string(fixture.StatusCompleted)).
		Where(qb.Eq("id", res.FixtureID)).
		ToSQL()
	if err != nil {
		return result.FixtureResult{}, fmt.Errorf("build complete fixture query: %w", err)
	}
	if _, err := tx.ExecContext(ctx, query, args...); err != nil {
		return result.FixtureResult{}, fmt.Errorf("complete fixture: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return result.FixtureResult{}, fmt.Errorf("commit create fixture result tx: %w", err)
	}
	return res, nil
}

// Update rewrites the score columns; the fixture and creation time stay.
func (r *ResultRepository) Update(ctx context.Context, res result.FixtureResult) error {
	query, args, err := qb.Update("fixture_results").
		Set("home_score", res.HomeScore).
		Set("away_score", res.AwayScore).
		Set("winner", string(res.Winner)).
		Set("status", string(res.Status)).
		Where(qb.Eq("id", res.ID)).
		ToSQL()
	if err != nil {
		return fmt.Errorf("build update fixture result query: %w", err)
	}
	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("update fixture result: %w", dberr.Classify(err))
	}
	return nil
}

func (r *ResultRepository) Delete(ctx context.Context, resultID int64) error {
	return r.deleteRow(ctx, "fixture_results", resultID)
}

func (r *ResultRepository) ListSingles(ctx context.Context, resultID int64) ([]result.SinglesMatch, error) {
	query, args, err := qb.Select("*").From("singles_matches").
		Where(qb.Eq("result_id", resultID)).
		OrderBy("id").
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build select singles matches query: %w", err)
	}

	var rows []singlesMatchTableModel
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("select singles matches: %w", err)
	}
	if len(rows) == 0 {
		return nil, nil
	}

	matchIDs := make([]int64, 0, len(rows))
	for _, row := range rows {
		matchIDs = append(matchIDs, row.ID)
	}
	games, err := r.games(ctx, "singles_match_id", matchIDs)
	if err != nil {
		return nil, err
	}

	out := make([]result.SinglesMatch, 0, len(rows))
	for _, row := range rows {
		out = append(out, result.SinglesMatch{
			ID:           row.ID,
			ResultID:     row.ResultID,
			HomePlayerID: row.HomePlayerID,
			AwayPlayerID: row.AwayPlayerID,
			HomeSets:     row.HomeSets,
			AwaySets:     row.AwaySets,
			Winner:       result.Winner(row.Winner),
			Games:        games[row.ID],
		})
	}
	return out, nil
}

func (r *ResultRepository) CreateSingles(ctx context.Context, m result.SinglesMatch) (result.SinglesMatch, error) {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return result.SinglesMatch{}, fmt.Errorf("begin tx create singles match: %w", err)
	}
	defer func() {
		_ = tx.Rollback()
	}()

	model := singlesMatchTableModel{
		ResultID:     m.ResultID,
		HomePlayerID: m.HomePlayerID,
		AwayPlayerID: m.AwayPlayerID,
		HomeSets:     m.HomeSets,
		AwaySets:     m.AwaySets,
		Winner:       string(m.Winner),
	}
	query, args, err := qb.InsertModel("singles_matches", model, "RETURNING id")
	if err != nil {
		return result.SinglesMatch{}, fmt.Errorf("build insert singles match query: %w", err)
	}
	if err := tx.GetContext(ctx, &m.ID, query, args...); err != nil {
		return result.SinglesMatch{}, fmt.Errorf("insert singles match: %w", dberr.Classify(err))
	}

	games, err := insertGames(ctx, tx, "singles_match_id", m.ID, m.Games)
	if err != nil {
		return result.SinglesMatch{}, err
	}
	m.Games = games

	if err := tx.Commit(); err != nil {
		return result.SinglesMatch{}, fmt.Errorf("commit create singles match tx: %w", err)
	}
	return m, nil
}

func (r *ResultRepository) DeleteSingles(ctx context.Context, matchID int64) error {
	return r.deleteRow(ctx, "singles_matches", matchID)
}

func (r *ResultRepository) GetDoubles(ctx context.Context, resultID int64) (result.DoublesMatch, bool, error) {
	query, args, err := qb.Select("*").From("doubles_matches").Where(qb.Eq("result_id", resultID)).ToSQL()
	if err != nil {
		return result.DoublesMatch{}, false, fmt.Errorf("build get doubles match query: %w", err)
	}

	var row doublesMatchTableModel
	if err := r.db.GetContext(ctx, &row, query, args...); err != nil {
		if isNotFound(err) {
			return result.DoublesMatch{}, false, nil
		}
		return result.DoublesMatch{}, false, fmt.Errorf("get doubles match: %w", err)
	}

	m := result.DoublesMatch{
		ID:       row.ID,
		ResultID: row.ResultID,
		HomeSets: row.HomeSets,
		AwaySets: row.AwaySets,
		Winner:   result.Winner(row.Winner),
	}

	query, args, err = qb.Select("*").From("doubles_match_players").
		Where(qb.Eq("match_id", row.ID)).
		OrderBy("side", "position").
		ToSQL()
	if err != nil {
		return result.DoublesMatch{}, false, fmt.Errorf("build select doubles players query: %w", err)
	}
	var players []doublesPlayerTableModel
	if err := r.db.SelectContext(ctx, &players, query, args...); err != nil {
		return result.DoublesMatch{}, false, fmt.Errorf("select doubles players: %w", err)
	}
	for _, p := range players {
		if p.Side == sideHome {
			m.HomePlayerIDs = append(m.HomePlayerIDs, p.TeamPlayerID)
		} else {
			m.AwayPlayerIDs = append(m.AwayPlayerIDs, p.TeamPlayerID)
		}
	}

	games, err := r.games(ctx, "doubles_match_id", []int64{row.ID})
	if err != nil {
		return result.DoublesMatch{}, false, err
	}
	m.Games = games[row.ID]
	return m, true, nil
}

// SaveDoubles writes the match row then replaces its players and games.
func (r *ResultRepository) SaveDoubles(ctx context.Context, m result.DoublesMatch) (result.DoublesMatch, error) {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return result.DoublesMatch{}, fmt.Errorf("begin tx save doubles match: %w", err)
	}
	defer func() {
		_ = tx.Rollback()
	}()

	updated := false
	if m.ID != 0 {
		query, args, err := qb.Update("doubles_matches").
			Set("home_sets", m.HomeSets).
			Set("away_sets", m.AwaySets).
			Set("winner", string(m.Winner)).
			Where(qb.Eq("id", m.ID), qb.Eq("result_id", m.ResultID)).
			ToSQL()
		if err != nil {
			return result.DoublesMatch{}, fmt.Errorf("build update doubles match query: %w", err)
		}
		res, err := tx.ExecContext(ctx, query, args...)
		if err != nil {
			return result.DoublesMatch{}, fmt.Errorf("update doubles match: %w", dberr.Classify(err))
		}
		n, err := res.RowsAffected()
		if err != nil {
			return result.DoublesMatch{}, fmt.Errorf("update doubles match rows: %w", err)
		}
		updated = n > 0
	}

	if updated {
		for _, table := range []string{"doubles_match_players", "games"} {
			column := "match_id"
			if table == "games" {
				column = "doubles_match_id"
			}
			query, args, err := qb.DeleteFrom(table).Where(qb.Eq(column, m.ID)).ToSQL()
			if err != nil {
				return result.DoublesMatch{}, fmt.Errorf("build clear %s query: %w", table, err)
			}
			if _, err := tx.ExecContext(ctx, query, args...); err != nil {
				return result.DoublesMatch{}, fmt.Errorf("clear %s: %w", table, err)
			}
		}
	} else {
		model := doublesMatchTableModel{
			ResultID: m.ResultID,
			HomeSets: m.HomeSets,
			AwaySets: m.AwaySets,
			Winner:   string(m.Winner),
		}
		query, args, err := qb.InsertModel("doubles_matches", model, "RETURNING id")
		if err != nil {
			return result.DoublesMatch{}, fmt.Errorf("build insert doubles match query: %w", err)
		}
		if err := tx.GetContext(ctx, &m.ID, query, args...); err != nil {
			return result.DoublesMatch{}, fmt.Errorf("insert doubles match: %w", dberr.Classify(err))
		}
	}

	insert := qb.InsertInto("doubles_match_players").Columns("match_id", "team_player_id", "side", "position")
	rows := 0
	for i, id := range m.HomePlayerIDs {
		insert.Values(m.ID, id, sideHome, i+1)
		rows++
	}
	for i, id := range m.AwayPlayerIDs {
		insert.Values(m.ID, id, sideAway, i+1)
		rows++
	}
	if rows > 0 {
		query, args, err := insert.ToSQL()
		if err != nil {
			return result.DoublesMatch{}, fmt.Errorf("build insert doubles players query: %w", err)
		}
		if _, err := tx.ExecContext(ctx, query, args...); err != nil {
			return result.DoublesMatch{}, fmt.Errorf("insert doubles players: %w", dberr.Classify(err))
		}
	}

	games, err := insertGames(ctx, tx, "doubles_match_id", m.ID, m.Games)
	if err != nil {
		return result.DoublesMatch{}, err
	}
	m.Games = games

	if err := tx.Commit(); err != nil {
		return result.DoublesMatch{}, fmt.Errorf("commit save doubles match tx: %w", err)
	}
	return m, nil
}

func (r *ResultRepository) DeleteDoubles(ctx context.Context, matchID int64) error {
	return r.deleteRow(ctx, "doubles_matches", matchID)
}

func (r *ResultRepository) deleteRow(ctx context.Context, table string, id int64) error {
	query, args, err := qb.DeleteFrom(table).Where(qb.Eq("id", id)).ToSQL()
	if err != nil {
		return fmt.Errorf("build delete %s query: %w", table, err)
	}
	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("delete %s: %w", table, dberr.Classify(err))
	}
	return nil
}

// games loads the games of the given matches keyed by match id, in set order.
func (r *ResultRepository) games(ctx context.Context, parentColumn string, matchIDs []int64) (map[int64][]result.Game, error) {
	query, args, err := qb.Select("*").From("games").
		Where(qb.In(parentColumn, int64sToAny(matchIDs))).
		OrderBy(parentColumn, "set_num").
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build select games query: %w", err)
	}

	var rows []gameTableModel
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("select games: %w", err)
	}

	out := make(map[int64][]result.Game, len(matchIDs))
	for _, row := range rows {
		matchID := row.SinglesMatchID.Int64
		if row.DoublesMatchID.Valid {
			matchID = row.DoublesMatchID.Int64
		}
		out[matchID] = append(out[matchID], row.toDomain(matchID))
	}
	return out, nil
}

func insertGames(ctx context.Context, tx *sqlx.Tx, parentColumn string, matchID int64, games []result.Game) ([]result.Game, error) {
	if len(games) == 0 {
		return nil, nil
	}

	insert := qb.InsertInto("games").Columns(parentColumn, "set_num", "home_points", "away_points", "winner")
	for _, g := range games {
		insert.Values(matchID, g.SetNum, g.HomePoints, g.AwayPoints, string(g.Winner))
	}
	query, args, err := insert.Suffix("RETURNING id").ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build insert games query: %w", err)
	}

	var ids []int64
	if err := tx.SelectContext(ctx, &ids, query, args...); err != nil {
		return nil, fmt.Errorf("insert games: %w", dberr.Classify(err))
	}

	out := make([]result.Game, len(games))
	for i, g := range games {
		g.MatchID = matchID
		if i < len(ids) {
			g.ID = ids[i]
		}
		out[i] = g
	}
	return out, nil
}
