package postgres

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"
	"github.com/riskibarqy/tt-league/internal/domain/league"
	"github.com/riskibarqy/tt-league/internal/platform/dberr"
	qb "github.com/riskibarqy/tt-league/internal/platform/querybuilder"
)

type LeagueRepository struct {
	db *sqlx.DB
}

func NewLeagueRepository(db *sqlx.DB) *LeagueRepository {
	return &LeagueRepository{db: db}
}

func (r *LeagueRepository) ListDivisions(ctx context.Context) ([]league.Division, error) {
	query, args, err := qb.Select("*").From("divisions").OrderBy("rank", "id").ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build select divisions query: %w", err)
	}

	var rows []divisionTableModel
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("select divisions: %w", err)
	}

	out := make([]league.Division, 0, len(rows))
	for _, row := range rows {
		out = append(out, league.Division{ID: row.ID, Name: row.Name, Rank: row.Rank})
	}
	return out, nil
}

func (r *LeagueRepository) GetDivision(ctx context.Context, divisionID int64) (league.Division, bool, error) {
	query, args, err := qb.Select("*").From("divisions").Where(qb.Eq("id", divisionID)).ToSQL()
	if err != nil {
		return league.Division{}, false, fmt.Errorf("build get division query: %w", err)
	}

	var row divisionTableModel
	if err := r.db.GetContext(ctx, &row, query, args...); err != nil {
		if isNotFound(err) {
			return league.Division{}, false, nil
		}
		return league.Division{}, false, fmt.Errorf("get division: %w", err)
	}
	return league.Division{ID: row.ID, Name: row.Name, Rank: row.Rank}, true, nil
}

func (r *LeagueRepository) CreateDivision(ctx context.Context, d league.Division) (league.Division, error) {
	query, args, err := qb.InsertModel("divisions", divisionTableModel{Name: d.Name, Rank: d.Rank}, "RETURNING id")
	if err != nil {
		return league.Division{}, fmt.Errorf("build insert division query: %w", err)
	}
	if err := r.db.GetContext(ctx, &d.ID, query, args...); err != nil {
		return league.Division{}, fmt.Errorf("insert division: %w", dberr.Classify(err))
	}
	return d, nil
}

func (r *LeagueRepository) UpdateDivision(ctx context.Context, d league.Division) error {
	query, args, err := qb.Update("divisions").
		Set("name", d.Name).
		Set("rank", d.Rank).
		Where(qb.Eq("id", d.ID)).
		ToSQL()
	if err != nil {
		return fmt.Errorf("build update division query: %w", err)
	}
	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("update division: %w", dberr.Classify(err))
	}
	return nil
}

func (r *LeagueRepository) DeleteDivision(ctx context.Context, divisionID int64) error {
	query, args, err := qb.DeleteFrom("divisions").Where(qb.Eq("id", divisionID)).ToSQL()
	if err != nil {
		return fmt.Errorf("build delete division query: %w", err)
	}
	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("delete division: %w", dberr.Classify(err))
	}
	return nil
}

func (r *LeagueRepository) CountSeasonsForDivision(ctx context.Context, divisionID int64) (int, error) {
	query, args, err := qb.Select("COUNT(*)").From("season_divisions").Where(qb.Eq("division_id", divisionID)).ToSQL()
	if err != nil {
		return 0, fmt.Errorf("build count division seasons query: %w", err)
	}

	var count int
	if err := r.db.GetContext(ctx, &count, query, args...); err != nil {
		return 0, fmt.Errorf("count division seasons: %w", err)
	}
	return count, nil
}

func (r *LeagueRepository) ListSeasons(ctx context.Context) ([]league.Season, error) {
	query, args, err := qb.Select("*").From("seasons").OrderBy("start_date DESC", "id DESC").ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build select seasons query: %w", err)
	}
	return r.selectSeasons(ctx, query, args)
}

func (r *LeagueRepository) GetSeason(ctx context.Context, seasonID int64) (league.Season, bool, error) {
	return r.getSeason(ctx, qb.Eq("id", seasonID))
}

func (r *LeagueRepository) GetSeasonBySlug(ctx context.Context, slug string) (league.Season, bool, error) {
	return r.getSeason(ctx, qb.Eq("slug", slug))
}

func (r *LeagueRepository) GetCurrentSeason(ctx context.Context) (league.Season, bool, error) {
	return r.getSeason(ctx, qb.Expr("is_current"))
}

func (r *LeagueRepository) getSeason(ctx context.Context, cond qb.Condition) (league.Season, bool, error) {
	query, args, err := qb.Select("*").From("seasons").Where(cond).Limit(1).ToSQL()
	if err != nil {
		return league.Season{}, false, fmt.Errorf("build get season query: %w", err)
	}

	seasons, err := r.selectSeasons(ctx, query, args)
	if err != nil {
		return league.Season{}, false, err
	}
	if len(seasons) == 0 {
		return league.Season{}, false, nil
	}
	return seasons[0], true, nil
}

func (r *LeagueRepository) selectSeasons(ctx context.Context, query string, args []any) ([]league.Season, error) {
	var rows []seasonTableModel
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("select seasons: %w", err)
	}
	if len(rows) == 0 {
		return nil, nil
	}

	seasonIDs := make([]int64, 0, len(rows))
	for _, row := range rows {
		seasonIDs = append(seasonIDs, row.ID)
	}
	divisions, err := r.seasonDivisions(ctx, seasonIDs)
	if err != nil {
		return nil, err
	}

	out := make([]league.Season, 0, len(rows))
	for _, row := range rows {
		out = append(out, row.toDomain(divisions[row.ID]))
	}
	return out, nil
}

func (r *LeagueRepository) seasonDivisions(ctx context.Context, seasonIDs []int64) (map[int64][]int64, error) {
	query, args, err := qb.Select("sd.season_id", "sd.division_id").
		From("season_divisions sd JOIN divisions d ON d.id = sd.division_id").
		Where(qb.In("sd.season_id", int64sToAny(seasonIDs))).
		OrderBy("sd.season_id", "d.rank").
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build select season divisions query: %w", err)
	}

	var rows []seasonDivisionTableModel
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("select season divisions: %w", err)
	}

	out := make(map[int64][]int64, len(seasonIDs))
	for _, row := range rows {
		out[row.SeasonID] = append(out[row.SeasonID], row.DivisionID)
	}
	return out, nil
}

func (r *LeagueRepository) CreateSeason(ctx context.Context, s league.Season) (league.Season, error) {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return league.Season{}, fmt.Errorf("begin tx create season: %w", err)
	}
	defer func() {
		_ = tx.Rollback()
	}()

	if s.IsCurrent {
		if err := clearCurrentSeason(ctx, tx, 0); err != nil {
			return league.Season{}, err
		}
	}

	query, args, err := qb.InsertModel("seasons", seasonModelOf(s), "RETURNING id")
	if err != nil {
		return league.Season{}, fmt.Errorf("build insert season query: %w", err)
	}
	if err := tx.GetContext(ctx, &s.ID, query, args...); err != nil {
		return league.Season{}, fmt.Errorf("insert season: %w", dberr.Classify(err))
	}
	if err := syncSeasonDivisions(ctx, tx, s.ID, s.DivisionIDs); err != nil {
		return league.Season{}, err
	}

	if err := tx.Commit(); err != nil {
		return league.Season{}, fmt.Errorf("commit create season tx: %w", err)
	}
	return s, nil
}

func (r *LeagueRepository) UpdateSeason(ctx context.Context, s league.Season) error {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin tx update season: %w", err)
	}
	defer func() {
		_ = tx.Rollback()
	}()

	if s.IsCurrent {
		if err := clearCurrentSeason(ctx, tx, s.ID); err != nil {
			return err
		}
	}

	model := seasonModelOf(s)
	query, args, err := qb.Update("seasons").
		Set("name", model.Name).
		Set("short_name", model.ShortName).
		Set("slug", model.Slug).
		Set("start_date", model.StartDate).
		Set("end_date", model.EndDate).
		Set("registration_opens", model.RegistrationOpens).
		Set("registration_closes", model.RegistrationCloses).
		Set("is_visible", model.IsVisible).
		Set("is_current", model.IsCurrent).
		Where(qb.Eq("id", s.ID)).
		ToSQL()
	if err != nil {
		return fmt.Errorf("build update season query: %w", err)
	}
	res, err := tx.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("update season: %w", dberr.Classify(err))
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return nil
	}
	if err := syncSeasonDivisions(ctx, tx, s.ID, s.DivisionIDs); err != nil {
		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit update season tx: %w", err)
	}
	return nil
}

func (r *LeagueRepository) SetCurrentSeason(ctx context.Context, seasonID int64) error {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin tx set current season: %w", err)
	}
	defer func() {
		_ = tx.Rollback()
	}()

	if err := clearCurrentSeason(ctx, tx, seasonID); err != nil {
		return err
	}
	query, args, err := qb.Update("seasons").Set("is_current", true).Where(qb.Eq("id", seasonID)).ToSQL()
	if err != nil {
		return fmt.Errorf("build set current season query: %w", err)
	}
	if _, err := tx.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("set current season: %w", dberr.Classify(err))
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit set current season tx: %w", err)
	}
	return nil
}

// clearCurrentSeason drops the current flag from every season except keepID.
func clearCurrentSeason(ctx context.Context, tx *sqlx.Tx, keepID int64) error {
	query, args, err := qb.Update("seasons").
		Set("is_current", false).
		Where(qb.Expr("is_current"), qb.Expr("id <> ?", keepID)).
		ToSQL()
	if err != nil {
		return fmt.Errorf("build clear current season query: %w", err)
	}
	if _, err := tx.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("clear current season: %w", err)
	}
	return nil
}

// syncSeasonDivisions makes the season's division links equal divisionIDs.
// Removing a division still used by a team fails on the teams foreign key.
func syncSeasonDivisions(ctx context.Context, tx *sqlx.Tx, seasonID int64, divisionIDs []int64) error {
	query, args, err := qb.DeleteFrom("season_divisions").
		Where(qb.Eq("season_id", seasonID), qb.NotIn("division_id", int64sToAny(divisionIDs))).
		ToSQL()
	if err != nil {
		return fmt.Errorf("build prune season divisions query: %w", err)
	}
	if _, err := tx.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("prune season divisions: %w", dberr.Classify(err))
	}

	if len(divisionIDs) == 0 {
		return nil
	}
	insert := qb.InsertInto("season_divisions").Columns("season_id", "division_id")
	for _, divisionID := range divisionIDs {
		insert.Values(seasonID, divisionID)
	}
	query, args, err = insert.Suffix("ON CONFLICT (season_id, division_id) DO NOTHING").ToSQL()
	if err != nil {
		return fmt.Errorf("build insert season divisions query: %w", err)
	}
	if _, err := tx.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("insert season divisions: %w", dberr.Classify(err))
	}
	return nil
}

func (r *LeagueRepository) ListWeeks(ctx context.Context, seasonID int64) ([]league.Week, error) {
	query, args, err := qb.Select("*").From("weeks").
		Where(qb.Eq("season_id", seasonID)).
		OrderBy("start_date", "id").
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build select weeks query: %w", err)
	}

	var rows []weekTableModel
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("select weeks: %w", err)
	}

	out := make([]league.Week, 0, len(rows))
	for _, row := range rows {
		out = append(out, row.toDomain())
	}
	return out, nil
}

func (r *LeagueRepository) GetWeek(ctx context.Context, weekID int64) (league.Week, bool, error) {
	query, args, err := qb.Select("*").From("weeks").Where(qb.Eq("id", weekID)).ToSQL()
	if err != nil {
		return league.Week{}, false, fmt.Errorf("build get week query: %w", err)
	}

	var row weekTableModel
	if err := r.db.GetContext(ctx, &row, query, args...); err != nil {
		if isNotFound(err) {
			return league.Week{}, false, nil
		}
		return league.Week{}, false, fmt.Errorf("get week: %w", err)
	}
	return row.toDomain(), true, nil
}

func (r *LeagueRepository) CreateWeek(ctx context.Context, w league.Week) (league.Week, error) {
	model := weekTableModel{
		SeasonID:  w.SeasonID,
		Name:      w.Name,
		Details:   w.Details,
		StartDate: league.DateOf(w.StartDate),
	}
	query, args, err := qb.InsertModel("weeks", model, "RETURNING id")
	if err != nil {
		return league.Week{}, fmt.Errorf("build insert week query: %w", err)
	}
	if err := r.db.GetContext(ctx, &w.ID, query, args...); err != nil {
		return league.Week{}, fmt.Errorf("insert week: %w", dberr.Classify(err))
	}
	return w, nil
}
