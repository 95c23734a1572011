package postgres

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"
	"github.com/riskibarqy/tt-league/internal/domain/fixture"
	"github.com/riskibarqy/tt-league/internal/platform/dberr"
	qb "github.com/riskibarqy/tt-league/internal/platform/querybuilder"
)

type FixtureRepository struct {
	db *sqlx.DB
}

func NewFixtureRepository(db *sqlx.DB) *FixtureRepository {
	return &FixtureRepository{db: db}
}

func (r *FixtureRepository) List(ctx context.Context, filter fixture.Filter) ([]fixture.Fixture, error) {
	conds := []qb.Condition{qb.Expr("TRUE")}
	if filter.SeasonID != 0 {
		conds = append(conds, qb.Eq("season_id", filter.SeasonID))
	}
	if filter.DivisionID != 0 {
		conds = append(conds, qb.Eq("division_id", filter.DivisionID))
	}
	if filter.TeamID != 0 {
		conds = append(conds, qb.Expr("(home_team_id = ? OR away_team_id = ?)", filter.TeamID, filter.TeamID))
	}
	if filter.ClubID != 0 {
		conds = append(conds, qb.Expr(
			"(home_team_id IN (SELECT id FROM teams WHERE club_id = ?) OR away_team_id IN (SELECT id FROM teams WHERE club_id = ?))",
			filter.ClubID, filter.ClubID,
		))
	}

	query, args, err := qb.Select("*").From("fixtures").
		Where(conds...).
		OrderBy("datetime", "id").
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build select fixtures query: %w", err)
	}

	var rows []fixtureTableModel
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("select fixtures: %w", err)
	}

	out := make([]fixture.Fixture, 0, len(rows))
	for _, row := range rows {
		out = append(out, row.toDomain())
	}
	return out, nil
}

func (r *FixtureRepository) GetByID(ctx context.Context, fixtureID int64) (fixture.Fixture, bool, error) {
	query, args, err := qb.Select("*").From("fixtures").Where(qb.Eq("id", fixtureID)).ToSQL()
	if err != nil {
		return fixture.Fixture{}, false, fmt.Errorf("build get fixture query: %w", err)
	}

	var row fixtureTableModel
	if err := r.db.GetContext(ctx, &row, query, args...); err != nil {
		if isNotFound(err) {
			return fixture.Fixture{}, false, nil
		}
		return fixture.Fixture{}, false, fmt.Errorf("get fixture: %w", err)
	}
	return row.toDomain(), true, nil
}

func (r *FixtureRepository) Create(ctx context.Context, f fixture.Fixture) (fixture.Fixture, error) {
	query, args, err := qb.InsertModel("fixtures", fixtureModelOf(f), "RETURNING id")
	if err != nil {
		return fixture.Fixture{}, fmt.Errorf("build insert fixture query: %w", err)
	}
	if err := r.db.GetContext(ctx, &f.ID, query, args...); err != nil {
		return fixture.Fixture{}, fmt.Errorf("insert fixture: %w", dberr.Classify(err))
	}
	return f, nil
}

func (r *FixtureRepository) Update(ctx context.Context, f fixture.Fixture) error {
	model := fixtureModelOf(f)
	query, args, err := qb.Update("fixtures").
		Set("season_id", model.SeasonID).
		Set("division_id", model.DivisionID).
		Set("week_id", model.WeekID).
		Set("home_team_id", model.HomeTeamID).
		Set("away_team_id", model.AwayTeamID).
		Set("venue_id", model.VenueID).
		Set("datetime", model.Datetime).
		Set("status", model.Status).
		Where(qb.Eq("id", f.ID)).
		ToSQL()
	if err != nil {
		return fmt.Errorf("build update fixture query: %w", err)
	}
	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("update fixture: %w", dberr.Classify(err))
	}
	return nil
}

// Delete cascades to the fixture's result tree through the schema.
func (r *FixtureRepository) Delete(ctx context.Context, fixtureID int64) error {
	query, args, err := qb.DeleteFrom("fixtures").Where(qb.Eq("id", fixtureID)).ToSQL()
	if err != nil {
		return fmt.Errorf("build delete fixture query: %w", err)
	}
	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("delete fixture: %w", dberr.Classify(err))
	}
	return nil
}
