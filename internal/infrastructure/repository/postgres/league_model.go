package postgres

import (
	"time"

	"github.com/riskibarqy/tt-league/internal/domain/league"
)

type divisionTableModel struct {
	ID   int64  `db:"id,readonly"`
	Name string `db:"name"`
	Rank int    `db:"rank"`
}

type seasonTableModel struct {
	ID                 int64     `db:"id,readonly"`
	Name               string    `db:"name"`
	ShortName          string    `db:"short_name"`
	Slug               string    `db:"slug"`
	StartDate          time.Time `db:"start_date"`
	EndDate            time.Time `db:"end_date"`
	RegistrationOpens  time.Time `db:"registration_opens"`
	RegistrationCloses time.Time `db:"registration_closes"`
	IsVisible          bool      `db:"is_visible"`
	IsCurrent          bool      `db:"is_current"`
}

type seasonDivisionTableModel struct {
	SeasonID   int64 `db:"season_id"`
	DivisionID int64 `db:"division_id"`
}

type weekTableModel struct {
	ID        int64     `db:"id,readonly"`
	SeasonID  int64     `db:"season_id"`
	Name      string    `db:"name"`
	Details   string    `db:"details"`
	StartDate time.Time `db:"start_date"`
}

func seasonModelOf(s league.Season) seasonTableModel {
	return seasonTableModel{
		Name:               s.Name,
		ShortName:          s.ShortName,
		Slug:               s.Slug,
		StartDate:          league.DateOf(s.StartDate),
		EndDate:            league.DateOf(s.EndDate),
		RegistrationOpens:  s.RegistrationOpens,
		RegistrationCloses: s.RegistrationCloses,
		IsVisible:          s.IsVisible,
		IsCurrent:          s.IsCurrent,
	}
}

func (row seasonTableModel) toDomain(divisionIDs []int64) league.Season {
	return league.Season{
		ID:                 row.ID,
		Name:               row.Name,
		ShortName:          row.ShortName,
		Slug:               row.Slug,
		DivisionIDs:        divisionIDs,
		StartDate:          row.StartDate,
		EndDate:            row.EndDate,
		RegistrationOpens:  row.RegistrationOpens,
		RegistrationCloses: row.RegistrationCloses,
		IsVisible:          row.IsVisible,
		IsCurrent:          row.IsCurrent,
	}
}

func (row weekTableModel) toDomain() league.Week {
	return league.Week{
		ID:        row.ID,
		SeasonID:  row.SeasonID,
		Name:      row.Name,
		Details:   row.Details,
		StartDate: row.StartDate,
	}
}
