package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/riskibarqy/tt-league/internal/domain/club"
	"github.com/riskibarqy/tt-league/internal/domain/fixture"
	"github.com/riskibarqy/tt-league/internal/domain/league"
	"github.com/riskibarqy/tt-league/internal/domain/player"
	"github.com/riskibarqy/tt-league/internal/domain/team"
	"github.com/riskibarqy/tt-league/internal/domain/venue"
	"github.com/riskibarqy/tt-league/internal/infrastructure/repository/memory"
)

type seedStatement struct {
	label string
	query string
	args  map[string]any
}

var seededTables = []string{
	"divisions", "seasons", "weeks", "clubs", "club_infos", "venues",
	"venue_infos", "players", "teams", "team_players", "fixtures",
}

// BootstrapSeed loads a YAML seed into an empty database, keeping the seed's
// ids, and moves every id sequence past them. A database that already has
// divisions is left untouched.
func BootstrapSeed(ctx context.Context, db *sqlx.DB, seed memory.Seed, now time.Time) error {
	var count int
	if err := db.GetContext(ctx, &count, `SELECT COUNT(1) FROM divisions`); err != nil {
		return fmt.Errorf("count divisions for bootstrap seed: %w", err)
	}
	if count > 0 {
		return nil
	}

	statements, err := seedStatements(seed, now)
	if err != nil {
		return err
	}

	tx, err := db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin seed tx: %w", err)
	}
	defer func() {
		_ = tx.Rollback()
	}()

	for _, stmt := range statements {
		sqlQuery, args, err := sqlx.Named(stmt.query, stmt.args)
		if err != nil {
			return fmt.Errorf("bind seed %s query: %w", stmt.label, err)
		}
		if _, err := tx.ExecContext(ctx, tx.Rebind(sqlQuery), args...); err != nil {
			return fmt.Errorf("insert seed %s: %w", stmt.label, err)
		}
	}

	for _, table := range seededTables {
		query := fmt.Sprintf(`SELECT setval(pg_get_serial_sequence('%s', 'id'), COALESCE(MAX(id), 0) + 1, false) FROM %s`, table, table)
		if _, err := tx.ExecContext(ctx, query); err != nil {
			return fmt.Errorf("reset %s sequence: %w", table, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit seed tx: %w", err)
	}
	return nil
}

func seedStatements(seed memory.Seed, now time.Time) ([]seedStatement, error) {
	var out []seedStatement
	add := func(label, query string, args map[string]any) {
		out = append(out, seedStatement{label: label, query: query, args: args})
	}

	for _, d := range seed.Divisions {
		add("division "+d.Name, `INSERT INTO divisions (id, name, rank) VALUES (:id, :name, :rank)`, map[string]any{
			"id": d.ID, "name": d.Name, "rank": d.Rank,
		})
	}
	for _, s := range seed.Seasons {
		model := seasonModelOf(league.Season{
			Name:               s.Name,
			ShortName:          s.ShortName,
			Slug:               s.Slug,
			StartDate:          s.StartDate,
			EndDate:            s.EndDate,
			RegistrationOpens:  s.RegistrationOpens,
			RegistrationCloses: s.RegistrationCloses,
			IsVisible:          s.IsVisible,
			IsCurrent:          s.IsCurrent,
		})
		add("season "+s.Slug, `
INSERT INTO seasons (id, name, short_name, slug, start_date, end_date, registration_opens, registration_closes, is_visible, is_current)
VALUES (:id, :name, :short_name, :slug, :start_date, :end_date, :registration_opens, :registration_closes, :is_visible, :is_current)`, map[string]any{
			"id":                  s.ID,
			"name":                model.Name,
			"short_name":          model.ShortName,
			"slug":                model.Slug,
			"start_date":          model.StartDate,
			"end_date":            model.EndDate,
			"registration_opens":  model.RegistrationOpens,
			"registration_closes": model.RegistrationCloses,
			"is_visible":          model.IsVisible,
			"is_current":          model.IsCurrent,
		})
		for _, divisionID := range s.Divisions {
			add(fmt.Sprintf("season %s division %d", s.Slug, divisionID),
				`INSERT INTO season_divisions (season_id, division_id) VALUES (:season_id, :division_id)`,
				map[string]any{"season_id": s.ID, "division_id": divisionID})
		}
	}
	for _, w := range seed.Weeks {
		add("week "+w.Name, `INSERT INTO weeks (id, season_id, name, details, start_date) VALUES (:id, :season_id, :name, :details, :start_date)`, map[string]any{
			"id": w.ID, "season_id": w.SeasonID, "name": w.Name, "details": w.Details, "start_date": league.DateOf(w.StartDate),
		})
	}

	for _, c := range seed.Clubs {
		add("club "+c.Name, `INSERT INTO clubs (id, name) VALUES (:id, :name)`, map[string]any{"id": c.ID, "name": c.Name})
		if c.Info == nil {
			continue
		}
		info := clubInfoModelOf(club.Info{
			ClubID:       c.ID,
			Website:      c.Info.Website,
			ContactName:  c.Info.ContactName,
			ContactEmail: c.Info.ContactEmail,
			ContactPhone: c.Info.ContactPhone,
			Description:  c.Info.Description,
			SessionInfo:  c.Info.SessionInfo,
			Attributes:   c.Info.Attributes,
			CreatedOn:    now,
			Approved:     c.Info.Approved,
		}.Normalize())
		add("club info "+c.Name, `
INSERT INTO club_infos (club_id, website, image, contact_name, contact_email, contact_phone, description, session_info,
    beginners, intermediates, advanced, kids, adults, coaching, league, equipment_provided, membership_required, free_taster,
    created_on, approved)
VALUES (:club_id, :website, :image, :contact_name, :contact_email, :contact_phone, :description, :session_info,
    :beginners, :intermediates, :advanced, :kids, :adults, :coaching, :league, :equipment_provided, :membership_required, :free_taster,
    :created_on, :approved)`, map[string]any{
			"club_id":             info.ClubID,
			"website":             info.Website,
			"image":               info.Image,
			"contact_name":        info.ContactName,
			"contact_email":       info.ContactEmail,
			"contact_phone":       info.ContactPhone,
			"description":         info.Description,
			"session_info":        info.SessionInfo,
			"beginners":           info.Beginners,
			"intermediates":       info.Intermediates,
			"advanced":            info.Advanced,
			"kids":                info.Kids,
			"adults":              info.Adults,
			"coaching":            info.Coaching,
			"league":              info.League,
			"equipment_provided":  info.EquipmentProvided,
			"membership_required": info.MembershipRequired,
			"free_taster":         info.FreeTaster,
			"created_on":          info.CreatedOn,
			"approved":            info.Approved,
		})
	}
	for _, a := range seed.ClubAdmins {
		add("club admin "+a.UserID, `INSERT INTO club_admins (user_id, club_id) VALUES (:user_id, :club_id)`, map[string]any{
			"user_id": a.UserID, "club_id": a.ClubID,
		})
	}

	for _, v := range seed.Venues {
		add("venue "+v.Name, `INSERT INTO venues (id, name) VALUES (:id, :name)`, map[string]any{"id": v.ID, "name": v.Name})
		if v.Info != nil {
			info := venueInfoModelOf(venue.Info{
				VenueID:              v.ID,
				StreetAddress:        v.Info.StreetAddress,
				AddressLine2:         v.Info.AddressLine2,
				City:                 v.Info.City,
				County:               v.Info.County,
				Postcode:             v.Info.Postcode,
				NumTables:            v.Info.NumTables,
				ParkingInfo:          v.Info.ParkingInfo,
				MeetsLeagueStandards: v.Info.MeetsLeagueStandards,
				Latitude:             v.Info.Latitude,
				Longitude:            v.Info.Longitude,
				CreatedOn:            now,
				Approved:             v.Info.Approved,
			}.Normalize())
			add("venue info "+v.Name, `
INSERT INTO venue_infos (venue_id, street_address, address_line_2, city, county, postcode, num_tables, parking_info,
    meets_league_standards, latitude, longitude, created_on, approved)
VALUES (:venue_id, :street_address, :address_line_2, :city, :county, :postcode, :num_tables, :parking_info,
    :meets_league_standards, :latitude, :longitude, :created_on, :approved)`, map[string]any{
				"venue_id":               info.VenueID,
				"street_address":         info.StreetAddress,
				"address_line_2":         info.AddressLine2,
				"city":                   info.City,
				"county":                 info.County,
				"postcode":               info.Postcode,
				"num_tables":             info.NumTables,
				"parking_info":           info.ParkingInfo,
				"meets_league_standards": info.MeetsLeagueStandards,
				"latitude":               info.Latitude,
				"longitude":              info.Longitude,
				"created_on":             info.CreatedOn,
				"approved":               info.Approved,
			})
		}
		for _, clubID := range v.ClubIDs {
			add(fmt.Sprintf("venue %s club %d", v.Name, clubID),
				`INSERT INTO club_venues (club_id, venue_id) VALUES (:club_id, :venue_id)`,
				map[string]any{"club_id": clubID, "venue_id": v.ID})
		}
	}

	for _, row := range seed.Players {
		status := player.ClubStatus(row.ClubStatus)
		if status == "" {
			status = player.ClubStatusPending
		}
		p := playerModelOf(player.Player{
			Forename:      row.Forename,
			Surname:       row.Surname,
			DateOfBirth:   row.DateOfBirth,
			CurrentClubID: row.ClubID,
			ClubStatus:    status,
		}.Normalize())
		add("player "+p.Forename+" "+p.Surname, `
INSERT INTO players (id, forename, surname, date_of_birth, current_club_id, club_status)
VALUES (:id, :forename, :surname, :date_of_birth, :current_club_id, :club_status)`, map[string]any{
			"id":              row.ID,
			"forename":        p.Forename,
			"surname":         p.Surname,
			"date_of_birth":   p.DateOfBirth,
			"current_club_id": p.CurrentClubID,
			"club_status":     p.ClubStatus,
		})
	}

	for _, row := range seed.Teams {
		homeTime := team.DefaultHomeTime
		if row.HomeTime != "" {
			parsed, err := league.ParseTimeOfDay(row.HomeTime)
			if err != nil {
				return nil, fmt.Errorf("seed team %q: %w", row.Name, err)
			}
			homeTime = parsed
		}
		t := teamModelOf(team.Team{
			SeasonID:    row.SeasonID,
			DivisionID:  row.DivisionID,
			ClubID:      row.ClubID,
			HomeVenueID: row.HomeVenueID,
			Name:        row.Name,
			HomeDay:     team.Weekday(row.HomeDay),
			HomeTime:    homeTime,
			Approved:    row.Approved,
		}.Normalize())
		add("team "+t.TeamName, `
INSERT INTO teams (id, season_id, division_id, club_id, home_venue_id, team_name, home_day, home_time, approved)
VALUES (:id, :season_id, :division_id, :club_id, :home_venue_id, :team_name, :home_day, :home_time, :approved)`, map[string]any{
			"id":            row.ID,
			"season_id":     t.SeasonID,
			"division_id":   t.DivisionID,
			"club_id":       t.ClubID,
			"home_venue_id": t.HomeVenueID,
			"team_name":     t.TeamName,
			"home_day":      t.HomeDay,
			"home_time":     t.HomeTime,
			"approved":      t.Approved,
		})
		for _, playerID := range row.Players {
			add(fmt.Sprintf("team %s player %d", t.TeamName, playerID),
				`INSERT INTO team_players (player_id, team_id) VALUES (:player_id, :team_id)`,
				map[string]any{"player_id": playerID, "team_id": row.ID})
		}
	}

	for _, row := range seed.Fixtures {
		f := fixtureModelOf(fixture.Fixture{
			SeasonID:   row.SeasonID,
			DivisionID: row.DivisionID,
			WeekID:     row.WeekID,
			HomeTeamID: row.HomeTeamID,
			AwayTeamID: row.AwayTeamID,
			VenueID:    row.VenueID,
			Datetime:   row.Datetime,
			Status:     fixture.NormalizeStatus(row.Status),
		})
		add(fmt.Sprintf("fixture %d", row.ID), `
INSERT INTO fixtures (id, season_id, division_id, week_id, home_team_id, away_team_id, venue_id, datetime, status)
VALUES (:id, :season_id, :division_id, :week_id, :home_team_id, :away_team_id, :venue_id, :datetime, :status)`, map[string]any{
			"id":           row.ID,
			"season_id":    f.SeasonID,
			"division_id":  f.DivisionID,
			"week_id":      f.WeekID,
			"home_team_id": f.HomeTeamID,
			"away_team_id": f.AwayTeamID,
			"venue_id":     f.VenueID,
			"datetime":     f.Datetime,
			"status":       f.Status,
		})
	}
	return out, nil
}
