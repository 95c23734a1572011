package memory

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/riskibarqy/tt-league/internal/domain/club"
	"github.com/riskibarqy/tt-league/internal/domain/fixture"
	"github.com/riskibarqy/tt-league/internal/domain/league"
	"github.com/riskibarqy/tt-league/internal/domain/player"
	"github.com/riskibarqy/tt-league/internal/domain/team"
	"github.com/riskibarqy/tt-league/internal/domain/venue"
	"gopkg.in/yaml.v3"
)

// Seed is the YAML document loaded into a fresh store. Rows are inserted in
// dependency order through the repositories so every constraint applies.
type Seed struct {
	Divisions  []SeedDivision  `yaml:"divisions"`
	Seasons    []SeedSeason    `yaml:"seasons"`
	Weeks      []SeedWeek      `yaml:"weeks"`
	Clubs      []SeedClub      `yaml:"clubs"`
	ClubAdmins []SeedClubAdmin `yaml:"club_admins"`
	Venues     []SeedVenue     `yaml:"venues"`
	Players    []SeedPlayer    `yaml:"players"`
	Teams      []SeedTeam      `yaml:"teams"`
	Fixtures   []SeedFixture   `yaml:"fixtures"`
}

type SeedDivision struct {
	ID   int64  `yaml:"id"`
	Name string `yaml:"name"`
	Rank int    `yaml:"rank"`
}

type SeedSeason struct {
	ID                 int64     `yaml:"id"`
	Name               string    `yaml:"name"`
	ShortName          string    `yaml:"short_name"`
	Slug               string    `yaml:"slug"`
	Divisions          []int64   `yaml:"divisions"`
	StartDate          time.Time `yaml:"start_date"`
	EndDate            time.Time `yaml:"end_date"`
	RegistrationOpens  time.Time `yaml:"registration_opens"`
	RegistrationCloses time.Time `yaml:"registration_closes"`
	IsVisible          bool      `yaml:"is_visible"`
	IsCurrent          bool      `yaml:"is_current"`
}

type SeedWeek struct {
	ID        int64     `yaml:"id"`
	SeasonID  int64     `yaml:"season_id"`
	Name      string    `yaml:"name"`
	Details   string    `yaml:"details"`
	StartDate time.Time `yaml:"start_date"`
}

type SeedClub struct {
	ID   int64         `yaml:"id"`
	Name string        `yaml:"name"`
	Info *SeedClubInfo `yaml:"info"`
}

type SeedClubInfo struct {
	Website      string          `yaml:"website"`
	ContactName  string          `yaml:"contact_name"`
	ContactEmail string          `yaml:"contact_email"`
	ContactPhone string          `yaml:"contact_phone"`
	Description  string          `yaml:"description"`
	SessionInfo  string          `yaml:"session_info"`
	Attributes   club.Attributes `yaml:"attributes"`
	Approved     bool            `yaml:"approved"`
}

type SeedClubAdmin struct {
	UserID string `yaml:"user_id"`
	ClubID int64  `yaml:"club_id"`
}

type SeedVenue struct {
	ID      int64          `yaml:"id"`
	Name    string         `yaml:"name"`
	ClubIDs []int64        `yaml:"clubs"`
	Info    *SeedVenueInfo `yaml:"info"`
}

type SeedVenueInfo struct {
	StreetAddress        string   `yaml:"street_address"`
	AddressLine2         string   `yaml:"address_line_2"`
	City                 string   `yaml:"city"`
	County               string   `yaml:"county"`
	Postcode             string   `yaml:"postcode"`
	NumTables            int      `yaml:"num_tables"`
	ParkingInfo          string   `yaml:"parking_info"`
	MeetsLeagueStandards bool     `yaml:"meets_league_standards"`
	Latitude             *float64 `yaml:"latitude"`
	Longitude            *float64 `yaml:"longitude"`
	Approved             bool     `yaml:"approved"`
}

type SeedPlayer struct {
	ID          int64     `yaml:"id"`
	Forename    string    `yaml:"forename"`
	Surname     string    `yaml:"surname"`
	DateOfBirth time.Time `yaml:"date_of_birth"`
	ClubID      *int64    `yaml:"club_id"`
	ClubStatus  string    `yaml:"club_status"`
}

type SeedTeam struct {
	ID          int64   `yaml:"id"`
	SeasonID    int64   `yaml:"season_id"`
	DivisionID  int64   `yaml:"division_id"`
	ClubID      int64   `yaml:"club_id"`
	HomeVenueID int64   `yaml:"home_venue_id"`
	Name        string  `yaml:"name"`
	HomeDay     string  `yaml:"home_day"`
	HomeTime    string  `yaml:"home_time"`
	Approved    bool    `yaml:"approved"`
	Players     []int64 `yaml:"players"`
}

type SeedFixture struct {
	ID         int64     `yaml:"id"`
	SeasonID   int64     `yaml:"season_id"`
	DivisionID int64     `yaml:"division_id"`
	WeekID     int64     `yaml:"week_id"`
	HomeTeamID int64     `yaml:"home_team_id"`
	AwayTeamID int64     `yaml:"away_team_id"`
	VenueID    *int64    `yaml:"venue_id"`
	Datetime   time.Time `yaml:"datetime"`
	Status     string    `yaml:"status"`
}

// LoadSeedFile reads and parses a YAML seed document.
func LoadSeedFile(path string) (Seed, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return Seed{}, fmt.Errorf("read seed file: %w", err)
	}
	return ParseSeed(raw)
}

func ParseSeed(raw []byte) (Seed, error) {
	var seed Seed
	if err := yaml.Unmarshal(raw, &seed); err != nil {
		return Seed{}, fmt.Errorf("parse seed: %w", err)
	}
	return seed, nil
}

// Apply inserts the seed into s.
func (seed Seed) Apply(ctx context.Context, s *Store, now time.Time) error {
	leagues := NewLeagueRepository(s)
	clubs := NewClubRepository(s)
	venues := NewVenueRepository(s)
	players := NewPlayerRepository(s)
	teams := NewTeamRepository(s)
	fixtures := NewFixtureRepository(s)

	for _, d := range seed.Divisions {
		if _, err := leagues.CreateDivision(ctx, league.Division{ID: d.ID, Name: d.Name, Rank: d.Rank}); err != nil {
			return fmt.Errorf("seed division %q: %w", d.Name, err)
		}
	}
	for _, row := range seed.Seasons {
		season := league.Season{
			ID:                 row.ID,
			Name:               row.Name,
			ShortName:          row.ShortName,
			Slug:               row.Slug,
			DivisionIDs:        row.Divisions,
			StartDate:          row.StartDate,
			EndDate:            row.EndDate,
			RegistrationOpens:  row.RegistrationOpens,
			RegistrationCloses: row.RegistrationCloses,
			IsVisible:          row.IsVisible,
			IsCurrent:          row.IsCurrent,
		}
		if _, err := leagues.CreateSeason(ctx, season); err != nil {
			return fmt.Errorf("seed season %q: %w", row.Slug, err)
		}
	}
	for _, w := range seed.Weeks {
		week := league.Week{ID: w.ID, SeasonID: w.SeasonID, Name: w.Name, Details: w.Details, StartDate: w.StartDate}
		if _, err := leagues.CreateWeek(ctx, week); err != nil {
			return fmt.Errorf("seed week %q: %w", w.Name, err)
		}
	}

	for _, row := range seed.Clubs {
		c, err := clubs.CreateClub(ctx, club.Club{ID: row.ID, Name: row.Name})
		if err != nil {
			return fmt.Errorf("seed club %q: %w", row.Name, err)
		}
		if row.Info == nil {
			continue
		}
		info := club.Info{
			ClubID:       c.ID,
			Website:      row.Info.Website,
			ContactName:  row.Info.ContactName,
			ContactEmail: row.Info.ContactEmail,
			ContactPhone: row.Info.ContactPhone,
			Description:  row.Info.Description,
			SessionInfo:  row.Info.SessionInfo,
			Attributes:   row.Info.Attributes,
			CreatedOn:    now,
			Approved:     row.Info.Approved,
		}.Normalize()
		if _, _, err := clubs.AppendInfo(ctx, info); err != nil {
			return fmt.Errorf("seed club info %q: %w", row.Name, err)
		}
	}
	for _, a := range seed.ClubAdmins {
		if err := clubs.SaveAdmin(ctx, club.Admin{UserID: a.UserID, ClubID: a.ClubID}); err != nil {
			return fmt.Errorf("seed club admin %q: %w", a.UserID, err)
		}
	}

	for _, row := range seed.Venues {
		var info venue.Info
		if row.Info != nil {
			info = venue.Info{
				StreetAddress:        row.Info.StreetAddress,
				AddressLine2:         row.Info.AddressLine2,
				City:                 row.Info.City,
				County:               row.Info.County,
				Postcode:             row.Info.Postcode,
				NumTables:            row.Info.NumTables,
				ParkingInfo:          row.Info.ParkingInfo,
				MeetsLeagueStandards: row.Info.MeetsLeagueStandards,
				Latitude:             row.Info.Latitude,
				Longitude:            row.Info.Longitude,
				CreatedOn:            now,
				Approved:             row.Info.Approved,
			}.Normalize()
		}
		v, _, err := venues.CreateVenue(ctx, venue.Venue{ID: row.ID, Name: row.Name}, info, 0)
		if err != nil {
			return fmt.Errorf("seed venue %q: %w", row.Name, err)
		}
		if row.Info == nil {
			s.dropInfos(v.ID)
		}
		for _, clubID := range row.ClubIDs {
			if err := venues.Assign(ctx, venue.ClubVenue{ClubID: clubID, VenueID: v.ID}); err != nil {
				return fmt.Errorf("seed venue %q club %d: %w", row.Name, clubID, err)
			}
		}
	}

	for _, row := range seed.Players {
		status := player.ClubStatus(row.ClubStatus)
		if status == "" {
			status = player.ClubStatusPending
		}
		p := player.Player{
			ID:            row.ID,
			Forename:      row.Forename,
			Surname:       row.Surname,
			DateOfBirth:   row.DateOfBirth,
			CurrentClubID: row.ClubID,
			ClubStatus:    status,
		}.Normalize()
		if _, err := players.Create(ctx, p); err != nil {
			return fmt.Errorf("seed player %q: %w", p.FullName(), err)
		}
	}

	for _, row := range seed.Teams {
		homeTime := team.DefaultHomeTime
		if row.HomeTime != "" {
			parsed, err := league.ParseTimeOfDay(row.HomeTime)
			if err != nil {
				return fmt.Errorf("seed team %q: %w", row.Name, err)
			}
			homeTime = parsed
		}
		t := team.Team{
			ID:          row.ID,
			SeasonID:    row.SeasonID,
			DivisionID:  row.DivisionID,
			ClubID:      row.ClubID,
			HomeVenueID: row.HomeVenueID,
			Name:        row.Name,
			HomeDay:     team.Weekday(row.HomeDay),
			HomeTime:    homeTime,
			Approved:    row.Approved,
		}.Normalize()
		created, err := teams.Create(ctx, t)
		if err != nil {
			return fmt.Errorf("seed team %q: %w", row.Name, err)
		}
		for _, playerID := range row.Players {
			if _, err := teams.CreateMember(ctx, team.Member{PlayerID: playerID, TeamID: created.ID}); err != nil {
				return fmt.Errorf("seed team %q player %d: %w", row.Name, playerID, err)
			}
		}
	}

	for _, row := range seed.Fixtures {
		status := fixture.NormalizeStatus(row.Status)
		f := fixture.Fixture{
			ID:         row.ID,
			SeasonID:   row.SeasonID,
			DivisionID: row.DivisionID,
			WeekID:     row.WeekID,
			HomeTeamID: row.HomeTeamID,
			AwayTeamID: row.AwayTeamID,
			VenueID:    row.VenueID,
			Datetime:   row.Datetime,
			Status:     status,
		}
		if _, err := fixtures.Create(ctx, f); err != nil {
			return fmt.Errorf("seed fixture %d: %w", row.ID, err)
		}
	}
	return nil
}

// dropInfos removes the empty snapshot CreateVenue stores for venues seeded
// without info.
func (s *Store) dropInfos(venueID int64) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for id, info := range s.venueInfos {
		if info.VenueID == venueID {
			delete(s.venueInfos, id)
		}
	}
}
