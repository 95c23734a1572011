package httpapi

import (
	"strings"
	"time"

	"github.com/riskibarqy/tt-league/internal/domain/club"
	"github.com/riskibarqy/tt-league/internal/domain/directory"
	"github.com/riskibarqy/tt-league/internal/domain/fixture"
	"github.com/riskibarqy/tt-league/internal/domain/league"
	"github.com/riskibarqy/tt-league/internal/domain/player"
	"github.com/riskibarqy/tt-league/internal/domain/result"
	"github.com/riskibarqy/tt-league/internal/domain/team"
	"github.com/riskibarqy/tt-league/internal/domain/validation"
	"github.com/riskibarqy/tt-league/internal/domain/venue"
)

type divisionRequest struct {
	Name string `json:"name" validate:"required"`
	Rank int    `json:"rank"`
}

func (r divisionRequest) toDomain(id int64) league.Division {
	return league.Division{ID: id, Name: r.Name, Rank: r.Rank}
}

type seasonRequest struct {
	Name               string  `json:"name" validate:"required"`
	ShortName          string  `json:"short_name"`
	Slug               string  `json:"slug"`
	DivisionIDs        []int64 `json:"division_ids" validate:"dive,gt=0"`
	StartDate          string  `json:"start_date" validate:"required"`
	EndDate            string  `json:"end_date" validate:"required"`
	RegistrationOpens  string  `json:"registration_opens" validate:"required"`
	RegistrationCloses string  `json:"registration_closes" validate:"required"`
	IsVisible          bool    `json:"is_visible"`
}

func (r seasonRequest) toDomain(id int64) (league.Season, validation.Errors) {
	verrs := validation.New()
	season := league.Season{
		ID:                 id,
		Name:               r.Name,
		ShortName:          r.ShortName,
		Slug:               r.Slug,
		DivisionIDs:        r.DivisionIDs,
		StartDate:          parseDate(verrs, "start_date", r.StartDate),
		EndDate:            parseDate(verrs, "end_date", r.EndDate),
		RegistrationOpens:  parseDate(verrs, "registration_opens", r.RegistrationOpens),
		RegistrationCloses: parseDate(verrs, "registration_closes", r.RegistrationCloses),
		IsVisible:          r.IsVisible,
	}
	return season, verrs
}

type weekRequest struct {
	Name      string `json:"name" validate:"required"`
	Details   string `json:"details"`
	StartDate string `json:"start_date" validate:"required"`
}

func (r weekRequest) toDomain(seasonID int64) (league.Week, validation.Errors) {
	verrs := validation.New()
	week := league.Week{
		SeasonID:  seasonID,
		Name:      r.Name,
		Details:   r.Details,
		StartDate: parseDate(verrs, "start_date", r.StartDate),
	}
	return week, verrs
}

type playerRequest struct {
	Forename      string `json:"forename" validate:"required"`
	Surname       string `json:"surname" validate:"required"`
	DateOfBirth   string `json:"date_of_birth" validate:"required"`
	CurrentClubID *int64 `json:"current_club_id" validate:"omitempty,gt=0"`
	ClubStatus    string `json:"club_status" validate:"omitempty,oneof=pending confirmed rejected"`
}

func (r playerRequest) toDomain(id int64) (player.Player, validation.Errors) {
	verrs := validation.New()
	p := player.Player{
		ID:            id,
		Forename:      r.Forename,
		Surname:       r.Surname,
		DateOfBirth:   parseDate(verrs, "date_of_birth", r.DateOfBirth),
		CurrentClubID: r.CurrentClubID,
		ClubStatus:    player.ClubStatus(r.ClubStatus),
	}
	return p, verrs
}

type clubStatusRequest struct {
	Status string `json:"status" validate:"required"`
}

type teamRequest struct {
	SeasonID    int64  `json:"season_id" validate:"required"`
	DivisionID  int64  `json:"division_id" validate:"required"`
	ClubID      int64  `json:"club_id" validate:"required"`
	HomeVenueID int64  `json:"home_venue_id" validate:"required"`
	Name        string `json:"team_name" validate:"required"`
	HomeDay     string `json:"home_day" validate:"omitempty,oneof=monday tuesday wednesday thursday friday"`
	HomeTime    string `json:"home_time"`
	Approved    bool   `json:"approved"`
}

func (r teamRequest) toDomain(id int64) (team.Team, validation.Errors) {
	verrs := validation.New()
	t := team.Team{
		ID:          id,
		SeasonID:    r.SeasonID,
		DivisionID:  r.DivisionID,
		ClubID:      r.ClubID,
		HomeVenueID: r.HomeVenueID,
		Name:        r.Name,
		HomeDay:     team.Weekday(r.HomeDay),
		HomeTime:    team.DefaultHomeTime,
		Approved:    r.Approved,
	}
	if raw := strings.TrimSpace(r.HomeTime); raw != "" {
		parsed, err := league.ParseTimeOfDay(raw)
		if err != nil {
			verrs.Add("home_time", "Enter a valid time.")
		}
		t.HomeTime = parsed
	}
	return t, verrs
}

type memberRequest struct {
	PlayerID int64 `json:"player_id" validate:"required"`
	PaidFees bool  `json:"paid_fees"`
}

type fixtureRequest struct {
	SeasonID   int64  `json:"season_id" validate:"required"`
	DivisionID int64  `json:"division_id" validate:"required"`
	WeekID     int64  `json:"week_id" validate:"required"`
	HomeTeamID int64  `json:"home_team_id" validate:"required"`
	AwayTeamID int64  `json:"away_team_id" validate:"required"`
	VenueID    *int64 `json:"venue_id" validate:"omitempty,gt=0"`
	Datetime   string `json:"datetime" validate:"required"`
	Status     string `json:"status"`
}

func (r fixtureRequest) toDomain(id int64) (fixture.Fixture, validation.Errors) {
	verrs := validation.New()
	f := fixture.Fixture{
		ID:         id,
		SeasonID:   r.SeasonID,
		DivisionID: r.DivisionID,
		WeekID:     r.WeekID,
		HomeTeamID: r.HomeTeamID,
		AwayTeamID: r.AwayTeamID,
		VenueID:    r.VenueID,
		Status:     fixture.NormalizeStatus(r.Status),
	}
	at, err := time.Parse(time.RFC3339, strings.TrimSpace(r.Datetime))
	if err != nil {
		verrs.Add("datetime", "Enter a valid date/time.")
	}
	f.Datetime = at
	return f, verrs
}

type resultRequest struct {
	FixtureID int64  `json:"fixture_id" validate:"required"`
	HomeScore int    `json:"home_score" validate:"gte=0"`
	AwayScore int    `json:"away_score" validate:"gte=0"`
	Status    string `json:"status" validate:"omitempty,oneof=played forfeited"`
}

func (r resultRequest) toDomain(id int64) result.FixtureResult {
	return result.FixtureResult{
		ID:        id,
		FixtureID: r.FixtureID,
		HomeScore: r.HomeScore,
		AwayScore: r.AwayScore,
		Status:    result.Status(r.Status),
	}
}

type gameRequest struct {
	SetNum     int `json:"set_num" validate:"required"`
	HomePoints int `json:"home_points" validate:"gte=0"`
	AwayPoints int `json:"away_points" validate:"gte=0"`
}

func gamesFromRequest(items []gameRequest) []result.Game {
	out := make([]result.Game, 0, len(items))
	for _, g := range items {
		out = append(out, result.Game{SetNum: g.SetNum, HomePoints: g.HomePoints, AwayPoints: g.AwayPoints})
	}
	return out
}

type singlesRequest struct {
	HomePlayerID int64         `json:"home_player_id" validate:"required"`
	AwayPlayerID int64         `json:"away_player_id" validate:"required"`
	HomeSets     int           `json:"home_sets" validate:"gte=0"`
	AwaySets     int           `json:"away_sets" validate:"gte=0"`
	Games        []gameRequest `json:"games" validate:"dive"`
}

func (r singlesRequest) toDomain(resultID int64) result.SinglesMatch {
	return result.SinglesMatch{
		ResultID:     resultID,
		HomePlayerID: r.HomePlayerID,
		AwayPlayerID: r.AwayPlayerID,
		HomeSets:     r.HomeSets,
		AwaySets:     r.AwaySets,
		Games:        gamesFromRequest(r.Games),
	}
}

type doublesRequest struct {
	HomePlayerIDs []int64       `json:"home_player_ids"`
	AwayPlayerIDs []int64       `json:"away_player_ids"`
	HomeSets      int           `json:"home_sets" validate:"gte=0"`
	AwaySets      int           `json:"away_sets" validate:"gte=0"`
	Games         []gameRequest `json:"games" validate:"dive"`
}

func (r doublesRequest) toDomain(resultID int64) result.DoublesMatch {
	return result.DoublesMatch{
		ResultID:      resultID,
		HomePlayerIDs: r.HomePlayerIDs,
		AwayPlayerIDs: r.AwayPlayerIDs,
		HomeSets:      r.HomeSets,
		AwaySets:      r.AwaySets,
		Games:         gamesFromRequest(r.Games),
	}
}

type clubInfoRequest struct {
	Website            string `json:"website"`
	Image              string `json:"image"`
	ContactName        string `json:"contact_name"`
	ContactEmail       string `json:"contact_email"`
	ContactPhone       string `json:"contact_phone"`
	Description        string `json:"description"`
	SessionInfo        string `json:"session_info"`
	Beginners          bool   `json:"beginners"`
	Intermediates      bool   `json:"intermediates"`
	Advanced           bool   `json:"advanced"`
	Kids               bool   `json:"kids"`
	Adults             bool   `json:"adults"`
	Coaching           bool   `json:"coaching"`
	League             bool   `json:"league"`
	EquipmentProvided  bool   `json:"equipment_provided"`
	MembershipRequired bool   `json:"membership_required"`
	FreeTaster         bool   `json:"free_taster"`
}

func (r clubInfoRequest) toDomain() club.Info {
	return club.Info{
		Website:      r.Website,
		Image:        r.Image,
		ContactName:  r.ContactName,
		ContactEmail: r.ContactEmail,
		ContactPhone: r.ContactPhone,
		Description:  r.Description,
		SessionInfo:  r.SessionInfo,
		Attributes: club.Attributes{
			Beginners:          r.Beginners,
			Intermediates:      r.Intermediates,
			Advanced:           r.Advanced,
			Kids:               r.Kids,
			Adults:             r.Adults,
			Coaching:           r.Coaching,
			League:             r.League,
			EquipmentProvided:  r.EquipmentProvided,
			MembershipRequired: r.MembershipRequired,
			FreeTaster:         r.FreeTaster,
		},
	}
}

type venueInfoRequest struct {
	StreetAddress        string   `json:"street_address"`
	AddressLine2         string   `json:"address_line_2"`
	City                 string   `json:"city"`
	County               string   `json:"county"`
	Postcode             string   `json:"postcode"`
	NumTables            int      `json:"num_tables"`
	ParkingInfo          string   `json:"parking_info"`
	MeetsLeagueStandards bool     `json:"meets_league_standards"`
	Latitude             *float64 `json:"latitude" validate:"omitempty,latitude"`
	Longitude            *float64 `json:"longitude" validate:"omitempty,longitude"`
}

func (r venueInfoRequest) toDomain(venueID int64) venue.Info {
	return venue.Info{
		VenueID:              venueID,
		StreetAddress:        r.StreetAddress,
		AddressLine2:         r.AddressLine2,
		City:                 r.City,
		County:               r.County,
		Postcode:             r.Postcode,
		NumTables:            r.NumTables,
		ParkingInfo:          r.ParkingInfo,
		MeetsLeagueStandards: r.MeetsLeagueStandards,
		Latitude:             r.Latitude,
		Longitude:            r.Longitude,
	}
}

type createVenueRequest struct {
	Name string           `json:"name" validate:"required"`
	Info venueInfoRequest `json:"info"`
}

type assignVenueRequest struct {
	VenueID int64 `json:"venue_id" validate:"required"`
}

type deleteInfoRequest struct {
	Option  string `json:"option"`
	Confirm bool   `json:"confirm"`
}

type reviewRequest struct {
	Score      int    `json:"score"`
	Headline   string `json:"headline"`
	ReviewText string `json:"review_text"`
}

func (r reviewRequest) toDomain(clubID int64) club.Review {
	return club.Review{ClubID: clubID, Score: r.Score, Headline: r.Headline, ReviewText: r.ReviewText}
}

func parseDate(verrs validation.Errors, field, raw string) time.Time {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return time.Time{}
	}
	v, err := time.Parse(dateLayout, raw)
	if err != nil {
		verrs.Add(field, "Enter a valid date.")
		return time.Time{}
	}
	return v
}

// directoryFilterFromQuery reads the attribute flags of the directory page.
// A flag filters only when set to a true value; membership_required is
// tri-state so "false" asks for clubs without a membership requirement.
func directoryFilterFromQuery(q map[string][]string) directory.Filter {
	flag := func(name string) bool {
		return parseBool(first(q, name))
	}

	f := directory.Filter{
		Beginners:         flag("beginners"),
		Intermediates:     flag("intermediates"),
		Advanced:          flag("advanced"),
		Kids:              flag("kids"),
		Adults:            flag("adults"),
		Coaching:          flag("coaching"),
		League:            flag("league"),
		EquipmentProvided: flag("equipment_provided"),
		FreeTaster:        flag("free_taster"),
	}
	switch strings.ToLower(strings.TrimSpace(first(q, "membership_required"))) {
	case "true", "1", "yes", "on":
		v := true
		f.MembershipRequired = &v
	case "false", "0", "no", "off":
		v := false
		f.MembershipRequired = &v
	}
	return f
}

func first(q map[string][]string, key string) string {
	if values := q[key]; len(values) > 0 {
		return values[0]
	}
	return ""
}

func parseBool(raw string) bool {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "true", "1", "yes", "on":
		return true
	default:
		return false
	}
}
