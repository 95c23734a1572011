package httpapi

import (
	"context"
	"time"

	"github.com/riskibarqy/tt-league/internal/domain/club"
	"github.com/riskibarqy/tt-league/internal/domain/directory"
	"github.com/riskibarqy/tt-league/internal/domain/fixture"
	"github.com/riskibarqy/tt-league/internal/domain/league"
	"github.com/riskibarqy/tt-league/internal/domain/player"
	"github.com/riskibarqy/tt-league/internal/domain/result"
	"github.com/riskibarqy/tt-league/internal/domain/team"
	"github.com/riskibarqy/tt-league/internal/domain/venue"
	"github.com/riskibarqy/tt-league/internal/usecase"
)

const dateLayout = "2006-01-02"

type outcomeDTO struct {
	Done     bool             `json:"done"`
	Notices  []usecase.Notice `json:"notices,omitempty"`
	Redirect string           `json:"redirect,omitempty"`
	Result   any              `json:"result,omitempty"`
}

type divisionDTO struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
	Rank int    `json:"rank"`
}

type seasonDTO struct {
	ID                 int64   `json:"id"`
	Name               string  `json:"name"`
	ShortName          string  `json:"shortName"`
	Slug               string  `json:"slug"`
	DivisionIDs        []int64 `json:"divisionIds"`
	StartDate          string  `json:"startDate"`
	EndDate            string  `json:"endDate"`
	RegistrationOpens  string  `json:"registrationOpens"`
	RegistrationCloses string  `json:"registrationCloses"`
	IsVisible          bool    `json:"isVisible"`
	IsCurrent          bool    `json:"isCurrent"`
}

type weekDTO struct {
	ID        int64  `json:"id"`
	SeasonID  int64  `json:"seasonId"`
	Name      string `json:"name"`
	Details   string `json:"details,omitempty"`
	StartDate string `json:"startDate"`
	EndDate   string `json:"endDate"`
}

type clubDTO struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

type clubInfoDTO struct {
	ID                 int64  `json:"id"`
	ClubID             int64  `json:"clubId"`
	Website            string `json:"website,omitempty"`
	Image              string `json:"image"`
	ContactName        string `json:"contactName"`
	ContactEmail       string `json:"contactEmail"`
	ContactPhone       string `json:"contactPhone"`
	Description        string `json:"description"`
	SessionInfo        string `json:"sessionInfo"`
	Beginners          bool   `json:"beginners"`
	Intermediates      bool   `json:"intermediates"`
	Advanced           bool   `json:"advanced"`
	Kids               bool   `json:"kids"`
	Adults             bool   `json:"adults"`
	Coaching           bool   `json:"coaching"`
	League             bool   `json:"league"`
	EquipmentProvided  bool   `json:"equipmentProvided"`
	MembershipRequired bool   `json:"membershipRequired"`
	FreeTaster         bool   `json:"freeTaster"`
	CreatedOn          string `json:"createdOn"`
	Approved           bool   `json:"approved"`
}

type venueDTO struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

type venueInfoDTO struct {
	ID                   int64    `json:"id"`
	VenueID              int64    `json:"venueId"`
	StreetAddress        string   `json:"streetAddress"`
	AddressLine2         string   `json:"addressLine2,omitempty"`
	City                 string   `json:"city"`
	County               string   `json:"county"`
	Postcode             string   `json:"postcode"`
	NumTables            int      `json:"numTables"`
	ParkingInfo          string   `json:"parkingInfo"`
	MeetsLeagueStandards bool     `json:"meetsLeagueStandards"`
	Latitude             *float64 `json:"latitude,omitempty"`
	Longitude            *float64 `json:"longitude,omitempty"`
	CreatedOn            string   `json:"createdOn"`
	Approved             bool     `json:"approved"`
}

type reviewDTO struct {
	ID         int64  `json:"id"`
	ClubID     int64  `json:"clubId"`
	Score      int    `json:"score"`
	Headline   string `json:"headline"`
	ReviewText string `json:"reviewText"`
	Approved   bool   `json:"approved"`
	CreatedOn  string `json:"createdOn"`
	UpdatedOn  string `json:"updatedOn"`
}

type reviewSummaryDTO struct {
	Count   int     `json:"count"`
	Average float64 `json:"average"`
	Rounded float64 `json:"rounded"`
	Stars   int     `json:"stars"`
}

type clubReviewsDTO struct {
	Club    clubDTO          `json:"club"`
	Reviews []reviewDTO      `json:"reviews"`
	Summary reviewSummaryDTO `json:"summary"`
}

type venueListingDTO struct {
	Venue venueDTO     `json:"venue"`
	Info  venueInfoDTO `json:"info"`
}

type clubListingDTO struct {
	Club    clubDTO           `json:"club"`
	Info    clubInfoDTO       `json:"info"`
	Venues  []venueListingDTO `json:"venues"`
	Reviews reviewSummaryDTO  `json:"reviews"`
}

type mapPinDTO struct {
	VenueID   int64        `json:"venueId"`
	VenueName string       `json:"venueName"`
	Info      venueInfoDTO `json:"info"`
	Latitude  float64      `json:"latitude"`
	Longitude float64      `json:"longitude"`
	ClubNames []string     `json:"clubNames"`
}

type adminVenueDTO struct {
	Venue  venueDTO      `json:"venue"`
	Info   *venueInfoDTO `json:"info,omitempty"`
	Shared bool          `json:"shared"`
}

type adminViewDTO struct {
	Club            clubDTO         `json:"club"`
	Info            *clubInfoDTO    `json:"info,omitempty"`
	Venues          []adminVenueDTO `json:"venues"`
	AvailableVenues []venueDTO      `json:"availableVenues"`
	HasPendingInfo  bool            `json:"hasPendingInfo"`
}

type pendingQueueDTO struct {
	ClubInfos  []clubInfoDTO  `json:"clubInfos"`
	VenueInfos []venueInfoDTO `json:"venueInfos"`
	Reviews    []reviewDTO    `json:"reviews"`
}

type playerDTO struct {
	ID            int64  `json:"id"`
	Forename      string `json:"forename"`
	Surname       string `json:"surname"`
	FullName      string `json:"fullName"`
	DateOfBirth   string `json:"dateOfBirth"`
	CurrentClubID *int64 `json:"currentClubId,omitempty"`
	ClubStatus    string `json:"clubStatus"`
}

type teamDTO struct {
	ID          int64  `json:"id"`
	SeasonID    int64  `json:"seasonId"`
	DivisionID  int64  `json:"divisionId"`
	ClubID      int64  `json:"clubId"`
	HomeVenueID int64  `json:"homeVenueId"`
	Name        string `json:"name"`
	HomeDay     string `json:"homeDay"`
	HomeTime    string `json:"homeTime"`
	Approved    bool   `json:"approved"`
}

type memberDTO struct {
	ID       int64 `json:"id"`
	PlayerID int64 `json:"playerId"`
	TeamID   int64 `json:"teamId"`
	PaidFees bool  `json:"paidFees"`
}

type rosterEntryDTO struct {
	Member memberDTO `json:"member"`
	Player playerDTO `json:"player"`
}

type fixtureDTO struct {
	ID         int64  `json:"id"`
	SeasonID   int64  `json:"seasonId"`
	DivisionID int64  `json:"divisionId"`
	WeekID     int64  `json:"weekId"`
	HomeTeamID int64  `json:"homeTeamId"`
	AwayTeamID int64  `json:"awayTeamId"`
	VenueID    *int64 `json:"venueId,omitempty"`
	Datetime   string `json:"datetime"`
	Status     string `json:"status"`
}

type fixtureRowDTO struct {
	Fixture     fixtureDTO `json:"fixture"`
	HomeTeam    teamDTO    `json:"homeTeam"`
	AwayTeam    teamDTO    `json:"awayTeam"`
	StatusClass string     `json:"statusClass"`
}

type fixtureWeekDTO struct {
	Week     weekDTO         `json:"week"`
	Fixtures []fixtureRowDTO `json:"fixtures"`
}

type filterOptionsDTO struct {
	Seasons   []seasonDTO   `json:"seasons"`
	Divisions []divisionDTO `json:"divisions"`
	Clubs     []clubDTO     `json:"clubs"`
}

type fixtureListingDTO struct {
	Season         *seasonDTO              `json:"season,omitempty"`
	Weeks          []fixtureWeekDTO        `json:"weeks"`
	CurrentWeekID  *int64                  `json:"currentWeekId,omitempty"`
	StatusKey      []fixture.StatusKeyItem `json:"statusKey"`
	FiltersApplied bool                    `json:"filtersApplied"`
	Options        filterOptionsDTO        `json:"options"`
}

type fixtureViolationDTO struct {
	FixtureID int64               `json:"fixtureId"`
	Errors    map[string][]string `json:"errors"`
}

type resultDTO struct {
	ID        int64  `json:"id"`
	FixtureID int64  `json:"fixtureId"`
	HomeScore int    `json:"homeScore"`
	AwayScore int    `json:"awayScore"`
	Winner    string `json:"winner"`
	Status    string `json:"status"`
	CreatedOn string `json:"createdOn"`
}

type gameDTO struct {
	ID         int64  `json:"id,omitempty"`
	SetNum     int    `json:"setNum"`
	HomePoints int    `json:"homePoints"`
	AwayPoints int    `json:"awayPoints"`
	Winner     string `json:"winner"`
}

type singlesDTO struct {
	ID           int64     `json:"id"`
	ResultID     int64     `json:"resultId"`
	HomePlayerID int64     `json:"homePlayerId"`
	AwayPlayerID int64     `json:"awayPlayerId"`
	HomeSets     int       `json:"homeSets"`
	AwaySets     int       `json:"awaySets"`
	Winner       string    `json:"winner"`
	Games        []gameDTO `json:"games"`
}

type doublesDTO struct {
	ID            int64     `json:"id"`
	ResultID      int64     `json:"resultId"`
	HomePlayerIDs []int64   `json:"homePlayerIds"`
	AwayPlayerIDs []int64   `json:"awayPlayerIds"`
	HomeSets      int       `json:"homeSets"`
	AwaySets      int       `json:"awaySets"`
	Winner        string    `json:"winner"`
	Games         []gameDTO `json:"games"`
}

type matchLineDTO struct {
	Kind      string    `json:"kind"`
	HomeNames []string  `json:"homeNames"`
	AwayNames []string  `json:"awayNames"`
	HomeSets  int       `json:"homeSets"`
	AwaySets  int       `json:"awaySets"`
	Winner    string    `json:"winner"`
	Games     []gameDTO `json:"games"`
}

type breakdownDTO struct {
	Fixture  fixtureDTO           `json:"fixture"`
	HomeTeam teamDTO              `json:"homeTeam"`
	AwayTeam teamDTO              `json:"awayTeam"`
	Result   resultDTO            `json:"result"`
	Matches  []matchLineDTO       `json:"matches"`
	HomeWins []usecase.PlayerWins `json:"homeWins"`
	AwayWins []usecase.PlayerWins `json:"awayWins"`
}

type resultRowDTO struct {
	Fixture  fixtureDTO `json:"fixture"`
	HomeTeam teamDTO    `json:"homeTeam"`
	AwayTeam teamDTO    `json:"awayTeam"`
	Result   resultDTO  `json:"result"`
}

type resultListingDTO struct {
	Season  *seasonDTO     `json:"season,omitempty"`
	Results []resultRowDTO `json:"results"`
}

type divisionTableDTO struct {
	Division  divisionDTO       `json:"division"`
	Standings []result.Standing `json:"standings"`
}

type tablesDTO struct {
	Season *seasonDTO         `json:"season,omitempty"`
	Tables []divisionTableDTO `json:"tables"`
}

type teamSummaryDTO struct {
	Team      teamDTO        `json:"team"`
	Season    seasonDTO      `json:"season"`
	Division  divisionDTO    `json:"division"`
	Club      clubDTO        `json:"club"`
	HomeVenue venueDTO       `json:"homeVenue"`
	Roster    []playerDTO    `json:"roster"`
	Fixtures  []fixtureDTO   `json:"fixtures"`
	Results   []resultRowDTO `json:"results"`
}

func formatDate(v time.Time) string {
	if v.IsZero() {
		return ""
	}
	return v.Format(dateLayout)
}

func formatTimestamp(v time.Time) string {
	if v.IsZero() {
		return ""
	}
	return v.UTC().Format(time.RFC3339)
}

func divisionToDTO(v league.Division) divisionDTO {
	return divisionDTO{ID: v.ID, Name: v.Name, Rank: v.Rank}
}

func seasonToDTO(v league.Season) seasonDTO {
	divisionIDs := v.DivisionIDs
	if divisionIDs == nil {
		divisionIDs = []int64{}
	}
	return seasonDTO{
		ID:                 v.ID,
		Name:               v.Name,
		ShortName:          v.ShortName,
		Slug:               v.Slug,
		DivisionIDs:        divisionIDs,
		StartDate:          formatDate(v.StartDate),
		EndDate:            formatDate(v.EndDate),
		RegistrationOpens:  formatDate(v.RegistrationOpens),
		RegistrationCloses: formatDate(v.RegistrationCloses),
		IsVisible:          v.IsVisible,
		IsCurrent:          v.IsCurrent,
	}
}

func optionalSeasonToDTO(v *league.Season) *seasonDTO {
	if v == nil {
		return nil
	}
	out := seasonToDTO(*v)
	return &out
}

func weekToDTO(v league.Week) weekDTO {
	return weekDTO{
		ID:        v.ID,
		SeasonID:  v.SeasonID,
		Name:      v.Name,
		Details:   v.Details,
		StartDate: formatDate(v.StartDate),
		EndDate:   formatDate(v.EndDate()),
	}
}

func clubToDTO(v club.Club) clubDTO {
	return clubDTO{ID: v.ID, Name: v.Name}
}

func clubInfoToDTO(v club.Info) clubInfoDTO {
	return clubInfoDTO{
		ID:                 v.ID,
		ClubID:             v.ClubID,
		Website:            v.Website,
		Image:              v.Image,
		ContactName:        v.ContactName,
		ContactEmail:       v.ContactEmail,
		ContactPhone:       v.ContactPhone,
		Description:        v.Description,
		SessionInfo:        v.SessionInfo,
		Beginners:          v.Beginners,
		Intermediates:      v.Intermediates,
		Advanced:           v.Advanced,
		Kids:               v.Kids,
		Adults:             v.Adults,
		Coaching:           v.Coaching,
		League:             v.League,
		EquipmentProvided:  v.EquipmentProvided,
		MembershipRequired: v.MembershipRequired,
		FreeTaster:         v.FreeTaster,
		CreatedOn:          formatTimestamp(v.CreatedOn),
		Approved:           v.Approved,
	}
}

func venueToDTO(v venue.Venue) venueDTO {
	return venueDTO{ID: v.ID, Name: v.Name}
}

func venueInfoToDTO(v venue.Info) venueInfoDTO {
	return venueInfoDTO{
		ID:                   v.ID,
		VenueID:              v.VenueID,
		StreetAddress:        v.StreetAddress,
		AddressLine2:         v.AddressLine2,
		City:                 v.City,
		County:               v.County,
		Postcode:             v.Postcode,
		NumTables:            v.NumTables,
		ParkingInfo:          v.ParkingInfo,
		MeetsLeagueStandards: v.MeetsLeagueStandards,
		Latitude:             v.Latitude,
		Longitude:            v.Longitude,
		CreatedOn:            formatTimestamp(v.CreatedOn),
		Approved:             v.Approved,
	}
}

func reviewToDTO(v club.Review) reviewDTO {
	return reviewDTO{
		ID:         v.ID,
		ClubID:     v.ClubID,
		Score:      v.Score,
		Headline:   v.Headline,
		ReviewText: v.ReviewText,
		Approved:   v.Approved,
		CreatedOn:  formatTimestamp(v.CreatedOn),
		UpdatedOn:  formatTimestamp(v.UpdatedOn),
	}
}

func reviewsToDTO(items []club.Review) []reviewDTO {
	out := make([]reviewDTO, 0, len(items))
	for _, item := range items {
		out = append(out, reviewToDTO(item))
	}
	return out
}

func reviewSummaryToDTO(v club.ReviewSummary) reviewSummaryDTO {
	return reviewSummaryDTO{Count: v.Count, Average: v.Average, Rounded: v.Rounded, Stars: v.Stars}
}

func clubListingToDTO(ctx context.Context, v directory.ClubListing) clubListingDTO {
	_ = ctx

	venues := make([]venueListingDTO, 0, len(v.Venues))
	for _, item := range v.Venues {
		venues = append(venues, venueListingDTO{Venue: venueToDTO(item.Venue), Info: venueInfoToDTO(item.Info)})
	}
	return clubListingDTO{
		Club:    clubToDTO(v.Club),
		Info:    clubInfoToDTO(v.Info),
		Venues:  venues,
		Reviews: reviewSummaryToDTO(v.Reviews),
	}
}

func mapPinToDTO(v directory.MapPin) mapPinDTO {
	names := v.ClubNames
	if names == nil {
		names = []string{}
	}
	return mapPinDTO{
		VenueID:   v.VenueID,
		VenueName: v.VenueName,
		Info:      venueInfoToDTO(v.Info),
		Latitude:  v.Latitude,
		Longitude: v.Longitude,
		ClubNames: names,
	}
}

func adminViewToDTO(ctx context.Context, v directory.AdminView) adminViewDTO {
	_ = ctx

	out := adminViewDTO{
		Club:            clubToDTO(v.Club),
		Venues:          make([]adminVenueDTO, 0, len(v.Venues)),
		AvailableVenues: make([]venueDTO, 0, len(v.AvailableVenues)),
		HasPendingInfo:  v.HasPendingInfo,
	}
	if v.Info != nil {
		info := clubInfoToDTO(*v.Info)
		out.Info = &info
	}
	for _, item := range v.Venues {
		row := adminVenueDTO{Venue: venueToDTO(item.Venue), Shared: item.Shared}
		if item.Info != nil {
			info := venueInfoToDTO(*item.Info)
			row.Info = &info
		}
		out.Venues = append(out.Venues, row)
	}
	for _, item := range v.AvailableVenues {
		out.AvailableVenues = append(out.AvailableVenues, venueToDTO(item))
	}
	return out
}

func pendingQueueToDTO(v usecase.PendingQueue) pendingQueueDTO {
	out := pendingQueueDTO{
		ClubInfos:  make([]clubInfoDTO, 0, len(v.ClubInfos)),
		VenueInfos: make([]venueInfoDTO, 0, len(v.VenueInfos)),
		Reviews:    reviewsToDTO(v.Reviews),
	}
	for _, item := range v.ClubInfos {
		out.ClubInfos = append(out.ClubInfos, clubInfoToDTO(item))
	}
	for _, item := range v.VenueInfos {
		out.VenueInfos = append(out.VenueInfos, venueInfoToDTO(item))
	}
	return out
}

func playerToDTO(v player.Player) playerDTO {
	return playerDTO{
		ID:            v.ID,
		Forename:      v.Forename,
		Surname:       v.Surname,
		FullName:      v.FullName(),
		DateOfBirth:   formatDate(v.DateOfBirth),
		CurrentClubID: v.CurrentClubID,
		ClubStatus:    string(v.ClubStatus),
	}
}

func playersToDTO(items []player.Player) []playerDTO {
	out := make([]playerDTO, 0, len(items))
	for _, item := range items {
		out = append(out, playerToDTO(item))
	}
	return out
}

func teamToDTO(v team.Team) teamDTO {
	return teamDTO{
		ID:          v.ID,
		SeasonID:    v.SeasonID,
		DivisionID:  v.DivisionID,
		ClubID:      v.ClubID,
		HomeVenueID: v.HomeVenueID,
		Name:        v.Name,
		HomeDay:     string(v.HomeDay),
		HomeTime:    v.HomeTime.String(),
		Approved:    v.Approved,
	}
}

func memberToDTO(v team.Member) memberDTO {
	return memberDTO{ID: v.ID, PlayerID: v.PlayerID, TeamID: v.TeamID, PaidFees: v.PaidFees}
}

func fixtureToDTO(v fixture.Fixture) fixtureDTO {
	return fixtureDTO{
		ID:         v.ID,
		SeasonID:   v.SeasonID,
		DivisionID: v.DivisionID,
		WeekID:     v.WeekID,
		HomeTeamID: v.HomeTeamID,
		AwayTeamID: v.AwayTeamID,
		VenueID:    v.VenueID,
		Datetime:   formatTimestamp(v.Datetime),
		Status:     string(v.Status),
	}
}

func filterOptionsToDTO(v usecase.FilterOptions) filterOptionsDTO {
	out := filterOptionsDTO{
		Seasons:   make([]seasonDTO, 0, len(v.Seasons)),
		Divisions: make([]divisionDTO, 0, len(v.Divisions)),
		Clubs:     make([]clubDTO, 0, len(v.Clubs)),
	}
	for _, item := range v.Seasons {
		out.Seasons = append(out.Seasons, seasonToDTO(item))
	}
	for _, item := range v.Divisions {
		out.Divisions = append(out.Divisions, divisionToDTO(item))
	}
	for _, item := range v.Clubs {
		out.Clubs = append(out.Clubs, clubToDTO(item))
	}
	return out
}

func fixtureListingToDTO(ctx context.Context, v usecase.FixtureListing) fixtureListingDTO {
	_ = ctx

	weeks := make([]fixtureWeekDTO, 0, len(v.Weeks))
	for _, week := range v.Weeks {
		rows := make([]fixtureRowDTO, 0, len(week.Fixtures))
		for _, row := range week.Fixtures {
			rows = append(rows, fixtureRowDTO{
				Fixture:     fixtureToDTO(row.Fixture),
				HomeTeam:    teamToDTO(row.HomeTeam),
				AwayTeam:    teamToDTO(row.AwayTeam),
				StatusClass: row.StatusClass,
			})
		}
		weeks = append(weeks, fixtureWeekDTO{Week: weekToDTO(week.Week), Fixtures: rows})
	}

	return fixtureListingDTO{
		Season:         optionalSeasonToDTO(v.Season),
		Weeks:          weeks,
		CurrentWeekID:  v.CurrentWeekID,
		StatusKey:      v.StatusKey,
		FiltersApplied: v.FiltersApplied,
		Options:        filterOptionsToDTO(v.Options),
	}
}

func resultToDTO(v result.FixtureResult) resultDTO {
	return resultDTO{
		ID:        v.ID,
		FixtureID: v.FixtureID,
		HomeScore: v.HomeScore,
		AwayScore: v.AwayScore,
		Winner:    string(v.Winner),
		Status:    string(v.Status),
		CreatedOn: formatTimestamp(v.CreatedOn),
	}
}

func gamesToDTO(items []result.Game) []gameDTO {
	out := make([]gameDTO, 0, len(items))
	for _, g := range items {
		out = append(out, gameDTO{
			ID:         g.ID,
			SetNum:     g.SetNum,
			HomePoints: g.HomePoints,
			AwayPoints: g.AwayPoints,
			Winner:     string(g.Winner),
		})
	}
	return out
}

func singlesToDTO(v result.SinglesMatch) singlesDTO {
	return singlesDTO{
		ID:           v.ID,
		ResultID:     v.ResultID,
		HomePlayerID: v.HomePlayerID,
		AwayPlayerID: v.AwayPlayerID,
		HomeSets:     v.HomeSets,
		AwaySets:     v.AwaySets,
		Winner:       string(v.Winner),
		Games:        gamesToDTO(v.Games),
	}
}

func doublesToDTO(v result.DoublesMatch) doublesDTO {
	return doublesDTO{
		ID:            v.ID,
		ResultID:      v.ResultID,
		HomePlayerIDs: v.HomePlayerIDs,
		AwayPlayerIDs: v.AwayPlayerIDs,
		HomeSets:      v.HomeSets,
		AwaySets:      v.AwaySets,
		Winner:        string(v.Winner),
		Games:         gamesToDTO(v.Games),
	}
}

func breakdownToDTO(ctx context.Context, v usecase.ResultBreakdown) breakdownDTO {
	_ = ctx

	matches := make([]matchLineDTO, 0, len(v.Matches))
	for _, m := range v.Matches {
		matches = append(matches, matchLineDTO{
			Kind:      m.Kind,
			HomeNames: m.HomeNames,
			AwayNames: m.AwayNames,
			HomeSets:  m.HomeSets,
			AwaySets:  m.AwaySets,
			Winner:    string(m.Winner),
			Games:     gamesToDTO(m.Games),
		})
	}
	homeWins, awayWins := v.HomeWins, v.AwayWins
	if homeWins == nil {
		homeWins = []usecase.PlayerWins{}
	}
	if awayWins == nil {
		awayWins = []usecase.PlayerWins{}
	}

	return breakdownDTO{
		Fixture:  fixtureToDTO(v.Fixture),
		HomeTeam: teamToDTO(v.HomeTeam),
		AwayTeam: teamToDTO(v.AwayTeam),
		Result:   resultToDTO(v.Result),
		Matches:  matches,
		HomeWins: homeWins,
		AwayWins: awayWins,
	}
}

func resultRowsToDTO(items []usecase.ResultRow) []resultRowDTO {
	out := make([]resultRowDTO, 0, len(items))
	for _, row := range items {
		out = append(out, resultRowDTO{
			Fixture:  fixtureToDTO(row.Fixture),
			HomeTeam: teamToDTO(row.HomeTeam),
			AwayTeam: teamToDTO(row.AwayTeam),
			Result:   resultToDTO(row.Result),
		})
	}
	return out
}

func tablesToDTO(season *league.Season, tables []usecase.DivisionTable) tablesDTO {
	out := tablesDTO{
		Season: optionalSeasonToDTO(season),
		Tables: make([]divisionTableDTO, 0, len(tables)),
	}
	for _, t := range tables {
		standings := t.Standings
		if standings == nil {
			standings = []result.Standing{}
		}
		out.Tables = append(out.Tables, divisionTableDTO{Division: divisionToDTO(t.Division), Standings: standings})
	}
	return out
}

func teamSummaryToDTO(ctx context.Context, v usecase.TeamSummary) teamSummaryDTO {
	_ = ctx

	fixtures := make([]fixtureDTO, 0, len(v.Fixtures))
	for _, f := range v.Fixtures {
		fixtures = append(fixtures, fixtureToDTO(f))
	}
	return teamSummaryDTO{
		Team:      teamToDTO(v.Team),
		Season:    seasonToDTO(v.Season),
		Division:  divisionToDTO(v.Division),
		Club:      clubToDTO(v.Club),
		HomeVenue: venueToDTO(v.HomeVenue),
		Roster:    playersToDTO(v.Roster),
		Fixtures:  fixtures,
		Results:   resultRowsToDTO(v.Results),
	}
}
