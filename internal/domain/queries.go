package domain

// Defaults applied when a query omits a value. The season default matches the
// most recent season API-Football serves on the free tier; league 39 is the
// English Premier League.
const (
	DefaultSeason   = 2023
	DefaultLeagueID = 39
)

// PlayerQuery identifies a single player's statistics for a season.
type PlayerQuery struct {
	PlayerID int
	Season   int
}

// Normalize fills in defaulted fields and returns the result.
func (q PlayerQuery) Normalize() PlayerQuery {
	if q.Season <= 0 {
		q.Season = DefaultSeason
	}
	return q
}

// TopScorersQuery identifies a league's top scorers for a season.
type TopScorersQuery struct {
	LeagueID int
	Season   int
}

// Normalize fills in defaulted fields and returns the result.
func (q TopScorersQuery) Normalize() TopScorersQuery {
	if q.LeagueID <= 0 {
		q.LeagueID = DefaultLeagueID
	}
	if q.Season <= 0 {
		q.Season = DefaultSeason
	}
	return q
}
