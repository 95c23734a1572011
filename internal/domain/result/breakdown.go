package result

// Breakdown counts singles wins per team registration. Registrations without
// a win are absent from the maps.
type Breakdown struct {
	HomeWins map[int64]int
	AwayWins map[int64]int
}

func BreakdownOf(singles []SinglesMatch) Breakdown {
	b := Breakdown{HomeWins: map[int64]int{}, AwayWins: map[int64]int{}}
	for _, m := range singles {
		switch DeriveWinner(m.HomeSets, m.AwaySets) {
		case WinnerHome:
			b.HomeWins[m.HomePlayerID]++
		case WinnerAway:
			b.AwayWins[m.AwayPlayerID]++
		}
	}
	return b
}
