package core

// The standings record of one team over a number of fixtures
type StandingMetrics struct {
	NumMatches int `json:"numMatches"`
	Wins       int `json:"wins"`
	Draws      int `json:"draws"`
	Losses     int `json:"losses"`
	Points     int `json:"points"`
}

// Counts a result from the team's own perspective
func (m *StandingMetrics) record(result Result) {
	m.NumMatches += 1
	m.Points += result.Points()
	switch result {
	case ResultWin:
		m.Wins += 1
	case ResultDraw:
		m.Draws += 1
	default:
		m.Losses += 1
	}
}

// Add the other standing metrics to this one
func (m *StandingMetrics) Add(other *StandingMetrics) {
	m.NumMatches += other.NumMatches
	m.Wins += other.Wins
	m.Draws += other.Draws
	m.Losses += other.Losses
	m.Points += other.Points
}
