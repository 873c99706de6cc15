package memory

import (
	"github.com/riskibarqy/fantasy-draft/internal/domain/league"
	"github.com/riskibarqy/fantasy-draft/internal/domain/player"
)

const (
	LeagueIDDemo = "league-demo"

	OwnerCommissioner = "owner-1"
	OwnerTwo          = "owner-2"
	OwnerThree        = "owner-3"
	OwnerFour         = "owner-4"
)

func SeedLeagues() []league.League {
	return []league.League{
		{ID: LeagueIDDemo, Name: "Sunday Auction League", DraftStatus: league.DraftStatusPreDraft},
	}
}

func SeedMembers() []league.Member {
	return []league.Member{
		{LeagueID: LeagueIDDemo, UserID: OwnerCommissioner, TeamName: "Gridiron Gurus", IsCommissioner: true},
		{LeagueID: LeagueIDDemo, UserID: OwnerTwo, TeamName: "Blitz Brigade"},
		{LeagueID: LeagueIDDemo, UserID: OwnerThree, TeamName: "End Zone Elite"},
		{LeagueID: LeagueIDDemo, UserID: OwnerFour},
	}
}

func SeedPlayers() []player.Player {
	return []player.Player{
		{ID: "qb-mahomes", Name: "Patrick Mahomes", Position: player.PositionQuarterback, NFLTeam: "KC", ByeWeek: 10},
		{ID: "qb-allen", Name: "Josh Allen", Position: player.PositionQuarterback, NFLTeam: "BUF", ByeWeek: 7},
		{ID: "qb-hurts", Name: "Jalen Hurts", Position: player.PositionQuarterback, NFLTeam: "PHI", ByeWeek: 9},
		{ID: "rb-mccaffrey", Name: "Christian McCaffrey", Position: player.PositionRunningBack, NFLTeam: "SF", ByeWeek: 14},
		{ID: "rb-robinson", Name: "Bijan Robinson", Position: player.PositionRunningBack, NFLTeam: "ATL", ByeWeek: 5},
		{ID: "rb-gibbs", Name: "Jahmyr Gibbs", Position: player.PositionRunningBack, NFLTeam: "DET", ByeWeek: 8},
		{ID: "rb-henry", Name: "Derrick Henry", Position: player.PositionRunningBack, NFLTeam: "BAL", ByeWeek: 7},
		{ID: "rb-barkley", Name: "Saquon Barkley", Position: player.PositionRunningBack, NFLTeam: "PHI", ByeWeek: 9},
		{ID: "wr-jefferson", Name: "Justin Jefferson", Position: player.PositionWideReceiver, NFLTeam: "MIN", ByeWeek: 6},
		{ID: "wr-chase", Name: "Ja'Marr Chase", Position: player.PositionWideReceiver, NFLTeam: "CIN", ByeWeek: 10},
		{ID: "wr-lamb", Name: "CeeDee Lamb", Position: player.PositionWideReceiver, NFLTeam: "DAL", ByeWeek: 10},
		{ID: "wr-hill", Name: "Tyreek Hill", Position: player.PositionWideReceiver, NFLTeam: "MIA", ByeWeek: 12},
		{ID: "wr-stbrown", Name: "Amon-Ra St. Brown", Position: player.PositionWideReceiver, NFLTeam: "DET", ByeWeek: 8},
		{ID: "te-kelce", Name: "Travis Kelce", Position: player.PositionTightEnd, NFLTeam: "KC", ByeWeek: 10},
		{ID: "te-laporta", Name: "Sam LaPorta", Position: player.PositionTightEnd, NFLTeam: "DET", ByeWeek: 8},
		{ID: "k-tucker", Name: "Justin Tucker", Position: player.PositionKicker, NFLTeam: "BAL", ByeWeek: 7},
		{ID: "k-butker", Name: "Harrison Butker", Position: player.PositionKicker, NFLTeam: "KC", ByeWeek: 10},
		{ID: "def-49ers", Name: "49ers D/ST", Position: player.PositionDefense, NFLTeam: "SF", ByeWeek: 14},
		{ID: "def-ravens", Name: "Ravens D/ST", Position: player.PositionDefense, NFLTeam: "BAL", ByeWeek: 7},
	}
}
