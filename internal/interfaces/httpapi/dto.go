package httpapi

import (
	"time"

	"github.com/riskibarqy/fantasy-draft/internal/domain/draft"
	"github.com/riskibarqy/fantasy-draft/internal/domain/league"
	"github.com/riskibarqy/fantasy-draft/internal/domain/lineup"
	"github.com/riskibarqy/fantasy-draft/internal/domain/player"
	"github.com/riskibarqy/fantasy-draft/internal/domain/roster"
	"github.com/riskibarqy/fantasy-draft/internal/domain/trade"
	"github.com/riskibarqy/fantasy-draft/internal/domain/weeklystat"
	"github.com/riskibarqy/fantasy-draft/internal/usecase"
)

type createLeagueRequest struct {
	Name     string `json:"name" validate:"required,min=3,max=80"`
	TeamName string `json:"teamName" validate:"max=80"`
}

type addMemberRequest struct {
	UserID   string `json:"userId" validate:"required"`
	TeamName string `json:"teamName" validate:"max=80"`
}

type proposeTradeRequest struct {
	ToUserID          string `json:"toUserId" validate:"required"`
	OfferedPlayerID   string `json:"offeredPlayerId" validate:"required"`
	RequestedPlayerID string `json:"requestedPlayerId" validate:"required"`
	Note              string `json:"note" validate:"max=500"`
}

type updateSettingsRequest struct {
	RosterSize     int            `json:"rosterSize" validate:"gte=0,lte=40"`
	SalaryCap      int64          `json:"salaryCap" validate:"gte=0"`
	StartingSlots  map[string]int `json:"startingSlots" validate:"omitempty,dive,keys,required,endkeys,gte=0"`
	WaiverDeadline *time.Time     `json:"waiverDeadline"`
}

type updateLineupRequest struct {
	Week       int      `json:"week" validate:"required"`
	StarterIDs []string `json:"starterIds" validate:"dive,required"`
}

type submitLineupRequest struct {
	Week int `json:"week" validate:"required"`
}

type claimWaiverRequest struct {
	PlayerID     string `json:"playerId" validate:"required"`
	Bid          int64  `json:"bid" validate:"gte=0"`
	DropPlayerID string `json:"dropPlayerId"`
}

type dropPlayerRequest struct {
	PlayerID string `json:"playerId" validate:"required"`
}

type nominateRequest struct {
	PlayerID   string `json:"playerId" validate:"required"`
	OpeningBid int64  `json:"openingBid" validate:"required,gte=1"`
}

type bidRequest struct {
	Amount int64 `json:"amount" validate:"required,gte=1"`
}

type recordWeeklyStatsRequest struct {
	Stats []weeklyStatRequest `json:"stats" validate:"required,min=1,max=5000,dive"`
}

type weeklyStatRequest struct {
	PlayerID string  `json:"playerId" validate:"required"`
	Season   int     `json:"season" validate:"required,gt=0"`
	Week     int     `json:"week" validate:"required"`
	Points   float64 `json:"points"`
}

type leagueDTO struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	DraftStatus string `json:"draftStatus"`
}

type memberDTO struct {
	LeagueID       string `json:"leagueId"`
	UserID         string `json:"userId"`
	TeamName       string `json:"teamName"`
	IsCommissioner bool   `json:"isCommissioner"`
}

type playerDTO struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Position string `json:"position"`
	NFLTeam  string `json:"nflTeam"`
	ByeWeek  int    `json:"byeWeek"`
}

type tradeDTO struct {
	ID                  string    `json:"id"`
	LeagueID            string    `json:"leagueId"`
	FromUserID          string    `json:"fromUserId"`
	ToUserID            string    `json:"toUserId"`
	OfferedPlayerID     string    `json:"offeredPlayerId"`
	OfferedPlayerName   string    `json:"offeredPlayerName,omitempty"`
	RequestedPlayerID   string    `json:"requestedPlayerId"`
	RequestedPlayerName string    `json:"requestedPlayerName,omitempty"`
	Note                string    `json:"note,omitempty"`
	Status              string    `json:"status"`
	CreatedAt           time.Time `json:"createdAt"`
}

type settingsDTO struct {
	LeagueID       string         `json:"leagueId"`
	RosterSize     int            `json:"rosterSize"`
	SalaryCap      int64          `json:"salaryCap"`
	StartingSlots  map[string]int `json:"startingSlots"`
	WaiverDeadline *time.Time     `json:"waiverDeadline,omitempty"`
	UpdatedAt      *time.Time     `json:"updatedAt,omitempty"`
}

type rosterRowDTO struct {
	PlayerID        string `json:"playerId"`
	Name            string `json:"name"`
	Position        string `json:"position"`
	NFLTeam         string `json:"nflTeam"`
	ByeWeek         int    `json:"byeWeek"`
	AcquisitionCost int64  `json:"acquisitionCost"`
	Status          string `json:"status"`
	IsStarter       bool   `json:"isStarter"`
	IsLocked        bool   `json:"isLocked"`
}

type rosterViewDTO struct {
	LeagueID        string         `json:"leagueId"`
	OwnerID         string         `json:"ownerId"`
	TeamName        string         `json:"teamName"`
	Season          int            `json:"season"`
	Week            int            `json:"week"`
	TotalSpent      int64          `json:"totalSpent"`
	LineupSubmitted bool           `json:"lineupSubmitted"`
	SubmittedAt     *time.Time     `json:"submittedAt,omitempty"`
	Players         []rosterRowDTO `json:"players"`
}

type updateLineupDTO struct {
	LeagueID        string   `json:"leagueId"`
	Week            int      `json:"week"`
	LockedPlayerIDs []string `json:"lockedPlayerIds"`
}

type submissionDTO struct {
	LeagueID    string    `json:"leagueId"`
	OwnerID     string    `json:"ownerId"`
	Season      int       `json:"season"`
	Week        int       `json:"week"`
	SubmittedAt time.Time `json:"submittedAt"`
}

type rosterEntryDTO struct {
	ID         string    `json:"id"`
	LeagueID   string    `json:"leagueId"`
	OwnerID    string    `json:"ownerId"`
	PlayerID   string    `json:"playerId"`
	Amount     int64     `json:"amount"`
	Source     string    `json:"source"`
	Season     int       `json:"season"`
	AcquiredAt time.Time `json:"acquiredAt"`
}

type lotDTO struct {
	PlayerID     string    `json:"playerId"`
	NominatorID  string    `json:"nominatorId"`
	HighBidderID string    `json:"highBidderId"`
	HighBid      int64     `json:"highBid"`
	OpenedAt     time.Time `json:"openedAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}

type draftStateDTO struct {
	LeagueID string  `json:"leagueId"`
	Status   string  `json:"status"`
	Lot      *lotDTO `json:"lot,omitempty"`
}

type recordWeeklyStatsDTO struct {
	Recorded int `json:"recorded"`
}

func leagueToDTO(v league.League) leagueDTO {
	return leagueDTO{
		ID:          v.ID,
		Name:        v.Name,
		DraftStatus: string(v.DraftStatus),
	}
}

func memberToDTO(v league.Member) memberDTO {
	return memberDTO{
		LeagueID:       v.LeagueID,
		UserID:         v.UserID,
		TeamName:       v.DisplayTeamName(),
		IsCommissioner: v.IsCommissioner,
	}
}

func playersToDTO(items []player.Player) []playerDTO {
	out := make([]playerDTO, 0, len(items))
	for _, p := range items {
		out = append(out, playerDTO{
			ID:       p.ID,
			Name:     p.Name,
			Position: string(p.Position),
			NFLTeam:  p.NFLTeam,
			ByeWeek:  p.ByeWeek,
		})
	}
	return out
}

func tradeToDTO(v trade.Proposal, offeredName, requestedName string) tradeDTO {
	return tradeDTO{
		ID:                  v.ID,
		LeagueID:            v.LeagueID,
		FromUserID:          v.FromOwnerID,
		ToUserID:            v.ToOwnerID,
		OfferedPlayerID:     v.OfferedPlayerID,
		OfferedPlayerName:   offeredName,
		RequestedPlayerID:   v.RequestedPlayerID,
		RequestedPlayerName: requestedName,
		Note:                v.Note,
		Status:              string(v.Status),
		CreatedAt:           v.CreatedAt,
	}
}

func settingsToDTO(v league.Settings) settingsDTO {
	out := settingsDTO{
		LeagueID:       v.LeagueID,
		RosterSize:     v.RosterSize,
		SalaryCap:      v.SalaryCap,
		StartingSlots:  v.StartingSlots,
		WaiverDeadline: v.WaiverDeadline,
	}
	if !v.UpdatedAt.IsZero() {
		updatedAt := v.UpdatedAt
		out.UpdatedAt = &updatedAt
	}
	return out
}

func rosterViewToDTO(v usecase.RosterView) rosterViewDTO {
	players := make([]rosterRowDTO, 0, len(v.Rows))
	for _, row := range v.Rows {
		players = append(players, rosterRowToDTO(row))
	}
	return rosterViewDTO{
		LeagueID:        v.LeagueID,
		OwnerID:         v.OwnerID,
		TeamName:        v.TeamName,
		Season:          v.Season,
		Week:            v.Week,
		TotalSpent:      v.TotalSpent,
		LineupSubmitted: v.LineupSubmitted,
		SubmittedAt:     v.SubmittedAt,
		Players:         players,
	}
}

func rosterRowToDTO(row lineup.Row) rosterRowDTO {
	return rosterRowDTO{
		PlayerID:        row.PlayerID,
		Name:            row.Name,
		Position:        string(row.Position),
		NFLTeam:         row.NFLTeam,
		ByeWeek:         row.ByeWeek,
		AcquisitionCost: row.AcquisitionCost,
		Status:          string(row.Status),
		IsStarter:       row.IsStarter(),
		IsLocked:        row.IsLocked,
	}
}

func submissionToDTO(v lineup.Submission) submissionDTO {
	return submissionDTO{
		LeagueID:    v.LeagueID,
		OwnerID:     v.OwnerID,
		Season:      v.Season,
		Week:        v.Week,
		SubmittedAt: v.SubmittedAt,
	}
}

func rosterEntryToDTO(v roster.Entry) rosterEntryDTO {
	return rosterEntryDTO{
		ID:         v.ID,
		LeagueID:   v.LeagueID,
		OwnerID:    v.OwnerID,
		PlayerID:   v.PlayerID,
		Amount:     v.Amount,
		Source:     string(v.Source),
		Season:     v.Season,
		AcquiredAt: v.AcquiredAt,
	}
}

func lotToDTO(v draft.Lot) *lotDTO {
	return &lotDTO{
		PlayerID:     v.PlayerID,
		NominatorID:  v.NominatorID,
		HighBidderID: v.HighBidderID,
		HighBid:      v.HighBid,
		OpenedAt:     v.OpenedAt,
		UpdatedAt:    v.UpdatedAt,
	}
}

func draftStateToDTO(v usecase.DraftState) draftStateDTO {
	out := draftStateDTO{
		LeagueID: v.LeagueID,
		Status:   string(v.Status),
	}
	if v.Lot != nil {
		out.Lot = lotToDTO(*v.Lot)
	}
	return out
}

func weeklyStatsFromRequest(req recordWeeklyStatsRequest) []weeklystat.Stat {
	out := make([]weeklystat.Stat, 0, len(req.Stats))
	for _, item := range req.Stats {
		out = append(out, weeklystat.Stat{
			PlayerID: item.PlayerID,
			Season:   item.Season,
			Week:     item.Week,
			Points:   item.Points,
		})
	}
	return out
}
