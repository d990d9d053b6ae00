package response

import (
	"time"

	"github.com/bebe-pirat/edugame-api/internal/model"
	"github.com/bebe-pirat/edugame-api/internal/services/stats"
)

// User represents a user in API responses. The password hash is never
// included.
type User struct {
	ID        string    `json:"id"`
	Username  string    `json:"username"`
	Role      string    `json:"role"`
	Avatar    string    `json:"avatar"`
	CreatedAt time.Time `json:"created_at"`
}

// UserFromModel converts a model.User to a response User
func UserFromModel(u *model.User) User {
	return User{
		ID:        string(u.ID),
		Username:  u.Username,
		Role:      string(u.Role),
		Avatar:    u.Avatar,
		CreatedAt: u.CreatedAt,
	}
}

// UsersFromModel converts a slice of users
func UsersFromModel(users []*model.User) []User {
	out := make([]User, len(users))
	for i, u := range users {
		out[i] = UserFromModel(u)
	}
	return out
}

// Message is a plain confirmation response
type Message struct {
	Message string `json:"message"`
}

// LoginResponse is the response for a successful login
type LoginResponse struct {
	Token string `json:"token"`
	User  User   `json:"user"`
}

// UpdateAvatarResponse returns the updated user alongside a confirmation
type UpdateAvatarResponse struct {
	Message string `json:"message"`
	User    User   `json:"user"`
}

// Result represents a game result in API responses
type Result struct {
	ID        string    `json:"id"`
	UserID    string    `json:"user_id"`
	GameType  string    `json:"gameType"`
	Score     int       `json:"score"`
	Trophy    *string   `json:"trophy"`
	CreatedAt time.Time `json:"created_at"`
}

// ResultFromModel converts a model.GameResult to a response Result
func ResultFromModel(r *model.GameResult) Result {
	return Result{
		ID:        string(r.ID),
		UserID:    string(r.UserID),
		GameType:  string(r.GameType),
		Score:     r.Score,
		Trophy:    r.Trophy,
		CreatedAt: r.CreatedAt,
	}
}

// ResultsFromModel converts a slice of results
func ResultsFromModel(results []*model.GameResult) []Result {
	out := make([]Result, len(results))
	for i, r := range results {
		out[i] = ResultFromModel(r)
	}
	return out
}

// SaveResultResponse returns the stored record alongside a confirmation
type SaveResultResponse struct {
	Message string `json:"message"`
	Data    Result `json:"data"`
}

// CategoryCount is one popularity entry
type CategoryCount struct {
	Category string `json:"category"`
	Count    int    `json:"count"`
}

// CategoryCountsFromStats converts stats.CategoryCount values
func CategoryCountsFromStats(counts []stats.CategoryCount) []CategoryCount {
	out := make([]CategoryCount, len(counts))
	for i, c := range counts {
		out[i] = CategoryCount{Category: string(c.GameType), Count: c.Count}
	}
	return out
}

// DayCount is one daily-activity entry
type DayCount struct {
	Date  string `json:"date"`
	Count int    `json:"count"`
}

// DayCountsFromStats converts stats.DayCount values
func DayCountsFromStats(days []stats.DayCount) []DayCount {
	out := make([]DayCount, len(days))
	for i, d := range days {
		out[i] = DayCount{Date: d.Date, Count: d.Count}
	}
	return out
}

// CategoryAverage is one average-score entry
type CategoryAverage struct {
	Category     string  `json:"category"`
	AverageScore float64 `json:"averageScore"`
}

// CategoryAveragesFromStats converts stats.CategoryAverage values
func CategoryAveragesFromStats(averages []stats.CategoryAverage) []CategoryAverage {
	out := make([]CategoryAverage, len(averages))
	for i, a := range averages {
		out[i] = CategoryAverage{Category: string(a.GameType), AverageScore: a.AverageScore}
	}
	return out
}

// OverviewResponse holds the admin dashboard counters
type OverviewResponse struct {
	TotalUsers       int `json:"totalUsers"`
	TotalGamesPlayed int `json:"totalGamesPlayed"`
}

// OverviewFromStats converts a stats.Overview
func OverviewFromStats(o *stats.Overview) OverviewResponse {
	return OverviewResponse{
		TotalUsers:       o.TotalUsers,
		TotalGamesPlayed: o.TotalGamesPlayed,
	}
}
