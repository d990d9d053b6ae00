package cli

import (
	"encoding/json"
	"fmt"
	"os"
)

// Output handles formatting output based on the configured format
type Output struct {
	format string
}

// NewOutput creates a new Output formatter
func NewOutput(format string) *Output {
	return &Output{format: format}
}

// Print outputs data in the configured format
func (o *Output) Print(data any) {
	if o.format == "json" {
		o.printJSON(data)
	} else {
		o.printText(data)
	}
}

// PrintError outputs an error
func (o *Output) PrintError(err error) {
	if o.format == "json" {
		errData := map[string]any{
			"error": map[string]string{
				"message": err.Error(),
			},
		}
		data, _ := json.Marshal(errData)
		fmt.Fprintln(os.Stderr, string(data))
	} else {
		fmt.Fprintf(os.Stderr, "Error: %s\n", err)
	}
}

// PrintMessage outputs a simple message
func (o *Output) PrintMessage(msg string) {
	if o.format == "json" {
		data, _ := json.Marshal(map[string]string{"message": msg})
		fmt.Println(string(data))
	} else {
		fmt.Println(msg)
	}
}

func (o *Output) printJSON(data any) {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	_ = enc.Encode(data)
}

func (o *Output) printText(data any) {
	switch v := data.(type) {
	case User:
		o.printUser(v)
	case UserList:
		o.printUserList(v)
	case LoginResult:
		o.printLoginResult(v)
	case AvatarResult:
		o.printAvatarResult(v)
	case OverviewResult:
		o.printOverviewResult(v)
	case SaveResult:
		o.printSaveResult(v)
	case ResultList:
		o.printResultList(v)
	case CategoryCountList:
		o.printCategoryCountList(v)
	case DayCountList:
		o.printDayCountList(v)
	case CategoryAverageList:
		o.printCategoryAverageList(v)
	case HealthResult:
		o.printHealthResult(v)
	default:
		// Fallback to JSON for unknown types
		o.printJSON(data)
	}
}

// MessageResult response type (matches API)
type MessageResult struct {
	Message string `json:"message"`
}

// User response type
type User struct {
	ID        string `json:"id"`
	Username  string `json:"username"`
	Role      string `json:"role"`
	Avatar    string `json:"avatar"`
	CreatedAt string `json:"created_at"`
}

// UserList is a printable list of users
type UserList []User

// LoginResult combines token and user
type LoginResult struct {
	Token string `json:"token"`
	User  User   `json:"user"`
}

// AvatarResult response type
type AvatarResult struct {
	Message string `json:"message"`
	User    User   `json:"user"`
}

// OverviewResult response type
type OverviewResult struct {
	TotalUsers       int `json:"totalUsers"`
	TotalGamesPlayed int `json:"totalGamesPlayed"`
}

// Result response type
type Result struct {
	ID        string  `json:"id"`
	UserID    string  `json:"user_id"`
	GameType  string  `json:"gameType"`
	Score     int     `json:"score"`
	Trophy    *string `json:"trophy"`
	CreatedAt string  `json:"created_at"`
}

// ResultList is a printable list of game results
type ResultList []Result

// SaveResult response type
type SaveResult struct {
	Message string `json:"message"`
	Data    Result `json:"data"`
}

// CategoryCount response type
type CategoryCount struct {
	Category string `json:"category"`
	Count    int    `json:"count"`
}

// CategoryCountList is a printable list of per-category counts
type CategoryCountList []CategoryCount

// DayCount response type
type DayCount struct {
	Date  string `json:"date"`
	Count int    `json:"count"`
}

// DayCountList is a printable list of per-day counts
type DayCountList []DayCount

// CategoryAverage response type
type CategoryAverage struct {
	Category     string  `json:"category"`
	AverageScore float64 `json:"averageScore"`
}

// CategoryAverageList is a printable list of per-category averages
type CategoryAverageList []CategoryAverage

// HealthResult response type
type HealthResult struct {
	Status string `json:"status"`
}

func (o *Output) printUser(u User) {
	fmt.Printf("User: %s (%s)\n", u.Username, u.ID)
	fmt.Printf("Role: %s\n", u.Role)
	fmt.Printf("Avatar: %s\n", u.Avatar)
	if u.CreatedAt != "" {
		fmt.Printf("Created: %s\n", u.CreatedAt)
	}
}

func (o *Output) printUserList(users UserList) {
	fmt.Printf("Users (%d):\n", len(users))
	for _, u := range users {
		fmt.Printf("  - %s (%s) - %s\n", u.Username, u.ID, u.Role)
	}
}

func (o *Output) printLoginResult(l LoginResult) {
	o.printUser(l.User)
	fmt.Printf("Token: %s\n", l.Token)
}

func (o *Output) printAvatarResult(a AvatarResult) {
	fmt.Println(a.Message)
	o.printUser(a.User)
}

func (o *Output) printOverviewResult(s OverviewResult) {
	fmt.Printf("Students: %d\n", s.TotalUsers)
	fmt.Printf("Games Played: %d\n", s.TotalGamesPlayed)
}

func (o *Output) printSaveResult(s SaveResult) {
	fmt.Println(s.Message)
	o.printResult(s.Data)
}

func (o *Output) printResult(r Result) {
	fmt.Printf("  %s: %d points", r.GameType, r.Score)
	if r.Trophy != nil {
		fmt.Printf(" [%s]", *r.Trophy)
	}
	if r.CreatedAt != "" {
		fmt.Printf(" (%s)", r.CreatedAt)
	}
	fmt.Println()
}

func (o *Output) printResultList(results ResultList) {
	fmt.Printf("Results (%d):\n", len(results))
	for _, r := range results {
		o.printResult(r)
	}
}

func (o *Output) printCategoryCountList(counts CategoryCountList) {
	for _, c := range counts {
		fmt.Printf("  %s: %d\n", c.Category, c.Count)
	}
}

func (o *Output) printDayCountList(days DayCountList) {
	for _, d := range days {
		fmt.Printf("  %s: %d\n", d.Date, d.Count)
	}
}

func (o *Output) printCategoryAverageList(averages CategoryAverageList) {
	for _, a := range averages {
		fmt.Printf("  %s: %.1f\n", a.Category, a.AverageScore)
	}
}

func (o *Output) printHealthResult(h HealthResult) {
	fmt.Printf("Status: %s\n", h.Status)
}
