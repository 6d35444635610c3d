package models

// DashboardStat is one tile of the home dashboard
type DashboardStat struct {
	ID    string `json:"id"`
	Label string `json:"label"`
	Value string `json:"value"`
	Unit  string `json:"unit"`
}

// DashboardCard links the dashboard to another view
type DashboardCard struct {
	View        string `json:"view"`
	Title       string `json:"title"`
	Description string `json:"description"`
}

// DashboardSnapshot is the read-only home screen
type DashboardSnapshot struct {
	Greeting string          `json:"greeting"`
	Subtitle string          `json:"subtitle"`
	Plan     string          `json:"plan"`
	Stats    []DashboardStat `json:"stats"`
	Cards    []DashboardCard `json:"cards"`
}
