package transfer

import "time"

type AnalyticsSummaryDto struct {
	Accounts         int `json:"accounts"`
	TotalFollowers   int `json:"totalFollowers"`
	TotalImpressions int `json:"totalImpressions"`
	TotalEngagements int `json:"totalEngagements"`
	TotalClicks      int `json:"totalClicks"`
}

type ChartPointDto struct {
	Timestamp time.Time `json:"timestamp"`
	Value     int       `json:"value"`
}
