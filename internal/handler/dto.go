package handler

type PointResponse struct {
	Date     string `json:"date"`
	Fruit    string `json:"fruit"`
	Quantity int    `json:"quantity"`
}

type KpiResponse struct {
	AppleTotal  int `json:"appleTotal"`
	OrangeTotal int `json:"orangeTotal"`
	BananaTotal int `json:"bananaTotal"`
	GrandTotal  int `json:"grandTotal"`
	Days        int `json:"days"`
}

type SummarizeRequest struct {
	StartDate string `json:"startDate"`
	EndDate   string `json:"endDate"`
}
