package stats

// MonthCount is the number of events falling in one calendar month.
type MonthCount struct {
	Month string `json:"month"`
	Count int    `json:"count"`
}

// DepartmentCount is the number of events run by one department.
type DepartmentCount struct {
	Department string `json:"department"`
	Count      int    `json:"count"`
}

// Totals are the headline catalog numbers.
type Totals struct {
	Events      int `json:"events"`
	Departments int `json:"departments"`
	Organizers  int `json:"organizers"`
}

// StatsSummary is the full catalog breakdown served by the stats endpoints.
type StatsSummary struct {
	Totals       Totals            `json:"totals"`
	ByMonth      []MonthCount      `json:"byMonth"`
	ByDepartment []DepartmentCount `json:"byDepartment"`
	Undated      int               `json:"undated"`
}
