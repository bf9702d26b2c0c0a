package dashboard

// Invoice mirrors one backend invoice row. Pending filtering happens
// client-side; the backend returns all of them.
type Invoice struct {
	ID          string  `json:"id"`
	StudentName string  `json:"studentName"`
	Amount      float64 `json:"amount"`
	Status      string  `json:"status"`
	DueDate     string  `json:"dueDate"`
}

const StatusPending = "pending"

// SSCStats is the stats object behind the student-success dashboard.
type SSCStats struct {
	ActiveStudents int     `json:"activeStudents"`
	AtRiskStudents int     `json:"atRiskStudents"`
	OpenFollowUps  int     `json:"openFollowUps"`
	RetentionRate  float64 `json:"retentionRate"`
}

// LeadRow is one row of the SEA sales pipeline. Until the backend
// grows an endpoint for it, rows come from the gated sample set.
type LeadRow struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Program  string `json:"program"`
	Stage    string `json:"stage"`
	Source   string `json:"source"`
	FollowUp string `json:"followUp"`
}

// FollowUpRow is one row of the SSC follow-up queue, sample-backed
// like the SEA pipeline.
type FollowUpRow struct {
	ID      string `json:"id"`
	Student string `json:"student"`
	Class   string `json:"class"`
	Reason  string `json:"reason"`
	DueDate string `json:"dueDate"`
}
