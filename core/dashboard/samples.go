package dashboard

// Sample rows shown on the SEA/SSC dashboards while their backend
// endpoints do not exist yet. Gated by Config.ShowSampleRows so they
// can be switched off wholesale instead of masquerading as live data.

var sampleLeads = []LeadRow{
	{ID: "L-001", Name: "Budi Santoso", Program: "HSK 3 Intensive", Stage: "trial scheduled", Source: "Instagram", FollowUp: "2024-06-03"},
	{ID: "L-002", Name: "Clarissa Tan", Program: "Kids Mandarin", Stage: "negotiation", Source: "Referral", FollowUp: "2024-06-04"},
	{ID: "L-003", Name: "Devi Wijaya", Program: "Business Mandarin", Stage: "new lead", Source: "Website", FollowUp: "2024-06-05"},
	{ID: "L-004", Name: "Michael Gunawan", Program: "HSK 5 Private", Stage: "invoice sent", Source: "Walk-in", FollowUp: "2024-06-06"},
}

var sampleFollowUps = []FollowUpRow{
	{ID: "F-001", Student: "Kevin Lim", Class: "HSK 2 Evening", Reason: "missed 3 sessions", DueDate: "2024-06-03"},
	{ID: "F-002", Student: "Sari Putri", Class: "Kids Mandarin A", Reason: "payment overdue", DueDate: "2024-06-04"},
	{ID: "F-003", Student: "Jonathan Huang", Class: "Business Mandarin", Reason: "trial feedback", DueDate: "2024-06-05"},
}
