package student

// ClassRecord mirrors one row of the student's class list (backend
// resource "kelas").
type ClassRecord struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Level    string `json:"level"`
	Teacher  string `json:"teacher"`
	Schedule string `json:"schedule"`
	Room     string `json:"room,omitempty"`
	Progress int    `json:"progress"`
	Status   string `json:"status"`
}

// ClassesStats is the stats object of the My Classes page. A failing
// fetch keeps the zeroed value; fields never go partial.
type ClassesStats struct {
	TotalClasses      int `json:"totalClasses"`
	ActiveClasses     int `json:"activeClasses"`
	CompletedSessions int `json:"completedSessions"`
	UpcomingSessions  int `json:"upcomingSessions"`
}

// AttendanceRecord mirrors one row of the student's attendance history
// (backend resource "absensi").
type AttendanceRecord struct {
	ID        string `json:"id"`
	ClassName string `json:"className"`
	Date      string `json:"date"`
	Status    string `json:"status"`
	Notes     string `json:"notes,omitempty"`
}

// AttendanceStats is the stats object of the My Attendance page.
type AttendanceStats struct {
	TotalSessions  int     `json:"totalSessions"`
	Present        int     `json:"present"`
	Absent         int     `json:"absent"`
	Late           int     `json:"late"`
	AttendanceRate float64 `json:"attendanceRate"`
}
