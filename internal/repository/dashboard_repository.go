package repository

import (
	"gorm.io/gorm"
)

// LineOccupancy is one row of the per-line dashboard summary.
type LineOccupancy struct {
	LineID        uint    `json:"line_id"`
	Name          string  `json:"name"`
	StationCount  int64   `json:"station_count"`
	Occupied      int64   `json:"occupied"`
	AvgEfficiency float64 `json:"avg_efficiency"`
}

type DashboardRepository interface {
	GetDashboardStats(date string) (map[string]interface{}, error)
}

type dashboardRepository struct {
	operators   OperatorRepository
	attendance  AttendanceRepository
	lines       LineRepository
	assignments AssignmentRepository
}

func NewDashboardRepository(db *gorm.DB) DashboardRepository {
	return &dashboardRepository{
		operators:   NewOperatorRepository(db),
		attendance:  NewAttendanceRepository(db),
		lines:       NewLineRepository(db),
		assignments: NewAssignmentRepository(db),
	}
}

// GetDashboardStats builds the snapshot the polling dashboard renders:
// operator counts by status, today's attendance counts by status, and a
// per-line station/occupancy/efficiency summary.
func (r *dashboardRepository) GetDashboardStats(date string) (map[string]interface{}, error) {
	stats := make(map[string]interface{})

	operatorCounts, err := r.operators.CountByStatus()
	if err != nil {
		return nil, err
	}
	stats["operators"] = operatorCounts

	attendanceCounts, err := r.attendance.CountByStatus(date)
	if err != nil {
		return nil, err
	}
	stats["attendance_today"] = attendanceCounts

	summaries, err := r.lines.GetAllWithStats()
	if err != nil {
		return nil, err
	}
	occupied, err := r.assignments.CountOccupiedByLine(date)
	if err != nil {
		return nil, err
	}

	lines := make([]LineOccupancy, 0, len(summaries))
	for _, s := range summaries {
		lines = append(lines, LineOccupancy{
			LineID:        s.ID,
			Name:          s.Name,
			StationCount:  s.StationCount,
			Occupied:      occupied[s.ID],
			AvgEfficiency: s.AvgEfficiency,
		})
	}
	stats["lines"] = lines

	return stats, nil
}
