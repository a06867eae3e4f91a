package web

import (
	"sort"

	"github.com/noah-isme/student-control/internal/models"
)

// RecentLimit is how many students the dashboard lists.
const RecentLimit = 5

// Dashboard summarises the student registry.
type Dashboard struct {
	TotalStudents  int
	ActiveStudents int
	TotalClasses   int
	TotalCourses   int
	Recent         []models.StudentDetail
}

// BuildDashboard derives the dashboard figures from full listings.
func BuildDashboard(students []models.StudentDetail, classes []models.ClassDetail, courses []models.Course) Dashboard {
	return Dashboard{
		TotalStudents:  len(students),
		ActiveStudents: ActiveCount(students),
		TotalClasses:   len(classes),
		TotalCourses:   len(courses),
		Recent:         RecentStudents(students, RecentLimit),
	}
}

// RecentStudents returns up to n students, most recently created first.
// The input slice is left untouched.
func RecentStudents(students []models.StudentDetail, n int) []models.StudentDetail {
	sorted := make([]models.StudentDetail, len(students))
	copy(sorted, students)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].CreatedAt.After(sorted[j].CreatedAt)
	})
	if n >= 0 && len(sorted) > n {
		sorted = sorted[:n]
	}
	return sorted
}

// ActiveCount counts students whose status is active.
func ActiveCount(students []models.StudentDetail) int {
	count := 0
	for _, s := range students {
		if s.Status == models.StudentStatusActive {
			count++
		}
	}
	return count
}
