package storage

import (
	"hrms/models"
)

// GetAttendance lists every attendance record joined with its employee,
// newest date first. The join is inner: rows whose employee reference does
// not resolve are omitted.
func (s *Storage) GetAttendance() ([]models.Attendance, error) {
	records := make([]models.Attendance, 0)
	err := s.db.InnerJoins("Employee").Order("attendance.date desc").Find(&records).Error
	return records, err
}

func (s *Storage) GetAttendanceByEmployee(employeeID uint) ([]models.Attendance, error) {
	records := make([]models.Attendance, 0)
	err := s.db.Where("employee_id = ?", employeeID).Find(&records).Error
	return records, err
}

func (s *Storage) CreateAttendance(record *models.Attendance) (*models.Attendance, error) {
	if err := s.db.Create(record).Error; err != nil {
		return nil, err
	}
	return record, nil
}

func (s *Storage) UpdateAttendance(id uint, changes map[string]any) (*models.Attendance, error) {
	if len(changes) > 0 {
		err := s.db.Model(&models.Attendance{}).Where("id = ?", id).Updates(changes).Error
		if err != nil {
			return nil, err
		}
	}
	var record models.Attendance
	if err := s.db.First(&record, id).Error; err != nil {
		return nil, notFoundAsNil(err)
	}
	return &record, nil
}
