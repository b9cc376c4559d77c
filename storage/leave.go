package storage

import (
	"hrms/models"
)

// GetLeaves lists every leave joined with its employee, most recent start
// date first. Inner-join semantics as with attendance.
func (s *Storage) GetLeaves() ([]models.Leave, error) {
	leaves := make([]models.Leave, 0)
	err := s.db.InnerJoins("Employee").Order("leaves.start_date desc").Find(&leaves).Error
	return leaves, err
}

func (s *Storage) GetLeavesByEmployee(employeeID uint) ([]models.Leave, error) {
	leaves := make([]models.Leave, 0)
	err := s.db.Where("employee_id = ?", employeeID).Find(&leaves).Error
	return leaves, err
}

func (s *Storage) GetApprovedLeaves() ([]models.Leave, error) {
	leaves := make([]models.Leave, 0)
	err := s.db.InnerJoins("Employee").
		Where("leaves.status = ?", models.LeaveStatusApproved).
		Order("leaves.start_date desc").
		Find(&leaves).Error
	return leaves, err
}

func (s *Storage) CreateLeave(leave *models.Leave) (*models.Leave, error) {
	if err := s.db.Create(leave).Error; err != nil {
		return nil, err
	}
	return leave, nil
}

func (s *Storage) UpdateLeave(id uint, changes map[string]any) (*models.Leave, error) {
	if len(changes) > 0 {
		err := s.db.Model(&models.Leave{}).Where("id = ?", id).Updates(changes).Error
		if err != nil {
			return nil, err
		}
	}
	var leave models.Leave
	if err := s.db.First(&leave, id).Error; err != nil {
		return nil, notFoundAsNil(err)
	}
	return &leave, nil
}

func (s *Storage) DeleteLeave(id uint) error {
	return s.db.Delete(&models.Leave{}, id).Error
}
