package storage

import (
	"hrms/models"
)

func (s *Storage) GetEmployees() ([]models.Employee, error) {
	employees := make([]models.Employee, 0)
	err := s.db.Order("created_at desc").Find(&employees).Error
	return employees, err
}

func (s *Storage) GetEmployee(id uint) (*models.Employee, error) {
	var employee models.Employee
	if err := s.db.First(&employee, id).Error; err != nil {
		return nil, notFoundAsNil(err)
	}
	return &employee, nil
}

func (s *Storage) CreateEmployee(employee *models.Employee) (*models.Employee, error) {
	if err := s.db.Create(employee).Error; err != nil {
		return nil, err
	}
	return employee, nil
}

func (s *Storage) UpdateEmployee(id uint, changes map[string]any) (*models.Employee, error) {
	if len(changes) > 0 {
		err := s.db.Model(&models.Employee{}).Where("id = ?", id).Updates(changes).Error
		if err != nil {
			return nil, err
		}
	}
	return s.GetEmployee(id)
}

func (s *Storage) DeleteEmployee(id uint) error {
	return s.db.Delete(&models.Employee{}, id).Error
}

// PromoteCandidate inserts a new employee carrying the candidate
// back-reference. The candidate row itself is never touched, and no check is
// made that it still exists; an orphaned reference is possible.
func (s *Storage) PromoteCandidate(candidateID uint, employee *models.Employee) (*models.Employee, error) {
	employee.CandidateID = &candidateID
	if err := s.db.Create(employee).Error; err != nil {
		return nil, err
	}
	return employee, nil
}
