package storage

import (
	"hrms/models"
)

func (s *Storage) GetCandidates() ([]models.Candidate, error) {
	candidates := make([]models.Candidate, 0)
	err := s.db.Order("created_at desc").Find(&candidates).Error
	return candidates, err
}

func (s *Storage) GetCandidate(id uint) (*models.Candidate, error) {
	var candidate models.Candidate
	if err := s.db.First(&candidate, id).Error; err != nil {
		return nil, notFoundAsNil(err)
	}
	return &candidate, nil
}

func (s *Storage) CreateCandidate(candidate *models.Candidate) (*models.Candidate, error) {
	if err := s.db.Create(candidate).Error; err != nil {
		return nil, err
	}
	return candidate, nil
}

func (s *Storage) UpdateCandidate(id uint, changes map[string]any) (*models.Candidate, error) {
	if len(changes) > 0 {
		err := s.db.Model(&models.Candidate{}).Where("id = ?", id).Updates(changes).Error
		if err != nil {
			return nil, err
		}
	}
	return s.GetCandidate(id)
}

func (s *Storage) DeleteCandidate(id uint) error {
	return s.db.Delete(&models.Candidate{}, id).Error
}
