package services

import (
	"errors"

	"backend/entity"
	"backend/repository"

	"gorm.io/gorm"
)

type TableService struct {
	DB     *gorm.DB
	Repo   *repository.TableRepository
	Events EventPublisher
}

func NewTableService(db *gorm.DB, repo *repository.TableRepository) *TableService {
	return &TableService{DB: db, Repo: repo}
}

func (s *TableService) List() ([]entity.Table, error) {
	return s.Repo.ListAll()
}

func (s *TableService) Get(id uint) (*entity.Table, error) {
	t, err := s.Repo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrTableNotFound
		}
		return nil, err
	}
	return t, nil
}

// UpdateStatus handles the manual available/reserved flips from the floor
// plan. A table holding an open order cannot be flipped out from under it;
// settling goes through OrderService.Release.
func (s *TableService) UpdateStatus(id uint, status string) (*entity.Table, error) {
	switch status {
	case entity.TableAvailable, entity.TableOccupied, entity.TableReserved:
	default:
		return nil, errors.New("invalid table status")
	}

	t, err := s.Get(id)
	if err != nil {
		return nil, err
	}
	if t.CurrentOrderID != nil && status != entity.TableOccupied {
		return nil, ErrTableBusy
	}

	if err := s.Repo.SetStatus(s.DB, t.ID, status); err != nil {
		return nil, err
	}
	out, err := s.Repo.FindByID(t.ID)
	if err != nil {
		return nil, err
	}
	if s.Events != nil {
		s.Events.Publish("table-changed", out)
	}
	return out, nil
}

// Add appends count tables numbered after the current maximum.
func (s *TableService) Add(count, capacity int) ([]entity.Table, error) {
	if count < 1 {
		return nil, errors.New("count must be at least 1")
	}
	if capacity < 1 {
		capacity = 4
	}

	last, err := s.Repo.MaxNumber()
	if err != nil {
		return nil, err
	}

	created := make([]entity.Table, 0, count)
	err = s.DB.Transaction(func(tx *gorm.DB) error {
		for i := 1; i <= count; i++ {
			t := entity.Table{
				Number:   last + i,
				Capacity: capacity,
				Status:   entity.TableAvailable,
			}
			if err := s.Repo.Create(tx, &t); err != nil {
				return err
			}
			created = append(created, t)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return created, nil
}
