package repository

import (
	"log"

	"avercms/internal/models"

	"gorm.io/gorm"
)

// SingletonRepository backs the header and footer documents. The row
// with is_active = true is "the" document; FindActive returns
// gorm.ErrRecordNotFound until the controller lazily creates it.
type SingletonRepository[T any] interface {
	FindActive() (*T, error)
	Create(item *T) error
	Save(item *T) error
}

type singletonRepository[T any] struct {
	db   *gorm.DB
	name string
}

func NewHeaderRepository(db *gorm.DB) SingletonRepository[models.Header] {
	return &singletonRepository[models.Header]{db: db, name: "header"}
}

func NewFooterRepository(db *gorm.DB) SingletonRepository[models.Footer] {
	return &singletonRepository[models.Footer]{db: db, name: "footer"}
}

func (r *singletonRepository[T]) FindActive() (*T, error) {
	var item T
	if err := r.db.Where("is_active = ?", true).First(&item).Error; err != nil {
		return nil, err
	}
	return &item, nil
}

func (r *singletonRepository[T]) Create(item *T) error {
	if err := r.db.Create(item).Error; err != nil {
		log.Printf("Error creating %s: %v", r.name, err)
		return err
	}
	return nil
}

func (r *singletonRepository[T]) Save(item *T) error {
	return r.db.Save(item).Error
}
