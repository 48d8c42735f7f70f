package repository

import (
	"context"
	"encoding/json"
	"errors"
	"log"
	"time"

	"avercms/internal/models"

	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

const cacheExpiration = 30 * time.Minute

// IsNotFound reports whether err means "no such row", so controllers
// can map it to 404 instead of 500.
func IsNotFound(err error) bool {
	return errors.Is(err, gorm.ErrRecordNotFound)
}

// Sluggable is implemented by every content entity so the repository
// can maintain per-slug cache entries.
type Sluggable interface {
	GetSlug() string
}

// ContentRepository is the storage contract shared by blogs, projects,
// services and glossary terms. FindAllActive and FindActiveBySlug feed
// the public read path and filter on is_active; FindByID does not, so
// the admin update path can reach soft-deleted rows.
type ContentRepository[T Sluggable] interface {
	Create(item *T) error
	FindAllActive() ([]T, error)
	FindActiveBySlug(slug string) (*T, error)
	FindByID(id uint) (*T, error)
	Save(item *T) error
	SlugExists(slug string, excludeID uint) (bool, error)
}

type contentRepository[T Sluggable] struct {
	db          *gorm.DB
	redis       *redis.Client
	ctx         context.Context
	cachePrefix string
	listOrder   string
	listOmit    []string
}

func newContentRepository[T Sluggable](db *gorm.DB, redisClient *redis.Client, prefix, listOrder string, listOmit ...string) ContentRepository[T] {
	return &contentRepository[T]{
		db:          db,
		redis:       redisClient,
		ctx:         context.Background(),
		cachePrefix: prefix,
		listOrder:   listOrder,
		listOmit:    listOmit,
	}
}

// Uncached constructors, one per entity. Blogs and projects list by
// their display date, services by creation time, glossary terms
// alphabetically.

func NewBlogRepository(db *gorm.DB) ContentRepository[models.Blog] {
	return newContentRepository[models.Blog](db, nil, "blog", "date DESC", "content_blocks")
}

func NewProjectRepository(db *gorm.DB) ContentRepository[models.Project] {
	return newContentRepository[models.Project](db, nil, "project", "date DESC", "content_blocks")
}

func NewServiceRepository(db *gorm.DB) ContentRepository[models.Service] {
	return newContentRepository[models.Service](db, nil, "service", "created_at DESC", "content_blocks")
}

func NewGlossaryRepository(db *gorm.DB) ContentRepository[models.GlossaryTerm] {
	return newContentRepository[models.GlossaryTerm](db, nil, "glossary", "title ASC")
}

// Cached constructors wrap the same queries with a Redis read-through
// cache for the public list and slug lookups.

func NewCachedBlogRepository(db *gorm.DB, redisClient *redis.Client) ContentRepository[models.Blog] {
	return newContentRepository[models.Blog](db, redisClient, "blog", "date DESC", "content_blocks")
}

func NewCachedProjectRepository(db *gorm.DB, redisClient *redis.Client) ContentRepository[models.Project] {
	return newContentRepository[models.Project](db, redisClient, "project", "date DESC", "content_blocks")
}

func NewCachedServiceRepository(db *gorm.DB, redisClient *redis.Client) ContentRepository[models.Service] {
	return newContentRepository[models.Service](db, redisClient, "service", "created_at DESC", "content_blocks")
}

func NewCachedGlossaryRepository(db *gorm.DB, redisClient *redis.Client) ContentRepository[models.GlossaryTerm] {
	return newContentRepository[models.GlossaryTerm](db, redisClient, "glossary", "title ASC")
}

func (r *contentRepository[T]) listCacheKey() string {
	return r.cachePrefix + ":all"
}

func (r *contentRepository[T]) slugCacheKey(slug string) string {
	return r.cachePrefix + ":slug:" + slug
}

func (r *contentRepository[T]) Create(item *T) error {
	if err := r.db.Create(item).Error; err != nil {
		log.Printf("Error creating %s: %v", r.cachePrefix, err)
		return err
	}
	r.invalidate()
	return nil
}

func (r *contentRepository[T]) FindAllActive() ([]T, error) {
	if r.redis != nil {
		cached, err := r.redis.Get(r.ctx, r.listCacheKey()).Result()
		if err == nil {
			var items []T
			if err := json.Unmarshal([]byte(cached), &items); err == nil {
				return items, nil
			}
		}
	}

	var items []T
	query := r.db.Where("is_active = ?", true).Order(r.listOrder)
	if len(r.listOmit) > 0 {
		query = query.Omit(r.listOmit...)
	}
	if err := query.Find(&items).Error; err != nil {
		return nil, err
	}

	if r.redis != nil {
		if data, err := json.Marshal(items); err == nil {
			if err := r.redis.Set(r.ctx, r.listCacheKey(), data, cacheExpiration).Err(); err != nil {
				log.Printf("Failed to cache %s list: %v", r.cachePrefix, err)
			}
		}
	}

	return items, nil
}

func (r *contentRepository[T]) FindActiveBySlug(slug string) (*T, error) {
	if r.redis != nil {
		cached, err := r.redis.Get(r.ctx, r.slugCacheKey(slug)).Result()
		if err == nil {
			var item T
			if err := json.Unmarshal([]byte(cached), &item); err == nil {
				return &item, nil
			}
		}
	}

	var item T
	if err := r.db.Where("slug = ? AND is_active = ?", slug, true).First(&item).Error; err != nil {
		return nil, err
	}

	if r.redis != nil {
		if data, err := json.Marshal(item); err == nil {
			if err := r.redis.Set(r.ctx, r.slugCacheKey(slug), data, cacheExpiration).Err(); err != nil {
				log.Printf("Failed to cache %s %q: %v", r.cachePrefix, slug, err)
			}
		}
	}

	return &item, nil
}

func (r *contentRepository[T]) FindByID(id uint) (*T, error) {
	var item T
	if err := r.db.First(&item, id).Error; err != nil {
		return nil, err
	}
	return &item, nil
}

func (r *contentRepository[T]) Save(item *T) error {
	if err := r.db.Save(item).Error; err != nil {
		return err
	}
	r.invalidate()
	return nil
}

func (r *contentRepository[T]) SlugExists(slug string, excludeID uint) (bool, error) {
	var count int64
	query := r.db.Model(new(T)).Where("slug = ?", slug)
	if excludeID != 0 {
		query = query.Where("id <> ?", excludeID)
	}
	if err := query.Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

// invalidate drops the list entry and every slug entry. Slug keys are
// cleared by pattern because an update may have changed the slug and
// the old key would otherwise keep serving the stale document.
func (r *contentRepository[T]) invalidate() {
	if r.redis == nil {
		return
	}
	if err := r.redis.Del(r.ctx, r.listCacheKey()).Err(); err != nil {
		log.Printf("Failed to invalidate %s list cache: %v", r.cachePrefix, err)
	}
	keys, err := r.redis.Keys(r.ctx, r.slugCacheKey("*")).Result()
	if err != nil || len(keys) == 0 {
		return
	}
	if err := r.redis.Del(r.ctx, keys...).Err(); err != nil {
		log.Printf("Failed to invalidate %s slug cache: %v", r.cachePrefix, err)
	}
}
