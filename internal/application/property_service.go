package application

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"strings"
	"time"

	"cloud.google.com/go/storage"
	"github.com/elastic/go-elasticsearch/v8"
	"github.com/elastic/go-elasticsearch/v8/esapi"
	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"

	"github.com/homelyhq/homely-backend/internal/domain/entity"
	"github.com/homelyhq/homely-backend/internal/domain/repository"
	"github.com/homelyhq/homely-backend/internal/infrastructure/postgres"
	"github.com/homelyhq/homely-backend/pkg/helpers"
)

const listCacheKey = "properties:list"

type PropertyService struct {
	Props     repository.PropertyRepository
	Likes     repository.LikeRepository
	Redis     *redis.Client
	ListTTL   time.Duration
	ES        *elasticsearch.Client
	ESIndex   string
	GCS       *storage.Client
	GCSBucket string
	Logger    *logrus.Logger
}

func NewPropertyService(props repository.PropertyRepository, likes repository.LikeRepository,
	rdb *redis.Client, listTTL time.Duration, es *elasticsearch.Client, esIndex string,
	gcs *storage.Client, gcsBucket string, logger *logrus.Logger) *PropertyService {
	return &PropertyService{
		Props:     props,
		Likes:     likes,
		Redis:     rdb,
		ListTTL:   listTTL,
		ES:        es,
		ESIndex:   esIndex,
		GCS:       gcs,
		GCSBucket: gcsBucket,
		Logger:    logger,
	}
}

type CreatePropertyInput struct {
	Title       string
	Description *string
	Price       *float64
	Location    *string
	Image       *string
	Address     *string
}

func (s *PropertyService) Create(ctx context.Context, in CreatePropertyInput) (*entity.Property, error) {
	if strings.TrimSpace(in.Title) == "" {
		return nil, ErrInvalidInput
	}
	p := &entity.Property{
		Title:       in.Title,
		Description: in.Description,
		Price:       in.Price,
		Location:    in.Location,
		Image:       in.Image,
		Address:     in.Address,
	}
	if err := s.Props.Create(ctx, p); err != nil {
		return nil, err
	}

	if s.Redis != nil {
		if err := helpers.RedisDel(ctx, s.Redis, listCacheKey); err != nil && s.Logger != nil {
			s.Logger.WithError(err).Warn("list cache invalidation failed")
		}
	}
	s.indexProperty(ctx, p)
	return p, nil
}

func (s *PropertyService) Get(ctx context.Context, id int64) (*entity.Property, error) {
	p, err := s.Props.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, postgres.ErrNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return p, nil
}

func (s *PropertyService) List(ctx context.Context) ([]entity.Property, error) {
	if s.Redis != nil {
		var cached []entity.Property
		if ok, err := helpers.RedisGetJSON(ctx, s.Redis, listCacheKey, &cached); err == nil && ok {
			return cached, nil
		}
	}

	props, err := s.Props.List(ctx)
	if err != nil {
		return nil, err
	}

	if s.Redis != nil && s.ListTTL > 0 {
		if err := helpers.RedisSetJSON(ctx, s.Redis, listCacheKey, props, s.ListTTL); err != nil && s.Logger != nil {
			s.Logger.WithError(err).Warn("list cache write failed")
		}
	}
	return props, nil
}

// ToggleLike flips or initializes the like state for a (property, user)
// pair. The first toggle always results in liked=true; every toggle after
// that negates the stored value. Unliking never removes the row.
func (s *PropertyService) ToggleLike(ctx context.Context, propertyID, userID int64) (*entity.PropertyLike, error) {
	if propertyID <= 0 || userID <= 0 {
		return nil, ErrInvalidInput
	}
	like, err := s.Likes.Toggle(ctx, propertyID, userID)
	if err != nil {
		if errors.Is(err, postgres.ErrNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return like, nil
}

// UploadImage stores a listing image in GCS and returns its public URL.
func (s *PropertyService) UploadImage(ctx context.Context, r io.Reader, filename, contentType string) (string, error) {
	if s.GCS == nil || s.GCSBucket == "" {
		return "", errors.New("gcs not configured")
	}
	id := uuid.NewString()
	ext := strings.ToLower(filepath.Ext(filename))
	objectPath := filepath.ToSlash(filepath.Join("listings", id+ext))
	return helpers.UploadObject(ctx, s.GCS, s.GCSBucket, objectPath, contentType, r)
}

func (s *PropertyService) indexProperty(ctx context.Context, p *entity.Property) {
	if s.ES == nil || s.ESIndex == "" {
		return
	}
	doc := map[string]any{
		"id":          p.ID,
		"title":       p.Title,
		"description": p.Description,
		"price":       p.Price,
		"location":    p.Location,
		"address":     p.Address,
		"created_at":  p.CreatedAt.Format(time.RFC3339Nano),
	}
	b, _ := json.Marshal(doc)
	req := esapi.IndexRequest{
		Index:      s.ESIndex,
		DocumentID: fmt.Sprintf("%d", p.ID),
		Body:       strings.NewReader(string(b)),
		Refresh:    "false",
	}
	c, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()
	res, err := req.Do(c, s.ES)
	if err != nil {
		if s.Logger != nil {
			s.Logger.WithError(err).WithField("property_id", p.ID).Warn("es index failed")
		}
		return
	}
	defer func() { _ = res.Body.Close() }()
	if res.IsError() && s.Logger != nil {
		s.Logger.WithField("status", res.Status()).WithField("property_id", p.ID).Warn("es index response error")
	}
}

// Search performs a multi_match query over title, description and location.
// Without Elasticsearch configured it degrades to an empty result set.
func (s *PropertyService) Search(ctx context.Context, q string, size int) ([]map[string]any, error) {
	if s.ES == nil || s.ESIndex == "" {
		return []map[string]any{}, nil
	}
	if size <= 0 || size > 50 {
		size = 10
	}
	query := map[string]any{
		"query": map[string]any{
			"multi_match": map[string]any{
				"query":  q,
				"fields": []string{"title^2", "description", "location"},
			},
		},
		"size": size,
	}
	b, _ := json.Marshal(query)

	c, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()

	res, err := s.ES.Search(
		s.ES.Search.WithContext(c),
		s.ES.Search.WithIndex(s.ESIndex),
		s.ES.Search.WithBody(strings.NewReader(string(b))),
	)
	if err != nil {
		return nil, err
	}
	defer func() { _ = res.Body.Close() }()

	var parsed struct {
		Hits struct {
			Hits []struct {
				ID     string         `json:"_id"`
				Source map[string]any `json:"_source"`
			} `json:"hits"`
		} `json:"hits"`
	}
	if err := json.NewDecoder(res.Body).Decode(&parsed); err != nil {
		return nil, err
	}

	out := make([]map[string]any, 0, len(parsed.Hits.Hits))
	for _, h := range parsed.Hits.Hits {
		out = append(out, h.Source)
	}
	return out, nil
}
