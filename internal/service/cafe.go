// File: internal/service/cafe.go
package service

import (
	"context"
	"errors"

	"cafe-map/internal/database"
	"cafe-map/internal/geocode"
	"cafe-map/internal/logging"
	"cafe-map/internal/metrics"
	"cafe-map/internal/model"
	"cafe-map/internal/store"
)

var (
	listCafes   = store.ListCafes
	getCafeByID = store.GetCafeByID
	createCafe  = store.CreateCafe
	updateCafe  = store.UpdateCafe
	deleteCafe  = store.DeleteCafe
)

// CreateCafeInput 新增咖啡廳的欄位；座標由前端 (地圖點擊) 直接提供
type CreateCafeInput struct {
	Title         string
	Description   *string
	Address       string
	Latitude      *float64
	Longitude     *float64
	Category      *string
	ImageURL      *string
	GoogleMapsURL *string
}

// UpdateCafeInput 可編輯欄位；經緯度只會因地址變更而由地理編碼改寫
type UpdateCafeInput struct {
	Title       string
	Description *string
	Address     string
}

// CafeService 處理咖啡廳的新增、修改、刪除與擁有者檢查
type CafeService struct {
	db       database.DB
	geocoder geocode.Geocoder
}

func NewCafeService(db database.DB, geocoder geocode.Geocoder) *CafeService {
	return &CafeService{db: db, geocoder: geocoder}
}

// IsOwner 只有建立者可以修改或刪除
func IsOwner(userID int, cafe *model.Cafe) bool {
	return cafe != nil && userID != 0 && cafe.AuthorID == userID
}

func (s *CafeService) List(ctx context.Context) ([]model.Cafe, error) {
	return listCafes(ctx, s.db)
}

func (s *CafeService) Create(ctx context.Context, ownerID int, in CreateCafeInput) (*model.Cafe, error) {
	if in.Title == "" || in.Address == "" ||
		in.Latitude == nil || in.Longitude == nil {
		return nil, ErrValidation
	}

	return createCafe(ctx, s.db, &model.Cafe{
		Title:         in.Title,
		Description:   emptyToNil(in.Description),
		Address:       in.Address,
		Latitude:      *in.Latitude,
		Longitude:     *in.Longitude,
		Category:      emptyToNil(in.Category),
		ImageURL:      emptyToNil(in.ImageURL),
		GoogleMapsURL: emptyToNil(in.GoogleMapsURL),
		AuthorID:      ownerID,
	})
}

// Update 修改咖啡廳。擁有者檢查先於任何寫入與外部呼叫；地址字串不同時才呼叫地理編碼，
// 地理編碼失敗時保留原經緯度但仍寫入新地址。
func (s *CafeService) Update(ctx context.Context, requesterID, cafeID int, in UpdateCafeInput) (*model.Cafe, error) {
	if in.Title == "" || in.Address == "" {
		return nil, ErrValidation
	}

	cafe, err := s.authorize(ctx, requesterID, cafeID)
	if err != nil {
		return nil, err
	}

	if cafe.Address != in.Address {
		if loc, ok := s.lookup(ctx, cafe.ID, in.Address); ok {
			cafe.Latitude = loc.Lat
			cafe.Longitude = loc.Lng
		}
	}

	cafe.Title = in.Title
	cafe.Description = emptyToNil(in.Description)
	cafe.Address = in.Address

	updated, err := updateCafe(ctx, s.db, cafe)
	if errors.Is(err, store.ErrNotFound) {
		return nil, ErrNotFound
	}
	return updated, err
}

func (s *CafeService) Delete(ctx context.Context, requesterID, cafeID int) error {
	if _, err := s.authorize(ctx, requesterID, cafeID); err != nil {
		return err
	}
	err := deleteCafe(ctx, s.db, cafeID)
	if errors.Is(err, store.ErrNotFound) {
		return ErrNotFound
	}
	return err
}

// authorize 讀取咖啡廳並確認 requester 為擁有者
func (s *CafeService) authorize(ctx context.Context, requesterID, cafeID int) (*model.Cafe, error) {
	cafe, err := getCafeByID(ctx, s.db, cafeID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	if !IsOwner(requesterID, cafe) {
		return nil, ErrForbidden
	}
	return cafe, nil
}

// lookup 呼叫地理編碼；任何失敗只記錄，不中斷更新
func (s *CafeService) lookup(ctx context.Context, cafeID int, address string) (geocode.Location, bool) {
	if s.geocoder == nil {
		return geocode.Location{}, false
	}

	loc, err := s.geocoder.Geocode(ctx, address)
	if err == nil {
		metrics.GeocodeLookups.WithLabelValues(metrics.GeocodeOK).Inc()
		logging.Info().Int("cafe_id", cafeID).Float64("lat", loc.Lat).Float64("lng", loc.Lng).Msg("geocode succeeded")
		return loc, true
	}

	outcome := metrics.GeocodeFailed
	switch {
	case geocode.IsRejected(err):
		outcome = metrics.GeocodeRejected
	case errors.Is(err, geocode.ErrNoResults):
		outcome = metrics.GeocodeNoResults
	}
	metrics.GeocodeLookups.WithLabelValues(outcome).Inc()
	logging.Warn().Err(err).Int("cafe_id", cafeID).Str("address", address).
		Msg("geocode failed, keeping previous coordinates")
	return geocode.Location{}, false
}

func emptyToNil(s *string) *string {
	if s == nil || *s == "" {
		return nil
	}
	return s
}
