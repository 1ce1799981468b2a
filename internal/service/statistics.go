package service

import (
	"errors"
	"fmt"
	"sort"
	"time"

	"github.com/AveQY/ddhj/internal/models"
	"gorm.io/gorm"
)

// RevenueBucket is one point of a revenue chart.
type RevenueBucket struct {
	Time    string  `json:"time"`
	Revenue float64 `json:"revenue"`
}

// HotProduct is one row of the hot-products ranking: product metadata
// plus the quantity sold over the queried range.
type HotProduct struct {
	ProductID   int64             `json:"productId"`
	ProductName string            `json:"productName"`
	CategoryID  int64             `json:"categoryId"`
	Images      models.StringList `json:"images"`
	SellPrice   float64           `json:"sellPrice"`
	Sales       int               `json:"sales"`
}

type StatisticsService struct {
	db *gorm.DB
}

func NewStatisticsService(db *gorm.DB) *StatisticsService {
	return &StatisticsService{db: db}
}

// RevenueStatistics buckets paid revenue around the given date. Mode
// "hour" yields the 24 hours of that day, "day" every day of its month,
// "month" the 12 months of its year. Any other mode yields no buckets.
func (s *StatisticsService) RevenueStatistics(date time.Time, mode string) ([]RevenueBucket, error) {
	var buckets []RevenueBucket
	switch mode {
	case "hour":
		day := time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, time.Local)
		for h := 0; h < 24; h++ {
			start := day.Add(time.Duration(h) * time.Hour)
			end := start.Add(time.Hour - time.Second)
			revenue, err := s.revenueBetween(start, end)
			if err != nil {
				return nil, err
			}
			buckets = append(buckets, RevenueBucket{Time: fmt.Sprintf("%d:00", h), Revenue: revenue})
		}
	case "day":
		first := time.Date(date.Year(), date.Month(), 1, 0, 0, 0, 0, time.Local)
		days := first.AddDate(0, 1, -1).Day()
		for d := 1; d <= days; d++ {
			start := time.Date(date.Year(), date.Month(), d, 0, 0, 0, 0, time.Local)
			end := start.AddDate(0, 0, 1).Add(-time.Second)
			revenue, err := s.revenueBetween(start, end)
			if err != nil {
				return nil, err
			}
			buckets = append(buckets, RevenueBucket{Time: fmt.Sprintf("%d日", d), Revenue: revenue})
		}
	case "month":
		for m := 1; m <= 12; m++ {
			start := time.Date(date.Year(), time.Month(m), 1, 0, 0, 0, 0, time.Local)
			end := start.AddDate(0, 1, 0).Add(-time.Second)
			revenue, err := s.revenueBetween(start, end)
			if err != nil {
				return nil, err
			}
			buckets = append(buckets, RevenueBucket{Time: fmt.Sprintf("%d月", m), Revenue: revenue})
		}
	}
	return buckets, nil
}

// DayTotalRevenue sums the paid amount of every order placed on the given
// day.
func (s *StatisticsService) DayTotalRevenue(date time.Time) (float64, error) {
	start := time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, time.Local)
	return s.revenueBetween(start, start.AddDate(0, 0, 1).Add(-time.Second))
}

func (s *StatisticsService) revenueBetween(start, end time.Time) (float64, error) {
	var revenue float64
	err := s.db.Model(&models.Order{}).
		Select("COALESCE(SUM(paid_amount), 0)").
		Where("order_date BETWEEN ? AND ?", start, end).
		Scan(&revenue).Error
	return revenue, err
}

// HotProducts ranks products by quantity sold between the two dates
// (inclusive, whole days) and returns the top limit rows. Line items that
// reference products that have since been deleted are dropped from the
// result; ties rank the lower product id first so the output is stable.
func (s *StatisticsService) HotProducts(startDate, endDate time.Time, limit int) ([]HotProduct, error) {
	if limit <= 0 {
		limit = 10
	}
	start := time.Date(startDate.Year(), startDate.Month(), startDate.Day(), 0, 0, 0, 0, time.Local)
	end := time.Date(endDate.Year(), endDate.Month(), endDate.Day(), 23, 59, 59, 0, time.Local)

	var orders []models.Order
	err := s.db.Where("order_date BETWEEN ? AND ?", start, end).Find(&orders).Error
	if err != nil {
		return nil, err
	}

	sales := make(map[int64]int)
	for _, order := range orders {
		for _, item := range order.Items.List {
			sales[item.ProductID] += item.Quantity
		}
	}

	ids := make([]int64, 0, len(sales))
	for id := range sales {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	sort.SliceStable(ids, func(i, j int) bool { return sales[ids[i]] > sales[ids[j]] })

	result := make([]HotProduct, 0, limit)
	for _, id := range ids {
		if len(result) >= limit {
			break
		}
		var product models.Product
		err := s.db.First(&product, id).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			continue
		}
		if err != nil {
			return nil, err
		}
		result = append(result, HotProduct{
			ProductID:   product.ID,
			ProductName: product.Name,
			CategoryID:  product.CategoryID,
			Images:      product.Images,
			SellPrice:   product.SellPrice,
			Sales:       sales[id],
		})
	}
	return result, nil
}
