package handler

import (
	"strconv"
	"time"

	"github.com/AveQY/ddhj/internal/service"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

const dateLayout = "2006-01-02"

type StatisticsHandler struct {
	statistics *service.StatisticsService
}

func NewStatisticsHandler(statistics *service.StatisticsService) *StatisticsHandler {
	return &StatisticsHandler{statistics: statistics}
}

// Revenue charts paid revenue around a date: per hour of the day, per day
// of its month, or per month of its year. An unknown mode charts nothing.
func (h *StatisticsHandler) Revenue(c *gin.Context) {
	date, err := time.ParseInLocation(dateLayout, c.Query("date"), time.Local)
	if err != nil {
		Fail(c, "参数错误")
		return
	}
	buckets, err := h.statistics.RevenueStatistics(date, c.DefaultQuery("mode", "hour"))
	if err != nil {
		zap.L().Error("revenue statistics failed", zap.Error(err))
		Fail(c, "获取营收统计失败")
		return
	}
	if buckets == nil {
		Success(c, gin.H{})
		return
	}
	Success(c, buckets)
}

func (h *StatisticsHandler) DayRevenue(c *gin.Context) {
	date := queryDate(c, "date")
	total, err := h.statistics.DayTotalRevenue(date)
	if err != nil {
		zap.L().Error("day revenue failed", zap.Error(err))
		Fail(c, "获取营收统计失败")
		return
	}
	Success(c, total)
}

func (h *StatisticsHandler) HotProducts(c *gin.Context) {
	start := queryDate(c, "startDate")
	end := queryDate(c, "endDate")
	limit, err := strconv.Atoi(c.DefaultQuery("limit", "10"))
	if err != nil || limit <= 0 {
		limit = 10
	}
	products, err := h.statistics.HotProducts(start, end, limit)
	if err != nil {
		zap.L().Error("hot products failed", zap.Error(err))
		Fail(c, "获取热销商品失败")
		return
	}
	Success(c, products)
}

// queryDate reads a yyyy-MM-dd query parameter, defaulting to today.
func queryDate(c *gin.Context, name string) time.Time {
	if value := c.Query(name); value != "" {
		if t, err := time.ParseInLocation(dateLayout, value, time.Local); err == nil {
			return t
		}
	}
	return time.Now()
}
