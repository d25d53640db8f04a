package pagination

import (
	"strconv"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

const (
	DefaultPage = 1
	DefaultSize = 20
	MaxSize     = 100

	HeaderTotalCount = "X-Total-Count"
	HeaderTotalPages = "X-Total-Pages"
)

// Query holds parsed pagination parameters.
type Query struct {
	Page int
	Size int
}

// Meta describes the page that was returned.
type Meta struct {
	Total      int64
	Page       int
	Size       int
	TotalPages int
}

// FromContext parses page/size from the query string. ok is false when the
// caller asked for neither, meaning the full list.
func FromContext(c *gin.Context) (q Query, ok bool) {
	rawPage, hasPage := c.GetQuery("page")
	rawSize, hasSize := c.GetQuery("size")
	if !hasPage && !hasSize {
		return Query{}, false
	}

	page := parseIntOr(rawPage, DefaultPage)
	size := parseIntOr(rawSize, DefaultSize)
	if page < 1 {
		page = DefaultPage
	}
	if size < 1 {
		size = DefaultSize
	}
	if size > MaxSize {
		size = MaxSize
	}
	return Query{Page: page, Size: size}, true
}

// Paginate counts the rows matched by db, then loads one page in the given order.
func Paginate[T any](db *gorm.DB, order string, q Query, dest *[]T) (Meta, error) {
	var total int64
	if err := db.Session(&gorm.Session{}).Count(&total).Error; err != nil {
		return Meta{}, err
	}

	offset := (q.Page - 1) * q.Size
	err := db.Session(&gorm.Session{}).
		Order(order).
		Offset(offset).
		Limit(q.Size).
		Find(dest).Error
	if err != nil {
		return Meta{}, err
	}

	return Meta{
		Total:      total,
		Page:       q.Page,
		Size:       q.Size,
		TotalPages: int((total + int64(q.Size) - 1) / int64(q.Size)),
	}, nil
}

// SetHeaders exposes the totals so list bodies can stay bare arrays.
func (m Meta) SetHeaders(c *gin.Context) {
	c.Header(HeaderTotalCount, strconv.FormatInt(m.Total, 10))
	c.Header(HeaderTotalPages, strconv.Itoa(m.TotalPages))
}

func parseIntOr(s string, def int) int {
	v, err := strconv.Atoi(s)
	if err != nil {
		return def
	}
	return v
}
