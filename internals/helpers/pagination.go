package helper

import (
	"strconv"
	"strings"

	"github.com/gofiber/fiber/v2"
)

const (
	DefaultPage = 1
)

type Options struct {
	DefaultPerPage int
	MaxPerPage     int
}

// ===== Preset =====
var (
	DefaultOpts = Options{DefaultPerPage: 25, MaxPerPage: 200}
)

type Params struct {
	Page    int
	PerPage int
}

func atoiDefault(s string, def int) int {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return def
	}
	return n
}

func firstNonEmpty(a, b string) string {
	if strings.TrimSpace(a) != "" {
		return a
	}
	return b
}

// ParsePage reads ?page and ?per_page (alias ?limit). ok is false when neither is present:
// the caller then lists every row.
func ParsePage(c *fiber.Ctx, opt Options) (Params, bool) {
	pageRaw := c.Query("page")
	perRaw := firstNonEmpty(c.Query("per_page"), c.Query("limit"))
	if strings.TrimSpace(pageRaw) == "" && strings.TrimSpace(perRaw) == "" {
		return Params{}, false
	}

	page := atoiDefault(pageRaw, DefaultPage)
	if page < 1 {
		page = DefaultPage
	}
	per := atoiDefault(perRaw, opt.DefaultPerPage)
	if per < 1 {
		per = opt.DefaultPerPage
	}
	if per > opt.MaxPerPage {
		per = opt.MaxPerPage
	}
	return Params{Page: page, PerPage: per}, true
}

// Limit & Offset
func (p Params) Limit() int  { return p.PerPage }
func (p Params) Offset() int { return (p.Page - 1) * p.PerPage }

// SetPageHeaders exposes the totals of a paged list; the body stays a plain array.
func SetPageHeaders(c *fiber.Ctx, total int64, p Params) {
	pages := 0
	if total > 0 {
		pages = int((total + int64(p.PerPage) - 1) / int64(p.PerPage))
	}
	c.Set("X-Total-Count", strconv.FormatInt(total, 10))
	c.Set("X-Page", strconv.Itoa(p.Page))
	c.Set("X-Per-Page", strconv.Itoa(p.PerPage))
	c.Set("X-Total-Pages", strconv.Itoa(pages))
}
