package domain

import (
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
)

const (
	DefaultLimit = 20
	MaxLimit     = 100
)

type FilterEvents struct {
	Query       string    `query:"q"`
	Category    string    `query:"category"`
	OrganizerID uuid.UUID `query:"organizer_id"`
	Status      Status    `query:"status"`
	From        time.Time `query:"from"`
	To          time.Time `query:"to"`
	Page        uint      `query:"page"`
	Limit       uint      `query:"limit"`
}

// Normalize trims the text fields and clamps paging.
func (f FilterEvents) Normalize() FilterEvents {
	f.Query = strings.ToLower(strings.TrimSpace(f.Query))
	f.Category = strings.ToLower(strings.TrimSpace(f.Category))
	if f.Page == 0 {
		f.Page = 1
	}
	if f.Limit == 0 {
		f.Limit = DefaultLimit
	}
	if f.Limit > MaxLimit {
		f.Limit = MaxLimit
	}
	return f
}

func (f FilterEvents) Skip() int64 {
	return int64((f.Page - 1) * f.Limit)
}

// CacheKey identifies a normalized filter. Equal filters give equal keys.
func (f FilterEvents) CacheKey() string {
	f = f.Normalize()

	v := url.Values{}
	if f.Query != "" {
		v.Set("q", f.Query)
	}
	if f.Category != "" {
		v.Set("category", f.Category)
	}
	if f.Status != "" {
		v.Set("status", f.Status.String())
	}
	if f.OrganizerID != uuid.Nil {
		v.Set("organizer_id", f.OrganizerID.String())
	}
	if !f.From.IsZero() {
		v.Set("from", f.From.UTC().Format(time.RFC3339))
	}
	if !f.To.IsZero() {
		v.Set("to", f.To.UTC().Format(time.RFC3339))
	}
	v.Set("page", strconv.FormatUint(uint64(f.Page), 10))
	v.Set("limit", strconv.FormatUint(uint64(f.Limit), 10))

	// Encode sorts by key.
	return CacheKeyEventListPrefix + v.Encode()
}
