package notice

import (
	"context"
	"strings"
	"time"

	"NoticeBoard/internal/config"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"
)

// List defaults applied when page/limit are missing or not positive.
const (
	DefaultPage  = 1
	DefaultLimit = 20
)

// NoticeService implements the notice operations: validated create and
// update, lookup, status overwrite, and the filtered paginated list.
type NoticeService struct {
	repo   NoticeRepository
	meta   *config.Meta
	logger *zap.Logger
}

// NewNoticeService creates a new NoticeService.
func NewNoticeService(repo NoticeRepository, meta *config.Meta, logger *zap.Logger) *NoticeService {
	return &NoticeService{repo: repo, meta: meta, logger: logger}
}

// ListQuery carries the recognized list parameters. Status takes
// precedence over the Active shorthand.
type ListQuery struct {
	Status     string
	Active     bool
	Search     string
	Date       string
	Department string
	Page       int
	Limit      int
}

// ListResult is the paginated list envelope. Total counts every matching
// record, ignoring skip/limit.
type ListResult struct {
	Items      []*Notice `json:"items"`
	Page       int       `json:"page"`
	Limit      int       `json:"limit"`
	Total      int64     `json:"total"`
	TotalPages int64     `json:"totalPages"`
}

// Create validates the payload, stamps id, default status and timestamps,
// and persists the notice.
func (s *NoticeService) Create(ctx context.Context, p *Payload) (*Notice, error) {
	n, err := validatePayload(p, s.meta)
	if err != nil {
		return nil, err
	}

	if n.Status == "" {
		n.Status = StatusPublished
	}
	now := time.Now().UTC()
	n.ID = primitive.NewObjectID()
	n.CreatedAt = now
	n.UpdatedAt = now

	if err := s.repo.Insert(ctx, n); err != nil {
		return nil, err
	}
	s.logger.Info("notice created",
		zap.String("id", n.ID.Hex()),
		zap.String("status", n.Status),
		zap.String("targetAudience", n.TargetAudience))
	return n, nil
}

// Get returns the notice for id. A malformed id is treated the same as an
// unknown one.
func (s *NoticeService) Get(ctx context.Context, id string) (*Notice, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, ErrNotFound
	}
	return s.repo.FindByID(ctx, oid)
}

// Update replaces the mutable fields of an existing notice after running
// the same validation as Create. The record id and creation time are kept;
// an absent status keeps the stored one.
func (s *NoticeService) Update(ctx context.Context, id string, p *Payload) (*Notice, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, ErrNotFound
	}
	existing, err := s.repo.FindByID(ctx, oid)
	if err != nil {
		return nil, err
	}

	n, err := validatePayload(p, s.meta)
	if err != nil {
		return nil, err
	}

	n.ID = existing.ID
	n.CreatedAt = existing.CreatedAt
	if n.Status == "" {
		n.Status = existing.Status
	}
	n.UpdatedAt = time.Now().UTC()

	if err := s.repo.Replace(ctx, n); err != nil {
		return nil, err
	}
	s.logger.Info("notice updated", zap.String("id", n.ID.Hex()))
	return n, nil
}

// SetStatus overwrites only the status of a notice. Any transition between
// the three statuses is legal, including a self-transition.
func (s *NoticeService) SetStatus(ctx context.Context, id, status string) (*Notice, error) {
	status = strings.TrimSpace(status)
	vErr := &ValidationError{}
	if status == "" {
		vErr.add("status", "status is required")
		return nil, vErr
	}
	if !IsValidStatus(status) {
		vErr.add("status", "must be one of Draft, Published, Unpublished")
		return nil, vErr
	}

	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, ErrNotFound
	}
	n, err := s.repo.UpdateStatus(ctx, oid, status, time.Now().UTC())
	if err != nil {
		return nil, err
	}
	s.logger.Info("notice status changed",
		zap.String("id", n.ID.Hex()),
		zap.String("status", status))
	return n, nil
}

// List returns one page of notices. The status filter (or the active
// shorthand) is pushed down to the store; the derived filters are applied
// in memory before pagination so that total reflects the filtered set.
func (s *NoticeService) List(ctx context.Context, q ListQuery) (*ListResult, error) {
	page := q.Page
	if page < 1 {
		page = DefaultPage
	}
	limit := q.Limit
	if limit < 1 {
		limit = DefaultLimit
	}

	filter := ListFilter{}
	if status := strings.TrimSpace(q.Status); status != "" {
		filter.Status = status
	} else if q.Active {
		filter.Status = StatusPublished
	}

	derived, err := NewPageFilter(q.Search, q.Date, q.Department)
	if err != nil {
		return nil, err
	}

	var items []*Notice
	var total int64
	if derived.Empty() {
		skip := int64(page-1) * int64(limit)
		items, err = s.repo.FindPage(ctx, filter, skip, int64(limit))
		if err != nil {
			return nil, err
		}
		total, err = s.repo.Count(ctx, filter)
		if err != nil {
			return nil, err
		}
	} else {
		all, err := s.repo.FindAll(ctx, filter)
		if err != nil {
			return nil, err
		}
		matched := derived.Apply(all)
		total = int64(len(matched))
		items = PageSlice(matched, page, limit)
	}

	return &ListResult{
		Items:      items,
		Page:       page,
		Limit:      limit,
		Total:      total,
		TotalPages: TotalPages(total, limit),
	}, nil
}
