package services

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/mongo"

	"campus-board/config"
	"campus-board/dto"
	"campus-board/internal/logger"
	"campus-board/iteminfo"
	"campus-board/literals"
	"campus-board/models"
	"campus-board/repositories"
)

var (
	ErrUnknownItemType = errors.New("unknown item type")
	ErrNotFound        = errors.New("item not found")
	ErrInvalidPage     = errors.New("page out of range")
)

// ItemReader is the row source ItemService reads from (repositories.ItemRepository).
type ItemReader interface {
	List(ctx context.Context, table string, opt repositories.ListItemsOptions) ([]models.Document, int64, error)
	FindByID(ctx context.Context, table string, id string) (models.Document, error)
}

// VoteReader looks up one voter's votes on a batch of items (repositories.VoteRepository).
type VoteReader interface {
	FindByVoter(ctx context.Context, voter string, itemIDs []any) (map[string]*models.Vote, error)
}

// sortFields 는 타입별 목록 정렬 기준 필드다. (최신순)
var sortFields = map[iteminfo.ItemType]string{
	iteminfo.Post:    literals.FIELD_TIMESTAMP,
	iteminfo.Link:    literals.FIELD_DATETIME,
	iteminfo.Class:   literals.FIELD_TITLE,
	iteminfo.Comment: literals.FIELD_TIMESTAMP,
	iteminfo.Rating:  literals.FIELD_DATETIME,
}

// ItemService 는 저장된 row 와 유저 투표를 묶어 공개용 ItemInfo DTO 로 변환한다.
//
// - items: 타입별 컬렉션에서 row 를 조회한다.
// - votes: 요청 유저의 투표를 한 번에 조회한다. (row 마다 조회하지 않는다)
type ItemService struct {
	items           ItemReader
	votes           VoteReader
	defaultPageSize int
	maxPageSize     int
}

func NewItemService(items ItemReader, votes VoteReader, cfg config.ItemsConfig) *ItemService {
	s := &ItemService{
		items:           items,
		votes:           votes,
		defaultPageSize: cfg.DefaultPageSize,
		maxPageSize:     cfg.MaxPageSize,
	}
	if s.maxPageSize <= 0 {
		s.maxPageSize = 100
	}
	if s.defaultPageSize <= 0 || s.defaultPageSize > s.maxPageSize {
		s.defaultPageSize = min(20, s.maxPageSize)
	}
	return s
}

type ListItemsInput struct {
	Type     string
	Page     int
	PageSize int
	// Voter 가 비어 있으면 투표 정보 없이(voted 없음) 변환한다.
	Voter string
	// Parent filters comments by parent post and ratings by rated class
	Parent string
	// ParentComment filters comments by the comment they reply to
	ParentComment string
	Tags          []string
}

// List returns one page of projected items of the requested type.
func (s *ItemService) List(ctx context.Context, in ListItemsInput) (dto.Pagination[dto.ItemInfo], error) {
	itemType, ok := iteminfo.ParseItemType(in.Type)
	if !ok {
		return dto.Pagination[dto.ItemInfo]{}, fmt.Errorf("%w: %q", ErrUnknownItemType, in.Type)
	}

	if in.Page <= 0 {
		in.Page = 1
	}
	if in.PageSize <= 0 {
		in.PageSize = s.defaultPageSize
	}
	if in.PageSize > s.maxPageSize {
		in.PageSize = s.maxPageSize
	}
	if _, ok := repositories.PageSkip(in.Page, in.PageSize); !ok {
		return dto.Pagination[dto.ItemInfo]{}, fmt.Errorf("%w: %d", ErrInvalidPage, in.Page)
	}

	rows, total, err := s.items.List(ctx, itemType.String(), repositories.ListItemsOptions{
		Page:      in.Page,
		PageSize:  in.PageSize,
		Refs:      parentFilter(itemType, in.Parent, in.ParentComment),
		Tags:      in.Tags,
		SortField: sortFields[itemType],
	})
	if err != nil {
		return dto.Pagination[dto.ItemInfo]{}, fmt.Errorf("list %s: %w", itemType, err)
	}

	sink := iteminfo.NewSink(len(rows))
	if err := s.project(ctx, itemType, rows, in.Voter, sink); err != nil {
		return dto.Pagination[dto.ItemInfo]{}, err
	}

	logger.DebugWithFields("listed items", logger.Fields{
		"item_type": itemType.String(),
		"page":      in.Page,
		"count":     sink.Len(),
		"total":     total,
	})

	return dto.Pagination[dto.ItemInfo]{
		Data:     sink.Items(),
		Page:     in.Page,
		PageSize: in.PageSize,
		Total:    total,
	}, nil
}

// Get returns one projected item by its id.
func (s *ItemService) Get(ctx context.Context, typ, id, voter string) (dto.ItemInfo, error) {
	itemType, ok := iteminfo.ParseItemType(typ)
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownItemType, typ)
	}

	row, err := s.items.FindByID(ctx, itemType.String(), id)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, fmt.Errorf("%w: %s %s", ErrNotFound, itemType, id)
		}
		return nil, fmt.Errorf("find %s %s: %w", itemType, id, err)
	}

	sink := iteminfo.NewSink(1)
	if err := s.project(ctx, itemType, []models.Document{row}, voter, sink); err != nil {
		return nil, err
	}
	return sink.Items()[0], nil
}

// project 는 row 들의 투표를 한 번에 조회한 뒤 row 마다 GeneralInfo 를 호출해 sink 에 쌓는다.
func (s *ItemService) project(ctx context.Context, itemType iteminfo.ItemType, rows []models.Document, voter string, sink *iteminfo.Sink) error {
	var votes map[string]*models.Vote
	if voter != "" && len(rows) > 0 {
		ids := make([]any, 0, len(rows))
		for _, row := range rows {
			ids = append(ids, row.GetValue(literals.FIELD_ID))
		}
		var err error
		votes, err = s.votes.FindByVoter(ctx, voter, ids)
		if err != nil {
			return fmt.Errorf("load votes for %s: %w", voter, err)
		}
	}

	for _, row := range rows {
		// 투표가 없으면 인터페이스 nil 을 넘겨야 voted 가 비워진다.
		var vote models.Row
		if v, ok := votes[repositories.VoteKey(row.GetValue(literals.FIELD_ID))]; ok {
			vote = v
		}
		iteminfo.GeneralInfo(row, vote, itemType, sink)
	}
	return nil
}

func parentFilter(itemType iteminfo.ItemType, parent, parentComment string) map[string]string {
	filter := map[string]string{}
	switch itemType {
	case iteminfo.Comment:
		if parent != "" {
			filter[literals.FIELD_PARENT_POST] = parent
		}
		if parentComment != "" {
			filter[literals.FIELD_PARENT_COMMENT] = parentComment
		}
	case iteminfo.Rating:
		if parent != "" {
			filter[literals.FIELD_PARENT] = parent
		}
	}
	return filter
}
