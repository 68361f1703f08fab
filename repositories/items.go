package repositories

import (
	"context"
	"math"
	"regexp"
	"strconv"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"campus-board/literals"
	"campus-board/models"
)

// ItemRepository reads schemaless item rows. The collection is chosen per call
// from the item's table name, so one repository serves every item type.
type ItemRepository struct {
	db *mongo.Database
}

func NewItemRepository(db *mongo.Database) *ItemRepository {
	return &ItemRepository{db: db}
}

type ListItemsOptions struct {
	Page     int
	PageSize int
	// Equals holds exact-match filters keyed by field name
	Equals map[string]any
	// Refs holds id references (parentPost, parent, ...) given as strings.
	// They also match rows that store the id as a number.
	Refs map[string]string
	// Tags matches rows carrying any of the given tags (case-insensitive)
	Tags []string
	// SortField is sorted descending, then by _id descending
	SortField string
}

// List returns one page of rows from table together with the total match count
func (r *ItemRepository) List(ctx context.Context, table string, opt ListItemsOptions) ([]models.Document, int64, error) {
	filter := bson.M{}
	for field, value := range opt.Equals {
		filter[field] = value
	}
	for field, ref := range opt.Refs {
		filter[field] = bson.M{"$in": IDValues(ref)}
	}

	tags := make([]interface{}, 0, len(opt.Tags))
	for _, t := range opt.Tags {
		if t == "" {
			continue
		}
		tags = append(tags, primitive.Regex{Pattern: "^" + regexp.QuoteMeta(t) + "$", Options: "i"})
	}
	if len(tags) > 0 {
		filter[literals.FIELD_TAGS] = bson.M{"$in": tags}
	}

	if opt.Page <= 0 {
		opt.Page = 1
	}
	if opt.PageSize <= 0 {
		opt.PageSize = 20
	}
	limit := int64(opt.PageSize)

	col := r.db.Collection(table)
	total, err := col.CountDocuments(ctx, filter)
	if err != nil {
		return nil, 0, err
	}

	skip, ok := PageSkip(opt.Page, opt.PageSize)
	if !ok {
		// 어떤 컬렉션보다도 뒤쪽 페이지이므로 빈 페이지다.
		return []models.Document{}, total, nil
	}

	sort := bson.D{}
	if opt.SortField != "" {
		sort = append(sort, bson.E{Key: opt.SortField, Value: -1})
	}
	sort = append(sort, bson.E{Key: "_id", Value: -1})

	cur, err := col.Find(ctx, filter, options.Find().SetSkip(skip).SetLimit(limit).SetSort(sort))
	if err != nil {
		return nil, 0, err
	}
	defer cur.Close(ctx)

	results := make([]models.Document, 0, limit)
	for cur.Next(ctx) {
		var d models.Document
		if err := cur.Decode(&d); err != nil {
			return nil, 0, err
		}
		results = append(results, d)
	}
	if err := cur.Err(); err != nil {
		return nil, 0, err
	}
	return results, total, nil
}

// FindByID returns the row of table whose application id equals id, stored
// either as a string or as a number. Returns mongo.ErrNoDocuments when there is none.
func (r *ItemRepository) FindByID(ctx context.Context, table string, id string) (models.Document, error) {
	var d models.Document
	filter := bson.M{literals.FIELD_ID: bson.M{"$in": IDValues(id)}}
	if err := r.db.Collection(table).FindOne(ctx, filter).Decode(&d); err != nil {
		return nil, err
	}
	return d, nil
}

// PageSkip returns the number of rows before the 1-based page.
// ok is false when the offset does not fit in an int64.
func PageSkip(page, pageSize int) (skip int64, ok bool) {
	if page <= 1 || pageSize <= 0 {
		return 0, true
	}
	p, size := int64(page-1), int64(pageSize)
	if p > math.MaxInt64/size {
		return 0, false
	}
	return p * size, true
}

// IDValues returns the stored forms an id taken from a URL may have.
// Mongo compares numbers across int32/int64/double, so one int64 covers them.
func IDValues(raw string) []any {
	values := []any{raw}
	if n, err := strconv.ParseInt(raw, 10, 64); err == nil {
		values = append(values, n)
	}
	return values
}
