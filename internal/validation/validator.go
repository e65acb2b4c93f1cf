package validation

import (
	"errors"
	"math"
	"reflect"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/news-api/internal/apperror"
	"github.com/news-api/internal/models"
)

// Client-facing messages for shape failures
const (
	MsgInvalidArticleID  = "Invalid Article ID"
	MsgInvalidCommentID  = "Invalid Comment ID"
	MsgInvalidUsername   = "Invalid username"
	MsgInvalidTopicName  = "Invalid topic name"
	MsgInvalidSortBy     = "Invalid sort by query"
	MsgInvalidOrder      = "Invalid order query"
	MsgInvalidTopicQuery = "Invalid topic query"
	MsgInvalidLimit      = "Invalid limit query"
	MsgInvalidPage       = "Invalid page query"
	MsgArticleVotesNaN   = "inc_votes must be a number"
	MsgCommentVotesNaN   = "Invalid inc_votes: must be a number"
	MsgInvalidBody       = "Invalid request body"
)

// IsNumeric reports whether s reads as a number once surrounding whitespace
// is trimmed. Blank strings count as numeric.
func IsNumeric(s string) bool {
	trimmed := strings.TrimSpace(s)
	if trimmed == "" {
		return true
	}
	if isBasePrefixed(trimmed) {
		return true
	}
	f, err := strconv.ParseFloat(trimmed, 64)
	if err != nil {
		var numErr *strconv.NumError
		// Out-of-range literals are still numbers
		return errors.As(err, &numErr) && errors.Is(numErr.Err, strconv.ErrRange)
	}
	if math.IsInf(f, 0) {
		// Only the spelled-out form reads as a number
		return strings.TrimLeft(trimmed, "+-") == "Infinity"
	}
	return !math.IsNaN(f)
}

// isBasePrefixed reports whether s is an unsigned hex, octal or binary
// literal such as 0x10, 0o17 or 0b101
func isBasePrefixed(s string) bool {
	if len(s) < 3 || s[0] != '0' {
		return false
	}
	var base int
	switch s[1] {
	case 'x', 'X':
		base = 16
	case 'o', 'O':
		base = 8
	case 'b', 'B':
		base = 2
	default:
		return false
	}
	_, err := strconv.ParseUint(s[2:], base, 64)
	return err == nil || errors.Is(err, strconv.ErrRange)
}

// ParseID parses a numeric path identifier, failing with msg when raw is
// not an integer
func ParseID(raw, msg string) (int, error) {
	id, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil {
		return 0, apperror.InvalidInput(msg).Wrap(err)
	}
	return id, nil
}

// RequireText checks a textual key such as a username or topic slug: it
// must be present and must not read as a number
func RequireText(raw, msg string) error {
	if IsNumeric(raw) {
		return apperror.InvalidInput(msg)
	}
	return nil
}

// MissingField reports an absent required body field
func MissingField(name string) error {
	return apperror.InvalidInputf("Missing required field: %s", name)
}

// ParseVoteDelta accepts a JSON integer or a string holding an integer.
// Anything else, including nil, yields ok == false.
func ParseVoteDelta(v interface{}) (delta int, ok bool) {
	switch n := v.(type) {
	case float64:
		if n != math.Trunc(n) || n > math.MaxInt32 || n < math.MinInt32 {
			return 0, false
		}
		return int(n), true
	case int:
		return n, true
	case string:
		parsed, err := strconv.ParseInt(strings.TrimSpace(n), 10, 32)
		if err != nil {
			return 0, false
		}
		return int(parsed), true
	default:
		return 0, false
	}
}

// ArticleListQuery holds the raw query string of GET /api/articles. Empty
// values are treated as absent.
type ArticleListQuery struct {
	SortBy string
	Order  string
	Topic  string
	Limit  string
	Page   string
}

// ParseArticleListQuery validates q in a fixed order (sort_by, order,
// topic, limit, p) and returns the first failure
func ParseArticleListQuery(q ArticleListQuery) (models.ArticleFilter, error) {
	filter := models.ArticleFilter{
		SortBy: models.DefaultArticleSort,
		Order:  models.DefaultSortOrder,
		Limit:  models.DefaultArticleLimit,
		Page:   models.DefaultArticlePage,
	}

	if q.SortBy != "" {
		sortBy := models.ArticleSort(q.SortBy)
		if !models.ValidArticleSorts[sortBy] {
			return filter, apperror.InvalidInput(MsgInvalidSortBy)
		}
		filter.SortBy = sortBy
	}

	if q.Order != "" {
		switch order := models.SortOrder(q.Order); order {
		case models.OrderAsc, models.OrderDesc:
			filter.Order = order
		default:
			return filter, apperror.InvalidInput(MsgInvalidOrder)
		}
	}

	if q.Topic != "" {
		if IsNumeric(q.Topic) {
			return filter, apperror.InvalidInput(MsgInvalidTopicQuery)
		}
		filter.Topic = q.Topic
	}

	if q.Limit != "" {
		limit, err := parsePositive(q.Limit)
		if err != nil {
			return filter, apperror.InvalidInput(MsgInvalidLimit).Wrap(err)
		}
		filter.Limit = limit
		filter.Paginate = true
	}

	if q.Page != "" {
		page, err := parsePositive(q.Page)
		if err != nil {
			return filter, apperror.InvalidInput(MsgInvalidPage).Wrap(err)
		}
		filter.Page = page
		filter.Paginate = true
	}

	return filter, nil
}

func parsePositive(raw string) (int, error) {
	n, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil {
		return 0, err
	}
	if n < 1 {
		return 0, errors.New("must be at least 1")
	}
	return n, nil
}

// UseJSONFieldNames makes validation errors report json tag names, so a
// missing NewArticle.ArticleImgURL surfaces as "article_img_url"
func UseJSONFieldNames(v *validator.Validate) {
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name := strings.SplitN(f.Tag.Get("json"), ",", 2)[0]
		if name == "-" || name == "" {
			return f.Name
		}
		return name
	})
}

// BindingError translates a request-body binding failure into a 400
func BindingError(err error) error {
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) && len(verrs) > 0 {
		if verrs[0].Tag() == "required" {
			return MissingField(verrs[0].Field())
		}
		return apperror.InvalidInputf("Invalid field: %s", verrs[0].Field())
	}
	return apperror.InvalidInput(MsgInvalidBody).Wrap(err)
}
