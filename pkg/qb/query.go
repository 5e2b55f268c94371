package qb

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

// Static errors for err113 compliance.
var (
	ErrUnsupportedCriteria = errors.New("unsupported criteria type")
)

// Criterion is one filter condition. Operator defaults to equality; only
// the operators in the allow-list are accepted and anything else silently
// falls back to "=".
type Criterion struct {
	Field    string
	Value    interface{}
	Operator string
}

// Operators accepted by the query grammar.
var allowedOperators = map[string]struct{}{
	"=":    {},
	"IN":   {},
	"<":    {},
	">":    {},
	"<=":   {},
	">=":   {},
	"LIKE": {},
}

// Reserved criterion fields. They never become filter conditions; they
// control paging, ordering, and counting instead.
const (
	reservedLimit  = "limit"
	reservedOffset = "offset"
	reservedAsc    = "asc"
	reservedDesc   = "desc"
	reservedCount  = "count"
)

type parsedCriteria struct {
	conditions []string
	limit      string
	offset     string
	asc        string
	desc       string
	count      bool
	literal    string
	isLiteral  bool
}

// CriteriaToString translates criteria into the filter-and-clause suffix
// of a SELECT statement. Accepted forms:
//
//   - string: passed through verbatim
//   - []Criterion: ordered conditions
//   - map[string]interface{}: one equality condition per pair, emitted in
//     sorted field order (Go maps have no insertion order; use []Criterion
//     when condition order matters)
//
// Reserved fields limit, offset, asc, and desc (case-insensitive) append
// maxresults, startposition, and orderby clauses, in that fixed order,
// after the where clause. Conditions are joined with "and" and values are
// quoted.
func CriteriaToString(criteria interface{}) (string, error) {
	parsed, err := parseCriteria(criteria)
	if err != nil {
		return "", err
	}

	if parsed.isLiteral {
		return parsed.literal, nil
	}

	return parsed.render(), nil
}

func (p *parsedCriteria) render() string {
	var sql strings.Builder

	for i, cond := range p.conditions {
		if i == 0 {
			sql.WriteString(" where ")
		} else {
			sql.WriteString(" and ")
		}

		sql.WriteString(cond)
	}

	if p.limit != "" {
		sql.WriteString(" maxresults " + p.limit)
	}

	if p.offset != "" {
		sql.WriteString(" startposition " + p.offset)
	}

	if p.asc != "" {
		sql.WriteString(" orderby " + p.asc + " asc")
	}

	if p.desc != "" {
		sql.WriteString(" orderby " + p.desc + " desc")
	}

	return sql.String()
}

func parseCriteria(criteria interface{}) (*parsedCriteria, error) {
	parsed := &parsedCriteria{}

	switch c := criteria.(type) {
	case nil:
		return parsed, nil
	case string:
		parsed.isLiteral = true
		parsed.literal = c

		return parsed, nil
	case []Criterion:
		for _, criterion := range c {
			parsed.add(criterion)
		}

		return parsed, nil
	case Criterion:
		parsed.add(c)

		return parsed, nil
	case map[string]interface{}:
		fields := make([]string, 0, len(c))
		for field := range c {
			fields = append(fields, field)
		}

		sort.Strings(fields)

		for _, field := range fields {
			parsed.add(Criterion{Field: field, Value: c[field]})
		}

		return parsed, nil
	default:
		return nil, fmt.Errorf("%w: %T", ErrUnsupportedCriteria, criteria)
	}
}

// add folds one criterion in, routing reserved fields to their clauses.
func (p *parsedCriteria) add(criterion Criterion) {
	switch strings.ToLower(criterion.Field) {
	case reservedLimit:
		p.limit = fmt.Sprintf("%v", criterion.Value)
	case reservedOffset:
		p.offset = fmt.Sprintf("%v", criterion.Value)
	case reservedAsc:
		p.asc = fmt.Sprintf("%v", criterion.Value)
	case reservedDesc:
		p.desc = fmt.Sprintf("%v", criterion.Value)
	case reservedCount:
		p.count = truthy(criterion.Value)
	default:
		operator := criterion.Operator
		if _, ok := allowedOperators[operator]; !ok {
			operator = "="
		}

		p.conditions = append(p.conditions,
			fmt.Sprintf("%s %s '%v'", criterion.Field, operator, criterion.Value))
	}
}

func truthy(value interface{}) bool {
	switch v := value.(type) {
	case bool:
		return v
	case nil:
		return false
	case string:
		return v != "" && v != "false"
	default:
		return true
	}
}

// BuildQuery assembles the full SELECT statement for an entity type. A
// count criterion (or BuildCountQuery) replaces "select * from" with
// "select count(*) from" and is excluded from the filter clause.
func BuildQuery(entity string, criteria interface{}) (string, error) {
	parsed, err := parseCriteria(criteria)
	if err != nil {
		return "", err
	}

	selectClause := "select * from "
	if parsed.count {
		selectClause = "select count(*) from "
	}

	if parsed.isLiteral {
		suffix := parsed.literal
		if suffix != "" && !strings.HasPrefix(suffix, " ") {
			suffix = " " + suffix
		}

		return selectClause + entity + suffix, nil
	}

	return selectClause + entity + parsed.render(), nil
}

// BuildCountQuery assembles the count form of the query regardless of
// whether criteria carries a count field.
func BuildCountQuery(entity string, criteria interface{}) (string, error) {
	query, err := BuildQuery(entity, criteria)
	if err != nil {
		return "", err
	}

	return strings.Replace(query, "select * from", "select count(*) from", 1), nil
}

// queryEscaper percent-escapes the narrow set of characters the query
// endpoint rejects inside statements. The set is fixed; everything else
// passes through untouched.
var queryEscaper = strings.NewReplacer(
	"%", "%25",
	"'", "%27",
	"=", "%3D",
	"<", "%3C",
	">", "%3E",
	"&", "%26",
	"#", "%23",
	`\`, "%5C",
	"+", "%2B",
)

// EscapeQuery applies the fixed-set percent escaping to a statement.
func EscapeQuery(query string) string {
	return queryEscaper.Replace(query)
}
