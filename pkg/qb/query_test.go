package qb_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fivetwenty-io/quickbooks-client/pkg/qb"
)

func TestCriteriaToString(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		criteria interface{}
		want     string
	}{
		{
			name:     "nil criteria",
			criteria: nil,
			want:     "",
		},
		{
			name:     "string passthrough",
			criteria: "where DisplayName = 'Acme' orderby Id",
			want:     "where DisplayName = 'Acme' orderby Id",
		},
		{
			name:     "single map condition",
			criteria: map[string]interface{}{"Name": "x"},
			want:     " where Name = 'x'",
		},
		{
			name: "map conditions in sorted field order",
			criteria: map[string]interface{}{
				"DisplayName": "Acme",
				"Active":      true,
			},
			want: " where Active = 'true' and DisplayName = 'Acme'",
		},
		{
			name: "criterion slice keeps order",
			criteria: []qb.Criterion{
				{Field: "DisplayName", Value: "Acme"},
				{Field: "Active", Value: true},
			},
			want: " where DisplayName = 'Acme' and Active = 'true'",
		},
		{
			name:     "single criterion",
			criteria: qb.Criterion{Field: "Balance", Value: 100, Operator: ">"},
			want:     " where Balance > '100'",
		},
		{
			name: "IN operator",
			criteria: []qb.Criterion{
				{Field: "Id", Value: "('1','2')", Operator: "IN"},
			},
			want: " where Id IN '('1','2')'",
		},
		{
			name: "LIKE operator",
			criteria: []qb.Criterion{
				{Field: "DisplayName", Value: "Acme%", Operator: "LIKE"},
			},
			want: " where DisplayName LIKE 'Acme%'",
		},
		{
			name: "unknown operator falls back to equality",
			criteria: []qb.Criterion{
				{Field: "DisplayName", Value: "Acme", Operator: "!="},
			},
			want: " where DisplayName = 'Acme'",
		},
		{
			name:     "limit alone emits no where clause",
			criteria: map[string]interface{}{"limit": 5},
			want:     " maxresults 5",
		},
		{
			name: "paging and ordering clauses in fixed order",
			criteria: []qb.Criterion{
				{Field: "desc", Value: "MetaData.LastUpdatedTime"},
				{Field: "offset", Value: 11},
				{Field: "DisplayName", Value: "Acme"},
				{Field: "limit", Value: 10},
			},
			want: " where DisplayName = 'Acme' maxresults 10 startposition 11 orderby MetaData.LastUpdatedTime desc",
		},
		{
			name: "reserved fields are case-insensitive",
			criteria: []qb.Criterion{
				{Field: "LIMIT", Value: 3},
				{Field: "Asc", Value: "Id"},
			},
			want: " maxresults 3 orderby Id asc",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, err := qb.CriteriaToString(tt.criteria)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestCriteriaToStringUnsupportedType(t *testing.T) {
	t.Parallel()

	_, err := qb.CriteriaToString(42)
	require.ErrorIs(t, err, qb.ErrUnsupportedCriteria)
}

func TestBuildQuery(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		entity   string
		criteria interface{}
		want     string
	}{
		{
			name:     "no criteria",
			entity:   "Customer",
			criteria: nil,
			want:     "select * from Customer",
		},
		{
			name:     "map criteria",
			entity:   "Invoice",
			criteria: map[string]interface{}{"CustomerRef": "42"},
			want:     "select * from Invoice where CustomerRef = '42'",
		},
		{
			name:     "string criteria gets a separating space",
			entity:   "Customer",
			criteria: "where Active = 'true'",
			want:     "select * from Customer where Active = 'true'",
		},
		{
			name:     "count criterion switches the select clause",
			entity:   "Bill",
			criteria: map[string]interface{}{"count": true, "VendorRef": "7"},
			want:     "select count(*) from Bill where VendorRef = '7'",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, err := qb.BuildQuery(tt.entity, tt.criteria)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestBuildCountQuery(t *testing.T) {
	t.Parallel()

	got, err := qb.BuildCountQuery("Customer", map[string]interface{}{"Active": true})
	require.NoError(t, err)
	assert.Equal(t, "select count(*) from Customer where Active = 'true'", got)
}

func TestEscapeQuery(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		input string
		want  string
	}{
		{
			name:  "untouched statement",
			input: "select Id from Customer",
			want:  "select Id from Customer",
		},
		{
			name:  "quotes and equals",
			input: "where DisplayName = 'O'Brien'",
			want:  "where DisplayName %3D %27O%27Brien%27",
		},
		{
			name:  "percent escapes first and only once",
			input: "LIKE 'Acme%'",
			want:  "LIKE %27Acme%25%27",
		},
		{
			name:  "comparison and special characters",
			input: `a < b > c & d # e \ f + g`,
			want:  "a %3C b %3E c %26 d %23 e %5C f %2B g",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tt.want, qb.EscapeQuery(tt.input))
		})
	}
}
