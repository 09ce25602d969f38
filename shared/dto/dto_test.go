package dto_test

import (
	"net/http"
	"net/url"
	"testing"

	"frontdesk/shared/constant"
	"frontdesk/shared/dto"
)

func TestQueryParams_FromRequest(t *testing.T) {
	tests := []struct {
		name           string
		queryParams    map[string]string
		defaultRequest bool
		expected       dto.QueryParams
	}{
		{
			name: "with all valid parameters",
			queryParams: map[string]string{
				"page":     "2",
				"limit":    "20",
				"sort_by":  "name",
				"sort_dir": "ASC",
			},
			defaultRequest: false,
			expected: dto.QueryParams{
				Page:    2,
				Limit:   20,
				SortBy:  "name",
				SortDir: "ASC",
			},
		},
		{
			name:           "with default request enabled and no parameters",
			queryParams:    map[string]string{},
			defaultRequest: true,
			expected: dto.QueryParams{
				Page:    constant.DefaultValuePage,
				Limit:   constant.DefaultValueLimit,
				SortBy:  "",
				SortDir: "",
			},
		},
		{
			name:           "with default request disabled and no parameters",
			queryParams:    map[string]string{},
			defaultRequest: false,
			expected: dto.QueryParams{
				Page:    0,
				Limit:   0,
				SortBy:  "",
				SortDir: "",
			},
		},
		{
			name: "with invalid page parameter",
			queryParams: map[string]string{
				"page": "invalid",
			},
			defaultRequest: true,
			expected: dto.QueryParams{
				Page:    constant.DefaultValuePage, // Should use default
				Limit:   constant.DefaultValueLimit,
				SortBy:  "",
				SortDir: "",
			},
		},
		{
			name: "with negative page parameter",
			queryParams: map[string]string{
				"page": "-1",
			},
			defaultRequest: true,
			expected: dto.QueryParams{
				Page:    constant.DefaultValuePage, // Should use default
				Limit:   constant.DefaultValueLimit,
				SortBy:  "",
				SortDir: "",
			},
		},
		{
			name: "with zero page parameter",
			queryParams: map[string]string{
				"page": "0",
			},
			defaultRequest: true,
			expected: dto.QueryParams{
				Page:    constant.DefaultValuePage, // Should use default
				Limit:   constant.DefaultValueLimit,
				SortBy:  "",
				SortDir: "",
			},
		},
		{
			name: "with invalid limit parameter",
			queryParams: map[string]string{
				"limit": "invalid",
			},
			defaultRequest: true,
			expected: dto.QueryParams{
				Page:    constant.DefaultValuePage,
				Limit:   constant.DefaultValueLimit, // Should use default
				SortBy:  "",
				SortDir: "",
			},
		},
		{
			name: "with negative limit parameter",
			queryParams: map[string]string{
				"limit": "-10",
			},
			defaultRequest: true,
			expected: dto.QueryParams{
				Page:    constant.DefaultValuePage,
				Limit:   constant.DefaultValueLimit, // Should use default
				SortBy:  "",
				SortDir: "",
			},
		},
		{
			name: "with partial parameters and defaults enabled",
			queryParams: map[string]string{
				"page":    "3",
				"sort_by": "email",
			},
			defaultRequest: true,
			expected: dto.QueryParams{
				Page:    3,
				Limit:   constant.DefaultValueLimit, // Should use default
				SortBy:  "email",
				SortDir: "", // Empty when not provided
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// Create a URL with query parameters
			baseURL := "http://example.com/test"
			u, err := url.Parse(baseURL)
			if err != nil {
				t.Fatalf("failed to parse URL: %v", err)
			}

			// Add query parameters
			query := u.Query()
			for key, value := range tt.queryParams {
				query.Set(key, value)
			}
			u.RawQuery = query.Encode()

			// Create HTTP request
			req, err := http.NewRequest("GET", u.String(), nil)
			if err != nil {
				t.Fatalf("failed to create request: %v", err)
			}

			// Test the method
			queryParams := &dto.QueryParams{}
			queryParams.FromRequest(req, tt.defaultRequest)

			// Verify results
			if queryParams.Page != tt.expected.Page {
				t.Errorf("expected Page to be %d, got %d", tt.expected.Page, queryParams.Page)
			}
			if queryParams.Limit != tt.expected.Limit {
				t.Errorf("expected Limit to be %d, got %d", tt.expected.Limit, queryParams.Limit)
			}
			if queryParams.SortBy != tt.expected.SortBy {
				t.Errorf("expected SortBy to be %s, got %s", tt.expected.SortBy, queryParams.SortBy)
			}
			if queryParams.SortDir != tt.expected.SortDir {
				t.Errorf("expected SortDir to be %s, got %s", tt.expected.SortDir, queryParams.SortDir)
			}
		})
	}
}

func TestQueryParams_Offset(t *testing.T) {
	tests := []struct {
		name     string
		params   dto.QueryParams
		expected int
	}{
		{name: "first page", params: dto.QueryParams{Page: 1, Limit: 10}, expected: 0},
		{name: "third page", params: dto.QueryParams{Page: 3, Limit: 20}, expected: 40},
		{name: "no limit", params: dto.QueryParams{Page: 4}, expected: 0},
		{name: "zero page", params: dto.QueryParams{Limit: 5}, expected: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.params.Offset(); got != tt.expected {
				t.Errorf("expected Offset to be %d, got %d", tt.expected, got)
			}
		})
	}
}

func TestFilterGroup_GetWhereClause(t *testing.T) {
	tests := []struct {
		name         string
		group        dto.FilterGroup
		expectedSQL  string
		expectedArgs map[string]any
	}{
		{
			name:         "empty group",
			group:        dto.FilterGroup{},
			expectedSQL:  "",
			expectedArgs: map[string]any{},
		},
		{
			name: "single equality",
			group: dto.FilterGroup{Filters: []any{
				dto.Filter{Field: "status", Value: "confirmed", Operator: dto.FilterOperatorEq},
			}},
			expectedSQL:  "(status = :status_1)",
			expectedArgs: map[string]any{"status_1": "confirmed"},
		},
		{
			name: "same field twice does not collide",
			group: dto.FilterGroup{Filters: []any{
				dto.Filter{Field: "check_in", Value: "2024-01-01", Operator: dto.FilterOperatorGreaterEq},
				dto.Filter{Field: "check_in", Value: "2024-01-31", Operator: dto.FilterOperatorLessEq},
			}},
			expectedSQL:  "(check_in >= :check_in_1 AND check_in <= :check_in_2)",
			expectedArgs: map[string]any{"check_in_1": "2024-01-01", "check_in_2": "2024-01-31"},
		},
		{
			name: "nested or group with like",
			group: dto.FilterGroup{
				Operator: dto.FilterGroupOperatorOr,
				Filters: []any{
					dto.Filter{Field: "first_name", Value: "ann", Operator: dto.FilterOperatorLike},
					dto.FilterGroup{Filters: []any{
						dto.Filter{Field: "vip_status", Value: true, Operator: dto.FilterOperatorEq},
						dto.Filter{Field: "email", Operator: dto.FilterIsNotNull},
					}},
				},
			},
			expectedSQL: "(LOWER(first_name) LIKE LOWER(:first_name_1) OR (vip_status = :vip_status_2 AND email IS NOT NULL))",
			expectedArgs: map[string]any{
				"first_name_1": "%ann%",
				"vip_status_2": true,
			},
		},
		{
			name: "in with slice",
			group: dto.FilterGroup{Filters: []any{
				dto.Filter{Field: "id", Value: []int64{3, 4}, Operator: dto.FilterOperatorIn, Table: "rooms"},
			}},
			expectedSQL:  "(rooms.id IN (:id_1_0, :id_1_1))",
			expectedArgs: map[string]any{"id_1_0": int64(3), "id_1_1": int64(4)},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sql, args := tt.group.GetWhereClause()
			if sql != tt.expectedSQL {
				t.Errorf("expected SQL %q, got %q", tt.expectedSQL, sql)
			}

			if len(args) != len(tt.expectedArgs) {
				t.Fatalf("expected %d args, got %d", len(tt.expectedArgs), len(args))
			}

			for key, value := range tt.expectedArgs {
				if args[key] != value {
					t.Errorf("expected arg %s to be %v, got %v", key, value, args[key])
				}
			}
		})
	}
}
