package dto

import (
	"strings"

	"github.com/marketbay/backend/internal/domain/shared"
)

// Response represents a standard API response
type Response struct {
	Success bool        `json:"success"`
	Data    interface{} `json:"data,omitempty"`
	Error   *ErrorInfo  `json:"error,omitempty"`
	Meta    *Meta       `json:"meta,omitempty"`
}

// ErrorInfo represents error details
type ErrorInfo struct {
	Code      string             `json:"code"`
	Message   string             `json:"message"`
	RequestID string             `json:"request_id,omitempty"`
	Details   []ValidationDetail `json:"details,omitempty"`
}

// ValidationDetail describes a single invalid request field
type ValidationDetail struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// Meta represents pagination metadata
type Meta struct {
	Total      int64 `json:"total"`
	Page       int   `json:"page"`
	PageSize   int   `json:"page_size"`
	TotalPages int   `json:"total_pages"`
}

// NewSuccessResponse creates a success response
func NewSuccessResponse(data interface{}) Response {
	return Response{
		Success: true,
		Data:    data,
	}
}

// NewSuccessResponseWithMeta creates a success response with pagination meta
func NewSuccessResponseWithMeta(data interface{}, total int64, page, pageSize int) Response {
	if pageSize <= 0 {
		pageSize = 20
	}
	totalPages := int(total) / pageSize
	if int(total)%pageSize > 0 {
		totalPages++
	}
	return Response{
		Success: true,
		Data:    data,
		Meta: &Meta{
			Total:      total,
			Page:       page,
			PageSize:   pageSize,
			TotalPages: totalPages,
		},
	}
}

// NewErrorResponse creates an error response
func NewErrorResponse(code, message string) Response {
	return Response{
		Success: false,
		Error: &ErrorInfo{
			Code:    code,
			Message: message,
		},
	}
}

// NewErrorResponseWithRequestID creates an error response carrying the
// request ID so clients can reference it in support requests
func NewErrorResponseWithRequestID(code, message, requestID string) Response {
	return Response{
		Success: false,
		Error: &ErrorInfo{
			Code:      code,
			Message:   message,
			RequestID: requestID,
		},
	}
}

// NewValidationErrorResponse creates a 400-style error response listing
// the invalid fields
func NewValidationErrorResponse(message, requestID string, details []ValidationDetail) Response {
	return Response{
		Success: false,
		Error: &ErrorInfo{
			Code:      ErrCodeValidation,
			Message:   message,
			RequestID: requestID,
			Details:   details,
		},
	}
}

// ListRequest represents common list/pagination request parameters.
// Sort carries a single "field-direction" token such as
// "created_at-desc"; order_by/order_dir are the split form and lose to
// sort when both are sent.
type ListRequest struct {
	Page     int    `form:"page" binding:"omitempty,min=1"`
	PageSize int    `form:"page_size" binding:"omitempty,min=1,max=100"`
	Sort     string `form:"sort"`
	OrderBy  string `form:"order_by"`
	OrderDir string `form:"order_dir" binding:"omitempty,oneof=asc desc"`
	Search   string `form:"search"`
}

// DefaultListRequest returns a list request with defaults
func DefaultListRequest() ListRequest {
	return ListRequest{
		Page:     1,
		PageSize: 20,
		OrderBy:  "created_at",
		OrderDir: "desc",
	}
}

// ToFilter converts the request to a repository filter, filling defaults
// for any unset fields
func (r ListRequest) ToFilter() shared.Filter {
	filter := shared.DefaultFilter()
	if r.Page > 0 {
		filter.Page = r.Page
	}
	if r.PageSize > 0 {
		filter.PageSize = r.PageSize
	}
	if field, dir, ok := ParseSort(r.Sort); ok {
		filter.OrderBy = field
		filter.OrderDir = dir
	} else {
		if r.OrderBy != "" {
			filter.OrderBy = r.OrderBy
		}
		if r.OrderDir != "" {
			filter.OrderDir = r.OrderDir
		}
	}
	filter.Search = r.Search
	return filter
}

// ParseSort splits a "field-direction" sort token into its field and
// direction. The direction must be asc or desc; anything else reports
// ok=false and callers keep their defaults. The field still passes the
// repository allowlist before reaching ORDER BY.
func ParseSort(sort string) (field, dir string, ok bool) {
	idx := strings.LastIndex(sort, "-")
	if idx <= 0 || idx == len(sort)-1 {
		return "", "", false
	}
	field, dir = sort[:idx], sort[idx+1:]
	if dir != "asc" && dir != "desc" {
		return "", "", false
	}
	return field, dir, true
}

// IDRequest represents a request with an ID path parameter
type IDRequest struct {
	ID string `uri:"id" binding:"required,uuid"`
}
