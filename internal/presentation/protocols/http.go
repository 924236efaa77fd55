package protocols

import (
	"io"
	"net/http"
	"net/url"
)

type HttpRequest struct {
	Body      io.ReadCloser
	Header    http.Header
	UrlParams url.Values
	Req       *http.Request
}

type HttpResponse struct {
	Body       io.ReadCloser
	StatusCode int
	Headers    http.Header
	Cookies    []*http.Cookie
}

type ErrorResponse struct {
	Error string `json:"error"`
	Code  string `json:"code,omitempty"`
}

// Machine-readable error codes carried alongside the human message.
const (
	CodeDuplicateEmail        = "DUPLICATE_EMAIL"
	CodeInvalidCredentials    = "INVALID_CREDENTIALS"
	CodeUnauthorized          = "UNAUTHORIZED"
	CodeTokenExpired          = "TOKEN_EXPIRED"
	CodeDuplicateWeek         = "DUPLICATE_WEEK"
	CodeExpensesExceedSalary  = "EXPENSES_EXCEED_SALARY"
	CodeMissingCategories     = "MISSING_CATEGORY_EXPENSES"
	CodeInvalidWeeklyExpenses = "INVALID_WEEKLY_EXPENSES"
	CodeWeekNotFound          = "WEEK_NOT_FOUND"
	CodeNotFound              = "NOT_FOUND"
	CodeConflict              = "CONFLICT"
	CodeValidation            = "VALIDATION"
	CodeInternal              = "INTERNAL"
)
