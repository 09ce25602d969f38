// Package request reads path and query parameters shared by the handlers.
package request

import (
	"net/http"
	"time"

	"frontdesk/shared"
	"frontdesk/shared/constant"
	"frontdesk/shared/failure"
	"frontdesk/shared/timezone"

	"github.com/go-chi/chi/v5"
)

// ID parses the {id} path parameter.
func ID(r *http.Request) (int64, error) {
	return PathInt64(r, constant.RequestParamID)
}

func PathInt64(r *http.Request, name string) (int64, error) {
	id, err := shared.ConvertStringToInt64(chi.URLParam(r, name))
	if err != nil || id <= 0 {
		return 0, failure.InvalidIDParam
	}

	return id, nil
}

// QueryInt64 returns nil when the parameter is absent.
func QueryInt64(r *http.Request, name string) (*int64, error) {
	raw := r.URL.Query().Get(name)
	if raw == constant.Empty {
		return nil, nil //nolint:nilnil
	}

	value, err := shared.ConvertStringToInt64(raw)
	if err != nil {
		return nil, failure.BadRequestFromString("invalid " + name + " parameter") //nolint:wrapcheck
	}

	return &value, nil
}

// DateRange reads the start and end query parameters as calendar dates in
// the application timezone. ok is false when neither is given. Giving only
// one of them, or a malformed date, is an error.
func DateRange(r *http.Request) (start, end time.Time, ok bool, err error) {
	query := r.URL.Query()
	rawStart := query.Get(constant.RequestParamStartDate)
	rawEnd := query.Get(constant.RequestParamEndDate)

	if rawStart == constant.Empty && rawEnd == constant.Empty {
		return start, end, false, nil
	}

	start, err = timezone.ParseDate(rawStart)
	if err != nil {
		return start, end, false, failure.InvalidDateRangeParam
	}

	end, err = timezone.ParseDate(rawEnd)
	if err != nil {
		return start, end, false, failure.InvalidDateRangeParam
	}

	return start, end, true, nil
}
