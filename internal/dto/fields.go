package dto

import (
	"math"
	"strconv"
	"time"

	apierrors "github.com/pmapi/project-management-api/internal/errors"
)

// Field extraction helpers over a decoded JSON object. Each returns the typed
// value and whether it was valid; a false second return means a message was
// recorded against the field. "Required" is the caller's concern so the same
// helpers serve both create and partial update.

func asString(v any, field string, allowBlank bool, errs apierrors.ValidationErrors) (string, bool) {
	if v == nil {
		errs.Add(field, apierrors.MsgNull)
		return "", false
	}
	s, ok := v.(string)
	if !ok {
		errs.Add(field, apierrors.MsgNotString)
		return "", false
	}
	if !allowBlank && s == "" {
		errs.Add(field, apierrors.MsgBlank)
		return "", false
	}
	return s, true
}

func asBool(v any, field string, errs apierrors.ValidationErrors) (bool, bool) {
	if v == nil {
		errs.Add(field, apierrors.MsgNull)
		return false, false
	}
	b, ok := v.(bool)
	if !ok {
		errs.Add(field, apierrors.MsgNotBoolean)
		return false, false
	}
	return b, true
}

// asPK accepts a JSON number (integral) or a numeric string, matching the
// liberal identifier coercion of the wire format.
func asPK(v any, field string, errs apierrors.ValidationErrors) (uint64, bool) {
	switch n := v.(type) {
	case float64:
		if n < 0 || n != math.Trunc(n) {
			errs.Add(field, apierrors.MsgNotInteger)
			return 0, false
		}
		return uint64(n), true
	case string:
		id, err := strconv.ParseUint(n, 10, 64)
		if err != nil {
			errs.Add(field, apierrors.MsgNotInteger)
			return 0, false
		}
		return id, true
	default:
		errs.Add(field, apierrors.MsgNotInteger)
		return 0, false
	}
}

func asDatetime(v any, field string, errs apierrors.ValidationErrors) (time.Time, bool) {
	if v == nil {
		errs.Add(field, apierrors.MsgNull)
		return time.Time{}, false
	}
	s, ok := v.(string)
	if !ok {
		errs.Add(field, apierrors.MsgBadDatetime)
		return time.Time{}, false
	}
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		errs.Add(field, apierrors.MsgBadDatetime)
		return time.Time{}, false
	}
	return t, true
}

func asChoice(v any, field string, valid func(string) bool, errs apierrors.ValidationErrors) (string, bool) {
	s, ok := asString(v, field, false, errs)
	if !ok {
		return "", false
	}
	if !valid(s) {
		errs.Add(field, apierrors.MsgInvalidChoice(s))
		return "", false
	}
	return s, true
}
