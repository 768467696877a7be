package rpc

import (
	"errors"
	"strconv"

	"connectrpc.com/connect"
	"github.com/rs/zerolog/log"

	"github.com/mcdev12/footballdb/go/internal/apperr"
)

// Metadata keys attached to every mapped error
const (
	HeaderErrorKind   = "Football-Error-Kind"
	HeaderErrorField  = "Football-Error-Field"
	HeaderErrorEntity = "Football-Error-Entity"
	HeaderErrorID     = "Football-Error-Id"
)

// Code returns the connect code for an apperr kind
func Code(kind apperr.Kind) connect.Code {
	switch kind {
	case apperr.KindValidation:
		return connect.CodeInvalidArgument
	case apperr.KindNotFound:
		return connect.CodeNotFound
	case apperr.KindDuplicate:
		return connect.CodeFailedPrecondition
	case apperr.KindConflict:
		return connect.CodeAborted
	default:
		return connect.CodeInternal
	}
}

// Error converts an App error into a connect error. Only the apperr message
// reaches the caller; store causes are logged here and dropped.
func Error(err error) error {
	if err == nil {
		return nil
	}

	var connectErr *connect.Error
	if errors.As(err, &connectErr) {
		return connectErr
	}

	var appErr *apperr.Error
	if !errors.As(err, &appErr) {
		log.Error().Err(err).Msg("unclassified error")
		return connect.NewError(connect.CodeInternal, errors.New("internal error"))
	}

	if appErr.Kind == apperr.KindStore || appErr.Kind == apperr.KindUnknown {
		log.Error().
			Err(appErr.Err).
			Str("entity", appErr.Entity).
			Str("op", appErr.Op).
			Msg(appErr.Message)
	}

	out := connect.NewError(Code(appErr.Kind), errors.New(appErr.Message))
	out.Meta().Set(HeaderErrorKind, appErr.Kind.String())
	if appErr.Entity != "" {
		out.Meta().Set(HeaderErrorEntity, appErr.Entity)
	}
	if appErr.Field != "" {
		out.Meta().Set(HeaderErrorField, appErr.Field)
	}
	if appErr.ID != 0 {
		out.Meta().Set(HeaderErrorID, strconv.FormatInt(appErr.ID, 10))
	}
	return out
}
