package webutil

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"vokabelbuch/internal/model"

	"github.com/go-playground/validator/v10"
)

// maxBodyBytes はリクエストボディの上限
const maxBodyBytes = 1 << 20

func errInvalidJSON() *model.AppError {
	return model.NewAppError("INVALID_JSON", "Request body is not valid JSON.", "", model.ErrInvalidInput)
}

// DecodeJSONBody はリクエストボディをデコードします。空のボディはエラーです。
func DecodeJSONBody(w http.ResponseWriter, r *http.Request, dst interface{}) error {
	return decode(w, r, dst, false)
}

// DecodeOptionalJSONBody は空のボディを許容し、その場合 dst はゼロ値のままです。
func DecodeOptionalJSONBody(w http.ResponseWriter, r *http.Request, dst interface{}) error {
	return decode(w, r, dst, true)
}

func decode(w http.ResponseWriter, r *http.Request, dst interface{}, allowEmpty bool) error {
	if r.Body == nil {
		if allowEmpty {
			return nil
		}
		return errInvalidJSON()
	}
	defer r.Body.Close()

	decoder := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	decoder.DisallowUnknownFields()

	if err := decoder.Decode(dst); err != nil {
		if errors.Is(err, io.EOF) && allowEmpty {
			return nil
		}
		return model.NewAppError("INVALID_JSON", "Request body is not valid JSON.", "", errors.Join(model.ErrInvalidInput, err))
	}
	// 2つ目のJSON値は受け付けない
	if decoder.More() {
		return errInvalidJSON()
	}
	return nil
}

// ValidateStruct は構造体を検証し、失敗時は VALIDATION_ERROR を返します。
func ValidateStruct(v interface{}) error {
	if err := Validator.Struct(v); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) {
			return NewValidationErrorResponse(verrs)
		}
		return model.NewAppError("VALIDATION_ERROR", "Invalid request.", "", errors.Join(model.ErrInvalidInput, err))
	}
	return nil
}

// DecodeAndValidate は DecodeJSONBody の後に ValidateStruct を行います。
func DecodeAndValidate(w http.ResponseWriter, r *http.Request, dst interface{}) error {
	if err := DecodeJSONBody(w, r, dst); err != nil {
		return err
	}
	return ValidateStruct(dst)
}
