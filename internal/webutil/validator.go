package webutil

import (
	"log"
	"reflect"
	"strings"

	"github.com/go-playground/locales/en"
	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	"github.com/go-playground/validator/v10/non-standard/validators"
	en_translations "github.com/go-playground/validator/v10/translations/en"
)

// Validator はアプリケーション全体で共有されるバリデータインスタンスです。
var Validator *validator.Validate

// Trans はエラーメッセージを翻訳するためのトランスレータです。
var Trans ut.Translator

// メッセージ中の表示名。ない場合はjsonタグ名のまま
var fieldNameTranslations = map[string]string{
	"german":     "German term",
	"english":    "English term",
	"article":    "Article",
	"notes":      "Notes",
	"difficulty": "Difficulty",
	"word_id":    "Word ID",
	"wordId":     "Word ID",
	"correct":    "Correct",
	"answer":     "Answer",
	"count":      "Count",
	"name":       "Name",
	"email":      "Email",
	"password":   "Password",
}

func displayName(field string) string {
	if name, ok := fieldNameTranslations[field]; ok {
		return name
	}
	return field
}

func init() {
	Validator = validator.New(validator.WithRequiredStructEnabled())

	// JSONタグからフィールド名を取得する
	Validator.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	if err := Validator.RegisterValidation("notblank", validators.NotBlank); err != nil {
		log.Fatal(err)
	}

	english := en.New()
	uni := ut.New(english, english)
	var found bool
	Trans, found = uni.GetTranslator("en")
	if !found {
		log.Fatal("translator not found")
	}

	if err := en_translations.RegisterDefaultTranslations(Validator, Trans); err != nil {
		log.Fatal(err)
	}

	// 表示名を使うよう個別に上書き
	registerTranslation := func(tag string, msg string) {
		Validator.RegisterTranslation(tag, Trans, func(ut ut.Translator) error {
			return ut.Add(tag, msg, true)
		}, func(ut ut.Translator, fe validator.FieldError) string {
			t, _ := ut.T(tag, displayName(fe.Field()), fe.Param())
			return t
		})
	}

	registerTranslation("required", "{0} is required.")
	registerTranslation("notblank", "{0} must not be blank.")
	registerTranslation("email", "{0} must be a valid email address.")
	registerTranslation("min", "{0} must be at least {1} characters long.")
	registerTranslation("max", "{0} must be at most {1} characters long.")
	registerTranslation("oneof", "{0} must be one of [{1}].")
	registerTranslation("gte", "{0} must be {1} or greater.")
}
