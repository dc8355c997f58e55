package business

import (
	"errors"
	"html"
	"reflect"
	"regexp"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/microcosm-cc/bluemonday"

	"github.com/Conte777/NewsFlow/services/announcement-service/internal/domain/announcement/dto"
	domainerrors "github.com/Conte777/NewsFlow/services/announcement-service/internal/domain/announcement/errors"
	pkgerrors "github.com/Conte777/NewsFlow/services/announcement-service/pkg/errors"
)

var slugPattern = regexp.MustCompile(`^[a-z0-9]+(?:-[a-z0-9]+)*$`)

// fieldErrors maps a failing request field to its domain error
var fieldErrors = map[string]error{
	"headline": domainerrors.ErrEmptyHeadline,
	"slug":     domainerrors.ErrInvalidSlug,
	"status":   domainerrors.ErrInvalidStatus,
	"text":     domainerrors.ErrEmptyComment,
}

// InputPolicy validates request payloads and strips unsafe markup from them
type InputPolicy struct {
	validate  *validator.Validate
	plain     *bluemonday.Policy
	formatted *bluemonday.Policy
}

// NewInputPolicy creates the policy used for announcement and comment payloads
func NewInputPolicy() *InputPolicy {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name := strings.SplitN(f.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	_ = v.RegisterValidation("slug", func(fl validator.FieldLevel) bool {
		return slugPattern.MatchString(fl.Field().String())
	})

	return &InputPolicy{
		validate:  v,
		plain:     bluemonday.StrictPolicy(),
		formatted: bluemonday.UGCPolicy(),
	}
}

// Announcement validates req and sanitises its text fields in place
func (p *InputPolicy) Announcement(req *dto.AnnouncementRequest) error {
	req.Headline = p.Plain(req.Headline)
	req.Syn = p.Plain(req.Syn)
	req.Body = strings.TrimSpace(p.formatted.Sanitize(req.Body))
	req.Slug = strings.TrimSpace(req.Slug)
	if req.ImageURL != nil {
		trimmed := strings.TrimSpace(*req.ImageURL)
		req.ImageURL = &trimmed
	}

	return p.check(req)
}

// Comment validates req and strips markup from its text
func (p *InputPolicy) Comment(req *dto.CommentRequest) error {
	req.Text = p.Plain(req.Text)
	return p.check(req)
}

// Plain strips all markup and surrounding whitespace
func (p *InputPolicy) Plain(s string) string {
	return strings.TrimSpace(html.UnescapeString(p.plain.Sanitize(s)))
}

func (p *InputPolicy) check(req interface{}) error {
	err := p.validate.Struct(req)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) || len(verrs) == 0 {
		return pkgerrors.WrapInternalError(err, "failed to validate request")
	}

	fe := verrs[0]
	if mapped, ok := fieldErrors[fe.Field()]; ok {
		return mapped
	}
	return pkgerrors.NewValidationErrorf("%s failed %s validation", fe.Field(), fe.Tag())
}
