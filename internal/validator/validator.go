package validator

import (
	"errors"
	"fmt"
	"regexp"
	"strings"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/go-ozzo/ozzo-validation/v4/is"

	"content-api/internal/domain"
)

const (
	maxNameLength        = 100
	maxDescriptionLength = 500
	maxBioLength         = 1000
	maxCredentialsLength = 200
	maxTitleLength       = 200
	maxExcerptLength     = 500
	maxSEOTitleLength    = 200
	maxSEODescLength     = 500
	maxTagLength         = 50
)

var (
	slugRegex          = regexp.MustCompile(`^[a-z0-9]+(-[a-z0-9]+)*$`)
	validStatus        = inSet(domain.ValidStatuses)
	validCategorySlugs = inSet(domain.ValidCategorySlugs)
)

// inSet converts a domain enumeration into string elements for validation.In.
func inSet[T ~string](values []T) []interface{} {
	set := make([]interface{}, len(values))
	for i, v := range values {
		set[i] = string(v)
	}
	return set
}

func joinSet(set []interface{}) string {
	parts := make([]string, len(set))
	for i, v := range set {
		parts[i] = v.(string)
	}
	return strings.Join(parts, ", ")
}

// Validator checks the field constraints of entities before they are written.
type Validator struct{}

// NewValidator creates a new Validator instance.
func NewValidator() *Validator {
	return &Validator{}
}

// ValidateCategory validates a Category entity.
func (v *Validator) ValidateCategory(c *domain.Category) error {
	errs := validation.Errors{
		"slug": validation.Validate(c.Slug,
			validation.Required.Error("Category slug is required"),
			validation.In(validCategorySlugs...).Error("Category slug must be one of: "+joinSet(validCategorySlugs)),
		),
	}
	bilingualRules(errs, "name", "Name", c.Name, true, maxNameLength)
	bilingualRules(errs, "description", "Description", c.Description, true, maxDescriptionLength)

	return toValidationError(errs.Filter())
}

// ValidateAuthor validates an Author entity.
func (v *Validator) ValidateAuthor(a *domain.Author) error {
	errs := validation.Errors{
		"image":               validation.Validate(a.Image, is.URL.Error("Image must be a valid URL")),
		"socialLinks.twitter": validation.Validate(a.SocialLinks.Twitter, is.URL.Error("Twitter link must be a valid URL")),
		"socialLinks.linkedin": validation.Validate(a.SocialLinks.LinkedIn,
			is.URL.Error("LinkedIn link must be a valid URL")),
		"socialLinks.website": validation.Validate(a.SocialLinks.Website, is.URL.Error("Website link must be a valid URL")),
		"email":               validation.Validate(a.Email, is.EmailFormat.Error("Email must be a valid email address")),
	}
	bilingualRules(errs, "name", "Name", a.Name, true, maxNameLength)
	bilingualRules(errs, "bio", "Bio", a.Bio, false, maxBioLength)
	bilingualRules(errs, "credentials", "Credentials", a.Credentials, false, maxCredentialsLength)

	return toValidationError(errs.Filter())
}

// ValidateArticle validates an Article entity after normalization.
func (v *Validator) ValidateArticle(a *domain.Article) error {
	errs := validation.Errors{
		"slug": validation.Validate(a.Slug,
			validation.Required.Error("Article slug is required (the English title produced an empty slug)"),
			validation.Match(slugRegex).Error("Slug may only contain lowercase letters, numbers and single hyphens"),
		),
		"category": validation.Validate(a.CategoryID, validation.Required.Error("Category is required")),
		"author":   validation.Validate(a.AuthorID, validation.Required.Error("Author is required")),
		"status": validation.Validate(string(a.Status),
			validation.Required.Error("Status is required"),
			validation.In(validStatus...).Error("Status must be one of: "+joinSet(validStatus)),
		),
		"featuredImage": validation.Validate(a.FeaturedImage, is.URL.Error("Featured image must be a valid URL")),
		"tags": validation.Validate(a.Tags, validation.Each(
			validation.RuneLength(0, maxTagLength).Error(fmt.Sprintf("Tags cannot exceed %d characters", maxTagLength)),
		)),
	}
	bilingualRules(errs, "title", "Title", a.Title, true, maxTitleLength)
	bilingualRules(errs, "excerpt", "Excerpt", a.Excerpt, true, maxExcerptLength)
	bilingualRules(errs, "content", "Content", a.Content, true, 0)
	bilingualRules(errs, "seo.title", "SEO title", a.SEO.Title, false, maxSEOTitleLength)
	bilingualRules(errs, "seo.description", "SEO description", a.SEO.Description, false, maxSEODescLength)

	// Custom rule: published must have publishedAt
	if a.Status == domain.StatusPublished && a.PublishedAt == nil {
		errs["publishedAt"] = validation.NewError("published_requires_published_at", "Published articles must have a publication date")
	}

	return toValidationError(errs.Filter())
}

// bilingualRules validates both language values of a bilingual field and
// records failures under "<field>.ar" and "<field>.en".
func bilingualRules(errs validation.Errors, field, label string, value domain.Bilingual, required bool, maxLen int) {
	langs := []struct {
		key  string
		name string
		val  string
	}{
		{"ar", "Arabic", value.Ar},
		{"en", "English", value.En},
	}

	for _, l := range langs {
		var rules []validation.Rule
		if required {
			rules = append(rules, validation.Required.Error(fmt.Sprintf("%s %s is required", l.name, strings.ToLower(label))))
		}
		if maxLen > 0 {
			rules = append(rules, validation.RuneLength(0, maxLen).Error(fmt.Sprintf("%s cannot exceed %d characters", label, maxLen)))
		}
		errs[field+"."+l.key] = validation.Validate(l.val, rules...)
	}
}

// toValidationError converts ozzo validation errors to a domain.ValidationError.
func toValidationError(err error) error {
	if err == nil {
		return nil
	}

	var ve validation.Errors
	if !errors.As(err, &ve) {
		return err
	}

	fields := make(map[string]string, len(ve))
	for field, fieldErr := range ve {
		fields[field] = fieldErr.Error()
	}
	return domain.NewValidationError(fields)
}

// Bounds accepted for page and limit query parameters. Operations apply their
// own, tighter caps after this check.
const (
	MinPage  = 1
	MinLimit = 1
	MaxLimit = 100
)

// ValidatePagination checks optional page and limit request parameters.
// A nil pointer means the parameter was not supplied.
func (v *Validator) ValidatePagination(page, limit *int) error {
	errs := validation.Errors{
		"page": validation.Validate(page, validation.When(page != nil,
			validation.Required.Error("Invalid page number"),
			validation.Min(MinPage).Error("Invalid page number"),
		)),
		"limit": validation.Validate(limit, validation.When(limit != nil,
			validation.Required.Error(fmt.Sprintf("Invalid limit (must be %d-%d)", MinLimit, MaxLimit)),
			validation.Min(MinLimit).Error(fmt.Sprintf("Invalid limit (must be %d-%d)", MinLimit, MaxLimit)),
			validation.Max(MaxLimit).Error(fmt.Sprintf("Invalid limit (must be %d-%d)", MinLimit, MaxLimit)),
		)),
	}
	return toValidationError(errs.Filter())
}
