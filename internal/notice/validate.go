package notice

import (
	"errors"
	"strings"
	"time"

	"NoticeBoard/internal/config"

	"github.com/go-playground/validator/v10"
)

var payloadValidator = validator.New(validator.WithRequiredStructEnabled())

// Messages for the static required rules, keyed by payload field.
var requiredMessages = map[string]FieldError{
	"Title":          {Field: "title", Message: "Notice Title is required"},
	"TargetAudience": {Field: "targetAudience", Message: "Target audience is required"},
	"NoticeType":     {Field: "noticeType", Message: "At least one Notice Type is required"},
	"PublishDate":    {Field: "publishDate", Message: "Publish date is required"},
	"Body":           {Field: "body", Message: "Body is required"},
}

// validatePayload checks p against the configured vocabularies and builds
// the document to persist. The returned notice has no id or timestamps;
// Status is set only if the payload supplied one. All violations are
// collected into a single *ValidationError.
func validatePayload(p *Payload, meta *config.Meta) (*Notice, error) {
	vErr := &ValidationError{}

	title := strings.TrimSpace(p.Title)
	audience := strings.TrimSpace(p.TargetAudience)
	rawDate := strings.TrimSpace(p.PublishDate)
	body := p.Body

	// Required checks run against the trimmed values, so a
	// whitespace-only field counts as missing.
	normalized := *p
	normalized.Title = title
	normalized.TargetAudience = audience
	normalized.PublishDate = rawDate

	if err := payloadValidator.Struct(&normalized); err != nil {
		var fieldErrs validator.ValidationErrors
		if !errors.As(err, &fieldErrs) {
			return nil, err
		}
		for _, fe := range fieldErrs {
			if msg, ok := requiredMessages[fe.StructField()]; ok {
				vErr.add(msg.Field, msg.Message)
			} else {
				vErr.add(fe.StructField(), "is invalid")
			}
		}
	}

	if audience != "" && !meta.IsValidAudience(audience) {
		vErr.add("targetAudience", "must be one of the configured departments or Individual")
	}

	noticeTypes := make([]string, 0, len(p.NoticeType))
	for _, t := range p.NoticeType {
		t = strings.TrimSpace(t)
		if !meta.IsValidNoticeType(t) {
			vErr.add("noticeType", "`"+t+"` is not a valid notice type")
			continue
		}
		noticeTypes = append(noticeTypes, t)
	}

	var recipient *RecipientDetails
	if p.RecipientDetails != nil {
		recipient = &RecipientDetails{
			EmployeeID: strings.TrimSpace(p.RecipientDetails.EmployeeID),
			Name:       strings.TrimSpace(p.RecipientDetails.Name),
			Position:   strings.TrimSpace(p.RecipientDetails.Position),
		}
	}
	if strings.EqualFold(audience, "individual") {
		if recipient == nil || recipient.EmployeeID == "" {
			vErr.add("recipientDetails.employeeId",
				"recipientDetails.employeeId is required when targetAudience is Individual")
		}
	}

	var publishDate time.Time
	if rawDate != "" {
		parsed, err := parsePublishDate(rawDate)
		if err != nil {
			vErr.add("publishDate", "must be a date (2006-01-02) or an RFC 3339 timestamp")
		} else {
			publishDate = parsed
		}
	}

	status := strings.TrimSpace(p.Status)
	if status != "" && !IsValidStatus(status) {
		vErr.add("status", "must be one of Draft, Published, Unpublished")
	}

	if len(vErr.Violations) > 0 {
		return nil, vErr
	}

	attachments := p.Attachments
	if attachments == nil {
		attachments = []string{}
	}

	return &Notice{
		Title:            title,
		TargetAudience:   audience,
		RecipientDetails: recipient,
		NoticeType:       noticeTypes,
		PublishDate:      publishDate,
		Body:             body,
		Attachments:      attachments,
		Status:           status,
	}, nil
}

func parsePublishDate(raw string) (time.Time, error) {
	if t, err := time.Parse(time.RFC3339, raw); err == nil {
		return t, nil
	}
	return time.ParseInLocation("2006-01-02", raw, time.Local)
}
