package validation

import "github.com/portfolio/backend/internal/model"

// Length limits, in runes unless noted.
const (
	MaxNameLength             = 100
	MaxEmailLength            = 254
	MaxSubjectLength          = 200
	MaxCommunityMessageLength = 1000
	MaxCommentLength          = 2000
	MaxContactMessageLength   = 5000
	MaxAvatarURLLength        = 2048 // bytes
)

// Contact validates a contact form payload.
func Contact(p Payload) (*model.NewContact, error) {
	c := &checker{p: p}
	in := &model.NewContact{
		FirstName: c.requiredString("firstName", MaxNameLength),
		LastName:  c.requiredString("lastName", MaxNameLength),
		Email:     c.email("email", MaxEmailLength),
		Subject:   c.requiredString("subject", MaxSubjectLength),
		Message:   c.requiredString("message", MaxContactMessageLength),
	}
	if err := c.err(); err != nil {
		return nil, err
	}
	return in, nil
}

// CommunityMessage validates a community board post.
func CommunityMessage(p Payload) (*model.NewCommunityMessage, error) {
	c := &checker{p: p}
	in := &model.NewCommunityMessage{
		Name:    c.requiredString("name", MaxNameLength),
		Message: c.requiredString("message", MaxCommunityMessageLength),
		Avatar:  c.optionalURL("avatar", MaxAvatarURLLength),
	}
	if err := c.err(); err != nil {
		return nil, err
	}
	return in, nil
}

// Feedback validates a feedback form payload. Ratings outside
// model.MinRating..model.MaxRating are rejected.
func Feedback(p Payload) (*model.NewFeedback, error) {
	c := &checker{p: p}
	in := &model.NewFeedback{
		Name:    c.requiredString("name", MaxNameLength),
		Email:   c.email("email", MaxEmailLength),
		Rating:  c.integer("rating", model.MinRating, model.MaxRating),
		Comment: c.requiredString("comment", MaxCommentLength),
	}
	if err := c.err(); err != nil {
		return nil, err
	}
	return in, nil
}
