package extractor

import (
	"net/url"
	"strings"

	"promoapi/internal/model"
)

const invalidURLMessage = "Please provide a valid URL"

// ValidateURL checks that raw is a well-formed absolute http(s) URL.
// It never touches the network.
func ValidateURL(raw string) (*url.URL, error) {
	raw = strings.TrimSpace(raw)
	u, err := url.Parse(raw)
	if err != nil {
		return nil, model.WrapError(model.ErrInvalidURL, err, invalidURLMessage)
	}
	if !u.IsAbs() || u.Host == "" {
		return nil, model.Errorf(model.ErrInvalidURL, invalidURLMessage)
	}
	switch strings.ToLower(u.Scheme) {
	case "http", "https":
	default:
		return nil, model.Errorf(model.ErrInvalidURL, invalidURLMessage)
	}
	return u, nil
}
