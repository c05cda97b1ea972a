package site

import "errors"

var ErrNoNavigation = errors.New("site content has no navigation links")

// Link is an outbound navigation entry rendered in the navbar.
type Link struct {
	Label string `json:"label"`
	URL   string `json:"url"`
}

// Social is an icon link shown under the reservation form.
type Social struct {
	Name string `json:"name"`
	Icon string `json:"icon,omitempty"`
	URL  string `json:"url"`
}

// Content is the static part of the site around the reservation form.
type Content struct {
	Title            string   `json:"title"`
	Heading          string   `json:"heading"`
	Navigation       []Link   `json:"navigation"`
	Socials          []Social `json:"socials"`
	PrivacyPolicyURL string   `json:"privacyPolicyUrl"`
}

func NewContent(title, heading, privacyURL string, nav []Link, socials []Social) (*Content, error) {
	if len(nav) == 0 {
		return nil, ErrNoNavigation
	}
	return &Content{
		Title:            title,
		Heading:          heading,
		Navigation:       append([]Link(nil), nav...),
		Socials:          append([]Social(nil), socials...),
		PrivacyPolicyURL: privacyURL,
	}, nil
}
