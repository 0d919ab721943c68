package domain

// Profile holds the owner-specific copy shown outside the content tables:
// hero banner, about modal and contact section.
type Profile struct {
	Name     string
	Role     string
	Badge    string
	Headline []string
	Subtext  string

	AboutTitle    string
	AboutSubtitle string
	About         []string
	FocusAreas    []string

	ContactTitle string
	ContactPitch []string
	Email        string
	LinkedInURL  string
	GitHubURL    string
}

// ContactLinks returns the contact destinations in display order.
func (p Profile) ContactLinks() []Link {
	var links []Link
	if p.Email != "" {
		links = append(links, Link{Kind: LinkEmail, Label: "Send an Email", URL: "mailto:" + p.Email})
	}
	if p.LinkedInURL != "" {
		links = append(links, Link{Kind: LinkLinkedIn, Label: "LinkedIn", URL: p.LinkedInURL})
	}
	if p.GitHubURL != "" {
		links = append(links, Link{Kind: LinkGitHub, Label: "GitHub", URL: p.GitHubURL})
	}
	return links
}

// Clone returns a deep copy.
func (p Profile) Clone() Profile {
	p.Headline = cloneStrings(p.Headline)
	p.About = cloneStrings(p.About)
	p.FocusAreas = cloneStrings(p.FocusAreas)
	p.ContactPitch = cloneStrings(p.ContactPitch)
	return p
}
