package domain

type LinkKind string

const (
	LinkRepo     LinkKind = "repo"
	LinkDemo     LinkKind = "demo"
	LinkEmail    LinkKind = "email"
	LinkLinkedIn LinkKind = "linkedin"
	LinkGitHub   LinkKind = "github"
)

// Link is an outbound destination. Following it leaves the program's control.
type Link struct {
	Kind  LinkKind
	Label string
	URL   string
}
