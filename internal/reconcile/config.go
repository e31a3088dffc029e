package reconcile

const (
	// DefCIComplaintPrefix is the default Config.CIComplaintPrefix.
	DefCIComplaintPrefix = "ci-complaint"
	// DefCIMarker is the default Config.CIMarker.
	DefCIMarker = "ci-"
)

// Config contains the repository specific settings of a Reconciler.
type Config struct {
	// RepositoryOwner and Repository identify the repository of the pull
	// requests, they are used to build REST API paths.
	RepositoryOwner string
	Repository      string

	// BotLogin is the login of the account that posts the comments.
	// Only comments authored by it are reconciled.
	BotLogin string

	// ProjectNumber is the number of the project board that is
	// reconciled, cards on other boards are ignored.
	ProjectNumber int
	// DoneColumn is the name of the terminal column of the project board.
	// Cards in it are not removed from the board.
	DoneColumn string

	// CIComplaintPrefix is the prefix of the tag of the CI status comment
	// that is kept.
	CIComplaintPrefix string
	// CIMarker is contained in the tags of all CI related comments.
	CIMarker string
	// DeleteIfNotPostedTags are tags of comments that are deleted when
	// they are not part of the desired comments.
	DeleteIfNotPostedTags []string

	// ManagedLabels restricts label changes to the listed labels.
	// When it is empty all labels are managed.
	ManagedLabels []string
}

func (c *Config) withDefaults() *Config {
	result := *c

	if result.CIComplaintPrefix == "" {
		result.CIComplaintPrefix = DefCIComplaintPrefix
	}

	if result.CIMarker == "" {
		result.CIMarker = DefCIMarker
	}

	return &result
}
