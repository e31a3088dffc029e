package cfg

import (
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/pelletier/go-toml"
)

type Config struct {
	HTTPListenAddr string        `toml:"http_server_listen_addr"`
	HTTPEndpoint   string        `toml:"http_endpoint" default:"/reconcile"`
	GithubAPIToken string        `toml:"github_api_token"`
	LogFormat      string        `toml:"log_format" default:"logfmt"`
	LogTimeKey     string        `toml:"log_time_key" default:"time_iso8601"`
	LogLevel       string        `toml:"log_level" default:"info"`
	RetryTimeout   time.Duration `toml:"retry_timeout" default:"30m"`
	IDCacheTTL     time.Duration `toml:"idcache_ttl" default:"15m"`
	// ActionsQuery is a jq program that computes the desired state of a
	// pull request, it is used when no actions are passed explicitly.
	ActionsQuery string `toml:"actions_query"`

	Repository GithubRepository `toml:"repository"`
	Bot        Bot              `toml:"bot"`
	Project    Project          `toml:"project"`
	CI         CI               `toml:"ci"`
}

type GithubRepository struct {
	Owner          string `toml:"owner"`
	RepositoryName string `toml:"repository"`
}

type Bot struct {
	// Login is the login of the account posting the comments as
	// reported by the GraphQL API. For GitHub Apps it is the app slug
	// without the "[bot]" suffix that the REST API and web UI show.
	Login                 string   `toml:"login"`
	CommentMarker         string   `toml:"comment_marker" default:"mergebot"`
	DeleteIfNotPostedTags []string `toml:"delete_if_not_posted_tags"`
	ManagedLabels         []string `toml:"managed_labels"`
}

type Project struct {
	Number     int    `toml:"number"`
	DoneColumn string `toml:"done_column"`
}

type CI struct {
	ComplaintTagPrefix string `toml:"complaint_tag_prefix" default:"ci-complaint"`
	TagMarker          string `toml:"tag_marker" default:"ci-"`
}

// Load reads a TOML configuration from reader, applies defaults and validates
// it.
func Load(reader io.Reader) (*Config, error) {
	var result Config

	data, err := io.ReadAll(reader)
	if err != nil {
		return nil, err
	}

	if err := toml.Unmarshal(data, &result); err != nil {
		return nil, err
	}

	if err := result.validate(); err != nil {
		return nil, err
	}

	return &result, nil
}

func (r *Config) validate() error {
	if r.Repository.Owner == "" {
		return errors.New("repository: missing field: 'owner'")
	}

	if r.Repository.RepositoryName == "" {
		return errors.New("repository: missing field: 'repository'")
	}

	if r.Bot.Login == "" {
		return errors.New("bot: missing field: 'login'")
	}

	if r.Bot.CommentMarker == "" {
		return errors.New("bot: 'comment_marker' must not be empty")
	}

	if r.Project.Number <= 0 {
		return fmt.Errorf("project: number must be a positive number, is: %d", r.Project.Number)
	}

	if r.RetryTimeout < 0 {
		return fmt.Errorf("retry_timeout must not be negative, is: %s", r.RetryTimeout)
	}

	if r.IDCacheTTL < 0 {
		return fmt.Errorf("idcache_ttl must not be negative, is: %s", r.IDCacheTTL)
	}

	return nil
}
