package service

import (
	"context"
	"errors"

	"github.com/google/go-github/v66/github"
	"github.com/rvalois/gh-language-stats/config"
	"github.com/rvalois/gh-language-stats/model"

	log "github.com/sirupsen/logrus"
)

type GithubService interface {
	ListPublicRepositories(ctx context.Context, username string) []model.RepositorySummary
	FetchRepositoryLanguages(ctx context.Context, owner string, repository string) model.LanguageBytes
}

type githubService struct {
	githubClient *github.Client
	config       config.Config
}

// pagination states: Requesting asks github for one page, Accumulating moves
// to the next page after a non-empty one, Done means an empty page was seen,
// Failed means a request errored and pagination stops with partial results
type listState int

const (
	stateRequesting listState = iota
	stateAccumulating
	stateDone
	stateFailed
)

func NewGithubService(config config.Config, githubClient *github.Client) GithubService {
	return githubService{
		githubClient: githubClient,
		config:       config,
	}
}

// ListPublicRepositories pages through all public repositories of a user.
// Failures never abort the run: a non-success status stops pagination and
// whatever was accumulated so far is returned.
func (s githubService) ListPublicRepositories(ctx context.Context, username string) []model.RepositorySummary {
	log.WithField("username", username).Info("fetching public repositories")

	repositories := make([]model.RepositorySummary, 0)
	page := 1
	state := stateRequesting

	for state != stateDone && state != stateFailed {
		switch state {
		case stateRequesting:
			pageRepositories, rawCount, err := s.fetchRepositoryPage(ctx, username, page)

			if err != nil {
				logGithubError(err, "error fetching repositories. pagination stopped", log.Fields{
					"username": username,
					"page":     page,
				})

				state = stateFailed
			} else if rawCount == 0 {
				state = stateDone
			} else {
				repositories = append(repositories, pageRepositories...)
				state = stateAccumulating
			}

		case stateAccumulating:
			page++
			state = stateRequesting
		}
	}

	log.WithField("count", len(repositories)).Info("found public repositories")
	return repositories
}

// fetchRepositoryPage requests a single page of public repositories
// rawCount is the unfiltered page length: the end-of-pagination signal must
// not depend on how many records were skipped as invalid
func (s githubService) fetchRepositoryPage(ctx context.Context, username string, page int) ([]model.RepositorySummary, int, error) {
	results, _, err := s.githubClient.Repositories.ListByUser(ctx, username, &github.RepositoryListByUserOptions{
		Type: "public",
		ListOptions: github.ListOptions{
			Page:    page,
			PerPage: s.config.Github.PageSize,
		},
	})

	if err != nil {
		return nil, 0, err
	}

	repositories := make([]model.RepositorySummary, 0, len(results))

	for _, r := range results {
		// owner login is taken from the repository record itself, it can
		// differ from the queried user for organization repositories
		if r == nil || r.Name == nil || r.Owner == nil || r.Owner.Login == nil {
			log.WithField("repositoryID", r.GetID()).Debug("repository found with missing name or owner. skipped")
			continue
		}

		repositories = append(repositories, model.RepositorySummary{
			Name:  *r.Name,
			Owner: *r.Owner.Login,
		})
	}

	return repositories, len(results), nil
}

// FetchRepositoryLanguages returns the byte count per language for a single
// repository. A failed fetch yields an empty map so the repository simply
// contributes nothing to the aggregate.
func (s githubService) FetchRepositoryLanguages(ctx context.Context, owner string, repository string) model.LanguageBytes {
	log.WithFields(log.Fields{
		"owner":      owner,
		"repository": repository,
	}).Debug("fetching languages for repository")

	languages, _, err := s.githubClient.Repositories.ListLanguages(ctx, owner, repository)

	if err != nil {
		logGithubError(err, "could not fetch languages for repository", log.Fields{
			"owner":      owner,
			"repository": repository,
		})

		return model.LanguageBytes{}
	}

	return languages
}

// logGithubError logs a failed github request with the response status and
// body when the error carries them
func logGithubError(err error, message string, fields log.Fields) {
	var errResponse *github.ErrorResponse

	if errors.As(err, &errResponse) && errResponse.Response != nil {
		fields["status"] = errResponse.Response.StatusCode
		fields["body"] = errResponse.Message
	}

	log.WithError(err).WithFields(fields).Warn(message)
}
