package main

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/google/go-github/v66/github"
	"github.com/rvalois/gh-language-stats/config"
	"github.com/rvalois/gh-language-stats/credentials"
	"github.com/rvalois/gh-language-stats/logger"
	"github.com/rvalois/gh-language-stats/model"
	"github.com/rvalois/gh-language-stats/report"
	"github.com/rvalois/gh-language-stats/service"
	log "github.com/sirupsen/logrus"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.WithError(err).Error("unable to load configuration")
		return
	}

	// configure logger
	logger.Setup(*cfg)

	// resolve the token once, it is passed explicitly from here on
	token, err := credentials.Resolve()
	if err != nil {
		fmt.Println(model.NewCLIError(err).Message)
		return
	}

	username, err := promptUsername(os.Stdin, os.Stdout)
	if err != nil {
		fmt.Println(model.NewCLIError(err).Message)
		return
	}

	// setup github client
	// built here and passed to the service to easily swap in a mock client
	githubClient := github.NewClient(nil).WithAuthToken(token)
	githubService := service.NewGithubService(*cfg, githubClient)

	ctx := context.Background()
	repositories := githubService.ListPublicRepositories(ctx, username)

	if len(repositories) == 0 {
		fmt.Printf("No public repositories found for user '%s' or an error occurred.\n", username)
		return
	}

	log.Info("analyzing languages for each repository")

	// one blocking call per repository, strictly sequential
	aggregator := report.NewAggregator()

	for _, repository := range repositories {
		aggregator.Add(githubService.FetchRepositoryLanguages(ctx, repository.Owner, repository.Name))
	}

	aggregator.WriteReport(os.Stdout, username)
}

// promptUsername asks for the github username on stdin, offering the
// settings default when one is configured. Empty input accepts the default.
func promptUsername(in io.Reader, out io.Writer) (string, error) {
	defaultUsername, hasDefault := config.DefaultUsername()

	if hasDefault {
		log.WithField("username", defaultUsername).Debug("settings file provides a default username")
		fmt.Fprintf(out, "Enter the GitHub username (press Enter to use %s): ", defaultUsername)
	} else {
		fmt.Fprint(out, "Enter the GitHub username: ")
	}

	line, err := bufio.NewReader(in).ReadString('\n')
	if err != nil && err != io.EOF {
		return "", fmt.Errorf("EMPTY_USERNAME")
	}

	username := strings.TrimSpace(line)
	if username == "" {
		username = defaultUsername
	}

	if username == "" {
		return "", fmt.Errorf("EMPTY_USERNAME")
	}

	return username, nil
}
