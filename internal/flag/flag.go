package flag

import (
	"errors"
	"flag"
	"fmt"
	"github.com/alexcrichton/rust-release/internal/publish"
	"os"
	"runtime"
)

type flags struct {
	project string
	repo    string
	token   string
	host    string
}

func ParseFlags() (publish.Config, error) {
	flagSet := flag.NewFlagSet(os.Args[0], flag.ContinueOnError)
	var f flags

	flagSet.StringVar(&f.project, "project", "", "The project directory (defaults to the current directory)")
	flagSet.StringVar(&f.repo, "repo", getStringEnv("", "TRAVIS_REPO_SLUG"), "GitHub repository to publish to (owner/name)")
	flagSet.StringVar(&f.token, "token", getStringEnv("", "GH_TOKEN", "TOKEN"), "GitHub auth token")
	flagSet.StringVar(&f.host, "host", getStringEnv(defaultHost(), "HOST"), "Host target triple of the build")

	if err := flagSet.Parse(os.Args[1:]); err != nil {
		return publish.Config{}, err
	}

	if err := f.validate(); err != nil {
		flagSet.Usage()
		return publish.Config{}, err
	}

	project := f.project
	if project == "" {
		wd, err := os.Getwd()
		if err != nil {
			return publish.Config{}, fmt.Errorf("get current directory: %w", err)
		}
		project = wd
	}

	return publish.Config{
		Project: project,
		Repo:    f.repo,
		Token:   f.token,
		Host:    f.host,
		APIURL:  getStringEnv("", "GITHUB_API_URL"),
	}, nil
}

func (f flags) validate() error {
	if f.token == "" {
		return errors.New("requires either -token or one of GH_TOKEN, TOKEN")
	}
	if f.repo == "" {
		return errors.New("requires either -repo or TRAVIS_REPO_SLUG")
	}
	return nil
}

// getStringEnv returns the value of the first environment variable that is
// set, the default value if none are.
func getStringEnv(defaultValue string, envNames ...string) string {
	for _, envName := range envNames {
		if env, ok := os.LookupEnv(envName); ok {
			return env
		}
	}
	return defaultValue
}

func defaultHost() string {
	return fmt.Sprintf("%s-%s", runtime.GOOS, runtime.GOARCH)
}
