package publish

import "fmt"

type Config struct {
	Project string
	Repo    string
	Token   string
	Host    string
	APIURL  string
}

func (c Config) String() string {
	token := "*****"
	if len(c.Token) == 0 {
		token = "<empty>"
	}
	return fmt.Sprintf("project: %q, repo: %q, host: %q, api-url: %q, token: %q",
		c.Project, c.Repo, c.Host, c.APIURL, token)
}
