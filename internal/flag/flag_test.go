package flag

import (
	"testing"

	"gotest.tools/assert"
)

func TestGetStringEnv(t *testing.T) {
	t.Run("default when none set", func(t *testing.T) {
		assert.Equal(t, "fallback", getStringEnv("fallback", "RR_TEST_FIRST", "RR_TEST_SECOND"))
	})

	t.Run("later source when first missing", func(t *testing.T) {
		t.Setenv("RR_TEST_SECOND", "second")
		assert.Equal(t, "second", getStringEnv("fallback", "RR_TEST_FIRST", "RR_TEST_SECOND"))
	})

	t.Run("first present source wins", func(t *testing.T) {
		t.Setenv("RR_TEST_FIRST", "first")
		t.Setenv("RR_TEST_SECOND", "second")
		assert.Equal(t, "first", getStringEnv("fallback", "RR_TEST_FIRST", "RR_TEST_SECOND"))
	})
}

func TestValidate(t *testing.T) {
	t.Run("missing token names all sources", func(t *testing.T) {
		err := flags{repo: "owner/repo"}.validate()
		assert.ErrorContains(t, err, "-token")
		assert.ErrorContains(t, err, "GH_TOKEN")
		assert.ErrorContains(t, err, "TOKEN")
	})

	t.Run("missing repo names all sources", func(t *testing.T) {
		err := flags{token: "t"}.validate()
		assert.ErrorContains(t, err, "-repo")
		assert.ErrorContains(t, err, "TRAVIS_REPO_SLUG")
	})

	t.Run("valid", func(t *testing.T) {
		assert.NilError(t, flags{token: "t", repo: "owner/repo"}.validate())
	})
}
