package publish

import (
	"context"
	"fmt"
	"github.com/alexcrichton/rust-release/internal/git"
	"github.com/alexcrichton/rust-release/internal/github"
	"go.uber.org/zap"
	"os"
	"path/filepath"
)

// releaseName is the name and tag of the rolling release this tool publishes
// to, one per repository.
const releaseName = "master"

type headCommitter interface {
	HeadCommit(workingDir string) (string, error)
}

type Publisher struct {
	gitClient headCommitter
	config    Config
	log       *zap.Logger
}

func NewPublisher(log *zap.Logger, config Config) Publisher {
	return Publisher{
		gitClient: git.NewClient(log),
		config:    config,
		log:       log,
	}
}

// Publish finds or creates the "master" release, points it at the checkout's
// HEAD commit (publishing the draft) and uploads every artifact in the
// project's release build directory, replacing same-named assets.
func (p Publisher) Publish(ctx context.Context) error {
	ghClient := github.NewClient(p.log, p.config.Token, p.config.APIURL)

	release, err := ghClient.FindOrCreateRelease(ctx, p.config.Repo, releaseName)
	if err != nil {
		return fmt.Errorf("resolve %s release: %w", releaseName, err)
	}

	commit, err := p.gitClient.HeadCommit(p.config.Project)
	if err != nil {
		return fmt.Errorf("get head commit: %w", err)
	}
	update := github.UpdateRelease{TargetCommitish: commit, Draft: false}
	if _, err := ghClient.UpdateRelease(ctx, p.config.Repo, release.ID, update); err != nil {
		return fmt.Errorf("update %s release: %w", releaseName, err)
	}
	p.log.Info(fmt.Sprintf("release %d published with target commit %s", release.ID, commit))

	// listing assets on the connection that served the release update fails
	// against the api, asset calls go out on a fresh client
	assetClient := github.NewClient(p.log, p.config.Token, p.config.APIURL)

	artifacts, err := p.artifacts()
	if err != nil {
		return err
	}
	for _, artifact := range artifacts {
		if err := p.publishArtifact(ctx, assetClient, release, artifact); err != nil {
			return err
		}
	}
	return nil
}

// publishArtifact uploads one artifact under its derived asset name, deleting
// an existing asset of the same name first.
func (p Publisher) publishArtifact(ctx context.Context, ghClient github.Client, release github.Release, path string) error {
	name := assetName(path, p.config.Host, exeSuffix())

	// assets are listed fresh for every artifact, a delete invalidates any
	// previously fetched listing
	assets, err := ghClient.ListAssets(ctx, release.AssetsURL)
	if err != nil {
		return fmt.Errorf("list %s release assets: %w", releaseName, err)
	}
	for _, asset := range assets {
		if asset.Name == name {
			if err := ghClient.DeleteAsset(ctx, p.config.Repo, asset.ID); err != nil {
				return fmt.Errorf("delete existing asset %s: %w", name, err)
			}
			p.log.Info(fmt.Sprintf("deleted existing asset %s with id %d", name, asset.ID))
			break
		}
	}

	asset, err := ghClient.UploadAsset(ctx, release.UploadURL, name, path)
	if err != nil {
		return fmt.Errorf("upload artifact %s: %w", path, err)
	}
	p.log.Info(fmt.Sprintf("uploaded asset %s with id %d", asset.Name, asset.ID))
	return nil
}

// artifacts returns regular files directly under the project's release build
// output directory, directories and non-regular files are skipped.
func (p Publisher) artifacts() ([]string, error) {
	dir := filepath.Join(p.config.Project, "target", "release")
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("read artifacts dir: %w", err)
	}

	var files []string
	for _, entry := range entries {
		info, err := entry.Info()
		if err != nil {
			return nil, fmt.Errorf("stat artifact %s: %w", entry.Name(), err)
		}
		if !info.Mode().IsRegular() {
			continue
		}
		files = append(files, filepath.Join(dir, entry.Name()))
	}
	return files, nil
}
