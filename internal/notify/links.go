package notify

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	git "github.com/go-git/go-git/v5"

	"github.com/reignorshine/plansmith/internal/config"
)

// LinkBuilder turns local artifact paths into repository blob URLs for the
// notification email.
type LinkBuilder struct {
	server  string
	repo    string
	branch  string
	repoDir string
}

// NewLinkBuilder resolves repository coordinates. Settings win, then the git
// origin remote of repoDir, then the GITHUB_* environment variables that CI
// checkouts carry.
func NewLinkBuilder(settings config.Notify, repoDir string) *LinkBuilder {
	repo := settings.Repository
	if repo == "" {
		repo = originSlug(repoDir)
	}
	if repo == "" {
		repo = os.Getenv("GITHUB_REPOSITORY")
	}

	server := os.Getenv("GITHUB_SERVER_URL")
	if server == "" {
		server = settings.ServerURL
	}
	if server == "" {
		server = "https://github.com"
	}

	branch := os.Getenv("GITHUB_REF_NAME")
	if branch == "" {
		branch = settings.Branch
	}
	if branch == "" {
		branch = "main"
	}

	return &LinkBuilder{
		server:  strings.TrimSuffix(server, "/"),
		repo:    repo,
		branch:  branch,
		repoDir: repoDir,
	}
}

// Resolved reports whether a repository slug could be determined.
func (b *LinkBuilder) Resolved() bool {
	return b.repo != ""
}

// FileURL returns the blob URL for a file in the repository.
func (b *LinkBuilder) FileURL(path string) string {
	rel := path
	if abs, err := filepath.Abs(path); err == nil {
		if root, err := filepath.Abs(b.repoDir); err == nil {
			if r, err := filepath.Rel(root, abs); err == nil && !strings.HasPrefix(r, "..") {
				rel = r
			} else {
				rel = filepath.Base(path)
			}
		}
	}
	return fmt.Sprintf("%s/%s/blob/%s/%s", b.server, b.repo, b.branch, filepath.ToSlash(rel))
}

// originSlug reads owner/repo from the checkout's origin remote.
func originSlug(repoDir string) string {
	repo, err := git.PlainOpen(repoDir)
	if err != nil {
		return ""
	}
	remote, err := repo.Remote("origin")
	if err != nil || len(remote.Config().URLs) == 0 {
		return ""
	}
	return parseOriginURL(remote.Config().URLs[0])
}

// parseOriginURL extracts "owner/repo" from an https or ssh remote URL.
func parseOriginURL(url string) string {
	url = strings.TrimSuffix(url, ".git")

	if at := strings.Index(url, "@"); at >= 0 {
		if colon := strings.Index(url[at:], ":"); colon >= 0 {
			return strings.Trim(url[at+colon+1:], "/")
		}
	}

	if scheme := strings.Index(url, "://"); scheme >= 0 {
		rest := url[scheme+3:]
		if slash := strings.Index(rest, "/"); slash >= 0 {
			return strings.Trim(rest[slash+1:], "/")
		}
	}

	return ""
}
